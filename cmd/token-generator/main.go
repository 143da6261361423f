// Package main implements a command that mints bearer tokens accepted by the
// campus records API, for local development and smoke tests.
//
// Usage:
//
//	CAMPUS_AUTH_JWT_SECRET=... token-generator -email admin@ucsb.edu -roles ROLE_USER,ROLE_ADMIN
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/ucsb-cs156/campus-records-api/internal/config"
	"github.com/ucsb-cs156/campus-records-api/internal/service/auth"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "error reading .env file: %v\n", err)
		os.Exit(1)
	}

	if err := run(context.Background(), os.Args[1:], config.Getenv, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "token-generator: %v\n", err)
		os.Exit(2)
	}
}

// run parses args, signs a token with the secret found through getenv and
// writes it to out followed by a newline.
func run(ctx context.Context, args []string, getenv func(string) string, out io.Writer) error {
	flags := flag.NewFlagSet("token-generator", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	email := flags.String("email", "", "email claim of the token (required)")
	roles := flags.String("roles", "ROLE_USER", "comma-separated roles, e.g. ROLE_USER,ROLE_ADMIN")
	lifetime := flags.Int("lifetime", 60, "token lifetime in minutes")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *email == "" {
		return errors.New("-email is required")
	}

	secret := getenv("AUTH_JWT_SECRET")
	if secret == "" {
		return fmt.Errorf("%s_AUTH_JWT_SECRET is not set", config.EnvPrefix)
	}

	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            secret,
		TokenLifetimeMinutes: *lifetime,
	})
	if err != nil {
		return err
	}

	token, err := jwtService.GenerateToken(ctx, *email, splitRoles(*roles))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, token)
	return err
}

func splitRoles(s string) []string {
	var roles []string
	for _, role := range strings.Split(s, ",") {
		if role = strings.TrimSpace(role); role != "" {
			roles = append(roles, role)
		}
	}
	return roles
}
