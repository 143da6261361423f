package ciutil

import (
	"log/slog"
	"net/url"
	"os"
	"strings"
)

// Common environment variable names used across the codebase.
const (
	// CI environment detection variables
	EnvCI            = "CI"
	EnvGitHubActions = "GITHUB_ACTIONS"
	EnvGitLabCI      = "GITLAB_CI"
	EnvJenkinsURL    = "JENKINS_URL"
	EnvCircleCI      = "CIRCLECI"

	// Test backend locations
	EnvDatabaseURL  = "DATABASE_URL"
	EnvTestDBURL    = "CAMPUS_TEST_DB_URL"
	EnvTestMongoURL = "CAMPUS_TEST_MONGO_URL"
)

// maskedSecret replaces passwords and other secrets in masked values.
const maskedSecret = "xxxxx"

// IsCI returns true if the current environment is a CI environment.
// Integration tests fail instead of skipping there when a backend is missing.
func IsCI() bool {
	return os.Getenv(EnvCI) != "" ||
		os.Getenv(EnvGitHubActions) != "" ||
		os.Getenv(EnvGitLabCI) != "" ||
		os.Getenv(EnvJenkinsURL) != "" ||
		os.Getenv(EnvCircleCI) != ""
}

// GetEnvWithFallbacks returns the value of the first non-empty environment variable
// from the provided list. If no environment variables are set, it returns the defaultValue.
func GetEnvWithFallbacks(envVars []string, defaultValue string, logger *slog.Logger) string {
	for i, envVar := range envVars {
		if val := os.Getenv(envVar); val != "" {
			if i > 0 && logger != nil {
				logger.Debug("Using fallback environment variable",
					"used_var", envVar,
					"preferred_var", envVars[0],
					"value", MaskSensitiveValue(val),
				)
			}
			return val
		}
	}
	return defaultValue
}

// MaskSensitiveValue hides the password of connection URLs such as
// postgres:// or mongodb:// and shortens values that look like keys or tokens.
// Everything else is returned unchanged.
func MaskSensitiveValue(value string) string {
	if strings.Contains(value, "://") {
		parsed, err := url.Parse(value)
		if err == nil && parsed.User != nil {
			if _, hasPassword := parsed.User.Password(); hasPassword {
				parsed.User = url.UserPassword(parsed.User.Username(), maskedSecret)
			}
			return parsed.String()
		}
		return value
	}

	lower := strings.ToLower(value)
	if len(value) > 8 && (strings.Contains(lower, "key") ||
		strings.Contains(lower, "token") ||
		strings.Contains(lower, "secret")) {
		return value[:4] + "****" + value[len(value)-4:]
	}

	return value
}
