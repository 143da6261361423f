package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for every environment variable read by Load,
// e.g. CAMPUS_SERVER_PORT or CAMPUS_DATABASE_URL.
const EnvPrefix = "CAMPUS"

// dotEnvFile is loaded into the process environment when present.
const dotEnvFile = ".env"

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	// Variables already present in the environment win over the .env file.
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading %s file: %w", dotEnvFile, err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.shutdown_timeout_seconds", 10)

	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.mongo_database", "campus")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime_minutes", 5)

	v.SetDefault("auth.token_lifetime_minutes", 60)

	v.SetDefault("events.broker", BrokerNone)
	v.SetDefault("events.subject_prefix", "campus")

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "campus-records-api")
}

// bindEnvs binds every key explicitly. AutomaticEnv alone only applies to
// keys viper already knows about when Unmarshal runs, which excludes keys
// without defaults such as database.url.
func bindEnvs(v *viper.Viper) {
	keys := []string{
		"server.port",
		"server.log_level",
		"server.shutdown_timeout_seconds",
		"database.driver",
		"database.url",
		"database.mongo_database",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime_minutes",
		"auth.jwt_secret",
		"auth.token_lifetime_minutes",
		"auth.admin_emails",
		"events.broker",
		"events.nats_url",
		"events.kafka_brokers",
		"events.subject_prefix",
		"tracing.enabled",
		"tracing.otlp_endpoint",
		"tracing.service_name",
	}
	for _, key := range keys {
		// BindEnv only fails when called without a key.
		_ = v.BindEnv(key)
	}
}

// Getenv reads an application environment variable by its key suffix,
// e.g. Getenv("DATABASE_URL") reads CAMPUS_DATABASE_URL.
func Getenv(key string) string {
	return os.Getenv(EnvPrefix + "_" + key)
}
