package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	Events   EventsConfig   `mapstructure:"events"`
	Tracing  TracingConfig  `mapstructure:"tracing"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gte=1,lte=300"`
}

// Supported persistence backends.
const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

// DatabaseConfig selects the persistence backend and its connection settings.
// URL is required for every driver except memory.
type DatabaseConfig struct {
	Driver                 string `mapstructure:"driver" validate:"required,oneof=postgres mongo memory"`
	URL                    string `mapstructure:"url" validate:"required_unless=Driver memory,omitempty,url"`
	MongoDatabase          string `mapstructure:"mongo_database" validate:"required_if=Driver mongo"`
	MaxOpenConns           int    `mapstructure:"max_open_conns" validate:"gte=1"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gte=1"`
}

// AuthConfig contains the bearer token verification settings.
type AuthConfig struct {
	JWTSecret            string   `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetimeMinutes int      `mapstructure:"token_lifetime_minutes" validate:"required,gt=0,lt=44640"`
	AdminEmails          []string `mapstructure:"admin_emails" validate:"dive,email"`
}

// Supported event brokers.
const (
	BrokerNone  = "none"
	BrokerNATS  = "nats"
	BrokerKafka = "kafka"
)

// EventsConfig selects where "record created" events are published.
type EventsConfig struct {
	Broker        string   `mapstructure:"broker" validate:"omitempty,oneof=none nats kafka"`
	NATSURL       string   `mapstructure:"nats_url" validate:"required_if=Broker nats"`
	KafkaBrokers  []string `mapstructure:"kafka_brokers" validate:"required_if=Broker kafka"`
	SubjectPrefix string   `mapstructure:"subject_prefix" validate:"required"`
}

// TracingConfig controls OpenTelemetry trace export.
type TracingConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	OTLPEndpoint string `mapstructure:"otlp_endpoint" validate:"required_if=Enabled true"`
	ServiceName  string `mapstructure:"service_name" validate:"required"`
}
