package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	apiMiddleware "github.com/ucsb-cs156/campus-records-api/internal/api/middleware"
	"github.com/ucsb-cs156/campus-records-api/internal/config"
	"github.com/ucsb-cs156/campus-records-api/internal/events"
	"github.com/ucsb-cs156/campus-records-api/internal/platform/memory"
	"github.com/ucsb-cs156/campus-records-api/internal/platform/mongo"
	"github.com/ucsb-cs156/campus-records-api/internal/platform/postgres"
	"github.com/ucsb-cs156/campus-records-api/internal/platform/tracing"
	"github.com/ucsb-cs156/campus-records-api/internal/service/auth"
	"github.com/ucsb-cs156/campus-records-api/internal/store"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger      *slog.Logger
	db          *sqlx.DB
	mongoClient *mongodriver.Client

	// Stores (using interfaces for proper abstraction)
	recommendationRequests store.RecommendationRequestStore
	menuItemReviews        store.MenuItemReviewStore

	// Authentication
	jwtService   auth.JWTService
	roleResolver *auth.RoleResolver

	// Event system
	eventEmitter events.EventEmitter
	publisher    io.Closer

	// Observability
	metrics         *apiMiddleware.Metrics
	shutdownTracing tracing.ShutdownFunc
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	app.roleResolver = auth.NewRoleResolver(cfg.Auth.AdminEmails)
	logger.Info("JWT authentication service initialized",
		"admin_email_count", len(cfg.Auth.AdminEmails))

	if err := app.setupStores(ctx); err != nil {
		app.cleanup()
		return nil, err
	}

	if err := app.setupEvents(); err != nil {
		app.cleanup()
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app.metrics = apiMiddleware.NewMetrics(registry)

	logger.Info("Application initialized successfully")
	return app, nil
}

// setupStores connects the configured persistence backend.
func (app *application) setupStores(ctx context.Context) error {
	cfg := app.config.Database

	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg, app.logger)
		if err != nil {
			return err
		}
		app.db = db
		app.recommendationRequests = postgres.NewPostgresRecommendationRequestStore(db, app.logger)
		app.menuItemReviews = postgres.NewPostgresMenuItemReviewStore(db, app.logger)

	case config.DriverMongo:
		client, err := mongo.Connect(ctx, cfg, app.logger)
		if err != nil {
			return err
		}
		app.mongoClient = client
		database := client.Database(cfg.MongoDatabase)
		app.recommendationRequests = mongo.NewRecommendationRequestStore(database, app.logger)
		app.menuItemReviews = mongo.NewMenuItemReviewStore(database, app.logger)

	case config.DriverMemory:
		app.logger.Warn("Using in-memory stores; records are lost on restart")
		app.recommendationRequests = memory.NewRecommendationRequestStore()
		app.menuItemReviews = memory.NewMenuItemReviewStore()

	default:
		return fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	app.logger.Info("Stores initialized", "driver", cfg.Driver)
	return nil
}

// setupEvents creates the event emitter and registers the configured broker
// publisher with it.
func (app *application) setupEvents() error {
	cfg := app.config.Events
	emitter := events.NewInMemoryEventEmitter(app.logger)
	app.eventEmitter = emitter

	switch cfg.Broker {
	case config.BrokerNATS:
		publisher, err := events.NewNATSPublisher(cfg.NATSURL, cfg.SubjectPrefix, app.logger)
		if err != nil {
			return fmt.Errorf("failed to connect event publisher: %w", err)
		}
		emitter.RegisterHandler(cfg.Broker, publisher)
		app.publisher = publisher

	case config.BrokerKafka:
		publisher := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.SubjectPrefix, app.logger)
		emitter.RegisterHandler(cfg.Broker, publisher)
		app.publisher = publisher

	case "", config.BrokerNone:
		app.logger.Info("No event broker configured; record events are not published")
		return nil

	default:
		return fmt.Errorf("unsupported event broker %q", cfg.Broker)
	}

	app.logger.Info("Event publisher initialized", "broker", cfg.Broker, "prefix", cfg.SubjectPrefix)
	return nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases resources in dependency order: the publisher first so no
// event is sent after its broker connection closes, then tracing, then the
// database.
func (app *application) cleanup() {
	if app.publisher != nil {
		if err := app.publisher.Close(); err != nil {
			app.logger.Error("Error closing event publisher", "error", err)
		}
	}

	if app.shutdownTracing != nil {
		if err := app.shutdownTracing(context.Background()); err != nil {
			app.logger.Error("Error shutting down tracer provider", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	if app.mongoClient != nil {
		if err := app.mongoClient.Disconnect(context.Background()); err != nil {
			app.logger.Error("Error disconnecting from MongoDB", "error", err)
		}
	}
}
