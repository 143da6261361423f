package api

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/ucsb-cs156/campus-records-api/internal/api/middleware"
	"github.com/ucsb-cs156/campus-records-api/internal/api/shared"
	"github.com/ucsb-cs156/campus-records-api/internal/domain"
	"github.com/ucsb-cs156/campus-records-api/internal/events"
	"github.com/ucsb-cs156/campus-records-api/internal/platform/logger"
	"github.com/ucsb-cs156/campus-records-api/internal/store"
)

// Parser builds a record from request parameters. It returns the first
// missing or malformed parameter as a *domain.ValidationError. The identity
// of the returned record is left unset.
type Parser[T any] func(values url.Values) (*T, error)

// CRUDHandler serves the list and create endpoints of one record type.
type CRUDHandler[T any] struct {
	repo    store.Repository[T]
	parse   Parser[T]
	entity  string
	emitter events.EventEmitter
	logger  *slog.Logger
}

// NewCRUDHandler creates a handler for entity backed by repo. emitter may be
// nil, in which case no events are published.
func NewCRUDHandler[T any](
	repo store.Repository[T],
	parse Parser[T],
	entity string,
	emitter events.EventEmitter,
	logger *slog.Logger,
) *CRUDHandler[T] {
	if repo == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("repository cannot be nil for CRUDHandler")
	}
	if parse == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("parser cannot be nil for CRUDHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CRUDHandler")
	}

	return &CRUDHandler[T]{
		repo:    repo,
		parse:   parse,
		entity:  entity,
		emitter: emitter,
		logger:  logger.With(slog.String("component", entity+"_handler")),
	}
}

// Routes returns a router serving GET /all for callers holding at least
// minList and POST /post for callers holding at least minCreate.
func (h *CRUDHandler[T]) Routes(minList, minCreate domain.Role) chi.Router {
	r := chi.NewRouter()
	r.With(middleware.RequireRole(minList)).Get("/all", h.List)
	r.With(middleware.RequireRole(minCreate)).Post("/post", h.Create)
	return r
}

// List handles GET /all. It responds with every stored record as a JSON
// array in repository order.
func (h *CRUDHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	records, err := h.repo.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if records == nil {
		records = []*T{}
	}

	log.Debug("listed records",
		slog.String("entity", h.entity),
		slog.Int("count", len(records)))
	shared.RespondWithJSON(w, r, http.StatusOK, records)
}

// Create handles POST /post. Parameters come from the query string or a
// form-encoded body. The response is the record returned by the repository.
func (h *CRUDHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	if err := r.ParseForm(); err != nil {
		HandleAPIError(w, r,
			domain.NewValidationError("parameters", "could not be parsed", domain.ErrInvalidFormat), "")
		return
	}

	record, err := h.parse(r.Form)
	if err != nil {
		log.Debug("rejected create request", slog.String("entity", h.entity), slog.Any("error", err))
		HandleAPIError(w, r, err, "")
		return
	}

	saved, err := h.repo.Create(r.Context(), record)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("record created",
		slog.String("entity", h.entity),
		slog.String("principal", shared.GetPrincipal(r.Context()).Email))
	shared.RespondWithJSON(w, r, http.StatusOK, saved)

	h.emitCreated(r, saved, log)
}

// emitCreated publishes <entity>.created. Failures are logged only; the
// record is already stored and the response already written.
func (h *CRUDHandler[T]) emitCreated(r *http.Request, saved *T, log *slog.Logger) {
	if h.emitter == nil {
		return
	}

	event, err := events.NewRecordCreatedEvent(h.entity, saved)
	if err != nil {
		log.Error("failed to build record created event",
			slog.String("entity", h.entity),
			slog.String("error", err.Error()))
		return
	}

	if err := h.emitter.EmitEvent(r.Context(), event); err != nil {
		log.Warn("failed to emit record created event",
			slog.String("entity", h.entity),
			slog.String("event_id", event.ID.String()),
			slog.String("error", err.Error()))
	}
}
