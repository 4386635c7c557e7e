// Package handler wires the bootcamp use cases to HTTP.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"bootcamp-service/internal/bootcamp/metrics"
	"bootcamp-service/internal/bootcamp/models"
	"bootcamp-service/internal/platform/middleware"
	dErrors "bootcamp-service/pkg/domain-errors"
	"bootcamp-service/pkg/platform/httputil"
)

// Listing defaults applied when query parameters are absent or malformed.
const (
	defaultPage      = 0
	defaultSize      = 10
	defaultSortBy    = "name"
	defaultDirection = "asc"
)

// Service defines the interface for bootcamp operations.
type Service interface {
	Register(ctx context.Context, b models.Bootcamp, capacityIDs []int64) (*models.Bootcamp, error)
	List(ctx context.Context, page, size int, sortBy, direction string) ([]models.BootcampWithCapacitiesAndTechnologies, error)
	Delete(ctx context.Context, bootcampID int64) error
	ValidateIDs(ctx context.Context, ids []int64) ([]int64, error)
	FindWithMostPersons(ctx context.Context) (*models.BootcampWithCapacitiesAndPersons, error)
}

// Handler handles bootcamp endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New creates a bootcamp Handler.
func New(service Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{service: service, logger: logger, metrics: m}
}

// Register mounts the bootcamp routes with the shared middleware stack.
func (h *Handler) Register(r chi.Router) {
	router := chi.NewRouter()
	router.Use(middleware.Recovery(h.logger))
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(h.logger))
	router.Use(middleware.Timeout(30 * time.Second))
	router.Use(middleware.ContentTypeJSON)
	router.Use(middleware.Latency(h.metrics))

	router.Post("/bootcamp", h.handleCreate)
	router.Get("/bootcamp/list", h.handleList)
	router.Delete("/bootcamp/{bootcampId}", h.handleDelete)
	router.Post("/bootcamp/validate-list", h.handleValidateIDs)
	router.Get("/bootcamp/most-persons", h.handleMostPersons)

	r.Mount("/", router)
}

// createRequest is the registration payload. ReleaseDate accepts the wire
// date format used across the platform (yyyy-mm-dd).
type createRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ReleaseDate string  `json:"releaseDate"`
	Duration    int     `json:"duration"`
	CapacityIDs []int64 `json:"capacityIds"`
}

type createResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid create bootcamp request",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	releaseDate, err := time.Parse("2006-01-02", req.ReleaseDate)
	if err != nil {
		httputil.WriteError(w, dErrors.NewWithParam(dErrors.CodeBadRequest,
			"invalid release date, expected yyyy-mm-dd", "releaseDate"))
		return
	}

	bootcamp := models.Bootcamp{
		Name:        req.Name,
		Description: req.Description,
		ReleaseDate: releaseDate,
		Duration:    req.Duration,
	}
	saved, err := h.service.Register(ctx, bootcamp, req.CapacityIDs)
	if err != nil {
		h.logError(ctx, "bootcamp registration failed", requestID, err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, createResponse{
		ID:      saved.ID,
		Message: "Bootcamp created successfully",
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	page := intParam(q.Get("page"), defaultPage)
	size := intParam(q.Get("size"), defaultSize)
	sortBy := stringParam(q.Get("sortBy"), defaultSortBy)
	direction := stringParam(q.Get("direction"), defaultDirection)

	bootcamps, err := h.service.List(ctx, page, size, sortBy, direction)
	if err != nil {
		h.logError(ctx, "bootcamp listing failed", middleware.GetRequestID(ctx), err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, bootcamps)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bootcampID, err := strconv.ParseInt(chi.URLParam(r, "bootcampId"), 10, 64)
	if err != nil {
		httputil.WriteError(w, dErrors.NewWithParam(dErrors.CodeBadRequest,
			"invalid bootcamp id", "bootcampId"))
		return
	}

	if err := h.service.Delete(ctx, bootcampID); err != nil {
		h.logError(ctx, "bootcamp deletion failed", middleware.GetRequestID(ctx), err)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleValidateIDs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var ids []int64
	if err := json.NewDecoder(r.Body).Decode(&ids); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	validated, err := h.service.ValidateIDs(ctx, ids)
	if err != nil {
		h.logError(ctx, "bootcamp id validation failed", middleware.GetRequestID(ctx), err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, validated)
}

func (h *Handler) handleMostPersons(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.service.FindWithMostPersons(ctx)
	if err != nil {
		h.logError(ctx, "most-persons lookup failed", middleware.GetRequestID(ctx), err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

// logError keeps client errors at warn and internals at error so operator
// dashboards stay focused on real faults.
func (h *Handler) logError(ctx context.Context, msg, requestID string, err error) {
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, msg, "request_id", requestID, "error", err.Error())
		return
	}
	h.logger.WarnContext(ctx, msg, "request_id", requestID, "error", err.Error())
}

func intParam(v string, fallback int) int {
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func stringParam(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
