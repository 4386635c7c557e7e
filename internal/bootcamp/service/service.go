// Package service holds the bootcamp orchestrator: the sequence of
// validations, persistence operations and remote calls behind each use case.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"bootcamp-service/internal/bootcamp/metrics"
	"bootcamp-service/internal/bootcamp/models"
	"bootcamp-service/internal/bootcamp/ports"
	dErrors "bootcamp-service/pkg/domain-errors"
	"bootcamp-service/pkg/platform/sentinel"
	"bootcamp-service/pkg/platform/slices"
)

const (
	maxNameLength        = 50
	maxDescriptionLength = 90
	maxCapacities        = 4
)

// Service orchestrates the bootcamp use cases.
type Service struct {
	store       ports.Store
	association ports.Association
	query       ports.Query
	reports     ports.ReportSender
	events      ports.EventPublisher
	logger      *slog.Logger
	metrics     *metrics.Metrics
	tracer      trace.Tracer
}

// New constructs the orchestrator. events may be nil when no publisher is
// configured.
func New(
	store ports.Store,
	association ports.Association,
	query ports.Query,
	reports ports.ReportSender,
	events ports.EventPublisher,
	logger *slog.Logger,
	m *metrics.Metrics,
) *Service {
	return &Service{
		store:       store,
		association: association,
		query:       query,
		reports:     reports,
		events:      events,
		logger:      logger,
		metrics:     m,
		tracer:      otel.Tracer("bootcamp-service/internal/bootcamp/service"),
	}
}

// Register validates the bootcamp, persists it and associates the capacity
// IDs. On association failure the just-created record is deleted again so at
// most one durable bootcamp remains per failed attempt. The summary report
// and the lifecycle event are best-effort and never affect the outcome.
func (s *Service) Register(ctx context.Context, b models.Bootcamp, capacityIDs []int64) (*models.Bootcamp, error) {
	ctx, span := s.tracer.Start(ctx, "bootcamp.Register")
	defer span.End()
	start := time.Now()

	if err := validateBootcamp(b); err != nil {
		return nil, err
	}
	if err := validateCapacityIDs(capacityIDs); err != nil {
		return nil, err
	}

	exists, err := s.store.ExistsByName(ctx, b.Name)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check bootcamp name")
	}
	if exists {
		return nil, dErrors.NewWithParam(dErrors.CodeConflict, "Bootcamp name already exists.", "name")
	}

	saved, err := s.store.Save(ctx, b)
	if err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			// Lost a race with a concurrent registration of the same name.
			return nil, dErrors.NewWithParam(dErrors.CodeConflict, "Bootcamp name already exists.", "name")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save bootcamp")
	}
	span.SetAttributes(attribute.Int64("bootcamp.id", saved.ID))

	if !s.association.AssociateCapacities(ctx, saved.ID, capacityIDs) {
		s.compensate(ctx, saved.ID)
		return nil, dErrors.New(dErrors.CodeAssociationFailed, "Failed to associate bootcamp with capacity")
	}

	s.sendReportSilently(ctx, *saved)
	s.publishEvent(ctx, models.EventBootcampCreated, saved.ID, saved.Name)

	s.metrics.IncrementRegistered()
	s.metrics.ObserveRegister(start)
	s.logger.InfoContext(ctx, "bootcamp registered",
		"bootcamp_id", saved.ID,
		"name", saved.Name,
		"capacity_count", len(capacityIDs),
	)
	return saved, nil
}

// compensate undoes the save after a declined association. A failed
// compensating delete leaves an orphan row, which is logged for operators;
// the registration still fails either way.
func (s *Service) compensate(ctx context.Context, bootcampID int64) {
	s.metrics.IncrementCompensations()
	if err := s.store.DeleteByID(ctx, bootcampID); err != nil {
		s.logger.ErrorContext(ctx, "compensating delete failed, orphan bootcamp row remains",
			"bootcamp_id", bootcampID,
			"error", err,
		)
		return
	}
	s.logger.WarnContext(ctx, "registration compensated after failed association",
		"bootcamp_id", bootcampID,
	)
}

func (s *Service) sendReportSilently(ctx context.Context, b models.Bootcamp) {
	data := models.BootcampReportData{
		BootcampID:  b.ID,
		Name:        b.Name,
		Description: b.Description,
		ReleaseDate: b.ReleaseDate,
		Duration:    b.Duration,
	}
	if err := s.reports.Send(ctx, data); err != nil {
		// The sender's contract is to never fail; guard anyway so reporting
		// can never break a completed registration.
		s.logger.WarnContext(ctx, "report send failed", "bootcamp_id", b.ID, "error", err)
	}
}

func (s *Service) publishEvent(ctx context.Context, eventType string, bootcampID int64, name string) {
	if s.events == nil {
		return
	}
	// Events are telemetry; delivery must not be cut short when the request
	// deadline fires after the response is already written.
	ctx = context.WithoutCancel(ctx)
	event := models.Event{
		Type:       eventType,
		BootcampID: bootcampID,
		Name:       name,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "lifecycle event dropped",
			"event_type", eventType,
			"bootcamp_id", bootcampID,
			"error", err,
		)
	}
}

// List delegates to the query gateway; page and size are assumed
// non-negative, sortBy and direction pass through opaque.
func (s *Service) List(ctx context.Context, page, size int, sortBy, direction string) ([]models.BootcampWithCapacitiesAndTechnologies, error) {
	ctx, span := s.tracer.Start(ctx, "bootcamp.List")
	defer span.End()
	start := time.Now()
	defer s.metrics.ObserveList(start)

	return s.query.ListPagedAndSorted(ctx, page, size, sortBy, direction)
}

// Delete removes the bootcamp and its capacity associations. The remote
// association deletion runs first; if it fails the local record is kept, so
// a retry can complete the cascade.
func (s *Service) Delete(ctx context.Context, bootcampID int64) error {
	ctx, span := s.tracer.Start(ctx, "bootcamp.Delete")
	defer span.End()

	if err := s.association.DeleteCapacitiesByBootcampID(ctx, bootcampID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete capacity associations")
	}
	if err := s.store.DeleteByID(ctx, bootcampID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete bootcamp")
	}

	s.publishEvent(ctx, models.EventBootcampDeleted, bootcampID, "")
	s.metrics.IncrementDeleted()
	s.logger.InfoContext(ctx, "bootcamp deleted", "bootcamp_id", bootcampID)
	return nil
}

// ValidateIDs checks that every ID exists and that no two of the referenced
// bootcamps share a release date or a duration (either match alone fails the
// batch). Lookups fan out concurrently; the comparison runs over the complete
// collected set. On success the input is returned unchanged.
func (s *Service) ValidateIDs(ctx context.Context, ids []int64) ([]int64, error) {
	ctx, span := s.tracer.Start(ctx, "bootcamp.ValidateIDs")
	defer span.End()

	bootcamps := make([]*models.Bootcamp, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			exists, err := s.store.ExistsByID(gctx, id)
			if err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check bootcamp id")
			}
			if !exists {
				return dErrors.NewWithParam(dErrors.CodeNotFound, "Bootcamp does not exist", "bootcampId")
			}
			b, err := s.store.FindByID(gctx, id)
			if err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load bootcamp")
			}
			bootcamps[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if conflictingSchedule(bootcamps) {
		return nil, dErrors.New(dErrors.CodeConflict, "Bootcamp with the same release date and duration already exists")
	}
	return ids, nil
}

// conflictingSchedule reports whether any two bootcamps share a release date
// or share a duration. The inclusive-or is deliberate: a single matching
// field already disqualifies the batch. O(n²) over a batch capped at request
// size.
func conflictingSchedule(bootcamps []*models.Bootcamp) bool {
	for i := 0; i < len(bootcamps); i++ {
		for j := i + 1; j < len(bootcamps); j++ {
			if bootcamps[i].ReleaseDate.Equal(bootcamps[j].ReleaseDate) ||
				bootcamps[i].Duration == bootcamps[j].Duration {
				return true
			}
		}
	}
	return false
}

// FindWithMostPersons delegates to the query gateway.
func (s *Service) FindWithMostPersons(ctx context.Context) (*models.BootcampWithCapacitiesAndPersons, error) {
	ctx, span := s.tracer.Start(ctx, "bootcamp.FindWithMostPersons")
	defer span.End()

	return s.query.FindWithMostPersons(ctx)
}

func validateBootcamp(b models.Bootcamp) error {
	// Limits are character counts, matching the VARCHAR column widths.
	if strings.TrimSpace(b.Name) == "" || utf8.RuneCountInString(b.Name) > maxNameLength {
		return dErrors.NewWithParam(dErrors.CodeValidation,
			"Invalid bootcamp name. Must not be empty and max 50 chars.", "name")
	}
	if strings.TrimSpace(b.Description) == "" || utf8.RuneCountInString(b.Description) > maxDescriptionLength {
		return dErrors.NewWithParam(dErrors.CodeValidation,
			"Invalid bootcamp description. Must not be empty and max 90 chars.", "description")
	}
	return nil
}

func validateCapacityIDs(capacityIDs []int64) error {
	if len(capacityIDs) == 0 || len(capacityIDs) > maxCapacities {
		return dErrors.NewWithParam(dErrors.CodeValidation,
			"Invalid capacity list. Must contain between 1 and 4 unique capacity IDs.", "capacityIds")
	}
	if slices.HasDuplicates(capacityIDs) {
		return dErrors.NewWithParam(dErrors.CodeValidation,
			"Duplicate capacity in request", "capacityIds")
	}
	return nil
}
