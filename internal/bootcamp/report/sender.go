// Package report assembles and dispatches the best-effort bootcamp report.
package report

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"bootcamp-service/internal/bootcamp/metrics"
	"bootcamp-service/internal/bootcamp/models"
)

// CapacitySummaryFetcher supplies capacity and technology counts.
type CapacitySummaryFetcher interface {
	Summary(ctx context.Context, bootcampID int64) (models.CapacitySummary, error)
}

// PersonCounter supplies the registered-person count.
type PersonCounter interface {
	Count(ctx context.Context, bootcampID int64) (int, error)
}

// Submitter posts the completed report.
type Submitter interface {
	Submit(ctx context.Context, data models.BootcampReportData) error
}

// Sender gathers the three remote counts in parallel, merges them into the
// report and submits it. Its contract is to always complete successfully:
// each count individually falls back to zero and the submission error is
// swallowed. This is telemetry, not a transactional write.
type Sender struct {
	capacity CapacitySummaryFetcher
	persons  PersonCounter
	reports  Submitter
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewSender constructs a report sender.
func NewSender(capacity CapacitySummaryFetcher, persons PersonCounter, reports Submitter, logger *slog.Logger, m *metrics.Metrics) *Sender {
	return &Sender{capacity: capacity, persons: persons, reports: reports, logger: logger, metrics: m}
}

// Send completes data with remote counts and submits it. Always returns nil.
func (s *Sender) Send(ctx context.Context, data models.BootcampReportData) error {
	var (
		capacityCount   int
		technologyCount int
		personCount     int
	)

	// The capacity and technology counts are separate fetches even though they
	// come from the same summary endpoint: each falls back to zero on its own.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary, err := s.capacity.Summary(gctx, data.BootcampID)
		if err != nil {
			s.fallback(gctx, "capacity count", data.BootcampID, err)
			return nil
		}
		capacityCount = summary.CapacityCount
		return nil
	})
	g.Go(func() error {
		summary, err := s.capacity.Summary(gctx, data.BootcampID)
		if err != nil {
			s.fallback(gctx, "technology count", data.BootcampID, err)
			return nil
		}
		technologyCount = summary.TotalTechnologyCount
		return nil
	})
	g.Go(func() error {
		count, err := s.persons.Count(gctx, data.BootcampID)
		if err != nil {
			s.fallback(gctx, "person count", data.BootcampID, err)
			return nil
		}
		personCount = count
		return nil
	})
	_ = g.Wait()

	data.CapacityCount = capacityCount
	data.TotalTechnologyCount = technologyCount
	data.RegisteredPersonCount = personCount

	if err := s.reports.Submit(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "report submission failed, dropping report",
			"bootcamp_id", data.BootcampID,
			"error", err,
		)
	}
	return nil
}

func (s *Sender) fallback(ctx context.Context, what string, bootcampID int64, err error) {
	s.metrics.IncrementReportFallbacks()
	s.logger.WarnContext(ctx, "report count fetch failed, using zero",
		"fetch", what,
		"bootcamp_id", bootcampID,
		"error", err,
	)
}
