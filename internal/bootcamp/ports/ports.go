// Package ports defines the interfaces the bootcamp orchestrator coordinates.
// Interfaces live here because they are consumed by the service, the query
// gateway and the tests alike.
package ports

//go:generate mockgen -source=ports.go -destination=../service/mocks/mocks.go -package=mocks Store,Association,Query,ReportSender,EventPublisher

import (
	"context"

	"bootcamp-service/internal/bootcamp/models"
)

// Store is the persistence gateway for the durable Bootcamp record.
// Implementations return sentinel errors; services translate them.
type Store interface {
	// Save persists a new bootcamp and returns it with its generated ID.
	Save(ctx context.Context, b models.Bootcamp) (*models.Bootcamp, error)

	// ExistsByName reports whether a bootcamp with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// ExistsByID reports whether the bootcamp exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// FindByID returns the bootcamp or sentinel.ErrNotFound.
	FindByID(ctx context.Context, id int64) (*models.Bootcamp, error)

	// FindAll returns every persisted bootcamp.
	FindAll(ctx context.Context) ([]models.Bootcamp, error)

	// FindAllByIDs returns the bootcamps matching the given IDs; missing IDs
	// are silently omitted.
	FindAllByIDs(ctx context.Context, ids []int64) ([]models.Bootcamp, error)

	// DeleteByID removes the bootcamp. Deleting a missing ID is not an error.
	DeleteByID(ctx context.Context, id int64) error
}

// Association requests capacity link creation and deletion from the remote
// capacity service, which owns the links.
type Association interface {
	// AssociateCapacities links capacityIDs to the bootcamp. Transport and
	// remote errors are converted to false so the orchestrator's compensation
	// logic can branch on the outcome.
	AssociateCapacities(ctx context.Context, bootcampID int64, capacityIDs []int64) bool

	// DeleteCapacitiesByBootcampID removes every capacity link for the
	// bootcamp. Errors propagate, unlike association creation.
	DeleteCapacitiesByBootcampID(ctx context.Context, bootcampID int64) error
}

// Query serves the read-model use cases that merge local persistence with
// remote enrichment data.
type Query interface {
	ListPagedAndSorted(ctx context.Context, page, size int, sortBy, direction string) ([]models.BootcampWithCapacitiesAndTechnologies, error)
	FindWithMostPersons(ctx context.Context) (*models.BootcampWithCapacitiesAndPersons, error)
}

// ReportSender dispatches the best-effort summary report. Implementations
// always complete successfully; the error return exists so the contract stays
// explicit at call sites.
type ReportSender interface {
	Send(ctx context.Context, data models.BootcampReportData) error
}

// EventPublisher emits lifecycle events for downstream consumers, best-effort.
type EventPublisher interface {
	Publish(ctx context.Context, event models.Event) error
}
