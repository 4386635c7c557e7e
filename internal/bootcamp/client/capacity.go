// Package client holds the typed HTTP gateways to the collaborating services.
package client

import (
	"context"
	"fmt"
	"log/slog"

	"bootcamp-service/internal/bootcamp/models"
	"bootcamp-service/internal/platform/httpclient"
)

// Capacity talks to the capacity service, which owns capacity entities and
// their links to bootcamps.
type Capacity struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewCapacity constructs a capacity service gateway.
func NewCapacity(client *httpclient.Client, logger *slog.Logger) *Capacity {
	return &Capacity{client: client, logger: logger}
}

type associateRequest struct {
	BootcampID  int64   `json:"bootcampId"`
	CapacityIDs []int64 `json:"capacityIds"`
}

// AssociateCapacities links the capacity IDs to the bootcamp. Any transport
// or remote error becomes false: the orchestrator compensates on a false
// outcome, so failure must be an outcome here, never an error.
func (c *Capacity) AssociateCapacities(ctx context.Context, bootcampID int64, capacityIDs []int64) bool {
	body := associateRequest{BootcampID: bootcampID, CapacityIDs: capacityIDs}
	if err := c.client.PostJSON(ctx, "/capacity/bootcamp/associate", body, nil); err != nil {
		c.logger.WarnContext(ctx, "capacity association declined",
			"bootcamp_id", bootcampID,
			"error", err,
		)
		return false
	}
	return true
}

// DeleteCapacitiesByBootcampID removes every capacity link for the bootcamp.
// Errors propagate; the caller must not delete the local record on failure.
func (c *Capacity) DeleteCapacitiesByBootcampID(ctx context.Context, bootcampID int64) error {
	path := fmt.Sprintf("/capacity/bootcamp/%d/exclusive-delete", bootcampID)
	if err := c.client.Delete(ctx, path); err != nil {
		return fmt.Errorf("delete capacity associations: %w", err)
	}
	return nil
}

// CapacitiesWithTechnologies fetches the enrichment data for one bootcamp.
func (c *Capacity) CapacitiesWithTechnologies(ctx context.Context, bootcampID int64) ([]models.CapacityWithTechnologies, error) {
	path := fmt.Sprintf("/capacity/bootcamp/capacities-technologies?bootcampId=%d", bootcampID)
	var out []models.CapacityWithTechnologies
	if err := c.client.GetJSON(ctx, path, &out); err != nil {
		return nil, fmt.Errorf("fetch capacities and technologies: %w", err)
	}
	return out, nil
}

// RelationCounts fetches the number of capacity links per bootcamp.
func (c *Capacity) RelationCounts(ctx context.Context) (map[int64]int, error) {
	var rows []models.RelationCount
	if err := c.client.GetJSON(ctx, "/capacity/bootcamp/relation-counts", &rows); err != nil {
		return nil, fmt.Errorf("fetch relation counts: %w", err)
	}
	counts := make(map[int64]int, len(rows))
	for _, row := range rows {
		counts[row.BootcampID] = row.RelationCount
	}
	return counts, nil
}

// Summary fetches the capacity and technology counts for one bootcamp.
func (c *Capacity) Summary(ctx context.Context, bootcampID int64) (models.CapacitySummary, error) {
	path := fmt.Sprintf("/capacity/bootcamp/summary?bootcampId=%d", bootcampID)
	var out models.CapacitySummary
	if err := c.client.GetJSON(ctx, path, &out); err != nil {
		return models.CapacitySummary{}, fmt.Errorf("fetch capacity summary: %w", err)
	}
	return out, nil
}
