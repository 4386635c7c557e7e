package client

import (
	"context"
	"fmt"

	"bootcamp-service/internal/bootcamp/models"
	"bootcamp-service/internal/platform/httpclient"
)

// Report talks to the report service, which stores submitted reports.
type Report struct {
	client *httpclient.Client
}

// NewReport constructs a report service gateway.
func NewReport(client *httpclient.Client) *Report {
	return &Report{client: client}
}

// Submit posts a completed report. The response body is empty.
func (c *Report) Submit(ctx context.Context, data models.BootcampReportData) error {
	if err := c.client.PostJSON(ctx, "/report/bootcamp", data, nil); err != nil {
		return fmt.Errorf("submit bootcamp report: %w", err)
	}
	return nil
}
