package report

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bootcamp-service/internal/bootcamp/models"
)

type fakeSummary struct {
	summary models.CapacitySummary
	err     error
}

func (f *fakeSummary) Summary(ctx context.Context, bootcampID int64) (models.CapacitySummary, error) {
	return f.summary, f.err
}

type fakeCounter struct {
	count int
	err   error
}

func (f *fakeCounter) Count(ctx context.Context, bootcampID int64) (int, error) {
	return f.count, f.err
}

type fakeSubmitter struct {
	err       error
	submitted []models.BootcampReportData
}

func (f *fakeSubmitter) Submit(ctx context.Context, data models.BootcampReportData) error {
	f.submitted = append(f.submitted, data)
	return f.err
}

func newSender(summary *fakeSummary, counter *fakeCounter, submitter *fakeSubmitter) *Sender {
	return NewSender(summary, counter, submitter, slog.New(slog.DiscardHandler), nil)
}

func baseReport() models.BootcampReportData {
	return models.BootcampReportData{BootcampID: 1, Name: "Backend Bootcamp"}
}

func TestSendMergesAllCounts(t *testing.T) {
	submitter := &fakeSubmitter{}
	sender := newSender(
		&fakeSummary{summary: models.CapacitySummary{CapacityCount: 3, TotalTechnologyCount: 9}},
		&fakeCounter{count: 12},
		submitter,
	)

	err := sender.Send(context.Background(), baseReport())
	require.NoError(t, err)

	require.Len(t, submitter.submitted, 1)
	got := submitter.submitted[0]
	assert.Equal(t, 3, got.CapacityCount)
	assert.Equal(t, 9, got.TotalTechnologyCount)
	assert.Equal(t, 12, got.RegisteredPersonCount)
}

func TestSendFallsBackToZeroPerCount(t *testing.T) {
	submitter := &fakeSubmitter{}
	sender := newSender(
		&fakeSummary{err: errors.New("capacity service down")},
		&fakeCounter{count: 4},
		submitter,
	)

	err := sender.Send(context.Background(), baseReport())
	require.NoError(t, err)

	require.Len(t, submitter.submitted, 1)
	got := submitter.submitted[0]
	assert.Equal(t, 0, got.CapacityCount)
	assert.Equal(t, 0, got.TotalTechnologyCount)
	assert.Equal(t, 4, got.RegisteredPersonCount)
}

func TestSendNeverFails(t *testing.T) {
	// Every remote call errors, including the submission itself.
	sender := newSender(
		&fakeSummary{err: errors.New("capacity service down")},
		&fakeCounter{err: errors.New("person service down")},
		&fakeSubmitter{err: errors.New("report service down")},
	)

	err := sender.Send(context.Background(), baseReport())
	assert.NoError(t, err)
}
