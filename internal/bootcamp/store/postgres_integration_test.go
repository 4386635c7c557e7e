//go:build integration

package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"bootcamp-service/internal/bootcamp/models"
	"bootcamp-service/pkg/platform/sentinel"
	"bootcamp-service/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *Postgres
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T(), Schema)
	s.store = NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(), "bootcamps")
	s.Require().NoError(err)
}

func newTestBootcamp(name string) models.Bootcamp {
	return models.Bootcamp{
		Name:        name,
		Description: "Backend fundamentals",
		ReleaseDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Duration:    12,
	}
}

func (s *PostgresStoreSuite) TestSaveAssignsID() {
	ctx := context.Background()

	saved, err := s.store.Save(ctx, newTestBootcamp("Go Backend "+uuid.NewString()))
	s.Require().NoError(err)
	s.NotZero(saved.ID)

	found, err := s.store.FindByID(ctx, saved.ID)
	s.Require().NoError(err)
	s.Equal(saved.Name, found.Name)
	s.Equal(saved.Duration, found.Duration)
	s.True(saved.ReleaseDate.Equal(found.ReleaseDate))
}

// TestConcurrentUniqueNameViolation verifies that concurrent saves with the
// same name result in exactly one success.
func (s *PostgresStoreSuite) TestConcurrentUniqueNameViolation() {
	ctx := context.Background()
	name := "Concurrent Bootcamp " + uuid.NewString()
	const goroutines = 50

	var wg sync.WaitGroup
	var successCount atomic.Int32
	var conflictCount atomic.Int32

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := s.store.Save(ctx, newTestBootcamp(name))
			if err == nil {
				successCount.Add(1)
			} else if errors.Is(err, sentinel.ErrConflict) {
				conflictCount.Add(1)
			}
		}()
	}

	wg.Wait()

	s.Equal(int32(1), successCount.Load(), "exactly one save should succeed")
	s.Equal(int32(goroutines-1), conflictCount.Load(), "all others should get conflict error")

	exists, err := s.store.ExistsByName(ctx, name)
	s.Require().NoError(err)
	s.True(exists)
}

func (s *PostgresStoreSuite) TestNotFoundError() {
	ctx := context.Background()

	_, err := s.store.FindByID(ctx, 999999)
	s.ErrorIs(err, sentinel.ErrNotFound)

	exists, err := s.store.ExistsByID(ctx, 999999)
	s.Require().NoError(err)
	s.False(exists)
}

func (s *PostgresStoreSuite) TestFindAllByIDsOmitsMissing() {
	ctx := context.Background()

	a, err := s.store.Save(ctx, newTestBootcamp("A "+uuid.NewString()))
	s.Require().NoError(err)
	b, err := s.store.Save(ctx, newTestBootcamp("B "+uuid.NewString()))
	s.Require().NoError(err)

	found, err := s.store.FindAllByIDs(ctx, []int64{a.ID, 999999, b.ID})
	s.Require().NoError(err)
	s.Len(found, 2)
}

func (s *PostgresStoreSuite) TestFindAllOrdersByID() {
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := s.store.Save(ctx, newTestBootcamp("Ordered "+uuid.NewString()))
		s.Require().NoError(err)
	}

	all, err := s.store.FindAll(ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 5)
	for i := 1; i < len(all); i++ {
		s.Less(all[i-1].ID, all[i].ID)
	}
}

func (s *PostgresStoreSuite) TestDeleteIsIdempotent() {
	ctx := context.Background()

	saved, err := s.store.Save(ctx, newTestBootcamp("Deleted "+uuid.NewString()))
	s.Require().NoError(err)

	s.Require().NoError(s.store.DeleteByID(ctx, saved.ID))
	s.Require().NoError(s.store.DeleteByID(ctx, saved.ID))

	_, err = s.store.FindByID(ctx, saved.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)

	// The freed name can be reused.
	_, err = s.store.Save(ctx, newTestBootcamp(saved.Name))
	s.Require().NoError(err)
}
