package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"bootcamp-service/internal/bootcamp/models"
	"bootcamp-service/pkg/platform/sentinel"
)

type MemoryStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func (s *MemoryStoreSuite) newBootcamp(name string) models.Bootcamp {
	return models.Bootcamp{
		Name:        name,
		Description: "desc",
		ReleaseDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Duration:    10,
	}
}

func (s *MemoryStoreSuite) TestSaveAssignsSequentialIDs() {
	first, err := s.store.Save(s.ctx, s.newBootcamp("first"))
	s.Require().NoError(err)
	second, err := s.store.Save(s.ctx, s.newBootcamp("second"))
	s.Require().NoError(err)

	s.Equal(int64(1), first.ID)
	s.Equal(int64(2), second.ID)
}

func (s *MemoryStoreSuite) TestNameUniqueness() {
	_, err := s.store.Save(s.ctx, s.newBootcamp("dup"))
	s.Require().NoError(err)

	_, err = s.store.Save(s.ctx, s.newBootcamp("dup"))
	s.Require().ErrorIs(err, sentinel.ErrConflict)

	exists, err := s.store.ExistsByName(s.ctx, "dup")
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.store.ExistsByName(s.ctx, "other")
	s.Require().NoError(err)
	s.False(exists)
}

func (s *MemoryStoreSuite) TestLookups() {
	saved, err := s.store.Save(s.ctx, s.newBootcamp("lookup"))
	s.Require().NoError(err)

	s.Run("finds by id", func() {
		found, err := s.store.FindByID(s.ctx, saved.ID)
		s.Require().NoError(err)
		s.Equal("lookup", found.Name)
	})

	s.Run("returns ErrNotFound for unknown id", func() {
		_, err := s.store.FindByID(s.ctx, 999)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("exists by id", func() {
		exists, err := s.store.ExistsByID(s.ctx, saved.ID)
		s.Require().NoError(err)
		s.True(exists)

		exists, err = s.store.ExistsByID(s.ctx, 999)
		s.Require().NoError(err)
		s.False(exists)
	})
}

func (s *MemoryStoreSuite) TestFindAllByIDsOmitsMissing() {
	a, err := s.store.Save(s.ctx, s.newBootcamp("a"))
	s.Require().NoError(err)
	b, err := s.store.Save(s.ctx, s.newBootcamp("b"))
	s.Require().NoError(err)

	found, err := s.store.FindAllByIDs(s.ctx, []int64{a.ID, 999, b.ID})
	s.Require().NoError(err)
	s.Len(found, 2)
}

func (s *MemoryStoreSuite) TestDeleteIsIdempotent() {
	saved, err := s.store.Save(s.ctx, s.newBootcamp("gone"))
	s.Require().NoError(err)

	s.Require().NoError(s.store.DeleteByID(s.ctx, saved.ID))
	s.Require().NoError(s.store.DeleteByID(s.ctx, saved.ID))

	exists, err := s.store.ExistsByID(s.ctx, saved.ID)
	s.Require().NoError(err)
	s.False(exists)

	// The freed name can be reused.
	_, err = s.store.Save(s.ctx, s.newBootcamp("gone"))
	s.Require().NoError(err)
}
