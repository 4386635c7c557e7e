package query

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bootcamp-service/internal/bootcamp/models"
	"bootcamp-service/internal/bootcamp/store"
	dErrors "bootcamp-service/pkg/domain-errors"
)

// fakeCapacity stubs the capacity gateway with per-call functions.
type fakeCapacity struct {
	capacities func(bootcampID int64) ([]models.CapacityWithTechnologies, error)
	counts     func() (map[int64]int, error)
}

func (f *fakeCapacity) CapacitiesWithTechnologies(ctx context.Context, bootcampID int64) ([]models.CapacityWithTechnologies, error) {
	if f.capacities == nil {
		return nil, nil
	}
	return f.capacities(bootcampID)
}

func (f *fakeCapacity) RelationCounts(ctx context.Context) (map[int64]int, error) {
	if f.counts == nil {
		return nil, nil
	}
	return f.counts()
}

type fakePersons struct {
	persons func(bootcampID int64) ([]models.Person, error)
}

func (f *fakePersons) RegisteredPersons(ctx context.Context, bootcampID int64) ([]models.Person, error) {
	if f.persons == nil {
		return nil, nil
	}
	return f.persons(bootcampID)
}

func seedStore(t *testing.T, bootcamps ...models.Bootcamp) *store.InMemory {
	t.Helper()
	s := store.NewInMemory()
	for _, b := range bootcamps {
		_, err := s.Save(context.Background(), b)
		require.NoError(t, err)
	}
	return s
}

func bootcamp(name string, duration int) models.Bootcamp {
	return models.Bootcamp{
		Name:        name,
		Description: "desc",
		ReleaseDate: time.Date(2024, 1, duration, 0, 0, 0, 0, time.UTC),
		Duration:    duration,
	}
}

func newService(s *store.InMemory, capacity *fakeCapacity, persons *fakePersons) *Service {
	return New(s, capacity, persons, slog.New(slog.DiscardHandler))
}

func names(items []models.BootcampWithCapacitiesAndTechnologies) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name
	}
	return out
}

func TestListSortsByNameCaseInsensitive(t *testing.T) {
	s := seedStore(t, bootcamp("banana", 1), bootcamp("Apple", 2), bootcamp("cherry", 3))
	svc := newService(s, &fakeCapacity{}, &fakePersons{})

	got, err := svc.ListPagedAndSorted(context.Background(), 0, 10, "name", "asc")
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "banana", "cherry"}, names(got))

	got, err = svc.ListPagedAndSorted(context.Background(), 0, 10, "name", "DESC")
	require.NoError(t, err)
	assert.Equal(t, []string{"cherry", "banana", "Apple"}, names(got))
}

func TestListSortsByCapacityCount(t *testing.T) {
	s := seedStore(t, bootcamp("first", 1), bootcamp("second", 2), bootcamp("third", 3))
	capacity := &fakeCapacity{
		// Bootcamp 2 is absent from the counts and must not appear.
		counts: func() (map[int64]int, error) {
			return map[int64]int{1: 5, 3: 2}, nil
		},
	}
	svc := newService(s, capacity, &fakePersons{})

	got, err := svc.ListPagedAndSorted(context.Background(), 0, 10, "capacitycount", "asc")
	require.NoError(t, err)
	assert.Equal(t, []string{"third", "first"}, names(got))

	got, err = svc.ListPagedAndSorted(context.Background(), 0, 10, "capacityCount", "desc")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "third"}, names(got))
}

func TestListPaginationClampsAndCoversAll(t *testing.T) {
	var all []models.Bootcamp
	for i := 1; i <= 7; i++ {
		all = append(all, bootcamp(fmt.Sprintf("bootcamp-%02d", i), i))
	}
	s := seedStore(t, all...)
	svc := newService(s, &fakeCapacity{}, &fakePersons{})

	// Concatenating every page reproduces the full sorted set.
	var collected []string
	for page := 0; ; page++ {
		got, err := svc.ListPagedAndSorted(context.Background(), page, 3, "name", "asc")
		require.NoError(t, err)
		if len(got) == 0 {
			break
		}
		collected = append(collected, names(got)...)
	}
	require.Len(t, collected, 7)
	for i, name := range collected {
		assert.Equal(t, fmt.Sprintf("bootcamp-%02d", i+1), name)
	}

	// Out-of-range pages yield empty, never an error.
	got, err := svc.ListPagedAndSorted(context.Background(), 100, 3, "name", "asc")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListEnrichesEachPageElement(t *testing.T) {
	s := seedStore(t, bootcamp("alpha", 1))
	capacity := &fakeCapacity{
		capacities: func(bootcampID int64) ([]models.CapacityWithTechnologies, error) {
			return []models.CapacityWithTechnologies{
				{ID: 10, Name: "backend", Technologies: []models.TechnologySummary{{ID: 100, Name: "go"}}},
			}, nil
		},
	}
	svc := newService(s, capacity, &fakePersons{})

	got, err := svc.ListPagedAndSorted(context.Background(), 0, 10, "name", "asc")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0].Capacities, 1)
	assert.Equal(t, "backend", got[0].Capacities[0].Name)
}

func TestListEnrichmentErrorPropagates(t *testing.T) {
	s := seedStore(t, bootcamp("alpha", 1))
	capacity := &fakeCapacity{
		capacities: func(bootcampID int64) ([]models.CapacityWithTechnologies, error) {
			return nil, errors.New("capacity service down")
		},
	}
	svc := newService(s, capacity, &fakePersons{})

	_, err := svc.ListPagedAndSorted(context.Background(), 0, 10, "name", "asc")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
}

func TestFindWithMostPersons(t *testing.T) {
	t.Run("selects maximum with first-encountered tie break", func(t *testing.T) {
		s := seedStore(t, bootcamp("alpha", 1), bootcamp("beta", 2), bootcamp("gamma", 3))
		persons := &fakePersons{
			persons: func(bootcampID int64) ([]models.Person, error) {
				switch bootcampID {
				case 1:
					return []models.Person{{Name: "a"}}, nil
				case 2:
					return []models.Person{{Name: "b"}, {Name: "c"}}, nil
				default:
					// Same count as bootcamp 2; the earlier one must win.
					return []models.Person{{Name: "d"}, {Name: "e"}}, nil
				}
			},
		}
		svc := newService(s, &fakeCapacity{}, persons)

		got, err := svc.FindWithMostPersons(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "beta", got.Name)
		assert.Len(t, got.RegisteredPersons, 2)
	})

	t.Run("person fetch failure falls back to empty list", func(t *testing.T) {
		s := seedStore(t, bootcamp("alpha", 1), bootcamp("beta", 2))
		persons := &fakePersons{
			persons: func(bootcampID int64) ([]models.Person, error) {
				if bootcampID == 1 {
					return nil, errors.New("person service down")
				}
				return []models.Person{{Name: "x"}}, nil
			},
		}
		svc := newService(s, &fakeCapacity{}, persons)

		got, err := svc.FindWithMostPersons(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "beta", got.Name)
	})

	t.Run("capacity fetch failure propagates", func(t *testing.T) {
		s := seedStore(t, bootcamp("alpha", 1))
		capacity := &fakeCapacity{
			capacities: func(bootcampID int64) ([]models.CapacityWithTechnologies, error) {
				return nil, errors.New("capacity service down")
			},
		}
		svc := newService(s, capacity, &fakePersons{})

		_, err := svc.FindWithMostPersons(context.Background())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	})

	t.Run("empty store fails internal", func(t *testing.T) {
		svc := newService(store.NewInMemory(), &fakeCapacity{}, &fakePersons{})

		_, err := svc.FindWithMostPersons(context.Background())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	})
}
