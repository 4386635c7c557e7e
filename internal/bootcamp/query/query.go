// Package query serves the read-model use cases: paginated/sorted listing and
// the most-registered-persons lookup, both merging local persistence with
// remote service data.
package query

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"bootcamp-service/internal/bootcamp/models"
	dErrors "bootcamp-service/pkg/domain-errors"
)

// sortByCapacityCount selects count-based ordering; any other value sorts by name.
const sortByCapacityCount = "capacityCount"

// Store is the subset of the persistence gateway the queries need.
type Store interface {
	FindAll(ctx context.Context) ([]models.Bootcamp, error)
	FindAllByIDs(ctx context.Context, ids []int64) ([]models.Bootcamp, error)
}

// CapacityGateway supplies enrichment data from the capacity service.
type CapacityGateway interface {
	CapacitiesWithTechnologies(ctx context.Context, bootcampID int64) ([]models.CapacityWithTechnologies, error)
	RelationCounts(ctx context.Context) (map[int64]int, error)
}

// PersonGateway supplies registered persons from the person service.
type PersonGateway interface {
	RegisteredPersons(ctx context.Context, bootcampID int64) ([]models.Person, error)
}

// Service implements the listing and most-persons queries.
type Service struct {
	store    Store
	capacity CapacityGateway
	persons  PersonGateway
	logger   *slog.Logger
}

// New constructs the query service.
func New(store Store, capacity CapacityGateway, persons PersonGateway, logger *slog.Logger) *Service {
	return &Service{store: store, capacity: capacity, persons: persons, logger: logger}
}

// ListPagedAndSorted returns one page of bootcamps in presentation order, each
// enriched with its capacities and technologies. Two strategies: capacityCount
// sorts by the remote relation counts and restricts to bootcamps present in
// them; anything else sorts case-insensitively by name. Out-of-range pages
// yield an empty result.
func (s *Service) ListPagedAndSorted(ctx context.Context, page, size int, sortBy, direction string) ([]models.BootcampWithCapacitiesAndTechnologies, error) {
	var pageItems []models.Bootcamp
	var err error
	if strings.EqualFold(sortBy, sortByCapacityCount) {
		pageItems, err = s.pageByCapacityCount(ctx, page, size, direction)
	} else {
		pageItems, err = s.pageByName(ctx, page, size, direction)
	}
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, pageItems)
}

func (s *Service) pageByCapacityCount(ctx context.Context, page, size int, direction string) ([]models.Bootcamp, error) {
	counts, err := s.capacity.RelationCounts(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to fetch relation counts")
	}

	ids := make([]int64, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	bootcamps, err := s.store.FindAllByIDs(ctx, ids)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list bootcamps")
	}

	desc := strings.EqualFold(direction, "desc")
	sort.SliceStable(bootcamps, func(i, j int) bool {
		ci, cj := counts[bootcamps[i].ID], counts[bootcamps[j].ID]
		if desc {
			return ci > cj
		}
		return ci < cj
	})
	return paginate(bootcamps, page, size), nil
}

func (s *Service) pageByName(ctx context.Context, page, size int, direction string) ([]models.Bootcamp, error) {
	bootcamps, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list bootcamps")
	}

	desc := strings.EqualFold(direction, "desc")
	sort.SliceStable(bootcamps, func(i, j int) bool {
		ni, nj := strings.ToLower(bootcamps[i].Name), strings.ToLower(bootcamps[j].Name)
		if desc {
			return ni > nj
		}
		return ni < nj
	})
	return paginate(bootcamps, page, size), nil
}

// paginate clamps the window so out-of-range pages return empty, never error.
func paginate(bootcamps []models.Bootcamp, page, size int) []models.Bootcamp {
	from := min(page*size, len(bootcamps))
	to := min(from+size, len(bootcamps))
	return bootcamps[from:to]
}

// enrich fetches each page element's capacities in parallel, preserving page
// order. Enrichment failures propagate; the page is presented whole or not at all.
func (s *Service) enrich(ctx context.Context, bootcamps []models.Bootcamp) ([]models.BootcampWithCapacitiesAndTechnologies, error) {
	out := make([]models.BootcampWithCapacitiesAndTechnologies, len(bootcamps))

	g, gctx := errgroup.WithContext(ctx)
	for i, b := range bootcamps {
		g.Go(func() error {
			capacities, err := s.capacity.CapacitiesWithTechnologies(gctx, b.ID)
			if err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to enrich bootcamp")
			}
			out[i] = models.BootcampWithCapacitiesAndTechnologies{
				ID:          b.ID,
				Name:        b.Name,
				Description: b.Description,
				ReleaseDate: b.ReleaseDate,
				Duration:    b.Duration,
				Capacities:  capacities,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindWithMostPersons enriches every bootcamp with its registered persons and
// capacities, then selects the one with the most persons. The person fetch
// falls back to an empty list on error; the capacity fetch does not. Ties go
// to the first-encountered maximum.
func (s *Service) FindWithMostPersons(ctx context.Context) (*models.BootcampWithCapacitiesAndPersons, error) {
	bootcamps, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list bootcamps")
	}
	if len(bootcamps) == 0 {
		return nil, dErrors.New(dErrors.CodeInternal, "no bootcamps found")
	}

	enriched := make([]models.BootcampWithCapacitiesAndPersons, len(bootcamps))
	g, gctx := errgroup.WithContext(ctx)
	for i, b := range bootcamps {
		g.Go(func() error {
			var persons []models.Person
			var capacities []models.CapacityWithTechnologies

			inner, ictx := errgroup.WithContext(gctx)
			inner.Go(func() error {
				p, err := s.persons.RegisteredPersons(ictx, b.ID)
				if err != nil {
					s.logger.WarnContext(ictx, "person fetch failed, using empty list",
						"bootcamp_id", b.ID,
						"error", err,
					)
					return nil
				}
				persons = p
				return nil
			})
			inner.Go(func() error {
				c, err := s.capacity.CapacitiesWithTechnologies(ictx, b.ID)
				if err != nil {
					return dErrors.Wrap(err, dErrors.CodeInternal, "failed to enrich bootcamp")
				}
				capacities = c
				return nil
			})
			if err := inner.Wait(); err != nil {
				return err
			}

			enriched[i] = models.BootcampWithCapacitiesAndPersons{
				ID:                b.ID,
				Name:              b.Name,
				Description:       b.Description,
				ReleaseDate:       b.ReleaseDate,
				Duration:          b.Duration,
				RegisteredPersons: persons,
				Capacities:        capacities,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	best := 0
	for i := 1; i < len(enriched); i++ {
		if len(enriched[i].RegisteredPersons) > len(enriched[best].RegisteredPersons) {
			best = i
		}
	}
	return &enriched[best], nil
}
