package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"bootcamp-service/internal/bootcamp/models"
	"bootcamp-service/pkg/platform/sentinel"
)

// Schema is the DDL for the bootcamps table, applied by integration tests
// and migration tooling.
//
//go:embed schema.sql
var Schema string

// uniqueViolation is the PostgreSQL error code for unique constraint failures.
const uniqueViolation = "23505"

// Postgres persists bootcamps in PostgreSQL.
type Postgres struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed bootcamp store.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Save(ctx context.Context, b models.Bootcamp) (*models.Bootcamp, error) {
	const q = `INSERT INTO bootcamps (name, description, release_date, duration)
		VALUES ($1, $2, $3, $4) RETURNING id`

	err := s.db.QueryRowContext(ctx, q, b.Name, b.Description, b.ReleaseDate, b.Duration).Scan(&b.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, sentinel.ErrConflict
		}
		return nil, fmt.Errorf("save bootcamp: %w", err)
	}
	return &b, nil
}

func (s *Postgres) ExistsByName(ctx context.Context, name string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM bootcamps WHERE name = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, q, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("check bootcamp name: %w", err)
	}
	return exists, nil
}

func (s *Postgres) ExistsByID(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM bootcamps WHERE id = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, q, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check bootcamp id: %w", err)
	}
	return exists, nil
}

func (s *Postgres) FindByID(ctx context.Context, id int64) (*models.Bootcamp, error) {
	const q = `SELECT id, name, description, release_date, duration FROM bootcamps WHERE id = $1`

	var b models.Bootcamp
	err := s.db.QueryRowContext(ctx, q, id).Scan(&b.ID, &b.Name, &b.Description, &b.ReleaseDate, &b.Duration)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find bootcamp: %w", err)
	}
	return &b, nil
}

func (s *Postgres) FindAll(ctx context.Context) ([]models.Bootcamp, error) {
	const q = `SELECT id, name, description, release_date, duration FROM bootcamps ORDER BY id`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list bootcamps: %w", err)
	}
	defer rows.Close()
	return scanBootcamps(rows)
}

func (s *Postgres) FindAllByIDs(ctx context.Context, ids []int64) ([]models.Bootcamp, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	const q = `SELECT id, name, description, release_date, duration FROM bootcamps WHERE id = ANY($1) ORDER BY id`

	rows, err := s.db.QueryContext(ctx, q, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("list bootcamps by ids: %w", err)
	}
	defer rows.Close()
	return scanBootcamps(rows)
}

func (s *Postgres) DeleteByID(ctx context.Context, id int64) error {
	const q = `DELETE FROM bootcamps WHERE id = $1`

	if _, err := s.db.ExecContext(ctx, q, id); err != nil {
		return fmt.Errorf("delete bootcamp: %w", err)
	}
	return nil
}

func scanBootcamps(rows *sql.Rows) ([]models.Bootcamp, error) {
	var out []models.Bootcamp
	for rows.Next() {
		var b models.Bootcamp
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.ReleaseDate, &b.Duration); err != nil {
			return nil, fmt.Errorf("scan bootcamp: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bootcamps: %w", err)
	}
	return out, nil
}
