package categories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/paper-hunter/paper-hunter/internal/apperr"
	"github.com/paper-hunter/paper-hunter/internal/domain"
)

// PgStore reads the taxonomy from the categories table:
//
//	categories(source text, value text, label text, field text, description text)
type PgStore struct {
	db *pgxpool.Pool
}

var _ Store = (*PgStore)(nil)

func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{db: pool}
}

func (s *PgStore) List(ctx context.Context, source domain.Source) ([]domain.Category, error) {
	rows, err := s.db.Query(ctx,
		`SELECT value, label, COALESCE(field, ''), COALESCE(description, '')
		 FROM categories
		 WHERE source = $1
		 ORDER BY label`,
		string(source),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.Value, &c.Label, &c.Field, &c.Description); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	if len(categories) == 0 {
		return nil, apperr.NewNotFound("no categories found")
	}

	return categories, nil
}
