package credits

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgStore persists balances in the user_credits table:
//
//	user_credits(user_id uuid primary key, remaining_credits int not null)
type PgStore struct {
	db *pgxpool.Pool
}

var _ Store = (*PgStore)(nil)

func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{db: pool}
}

func (s *PgStore) Balance(ctx context.Context, userID uuid.UUID) (int, error) {
	var balance int
	err := s.db.QueryRow(ctx,
		`SELECT remaining_credits FROM user_credits WHERE user_id = $1`,
		userID,
	).Scan(&balance)

	if errors.Is(err, pgx.ErrNoRows) {
		// Seed the row, keeping whatever a concurrent seeder wrote.
		err = s.db.QueryRow(ctx,
			`INSERT INTO user_credits (user_id, remaining_credits)
			 VALUES ($1, $2)
			 ON CONFLICT (user_id) DO UPDATE SET remaining_credits = user_credits.remaining_credits
			 RETURNING remaining_credits`,
			userID, MaxCredits,
		).Scan(&balance)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read credits: %w", err)
	}

	return balance, nil
}

func (s *PgStore) Spend(ctx context.Context, userID uuid.UUID) (int, error) {
	var remaining int
	err := s.db.QueryRow(ctx,
		`UPDATE user_credits
		 SET remaining_credits = remaining_credits - 1
		 WHERE user_id = $1 AND remaining_credits > 0
		 RETURNING remaining_credits`,
		userID,
	).Scan(&remaining)

	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNoCredits
	}
	if err != nil {
		return 0, fmt.Errorf("failed to spend credit: %w", err)
	}

	return remaining, nil
}
