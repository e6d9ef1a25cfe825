// Package credits tracks the per-user balance spent on abstract
// simplification. New users start with MaxCredits; a spend only proceeds
// while the balance is still positive, so it never goes negative under
// concurrent requests.
package credits

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// MaxCredits is the balance seeded for a user on first sight.
const MaxCredits = 5

// ErrNoCredits is returned by Spend when the balance is exhausted.
var ErrNoCredits = errors.New("no credits remaining")

type Store interface {
	// Balance returns the remaining credits, seeding unknown users.
	Balance(ctx context.Context, userID uuid.UUID) (int, error)
	// Spend decrements the balance by one and returns the remainder, or
	// ErrNoCredits when nothing is left.
	Spend(ctx context.Context, userID uuid.UUID) (int, error)
}
