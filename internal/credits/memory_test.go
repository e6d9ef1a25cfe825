package credits

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_BalanceSeedsNewUser(t *testing.T) {
	store := NewMemoryStore()
	userID := uuid.New()

	balance, err := store.Balance(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, MaxCredits, balance)

	// A second read does not reseed.
	_, err = store.Spend(context.Background(), userID)
	require.NoError(t, err)

	balance, err = store.Balance(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, MaxCredits-1, balance)
}

func TestMemoryStore_SpendDecrementsToZero(t *testing.T) {
	store := NewMemoryStore()
	userID := uuid.New()

	_, err := store.Balance(context.Background(), userID)
	require.NoError(t, err)

	for want := MaxCredits - 1; want >= 0; want-- {
		balance, err := store.Spend(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, want, balance)
	}

	_, err = store.Spend(context.Background(), userID)
	assert.ErrorIs(t, err, ErrNoCredits)
}

func TestMemoryStore_SpendUnknownUser(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Spend(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNoCredits)
}

func TestMemoryStore_UsersAreIndependent(t *testing.T) {
	store := NewMemoryStore()
	spender := uuid.New()
	bystander := uuid.New()

	_, err := store.Balance(context.Background(), spender)
	require.NoError(t, err)
	_, err = store.Balance(context.Background(), bystander)
	require.NoError(t, err)

	_, err = store.Spend(context.Background(), spender)
	require.NoError(t, err)

	balance, err := store.Balance(context.Background(), bystander)
	require.NoError(t, err)
	assert.Equal(t, MaxCredits, balance)
}
