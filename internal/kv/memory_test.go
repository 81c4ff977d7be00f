package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VNoormal7/NeedsConnectV2/pkg/types"
)

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	needs := []types.Need{{ID: 1, Title: "Emergency meals", TargetAmount: 5000}}
	require.NoError(t, store.Set(ctx, KeyNeeds, needs))

	var loaded []types.Need
	require.NoError(t, store.Get(ctx, KeyNeeds, &loaded))
	assert.Equal(t, needs, loaded)
}

func TestMemoryMissingKey(t *testing.T) {
	store := NewMemory()

	var out []types.Need
	err := store.Get(context.Background(), "nope", &out)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryRemove(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	require.NoError(t, store.Set(ctx, KeyCurrentUser, types.User{Username: "admin", Role: types.RoleAdmin}))
	require.NoError(t, store.Remove(ctx, KeyCurrentUser))

	var user types.User
	assert.ErrorIs(t, store.Get(ctx, KeyCurrentUser, &user), ErrKeyNotFound)

	// Removing an absent key is fine.
	require.NoError(t, store.Remove(ctx, KeyCurrentUser))
}

func TestMemoryReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	require.NoError(t, store.Set(ctx, KeyNeeds, []types.Need{{ID: 1, CurrentAmount: 100}}))

	var first []types.Need
	require.NoError(t, store.Get(ctx, KeyNeeds, &first))
	first[0].CurrentAmount = 999

	var second []types.Need
	require.NoError(t, store.Get(ctx, KeyNeeds, &second))
	assert.Equal(t, 100.0, second[0].CurrentAmount, "mutating a read never leaks into the store")
}

func TestOpenMemoryBackend(t *testing.T) {
	store, closeStore, err := Open(context.Background(), &types.Config{StorageBackend: BackendMemory})
	require.NoError(t, err)
	defer closeStore()

	assert.IsType(t, &Memory{}, store)
}

func TestOpenUnknownBackend(t *testing.T) {
	_, _, err := Open(context.Background(), &types.Config{StorageBackend: "redis"})
	assert.Error(t, err)
}
