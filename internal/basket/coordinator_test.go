package basket

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VNoormal7/NeedsConnectV2/internal/kv"
	"github.com/VNoormal7/NeedsConnectV2/internal/needs"
	"github.com/VNoormal7/NeedsConnectV2/pkg/types"
)

func newCoordinator(t *testing.T) (*Coordinator, *needs.Repository, *needs.Ledger) {
	t.Helper()

	store := kv.NewMemory()
	repo := needs.NewRepository(store)
	ledger := needs.NewLedger(repo)
	coordinator := NewCoordinator(store, repo)
	ledger.Subscribe(coordinator.HandleFundingApplied)

	return coordinator, repo, ledger
}

func createNeed(t *testing.T, repo *needs.Repository, title string) *types.Need {
	t.Helper()

	need, err := repo.Create(context.Background(), types.CreateNeedInput{
		Title:        title,
		Description:  "description",
		Category:     types.CategoryFood,
		Urgency:      3,
		TargetAmount: 1000,
	})
	require.NoError(t, err)
	return need
}

func TestAddIncrementsInterestOnce(t *testing.T) {
	ctx := context.Background()
	coordinator, repo, _ := newCoordinator(t)
	need := createNeed(t, repo, "Emergency meals")

	require.NoError(t, coordinator.Add(ctx, need.ID))
	require.NoError(t, coordinator.Add(ctx, need.ID), "duplicate add is a no-op")

	stored, err := repo.Need(ctx, need.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.InterestedHelpers, "interest bumps exactly once per distinct add")

	staged, err := coordinator.List(ctx)
	require.NoError(t, err)
	assert.Len(t, staged, 1)
}

func TestAddUnknownNeed(t *testing.T) {
	coordinator, _, _ := newCoordinator(t)

	err := coordinator.Add(context.Background(), 42)
	assert.ErrorIs(t, err, types.ErrNeedNotFound)
}

func TestRemoveNeverDecrementsInterest(t *testing.T) {
	ctx := context.Background()
	coordinator, repo, _ := newCoordinator(t)
	need := createNeed(t, repo, "Emergency meals")

	require.NoError(t, coordinator.Add(ctx, need.ID))
	require.NoError(t, coordinator.Remove(ctx, need.ID))
	require.NoError(t, coordinator.Remove(ctx, need.ID), "removing an absent entry is a no-op")

	stored, err := repo.Need(ctx, need.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.InterestedHelpers, "interest is a one-way signal")

	staged, err := coordinator.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, staged)
}

func TestReAddAfterRemoveIncrementsAgain(t *testing.T) {
	ctx := context.Background()
	coordinator, repo, _ := newCoordinator(t)
	need := createNeed(t, repo, "Emergency meals")

	require.NoError(t, coordinator.Add(ctx, need.ID))
	require.NoError(t, coordinator.Remove(ctx, need.ID))
	require.NoError(t, coordinator.Add(ctx, need.ID))

	stored, err := repo.Need(ctx, need.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.InterestedHelpers)
}

func TestListFiltersDeletedNeeds(t *testing.T) {
	ctx := context.Background()
	coordinator, repo, _ := newCoordinator(t)
	kept := createNeed(t, repo, "Kept")
	doomed := createNeed(t, repo, "Doomed")

	require.NoError(t, coordinator.Add(ctx, kept.ID))
	require.NoError(t, coordinator.Add(ctx, doomed.ID))
	require.NoError(t, repo.Delete(ctx, doomed.ID))

	staged, err := coordinator.List(ctx)
	require.NoError(t, err)
	require.Len(t, staged, 1)
	assert.Equal(t, kept.ID, staged[0].ID)
}

func TestListReflectsCurrentState(t *testing.T) {
	ctx := context.Background()
	coordinator, repo, ledger := newCoordinator(t)
	other := createNeed(t, repo, "Other")
	funded := createNeed(t, repo, "Funded")

	require.NoError(t, coordinator.Add(ctx, other.ID))
	require.NoError(t, coordinator.Add(ctx, funded.ID))

	_, err := ledger.Fund(ctx, other.ID, 100)
	require.NoError(t, err)

	staged, err := coordinator.List(ctx)
	require.NoError(t, err)
	require.Len(t, staged, 1)
	assert.Equal(t, funded.ID, staged[0].ID)
}

func TestFundingRemovesFromBasket(t *testing.T) {
	ctx := context.Background()
	coordinator, repo, ledger := newCoordinator(t)
	need := createNeed(t, repo, "Emergency meals")

	require.NoError(t, coordinator.Add(ctx, need.ID))

	// A partial contribution still completes the staged intent.
	_, err := ledger.Fund(ctx, need.ID, 50)
	require.NoError(t, err)

	staged, err := coordinator.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, staged)

	stored, err := repo.Need(ctx, need.ID)
	require.NoError(t, err)
	assert.Equal(t, 50.0, stored.CurrentAmount)
	assert.Equal(t, 1, stored.InterestedHelpers)
}
