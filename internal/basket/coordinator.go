package basket

import (
	"context"
	"errors"

	"github.com/VNoormal7/NeedsConnectV2/internal/kv"
	"github.com/VNoormal7/NeedsConnectV2/internal/needs"
	"github.com/VNoormal7/NeedsConnectV2/internal/utils"
	"github.com/VNoormal7/NeedsConnectV2/pkg/types"
)

// Coordinator owns the basket: the set of needs staged for funding. The
// basket persists point-in-time need snapshots under the "basket" key but
// holds only weak references into the needs collection — a snapshot whose
// need has been deleted is treated as absent at read time.
type Coordinator struct {
	store kv.Store
	needs *needs.Repository
}

func NewCoordinator(store kv.Store, needsRepo *needs.Repository) *Coordinator {
	return &Coordinator{store: store, needs: needsRepo}
}

// Add stages a need for funding. Duplicate adds are a no-op. The first add
// of a need increments its interested-helpers counter exactly once; later
// adds of the same need never touch it again.
func (c *Coordinator) Add(ctx context.Context, needID int) error {
	need, err := c.needs.Need(ctx, needID)
	if err != nil {
		return err
	}

	entries, err := c.entries(ctx)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.ID == needID {
			return nil
		}
	}

	entries = append(entries, *need)
	if err := c.save(ctx, entries); err != nil {
		return err
	}

	_, err = c.needs.IncrementInterest(ctx, needID)
	return err
}

// Remove drops a need from the basket. Unknown ids are a no-op, and the
// need's interested-helpers counter is never decremented: interest is a
// one-way signal of having ever staged the need.
func (c *Coordinator) Remove(ctx context.Context, needID int) error {
	entries, err := c.entries(ctx)
	if err != nil {
		return err
	}

	kept := make([]types.Need, 0, len(entries))
	for _, entry := range entries {
		if entry.ID != needID {
			kept = append(kept, entry)
		}
	}

	if len(kept) == len(entries) {
		return nil
	}

	return c.save(ctx, kept)
}

// List returns the current state of every staged need, in staging order.
// Entries whose need has been deleted are filtered out here, not pruned
// from storage.
func (c *Coordinator) List(ctx context.Context) ([]types.Need, error) {
	entries, err := c.entries(ctx)
	if err != nil {
		return nil, err
	}

	all, err := c.needs.List(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]types.Need, len(all))
	for _, need := range all {
		byID[need.ID] = need
	}

	staged := make([]types.Need, 0, len(entries))
	for _, entry := range entries {
		if need, ok := byID[entry.ID]; ok {
			staged = append(staged, need)
		}
	}

	return staged, nil
}

// HandleFundingApplied removes a need from the basket once a funding
// transaction lands on it, whether or not the need reached its target.
// Registered with the funding ledger at wiring time.
func (c *Coordinator) HandleFundingApplied(ctx context.Context, event needs.FundingApplied) error {
	return c.Remove(ctx, event.NeedID)
}

func (c *Coordinator) entries(ctx context.Context) ([]types.Need, error) {
	var entries []types.Need
	err := c.store.Get(ctx, kv.KeyBasket, &entries)
	if err != nil && !errors.Is(err, kv.ErrKeyNotFound) {
		return nil, utils.ErrorWrapOrNil(err, "failed to load basket")
	}

	if entries == nil {
		entries = []types.Need{}
	}

	return entries, nil
}

func (c *Coordinator) save(ctx context.Context, entries []types.Need) error {
	return utils.ErrorWrapOrNil(c.store.Set(ctx, kv.KeyBasket, entries), "failed to save basket")
}
