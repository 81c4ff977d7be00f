package needs

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/VNoormal7/NeedsConnectV2/internal/kv"
	"github.com/VNoormal7/NeedsConnectV2/internal/utils"
	"github.com/VNoormal7/NeedsConnectV2/pkg/types"
)

// Repository owns the authoritative needs collection under the "needs" key.
// Every mutation re-reads the stored collection first; a failed write leaves
// the durable value untouched.
type Repository struct {
	store kv.Store
}

func NewRepository(store kv.Store) *Repository {
	return &Repository{store: store}
}

// List returns all needs in insertion order. A missing key is an empty
// collection, not an error.
func (r *Repository) List(ctx context.Context) ([]types.Need, error) {
	var needs []types.Need
	err := r.store.Get(ctx, kv.KeyNeeds, &needs)
	if err != nil && !errors.Is(err, kv.ErrKeyNotFound) {
		return nil, utils.ErrorWrapOrNil(err, "failed to load needs")
	}

	if needs == nil {
		needs = []types.Need{}
	}

	return needs, nil
}

func (r *Repository) Need(ctx context.Context, needID int) (*types.Need, error) {
	needs, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range needs {
		if needs[i].ID == needID {
			need := needs[i]
			return &need, nil
		}
	}

	return nil, types.ErrNeedNotFound
}

func (r *Repository) Create(ctx context.Context, input types.CreateNeedInput) (*types.Need, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	needs, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	// max(ids)+1: ids are never reused while the highest-id need survives,
	// but deleting it frees its id for the next create. Known limitation.
	need := types.Need{
		ID:                nextID(needs),
		Title:             strings.TrimSpace(input.Title),
		Description:       strings.TrimSpace(input.Description),
		Category:          input.Category,
		Urgency:           input.Urgency,
		TargetAmount:      input.TargetAmount,
		CurrentAmount:     0,
		InterestedHelpers: 0,
		CreatedAt:         time.Now().UTC(),
	}

	needs = append(needs, need)
	if err := r.save(ctx, needs); err != nil {
		return nil, err
	}

	return &need, nil
}

// Update merges the non-nil input fields into the stored need. If the edit
// lowers targetAmount below currentAmount, currentAmount is clamped down so
// the funding invariant survives admin edits.
func (r *Repository) Update(ctx context.Context, needID int, input types.UpdateNeedInput) (*types.Need, error) {
	if err := validateUpdate(input); err != nil {
		return nil, err
	}

	needs, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(needs, needID)
	if idx < 0 {
		return nil, types.ErrNeedNotFound
	}

	need := &needs[idx]
	if input.Title != nil {
		need.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		need.Description = strings.TrimSpace(*input.Description)
	}
	if input.Category != nil {
		need.Category = *input.Category
	}
	if input.Urgency != nil {
		need.Urgency = *input.Urgency
	}
	if input.TargetAmount != nil {
		need.TargetAmount = *input.TargetAmount
	}

	if need.CurrentAmount > need.TargetAmount {
		need.CurrentAmount = need.TargetAmount
	}

	if err := r.save(ctx, needs); err != nil {
		return nil, err
	}

	updated := needs[idx]
	return &updated, nil
}

// Delete removes the need with the given id. Unknown ids are a no-op.
func (r *Repository) Delete(ctx context.Context, needID int) error {
	needs, err := r.List(ctx)
	if err != nil {
		return err
	}

	if indexOf(needs, needID) < 0 {
		return nil
	}

	remaining := make([]types.Need, 0, len(needs)-1)
	for _, need := range needs {
		if need.ID != needID {
			remaining = append(remaining, need)
		}
	}

	return r.save(ctx, remaining)
}

// IncrementInterest bumps the need's interested-helpers counter by one.
// The basket coordinator calls this exactly once per distinct basket add.
func (r *Repository) IncrementInterest(ctx context.Context, needID int) (*types.Need, error) {
	needs, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(needs, needID)
	if idx < 0 {
		return nil, types.ErrNeedNotFound
	}

	needs[idx].InterestedHelpers++

	if err := r.save(ctx, needs); err != nil {
		return nil, err
	}

	updated := needs[idx]
	return &updated, nil
}

func (r *Repository) save(ctx context.Context, needs []types.Need) error {
	return utils.ErrorWrapOrNil(r.store.Set(ctx, kv.KeyNeeds, needs), "failed to save needs")
}

func nextID(needs []types.Need) int {
	maxID := 0
	for _, need := range needs {
		if need.ID > maxID {
			maxID = need.ID
		}
	}
	return maxID + 1
}

func indexOf(needs []types.Need, needID int) int {
	for i := range needs {
		if needs[i].ID == needID {
			return i
		}
	}
	return -1
}

func validateCreate(input types.CreateNeedInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return types.NewValidationError("title", "must not be empty")
	}
	if strings.TrimSpace(input.Description) == "" {
		return types.NewValidationError("description", "must not be empty")
	}
	if !input.Category.Valid() {
		return types.NewValidationError("category", "unknown category")
	}
	if input.Urgency < 1 || input.Urgency > 5 {
		return types.NewValidationError("urgency", "must be between 1 and 5")
	}
	if input.TargetAmount <= 0 {
		return types.NewValidationError("target_amount", "must be positive")
	}
	return nil
}

func validateUpdate(input types.UpdateNeedInput) error {
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return types.NewValidationError("title", "must not be empty")
	}
	if input.Description != nil && strings.TrimSpace(*input.Description) == "" {
		return types.NewValidationError("description", "must not be empty")
	}
	if input.Category != nil && !input.Category.Valid() {
		return types.NewValidationError("category", "unknown category")
	}
	if input.Urgency != nil && (*input.Urgency < 1 || *input.Urgency > 5) {
		return types.NewValidationError("urgency", "must be between 1 and 5")
	}
	if input.TargetAmount != nil && *input.TargetAmount <= 0 {
		return types.NewValidationError("target_amount", "must be positive")
	}
	return nil
}
