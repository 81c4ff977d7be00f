package volunteer

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/VNoormal7/NeedsConnectV2/internal/kv"
	"github.com/VNoormal7/NeedsConnectV2/internal/utils"
	"github.com/VNoormal7/NeedsConnectV2/pkg/types"
)

// VolunteerRepository owns volunteer registrations under the "volunteers" key.
type VolunteerRepository struct {
	store kv.Store
}

func NewVolunteerRepository(store kv.Store) *VolunteerRepository {
	return &VolunteerRepository{store: store}
}

func (r *VolunteerRepository) List(ctx context.Context) ([]types.Volunteer, error) {
	var volunteers []types.Volunteer
	err := r.store.Get(ctx, kv.KeyVolunteers, &volunteers)
	if err != nil && !errors.Is(err, kv.ErrKeyNotFound) {
		return nil, utils.ErrorWrapOrNil(err, "failed to load volunteers")
	}

	if volunteers == nil {
		volunteers = []types.Volunteer{}
	}

	return volunteers, nil
}

func (r *VolunteerRepository) Create(ctx context.Context, input types.CreateVolunteerInput) (*types.Volunteer, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, types.NewValidationError("name", "must not be empty")
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, types.NewValidationError("email", "must not be empty")
	}

	volunteers, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	volunteer := types.Volunteer{
		ID:           nextVolunteerID(volunteers),
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.TrimSpace(input.Email),
		Phone:        strings.TrimSpace(input.Phone),
		Skills:       strings.TrimSpace(input.Skills),
		RegisteredAt: time.Now().UTC(),
	}

	volunteers = append(volunteers, volunteer)
	if err := r.save(ctx, volunteers); err != nil {
		return nil, err
	}

	return &volunteer, nil
}

func (r *VolunteerRepository) save(ctx context.Context, volunteers []types.Volunteer) error {
	return utils.ErrorWrapOrNil(r.store.Set(ctx, kv.KeyVolunteers, volunteers), "failed to save volunteers")
}

func nextVolunteerID(volunteers []types.Volunteer) int {
	maxID := 0
	for _, volunteer := range volunteers {
		if volunteer.ID > maxID {
			maxID = volunteer.ID
		}
	}
	return maxID + 1
}
