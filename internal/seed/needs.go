package seed

import (
	"context"
	"errors"
	"time"

	"github.com/VNoormal7/NeedsConnectV2/internal/kv"
	"github.com/VNoormal7/NeedsConnectV2/pkg/types"
)

// Initialize installs the sample needs when the store has none, and makes
// sure the peripheral collections exist as empty arrays. Idempotent: a
// populated store is left alone.
func Initialize(ctx context.Context, store kv.Store) error {
	var existing []types.Need
	err := store.Get(ctx, kv.KeyNeeds, &existing)
	if err != nil && !errors.Is(err, kv.ErrKeyNotFound) {
		return err
	}

	if len(existing) == 0 {
		if err := store.Set(ctx, kv.KeyNeeds, sampleNeeds(time.Now().UTC())); err != nil {
			return err
		}
	}

	var tasks []types.VolunteerTask
	err = store.Get(ctx, kv.KeyTasks, &tasks)
	if errors.Is(err, kv.ErrKeyNotFound) {
		if err := store.Set(ctx, kv.KeyTasks, []types.VolunteerTask{}); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	var volunteers []types.Volunteer
	err = store.Get(ctx, kv.KeyVolunteers, &volunteers)
	if errors.Is(err, kv.ErrKeyNotFound) {
		if err := store.Set(ctx, kv.KeyVolunteers, []types.Volunteer{}); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	return nil
}

// sampleNeeds is the starter catalog. Ages are relative to now so the
// priority decay is visible immediately on a fresh install.
func sampleNeeds(now time.Time) []types.Need {
	daysAgo := func(days int) time.Time {
		return now.AddDate(0, 0, -days)
	}

	return []types.Need{
		{
			ID:           1,
			Title:        "Emergency meals",
			Description:  "Provide emergency meals for families in need",
			Category:     types.CategoryFood,
			Urgency:      5,
			TargetAmount: 5000,
			CreatedAt:    daysAgo(3),
		},
		{
			ID:           2,
			Title:        "School supplies",
			Description:  "Essential school supplies for underprivileged students",
			Category:     types.CategoryEducation,
			Urgency:      4,
			TargetAmount: 3000,
			CreatedAt:    daysAgo(1),
		},
		{
			ID:           3,
			Title:        "Winter blankets",
			Description:  "Warm blankets for homeless individuals during winter",
			Category:     types.CategoryShelter,
			Urgency:      5,
			TargetAmount: 2000,
			CreatedAt:    daysAgo(5),
		},
		{
			ID:           4,
			Title:        "Medical supplies",
			Description:  "Essential medical supplies for community health centers",
			Category:     types.CategoryHealth,
			Urgency:      3,
			TargetAmount: 4000,
			CreatedAt:    daysAgo(2),
		},
		{
			ID:           5,
			Title:        "Tutoring program",
			Description:  "After-school tutoring program for at-risk youth",
			Category:     types.CategoryEducation,
			Urgency:      2,
			TargetAmount: 1500,
			CreatedAt:    daysAgo(7),
		},
		{
			ID:           6,
			Title:        "Water filters",
			Description:  "Clean water filters for communities without access",
			Category:     types.CategoryHealth,
			Urgency:      4,
			TargetAmount: 2500,
			CreatedAt:    daysAgo(4),
		},
		{
			ID:           7,
			Title:        "Job training",
			Description:  "Vocational training programs for unemployed adults",
			Category:     types.CategoryEducation,
			Urgency:      3,
			TargetAmount: 1800,
			CreatedAt:    daysAgo(6),
		},
		{
			ID:           8,
			Title:        "Housing repairs",
			Description:  "Critical housing repairs for low-income families",
			Category:     types.CategoryShelter,
			Urgency:      5,
			TargetAmount: 6000,
			CreatedAt:    daysAgo(1),
		},
		{
			ID:           9,
			Title:        "Food bank",
			Description:  "Stock food bank with nutritious items for families",
			Category:     types.CategoryFood,
			Urgency:      4,
			TargetAmount: 3500,
			CreatedAt:    daysAgo(3),
		},
		{
			ID:           10,
			Title:        "Health camp",
			Description:  "Free health screening camp for underserved communities",
			Category:     types.CategoryHealth,
			Urgency:      3,
			TargetAmount: 2200,
			CreatedAt:    daysAgo(5),
		},
	}
}
