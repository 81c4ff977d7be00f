package needs

import (
	"math"
	"sort"
	"time"

	"github.com/VNoormal7/NeedsConnectV2/pkg/types"
)

// Priority weights. Freshness decays by the day: a need older than the
// seven-day window earns a negative contribution, so stale needs sink
// unless urgency or helper interest carries them.
const (
	urgencyWeight       = 100
	freshnessWeight     = 10
	interestWeight      = 5
	freshnessWindowDays = 7
)

// Score ranks a need at the given instant. Pure: identical inputs produce
// identical scores, and the clock is an argument so callers own the drift.
func Score(need *types.Need, now time.Time) int {
	daysOld := int(math.Floor(now.Sub(need.CreatedAt).Hours() / 24))

	return need.Urgency*urgencyWeight +
		(freshnessWindowDays-daysOld)*freshnessWeight +
		need.InterestedHelpers*interestWeight
}

// SortByPriority orders needs by descending score; equal scores fall back to
// ascending id so the ordering is reproducible.
func SortByPriority(needs []types.Need, now time.Time) {
	sort.SliceStable(needs, func(i, j int) bool {
		si, sj := Score(&needs[i], now), Score(&needs[j], now)
		if si != sj {
			return si > sj
		}
		return needs[i].ID < needs[j].ID
	})
}

func SortByUrgency(needs []types.Need) {
	sort.SliceStable(needs, func(i, j int) bool {
		if needs[i].Urgency != needs[j].Urgency {
			return needs[i].Urgency > needs[j].Urgency
		}
		return needs[i].ID < needs[j].ID
	})
}

func SortByTarget(needs []types.Need) {
	sort.SliceStable(needs, func(i, j int) bool {
		if needs[i].TargetAmount != needs[j].TargetAmount {
			return needs[i].TargetAmount > needs[j].TargetAmount
		}
		return needs[i].ID < needs[j].ID
	})
}

// FilterByCategory keeps only needs in the given category. An empty
// category keeps everything.
func FilterByCategory(needs []types.Need, category types.Category) []types.Need {
	if category == "" {
		return needs
	}

	filtered := make([]types.Need, 0, len(needs))
	for _, need := range needs {
		if need.Category == category {
			filtered = append(filtered, need)
		}
	}
	return filtered
}
