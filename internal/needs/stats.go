package needs

import (
	"github.com/VNoormal7/NeedsConnectV2/internal/utils"
	"github.com/VNoormal7/NeedsConnectV2/pkg/types"
)

type CategoryStats struct {
	Funded     float64 `json:"funded"`
	Target     float64 `json:"target"`
	Count      int     `json:"count"`
	Completion float64 `json:"completion"`
}

type Stats struct {
	TotalFunded    float64                          `json:"totalFunded"`
	TotalTarget    float64                          `json:"totalTarget"`
	TotalNeeds     int                              `json:"totalNeeds"`
	CompletedCount int                              `json:"completedCount"`
	PerCategory    map[types.Category]CategoryStats `json:"perCategory"`
}

// Aggregate derives summary statistics from the given needs. It is
// recomputed on every call; there is no cache to invalidate.
func Aggregate(needs []types.Need) Stats {
	stats := Stats{
		TotalNeeds:  len(needs),
		PerCategory: make(map[types.Category]CategoryStats),
	}

	for _, need := range needs {
		stats.TotalFunded += need.CurrentAmount
		stats.TotalTarget += need.TargetAmount
		if need.Funded() {
			stats.CompletedCount++
		}

		cat := stats.PerCategory[need.Category]
		cat.Funded += need.CurrentAmount
		cat.Target += need.TargetAmount
		cat.Count++
		stats.PerCategory[need.Category] = cat
	}

	for category, cat := range stats.PerCategory {
		if cat.Target > 0 {
			cat.Completion = utils.RoundFloat64(cat.Funded/cat.Target*100, 1)
		}
		stats.PerCategory[category] = cat
	}

	return stats
}
