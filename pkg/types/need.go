package types

import (
	"time"
)

type Need struct {
	ID                int      `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Category          Category `json:"category"`
	Urgency           int      `json:"urgency"`
	TargetAmount      float64  `json:"targetAmount"`
	CurrentAmount     float64  `json:"currentAmount"`
	InterestedHelpers int      `json:"interestedHelpers"`

	CreatedAt time.Time `json:"createdAt"`
}

// Remaining is the gap left to the funding goal, never negative.
func (n *Need) Remaining() float64 {
	if remaining := n.TargetAmount - n.CurrentAmount; remaining > 0 {
		return remaining
	}
	return 0
}

func (n *Need) Funded() bool {
	return n.CurrentAmount >= n.TargetAmount
}

type CreateNeedInput struct {
	Title        string   `form:"title"`
	Description  string   `form:"description"`
	Category     Category `form:"category"`
	Urgency      int      `form:"urgency"`
	TargetAmount float64  `form:"target_amount"`
}

// UpdateNeedInput carries a partial edit; nil fields are left untouched.
type UpdateNeedInput struct {
	Title        *string   `form:"title"`
	Description  *string   `form:"description"`
	Category     *Category `form:"category"`
	Urgency      *int      `form:"urgency"`
	TargetAmount *float64  `form:"target_amount"`
}
