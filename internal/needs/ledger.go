package needs

import (
	"context"
	"math"

	"github.com/VNoormal7/NeedsConnectV2/pkg/types"
)

// FundingApplied is emitted after a funding transaction persists. Completed
// reports whether the need reached its target with this transaction.
type FundingApplied struct {
	NeedID    int
	NewAmount float64
	Completed bool
}

// FundingSubscriber receives funding events after they are durable. The
// basket coordinator uses this to drop funded needs from the basket without
// the ledger knowing the basket exists.
type FundingSubscriber func(ctx context.Context, event FundingApplied) error

// Ledger applies funding transactions. It clamps independently of whatever
// validation the caller did: currentAmount never exceeds targetAmount, and
// excess beyond the remaining gap is discarded.
type Ledger struct {
	repo        *Repository
	subscribers []FundingSubscriber
}

func NewLedger(repo *Repository) *Ledger {
	return &Ledger{repo: repo}
}

func (l *Ledger) Subscribe(sub FundingSubscriber) {
	l.subscribers = append(l.subscribers, sub)
}

// Fund adds amount to the need's current total, clamped to the target.
// The amount must be positive; the need must exist.
func (l *Ledger) Fund(ctx context.Context, needID int, amount float64) (*types.Need, error) {
	if amount <= 0 {
		return nil, types.NewValidationError("amount", "must be positive")
	}

	needs, err := l.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(needs, needID)
	if idx < 0 {
		return nil, types.ErrNeedNotFound
	}

	needs[idx].CurrentAmount = math.Min(needs[idx].CurrentAmount+amount, needs[idx].TargetAmount)

	if err := l.repo.save(ctx, needs); err != nil {
		return nil, err
	}

	funded := needs[idx]
	event := FundingApplied{
		NeedID:    funded.ID,
		NewAmount: funded.CurrentAmount,
		Completed: funded.Funded(),
	}

	for _, sub := range l.subscribers {
		if err := sub(ctx, event); err != nil {
			return nil, err
		}
	}

	return &funded, nil
}
