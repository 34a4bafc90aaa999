package rewards

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrNotUnlocked is returned when claiming a reward whose cost has not been reached.
	ErrNotUnlocked = errors.New("reward not unlocked")

	// ErrAlreadyClaimed is returned when claiming a reward a second time.
	ErrAlreadyClaimed = errors.New("reward already claimed")

	// ErrUnknownReward is returned for reward ids the ledger does not hold.
	ErrUnknownReward = errors.New("unknown reward")
)

// ClaimRecorder persists a claim. It is called while the reward is locked,
// before the ledger marks it claimed; an error aborts the claim.
type ClaimRecorder interface {
	RecordClaim(ctx context.Context, rewardID int) error
}

// Ledger is the mutable set of rewards for one user. Claims on the same
// reward are serialized so at most one of them succeeds.
type Ledger struct {
	mu      sync.RWMutex // guards the reward values in entries
	entries map[int]*entry
	order   []int

	recorder ClaimRecorder
}

type entry struct {
	claim  sync.Mutex // held for the whole check-record-set sequence
	reward Reward
}

// NewLedger creates a Ledger holding rewards. recorder may be nil.
func NewLedger(rewards []Reward, recorder ClaimRecorder) *Ledger {
	l := &Ledger{
		entries:  make(map[int]*entry, len(rewards)),
		recorder: recorder,
	}
	for _, r := range rewards {
		if _, dup := l.entries[r.ID]; dup {
			continue
		}
		l.entries[r.ID] = &entry{reward: r}
		l.order = append(l.order, r.ID)
	}
	return l
}

// Refresh unlocks every reward whose cost points now covers.
// Unlocked never goes back to false.
func (l *Ledger) Refresh(points int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if !e.reward.Unlocked && Unlocked(e.reward, points) {
			e.reward.Unlocked = true
		}
	}
}

// Claim marks a reward claimed. It fails with ErrNotUnlocked or
// ErrAlreadyClaimed without changing the ledger.
func (l *Ledger) Claim(ctx context.Context, rewardID int) (Reward, error) {
	e, ok := l.entries[rewardID]
	if !ok {
		return Reward{}, fmt.Errorf("reward %d: %w", rewardID, ErrUnknownReward)
	}

	e.claim.Lock()
	defer e.claim.Unlock()

	l.mu.RLock()
	current := e.reward
	l.mu.RUnlock()

	if current.Claimed {
		return current, fmt.Errorf("reward %d: %w", rewardID, ErrAlreadyClaimed)
	}
	if !current.Unlocked {
		return current, fmt.Errorf("reward %d: %w", rewardID, ErrNotUnlocked)
	}

	if l.recorder != nil {
		if err := l.recorder.RecordClaim(ctx, rewardID); err != nil {
			return current, fmt.Errorf("record claim %d: %w", rewardID, err)
		}
	}

	l.mu.Lock()
	e.reward.Claimed = true
	claimed := e.reward
	l.mu.Unlock()
	return claimed, nil
}

// Reward returns a copy of one reward.
func (l *Ledger) Reward(rewardID int) (Reward, bool) {
	e, ok := l.entries[rewardID]
	if !ok {
		return Reward{}, false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return e.reward, true
}

// Rewards returns copies of all rewards in catalog order.
func (l *Ledger) Rewards() []Reward {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Reward, len(l.order))
	for i, id := range l.order {
		out[i] = l.entries[id].reward
	}
	return out
}

// Build returns a ledger over the default catalog for a user with the given
// points and already-claimed reward ids.
func Build(points int, claimed []int, recorder ClaimRecorder) *Ledger {
	isClaimed := make(map[int]bool, len(claimed))
	for _, id := range claimed {
		isClaimed[id] = true
	}
	catalog := DefaultRewards()
	for i := range catalog {
		catalog[i].Unlocked = Unlocked(catalog[i], points)
		catalog[i].Claimed = isClaimed[catalog[i].ID]
	}
	return NewLedger(catalog, recorder)
}
