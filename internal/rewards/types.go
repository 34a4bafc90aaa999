package rewards

import "github.com/abhisek/crumble/internal/progression"

// Reward is a perk bought with accumulated points.
// Unlocked flips true once points reach PointsCost; Claimed flips true
// exactly once through Ledger.Claim and never reverts.
type Reward struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PointsCost  int    `json:"points"`
	Unlocked    bool   `json:"unlocked"`
	Claimed     bool   `json:"claimed"`
}

// Claimable reports whether a claim on r would succeed.
func (r Reward) Claimable() bool {
	return r.Unlocked && !r.Claimed
}

// AchievementID identifies an achievement in the catalog.
type AchievementID int

// Achievement is a milestone whose Completed flag is derived from the
// current progress every time it is evaluated.
type Achievement struct {
	ID          AchievementID `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Points      int           `json:"points"`
	Completed   bool          `json:"completed"`
}

// Input is the state achievement predicates are evaluated over.
type Input struct {
	Progress progression.UserProgress
	Coins    int
}

// AchievementDef pairs catalog data with its completion predicate.
type AchievementDef struct {
	ID          AchievementID
	Title       string
	Description string
	Points      int
	Satisfied   func(in Input) bool
}
