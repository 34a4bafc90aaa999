package rewards

import "github.com/abhisek/crumble/internal/progression"

// Evaluator checks achievement predicates against current state.
// Nothing is remembered between calls: an achievement is completed
// exactly when its predicate holds for the arguments given.
type Evaluator struct {
	defs []AchievementDef
}

// NewEvaluator creates an Evaluator. A nil defs uses DefaultAchievements.
func NewEvaluator(defs []AchievementDef) *Evaluator {
	if defs == nil {
		defs = DefaultAchievements()
	}
	return &Evaluator{defs: defs}
}

// Satisfied returns the ids of achievements whose predicates hold, in
// catalog order.
func (e *Evaluator) Satisfied(p progression.UserProgress, coins int) []AchievementID {
	in := Input{Progress: p.Normalized(), Coins: max(0, coins)}
	var ids []AchievementID
	for _, d := range e.defs {
		if d.Satisfied(in) {
			ids = append(ids, d.ID)
		}
	}
	return ids
}

// Achievements returns the full catalog with Completed filled in.
func (e *Evaluator) Achievements(p progression.UserProgress) []Achievement {
	in := Input{Progress: p.Normalized(), Coins: progression.CrumbleCoins(p.Points)}
	out := make([]Achievement, len(e.defs))
	for i, d := range e.defs {
		out[i] = Achievement{
			ID:          d.ID,
			Title:       d.Title,
			Description: d.Description,
			Points:      d.Points,
			Completed:   d.Satisfied(in),
		}
	}
	return out
}

var defaultEvaluator = NewEvaluator(nil)

// EvaluateAchievements returns the satisfied achievement ids for the default catalog.
func EvaluateAchievements(p progression.UserProgress, coins int) []AchievementID {
	return defaultEvaluator.Satisfied(p, coins)
}

// Achievements returns the default catalog evaluated against p.
func Achievements(p progression.UserProgress) []Achievement {
	return defaultEvaluator.Achievements(p)
}

// Unlocked reports whether points are enough to unlock r.
func Unlocked(r Reward, points int) bool {
	return max(0, points) >= r.PointsCost
}
