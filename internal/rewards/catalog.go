package rewards

// DefaultRewards returns the reward catalog with Unlocked and Claimed unset.
func DefaultRewards() []Reward {
	return []Reward{
		{ID: 1, Title: "Digital Journal Theme", Description: "Unlock a premium journal theme", PointsCost: 100},
		{ID: 2, Title: "Custom Affirmations", Description: "Create and save your own affirmations", PointsCost: 200},
		{ID: 3, Title: "Advanced Analytics", Description: "Get detailed insights into your healing journey", PointsCost: 300},
		{ID: 4, Title: "Meditation Collection", Description: "Access premium guided meditations", PointsCost: 500},
	}
}

const (
	AchievementSevenDayStreak  AchievementID = 1
	AchievementThirtyDays      AchievementID = 2
	AchievementGhostModeMaster AchievementID = 3
	AchievementFirstWeek       AchievementID = 4
	AchievementFirstHundred    AchievementID = 5
	AchievementFirstCoin       AchievementID = 6
)

// DefaultAchievements returns the achievement catalog in display order.
func DefaultAchievements() []AchievementDef {
	return []AchievementDef{
		{
			ID: AchievementSevenDayStreak, Title: "7-Day Streak",
			Description: "Logged in for 7 consecutive days", Points: 50,
			Satisfied: func(in Input) bool { return in.Progress.Streak >= 7 },
		},
		{
			ID: AchievementThirtyDays, Title: "30-Day Journey",
			Description: "Reached 30 days in your healing journey", Points: 100,
			Satisfied: func(in Input) bool { return in.Progress.DaysStrong >= 30 },
		},
		{
			ID: AchievementGhostModeMaster, Title: "Ghost Mode Master",
			Description: "Used Ghost Mode features for 30 days", Points: 150,
			Satisfied: func(in Input) bool { return in.Progress.GhostModeDays >= 30 },
		},
		{
			ID: AchievementFirstWeek, Title: "First Week Complete",
			Description: "Stayed strong for your first 7 days", Points: 25,
			Satisfied: func(in Input) bool { return in.Progress.DaysStrong >= 7 },
		},
		{
			ID: AchievementFirstHundred, Title: "First Hundred",
			Description: "Earned your first 100 points", Points: 25,
			Satisfied: func(in Input) bool { return in.Progress.Points >= 100 },
		},
		{
			ID: AchievementFirstCoin, Title: "First Crumble Coin",
			Description: "Earned your first Crumble Coin", Points: 10,
			Satisfied: func(in Input) bool { return in.Coins >= 1 },
		},
	}
}
