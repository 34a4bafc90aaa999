package cmd

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/crumble/internal/companion"
	"github.com/abhisek/crumble/internal/ghost"
	"github.com/abhisek/crumble/internal/progression"
	"github.com/abhisek/crumble/internal/quiz"
	"github.com/abhisek/crumble/internal/rewards"
	"github.com/abhisek/crumble/internal/ui/components"
	"github.com/abhisek/crumble/internal/ui/theme"
)

const barWidth = 24

func row(label, value string) string {
	return theme.Label.Render(label) + theme.Body.Render(value)
}

func renderStatus(s *companion.Status) string {
	d := s.Derived
	lines := []string{
		theme.Title.Render(fmt.Sprintf("Crumble · %s", s.Profile)),
		"",
		row("Level", fmt.Sprintf("%d of %d", d.Level, progression.MaxLevel)),
		row("Points", fmt.Sprintf("%d (%d to next level)", s.Progress.Points, d.PointsToNextLevel)),
		components.NewProgressBar("Level progress", d.ProgressPercent, true, barWidth).View(),
		row("Crumble Coins", theme.Coins.Render(fmt.Sprintf("%d", d.CrumbleCoins))),
		row("Streak", fmt.Sprintf("%d days", s.Progress.Streak)),
		row("Days strong", fmt.Sprintf("%d", s.Progress.DaysStrong)),
		components.NewProgressBar("Healing", d.HealingPercent, true, barWidth).View(),
	}
	if s.LastMethod != "" {
		lines = append(lines, row("Recommended", s.LastMethod.Icon()+" "+s.LastMethod.DisplayName()))
	}
	if s.Ghost.Active() {
		lines = append(lines, row("Ghost mode", fmt.Sprintf("on (%d days)", s.Progress.GhostModeDays)))
	}
	if s.Progress.IsPremium {
		lines = append(lines, row("Plan", "Premium"))
	}

	lines = append(lines, "", theme.Subtitle.Render("Achievements"))
	for _, a := range s.Achievements {
		lines = append(lines, renderAchievement(a))
	}
	lines = append(lines, "", theme.Subtitle.Render("Rewards"))
	for _, r := range s.Rewards {
		lines = append(lines, renderReward(r))
	}
	return theme.Card.Render(strings.Join(lines, "\n"))
}

func renderAchievement(a rewards.Achievement) string {
	if a.Completed {
		return theme.Done.Render("✓ ") + theme.Body.Render(a.Title) + theme.Hint.Render(fmt.Sprintf("  +%d", a.Points))
	}
	return theme.Locked.Render("· " + a.Title + "  " + a.Description)
}

func renderReward(r rewards.Reward) string {
	var state string
	switch {
	case r.Claimed:
		state = theme.Done.Render("claimed")
	case r.Unlocked:
		state = theme.Coins.Render("ready to claim")
	default:
		state = theme.Locked.Render(fmt.Sprintf("%d pts", r.PointsCost))
	}
	return fmt.Sprintf("%s %-24s %s", theme.Hint.Render(fmt.Sprintf("#%d", r.ID)), r.Title, state)
}

func renderResult(res quiz.Result) string {
	lines := []string{
		theme.Title.Render("Your recommended way"),
		"",
		lipgloss.NewStyle().Bold(true).Render(res.Method.Icon() + "  " + res.Method.DisplayName()),
		"",
	}
	for _, m := range quiz.AllMethods() {
		lines = append(lines, row(string(m), fmt.Sprintf("%d", res.Scores[m])))
	}
	return theme.Highlight.Render(strings.Join(lines, "\n"))
}

// printAward writes the points line plus anything the award completed.
func printAward(w io.Writer, a companion.AwardResult) {
	fmt.Fprintln(w, theme.Coins.Render(fmt.Sprintf("+%d points", a.Points))+
		theme.Hint.Render(fmt.Sprintf("  (streak %d)", a.Streak)))
	if a.LevelUp() {
		fmt.Fprintln(w, theme.Done.Render(fmt.Sprintf("Level up! You reached level %d.", a.After.Level)))
	}
	for _, ach := range a.NewAchievements {
		fmt.Fprintln(w, theme.Done.Render("Achievement: ")+ach.Title)
	}
	for _, r := range a.NewRewards {
		fmt.Fprintln(w, theme.Coins.Render("Unlocked: ")+r.Title+theme.Hint.Render(fmt.Sprintf("  (crumble rewards claim %d)", r.ID)))
	}
}

func renderGhost(s ghost.Settings) string {
	var lines []string
	for _, t := range ghost.AllToggles() {
		state := theme.Locked.Render("off")
		if s[t] {
			state = theme.Done.Render("on")
		}
		lines = append(lines, fmt.Sprintf("%-20s %-18s %s", string(t), t.DisplayName(), state))
	}
	return strings.Join(lines, "\n")
}

func renderPlatform(p ghost.Platform) string {
	if !p.Connected {
		return fmt.Sprintf("%-10s %s", p.Name, theme.Locked.Render("not connected"))
	}
	return fmt.Sprintf("%-10s %s %s", p.Name, theme.Done.Render("connected"),
		theme.Hint.Render(fmt.Sprintf("as %s since %s", p.Username, p.ConnectedAt.Format("2006-01-02"))))
}
