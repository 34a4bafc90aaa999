package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/crumble/internal/quiz"
)

func setTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CRUMBLE_DB", "")
	t.Setenv("CRUMBLE_PROFILE", "tester")
	t.Setenv("CRUMBLE_LOG_LEVEL", "error")
	t.Setenv("CRUMBLE_LOG_FORMAT", "text")
	t.Setenv("CRUMBLE_TIMEZONE", "UTC")
}

// resetFlags clears flag values left over from an earlier Execute.
func resetFlags(c *cobra.Command) {
	for _, fs := range []*pflag.FlagSet{c.Flags(), c.PersistentFlags()} {
		fs.VisitAll(func(f *pflag.Flag) {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				_ = sv.Replace(nil)
			} else {
				_ = f.Value.Set(f.DefValue)
			}
			f.Changed = false
		})
	}
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCLIFlow(t *testing.T) {
	setTestEnv(t)
	dir := t.TempDir()
	db := filepath.Join(dir, "data", "crumble.db")
	noEnv := filepath.Join(dir, "none.env")
	base := []string{"--db", db, "--env-file", noEnv}

	out, err := execute(t, append([]string{"quiz"}, base...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "How long was your relationship?", "no answers lists the questions")

	out, err = execute(t, append([]string{"quiz", "-a", "4=written"}, base...)...)
	require.NoError(t, err)
	assert.Contains(t, out, quiz.MethodText.DisplayName())
	assert.Contains(t, out, "+20 points")

	_, err = execute(t, append([]string{"rewards", "claim", "1"}, base...)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs 100 points")

	_, err = execute(t, append([]string{"ghost", "on", "hideStatus"}, base...)...)
	require.NoError(t, err)

	out, err = execute(t, append([]string{"status", "--json"}, base...)...)
	require.NoError(t, err)
	var st struct {
		Profile  string `json:"profile"`
		Progress struct {
			Points int `json:"points"`
			Streak int `json:"streak"`
		} `json:"progress"`
		Ghost      map[string]bool `json:"ghost"`
		LastMethod string          `json:"last_method"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	assert.Equal(t, "tester", st.Profile)
	assert.Equal(t, 20, st.Progress.Points)
	assert.Equal(t, 1, st.Progress.Streak)
	assert.Equal(t, string(quiz.MethodText), st.LastMethod)
	assert.Equal(t, map[string]bool{
		"blockMessages":     false,
		"hideStatus":        true,
		"muteNotifications": false,
		"hideActivity":      false,
	}, st.Ghost)
}

func TestQuizMissingAnswersFile(t *testing.T) {
	setTestEnv(t)
	dir := t.TempDir()

	_, err := execute(t, "quiz", "--answers", filepath.Join(dir, "missing.json"),
		"--db", filepath.Join(dir, "c.db"), "--env-file", filepath.Join(dir, "none.env"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "read answers"))
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "crumble (devel)\n", out)
}
