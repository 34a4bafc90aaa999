package cmd

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/crumble/internal/companion"
	"github.com/abhisek/crumble/internal/config"
	"github.com/abhisek/crumble/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "crumble",
	Short: "Breakup companion: pick how to say it, then heal one day at a time",
	Long: `Crumble recommends how to end a relationship (call, text or emoji),
hands you a message to start from, and tracks your healing with points,
levels, streaks, Crumble Coins and rewards.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// cfg is loaded once per invocation by setup.
var cfg *config.Config

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CRUMBLE_DB env var)")
	rootCmd.PersistentFlags().String("profile", "", "Profile to act for (overrides CRUMBLE_PROFILE env var)")
	rootCmd.PersistentFlags().String("env-file", ".env", "Optional dotenv file read before the environment")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(rewardsCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(affirmCmd)
	rootCmd.AddCommand(ghostCmd)
	rootCmd.AddCommand(platformsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration and configures logging.
func setup(cmd *cobra.Command, args []string) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	c, err := config.Load(envFile)
	if err != nil {
		return err
	}
	if p, _ := cmd.Flags().GetString("profile"); p != "" {
		c.Profile = p
	}
	cfg = c

	configureLogging(c)
	return nil
}

func configureLogging(c *config.Config) {
	if c.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
	// Command output goes to stdout; logs stay out of its way.
	log.SetOutput(os.Stderr)
	log.SetLevel(c.Level())
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CRUMBLE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

// openService opens the store and builds the companion service for the
// configured profile. The returned func closes the store.
func openService(cmd *cobra.Command) (*companion.Service, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	log.WithFields(log.Fields{"db": dbPath, "profile": cfg.Profile}).Debug("store opened")

	svc := companion.NewService(cfg.Profile, companion.ReposFrom(st), companion.Options{
		Location: cfg.Location(),
		Now:      time.Now,
	})
	return svc, func() { st.Close() }, nil
}
