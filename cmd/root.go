package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/kinator/internal/app"
	"github.com/abhisek/kinator/internal/game"
	"github.com/abhisek/kinator/internal/history"
	"github.com/abhisek/kinator/internal/knowledge"
)

var rootCmd = &cobra.Command{
	Use:   "kinator",
	Short: "Akinator-style guessing game for Hollow Knight characters",
	Long: "Kinator — terminal guessing game that finds your Hollow Knight character\n" +
		"through yes/no questions, and learns a new one every time it fails.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data", "", "Path to the data directory (overrides KINATOR_DATA env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDataDir returns the data directory using --data (highest
// priority), then KINATOR_DATA, then the default XDG path.
func resolveDataDir(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("data"); p != "" {
		return p, nil
	}
	return knowledge.DefaultDataDir()
}

// openStore opens the knowledge store for the resolved data directory.
func openStore(cmd *cobra.Command) (*knowledge.Store, error) {
	dir, err := resolveDataDir(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	return knowledge.Open(dir)
}

// runApp loads the knowledge base and starts the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	root, err := st.LoadTree()
	if err != nil {
		return fmt.Errorf("load tree: %w", err)
	}
	stats, err := st.LoadStats()
	if err != nil {
		return fmt.Errorf("load stats: %w", err)
	}

	// The game log is optional; play works without it.
	log, err := history.Open(filepath.Join(st.Dir(), "history.db"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "game log unavailable:", err)
		log = nil
	} else {
		defer log.Close()
	}

	session := game.NewSession(root, st)

	return app.Run(app.Options{
		Store:   st,
		Session: session,
		Stats:   &stats,
		Log:     log,
	})
}
