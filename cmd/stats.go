package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/kinator/internal/history"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show play statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}

		stats, err := st.LoadStats()
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		fmt.Printf("Partidas jugadas: %d\n", stats.Played)
		fmt.Printf("Aciertos:         %d\n", stats.Wins)
		fmt.Printf("Aprendidos:       %d\n", stats.Learned)
		fmt.Printf("Precisión:        %.1f%%\n", stats.Accuracy())

		n, _ := cmd.Flags().GetInt("history")
		if n <= 0 {
			return nil
		}

		log, err := history.Open(filepath.Join(st.Dir(), "history.db"))
		if err != nil {
			return fmt.Errorf("open game log: %w", err)
		}
		defer log.Close()

		recs, err := log.Recent(context.Background(), n)
		if err != nil {
			return fmt.Errorf("read game log: %w", err)
		}

		if len(recs) > 0 {
			fmt.Println()
		}
		for _, rec := range recs {
			outcome := "acierto"
			if rec.Outcome == history.OutcomeLearned {
				outcome = "aprendido"
			}
			fmt.Printf("%s  %-9s  %s (%d preguntas)\n",
				rec.PlayedAt.Local().Format("2006-01-02 15:04"),
				outcome, rec.Character, rec.QuestionsAsked)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("history", 0, "Also list the N most recent games")
}
