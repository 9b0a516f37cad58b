package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/kinator/internal/tree"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the knowledge tree with one from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}

		root, err := st.ImportTree(data)
		if err != nil {
			return fmt.Errorf("import %s: %w", args[0], err)
		}

		questions, leaves := tree.Count(root)
		fmt.Printf("Conocimiento importado: %d personajes, %d preguntas.\n", leaves, questions)
		return nil
	},
}
