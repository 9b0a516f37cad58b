package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the knowledge tree to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}

		root, err := st.LoadTree()
		if err != nil {
			return fmt.Errorf("load tree: %w", err)
		}

		if err := st.ExportTree(root, args[0]); err != nil {
			return fmt.Errorf("export to %s: %w", args[0], err)
		}

		fmt.Printf("Conocimiento exportado a %s\n", args[0])
		return nil
	},
}
