package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/kinator/internal/tree"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the built-in knowledge tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Print("Se perderá todo lo aprendido. ¿Continuar? [s/N] ")
			reader := bufio.NewReader(os.Stdin)
			line, _ := reader.ReadString('\n')
			switch strings.ToLower(strings.TrimSpace(line)) {
			case "s", "si", "sí", "y", "yes":
			default:
				fmt.Println("Cancelado.")
				return nil
			}
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}

		root, err := st.Reset()
		if err != nil {
			return fmt.Errorf("reset tree: %w", err)
		}

		questions, leaves := tree.Count(root)
		fmt.Printf("Conocimiento restablecido: %d personajes, %d preguntas.\n", leaves, questions)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
