package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/scenic/internal/presentation/tui"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a graph definition for consistency",
	Long:  `Compiles the scene graph and reports edges that point at undeclared scenes.`,
	Run: func(cmd *cobra.Command, args []string) {
		g, err := loadGraph(cmd, args)
		if err != nil {
			tui.Failure(fmt.Sprintf("Validation failed: %v", err))
			os.Exit(1)
		}

		if errs := g.Validate(); len(errs) > 0 {
			for _, e := range errs {
				tui.Failure(fmt.Sprintf("  - %v", e))
			}
			tui.Failure(fmt.Sprintf("Graph is invalid: %d problem(s)", len(errs)))
			os.Exit(1)
		}

		tui.Success("Graph is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
