package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/scenic/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [file]",
	Short: "Export the scene graph visualization",
	Long:  `Loads a graph definition and outputs a Mermaid diagram (graph TD) of the declared scenes and edges.`,
	Run: func(cmd *cobra.Command, args []string) {
		g, err := loadGraph(cmd, args)
		if err != nil {
			fmt.Printf("Error loading graph: %v\n", err)
			os.Exit(1)
		}

		infos, err := g.Inspect()
		if err != nil {
			fmt.Printf("Error inspecting graph: %v\n", err)
			os.Exit(1)
		}

		// Generate and print Mermaid graph
		fmt.Print(graph.GenerateMermaid(infos, nil))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
