package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/scenic"
	"github.com/aretw0/scenic/pkg/adapters/yamlgraph"
	"github.com/aretw0/scenic/pkg/domain"
	"github.com/aretw0/scenic/pkg/registry"
)

var rootCmd = &cobra.Command{
	Use:   "scenic",
	Short: "Scenic is a navigation graph engine for UI test automation",
	Long:  `Scenic compiles declared scenes into a navigation graph and routes between them. This tool validates and visualizes declarative graph files.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("file", "f", "scenic.yaml", "Graph definition file")
}

// loadGraph builds a scene graph from the file flag (or first positional
// argument). Unregistered action and guard names resolve to no-ops; the
// tooling inspects structure only, it never drives a UI.
func loadGraph(cmd *cobra.Command, args []string) (*scenic.Graph, error) {
	path, _ := cmd.Flags().GetString("file")
	if !cmd.Flags().Changed("file") && len(args) > 0 {
		path = args[0]
	}

	def, err := yamlgraph.LoadFile(path)
	if err != nil {
		return nil, err
	}

	reg := registry.New(registry.WithFallback(func(map[string]any) (domain.Action, error) {
		return func() {}, nil
	}))
	return yamlgraph.Build(def, reg)
}
