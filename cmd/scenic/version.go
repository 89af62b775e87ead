package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/scenic"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of scenic",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("scenic version %s\n", strings.TrimSpace(scenic.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
