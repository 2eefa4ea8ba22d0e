package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "sokoban",
	Short:         "Solve, benchmark, generate and play push-box puzzles",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sokoban v%s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
