package main

import (
	"github.com/spf13/cobra"

	"github.com/yourusername/sokoengine/internal/tui"
	"github.com/yourusername/sokoengine/pkg/level"
)

var playFlags struct {
	levelNumber int
}

var playCmd = &cobra.Command{
	Use:   "play <file>",
	Short: "Play a board interactively in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := loadLevelArg(args[0], playFlags.levelNumber)
		if err != nil {
			return err
		}
		return runPlay(lvl)
	},
}

func runPlay(lvl *level.Level) error {
	return tui.Run(lvl)
}

func init() {
	playCmd.Flags().IntVarP(&playFlags.levelNumber, "level", "l", 1, "level number inside an .slc collection")
	rootCmd.AddCommand(playCmd)
}
