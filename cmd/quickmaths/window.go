package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quickmaths/internal/games/quickmaths"
	"github.com/vovakirdan/quickmaths/internal/platform/gui"
	"github.com/vovakirdan/quickmaths/internal/registry"
)

var (
	flagWindowWidth  int
	flagWindowHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play with real key-held movement and
mouse aiming.

Controls:
  WASD/Arrows   - Move
  Mouse click   - Shoot towards the pointer
  P/Esc         - Pause
  Q             - Quit

Examples:
  quickmaths window
  quickmaths window quickmaths_endless --width 1024 --height 1024`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWindowWidth, "width", gui.DefaultWidth, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagWindowHeight, "height", gui.DefaultHeight, "Window height in pixels")
}

func runWindow(cmd *cobra.Command, args []string) {
	gameID := "quickmaths"
	if len(args) == 1 {
		gameID = args[0]
	}

	logger, closeLog, err := newLogger(os.Stderr, "quickmaths")
	exitOnErr("configuring logs", err)
	defer closeLog()

	created, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'quickmaths list' to see available modes.")
		os.Exit(1)
	}
	game, ok := created.(*quickmaths.Game)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: mode %q cannot be drawn in a window\n", gameID)
		os.Exit(1)
	}

	closeAudio := setupGame(logger, true)
	defer closeAudio()

	if runErr := gui.Run(game, runtimeConfig(flagWindowWidth, flagWindowHeight), logger); runErr != nil {
		logger.Error("window closed with error", "err", runErr)
		closeAudio()
		closeLog()
		os.Exit(1)
	}
}
