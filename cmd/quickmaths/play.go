package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/quickmaths/internal/platform/tui"
	"github.com/vovakirdan/quickmaths/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. Without a mode a picker menu opens.

Controls:
  WASD/Arrows   - Move
  Mouse click   - Shoot towards the pointer
  Space/Enter   - Shoot towards the last pointer position
  P/Esc         - Pause
  B             - Back to menu (while paused or dead)
  Ctrl+S        - Copy the current frame to the clipboard
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Slower numbers, fewer 13s, spawns speed up gently
  normal - Spawns speed up as you score
  hard   - Faster numbers, more 13s, spawns start fast
  fixed  - No progression

Examples:
  quickmaths play
  quickmaths play quickmaths_endless --difficulty hard
  quickmaths play --config ./my-quickmaths.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'quickmaths list' to see available modes.")
			os.Exit(1)
		}
	}

	// The alternate screen owns stdout, so logs go nowhere unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard, "quickmaths")
	exitOnErr("configuring logs", err)
	defer closeLog()

	closeAudio := setupGame(logger, true)
	defer closeAudio()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{AllowCopy: true}
	if runErr := tui.Run(gameID, runtimeConfig(width, height), opts, logger); runErr != nil {
		closeAudio()
		closeLog()
		exitOnErr("running game", runErr)
	}
}
