// quickmaths is an arcade game about shooting 13s and touching everything else.
//
// Usage:
//
//	quickmaths list              - List available modes
//	quickmaths play [mode]       - Play in the terminal (menu when no mode)
//	quickmaths window [mode]     - Play in a desktop window
//	quickmaths serve             - Host terminal sessions over SSH
//	quickmaths config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load a custom config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--mute                - Disable sound
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/quickmaths/internal/audio"
	"github.com/vovakirdan/quickmaths/internal/config"
	"github.com/vovakirdan/quickmaths/internal/core"
	"github.com/vovakirdan/quickmaths/internal/games/quickmaths"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quickmaths",
	Short: "Quick Maths - shoot the 13s, touch the rest",
	Long: `Quick Maths is a small arcade game. Numbers drift around the arena:
touch every number that is not 13, and shoot the 13s. Shooting anything
else, or touching a 13, kills you.

Available commands:
  list     - Show all available modes
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  quickmaths play
  quickmaths play quickmaths_endless --difficulty hard
  quickmaths window --mute
  quickmaths serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
		quickmaths.SetConfigPath(flagConfig)
		quickmaths.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// runtimeConfig builds the runtime settings shared by every driver.
func runtimeConfig(w, h int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// newLogger builds the CLI logger. fallback receives logs when no
// --log-file is given. The returned closer must be called on exit.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// setupGame wires logging and sound into every game created afterwards.
// The returned closer releases the audio device.
func setupGame(logger *log.Logger, sound bool) func() {
	quickmaths.SetLogger(logger)
	if !sound || flagMute {
		quickmaths.SetCuePlayer(core.NopCuePlayer{})
		return func() {}
	}

	player := audio.OpenOrNop(1, logger)
	quickmaths.SetCuePlayer(player)
	return func() {
		if p, ok := player.(*audio.Player); ok {
			p.Close()
		}
	}
}

// exitOnErr prints err and exits with status 1.
func exitOnErr(what string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error %s: %v\n", what, err)
		os.Exit(1)
	}
}
