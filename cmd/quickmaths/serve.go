package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quickmaths/internal/platform/tui"
	"github.com/vovakirdan/quickmaths/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeMode   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Quick Maths SSH server",
	Long: `Start an SSH server that lets users connect and play in their terminal.

Each SSH connection runs its own independent game on the server; nothing
is shared between sessions. Sound is never played by the server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.quickmaths/host_key

Examples:
  quickmaths serve                           # Listen on :23234 with auto-generated key
  quickmaths serve --ssh :2222               # Listen on port 2222
  quickmaths serve --mode quickmaths_endless # Skip the menu

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeMode, "mode", "", "Start every session in this mode instead of the menu")
}

func runServe(_ *cobra.Command, _ []string) {
	if flagServeMode != "" && !registry.Exists(flagServeMode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", flagServeMode)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(os.Stderr, "quickmaths-ssh")
	exitOnErr("configuring logs", err)
	defer closeLog()

	// Sessions run on the server; their cues must stay silent.
	setupGame(logger, false)

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		GameID:      flagServeMode,
	}

	server, err := tui.NewSSHServer(cfg, logger)
	exitOnErr("creating server", err)

	fmt.Printf("Starting Quick Maths SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		closeLog()
		exitOnErr("serving", err)
	}
}
