package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quickmaths/internal/config"
	"github.com/vovakirdan/quickmaths/internal/games/quickmaths"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a new game would use, after the search path
and the difficulty preset are applied. Redirect it to a file to start
a custom config.

Search order:
  --config path
  ~/.quickmaths/configs/quickmaths.yaml
  ./configs/quickmaths.yaml
  built-in defaults

Examples:
  quickmaths config
  quickmaths config --difficulty hard
  quickmaths config --defaults > ~/.quickmaths/configs/quickmaths.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, _ []string) {
	cfg := config.DefaultQuickMathsConfig()
	if !flagConfigDefaults {
		loaded, err := quickmaths.LoadConfig()
		exitOnErr("loading config", err)
		cfg = loaded
	}

	data, err := config.Marshal(cfg)
	exitOnErr("encoding config", err)
	os.Stdout.Write(data)
}
