package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-village/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

The file is searched in this order: --config, ~/.snake/config.yaml,
./configs/snake.yaml, then the built-in defaults. Invalid values are
replaced by defaults and reported as warnings on stderr.

Examples:
  snake config
  snake config --default > ~/.snake/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in default configuration")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefault {
		os.Stdout.Write(config.DefaultYAML()) //nolint:errcheck // stdout
		return
	}

	cfg := loadConfig(newLogger(os.Stderr, "snake"))
	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	os.Stdout.Write(data) //nolint:errcheck // stdout
}
