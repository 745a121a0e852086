package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/bricks/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print configuration",
	Long: `Print the embedded default configuration, or with --effective the
configuration after loading files and applying flags.

Config search order:
  --config <path>
  ~/.bricks/configs/bricks.yaml
  ./configs/bricks.yaml
  embedded default`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the configuration in effect")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagEffective {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	}

	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	fmt.Printf("# source: %s\n", source)
	_, err = os.Stdout.Write(data)
	return err
}
