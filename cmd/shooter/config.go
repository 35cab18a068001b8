package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Loads the configuration the same way 'play' does and prints it as YAML.
The first line names the source it was loaded from.

Search order:
  --config path
  ~/.shooter/configs/shooter.yaml
  ./configs/shooter.yaml
  embedded defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, source, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# source: %s\n", source)
	fmt.Print(string(data))
}

// loadGameConfig loads the config from --config and applies --difficulty.
func loadGameConfig() (config.ShooterConfig, string, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.ShooterConfig{}, "", err
	}

	cfg, source, err := config.LoadShooter(flagConfig)
	if err != nil {
		return cfg, source, err
	}
	config.ApplyShooterPreset(&cfg, preset)
	return cfg, source, nil
}
