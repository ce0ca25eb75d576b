package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"course-records-backend/config"
)

const defaultConfigPath = "./config/config.yaml"

var (
	// configFlag is the CLI --config flag value
	configFlag string
)

var rootCmd = &cobra.Command{
	Use:   "recordsd",
	Short: "Course records service",
	Long: `recordsd keeps departments, courses, chairs, major counts and enrollment
in memory and serves them over a small HTTP query interface.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"Path to the YAML config file (default: $CONFIG_PATH or "+defaultConfigPath+")")
}

// resolveConfigPath picks the config file.
// Precedence: --config flag > CONFIG_PATH env var > default path
func resolveConfigPath() string {
	if configFlag != "" {
		return configFlag
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return defaultConfigPath
}

func loadConfig() (*config.Config, error) {
	path := resolveConfigPath()
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration from %s: %w", path, err)
	}
	return cfg, nil
}
