package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"course-records-backend/internal/logger"
	"course-records-backend/internal/parse"
	"course-records-backend/internal/store"
)

var (
	showFormat string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored catalog",
	Long: `Load the catalog from the configured store and print it.
Formats: text (department listing as served by /retrieveDept), listing, yaml.`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringVar(&showFormat, "format", "text", "Output format: text, listing or yaml")
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(&cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync()

	st, err := store.New(&cfg.Storage, log)
	if err != nil {
		return err
	}

	db, err := st.Load(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	out := cmd.OutOrStdout()
	switch showFormat {
	case "text":
		_, err = fmt.Fprint(out, db.Display())
	case "listing":
		err = parse.WriteListing(out, db)
	case "yaml":
		err = db.Serialize(out)
	default:
		err = fmt.Errorf("unknown format %q", showFormat)
	}
	return err
}
