package cli

import (
	"fmt"

	"github.com/KannamTejaswi311/NutriTrack/internal/config"
	"github.com/KannamTejaswi311/NutriTrack/internal/migrations"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var url string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the Postgres schema",
	}
	cmd.PersistentFlags().StringVar(&url, "url", "", "Postgres URL (default from config)")

	resolveURL := func() (string, error) {
		if url != "" {
			return url, nil
		}
		cfg, err := config.Load()
		if err != nil {
			return "", fmt.Errorf("error loading config: %v", err)
		}
		return cfg.Postgres.URL, nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			databaseURL, err := resolveURL()
			if err != nil {
				return err
			}
			if err := migrations.Up(databaseURL); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✅ Schema is up to date")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back every migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			databaseURL, err := resolveURL()
			if err != nil {
				return err
			}
			if err := migrations.Down(databaseURL); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✅ Schema rolled back")
			return nil
		},
	})

	return cmd
}
