// Package cli implements the nutritrack command line tool.
package cli

import (
	"os"

	"github.com/KannamTejaswi311/NutriTrack/internal/client"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const defaultAPI = "http://localhost:8000"

type rootOptions struct {
	api   string
	token string
}

func (o *rootOptions) client() *client.Client {
	return client.New(o.api, client.WithToken(o.token))
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "nutritrack [command] [flags]",
		Short:         "NutriTrack: meal suggestions and community posts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	api := os.Getenv("NUTRITRACK_API")
	if api == "" {
		api = defaultAPI
	}
	rootCmd.PersistentFlags().StringVar(&opts.api, "api", api, "API base URL")
	rootCmd.PersistentFlags().StringVar(&opts.token, "token", os.Getenv("NUTRITRACK_TOKEN"), "bearer token for verified answers")

	rootCmd.AddCommand(
		newSuggestCmd(),
		newPostsCmd(opts),
		newQuestionsCmd(opts),
		newMigrateCmd(),
	)

	return rootCmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		color.New(color.FgHiRed, color.Bold).Fprintf(os.Stderr, "🚨 %v\n", err)
		os.Exit(1)
	}
}
