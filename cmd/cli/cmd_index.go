package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"smart-travel-planner/internal/app"
)

var recreateIndex bool

func appOptions() app.Options {
	return app.Options{RecreateIndex: recreateIndex}
}

func indexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Embed the knowledge corpus into the vector index",
		Long:  `index embeds every corpus document with Voyage and upserts it into Qdrant (or the in-memory index when no Qdrant URL is set).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, logger, err := buildApp(ctx, cmd, appOptions())
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.IndexCorpus(ctx); err != nil {
				return fmt.Errorf("index corpus: %w", err)
			}
			logger.Infof(ctx, "Indexed %d documents", len(a.Docs))
			fmt.Fprintf(cmd.OutOrStdout(), "indexed %d documents\n", len(a.Docs))
			return nil
		},
	}
	cmd.Flags().BoolVar(&recreateIndex, "recreate", false, "drop and recreate the Qdrant collection first")
	return cmd
}
