package main

import (
	"strings"

	"github.com/spf13/cobra"

	"smart-travel-planner/internal/planner"
)

func planCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "plan [request...]",
		Short: "Plan a trip from a free-text request",
		Long:  `plan runs the full pipeline once. Sessions only persist across runs when redis.url is configured.`,
		Example: `  planner plan --user alice "5-day adventure trip to Costa Rica with a $2000 budget"
  planner plan --user alice "What about food?"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, l, err := buildApp(ctx, cmd, appOptions())
			if err != nil {
				return err
			}
			defer a.Close()

			// The in-memory index starts empty on every run; Qdrant keeps its points.
			if a.Index != nil {
				if _, err := a.WarmIndex(ctx); err != nil {
					l.Warnf(ctx, "Knowledge indexing failed, using keyword retrieval: %v", err)
				}
			}

			resp, err := a.Planner.PlanTravel(ctx, planner.PlanTravelInput{
				UserID:  userID,
				Request: strings.Join(args, " "),
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVarP(&userID, "user", "u", "cli", "user id owning the session")
	return cmd
}

func sessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session <user-id>",
		Short: "Show a stored session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, _, err := buildApp(ctx, cmd, appOptions())
			if err != nil {
				return err
			}
			defer a.Close()

			rec, err := a.Planner.GetSession(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), rec)
		},
	}
}
