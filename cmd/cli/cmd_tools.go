package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"smart-travel-planner/internal/planner"
)

func toolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List or call environment tools",
	}
	cmd.AddCommand(toolsListCmd())
	cmd.AddCommand(toolsInvokeCmd())
	return cmd
}

func toolsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := buildApp(cmd.Context(), cmd, appOptions())
			if err != nil {
				return err
			}
			defer a.Close()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDESCRIPTION")
			for _, t := range a.Planner.ListTools() {
				fmt.Fprintf(w, "%s\t%s\n", t.Name, t.Description)
			}
			return w.Flush()
		},
	}
}

func toolsInvokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "invoke <name> [argument...]",
		Short:   "Call one tool",
		Example: `  planner tools invoke currency_converter "$500 to Japan"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, _, err := buildApp(ctx, cmd, appOptions())
			if err != nil {
				return err
			}
			defer a.Close()

			out, err := a.Planner.InvokeTool(ctx, planner.InvokeToolInput{
				Name:     args[0],
				Argument: strings.Join(args[1:], " "),
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Result)
			return nil
		},
	}
}
