// Command planner runs the travel planning pipeline from the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "planner",
		Short:         "Smart Travel Planner CLI",
		Long:          `planner runs the travel planning pipeline locally: plan trips, inspect sessions, call tools and build the knowledge index.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(sessionCmd())
	rootCmd.AddCommand(indexCmd())
	rootCmd.AddCommand(toolsCmd())
	return rootCmd
}
