// Command turtledemo renders the bundled turtle drawings to PNG, SVG or PDF.
//
// Usage:
//
//	turtledemo list
//	turtledemo render spiral --format svg --out spiral.svg
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "turtledemo:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "turtledemo",
		Short:         "Render turtle drawings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRenderCmd(), newListCmd())
	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available drawings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, d := range drawings {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", d.name, d.desc)
			}
			return nil
		},
	}
}
