package main

import (
	"context"

	"github.com/spf13/cobra"
)

const historyTimeFormat = "2006-01-02 15:04"

func newHistoryCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List projects created with init",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runHistory(cmd.Context(), limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of projects to show (0 for all)")

	return cmd
}

func (a *app) runHistory(ctx context.Context, limit int) error {
	store, err := a.openHistory()
	if err != nil {
		return err
	}
	defer store.Close() //nolint:errcheck // best-effort cleanup

	records, err := store.List(ctx, limit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		a.printer.Step("No projects recorded yet.")
		return nil
	}

	a.printer.Step("Recent projects:")

	for _, r := range records {
		info := r.GUI
		if r.Git {
			info += ", git"
		}

		a.printer.Item(r.Name, r.CreatedAt.Local().Format(historyTimeFormat)+" "+r.Path+" ("+info+")")
	}

	return nil
}
