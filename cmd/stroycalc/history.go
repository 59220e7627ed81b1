package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Simplici0/stroycalc/internal/history"
	"github.com/Simplici0/stroycalc/internal/materials"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear saved calculations",
	}
	cmd.AddCommand(newHistoryListCmd(), newHistoryClearCmd())
	return cmd
}

func newHistoryListCmd() *cobra.Command {
	var (
		rawCategory string
		asJSON      bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved calculations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var category materials.Category
			if rawCategory != "" {
				c, err := materials.ParseCategory(rawCategory)
				if err != nil {
					return err
				}
				category = c
			}

			return withApp(cmd, func(ctx context.Context, a *app) error {
				records, err := a.store.List(ctx)
				if err != nil {
					return err
				}
				records = history.Filter(records, category)

				w := cmd.OutOrStdout()
				if asJSON {
					enc := json.NewEncoder(w)
					enc.SetIndent("", "  ")
					return enc.Encode(records)
				}
				if len(records) == 0 {
					fmt.Fprintln(w, "history is empty")
					return nil
				}
				lr := newLineRenderer(isTerminal(w))
				for _, rec := range records {
					title := fmt.Sprintf("%s  %s  %s", rec.Timestamp.Local().Format(time.DateTime), rec.Category, rec.ID)
					lr.render(w, title, a.format.Values(rec.Category, rec.Result))
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&rawCategory, "category", "c", "", "only show one category")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func newHistoryClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all saved calculations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				if err := a.store.Clear(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "history cleared")
				return nil
			})
		},
	}
}
