package main

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

func newMaterialsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "materials",
		Short: "List material variants, reserve steps and prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(_ context.Context, a *app) error {
				info := describeMaterials(a.engine)
				w := cmd.OutOrStdout()
				if asJSON {
					enc := json.NewEncoder(w)
					enc.SetIndent("", "  ")
					return enc.Encode(info)
				}

				for _, c := range info.Categories {
					fmt.Fprintf(w, "%s (waste %.0f%%)\n", c.ID, c.WasteFactor*100)
					selectors := make([]string, 0, len(c.Options))
					for name := range c.Options {
						selectors = append(selectors, name)
					}
					slices.Sort(selectors)
					for _, name := range selectors {
						ids := make([]string, 0, len(c.Options[name]))
						for _, o := range c.Options[name] {
							ids = append(ids, o.ID)
						}
						fmt.Fprintf(w, "  %s: %s\n", name, strings.Join(ids, ", "))
					}
				}
				steps := make([]string, 0, len(info.ReserveSteps))
				for _, s := range info.ReserveSteps {
					steps = append(steps, fmt.Sprintf("%g", s))
				}
				fmt.Fprintf(w, "reserve steps: %s\n", strings.Join(steps, ", "))
				fmt.Fprintf(w, "currency: %s\n", info.Currency)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	return cmd
}
