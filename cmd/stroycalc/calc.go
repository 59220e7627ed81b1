package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Simplici0/stroycalc/internal/calc"
	"github.com/Simplici0/stroycalc/internal/format"
	"github.com/Simplici0/stroycalc/internal/materials"
)

type calcOptions struct {
	set    []string
	save   bool
	asJSON bool
}

func newCalcCmd() *cobra.Command {
	var opts calcOptions
	cmd := &cobra.Command{
		Use:       "calc <category>",
		Short:     "Calculate materials for one category",
		Args:      cobra.ExactArgs(1),
		ValidArgs: categoryNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := materials.ParseCategory(args[0])
			if err != nil {
				return err
			}
			params, err := parseSetFlags(opts.set)
			if err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *app) error {
				return runCalc(ctx, cmd, a, category, params, opts)
			})
		},
	}

	cmd.Flags().StringArrayVarP(&opts.set, "set", "s", nil, "input parameter as key=value (repeatable)")
	cmd.Flags().BoolVar(&opts.save, "save", false, "append the result to history")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

type calcOutput struct {
	Category  materials.Category `json:"category"`
	Input     map[string]any     `json:"input"`
	Result    map[string]any     `json:"result"`
	Lines     []format.Line      `json:"lines"`
	HistoryID string             `json:"historyId,omitempty"`
}

func runCalc(ctx context.Context, cmd *cobra.Command, a *app, category materials.Category, params map[string]string, opts calcOptions) error {
	in, err := calc.ParseParams(category, params)
	if err != nil {
		return err
	}
	result, err := a.engine.Run(in)
	if err != nil {
		return err
	}

	out := calcOutput{
		Category: category,
		Input:    in.Params(),
		Result:   result.Values(),
		Lines:    a.format.Lines(result),
	}
	if opts.save {
		rec, err := a.store.Append(ctx, category, out.Input, out.Result)
		if err != nil {
			a.log.Error().Err(err).Msg("history append failed")
		} else {
			out.HistoryID = rec.ID
		}
	}

	w := cmd.OutOrStdout()
	if opts.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	newLineRenderer(isTerminal(w)).render(w, cases.Title(language.English).String(category.String()), out.Lines)
	if out.HistoryID != "" {
		fmt.Fprintf(w, "saved to history as %s\n", out.HistoryID)
	}
	return nil
}

func parseSetFlags(values []string) (map[string]string, error) {
	params := make(map[string]string, len(values))
	for _, kv := range values {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("--set %q: expected key=value", kv)
		}
		params[key] = strings.TrimSpace(value)
	}
	return params, nil
}

func categoryNames() []string {
	names := make([]string, 0, len(materials.Categories()))
	for _, c := range materials.Categories() {
		names = append(names, c.String())
	}
	return names
}
