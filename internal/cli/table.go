package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/snchar/pkg/character"
	"github.com/matzehuels/snchar/pkg/pipeline"
)

// tableOpts holds the command-line flags for the table command.
type tableOpts struct {
	module  bool   // show χ_M instead of χ_S
	format  string // text or json
	refresh bool   // recompute even if cached
	noCache bool   // disable the result cache
}

// tableCommand creates the table command that prints the character table of S_n.
func (c *CLI) tableCommand() *cobra.Command {
	opts := tableOpts{format: pipeline.FormatText}

	cmd := &cobra.Command{
		Use:   "table <n>",
		Short: "Print the character table of S_n",
		Long: `Print the character table of S_n.

Rows are the partitions of n in reverse lexicographic order, columns the
cycle types in the same order. By default the irreducible characters χ_S are
shown; --module shows the permutation characters χ_M on tabloids instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateFormat(opts.format); err != nil {
				return err
			}
			n, err := parseDegree(args[0])
			if err != nil {
				return err
			}
			return c.runTable(cmd.Context(), cmd.OutOrStdout(), n, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.module, "module", "m", false, "show χ_M instead of χ_S")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text (default), json")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even if a cached table exists")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// runTable computes (or loads) the table and writes it to w.
func (c *CLI) runTable(ctx context.Context, w io.Writer, n int, opts tableOpts) error {
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, os.Stderr, fmt.Sprintf("Computing character table of S_%d...", n))
	spinner.Start()

	res, err := runner.Table(ctx, n, opts.refresh)
	if err != nil {
		spinner.StopWithError("Table failed")
		return err
	}
	spinner.Stop()

	if opts.format == pipeline.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res.Table)
	}

	name := "χ_S"
	if opts.module {
		name = "χ_M"
	}
	printSuccess(w, "%s for S_%d", name, n)
	fmt.Fprintln(w, renderTable(res.Table, opts.module))
	printStats(w, len(res.Partitions), len(res.Classes), res.Stats.Cached)
	return nil
}

// renderTable lays out one of the two character tables with lipgloss.
func renderTable(t *character.Table, module bool) string {
	values := t.Irreducible
	if module {
		values = t.Module
	}

	headers := make([]string, 0, len(t.Classes)+1)
	headers = append(headers, "λ")
	for _, class := range t.Classes {
		headers = append(headers, class.Notation())
	}

	tbl := newTable(headers...)
	for i, lambda := range t.Partitions {
		row := make([]string, 0, len(values[i])+1)
		row = append(row, lambda.String())
		for _, v := range values[i] {
			row = append(row, formatValue(v))
		}
		tbl.Row(row...)
	}
	return tbl.Render()
}
