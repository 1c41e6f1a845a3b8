package cli

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/snchar/pkg/errors"
	"github.com/matzehuels/snchar/pkg/pipeline"
)

// batchFile is the TOML layout accepted by the batch command:
//
//	[[query]]
//	name = "example"
//	partition = [5, 3, 2]
//	cycles = [3, 1, 0, 0, 1, 0, 0, 0, 0, 0]
type batchFile struct {
	Query []batchQuery `toml:"query"`
}

type batchQuery struct {
	Name      string `toml:"name"`
	Partition []int  `toml:"partition"`
	Cycles    []int  `toml:"cycles"`
}

// batchResult pairs a query name with its result for JSON output.
type batchResult struct {
	Name string `json:"name,omitempty"`
	*pipeline.Result
}

// batchCommand creates the batch command for running queries from a TOML file.
func (c *CLI) batchCommand() *cobra.Command {
	var (
		format  = pipeline.FormatText
		refresh bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "batch <file.toml>",
		Short: "Compute characters for every query in a TOML file",
		Long: `Compute characters for every query in a TOML file.

Each [[query]] table needs a partition and a cycles array and may carry a
name. Queries run in file order; the first failing query aborts the batch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateFormat(format); err != nil {
				return err
			}
			return c.runBatch(cmd.Context(), cmd.OutOrStdout(), args[0], format, refresh, noCache)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", format, "output format: text (default), json")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if cached results exist")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// loadBatch decodes and checks a batch file.
func loadBatch(path string) ([]batchQuery, error) {
	var f batchFile
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "batch file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if len(f.Query) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s contains no [[query]] entries", path)
	}
	return f.Query, nil
}

// runBatch runs every query of the file at path and writes the results to w.
func (c *CLI) runBatch(ctx context.Context, w io.Writer, path, format string, refresh, noCache bool) error {
	queries, err := loadBatch(path)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	results := make([]batchResult, 0, len(queries))
	for i, q := range queries {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := runner.Compute(ctx, pipeline.Request{
			Partition: q.Partition,
			Cycles:    q.Cycles,
			Refresh:   refresh,
		})
		if err != nil {
			return fmt.Errorf("query %s: %w", queryLabel(i, q), err)
		}
		results = append(results, batchResult{Name: q.Name, Result: res})
	}
	prog.done(fmt.Sprintf("Ran %d queries", len(results)))

	if format == pipeline.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	tbl := newTable("query", "λ", "cycle type", "χ_M", "χ_S")
	for i, r := range results {
		tbl.Row(queryLabel(i, queries[i]), r.Partition.String(), r.CycleType, formatValue(r.Module), formatValue(r.Irreducible))
	}
	fmt.Fprintln(w, tbl.Render())
	return nil
}

// queryLabel names a query by its name, or by its 1-based position.
func queryLabel(i int, q batchQuery) string {
	if q.Name != "" {
		return q.Name
	}
	return "#" + strconv.Itoa(i+1)
}
