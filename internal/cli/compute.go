package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/snchar/pkg/errors"
	"github.com/matzehuels/snchar/pkg/perm"
	"github.com/matzehuels/snchar/pkg/pipeline"
)

// computeOpts holds the command-line flags for the compute command.
type computeOpts struct {
	partition   string // comma-separated parts, e.g. "5,3,2"
	cycles      string // comma-separated cycle counts k_1,...,k_n
	permutation string // one-line notation on 0..n-1, alternative to cycles
	format      string // text or json
	refresh     bool   // recompute even if cached
	noCache     bool   // disable the result cache
}

// computeCommand creates the compute command for a single pair of characters.
func (c *CLI) computeCommand() *cobra.Command {
	opts := computeOpts{format: pipeline.FormatText}

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute χ_M and χ_S for one partition and cycle type",
		Long: `Compute χ_M and χ_S for one partition λ of n and one conjugacy class of S_n.

The class is given either by its cycle counts (--cycles k_1,...,k_n, where k_i
is the number of i-cycles) or by a permutation of 0..n-1 in one-line notation
(--permutation). Results are cached locally.`,
		Example: `  snchar compute --partition 5,3,2 --cycles 3,1,0,0,1,0,0,0,0,0
  snchar compute --partition 2,1 --permutation 1,2,0 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateFormat(opts.format); err != nil {
				return err
			}
			return c.runCompute(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.partition, "partition", "p", "", "partition of n, e.g. 5,3,2")
	cmd.Flags().StringVarP(&opts.cycles, "cycles", "c", "", "cycle counts k_1,...,k_n")
	cmd.Flags().StringVar(&opts.permutation, "permutation", "", "permutation of 0..n-1 in one-line notation")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text (default), json")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even if a cached result exists")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.MarkFlagRequired("partition")
	cmd.MarkFlagsMutuallyExclusive("cycles", "permutation")
	cmd.MarkFlagsOneRequired("cycles", "permutation")

	return cmd
}

// runCompute builds the request, runs it and writes the result to w.
func (c *CLI) runCompute(ctx context.Context, w io.Writer, opts computeOpts) error {
	req, err := buildRequest(opts)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	res, err := runner.Compute(ctx, req)
	if err != nil {
		return err
	}
	loggerFromContext(ctx).Debug("characters ready", "cached", res.Stats.Cached, "duration", res.Stats.Duration)

	return writeResult(w, res, opts.format)
}

// buildRequest turns the compute flags into a pipeline request.
func buildRequest(opts computeOpts) (pipeline.Request, error) {
	parts, err := parseIntList(opts.partition)
	if err != nil {
		return pipeline.Request{}, errors.Wrap(errors.ErrCodeInvalidPartition, err, "parse --partition")
	}

	var counts []int
	switch {
	case opts.cycles != "":
		counts, err = parseIntList(opts.cycles)
		if err != nil {
			return pipeline.Request{}, errors.Wrap(errors.ErrCodeInvalidCycles, err, "parse --cycles")
		}
	case opts.permutation != "":
		p, err := parseIntList(opts.permutation)
		if err != nil {
			return pipeline.Request{}, errors.Wrap(errors.ErrCodeInvalidCycles, err, "parse --permutation")
		}
		if counts, err = perm.CycleCounts(p); err != nil {
			return pipeline.Request{}, err
		}
	default:
		return pipeline.Request{}, errors.New(errors.ErrCodeInvalidCycles, "one of --cycles or --permutation is required")
	}

	return pipeline.Request{
		Partition: parts,
		Cycles:    counts,
		Refresh:   opts.refresh,
	}, nil
}

// writeResult prints a compute result in the requested format.
func writeResult(w io.Writer, res *pipeline.Result, format string) error {
	if format == pipeline.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	if _, err := fmt.Fprintf(w, "chi_M^lambda(C_i) = %d\n", res.Module); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "chi_S^lambda(C_i) = %d\n", res.Irreducible)
	return err
}
