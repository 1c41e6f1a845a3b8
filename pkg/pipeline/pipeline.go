// Package pipeline runs character computations for the CLI and other callers.
//
// It sits between the thin boundary (flags, batch files) and the core in
// package character: requests are validated, looked up in the result cache,
// computed on a miss and stored back.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Compute(ctx, pipeline.Request{
//	    Partition: []int{5, 3, 2},
//	    Cycles:    []int{3, 1, 0, 0, 1, 0, 0, 0, 0, 0},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Module, res.Irreducible)
package pipeline

import (
	"time"

	"github.com/matzehuels/snchar/pkg/character"
	"github.com/matzehuels/snchar/pkg/errors"
	"github.com/matzehuels/snchar/pkg/partition"
)

// Format constants for command output.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
}

// ValidateFormat checks that an output format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: text, json)", format)
	}
	return nil
}

// Request asks for both characters of one partition at one cycle type.
type Request struct {
	Partition []int `json:"partition" toml:"partition"`
	Cycles    []int `json:"cycles" toml:"cycles"`

	// Refresh recomputes even if a cached result exists.
	Refresh bool `json:"-" toml:"-"`
}

// Validate checks the request and returns its typed form.
func (r Request) Validate() (partition.Partition, partition.CycleCounts, error) {
	lambda, err := partition.New(r.Partition...)
	if err != nil {
		return nil, nil, err
	}
	counts, err := partition.NewCycleCounts(r.Cycles...)
	if err != nil {
		return nil, nil, err
	}
	if err := partition.Validate(lambda, counts); err != nil {
		return nil, nil, err
	}
	return lambda, counts, nil
}

// Result is the outcome of a Request.
type Result struct {
	Partition partition.Partition   `json:"partition"`
	Cycles    partition.CycleCounts `json:"cycles"`
	N         int                   `json:"n"`
	CycleType string                `json:"cycle_type"`
	character.Pair

	Stats Stats `json:"-"`
}

// TableResult is the character table of S_n with run statistics.
type TableResult struct {
	*character.Table

	Stats Stats `json:"-"`
}

// Stats describes how a result was produced.
type Stats struct {
	Cached   bool
	Duration time.Duration
}
