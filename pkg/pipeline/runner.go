package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/snchar/pkg/cache"
	"github.com/matzehuels/snchar/pkg/character"
	"github.com/matzehuels/snchar/pkg/observability"
)

// Runner executes requests with result caching.
//
// The Runner holds no per-request state; every computation gets fresh memo
// tables inside package character. Only finished results reach the cache.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Compute validates req and returns χ_M and χ_S, from the cache when possible.
func (r *Runner) Compute(ctx context.Context, req Request) (*Result, error) {
	lambda, counts, err := req.Validate()
	if err != nil {
		return nil, err
	}

	result := &Result{
		Partition: lambda,
		Cycles:    counts,
		N:         lambda.N(),
		CycleType: counts.Notation(),
	}
	start := time.Now()
	key := r.Keyer.CharacterKey(lambda, counts)

	if !req.Refresh && r.load(ctx, "character", key, &result.Pair) {
		result.Stats = Stats{Cached: true, Duration: time.Since(start)}
		r.Logger.Debug("loaded characters from cache", "partition", lambda, "cycles", counts)
		return result, nil
	}

	observability.Compute().OnComputeStart(ctx, "character", result.N)
	pair, err := character.Compute(lambda, counts)
	result.Stats.Duration = time.Since(start)
	observability.Compute().OnComputeComplete(ctx, "character", result.N, result.Stats.Duration, err)
	if err != nil {
		return nil, err
	}
	result.Pair = pair

	r.Logger.Debug("computed characters",
		"partition", lambda,
		"cycle_type", result.CycleType,
		"chi_m", pair.Module,
		"chi_s", pair.Irreducible,
		"duration", result.Stats.Duration)

	r.store(ctx, "character", key, pair, cache.TTLCharacter)
	return result, nil
}

// Table returns the character table of S_n, from the cache when possible.
func (r *Runner) Table(ctx context.Context, n int, refresh bool) (*TableResult, error) {
	start := time.Now()
	key := r.Keyer.TableKey(n)

	var cached character.Table
	if !refresh && r.load(ctx, "table", key, &cached) && cached.N == n {
		return &TableResult{
			Table: &cached,
			Stats: Stats{Cached: true, Duration: time.Since(start)},
		}, nil
	}

	observability.Compute().OnComputeStart(ctx, "table", n)
	table, err := character.BuildTable(ctx, n)
	duration := time.Since(start)
	observability.Compute().OnComputeComplete(ctx, "table", n, duration, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("computed character table",
		"n", n,
		"classes", len(table.Classes),
		"duration", duration)

	r.store(ctx, "table", key, table, cache.TTLTable)
	return &TableResult{Table: table, Stats: Stats{Duration: duration}}, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// load decodes the cached value for key into v and reports whether it was found.
// Read and decode failures count as misses.
func (r *Runner) load(ctx context.Context, kind, key string, v any) bool {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "kind", kind, "err", err)
	}
	if err != nil || !hit || json.Unmarshal(data, v) != nil {
		observability.Cache().OnCacheMiss(ctx, kind)
		return false
	}
	observability.Cache().OnCacheHit(ctx, kind)
	return true
}

// store writes v under key. Failures are logged and otherwise ignored.
func (r *Runner) store(ctx context.Context, kind, key string, v any, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		r.Logger.Warn("cache encode failed", "kind", kind, "err", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "kind", kind, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, kind, len(data))
}
