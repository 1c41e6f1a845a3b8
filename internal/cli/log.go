// Package cli implements the snchar command-line interface.
//
// The commands compute characters of the symmetric group S_n: single values
// of χ_M (fixed tabloids) and χ_S (irreducible, via Murnaghan–Nakayama),
// whole character tables, TOML batch files and an interactive browser.
// The CLI is built using cobra and logs through charmbracelet/log.
//
// # Commands
//
//   - compute: χ_M and χ_S for one partition and one cycle type
//   - table: the character table of S_n
//   - batch: run the queries of a TOML file
//   - explore: browse the partitions of n interactively
//   - cache: manage the result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// reports cache hits and computation timings. The logger is attached to the
// command context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/snchar/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Ran 3 queries (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports computations and cache traffic at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnComputeStart(_ context.Context, kind string, n int) {
	h.logger.Debug("compute started", "kind", kind, "n", n)
}

func (h logHooks) OnComputeComplete(_ context.Context, kind string, n int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("compute failed", "kind", kind, "n", n, "err", err)
		return
	}
	h.logger.Debug("compute finished", "kind", kind, "n", n, "duration", d)
}

func (h logHooks) OnCacheHit(_ context.Context, kind string) {
	h.logger.Debug("cache hit", "kind", kind)
}

func (h logHooks) OnCacheMiss(_ context.Context, kind string) {
	h.logger.Debug("cache miss", "kind", kind)
}

func (h logHooks) OnCacheSet(_ context.Context, kind string, size int) {
	h.logger.Debug("cache stored", "kind", kind, "bytes", size)
}

// installLogHooks routes observability events to l.
func installLogHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetComputeHooks(h)
	observability.SetCacheHooks(h)
}
