package runner

import (
	"context"

	"github.com/nberlot/menu-du-jour-bot/internal/domain"
)

// RunOptions carries the optional parameters of a single invocation.
// TargetDate forces a run for a specific day, bypassing the hour window
// and the already-posted check for that date. Force bypasses only the
// hour window; the dedup gate still applies.
type RunOptions struct {
	TargetDate *domain.Date
	Force      bool
}

type Client interface {
	// Run executes one fetch-locate-gate-deliver invocation to
	// completion. No-op outcomes (outside window, already posted,
	// nothing found) return nil.
	Run(ctx context.Context, opts RunOptions) error

	// ScheduleRuns starts the periodic invocation schedule and returns;
	// the schedule stops when ctx is done.
	ScheduleRuns(ctx context.Context) error
}
