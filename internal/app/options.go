package app

import (
	"fmt"

	"github.com/nberlot/menu-du-jour-bot/internal/domain"
	"github.com/nberlot/menu-du-jour-bot/internal/runner"
	"github.com/nberlot/menu-du-jour-bot/pkg/config"
)

// startupRunOptions maps the RUN_FORCE / RUN_TARGET_DATE environment
// overrides onto the options of the one run performed at startup. The
// scheduled ticks always run with empty options.
func startupRunOptions(cfg *config.Config) (runner.RunOptions, error) {
	opts := runner.RunOptions{Force: cfg.Run.Force}

	if cfg.Run.TargetDate != "" {
		d, err := domain.ParseISO(cfg.Run.TargetDate)
		if err != nil {
			return runner.RunOptions{}, fmt.Errorf("invalid RUN_TARGET_DATE %q: %w", cfg.Run.TargetDate, err)
		}
		opts.TargetDate = &d
	}

	return opts, nil
}
