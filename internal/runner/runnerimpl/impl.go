package runnerimpl

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/nberlot/menu-du-jour-bot/internal/dedup"
	"github.com/nberlot/menu-du-jour-bot/internal/fetcher"
	"github.com/nberlot/menu-du-jour-bot/internal/notifier"
	"github.com/nberlot/menu-du-jour-bot/internal/runner"
	"github.com/nberlot/menu-du-jour-bot/internal/transport"
	"github.com/nberlot/menu-du-jour-bot/pkg/config"
	"github.com/nberlot/menu-du-jour-bot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Fetcher   fetcher.Client
	Transport transport.Client
	Notifier  notifier.Client
	Gate      *dedup.Gate
	Logger    logger.Logger
	Config    *config.Config
	Clock     clockwork.Clock
}

type RunnerImpl struct {
	Fetcher   fetcher.Client
	Transport transport.Client
	Notifier  notifier.Client
	Gate      *dedup.Gate
	Logger    logger.Logger
	Config    *config.Config
	Clock     clockwork.Clock

	loc *time.Location

	// runMu enforces non-overlap of invocations: the gate's
	// read-decide-write sequence is not safe under concurrent runs.
	runMu sync.Mutex
}

func New(opts Opts) *RunnerImpl {
	loc, err := time.LoadLocation(opts.Config.Run.Timezone)
	if err != nil {
		loc = time.Local
		opts.Logger.Warn("Failed to load configured timezone, using local timezone",
			"timezone", opts.Config.Run.Timezone, "error", err)
	}

	return &RunnerImpl{
		Fetcher:   opts.Fetcher,
		Transport: opts.Transport,
		Notifier:  opts.Notifier,
		Gate:      opts.Gate,
		Logger:    opts.Logger.WithComponent("Runner"),
		Config:    opts.Config,
		Clock:     opts.Clock,
		loc:       loc,
	}
}

var _ runner.Client = (*RunnerImpl)(nil)
