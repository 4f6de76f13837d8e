package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	_ "github.com/lib/pq"
	"github.com/jonboulle/clockwork"
	"github.com/nberlot/menu-du-jour-bot/internal/dedup"
	"github.com/nberlot/menu-du-jour-bot/internal/fetcher"
	"github.com/nberlot/menu-du-jour-bot/internal/fetcher/fetcherimpl"
	_ "github.com/nberlot/menu-du-jour-bot/internal/migrations"
	"github.com/nberlot/menu-du-jour-bot/internal/notifier"
	"github.com/nberlot/menu-du-jour-bot/internal/notifier/telegramimpl"
	"github.com/nberlot/menu-du-jour-bot/internal/pgx"
	repositories "github.com/nberlot/menu-du-jour-bot/internal/repositories/fx"
	"github.com/nberlot/menu-du-jour-bot/internal/runner"
	"github.com/nberlot/menu-du-jour-bot/internal/runner/runnerimpl"
	"github.com/nberlot/menu-du-jour-bot/internal/transport"
	"github.com/nberlot/menu-du-jour-bot/internal/transport/transportimpl"
	"github.com/nberlot/menu-du-jour-bot/pkg/config"
	"github.com/nberlot/menu-du-jour-bot/pkg/logger"
	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
		func() clockwork.Clock { return clockwork.NewRealClock() },
		dedup.NewGate,
	),
	fx.Provide(
		fx.Annotate(
			telegramimpl.New,
			fx.As(new(notifier.Client)),
		), fx.Annotate(
			fetcherimpl.New,
			fx.As(new(fetcher.Client)),
		), fx.Annotate(
			transportimpl.New,
			fx.As(new(transport.Client)),
		),
		fx.Annotate(
			runnerimpl.New,
			fx.As(new(runner.Client)),
		),
	),
	repositories.Module,
	fx.Invoke(migrate),
	fx.Invoke(run),
)

func migrate(cfg *config.Config) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	// Go migrations are registered by the migrations package import.
	return goose.Up(db, ".")
}

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config, runClient runner.Client) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go startHttpServer(log, cfg)

			ctx := context.Background()

			opts, err := startupRunOptions(cfg)
			if err != nil {
				log.Error("Invalid run options", "error", err)
				return err
			}

			go func() {
				if err := runClient.Run(ctx, opts); err != nil {
					log.Error("Startup run failed", "error", err)
				}
			}()

			if err := runClient.ScheduleRuns(ctx); err != nil {
				log.Error("Failed to schedule runs", "error", err)
				return err
			}

			return nil
		},
	})
}

func startHttpServer(log logger.Logger, cfg *config.Config) {
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		healthCheckHandler(w, r, log)
	})

	log.Info(fmt.Sprintf("Starting server on :%d", cfg.App.Port))

	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.App.Port), nil); err != nil {
		log.Error("Server failed to start: %v", err)
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request, logger logger.Logger) {
	logger.Info("Health check request received", "Method", r.Method, "URL", r.URL.String())
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Error("Failed to write response", "Error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
