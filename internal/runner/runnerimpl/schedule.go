package runnerimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/nberlot/menu-du-jour-bot/internal/runner"
)

// ScheduleRuns sets up the hourly job inside the posting window. The
// scheduler fires on the hour; Run re-checks the window itself so a
// drifting tick never posts outside it.
func (r *RunnerImpl) ScheduleRuns(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler(gocron.WithLocation(r.loc))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	crontab := fmt.Sprintf("0 %d-%d * * *", r.Config.Run.WindowStartHour, r.Config.Run.WindowEndHour-1)

	_, err = scheduler.NewJob(
		gocron.CronJob(crontab, false),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				r.Logger.Info("Context cancelled, stopping scheduled runs")
				return
			}

			taskCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
			defer cancel()

			r.Logger.Info("Starting scheduled menu run")
			if err := r.Run(taskCtx, runner.RunOptions{}); err != nil {
				r.Logger.Error("Scheduled menu run failed", "error", err)
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule menu runs: %w", err)
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		r.Logger.Info("Stopping run scheduler")
		if err := scheduler.Shutdown(); err != nil {
			r.Logger.Error("Failed to shut down scheduler", "error", err)
		}
	}()

	return nil
}
