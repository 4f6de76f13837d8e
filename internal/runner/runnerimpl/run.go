package runnerimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/nberlot/menu-du-jour-bot/internal/domain"
	"github.com/nberlot/menu-du-jour-bot/internal/locator"
	"github.com/nberlot/menu-du-jour-bot/internal/runner"
)

// Run executes one invocation: window check, gate check, fetch, locate,
// download, deliver, commit. Any collaborator failure aborts without
// committing, leaving the gate open for the next scheduled tick.
func (r *RunnerImpl) Run(ctx context.Context, opts runner.RunOptions) error {
	if !r.runMu.TryLock() {
		r.Logger.Warn("Previous invocation still running, skipping")
		return nil
	}
	defer r.runMu.Unlock()

	now := r.Clock.Now().In(r.loc)

	forced := opts.TargetDate != nil
	target := domain.DateOf(now)
	if forced {
		target = *opts.TargetDate
	}

	if !forced && !opts.Force && !r.withinWindow(now) {
		r.Logger.Debug("Outside posting window, skipping", "hour", now.Hour())
		return nil
	}

	if !forced && r.Gate.AlreadyPosted(ctx, target) {
		r.Logger.Info("Menu already posted for date, skipping", "date", target.String())
		return nil
	}

	posts, err := r.Fetcher.FetchPosts(ctx, r.Config.Page.URL)
	if err != nil {
		return fmt.Errorf("failed to fetch posts: %w", err)
	}

	match := locator.Locate(posts, target, now)
	if match == nil {
		r.Logger.Info("No menu post found for date", "date", target.String(), "posts_scanned", len(posts))
		return nil
	}

	r.Logger.Info("Found menu post", "date", match.Date.String(), "image", match.ImageRef)

	image, err := r.Transport.Download(ctx, match.ImageRef)
	if err != nil {
		return fmt.Errorf("failed to download menu image: %w", err)
	}

	chatID, err := r.Notifier.ResolveChannel(r.Config.Telegram.Channel)
	if err != nil {
		return fmt.Errorf("failed to resolve channel: %w", err)
	}

	filename := fmt.Sprintf("menu-%s.jpg", target.String())
	if err := r.Notifier.SendPhoto(chatID, image, filename, "Menu du jour", target.FrenchPhrase()); err != nil {
		return fmt.Errorf("failed to deliver menu: %w", err)
	}

	if err := r.Gate.Commit(ctx, target, match.ImageRef); err != nil {
		// Delivery already happened; an uncommitted marker risks a
		// duplicate post on the next tick.
		r.Logger.Error("Delivered but failed to persist last post marker", "date", target.String(), "error", err)
		return fmt.Errorf("failed to commit last post marker: %w", err)
	}

	r.Logger.Info("Menu delivered", "date", target.String())
	return nil
}

func (r *RunnerImpl) withinWindow(now time.Time) bool {
	h := now.Hour()
	return h >= r.Config.Run.WindowStartHour && h < r.Config.Run.WindowEndHour
}
