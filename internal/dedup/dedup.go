// Package dedup guards the at-most-once-per-day delivery guarantee. The
// gate is checked before any externally visible side effect and committed
// only after delivery is confirmed.
package dedup

import (
	"context"
	"errors"
	"time"

	"github.com/nberlot/menu-du-jour-bot/internal/domain"
	"github.com/nberlot/menu-du-jour-bot/internal/repositories/lastpost"
	"github.com/nberlot/menu-du-jour-bot/pkg/logger"
)

type Gate struct {
	repo   lastpost.Repository
	logger logger.Logger
}

func NewGate(repo lastpost.Repository, log logger.Logger) *Gate {
	return &Gate{
		repo:   repo,
		logger: log.WithComponent("DedupGate"),
	}
}

// AlreadyPosted reports whether a delivery for target has been committed.
// A missing or unreadable marker reads as "not posted": the system favors
// eventual delivery over strict failure visibility.
func (g *Gate) AlreadyPosted(ctx context.Context, target domain.Date) bool {
	marker, err := g.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, lastpost.ErrNotFound) {
			g.logger.Warn("Could not read last post marker, treating as not posted", "error", err)
		}
		return false
	}
	return marker.Date.Equal(target)
}

// Commit overwrites the marker for target. Call only after the delivery
// succeeded; a crash between delivery and commit is the accepted
// at-least-once window.
func (g *Gate) Commit(ctx context.Context, target domain.Date, imageRef string) error {
	return g.repo.Set(ctx, domain.LastPost{
		Date:     target,
		ImageRef: imageRef,
		PostedAt: time.Now().UTC(),
	})
}
