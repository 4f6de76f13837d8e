// Package locator scans fetched post records for the menu post of a
// target day.
package locator

import (
	"time"

	"github.com/nberlot/menu-du-jour-bot/internal/classify"
	"github.com/nberlot/menu-du-jour-bot/internal/dateparse"
	"github.com/nberlot/menu-du-jour-bot/internal/domain"
)

// Locate returns the first post matching the target date, or nil when no
// post matches. Posts are scanned in the order given; callers hand them
// over most-recent-first, so with same-day duplicates the newest wins.
// A textual match without an image is skipped, not an error: the relay
// needs an image to deliver.
func Locate(posts []domain.PostRecord, target domain.Date, ref time.Time) *domain.MenuMatch {
	for _, post := range posts {
		parsed, ok := dateparse.Parse(post.CandidateDateText, ref)
		if !ok || !parsed.Equal(target) {
			continue
		}
		if !classify.IsTargetMenuPost(post.RawText, &parsed, target) {
			continue
		}
		if post.ImageRef == "" {
			continue
		}
		return &domain.MenuMatch{
			Text:     post.RawText,
			ImageRef: post.ImageRef,
			Date:     parsed,
		}
	}
	return nil
}
