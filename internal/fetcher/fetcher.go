package fetcher

import (
	"context"

	"github.com/nberlot/menu-du-jour-bot/internal/domain"
)

// Client fetches the public page and returns its posts,
// most-recent-first. Implementations own the fragile scraping concerns
// (selectors, markup drift); callers only see post records.
type Client interface {
	FetchPosts(ctx context.Context, pageURL string) ([]domain.PostRecord, error)
}
