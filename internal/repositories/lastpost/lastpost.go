package lastpost

import (
	"context"
	"errors"

	"github.com/nberlot/menu-du-jour-bot/internal/domain"
)

var ErrNotFound = errors.New("last post marker not found")

// Repository stores the single last-posted marker. There is at most one
// marker at any time; Set overwrites it.
type Repository interface {
	// Get returns the current marker, or ErrNotFound when none exists.
	Get(ctx context.Context) (*domain.LastPost, error)

	// Set overwrites the marker.
	Set(ctx context.Context, marker domain.LastPost) error
}
