package transport

import "context"

// Client downloads a binary resource for a given locator.
type Client interface {
	Download(ctx context.Context, locator string) ([]byte, error)
}
