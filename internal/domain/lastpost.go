package domain

import "time"

// LastPost is the persisted marker for the most recent day a menu was
// delivered. At most one marker exists at any time.
type LastPost struct {
	Date     Date
	ImageRef string
	PostedAt time.Time
}
