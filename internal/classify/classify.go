// Package classify decides whether a scraped post is the menu post for a
// given target day. Pure text heuristics, no I/O.
package classify

import (
	"strings"

	"github.com/nberlot/menu-du-jour-bot/internal/domain"
)

// IsTargetMenuPost reports whether a post is the menu post for target.
// Both conditions must hold: postDate names the target day, and the body
// text carries at least one menu signal ("menu", "aujourd'hui", or the
// target's weekday phrase such as "lundi 3 novembre"). Missing or
// malformed text is simply not a match.
func IsTargetMenuPost(rawText string, postDate *domain.Date, target domain.Date) bool {
	if postDate == nil || !postDate.Equal(target) {
		return false
	}

	text := strings.ToLower(rawText)
	if text == "" {
		return false
	}

	if strings.Contains(text, "menu") {
		return true
	}
	// Scraped text carries either the ASCII or the typographic apostrophe.
	if strings.Contains(text, "aujourd'hui") || strings.Contains(text, "aujourd’hui") {
		return true
	}
	return strings.Contains(text, target.FrenchPhrase())
}
