package domain

// PostRecord is one scraped post, produced per fetch and never persisted.
type PostRecord struct {
	RawText           string
	CandidateDateText string // best-effort date-ish substring, possibly empty
	ImageRef          string // image locator; empty when the post has no image
}

// MenuMatch is the winning post of a single locator scan.
type MenuMatch struct {
	Text     string
	ImageRef string
	Date     Date
}
