package locator

import (
	"testing"
	"time"

	"github.com/nberlot/menu-du-jour-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-11-03 is a Monday.
var (
	target = domain.Date{Year: 2025, Month: time.November, Day: 3}
	ref    = time.Date(2025, time.November, 3, 10, 0, 0, 0, time.UTC)
)

func TestLocate_EmptyInput(t *testing.T) {
	assert.Nil(t, Locate(nil, target, ref))
	assert.Nil(t, Locate([]domain.PostRecord{}, target, ref))
}

func TestLocate_FindsMenuPost(t *testing.T) {
	posts := []domain.PostRecord{
		{RawText: "Concert samedi soir !", CandidateDateText: "03/11/2025", ImageRef: "img-concert"},
		{RawText: "Menu du jour: poulet basquaise", CandidateDateText: "2h", ImageRef: "img-menu"},
		{RawText: "Menu du jour: blanquette", CandidateDateText: "hier", ImageRef: "img-old"},
	}

	match := Locate(posts, target, ref)
	require.NotNil(t, match)
	assert.Equal(t, "img-menu", match.ImageRef)
	assert.Equal(t, target, match.Date)
}

func TestLocate_NoTextualSignal(t *testing.T) {
	posts := []domain.PostRecord{
		{RawText: "Bonne semaine !", CandidateDateText: "1h", ImageRef: "img1"},
		{RawText: "Concert vendredi", CandidateDateText: "03/11/2025", ImageRef: "img2"},
	}
	assert.Nil(t, Locate(posts, target, ref))
}

func TestLocate_ImageRequired(t *testing.T) {
	posts := []domain.PostRecord{
		{RawText: "Menu du jour: poulet", CandidateDateText: "1h", ImageRef: ""},
		{RawText: "Menu du jour: poulet (photo)", CandidateDateText: "2h", ImageRef: "img-later"},
	}

	// The text-only match is skipped and the scan continues.
	match := Locate(posts, target, ref)
	require.NotNil(t, match)
	assert.Equal(t, "img-later", match.ImageRef)
}

func TestLocate_FirstMatchWins(t *testing.T) {
	posts := []domain.PostRecord{
		{RawText: "Menu du jour v2", CandidateDateText: "1h", ImageRef: "img-newest"},
		{RawText: "Menu du jour v1", CandidateDateText: "2h", ImageRef: "img-older"},
	}

	match := Locate(posts, target, ref)
	require.NotNil(t, match)
	assert.Equal(t, "img-newest", match.ImageRef)
}

// "aujourd'hui" in the candidate date text is not a date form; it only
// counts as a classifier keyword inside the body text. A post whose only
// date cue is the word itself never reaches classification.
func TestLocate_AujourdhuiIsNotADateCue(t *testing.T) {
	posts := []domain.PostRecord{
		{RawText: "Menu du jour: poulet", CandidateDateText: "aujourd'hui", ImageRef: "img1"},
		{RawText: "Menu hier", CandidateDateText: "hier", ImageRef: "img2"},
	}

	assert.Nil(t, Locate(posts, target, ref))
}

func TestLocate_DateMismatchSkipsClassification(t *testing.T) {
	posts := []domain.PostRecord{
		{RawText: "Menu du jour: poulet", CandidateDateText: "02/11/2025", ImageRef: "img1"},
	}
	assert.Nil(t, Locate(posts, target, ref))
}
