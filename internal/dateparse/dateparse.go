// Package dateparse normalizes the loosely structured timestamp strings
// found on the scraped page into calendar dates. Parsing is a pure
// function of the input text and a caller-supplied reference time, so
// "now" can be simulated in tests.
package dateparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/nberlot/menu-du-jour-bot/internal/domain"
)

var (
	relativeRe = regexp.MustCompile(`(\d+)\s?([hj])\b`)
	slashRe    = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{2,4})\b`)
	monthRe    = regexp.MustCompile(`\b(\d{1,2})(?:er)?\s+([\p{L}]+\.?)\s+(\d{4})\b`)
)

var accentFolder = strings.NewReplacer(
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"à", "a", "â", "a",
	"û", "u", "ù", "u", "ü", "u",
	"î", "i", "ï", "i",
	"ô", "o", "ö", "o",
	"ç", "c",
)

// Parse converts a raw timestamp string into a calendar date. Recognized
// forms, first match wins: relative "3h"/"2j", literal "hier",
// "DD/MM/YYYY" (or /YY, read as 2000+YY), and "3 novembre 2025" with the
// month matched by its first three letters. Unrecognized text reports
// ok=false, never an error.
func Parse(text string, ref time.Time) (domain.Date, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return domain.Date{}, false
	}

	if m := relativeRe.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return domain.Date{}, false
		}
		switch m[2] {
		case "h":
			return domain.DateOf(ref.Add(-time.Duration(n) * time.Hour)), true
		case "j":
			return domain.DateOf(ref).AddDays(-n), true
		}
	}

	if strings.Contains(s, "hier") {
		return domain.DateOf(ref).AddDays(-1), true
	}

	if m := slashRe.FindStringSubmatch(s); m != nil {
		return parseSlash(m)
	}

	if m := monthRe.FindStringSubmatch(s); m != nil {
		return parseSpelled(m)
	}

	return domain.Date{}, false
}

func parseSlash(m []string) (domain.Date, bool) {
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if year < 100 {
		year += 2000
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return domain.Date{}, false
	}
	// Reject dates that time.Date would roll over, e.g. 31/02.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != time.Month(month) {
		return domain.Date{}, false
	}
	return domain.Date{Year: year, Month: time.Month(month), Day: day}, true
}

func parseSpelled(m []string) (domain.Date, bool) {
	day, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[3])
	month, ok := matchMonth(m[2])
	if !ok {
		return domain.Date{}, false
	}
	if day < 1 || day > 31 {
		return domain.Date{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != month {
		return domain.Date{}, false
	}
	return domain.Date{Year: year, Month: month, Day: day}, true
}

// matchMonth resolves a French month word by comparing its first three
// letters (accent-folded) against the canonical table, first hit wins.
// "oct", "octobre" and "oct." all resolve to October.
func matchMonth(word string) (time.Month, bool) {
	w := accentFolder.Replace(strings.TrimSuffix(strings.ToLower(word), "."))
	if len(w) < 3 {
		return 0, false
	}
	for i, name := range domain.FrenchMonths {
		if w[:3] == accentFolder.Replace(name)[:3] {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}
