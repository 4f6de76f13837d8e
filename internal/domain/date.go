package domain

import (
	"fmt"
	"time"
)

// Date is a calendar date with no time-of-day component. Two dates are
// equal iff they name the same calendar day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// FrenchMonths holds the canonical French month names, January first.
var FrenchMonths = [12]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// FrenchWeekdays holds the French weekday names indexed by time.Weekday
// (Sunday first).
var FrenchWeekdays = [7]string{
	"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
}

// DateOf truncates a timestamp to its calendar day in the timestamp's
// location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) Equal(o Date) bool {
	return d.Year == o.Year && d.Month == o.Month && d.Day == o.Day
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// String returns the ISO-8601 calendar date, e.g. "2025-11-03".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns midnight of the date in the given location.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// AddDays returns the date shifted by n calendar days (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time(time.UTC).AddDate(0, 0, n))
}

// FrenchPhrase returns the date as spoken on the scraped page,
// e.g. "lundi 3 novembre". The year is deliberately absent: this is the
// form menu posts use in their body text.
func (d Date) FrenchPhrase() string {
	return fmt.Sprintf("%s %d %s", FrenchWeekdays[d.Weekday()], d.Day, FrenchMonths[d.Month-1])
}

// ParseISO parses an ISO-8601 calendar date ("2006-01-02").
func ParseISO(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}
