// Package daily derives the theme-of-the-day and the content seed for a
// calendar date. The seed comes from a string hash of the date while the
// theme index comes from a day count; the derivations are deliberately
// decoupled, but both are stable for a given date within one build.
package daily

import (
	"fmt"
	"time"

	"babysensory/internal/seeded"
	"babysensory/internal/themes"
)

// Content is everything a generation pass needs for one day: the selected
// theme plus seeded shuffles of its candidate lists.
type Content struct {
	Theme      themes.Theme
	ThemeIndex int
	Colors     []string
	Animations []string
	Sounds     []string
	Seed       int
	DateLabel  string
	Overridden bool
}

// DateSeed hashes the year-month-day string into a stable non-negative seed.
// The month is zero-based in the hashed string; changing that would reshuffle
// every historical day's layout.
func DateSeed(date time.Time) int {
	dateString := fmt.Sprintf("%d-%d-%d", date.Year(), int(date.Month())-1, date.Day())
	var hash int32
	for _, ch := range dateString {
		hash = hash<<5 - hash + int32(ch)
	}
	if hash < 0 {
		hash = -hash
	}
	return int(hash)
}

// ThemeIndex selects the theme-of-the-day slot from the days elapsed since
// the Unix epoch.
func ThemeIndex(date time.Time) int {
	days := int(date.Unix() / (60 * 60 * 24))
	return days % len(themes.Catalog)
}

// Select computes the day's content. A non-empty overrideThemeID replaces the
// computed theme (a manual pick from the selector) but the seed and shuffle
// logic still run against it. Total over any valid date: unknown override ids
// silently fall back to the computed theme.
func Select(date time.Time, overrideThemeID string) Content {
	seed := DateSeed(date)
	index := ThemeIndex(date)
	theme := themes.Catalog[index]

	overridden := false
	if overrideThemeID != "" {
		if t := themes.ByID(overrideThemeID); t != nil {
			theme = *t
			overridden = true
		}
	}

	return Content{
		Theme:      theme,
		ThemeIndex: index,
		Colors:     seeded.ShuffleStrings(theme.Colors, seed),
		Animations: seeded.ShuffleStrings(theme.Animations, seed),
		Sounds:     seeded.ShuffleStrings(theme.Sounds, seed),
		Seed:       seed,
		DateLabel:  date.Format("Monday, January 2"),
		Overridden: overridden,
	}
}
