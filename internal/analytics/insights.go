// Package analytics aggregates recorded sessions into parent-facing insights.
package analytics

import (
	"time"

	"babysensory/internal/session"
)

// Insights summarizes the session history for the parent dashboard.
type Insights struct {
	Sessions       int     `json:"sessions"`
	CompletedFull  int     `json:"completedFull"`
	TotalTouches   int     `json:"totalTouches"`
	TotalPlaySecs  int     `json:"totalPlaySeconds"`
	BestStreak     int     `json:"bestStreak"`
	BestMilestone  int     `json:"bestMilestone"`
	FavoriteColor  string  `json:"favoriteColor,omitempty"`
	FavoriteObject string  `json:"favoriteObject,omitempty"`
	DaysPlayed     int     `json:"daysPlayed"`
	Badges         []Badge `json:"badges"`
}

// Summarize folds the records into one insights view. Records may be in any
// order; favorite ties go to whichever key was seen first.
func Summarize(records []session.Record) Insights {
	ins := Insights{Sessions: len(records)}

	colorCounts := make(map[string]int)
	var colorOrder []string
	objectCounts := make(map[string]int)
	var objectOrder []string
	days := make(map[string]bool)

	for _, rec := range records {
		ins.TotalTouches += rec.Touches
		ins.TotalPlaySecs += rec.Duration
		if rec.CompletedFull {
			ins.CompletedFull++
		}
		if rec.Streaks > ins.BestStreak {
			ins.BestStreak = rec.Streaks
		}
		for _, m := range rec.Milestones {
			if m > ins.BestMilestone {
				ins.BestMilestone = m
			}
		}

		for hex, n := range rec.ColorCounts {
			if _, seen := colorCounts[hex]; !seen {
				colorOrder = append(colorOrder, hex)
			}
			colorCounts[hex] += n
		}
		for emoji, n := range rec.ObjectCounts {
			if _, seen := objectCounts[emoji]; !seen {
				objectOrder = append(objectOrder, emoji)
			}
			objectCounts[emoji] += n
		}

		day := time.UnixMilli(rec.Timestamp).UTC().Format("2006-01-02")
		days[day] = true
	}

	ins.DaysPlayed = len(days)
	ins.FavoriteColor = mostCounted(colorCounts, colorOrder)
	ins.FavoriteObject = mostCounted(objectCounts, objectOrder)
	ins.Badges = EvaluateBadges(records, ins)
	return ins
}

func mostCounted(counts map[string]int, order []string) string {
	best := ""
	bestCount := 0
	for _, key := range order {
		if counts[key] > bestCount {
			best = key
			bestCount = counts[key]
		}
	}
	return best
}
