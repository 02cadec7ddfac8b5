// Package session assembles completed play sessions into durable records and
// persists them through independent local and remote channels.
package session

import (
	"time"

	"github.com/google/uuid"

	"babysensory/internal/scoreboard"
	"babysensory/internal/themes"
)

// Record is the persisted form of one session. Color counts are keyed by
// canonical hex values and object counts by emoji, matching the analytics
// schema. Immutable once created.
type Record struct {
	ID                  string         `json:"id"`
	Timestamp           int64          `json:"timestamp"` // unix milliseconds
	Theme               string         `json:"theme"`
	Duration            int            `json:"duration"` // seconds
	Touches             int            `json:"touches"`
	ColorCounts         map[string]int `json:"color_counts"`
	ObjectCounts        map[string]int `json:"object_counts"`
	NurseryRhymesPlayed []string       `json:"nursery_rhymes_played"`
	Streaks             int            `json:"streaks"`
	Milestones          []int          `json:"milestones"`
	CompletedFull       bool           `json:"completed_full"`
}

// FromSummary builds a Record from a scoreboard summary plus session
// metadata. Friendly color names collapse to canonical hex ("Colorful" shares
// white's hex), so counts accumulate rather than overwrite.
func FromSummary(s scoreboard.Summary, theme string, duration time.Duration, rhymesPlayed []string, completedFull bool) Record {
	colorCounts := make(map[string]int, len(s.ColorCounts))
	for name, count := range s.ColorCounts {
		colorCounts[themes.ColorNameToHex(name)] += count
	}
	objectCounts := make(map[string]int, len(s.ObjectCounts))
	for objectType, count := range s.ObjectCounts {
		objectCounts[themes.TypeEmoji(objectType)] += count
	}
	if rhymesPlayed == nil {
		rhymesPlayed = []string{}
	}
	milestones := s.MilestonesHit
	if milestones == nil {
		milestones = []int{}
	}

	return Record{
		ID:                  uuid.NewString(),
		Timestamp:           time.Now().UnixMilli(),
		Theme:               theme,
		Duration:            int(duration.Seconds()),
		Touches:             s.TotalTouches,
		ColorCounts:         colorCounts,
		ObjectCounts:        objectCounts,
		NurseryRhymesPlayed: rhymesPlayed,
		Streaks:             s.BestStreak,
		Milestones:          milestones,
		CompletedFull:       completedFull,
	}
}
