// Package ageprofile maps a baby's age in months to a fixed configuration
// bundle constraining content complexity, speed, palette, and touch behavior.
// Buckets follow infant vision development: 4-6, 7-9, and 10-12 months.
package ageprofile

import "time"

type Range struct {
	Min float64
	Max float64
}

// Midpoint returns the center of the range.
func (r Range) Midpoint() float64 {
	return (r.Min + r.Max) / 2
}

type TouchBehavior struct {
	CelebrationDuration time.Duration
	PersistDuration     time.Duration
	RemoveOnTouch       bool
	GrowScale           float64
	HitboxMultiplier    float64
}

type Profile struct {
	Key    string
	Name   string
	AgeMin int
	AgeMax int

	ObjectCount            Range
	MaxSimultaneousObjects int
	SpawnDelay             time.Duration

	ColorPalette []string
	ObjectSize   Range // percentage of viewport

	AnimationSpeed  float64
	AllowRotation   bool
	MovementPattern string // linear, curved, organic

	TouchBehavior TouchBehavior

	BackgroundComplexity string
	EnabledThemes        []string
}

// SizeMultiplier is the scale factor applied to generated item sizes: the
// midpoint of the object-size range over a normalizing constant of 10.
func (p *Profile) SizeMultiplier() float64 {
	return p.ObjectSize.Midpoint() / 10
}

// Youngest reports whether this is the 4-6 month bucket, which sees only
// plain high-contrast shapes.
func (p Profile) Youngest() bool {
	return p.AgeMin >= 4 && p.AgeMin <= 6
}

// IsThemeEnabled reports whether the theme is available to this bucket.
func (p *Profile) IsThemeEnabled(themeID string) bool {
	for _, id := range p.EnabledThemes {
		if id == themeID {
			return true
		}
	}
	return false
}

var profiles = map[string]Profile{
	"4-6": {
		Key:    "4-6",
		Name:   "4-6 Months",
		AgeMin: 4,
		AgeMax: 6,

		ObjectCount:            Range{Min: 1, Max: 2},
		MaxSimultaneousObjects: 2,
		SpawnDelay:             4 * time.Second,

		ColorPalette: []string{"#000000", "#FFFFFF", "#FF0000", "#FFFF00", "#0000FF"},
		ObjectSize:   Range{Min: 20, Max: 30},

		AnimationSpeed:  0.3,
		AllowRotation:   false,
		MovementPattern: "linear",

		TouchBehavior: TouchBehavior{
			CelebrationDuration: 1000 * time.Millisecond,
			PersistDuration:     3000 * time.Millisecond,
			RemoveOnTouch:       false,
			GrowScale:           2.0,
			HitboxMultiplier:    1.5,
		},

		BackgroundComplexity: "solid",
		EnabledThemes:        []string{"contrast"},
	},
	"7-9": {
		Key:    "7-9",
		Name:   "7-9 Months",
		AgeMin: 7,
		AgeMax: 9,

		ObjectCount:            Range{Min: 3, Max: 5},
		MaxSimultaneousObjects: 5,
		SpawnDelay:             2500 * time.Millisecond,

		ColorPalette: []string{
			"#000000", "#FFFFFF", "#FF0000", "#FFFF00",
			"#0000FF", "#00FF00", "#FFA500", "#800080",
		},
		ObjectSize: Range{Min: 12, Max: 20},

		AnimationSpeed:  0.6,
		AllowRotation:   true,
		MovementPattern: "curved",

		TouchBehavior: TouchBehavior{
			CelebrationDuration: 800 * time.Millisecond,
			PersistDuration:     2000 * time.Millisecond,
			RemoveOnTouch:       false,
			GrowScale:           1.8,
			HitboxMultiplier:    1.3,
		},

		BackgroundComplexity: "gradient",
		EnabledThemes:        []string{"contrast", "ocean", "space"},
	},
	"10-12": {
		Key:    "10-12",
		Name:   "10-12 Months",
		AgeMin: 10,
		AgeMax: 12,

		ObjectCount:            Range{Min: 5, Max: 8},
		MaxSimultaneousObjects: 8,
		SpawnDelay:             1500 * time.Millisecond,

		ColorPalette: []string{
			"#000000", "#FFFFFF", "#FF0000", "#FFFF00", "#0000FF",
			"#00FF00", "#FFA500", "#800080", "#FF1493", "#00CED1",
			"#FFD700", "#FF69B4", "#98FB98", "#DDA0DD",
		},
		ObjectSize: Range{Min: 8, Max: 15},

		AnimationSpeed:  1.0,
		AllowRotation:   true,
		MovementPattern: "organic",

		TouchBehavior: TouchBehavior{
			CelebrationDuration: 500 * time.Millisecond,
			PersistDuration:     0,
			RemoveOnTouch:       true,
			GrowScale:           1.5,
			HitboxMultiplier:    1.2,
		},

		BackgroundComplexity: "animated",
		EnabledThemes:        []string{"contrast", "ocean", "space", "jungle", "rainbow"},
	},
}

// Resolve returns the profile for an age in months. Ages outside [4,12] fall
// back to the least-restrictive 10-12 profile.
func Resolve(ageMonths int) Profile {
	switch {
	case ageMonths >= 4 && ageMonths <= 6:
		return profiles["4-6"]
	case ageMonths >= 7 && ageMonths <= 9:
		return profiles["7-9"]
	case ageMonths >= 10 && ageMonths <= 12:
		return profiles["10-12"]
	}
	return profiles["10-12"]
}

// Keys lists the profile bucket keys in age order.
func Keys() []string {
	return []string{"4-6", "7-9", "10-12"}
}
