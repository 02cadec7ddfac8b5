package ageprofile

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// YAML document types. Durations are expressed in milliseconds, matching how
// the profile table is usually discussed (spawn delay 4000, celebration 1000).

type rangeDoc struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type touchBehaviorDoc struct {
	CelebrationDurationMS int     `yaml:"celebration_duration_ms"`
	PersistDurationMS     int     `yaml:"persist_duration_ms"`
	RemoveOnTouch         bool    `yaml:"remove_on_touch"`
	GrowScale             float64 `yaml:"grow_scale"`
	HitboxMultiplier      float64 `yaml:"hitbox_multiplier"`
}

type profileDoc struct {
	Name   string `yaml:"name"`
	AgeMin int    `yaml:"age_min"`
	AgeMax int    `yaml:"age_max"`

	ObjectCount            rangeDoc `yaml:"object_count"`
	MaxSimultaneousObjects int      `yaml:"max_simultaneous_objects"`
	SpawnDelayMS           int      `yaml:"spawn_delay_ms"`

	ColorPalette []string `yaml:"color_palette"`
	ObjectSize   rangeDoc `yaml:"object_size"`

	AnimationSpeed  float64 `yaml:"animation_speed"`
	AllowRotation   bool    `yaml:"allow_rotation"`
	MovementPattern string  `yaml:"movement_pattern"`

	TouchBehavior touchBehaviorDoc `yaml:"touch_behavior"`

	BackgroundComplexity string   `yaml:"background_complexity"`
	EnabledThemes        []string `yaml:"enabled_themes"`
}

func (d profileDoc) toProfile(key string) Profile {
	return Profile{
		Key:    key,
		Name:   d.Name,
		AgeMin: d.AgeMin,
		AgeMax: d.AgeMax,

		ObjectCount:            Range{Min: d.ObjectCount.Min, Max: d.ObjectCount.Max},
		MaxSimultaneousObjects: d.MaxSimultaneousObjects,
		SpawnDelay:             time.Duration(d.SpawnDelayMS) * time.Millisecond,

		ColorPalette: d.ColorPalette,
		ObjectSize:   Range{Min: d.ObjectSize.Min, Max: d.ObjectSize.Max},

		AnimationSpeed:  d.AnimationSpeed,
		AllowRotation:   d.AllowRotation,
		MovementPattern: d.MovementPattern,

		TouchBehavior: TouchBehavior{
			CelebrationDuration: time.Duration(d.TouchBehavior.CelebrationDurationMS) * time.Millisecond,
			PersistDuration:     time.Duration(d.TouchBehavior.PersistDurationMS) * time.Millisecond,
			RemoveOnTouch:       d.TouchBehavior.RemoveOnTouch,
			GrowScale:           d.TouchBehavior.GrowScale,
			HitboxMultiplier:    d.TouchBehavior.HitboxMultiplier,
		},

		BackgroundComplexity: d.BackgroundComplexity,
		EnabledThemes:        d.EnabledThemes,
	}
}

// LoadOverrides merges a YAML tuning file over the built-in profile table.
// Only buckets present in the file are replaced; an empty path is a no-op.
func LoadOverrides(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading profile overrides %s: %w", path, err)
	}

	overrides := make(map[string]profileDoc)
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("parsing profile overrides %s: %w", path, err)
	}

	for key, doc := range overrides {
		if _, ok := profiles[key]; !ok {
			return fmt.Errorf("unknown age bucket %q in %s", key, path)
		}
		profiles[key] = doc.toProfile(key)
	}
	return nil
}
