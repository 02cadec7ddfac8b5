// Package playfield owns the live interactive objects: spawning on a timer,
// the touch-to-celebration lifecycle, and stale-object cleanup.
package playfield

import "time"

type Phase string

const (
	PhaseIdle        = Phase("idle")
	PhaseCelebrating = Phase("celebrating")
	PhasePersisting  = Phase("persisting")
	PhaseFadeOut     = Phase("fadeOut")
)

const (
	// FadeOutDuration is the fixed fade time before removal.
	FadeOutDuration = 1 * time.Second
	// MaxObjectAge force-removes any object regardless of phase, so a
	// missed touch event cannot leak objects.
	MaxObjectAge = 30 * time.Second
)

// Object is one touchable on-screen element. X and Y are percentages of the
// viewport, Size a percentage of viewport width. HitboxMultiplier scales the
// touchable area beyond the visible size.
type Object struct {
	ID               int     `json:"id"`
	X                float64 `json:"x"`
	Y                float64 `json:"y"`
	Size             float64 `json:"size"`
	Color            string  `json:"color"`
	Emoji            string  `json:"emoji,omitempty"`
	HitboxMultiplier float64 `json:"hitboxMultiplier"`
	Phase            Phase   `json:"phase"`

	SpawnedAt time.Time `json:"-"`
	TouchedAt time.Time `json:"-"`
}
