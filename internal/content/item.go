// Package content generates the per-theme animated layouts. Every generator is
// a pure function of (colors, count, seed, profile): the seeded stream fixes
// positions, sizes, and timing, so a layout regenerates identically for the
// same inputs. Items are semantic parameters only; the client decides pixels.
package content

type Kind string

const (
	KindBubble    = Kind("bubble")
	KindShape     = Kind("shape")
	KindSparkle   = Kind("sparkle")
	KindCloud     = Kind("cloud")
	KindStar      = Kind("star")
	KindPlanet    = Kind("planet")
	KindFlower    = Kind("flower")
	KindFish      = Kind("fish")
	KindButterfly = Kind("butterfly")
	KindAnimal    = Kind("animal")
	KindWave      = Kind("wave")
)

// Item describes one animated element. X and Y are percentages of the
// viewport, Duration and Delay are seconds. Kind-specific fields are zero for
// kinds that do not use them: bubbles have no Y (they traverse the full
// height), fish have no X (they swim across), waves use YOffset from the
// bottom edge.
type Item struct {
	Index        int     `json:"index"`
	Kind         Kind    `json:"kind"`
	Emoji        string  `json:"emoji,omitempty"`
	Shape        string  `json:"shape,omitempty"`
	X            float64 `json:"x,omitempty"`
	Y            float64 `json:"y,omitempty"`
	Size         float64 `json:"size"`
	Color        string  `json:"color,omitempty"`
	Duration     float64 `json:"duration"`
	Delay        float64 `json:"delay"`
	Direction    int     `json:"direction,omitempty"`
	Rotate       bool    `json:"rotate,omitempty"`
	Drift        string  `json:"drift,omitempty"`
	BounceHeight float64 `json:"bounceHeight,omitempty"`
	Opacity      float64 `json:"opacity,omitempty"`
	YOffset      float64 `json:"yOffset,omitempty"`
}
