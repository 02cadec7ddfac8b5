package content

import (
	"strings"

	"babysensory/internal/ageprofile"
	"babysensory/internal/seeded"
	"babysensory/internal/themes"
)

var starEmojis = []string{"⭐", "🌟", "✨", "💫"}
var planetEmojis = []string{"🌍", "🌙", "🪐", "☀️", "🌕", "🌑", "🔴", "🟠", "🟡"}
var flowerEmojis = []string{"🌸", "🌺", "🌻", "🌼", "🌷", "🌹", "💐", "🪻", "🪷"}
var fishEmojis = []string{"🐠", "🐟", "🐡", "🦈", "🐳", "🐬", "🦑", "🦀", "🦞", "🐙"}
var bugEmojis = []string{"🦋", "🐝", "🐞", "🪲", "🦗"}

// effectivePalette filters the theme colors down to the profile's allowed
// palette. An empty intersection falls back to the unfiltered list so a layer
// never ends up with zero usable colors.
func effectivePalette(colors []string, profile *ageprofile.Profile) []string {
	if profile == nil {
		return colors
	}
	allowed := make(map[string]bool, len(profile.ColorPalette))
	for _, c := range profile.ColorPalette {
		allowed[strings.ToUpper(c)] = true
	}
	filtered := make([]string, 0, len(colors))
	for _, c := range colors {
		if allowed[strings.ToUpper(c)] {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == 0 {
		return colors
	}
	return filtered
}

func sizeScale(profile *ageprofile.Profile) float64 {
	if profile == nil {
		return 1
	}
	return profile.SizeMultiplier()
}

func speedDivisor(profile *ageprofile.Profile) float64 {
	if profile == nil || profile.AnimationSpeed == 0 {
		return 1
	}
	return profile.AnimationSpeed
}

func tooYoung(profile *ageprofile.Profile) bool {
	return profile != nil && profile.Youngest()
}

func rotationAllowed(profile *ageprofile.Profile) bool {
	return profile == nil || profile.AllowRotation
}

// driftFor maps the movement pattern to the horizontal-drift hint the client
// applies: linear suppresses drift entirely, curved allows a small wander.
func driftFor(profile *ageprofile.Profile) string {
	if profile == nil {
		return "full"
	}
	switch profile.MovementPattern {
	case "linear":
		return "none"
	case "curved":
		return "small"
	}
	return "full"
}

// Bubbles rise from the bottom edge across the full height. Available to
// every age bucket.
func Bubbles(colors []string, count, seed int, profile *ageprofile.Profile) []Item {
	palette := effectivePalette(colors, profile)
	scale := sizeScale(profile)
	speed := speedDivisor(profile)

	items := make([]Item, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, Item{
			Index:    i,
			Kind:     KindBubble,
			X:        seeded.Value(seed, i*3) * 100,
			Size:     (30 + seeded.Value(seed, i*3+1)*80) * scale,
			Color:    palette[seeded.Index(seed, i*3+2, len(palette))],
			Duration: (4 + seeded.Value(seed, i*3+3)*4) / speed,
			Delay:    seeded.Value(seed, i*3+4) * 3,
			Drift:    driftFor(profile),
		})
	}
	return items
}

// Shapes places pulsing geometric shapes. The youngest bucket only sees the
// first three shape types (circle, triangle, square).
func Shapes(colors []string, count, seed int, profile *ageprofile.Profile) []Item {
	shapeList := themes.GeometricShapes
	if tooYoung(profile) {
		shapeList = shapeList[:3]
	}
	palette := effectivePalette(colors, profile)
	scale := sizeScale(profile)
	speed := speedDivisor(profile)
	rotate := rotationAllowed(profile)

	items := make([]Item, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, Item{
			Index:    i,
			Kind:     KindShape,
			Shape:    shapeList[seeded.Index(seed, i*5, len(shapeList))].Type,
			X:        seeded.Value(seed, i*5+1)*80 + 10,
			Y:        seeded.Value(seed, i*5+2)*80 + 10,
			Size:     (40 + seeded.Value(seed, i*5+3)*60) * scale,
			Color:    palette[seeded.Index(seed, i*5+4, len(palette))],
			Duration: (5 + seeded.Value(seed, i*5+5)*5) / speed,
			Delay:    seeded.Value(seed, i*5+6) * 4,
			Rotate:   rotate,
		})
	}
	return items
}

// Sparkles twinkle in place. Empty for the youngest bucket.
func Sparkles(colors []string, count, seed int, profile *ageprofile.Profile) []Item {
	if tooYoung(profile) {
		return nil
	}
	palette := effectivePalette(colors, profile)
	scale := sizeScale(profile)
	speed := speedDivisor(profile)

	items := make([]Item, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, Item{
			Index:    i,
			Kind:     KindSparkle,
			X:        seeded.Value(seed, i*4) * 100,
			Y:        seeded.Value(seed, i*4+1) * 100,
			Size:     (10 + seeded.Value(seed, i*4+2)*20) * scale,
			Color:    palette[seeded.Index(seed, i*4+3, len(palette))],
			Duration: (1 + seeded.Value(seed, i*4+4)*2) / speed,
			Delay:    seeded.Value(seed, i*4+5) * 3,
		})
	}
	return items
}

// Clouds drift horizontally across the top band. Empty for the youngest
// bucket.
func Clouds(count, seed int, profile *ageprofile.Profile) []Item {
	if tooYoung(profile) {
		return nil
	}
	scale := sizeScale(profile)
	speed := speedDivisor(profile)

	items := make([]Item, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, Item{
			Index:    i,
			Kind:     KindCloud,
			Emoji:    "☁️",
			Y:        seeded.Value(seed, i*4)*60 + 10,
			Size:     (80 + seeded.Value(seed, i*4+1)*80) * scale,
			Duration: (20 + seeded.Value(seed, i*4+2)*20) / speed,
			Delay:    seeded.Value(seed, i*4+3) * 10,
			Opacity:  0.6 + seeded.Value(seed, i*4+4)*0.4,
		})
	}
	return items
}

// Stars scatters a pulsing star field. Empty for the youngest bucket.
func Stars(count, seed int, profile *ageprofile.Profile) []Item {
	if tooYoung(profile) {
		return nil
	}
	scale := sizeScale(profile)
	speed := speedDivisor(profile)
	rotate := rotationAllowed(profile)

	items := make([]Item, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, Item{
			Index:    i,
			Kind:     KindStar,
			Emoji:    starEmojis[seeded.Index(seed, i*5, len(starEmojis))],
			X:        seeded.Value(seed, i*5+1) * 100,
			Y:        seeded.Value(seed, i*5+2) * 100,
			Size:     (15 + seeded.Value(seed, i*5+3)*25) * scale,
			Duration: (2 + seeded.Value(seed, i*5+4)*3) / speed,
			Delay:    seeded.Value(seed, i*5+5) * 2,
			Rotate:   rotate,
		})
	}
	return items
}

// Planets places slowly rotating celestial bodies. Empty for the youngest
// bucket.
func Planets(count, seed int, profile *ageprofile.Profile) []Item {
	if tooYoung(profile) {
		return nil
	}
	scale := sizeScale(profile)
	speed := speedDivisor(profile)
	rotate := rotationAllowed(profile)

	items := make([]Item, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, Item{
			Index:    i,
			Kind:     KindPlanet,
			Emoji:    planetEmojis[seeded.Index(seed, i*5, len(planetEmojis))],
			X:        seeded.Value(seed, i*5+1)*80 + 10,
			Y:        seeded.Value(seed, i*5+2)*80 + 10,
			Size:     (40 + seeded.Value(seed, i*5+3)*60) * scale,
			Duration: (10 + seeded.Value(seed, i*5+4)*10) / speed,
			Delay:    seeded.Value(seed, i*5+5) * 3,
			Rotate:   rotate,
		})
	}
	return items
}

// Flowers bloom along the lower half. Empty for the youngest bucket.
func Flowers(count, seed int, profile *ageprofile.Profile) []Item {
	if tooYoung(profile) {
		return nil
	}
	scale := sizeScale(profile)
	speed := speedDivisor(profile)

	items := make([]Item, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, Item{
			Index:    i,
			Kind:     KindFlower,
			Emoji:    flowerEmojis[seeded.Index(seed, i*5, len(flowerEmojis))],
			X:        seeded.Value(seed, i*5+1)*90 + 5,
			Y:        50 + seeded.Value(seed, i*5+2)*40,
			Size:     (30 + seeded.Value(seed, i*5+3)*40) * scale,
			Duration: (3 + seeded.Value(seed, i*5+4)*2 + 4) / speed,
			Delay:    seeded.Value(seed, i*5+5) * 2,
		})
	}
	return items
}

// Fish swim horizontally across the middle band; Direction is +1 for
// left-to-right and -1 for the reverse. Empty for the youngest bucket.
func Fish(count, seed int, profile *ageprofile.Profile) []Item {
	if tooYoung(profile) {
		return nil
	}
	scale := sizeScale(profile)
	speed := speedDivisor(profile)

	items := make([]Item, 0, count)
	for i := 0; i < count; i++ {
		direction := -1
		if seeded.Value(seed, i*5+5) > 0.5 {
			direction = 1
		}
		items = append(items, Item{
			Index:     i,
			Kind:      KindFish,
			Emoji:     fishEmojis[seeded.Index(seed, i*5, len(fishEmojis))],
			Y:         seeded.Value(seed, i*5+1)*70 + 15,
			Size:      (30 + seeded.Value(seed, i*5+2)*40) * scale,
			Duration:  (6 + seeded.Value(seed, i*5+3)*6) / speed,
			Delay:     seeded.Value(seed, i*5+4) * 4,
			Direction: direction,
			Drift:     driftFor(profile),
		})
	}
	return items
}

// Butterflies wander on looping flight paths. Empty for the youngest bucket.
func Butterflies(count, seed int, profile *ageprofile.Profile) []Item {
	if tooYoung(profile) {
		return nil
	}
	scale := sizeScale(profile)
	speed := speedDivisor(profile)

	items := make([]Item, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, Item{
			Index:    i,
			Kind:     KindButterfly,
			Emoji:    bugEmojis[seeded.Index(seed, i*6, len(bugEmojis))],
			X:        seeded.Value(seed, i*6+1)*80 + 10,
			Y:        seeded.Value(seed, i*6+2)*80 + 10,
			Size:     (30 + seeded.Value(seed, i*6+3)*30) * scale,
			Duration: (8 + seeded.Value(seed, i*6+4)*8) / speed,
			Delay:    seeded.Value(seed, i*6+5) * 4,
			Drift:    driftFor(profile),
		})
	}
	return items
}

// Animals bounce in place, each carrying its catalog color. Empty for the
// youngest bucket.
func Animals(count, seed int, profile *ageprofile.Profile) []Item {
	if tooYoung(profile) {
		return nil
	}
	scale := sizeScale(profile)
	speed := speedDivisor(profile)

	items := make([]Item, 0, count)
	for i := 0; i < count; i++ {
		animal := themes.AnimalShapes[seeded.Index(seed, i*6, len(themes.AnimalShapes))]
		items = append(items, Item{
			Index:        i,
			Kind:         KindAnimal,
			Emoji:        animal.Emoji,
			Color:        animal.Color,
			X:            seeded.Value(seed, i*6+1)*80 + 10,
			Y:            seeded.Value(seed, i*6+2)*60 + 20,
			Size:         (40 + seeded.Value(seed, i*6+3)*40) * scale,
			Duration:     (4 + seeded.Value(seed, i*6+4)*4) / speed,
			Delay:        seeded.Value(seed, i*6+5) * 5,
			BounceHeight: 20 + seeded.Value(seed, i*6+6)*30,
		})
	}
	return items
}

// ColorWave sweeps horizontal bands of the first five palette colors across
// the bottom of the viewport. Empty for the youngest bucket.
func ColorWave(colors []string, profile *ageprofile.Profile) []Item {
	if tooYoung(profile) {
		return nil
	}
	palette := effectivePalette(colors, profile)
	if len(palette) > 5 {
		palette = palette[:5]
	}
	speed := speedDivisor(profile)

	items := make([]Item, 0, len(palette))
	for i, color := range palette {
		items = append(items, Item{
			Index:    i,
			Kind:     KindWave,
			Color:    color,
			Duration: (4 + float64(i)) / speed,
			Delay:    float64(i) * 0.3,
			YOffset:  float64(i) * 15,
		})
	}
	return items
}
