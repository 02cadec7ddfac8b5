package content

import (
	"babysensory/internal/ageprofile"
	"babysensory/internal/themes"
)

// Layer is one generated animation layer of a theme's composition.
type Layer struct {
	Kind  Kind   `json:"kind"`
	Items []Item `json:"items"`
}

type layerSpec struct {
	kind  Kind
	count int // 0 means the kind derives its own count (waves)
}

// themeLayers fixes the layer composition per theme. Counts match the
// long-standing layouts; changing them changes what every seed produces.
var themeLayers = map[string][]layerSpec{
	"ocean":   {{KindBubble, 20}, {KindFish, 12}, {KindWave, 0}},
	"space":   {{KindStar, 40}, {KindPlanet, 6}, {KindSparkle, 25}},
	"garden":  {{KindFlower, 12}, {KindButterfly, 10}, {KindSparkle, 15}},
	"rainbow": {{KindWave, 0}, {KindSparkle, 30}, {KindShape, 10}},
	"animals": {{KindAnimal, 10}, {KindSparkle, 15}, {KindBubble, 10}},
	"shapes":  {{KindShape, 15}, {KindSparkle, 20}, {KindBubble, 8}},
	"clouds":  {{KindCloud, 8}, {KindSparkle, 15}, {KindBubble, 10}},
}

var defaultLayers = []layerSpec{{KindBubble, 15}, {KindShape, 10}}

func generate(spec layerSpec, colors []string, seed int, profile *ageprofile.Profile) []Item {
	switch spec.kind {
	case KindBubble:
		return Bubbles(colors, spec.count, seed, profile)
	case KindShape:
		return Shapes(colors, spec.count, seed, profile)
	case KindSparkle:
		return Sparkles(colors, spec.count, seed, profile)
	case KindCloud:
		return Clouds(spec.count, seed, profile)
	case KindStar:
		return Stars(spec.count, seed, profile)
	case KindPlanet:
		return Planets(spec.count, seed, profile)
	case KindFlower:
		return Flowers(spec.count, seed, profile)
	case KindFish:
		return Fish(spec.count, seed, profile)
	case KindButterfly:
		return Butterflies(spec.count, seed, profile)
	case KindAnimal:
		return Animals(spec.count, seed, profile)
	case KindWave:
		return ColorWave(colors, profile)
	}
	return nil
}

// Layers builds the full layer set for a theme. The youngest age bucket is
// always switched to the minimal high-contrast layout, at most its
// max-simultaneous-objects worth of plain shapes, regardless of the nominal
// theme. Unknown theme ids get the default bubble/shape composition.
func Layers(themeID string, colors []string, seed int, profile *ageprofile.Profile) []Layer {
	if tooYoung(profile) {
		count := profile.MaxSimultaneousObjects
		return []Layer{{
			Kind:  KindShape,
			Items: Shapes(themes.Contrast.Colors, count, seed, profile),
		}}
	}

	specs, ok := themeLayers[themeID]
	if !ok {
		specs = defaultLayers
	}
	layers := make([]Layer, 0, len(specs))
	for _, spec := range specs {
		layers = append(layers, Layer{
			Kind:  spec.kind,
			Items: generate(spec, colors, seed, profile),
		})
	}
	return layers
}
