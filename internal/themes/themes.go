// Package themes holds the fixed content catalog: daily themes with their
// high-contrast palettes, animation and sound candidates, and the shared
// shape/emoji/color-name lookup tables.
package themes

import "strings"

type Theme struct {
	ID         string
	Name       string
	Background string
	Colors     []string
	Animations []string
	Sounds     []string
	Emoji      string
}

// Catalog is the fixed rotation of daily themes. Order matters: the theme of
// the day is picked by day-count modulo len(Catalog).
var Catalog = []Theme{
	{
		ID:         "ocean",
		Name:       "Ocean Day",
		Background: "linear-gradient(180deg, #001133 0%, #003366 50%, #0066AA 100%)",
		Colors:     []string{"#0066FF", "#00CCFF", "#FFFFFF", "#00FF88", "#004488"},
		Animations: []string{"bubbles", "fish", "waves"},
		Sounds:     []string{"water", "bubbles", "whale"},
		Emoji:      "🐠",
	},
	{
		ID:         "space",
		Name:       "Space Day",
		Background: "linear-gradient(180deg, #000011 0%, #110022 50%, #000033 100%)",
		Colors:     []string{"#FFFFFF", "#FFFF00", "#FF00FF", "#00FFFF", "#FF8800"},
		Animations: []string{"stars", "planets", "rockets"},
		Sounds:     []string{"twinkle", "whoosh", "chime"},
		Emoji:      "🚀",
	},
	{
		ID:         "garden",
		Name:       "Garden Day",
		Background: "linear-gradient(180deg, #88DDFF 0%, #AAFFAA 50%, #88DD88 100%)",
		Colors:     []string{"#FF4488", "#44FF44", "#FFFF00", "#FF8844", "#FFFFFF"},
		Animations: []string{"flowers", "butterflies", "bees"},
		Sounds:     []string{"birds", "wind", "chime"},
		Emoji:      "🌸",
	},
	{
		ID:         "rainbow",
		Name:       "Rainbow Day",
		Background: "linear-gradient(180deg, #FFAAAA 0%, #FFFFAA 25%, #AAFFAA 50%, #AAFFFF 75%, #FFAAFF 100%)",
		Colors:     []string{"#FF0000", "#FF8800", "#FFFF00", "#00FF00", "#0088FF", "#8800FF"},
		Animations: []string{"colorWaves", "prisms", "sparkles"},
		Sounds:     []string{"chime", "bells", "harp"},
		Emoji:      "🌈",
	},
	{
		ID:         "animals",
		Name:       "Animal Day",
		Background: "linear-gradient(180deg, #FFEECC 0%, #DDFFDD 50%, #CCFFEE 100%)",
		Colors:     []string{"#FF8844", "#FFDD44", "#88FF44", "#44DDFF", "#FF88CC"},
		Animations: []string{"animals", "paws", "hearts"},
		Sounds:     []string{"meow", "woof", "moo"},
		Emoji:      "🐱",
	},
	{
		ID:         "shapes",
		Name:       "Shapes Day",
		Background: "linear-gradient(180deg, #FFFFFF 0%, #EEEEFF 50%, #DDEEFF 100%)",
		Colors:     []string{"#FF4444", "#4444FF", "#FFFF00", "#44FF44", "#FF44FF"},
		Animations: []string{"shapes", "patterns", "spirals"},
		Sounds:     []string{"pop", "ding", "boing"},
		Emoji:      "⭐",
	},
	{
		ID:         "clouds",
		Name:       "Cloud Day",
		Background: "linear-gradient(180deg, #AADDFF 0%, #DDEEFF 50%, #FFFFFF 100%)",
		Colors:     []string{"#FFFFFF", "#AADDFF", "#FFCCEE", "#DDFFDD", "#FFEEDD"},
		Animations: []string{"clouds", "raindrops", "rainbows"},
		Sounds:     []string{"rain", "thunder", "wind"},
		Emoji:      "☁️",
	},
}

// Contrast is the minimal high-contrast theme shown to the youngest age band
// regardless of which theme is nominally selected.
var Contrast = Theme{
	ID:         "contrast",
	Name:       "High Contrast",
	Background: "#FFFFFF",
	Colors:     []string{"#000000", "#FFFFFF", "#FF0000", "#FFFF00", "#0000FF"},
	Animations: []string{"shapes"},
	Sounds:     []string{"pop", "ding"},
	Emoji:      "⬛",
}

// ByID returns the theme with the given identifier, or nil if unknown.
// The contrast theme is addressable by id like any other.
func ByID(id string) *Theme {
	if id == Contrast.ID {
		t := Contrast
		return &t
	}
	for i := range Catalog {
		if Catalog[i].ID == id {
			t := Catalog[i]
			return &t
		}
	}
	return nil
}

type AnimalShape struct {
	Name  string
	Emoji string
	Color string
}

var AnimalShapes = []AnimalShape{
	{Name: "cat", Emoji: "🐱", Color: "#FF8844"},
	{Name: "dog", Emoji: "🐶", Color: "#DDAA66"},
	{Name: "bunny", Emoji: "🐰", Color: "#FFAACC"},
	{Name: "bear", Emoji: "🐻", Color: "#AA7744"},
	{Name: "panda", Emoji: "🐼", Color: "#333333"},
	{Name: "chick", Emoji: "🐤", Color: "#FFDD00"},
	{Name: "fish", Emoji: "🐠", Color: "#FF6644"},
	{Name: "butterfly", Emoji: "🦋", Color: "#AA44FF"},
	{Name: "bee", Emoji: "🐝", Color: "#FFCC00"},
	{Name: "ladybug", Emoji: "🐞", Color: "#FF2200"},
}

type GeometricShape struct {
	Type  string
	Sides int
	Star  bool
}

var GeometricShapes = []GeometricShape{
	{Type: "circle", Sides: 0},
	{Type: "triangle", Sides: 3},
	{Type: "square", Sides: 4},
	{Type: "pentagon", Sides: 5},
	{Type: "hexagon", Sides: 6},
	{Type: "star", Sides: 5, Star: true},
}

// themeObjectTypes maps a theme id to the object category used by the
// scoreboard and session records.
var themeObjectTypes = map[string]string{
	"ocean":   "bubble",
	"space":   "star",
	"garden":  "flower",
	"rainbow": "sparkle",
	"animals": "animal",
	"shapes":  "shape",
	"clouds":  "cloud",
}

// ObjectType returns the scoreboard category for a theme, "unknown" for
// anything unrecognized (including contrast).
func ObjectType(themeID string) string {
	if t, ok := themeObjectTypes[themeID]; ok {
		return t
	}
	return "unknown"
}

var typeEmojis = map[string]string{
	"bubble":    "🫧",
	"star":      "⭐",
	"flower":    "🌸",
	"sparkle":   "✨",
	"animal":    "🐱",
	"shape":     "🔷",
	"cloud":     "☁️",
	"fish":      "🐟",
	"wave":      "🌊",
	"planet":    "🪐",
	"butterfly": "🦋",
	"unknown":   "👆",
}

// TypeEmoji returns the display emoji for an object category.
func TypeEmoji(objectType string) string {
	if e, ok := typeEmojis[objectType]; ok {
		return e
	}
	return typeEmojis["unknown"]
}

var colorNames = map[string]string{
	"#FF0000": "Red",
	"#FF4444": "Red",
	"#FF8800": "Orange",
	"#FF8844": "Orange",
	"#FFFF00": "Yellow",
	"#FFDD44": "Yellow",
	"#FFDD00": "Yellow",
	"#00FF00": "Green",
	"#44FF44": "Green",
	"#88FF44": "Green",
	"#0088FF": "Blue",
	"#0066FF": "Blue",
	"#00CCFF": "Cyan",
	"#44DDFF": "Cyan",
	"#00FFFF": "Cyan",
	"#8800FF": "Purple",
	"#AA44FF": "Purple",
	"#FF00FF": "Magenta",
	"#FF44FF": "Magenta",
	"#FF4488": "Pink",
	"#FF88CC": "Pink",
	"#FFAACC": "Pink",
	"#FFFFFF": "White",
	"#AADDFF": "Light Blue",
	"#FFCCEE": "Light Pink",
	"#DDFFDD": "Light Green",
	"#FFEEDD": "Cream",
	"#004488": "Dark Blue",
	"#00FF88": "Mint",
	"#333333": "Dark Gray",
	"#AA7744": "Brown",
	"#DDAA66": "Tan",
}

// ColorName maps a hex value to a friendly display name, "Colorful" when the
// exact value is not in the table.
func ColorName(hex string) string {
	if name, ok := colorNames[strings.ToUpper(hex)]; ok {
		return name
	}
	return "Colorful"
}

// colorNameHex is the reverse mapping used when persisting session records:
// local and remote stores key color counts by a canonical hex value.
var colorNameHex = map[string]string{
	"Red":         "#FF0000",
	"Orange":      "#FF8800",
	"Yellow":      "#FFDD00",
	"Green":       "#00FF00",
	"Blue":        "#0088FF",
	"Cyan":        "#00CCFF",
	"Purple":      "#8800FF",
	"Magenta":     "#FF00FF",
	"Pink":        "#FF4488",
	"White":       "#FFFFFF",
	"Light Blue":  "#AADDFF",
	"Light Pink":  "#FFCCEE",
	"Light Green": "#DDFFDD",
	"Cream":       "#FFEEDD",
	"Dark Blue":   "#004488",
	"Mint":        "#00FF88",
	"Dark Gray":   "#333333",
	"Brown":       "#AA7744",
	"Tan":         "#DDAA66",
	"Colorful":    "#FFFFFF",
}

// ColorNameToHex returns the canonical hex for a color name, white for
// anything unrecognized.
func ColorNameToHex(name string) string {
	if hex, ok := colorNameHex[name]; ok {
		return hex
	}
	return "#FFFFFF"
}
