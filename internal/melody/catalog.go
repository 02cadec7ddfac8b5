// Package melody plays nursery rhyme melodies as scheduled synthesized notes.
package melody

// Pitch frequencies in Hz for the three octaves the rhymes use. A rest is 0.
var pitches = map[string]float64{
	"C3": 130.81, "D3": 146.83, "E3": 164.81, "F3": 174.61,
	"G3": 196.00, "A3": 220.00, "B3": 246.94,
	"C4": 261.63, "D4": 293.66, "E4": 329.63, "F4": 349.23,
	"G4": 392.00, "A4": 440.00, "B4": 493.88,
	"C5": 523.25, "D5": 587.33, "E5": 659.25, "F5": 698.46,
	"G5": 783.99, "A5": 880.00, "B5": 987.77,
	"REST": 0,
}

// Beat lengths in quarter notes.
const (
	whole         = 4.0
	half          = 2.0
	quarter       = 1.0
	eighth        = 0.5
	dottedHalf    = 3.0
	dottedQuarter = 1.5
)

// Note is one melody step: a pitch name and its length in beats.
type Note struct {
	Pitch string
	Beats float64
}

// Frequency returns the note's pitch in Hz, 0 for a rest or unknown pitch.
func (n Note) Frequency() float64 {
	return pitches[n.Pitch]
}

// Rhyme is a named melody with a tempo in beats per minute.
type Rhyme struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
	Tempo int    `json:"tempo"`
	Notes []Note `json:"-"`
}

func nt(pitch string, beats float64) Note {
	return Note{Pitch: pitch, Beats: beats}
}

// Rhymes is the playable catalog, in carousel order.
var Rhymes = []Rhyme{
	{
		ID: "twinkle", Name: "Twinkle Twinkle Little Star", Emoji: "⭐", Color: "#FFD700", Tempo: 120,
		Notes: []Note{
			nt("C4", quarter), nt("C4", quarter), nt("G4", quarter), nt("G4", quarter),
			nt("A4", quarter), nt("A4", quarter), nt("G4", half),
			nt("F4", quarter), nt("F4", quarter), nt("E4", quarter), nt("E4", quarter),
			nt("D4", quarter), nt("D4", quarter), nt("C4", half),
			nt("G4", quarter), nt("G4", quarter), nt("F4", quarter), nt("F4", quarter),
			nt("E4", quarter), nt("E4", quarter), nt("D4", half),
			nt("G4", quarter), nt("G4", quarter), nt("F4", quarter), nt("F4", quarter),
			nt("E4", quarter), nt("E4", quarter), nt("D4", half),
			nt("C4", quarter), nt("C4", quarter), nt("G4", quarter), nt("G4", quarter),
			nt("A4", quarter), nt("A4", quarter), nt("G4", half),
			nt("F4", quarter), nt("F4", quarter), nt("E4", quarter), nt("E4", quarter),
			nt("D4", quarter), nt("D4", quarter), nt("C4", half),
		},
	},
	{
		ID: "mary", Name: "Mary Had a Little Lamb", Emoji: "🐑", Color: "#FFB6C1", Tempo: 120,
		Notes: []Note{
			nt("E4", quarter), nt("D4", quarter), nt("C4", quarter), nt("D4", quarter),
			nt("E4", quarter), nt("E4", quarter), nt("E4", half),
			nt("D4", quarter), nt("D4", quarter), nt("D4", half),
			nt("E4", quarter), nt("G4", quarter), nt("G4", half),
			nt("E4", quarter), nt("D4", quarter), nt("C4", quarter), nt("D4", quarter),
			nt("E4", quarter), nt("E4", quarter), nt("E4", quarter), nt("E4", quarter),
			nt("D4", quarter), nt("D4", quarter), nt("E4", quarter), nt("D4", quarter),
			nt("C4", whole),
		},
	},
	{
		ID: "row", Name: "Row Row Row Your Boat", Emoji: "🚣", Color: "#87CEEB", Tempo: 100,
		Notes: []Note{
			nt("C4", dottedQuarter), nt("C4", eighth), nt("C4", quarter), nt("D4", eighth),
			nt("E4", dottedQuarter),
			nt("E4", eighth), nt("D4", eighth), nt("E4", eighth), nt("F4", eighth),
			nt("G4", dottedHalf),
			nt("C5", eighth), nt("C5", eighth), nt("C5", eighth),
			nt("G4", eighth), nt("G4", eighth), nt("G4", eighth),
			nt("E4", eighth), nt("E4", eighth), nt("E4", eighth),
			nt("C4", eighth), nt("C4", eighth), nt("C4", eighth),
			nt("G4", eighth), nt("F4", eighth), nt("E4", eighth), nt("D4", eighth),
			nt("C4", dottedHalf),
		},
	},
	{
		ID: "baabaa", Name: "Baa Baa Black Sheep", Emoji: "🐑", Color: "#2F4F4F", Tempo: 110,
		Notes: []Note{
			nt("C4", quarter), nt("C4", quarter), nt("G4", quarter), nt("G4", quarter),
			nt("A4", quarter), nt("A4", quarter), nt("G4", half),
			nt("F4", quarter), nt("F4", quarter), nt("E4", quarter), nt("E4", quarter),
			nt("D4", quarter), nt("D4", quarter), nt("C4", half),
			nt("G4", quarter), nt("G4", eighth), nt("G4", eighth), nt("F4", quarter), nt("F4", quarter),
			nt("E4", quarter), nt("E4", eighth), nt("E4", eighth), nt("D4", half),
			nt("G4", quarter), nt("G4", eighth), nt("G4", eighth), nt("F4", quarter), nt("F4", quarter),
			nt("E4", quarter), nt("E4", quarter), nt("D4", quarter), nt("D4", quarter),
			nt("C4", half),
		},
	},
	{
		ID: "spider", Name: "Itsy Bitsy Spider", Emoji: "🕷️", Color: "#8B4513", Tempo: 110,
		Notes: []Note{
			nt("G4", eighth), nt("C5", quarter), nt("C5", eighth), nt("C5", quarter),
			nt("D5", eighth), nt("E5", dottedQuarter),
			nt("E5", eighth), nt("D5", quarter), nt("C5", eighth), nt("D5", quarter),
			nt("C5", eighth), nt("C5", dottedQuarter),
			nt("G4", eighth), nt("C5", quarter), nt("C5", eighth), nt("C5", quarter),
			nt("D5", eighth), nt("E5", dottedQuarter),
			nt("E5", eighth), nt("D5", quarter), nt("C5", eighth), nt("D5", quarter),
			nt("C5", eighth), nt("C5", dottedQuarter),
			nt("E5", eighth), nt("E5", quarter), nt("E5", eighth), nt("F5", quarter),
			nt("G5", eighth), nt("G5", dottedQuarter),
			nt("F5", eighth), nt("E5", quarter), nt("D5", eighth), nt("E5", quarter),
			nt("F5", eighth), nt("E5", dottedQuarter),
			nt("G4", eighth), nt("C5", quarter), nt("C5", eighth), nt("C5", quarter),
			nt("D5", eighth), nt("E5", dottedQuarter),
			nt("E5", eighth), nt("D5", quarter), nt("C5", eighth), nt("D5", quarter),
			nt("C5", eighth), nt("C5", dottedHalf),
		},
	},
}

// ByID looks a rhyme up by its id.
func ByID(id string) (Rhyme, bool) {
	for _, r := range Rhymes {
		if r.ID == id {
			return r, true
		}
	}
	return Rhyme{}, false
}
