package analytics

import "babysensory/internal/session"

type BadgeID string

const (
	BadgeExplorer    BadgeID = "explorer"
	BadgeRainbow     BadgeID = "rainbow"
	BadgeCentury     BadgeID = "century"
	BadgeStreaker    BadgeID = "streaker"
	BadgeRegular     BadgeID = "regular"
	BadgeFullSession BadgeID = "full_session"
	BadgeMusical     BadgeID = "musical"
)

type Badge struct {
	ID          BadgeID `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

var AllBadges = map[BadgeID]Badge{
	BadgeExplorer:    {ID: BadgeExplorer, Name: "Little Explorer", Description: "Touched 5 different kinds of objects", Icon: "🧭"},
	BadgeRainbow:     {ID: BadgeRainbow, Name: "Rainbow Hunter", Description: "Touched 6 different colors", Icon: "🌈"},
	BadgeCentury:     {ID: BadgeCentury, Name: "Hundred Club", Description: "100 touches in a single session", Icon: "💯"},
	BadgeStreaker:    {ID: BadgeStreaker, Name: "On a Roll", Description: "A streak of 10 touches of the same kind", Icon: "🔥"},
	BadgeRegular:     {ID: BadgeRegular, Name: "Daily Visitor", Description: "Played 7 or more sessions", Icon: "📅"},
	BadgeFullSession: {ID: BadgeFullSession, Name: "Marathon Napper", Description: "Played a full session start to finish", Icon: "🏁"},
	BadgeMusical:     {ID: BadgeMusical, Name: "Music Lover", Description: "Listened to every nursery rhyme", Icon: "🎵"},
}

// EvaluateBadges checks which badges the history has earned.
func EvaluateBadges(records []session.Record, ins Insights) []Badge {
	var earned []Badge

	objectKinds := make(map[string]bool)
	colorKinds := make(map[string]bool)
	rhymes := make(map[string]bool)
	century := false
	for _, rec := range records {
		for emoji := range rec.ObjectCounts {
			objectKinds[emoji] = true
		}
		for hex := range rec.ColorCounts {
			colorKinds[hex] = true
		}
		for _, id := range rec.NurseryRhymesPlayed {
			rhymes[id] = true
		}
		if rec.Touches >= 100 {
			century = true
		}
	}

	if len(objectKinds) >= 5 {
		earned = append(earned, AllBadges[BadgeExplorer])
	}
	if len(colorKinds) >= 6 {
		earned = append(earned, AllBadges[BadgeRainbow])
	}
	if century {
		earned = append(earned, AllBadges[BadgeCentury])
	}
	if ins.BestStreak >= 10 {
		earned = append(earned, AllBadges[BadgeStreaker])
	}
	if ins.Sessions >= 7 {
		earned = append(earned, AllBadges[BadgeRegular])
	}
	if ins.CompletedFull >= 1 {
		earned = append(earned, AllBadges[BadgeFullSession])
	}
	if len(rhymes) >= 5 {
		earned = append(earned, AllBadges[BadgeMusical])
	}

	return earned
}
