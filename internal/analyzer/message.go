package analyzer

// Glyph identifies the icon shown next to a summary message. Renderers
// decide how each glyph is drawn.
type Glyph string

const (
	GlyphStar     Glyph = "star"
	GlyphThumbsUp Glyph = "thumbs-up"
	GlyphMuscle   Glyph = "muscle"
	GlyphSeedling Glyph = "seedling"
)

// Message is the headline feedback for an overall score
type Message struct {
	Glyph Glyph  `json:"glyph"`
	Text  string `json:"text"`
}

// SelectMessage maps an overall score to its message. Buckets are checked
// from the top down and the first match wins.
func SelectMessage(overall int) Message {
	switch {
	case overall >= 8:
		return Message{GlyphStar, "Excellent work! Your writing is clear and polished."}
	case overall >= 6:
		return Message{GlyphThumbsUp, "Good foundation! A few tweaks will make it even better."}
	case overall >= 4:
		return Message{GlyphMuscle, "You're on the right track! Check the suggestions below."}
	default:
		return Message{GlyphSeedling, "Let's improve this together! See the suggestions below."}
	}
}
