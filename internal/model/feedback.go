package model

import "time"

// Feedback entry kinds. Any entry not explicitly typed "word" is treated
// as paragraph feedback, including entries with no type at all.
const (
	FeedbackKindParagraph = "paragraph"
	FeedbackKindWord      = "word"
)

// Paragraph ratings.
const (
	RatingUp   = "up"
	RatingDown = "down"
)

// FeedbackEntry is one logged rating. Paragraph entries carry the rated
// paragraph plus the full section it came from; word entries flag a single
// word the reviewer wants future generations to avoid. Entries are stored
// verbatim in the feedback log; validation is the caller's problem.
type FeedbackEntry struct {
	Type            string    `json:"type,omitempty"`
	GenerationID    string    `json:"generationId"`
	Section         string    `json:"section"`
	ParaText        string    `json:"paraText,omitempty"`
	FullSectionText string    `json:"fullSectionText,omitempty"`
	Rating          string    `json:"rating,omitempty"`
	Word            string    `json:"word,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

// IsWord reports whether the entry is word-level feedback. Everything else
// falls back to paragraph kind.
func (e *FeedbackEntry) IsWord() bool {
	return e.Type == FeedbackKindWord
}
