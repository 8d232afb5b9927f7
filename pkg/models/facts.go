package models

import (
	"fmt"
	"time"
)

// Fact bounds enforced on every generated fact.
const (
	FactMinTime    = 0
	FactMaxTime    = 600
	FactMinTextLen = 10
	FactMaxTextLen = 250

	FactsListMinLen = 1
	FactsListMaxLen = 50
)

// ContentType constants
const (
	ContentTypeMusic   = "music"
	ContentTypeGeneral = "general"
)

// Fact is a single pop-up trivia fact anchored to a playback timestamp
type Fact struct {
	Time int    `json:"time"`
	Text string `json:"text"`
}

// Validate checks the fact against the timing and length bounds
func (f Fact) Validate() error {
	if f.Time < FactMinTime || f.Time > FactMaxTime {
		return fmt.Errorf("fact time %d out of range [%d,%d]", f.Time, FactMinTime, FactMaxTime)
	}
	if n := len(f.Text); n < FactMinTextLen || n > FactMaxTextLen {
		return fmt.Errorf("fact text length %d out of range [%d,%d]", n, FactMinTextLen, FactMaxTextLen)
	}
	return nil
}

// FactsList is the structured payload the model is asked to produce
type FactsList struct {
	Facts []Fact `json:"facts"`
}

// Validate checks the collection size and every contained fact
func (l FactsList) Validate() error {
	if n := len(l.Facts); n < FactsListMinLen || n > FactsListMaxLen {
		return fmt.Errorf("facts count %d out of range [%d,%d]", n, FactsListMinLen, FactsListMaxLen)
	}
	for i, f := range l.Facts {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("fact %d: %w", i, err)
		}
	}
	return nil
}

// VideoMetadata is the per-video record persisted to the facts store.
// Written once on first successful generation and treated as permanently
// cached thereafter; keyed solely by VideoID.
type VideoMetadata struct {
	VideoID     string    `json:"videoId"`
	Title       string    `json:"title"`
	ContentType string    `json:"contentType"`
	Artist      string    `json:"artist"`
	Song        string    `json:"song"`
	GeneratedAt time.Time `json:"generatedAt"`
	Prompt      string    `json:"prompt,omitempty"`
	Facts       []Fact    `json:"facts"`
}

// TranscriptEntry is a timed caption or lyric line supplied by the
// transcript service. Read-only input to prompt construction.
type TranscriptEntry struct {
	Start    int     `json:"start"`
	Duration float64 `json:"duration"`
	Text     string  `json:"text"`
}
