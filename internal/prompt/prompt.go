// Package prompt composes the generation prompts sent to the language
// model. There are two variants: a music prompt that carries the complete
// lyric transcript, and a general prompt that carries a sampled transcript
// to bound prompt size on long videos.
package prompt

import (
	"fmt"
	"strings"

	"github.com/NotMedic/PopUpVideo/pkg/models"
)

const (
	// descriptionLimit caps how much of the video description is included.
	descriptionLimit = 500

	// Transcript sampling bounds for general-content prompts.
	sampleHead  = 10
	sampleTail  = 10
	sampleEvery = 3
	sampleMax   = 50

	// Default timing window used when the video duration is unknown,
	// covering a typical 3-5 minute video.
	defaultWindowStart = 10
	defaultWindowEnd   = 280
)

// MusicInput carries everything available for a music-video prompt.
type MusicInput struct {
	Artist      string
	Song        string
	FullTitle   string
	VideoID     string
	Duration    int // seconds, 0 when unknown
	Description string
	Lyrics      []models.TranscriptEntry
}

// GeneralInput carries everything available for a general-content prompt.
type GeneralInput struct {
	Title       string
	VideoID     string
	Duration    int // seconds, 0 when unknown
	Description string
	Transcript  []models.TranscriptEntry
}

// Music builds the prompt for a music video. Lyrics are included in full,
// each line with its start offset, so facts can reference specific lyrics.
func Music(in MusicInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate interesting, surprising Pop Up Video style facts for the music video %q by %s.\n\n", in.Song, in.Artist)
	fmt.Fprintf(&b, "Full title: %s\n", in.FullTitle)
	fmt.Fprintf(&b, "YouTube Video ID: %s\n", in.VideoID)
	b.WriteString("(You may have this video indexed - use any knowledge about this specific video to enhance accuracy)\n")

	if in.Duration > 0 {
		minFacts, maxFacts := musicFactBounds(in.Duration)
		fmt.Fprintf(&b, "\nThe video is %d seconds long. Generate %d-%d facts, one roughly every 10-15 seconds, with times between 10 and %d seconds.\n",
			in.Duration, minFacts, maxFacts, in.Duration-10)
	} else {
		fmt.Fprintf(&b, "\nGenerate 15-20 facts with times distributed evenly from %d to %d seconds throughout a typical 3-5 minute music video.\n",
			defaultWindowStart, defaultWindowEnd)
	}

	if d := excerpt(in.Description); d != "" {
		fmt.Fprintf(&b, "\nVideo description:\n%s\n", d)
	}

	if len(in.Lyrics) > 0 {
		b.WriteString("\nComplete timed lyrics (start offset in seconds):\n")
		writeEntries(&b, in.Lyrics)
		b.WriteString("\nTie facts to specific lyrics using their timestamps so each fact appears as the line is sung.\n")
	}

	b.WriteString(`
Facts should be:
- Short (1-2 sentences, under 250 characters)
- Entertaining and surprising, in the style of VH1's Pop Up Video (quirky, fun, unexpected trivia)
- Factually accurate about the song, music video, artist, or the era - never invent facts, cite real sources of trivia
- Relevant to the scene or lyric at the time they pop up
- Not all wordplay commentary - mix in production trivia, chart history, and behind-the-scenes details
`)
	b.WriteString(jsonInstruction)

	return b.String()
}

// General builds the prompt for non-music content. Long transcripts are
// sampled (start, end, and every third line in between) so prompt size stays
// bounded while keeping coverage of the whole video.
func General(in GeneralInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate interesting, surprising Pop Up Video style facts for the YouTube video %q.\n\n", in.Title)
	fmt.Fprintf(&b, "YouTube Video ID: %s\n", in.VideoID)
	b.WriteString("(You may have this video indexed - use any knowledge about this specific video to enhance accuracy)\n")

	if in.Duration > 0 {
		count := clamp(in.Duration/15, 10, 25)
		fmt.Fprintf(&b, "\nThe video is %d seconds long. Generate %d facts with times between 10 and %d seconds.\n",
			in.Duration, count, in.Duration-10)
	} else {
		fmt.Fprintf(&b, "\nGenerate 10-20 facts with times distributed evenly from %d to %d seconds.\n",
			defaultWindowStart, defaultWindowEnd)
	}

	if d := excerpt(in.Description); d != "" {
		fmt.Fprintf(&b, "\nVideo description:\n%s\n", d)
	}

	if len(in.Transcript) > 0 {
		b.WriteString("\nTranscript excerpts (start offset in seconds):\n")
		writeEntries(&b, SampleTranscript(in.Transcript))
	}

	b.WriteString(`
Facts should be:
- Short (1-2 sentences, under 250 characters)
- Entertaining and surprising, in the style of VH1's Pop Up Video (quirky, fun, unexpected trivia)
- Factually accurate about the topic, the people involved, or the era - never invent facts
- Relevant to what is happening in the video at the time they pop up
`)
	b.WriteString(jsonInstruction)

	return b.String()
}

const jsonInstruction = `
Return ONLY valid JSON matching this structure, with no surrounding prose:
{
  "facts": [
    {"time": 10, "text": "First fact..."},
    {"time": 25, "text": "Second fact..."}
  ]
}`

// SampleTranscript keeps the first and last lines of a long transcript plus
// every third line in between, capped at 50 lines total.
func SampleTranscript(entries []models.TranscriptEntry) []models.TranscriptEntry {
	if len(entries) <= sampleHead+sampleTail {
		return entries
	}

	out := make([]models.TranscriptEntry, 0, sampleMax)
	out = append(out, entries[:sampleHead]...)

	middleBudget := sampleMax - sampleHead - sampleTail
	for i := sampleHead; i < len(entries)-sampleTail && middleBudget > 0; i += sampleEvery {
		out = append(out, entries[i])
		middleBudget--
	}

	out = append(out, entries[len(entries)-sampleTail:]...)
	return out
}

func musicFactBounds(duration int) (int, int) {
	window := duration - 20
	if window < 0 {
		window = 0
	}
	minFacts := clamp(window/15, 15, 25)
	maxFacts := clamp(window/10, 15, 25)
	return minFacts, maxFacts
}

func writeEntries(b *strings.Builder, entries []models.TranscriptEntry) {
	for _, e := range entries {
		fmt.Fprintf(b, "[%ds] %s\n", e.Start, e.Text)
	}
}

func excerpt(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > descriptionLimit {
		return s[:descriptionLimit]
	}
	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
