package prompt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NotMedic/PopUpVideo/pkg/models"
)

func makeTranscript(n int) []models.TranscriptEntry {
	entries := make([]models.TranscriptEntry, n)
	for i := range entries {
		entries[i] = models.TranscriptEntry{
			Start:    i * 5,
			Duration: 4.5,
			Text:     fmt.Sprintf("line %d", i),
		}
	}
	return entries
}

func TestMusicPromptIncludesAllLyrics(t *testing.T) {
	lyrics := makeTranscript(80)

	p := Music(MusicInput{
		Artist:    "Rick Astley",
		Song:      "Never Gonna Give You Up",
		FullTitle: "Rick Astley - Never Gonna Give You Up",
		VideoID:   "dQw4w9WgXcQ",
		Duration:  213,
		Lyrics:    lyrics,
	})

	// Lyrics are never sampled: every line must appear.
	for _, l := range lyrics {
		assert.Contains(t, p, l.Text)
	}
	assert.Contains(t, p, "Rick Astley")
	assert.Contains(t, p, "dQw4w9WgXcQ")
	assert.Contains(t, p, "[0s] line 0")
}

func TestMusicPromptTimingWithDuration(t *testing.T) {
	p := Music(MusicInput{
		Artist:    "Toto",
		Song:      "Africa",
		FullTitle: "Toto - Africa",
		VideoID:   "abc123",
		Duration:  240,
	})

	assert.Contains(t, p, "between 10 and 230 seconds")
	assert.Contains(t, p, "one roughly every 10-15 seconds")
	assert.NotContains(t, p, "280 seconds")
}

func TestMusicPromptDefaultWindow(t *testing.T) {
	p := Music(MusicInput{
		Artist:    "Toto",
		Song:      "Africa",
		FullTitle: "Toto - Africa",
		VideoID:   "abc123",
	})

	assert.Contains(t, p, "15-20 facts")
	assert.Contains(t, p, "from 10 to 280 seconds")
}

func TestMusicFactBounds(t *testing.T) {
	tests := []struct {
		duration int
		wantMin  int
		wantMax  int
	}{
		{duration: 60, wantMin: 15, wantMax: 15},  // short video clamps up
		{duration: 240, wantMin: 15, wantMax: 22}, // 220s window
		{duration: 600, wantMin: 25, wantMax: 25}, // long video clamps down
	}

	for _, tt := range tests {
		gotMin, gotMax := musicFactBounds(tt.duration)
		assert.Equal(t, tt.wantMin, gotMin, "duration %d", tt.duration)
		assert.Equal(t, tt.wantMax, gotMax, "duration %d", tt.duration)
		assert.LessOrEqual(t, gotMin, gotMax)
	}
}

func TestGeneralPromptFactCount(t *testing.T) {
	tests := []struct {
		duration  int
		wantCount string
	}{
		{duration: 60, wantCount: "Generate 10 facts"},   // 4 clamps to 10
		{duration: 300, wantCount: "Generate 20 facts"},  // 300/15
		{duration: 1200, wantCount: "Generate 25 facts"}, // 80 clamps to 25
	}

	for _, tt := range tests {
		p := General(GeneralInput{
			Title:    "Some Documentary",
			VideoID:  "vid",
			Duration: tt.duration,
		})
		assert.Contains(t, p, tt.wantCount, "duration %d", tt.duration)
		assert.Contains(t, p, fmt.Sprintf("between 10 and %d seconds", tt.duration-10))
	}
}

func TestGeneralPromptDefaultWindow(t *testing.T) {
	p := General(GeneralInput{
		Title:   "Some Documentary",
		VideoID: "vid",
	})
	assert.Contains(t, p, "Generate 10-20 facts")
	assert.Contains(t, p, "from 10 to 280 seconds")
}

func TestDescriptionExcerptCapped(t *testing.T) {
	longDesc := strings.Repeat("x", 2000)

	p := General(GeneralInput{
		Title:       "Clip",
		VideoID:     "vid",
		Description: longDesc,
	})

	assert.Contains(t, p, strings.Repeat("x", 500))
	assert.NotContains(t, p, strings.Repeat("x", 501))
}

func TestSampleTranscriptShortPassesThrough(t *testing.T) {
	entries := makeTranscript(15)
	assert.Equal(t, entries, SampleTranscript(entries))
}

func TestSampleTranscriptCoversStartAndEnd(t *testing.T) {
	entries := makeTranscript(200)
	sampled := SampleTranscript(entries)

	require.LessOrEqual(t, len(sampled), 50)

	// First 10 and last 10 are always preserved.
	assert.Equal(t, entries[:10], sampled[:10])
	assert.Equal(t, entries[190:], sampled[len(sampled)-10:])
}

func TestSampleTranscriptEveryThird(t *testing.T) {
	entries := makeTranscript(40)
	sampled := SampleTranscript(entries)

	// 10 head + ceil(20/3)=7 middle + 10 tail
	assert.Len(t, sampled, 27)
	assert.Equal(t, entries[10], sampled[10])
	assert.Equal(t, entries[13], sampled[11])
}

func TestBothPromptsMandateJSONOutput(t *testing.T) {
	music := Music(MusicInput{Artist: "A", Song: "B", FullTitle: "A - B", VideoID: "v"})
	general := General(GeneralInput{Title: "T", VideoID: "v"})

	for _, p := range []string{music, general} {
		assert.Contains(t, p, "Return ONLY valid JSON")
		assert.Contains(t, p, `"facts"`)
		assert.Contains(t, p, "under 250 characters")
	}
}
