package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NotMedic/PopUpVideo/pkg/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  bool
	}{
		{
			name:  "official video marker",
			title: "Rick Astley - Never Gonna Give You Up (Official Video)",
			want:  true,
		},
		{
			name:  "official audio marker",
			title: "Daft Punk - Get Lucky Official Audio",
			want:  true,
		},
		{
			name:  "lyric video in brackets",
			title: "Adele - Hello [Lyric Video]",
			want:  true,
		},
		{
			name:  "artist dash song format",
			title: "Toto - Africa",
			want:  true,
		},
		{
			name:  "music context word",
			title: "Wonderwall acoustic cover",
			want:  true,
		},
		{
			name:  "tutorial is not music",
			title: "Guitar Tutorial: how to play Wonderwall",
			want:  false,
		},
		{
			name:  "review is not music",
			title: "iPhone 17 Review",
			want:  false,
		},
		{
			name:  "episode marker is not music",
			title: "Cooking Show S2E4",
			want:  false,
		},
		{
			name:  "trailer is not music",
			title: "Dune Part Two Trailer",
			want:  false,
		},
		{
			name:  "podcast is not music",
			title: "The Daily Podcast - Morning News",
			want:  false,
		},
		{
			name:  "live stream marker is not music",
			title: "Lofi Beats Live Stream",
			want:  false,
		},
		{
			name:  "permissive default",
			title: "Strange sounds at midnight",
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := Classify(tt.title)
			assert.Equal(t, tt.want, got, "reason: %s", reason)
			assert.NotEmpty(t, reason)
		})
	}
}

// Non-music keywords beat music markers regardless of order.
func TestClassifyNonMusicHasPriority(t *testing.T) {
	got, reason := Classify("Artist - Song (Official Video) Tutorial")
	assert.False(t, got)
	assert.Contains(t, reason, "non-music")
}

func TestClassifyDashFormatLengthBounds(t *testing.T) {
	// Single-char first part falls through the dash check but still hits
	// the permissive default.
	got, _ := Classify("A - Something")
	assert.True(t, got)

	got, reason := Classify("The Midnight - Days of Thunder")
	assert.True(t, got)
	assert.Equal(t, "has artist - song format", reason)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  models.ParsedTitle
	}{
		{
			name:  "artist dash song with qualifier",
			title: "Rick Astley - Never Gonna Give You Up (Official Video)",
			want: models.ParsedTitle{
				Artist:      "Rick Astley",
				Song:        "Never Gonna Give You Up",
				FullTitle:   "Rick Astley - Never Gonna Give You Up",
				MusicFormat: true,
			},
		},
		{
			name:  "bracket qualifier",
			title: "a-ha - Take On Me [4K]",
			want: models.ParsedTitle{
				Artist:      "a-ha",
				Song:        "Take On Me",
				FullTitle:   "a-ha - Take On Me",
				MusicFormat: true,
			},
		},
		{
			name:  "pipe separator",
			title: "Peso Pluma | Ella Baila Sola",
			want: models.ParsedTitle{
				Artist:      "Peso Pluma",
				Song:        "Ella Baila Sola",
				FullTitle:   "Peso Pluma | Ella Baila Sola",
				MusicFormat: true,
			},
		},
		{
			name:  "no separator falls back to unknown",
			title: "Some Random Clip",
			want: models.ParsedTitle{
				Artist:      models.UnknownArtist,
				Song:        "Some Random Clip",
				FullTitle:   "Some Random Clip",
				MusicFormat: false,
			},
		},
		{
			name:  "qualifier only title",
			title: "Thriller (Official Video)",
			want: models.ParsedTitle{
				Artist:      models.UnknownArtist,
				Song:        "Thriller",
				FullTitle:   "Thriller",
				MusicFormat: false,
			},
		},
		{
			name:  "dash split only on first occurrence",
			title: "Artist - Song - Remastered",
			want: models.ParsedTitle{
				Artist:      "Artist",
				Song:        "Song - Remastered",
				FullTitle:   "Artist - Song - Remastered",
				MusicFormat: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.title))
		})
	}
}

func TestParsedTitleUnparsed(t *testing.T) {
	parsed := Parse("Some Random Clip")
	assert.True(t, parsed.Unparsed())

	parsed = Parse("Toto - Africa")
	assert.False(t, parsed.Unparsed())
}
