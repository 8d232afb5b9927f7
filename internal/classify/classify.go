// Package classify decides whether a YouTube title looks like a music video
// and extracts an artist/song pair from it.
package classify

import (
	"regexp"
	"strings"

	"github.com/NotMedic/PopUpVideo/pkg/models"
)

// Non-music patterns are checked first and short-circuit: a title that
// matches any of these is never treated as a music video, regardless of
// co-occurring music markers.
var nonMusicPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(Tutorial|How\s*to|Guide|Review|Unboxing|Vlog|Interview|Podcast|Gameplay|Walkthrough)\b`),
	regexp.MustCompile(`(?i)\b(Trailer|Teaser|Behind\s*the\s*Scenes|BTS|Making\s*of)\b`),
	regexp.MustCompile(`(?i)\b(Ep\s*\d+|Episode\s*\d+|Season\s*\d+|S\d+E\d+)\b`),
	regexp.MustCompile(`(?i)\b(Part\s*\d+|#\d+)\b`),
	regexp.MustCompile(`(?i)\b(Live\s*Stream|Streaming)\b`),
	regexp.MustCompile(`(?i)\b(News|Documentary|Lecture|Sermon)\b`),
}

var musicPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\(Official\s*(Video|Music\s*Video|Audio|MV)\)`),
	regexp.MustCompile(`(?i)\[Official\s*(Video|Music\s*Video|Audio|MV)\]`),
	regexp.MustCompile(`(?i)\(Lyric\s*Video\)`),
	regexp.MustCompile(`(?i)\[Lyric\s*Video\]`),
	regexp.MustCompile(`(?i) - (Official|Lyric|Music)\s*(Video|Audio)`),
	regexp.MustCompile(`(?i)(Official|Lyric)\s*Video`),
	regexp.MustCompile(`(?i)\bMV\b`),
	regexp.MustCompile(`(?i)\bOfficial\s*Audio\b`),
}

var musicWords = regexp.MustCompile(`(?i)\b(feat\.|ft\.|featuring|remix|cover|acoustic|live|performance)\b`)

// Qualifier suffixes stripped from titles before parsing, in both paren and
// bracket form, e.g. "(Official Video)" or "[4K]".
var (
	parenQualifier   = regexp.MustCompile(`(?i)\s*\((Official|Lyric|Music)?\s*(Video|Audio|MV|HD|4K)\)`)
	bracketQualifier = regexp.MustCompile(`(?i)\s*\[(Official|Lyric|Music)?\s*(Video|Audio|MV|HD|4K)\]`)
)

// Classify reports whether the title looks like a music video, together with
// a human-readable reason. The default is deliberately permissive: absence of
// a non-music signal counts as music.
func Classify(title string) (bool, string) {
	for _, p := range nonMusicPatterns {
		if p.MatchString(title) {
			return false, "contains non-music keyword: " + p.String()
		}
	}

	for _, p := range musicPatterns {
		if p.MatchString(title) {
			return true, "contains music video keywords"
		}
	}

	// "Artist - Song" with plausible part lengths.
	if parts := strings.Split(title, " - "); len(parts) == 2 {
		if n1, n2 := len(parts[0]), len(parts[1]); n1 >= 2 && n1 <= 50 && n2 >= 2 && n2 <= 100 {
			return true, "has artist - song format"
		}
	}

	if musicWords.MatchString(title) {
		return true, "contains music-related terms"
	}

	return true, "no clear non-music indicators"
}

// Parse extracts an artist/song pair from a video title. Qualifier suffixes
// are stripped first, then the title is split on the first " - ", then on
// the first "|". Titles with neither separator come back with
// artist=Unknown and the cleaned title as the song.
func Parse(title string) models.ParsedTitle {
	clean := parenQualifier.ReplaceAllString(title, "")
	clean = bracketQualifier.ReplaceAllString(clean, "")
	clean = strings.TrimSpace(clean)

	for _, sep := range []string{" - ", "|"} {
		if !strings.Contains(clean, sep) {
			continue
		}
		parts := strings.SplitN(clean, sep, 2)
		return models.ParsedTitle{
			Artist:      strings.TrimSpace(parts[0]),
			Song:        strings.TrimSpace(parts[1]),
			FullTitle:   clean,
			MusicFormat: true,
		}
	}

	return models.ParsedTitle{
		Artist:      models.UnknownArtist,
		Song:        clean,
		FullTitle:   clean,
		MusicFormat: false,
	}
}
