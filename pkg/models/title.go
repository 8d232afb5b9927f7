package models

// UnknownArtist is the artist value used when a title has no recognizable
// artist/song separator.
const UnknownArtist = "Unknown"

// ParsedTitle is the result of splitting a video title into an artist/song
// pair. MusicFormat reports whether a separator was found; when it is false
// Artist is always UnknownArtist and Song carries the cleaned title.
type ParsedTitle struct {
	Artist      string `json:"artist"`
	Song        string `json:"song"`
	FullTitle   string `json:"full_title"`
	MusicFormat bool   `json:"is_music_format"`
}

// Unparsed reports whether title parsing failed to find an artist/song pair.
// Callers fall back to general-content generation when this is true.
func (p ParsedTitle) Unparsed() bool {
	return !p.MusicFormat && p.Artist == UnknownArtist
}
