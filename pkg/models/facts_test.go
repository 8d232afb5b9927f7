package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactValidate(t *testing.T) {
	tests := []struct {
		name    string
		fact    Fact
		wantErr bool
	}{
		{name: "valid", fact: Fact{Time: 10, Text: "This is a perfectly fine fact."}},
		{name: "time at lower bound", fact: Fact{Time: 0, Text: "Still a valid fact here."}},
		{name: "time at upper bound", fact: Fact{Time: 600, Text: "Still a valid fact here."}},
		{name: "negative time", fact: Fact{Time: -1, Text: "Still a valid fact here."}, wantErr: true},
		{name: "time too large", fact: Fact{Time: 601, Text: "Still a valid fact here."}, wantErr: true},
		{name: "text too short", fact: Fact{Time: 10, Text: "too short"}, wantErr: true},
		{name: "text at min length", fact: Fact{Time: 10, Text: "ten chars!"}},
		{name: "text at max length", fact: Fact{Time: 10, Text: strings.Repeat("a", 250)}},
		{name: "text too long", fact: Fact{Time: 10, Text: strings.Repeat("a", 251)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fact.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFactsListValidate(t *testing.T) {
	valid := Fact{Time: 10, Text: "This is a perfectly fine fact."}

	t.Run("empty list", func(t *testing.T) {
		assert.Error(t, FactsList{}.Validate())
	})

	t.Run("single fact", func(t *testing.T) {
		assert.NoError(t, FactsList{Facts: []Fact{valid}}.Validate())
	})

	t.Run("too many facts", func(t *testing.T) {
		facts := make([]Fact, 51)
		for i := range facts {
			facts[i] = valid
		}
		assert.Error(t, FactsList{Facts: facts}.Validate())
	})

	t.Run("bad fact inside", func(t *testing.T) {
		err := FactsList{Facts: []Fact{valid, {Time: 10, Text: "short"}}}.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "fact 1")
	})
}

func TestParsedTitleUnparsed(t *testing.T) {
	assert.True(t, ParsedTitle{Artist: UnknownArtist, Song: "Clip", FullTitle: "Clip"}.Unparsed())
	assert.False(t, ParsedTitle{Artist: "Toto", Song: "Africa", FullTitle: "Toto - Africa", MusicFormat: true}.Unparsed())

	// An artist literally named Unknown with a separator still counts as parsed.
	assert.False(t, ParsedTitle{Artist: UnknownArtist, Song: "Song", MusicFormat: true}.Unparsed())
}
