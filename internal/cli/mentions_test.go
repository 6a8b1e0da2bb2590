package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMentions(t *testing.T) {
	mentions, err := parseMentions([]string{"5-9", "12-16:self"})
	require.NoError(t, err)
	require.Len(t, mentions, 2)

	assert.Equal(t, 5, mentions[0].Range.Start)
	assert.Equal(t, 9, mentions[0].Range.End)
	assert.False(t, mentions[0].IsSelf)

	assert.Equal(t, 12, mentions[1].Range.Start)
	assert.True(t, mentions[1].IsSelf)
}

func TestParseMentionsEmpty(t *testing.T) {
	mentions, err := parseMentions(nil)
	require.NoError(t, err)
	assert.Nil(t, mentions)
}

func TestParseMentionsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"missing dash", "59"},
		{"non numeric start", "a-9"},
		{"non numeric end", "5-b"},
		{"negative start", "-1-4"},
		{"empty range", "5-5"},
		{"inverted range", "9-5"},
		{"bad suffix", "5-9:me"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseMentions([]string{tt.value})
			assert.Error(t, err, "value %q", tt.value)
		})
	}
}

func TestParseMentionsRejectsOverlap(t *testing.T) {
	_, err := parseMentions([]string{"5-9", "8-12"})
	assert.Error(t, err)

	_, err = parseMentions([]string{"10-14", "2-6"})
	assert.Error(t, err, "out-of-order mentions are rejected")
}

func TestParseMentionsAllowsTouching(t *testing.T) {
	mentions, err := parseMentions([]string{"5-9", "9-12"})
	require.NoError(t, err)
	assert.Len(t, mentions, 2)
}
