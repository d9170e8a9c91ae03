package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsPattern(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "clinic", "%clinic%"},
		{"underscore", "_", `%\_%`},
		{"percent", "100%", `%100\%%`},
		{"backslash", `a\b`, `%a\\b%`},
		{"empty", "", "%%"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, containsPattern(tc.input))
		})
	}
}

func TestLikeEscaperLanguage(t *testing.T) {
	assert.Equal(t, `\%`, likeEscaper.Replace("%"))
	assert.Equal(t, "Spanish", likeEscaper.Replace("Spanish"))
}
