// Package security strips markup from user supplied text before it is stored,
// used as a filter, or echoed into a URL.
package security

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer removes every HTML element from text input
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a sanitizer backed by bluemonday's strict policy
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// maxPasses bounds how many layers of entity encoding Clean unwraps
const maxPasses = 4

// angleBrackets is the last resort for input still changing after maxPasses
var angleBrackets = strings.NewReplacer("<", "", ">", "")

// Clean strips tags and surrounding whitespace. Entities are decoded since
// output escaping happens at render time, so sanitizing repeats until the
// decoded text is stable and no encoded tag can come back to life.
func (s *Sanitizer) Clean(input string) string {
	text := strings.TrimSpace(input)
	for i := 0; i < maxPasses; i++ {
		next := strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(text)))
		if next == text {
			return text
		}
		text = next
	}
	return angleBrackets.Replace(text)
}

// CleanAll applies Clean to each value and drops the empty results
func (s *Sanitizer) CleanAll(inputs []string) []string {
	out := make([]string, 0, len(inputs))
	for _, in := range inputs {
		if c := s.Clean(in); c != "" {
			out = append(out, c)
		}
	}
	return out
}

var defaultSanitizer = NewSanitizer()

// Text cleans input with the shared strict sanitizer
func Text(input string) string {
	return defaultSanitizer.Clean(input)
}
