package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "Pilsen", "Pilsen"},
		{"whitespace trimmed", "  es \n", "es"},
		{"script removed", "<script>alert(1)</script>en", "en"},
		{"tags stripped, text kept", "<b>Food</b> pantry", "Food pantry"},
		{"event handler dropped", `<img src=x onerror=alert(1)>`, ""},
		{"ampersand preserved", "Legal & Aid", "Legal & Aid"},
		{"empty", "", ""},
		{"encoded script removed", "&lt;script&gt;alert(1)&lt;/script&gt;", ""},
		{"encoded tag stripped", "&lt;b&gt;Clinic&lt;/b&gt;", "Clinic"},
		{"encoded handler dropped", "&lt;img src=x onerror=alert(1)&gt;", ""},
		{"double encoded tag stripped", "&amp;lt;b&amp;gt;bold", "bold"},
		{"encoded ampersand decoded", "Legal &amp; Aid", "Legal & Aid"},
	}

	s := NewSanitizer()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, s.Clean(tc.input))
		})
	}
}

func TestCleanAll(t *testing.T) {
	got := NewSanitizer().CleanAll([]string{" English ", "<i></i>", "Spanish"})
	assert.Equal(t, []string{"English", "Spanish"}, got)
}

func TestText(t *testing.T) {
	assert.Equal(t, `es">`, Text(`es"><script>alert(1)</script>`))
	assert.NotContains(t, Text("Pantry &lt;script&gt;alert(1)&lt;/script&gt;"), "<")
}
