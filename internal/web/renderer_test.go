package web

import (
	"net/http/httptest"
	"testing"

	"new-arrivals-chi/internal/database/models"
	"new-arrivals-chi/internal/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderPage(t *testing.T, r *Renderer, name string, page Page) string {
	t.Helper()
	w := httptest.NewRecorder()
	require.NoError(t, r.Instance(name, page).Render(w))
	return w.Body.String()
}

func TestNewRenderer(t *testing.T) {
	r, err := NewRenderer(i18n.MustLoad("en"))
	require.NoError(t, err)

	for _, name := range []string{"home.html", "login.html", "signup.html", "dashboard.html", "legal_topic.html", ErrorTemplate} {
		assert.True(t, r.Has(name), name)
	}
	assert.False(t, r.Has(baseTemplate))
	assert.False(t, r.Has("partial_profile.html"))
}

func TestRenderHomeTranslated(t *testing.T) {
	r, err := NewRenderer(i18n.MustLoad("en"))
	require.NoError(t, err)

	en := renderPage(t, r, "home.html", Page{Lang: "en", Path: "/"})
	assert.Contains(t, en, "Welcome")
	assert.Contains(t, en, `href="/legal?lang=en"`)
	assert.Contains(t, en, `href="/health?lang=en"`)
	assert.Contains(t, en, `href="/food?lang=en"`)

	es := renderPage(t, r, "home.html", Page{Lang: "es", Path: "/"})
	assert.Contains(t, es, "Bienvenido")
	assert.Contains(t, es, `href="/legal?lang=es"`)
}

func TestRenderEscapesFlashesAndInput(t *testing.T) {
	r, err := NewRenderer(i18n.MustLoad("en"))
	require.NoError(t, err)

	out := renderPage(t, r, "login.html", Page{
		Lang:      "en",
		Path:      "/login",
		Flashes:   []string{"flash_bad_login", "<script>alert(1)</script>"},
		CSRFToken: "tok123",
		Data:      `"><script>`,
	})

	assert.Contains(t, out, "Please check your login details and try again.")
	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, `name="csrf_token" value="tok123"`)
}

func TestRenderUnknownPageFallsBackToError(t *testing.T) {
	r, err := NewRenderer(i18n.MustLoad("en"))
	require.NoError(t, err)

	out := renderPage(t, r, "missing.html", Page{Lang: "en", Title: "not_found"})
	assert.Contains(t, out, "Page not found")
}

func TestRenderNavigationForUser(t *testing.T) {
	r, err := NewRenderer(i18n.MustLoad("en"))
	require.NoError(t, err)

	out := renderPage(t, r, "about.html", Page{Lang: "en", Path: "/about", User: &models.User{Email: "a@b.org"}})
	assert.Contains(t, out, "Logout")
	assert.NotContains(t, out, `href="/signup?lang=en"`)
	assert.Contains(t, out, `href="/about?lang=es"`)
}

func TestLangURL(t *testing.T) {
	assert.Equal(t, "/legal?lang=es", LangURL("/legal", "es"))
	assert.Equal(t, "/health/search?day=monday&lang=en", LangURL("/health/search?day=monday&lang=es", "en"))
}

func TestDict(t *testing.T) {
	m, err := dict("a", 1, "b", "two")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"a": 1, "b": "two"}, m)

	_, err = dict("odd")
	assert.Error(t, err)

	_, err = dict(1, 2)
	assert.Error(t, err)
}

func TestFuncsContains(t *testing.T) {
	contains := Funcs(i18n.MustLoad("en"))["contains"].(func([]string, string) bool)
	assert.True(t, contains([]string{"English", "Spanish"}, "Spanish"))
	assert.False(t, contains(nil, "Spanish"))
}
