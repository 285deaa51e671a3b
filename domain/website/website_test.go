package website

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	site, err := NewRouter()
	require.NoError(t, err)

	e := echo.New()
	RegisterRoutes(e, site)
	return e
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestLandingPage(t *testing.T) {
	rec := get(newTestServer(t), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	for _, want := range []string{
		"<!DOCTYPE html>",
		"Stop thinking. Start executing.",
		"Without pressure. Without guilt.",
		"Too many thoughts at once",
		"Fokus clarifies",
		"ADHD minds",
		"Why a waitlist?",
		"FOUNDING USERS PERK",
		`id="waitlist-form"`,
		`id="waitlist-modal"`,
		"You have successfully joined the waitlist!",
		"© Fokus 2026.",
		`src="/static/js/waitlist.js"`,
	} {
		assert.Contains(t, body, want)
	}
}

func TestChatPage(t *testing.T) {
	rec := get(newTestServer(t), "/chat")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Start a conversation with Gemini...")
	assert.Contains(t, body, `id="chat-input"`)
	assert.Contains(t, body, `id="chat-send"`)
	assert.Contains(t, body, `src="/static/js/chat.js"`)
}

func TestStaticAssets(t *testing.T) {
	e := newTestServer(t)

	for _, path := range []string{"/static/styles.css", "/static/js/waitlist.js", "/static/js/chat.js", "/static/images/logo.svg"} {
		rec := get(e, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, staticMaxAge, rec.Header().Get("Cache-Control"), path)
		assert.NotZero(t, rec.Body.Len(), path)
	}

	assert.Equal(t, http.StatusNotFound, get(e, "/static/missing.js").Code)
}

func TestStaticScriptsCallTheAPI(t *testing.T) {
	e := newTestServer(t)

	assert.Contains(t, get(e, "/static/js/waitlist.js").Body.String(), "/api/v1/user/waitlist")
	assert.Contains(t, get(e, "/static/js/chat.js").Body.String(), "/api/v1/gemini/chat")
	assert.Contains(t, get(e, "/static/js/chat.js").Body.String(), "Sorry, I encountered an error receiving the response.")
}

func TestHeadRequests(t *testing.T) {
	e := newTestServer(t)

	for _, path := range []string{"/", "/chat", "/static/js/chat.js"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("Content-Type"))
		})
	}
}
