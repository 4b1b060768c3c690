package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c-varun14/Yugantar/pkg/history"
)

func TestListConversationsHandler(t *testing.T) {
	s := newTestServer(t)

	t.Run("anonymous request is rejected", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/conversations", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := s.listConversationsHandler(c)
		if assert.Error(t, err) {
			he, ok := err.(*echo.HTTPError)
			if assert.True(t, ok) {
				assert.Equal(t, http.StatusUnauthorized, he.Code)
			}
		}
	})

	t.Run("empty history lists as empty array", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/conversations", nil)
		req.Header.Set("X-Forwarded-User", "nobody")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, s.listConversationsHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("lists the caller's conversations only", func(t *testing.T) {
		s.history.StartConversation("alice", "explain quicksort")
		s.history.StartConversation("bob", "explain heapsort")

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/conversations", nil)
		req.Header.Set("X-Forwarded-User", "alice")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, s.listConversationsHandler(c))

		var convs []history.Conversation
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &convs))
		require.Len(t, convs, 1)
		assert.Equal(t, "explain quicksort", convs[0].Title)
	})
}

func TestGetConversationHandler(t *testing.T) {
	s := newTestServer(t)
	convID := s.history.StartConversation("alice", "explain quicksort")
	require.NoError(t, s.history.Append("alice", convID, history.Entry{
		Prompt: "explain quicksort",
		HTML:   "<html></html>",
	}))

	t.Run("missing id returns 400", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/conversations/", nil)
		req.Header.Set("X-Forwarded-User", "alice")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := s.getConversationHandler(c)
		if assert.Error(t, err) {
			he, ok := err.(*echo.HTTPError)
			if assert.True(t, ok) {
				assert.Equal(t, http.StatusBadRequest, he.Code)
			}
		}
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/conversations/nope", nil)
		req.Header.Set("X-Forwarded-User", "alice")
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("other users cannot read the conversation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/conversations/"+convID, nil)
		req.Header.Set("X-Forwarded-User", "bob")
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("owner reads the conversation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/conversations/"+convID, nil)
		req.Header.Set("X-Forwarded-User", "alice")
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var conv history.Conversation
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &conv))
		assert.Equal(t, convID, conv.ID)
		require.Len(t, conv.Entries, 1)
		assert.Equal(t, "<html></html>", conv.Entries[0].HTML)
	})
}
