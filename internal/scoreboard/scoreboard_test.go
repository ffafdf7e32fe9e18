package scoreboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitPostsJSON(t *testing.T) {
	var got Entry
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client, err := New(srv.URL, srv.Client())
	require.NoError(t, err)
	entry := Entry{
		Child:       "Noa",
		Letter:      "ש",
		Lang:        "he",
		Difficulty:  "easy",
		DurationMs:  8200,
		CompletedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, client.Submit(context.Background(), entry))
	assert.Equal(t, entry, got)
}

func TestSubmitReportsServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := New(srv.URL, nil)
	require.NoError(t, err)
	err = client.Submit(context.Background(), Entry{Letter: "A", Lang: "en"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestSubmitRejectsInvalidEntry(t *testing.T) {
	client, err := New("http://127.0.0.1:1/scores", nil)
	require.NoError(t, err)
	err = client.Submit(context.Background(), Entry{Lang: "en"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scoreboard entry")
}

func TestNewRejectsBadURL(t *testing.T) {
	_, err := New("", nil)
	assert.Error(t, err)
	_, err = New("not a url", nil)
	assert.Error(t, err)
}
