package puzzles_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"api/models"
	"api/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkAnswer(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := testutil.SetupRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/puzzle/check", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckAnswerTrimsAndCaseFolds(t *testing.T) {
	w := checkAnswer(t, `{"puzzleId": 1, "answer": "  MAP "}`)

	require.Equal(t, http.StatusOK, w.Code)

	var verdict struct {
		Correct bool `json:"correct"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &verdict))
	assert.True(t, verdict.Correct)
}

func TestCheckAnswerWrongAnswerIsNotAnError(t *testing.T) {
	w := checkAnswer(t, `{"puzzleId": 2, "answer": "footprint"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var verdict struct {
		Correct bool `json:"correct"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &verdict))
	assert.False(t, verdict.Correct)
}

func TestCheckAnswerUnknownPuzzle(t *testing.T) {
	w := checkAnswer(t, `{"puzzleId": 99, "answer": "x"}`)

	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Puzzle not found", body["error"])
}

func TestCheckAnswerMissingPuzzleIDIsNotFound(t *testing.T) {
	// An absent puzzleId can never resolve to a lock
	w := checkAnswer(t, `{"answer": "map"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckAnswerMalformedBody(t *testing.T) {
	w := checkAnswer(t, `{"puzzleId": "one"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPuzzlesWithholdsAnswers(t *testing.T) {
	r := testutil.SetupRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/puzzles", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var catalog []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &catalog))
	require.Len(t, catalog, len(models.Puzzles))

	for i, entry := range catalog {
		assert.Equal(t, float64(i+1), entry["id"])
		assert.NotEmpty(t, entry["title"])
		assert.NotEmpty(t, entry["riddle"])
		assert.NotContains(t, entry, "answer")
		assert.NotContains(t, entry, "acceptedAnswers")
	}
}
