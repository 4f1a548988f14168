package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"crosswarped.com/wordle"
	"crosswarped.com/wordle/internal/config"
	"crosswarped.com/wordle/internal/corpus"
)

var testWords = corpus.New(
	[]string{"salty", "smart", "share", "crane", "adieu"},
	map[string]int64{"salty": 30, "smart": 610, "share": 1970, "crane": 70},
)

func newTestServer(t *testing.T, loadErr error) (*server, *int) {
	t.Helper()
	loads := 0
	s := newServer(config.Default(), zap.NewNop(), func(context.Context) (wordle.Corpus, error) {
		loads++
		if loadErr != nil {
			return nil, loadErr
		}
		return testWords, nil
	})
	return s, &loads
}

func post(s *server, method, body string) (*httptest.ResponseRecorder, SolveResponse) {
	req := httptest.NewRequest(method, "/solve", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.solve(rec, req)
	var resp SolveResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	return rec, resp
}

func TestSolve(t *testing.T) {
	s, loads := newTestServer(t, nil)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantSpace  int
		wantWords  []string
		wantErr    string
	}{
		{
			name:       "no constraints",
			body:       `{}`,
			wantStatus: http.StatusOK,
			wantSpace:  5,
			wantWords:  []string{"share", "smart", "crane", "salty", "adieu"},
		},
		{
			name:       "greens and blacks, case folded",
			body:       `{"greens": "S....", "blacks": "E"}`,
			wantStatus: http.StatusOK,
			wantSpace:  2,
			wantWords:  []string{"smart", "salty"},
		},
		{
			name:       "yellows",
			body:       `{"yellows": ["..a.."], "top": 1}`,
			wantStatus: http.StatusOK,
			wantSpace:  2,
			wantWords:  []string{"salty"},
		},
		{
			name:       "bad greens",
			body:       `{"greens": "s.."}`,
			wantStatus: http.StatusBadRequest,
			wantErr:    "SetGreens",
		},
		{
			name:       "too many yellows",
			body:       `{"yellows": ["a....", "b....", "c....", "d....", "e....", "f...."]}`,
			wantStatus: http.StatusBadRequest,
			wantErr:    "AddYellow",
		},
		{
			name:       "top out of range",
			body:       `{"top": 1000}`,
			wantStatus: http.StatusBadRequest,
			wantErr:    "top must be",
		},
		{
			name:       "invalid json",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
			wantErr:    "Invalid JSON",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := post(s, http.MethodPost, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
			if tt.wantErr != "" {
				assert.False(t, resp.Success)
				assert.Contains(t, resp.Error, tt.wantErr)
				return
			}
			require.True(t, resp.Success, resp.Error)
			assert.Equal(t, tt.wantSpace, resp.SearchSpace)
			var words []string
			for _, s := range resp.Suggestions {
				words = append(words, s.Word)
			}
			if diff := cmp.Diff(tt.wantWords, words); diff != "" {
				t.Errorf("suggestions mismatch (-want +got):\n%s", diff)
			}
		})
	}
	assert.Equal(t, 1, *loads, "corpus should be loaded once")
}

func TestSolve_Methods(t *testing.T) {
	s, loads := newTestServer(t, nil)

	rec, _ := post(s, http.MethodOptions, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, resp := post(s, http.MethodGet, "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, resp.Error, "GET")

	assert.Equal(t, 0, *loads)
}

func TestSolve_LoadError(t *testing.T) {
	s, _ := newTestServer(t, errors.New("bigquery down"))
	rec, resp := post(s, http.MethodPost, `{}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", resp.Error)
}

func TestSolve_LoadRetriedAfterError(t *testing.T) {
	loads := 0
	s := newServer(config.Default(), zap.NewNop(), func(context.Context) (wordle.Corpus, error) {
		loads++
		if loads == 1 {
			return nil, errors.New("bigquery timeout")
		}
		return testWords, nil
	})

	rec, _ := post(s, http.MethodPost, `{}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec, resp := post(s, http.MethodPost, `{}`)
	require.Equal(t, http.StatusOK, rec.Code, resp.Error)
	assert.Equal(t, 5, resp.SearchSpace)

	rec, _ = post(s, http.MethodPost, `{}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, loads, "a successful load is kept")
}
