package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/app/service/analysis"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/models"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/pkg/types"
)

type stubAnalyzer struct {
	res   *types.AnalysisResult
	err   error
	calls int
}

func (s *stubAnalyzer) Analyze(_ context.Context, _ string) (*types.AnalysisResult, error) {
	s.calls++
	return s.res, s.err
}

type stubStore struct {
	entries   []*models.JournalEntry
	listErr   error
	created   *models.JournalEntry
	createErr error
	count     int64
	countErr  error
	deleted   int64
}

func (s *stubStore) Create(_ context.Context, userID, title, content string, moodScore float64, analysis *types.AnalysisResult) (*models.JournalEntry, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = &models.JournalEntry{ID: "new-id", UserID: userID, Title: title, Content: content, MoodScore: moodScore}
	return s.created, nil
}

func (s *stubStore) ListByUser(_ context.Context, _ string) ([]*models.JournalEntry, error) {
	return s.entries, s.listErr
}

func (s *stubStore) GetByID(_ context.Context, _ string) (*models.JournalEntry, error) {
	panic("not used")
}

func (s *stubStore) CountByUser(_ context.Context, _ string) (int64, error) {
	return s.count, s.countErr
}

func (s *stubStore) DeleteAllByUser(_ context.Context, _ string) (int64, error) {
	return s.deleted, nil
}

func validResult() *types.AnalysisResult {
	return &types.AnalysisResult{
		MoodScore: 7,
		Summary:   "steady",
		Emotions:  types.Emotions{Primary: "calm", Secondary: []string{}, Intensity: "low"},
		Topics:    []string{"work"},
		Suggestions: types.Suggestions{
			Immediate: "rest", LongTerm: "routine",
			Activities: []string{}, Resources: []string{},
		},
	}
}

func newJournalRouter(an analysis.Analyzer, store *stubStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	RegisterJournalRoutes(api, an, store, zap.NewNop().Sugar())
	return r
}

func postJournal(r *gin.Engine, body map[string]any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/journal", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestApiCreateJournal_Success(t *testing.T) {
	store := &stubStore{}
	r := newJournalRouter(&stubAnalyzer{res: validResult()}, store)

	w := postJournal(r, map[string]any{"userId": "user-1", "title": "day one", "content": "it went well"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"journal"`)
	require.NotNil(t, store.created)
	require.Equal(t, "user-1", store.created.UserID)
	require.Equal(t, 7.0, store.created.MoodScore)
}

func TestApiCreateJournal_ProviderFailureIs502(t *testing.T) {
	store := &stubStore{}
	an := &stubAnalyzer{err: fmt.Errorf("call: %w", analysis.ErrProviderUnavailable)}
	r := newJournalRouter(an, store)

	w := postJournal(r, map[string]any{"userId": "user-1", "title": "t", "content": "c"})
	require.Equal(t, http.StatusBadGateway, w.Code)
	require.Contains(t, w.Body.String(), `"error"`)
	require.Nil(t, store.created, "nothing may be persisted when analysis fails")
}

func TestApiCreateJournal_BadAnalysisOutputIs422(t *testing.T) {
	for _, cause := range []error{analysis.ErrMalformedOutput, analysis.ErrInvalidShape} {
		store := &stubStore{}
		r := newJournalRouter(&stubAnalyzer{err: cause}, store)

		w := postJournal(r, map[string]any{"userId": "user-1", "title": "t", "content": "c"})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, "cause: %v", cause)
		require.Nil(t, store.created)
	}
}

func TestApiCreateJournal_WriteFailureIs500(t *testing.T) {
	store := &stubStore{createErr: errors.New("insert failed")}
	r := newJournalRouter(&stubAnalyzer{res: validResult()}, store)

	w := postJournal(r, map[string]any{"userId": "user-1", "title": "t", "content": "c"})
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestApiCreateJournal_MissingContentIs400(t *testing.T) {
	an := &stubAnalyzer{res: validResult()}
	r := newJournalRouter(an, &stubStore{})

	w := postJournal(r, map[string]any{"userId": "user-1", "title": "t"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Zero(t, an.calls, "analyzer must not run for invalid input")
}

func TestApiListJournals_MissingUserIDIs400(t *testing.T) {
	r := newJournalRouter(&stubAnalyzer{}, &stubStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/journal", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApiListJournals_ReturnsJournals(t *testing.T) {
	store := &stubStore{entries: []*models.JournalEntry{{ID: "e1", UserID: "user-1", Title: "t"}}}
	r := newJournalRouter(&stubAnalyzer{}, store)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/journal?userId=user-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp RespJournalList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Journals, 1)
	require.Equal(t, "e1", resp.Journals[0].ID)
}

// The count endpoint never errors toward the caller: internal failures are
// logged and reported as zero.
func TestApiCountJournals_SwallowsErrors(t *testing.T) {
	store := &stubStore{countErr: errors.New("db down")}
	r := newJournalRouter(&stubAnalyzer{}, store)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/journal/count?userId=user-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"count":0}`, w.Body.String())
}

func TestApiCountJournals_ReturnsCount(t *testing.T) {
	store := &stubStore{count: 4}
	r := newJournalRouter(&stubAnalyzer{}, store)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/journal/count?userId=user-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"count":4}`, w.Body.String())
}

func TestApiDeleteJournals(t *testing.T) {
	store := &stubStore{deleted: 2}
	r := newJournalRouter(&stubAnalyzer{}, store)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/journal?userId=user-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"deleted":2}`, w.Body.String())
}
