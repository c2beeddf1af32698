package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/app/service/journal"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/models"
)

type stubExporter struct {
	doc     []byte
	archive []byte
	err     error
}

func (s *stubExporter) Render(_ *models.JournalEntry) ([]byte, error) { panic("not used") }

func (s *stubExporter) RenderByID(_ context.Context, _ string) ([]byte, error) {
	return s.doc, s.err
}

func (s *stubExporter) RenderAllByUser(_ context.Context, _ string) ([]byte, error) {
	return s.archive, s.err
}

func newReportRouter(exp *stubExporter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterReportRoutes(r.Group("/api/v1"), exp)
	return r
}

func TestApiGetReport_Download(t *testing.T) {
	r := newReportRouter(&stubExporter{doc: []byte("%PDF-1.4 fake")})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/report/e1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	require.Equal(t, "attachment; filename=journal_report_e1.pdf", w.Header().Get("Content-Disposition"))
	require.Equal(t, "%PDF-1.4 fake", w.Body.String())
}

func TestApiGetReport_NotFound(t *testing.T) {
	r := newReportRouter(&stubExporter{err: journal.ErrNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/report/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), `"error"`)
}

func TestApiGetAllReports_Download(t *testing.T) {
	r := newReportRouter(&stubExporter{archive: []byte("PK fake zip")})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/all?userId=user-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/zip", w.Header().Get("Content-Type"))
	require.Equal(t, "attachment; filename=journal_reports.zip", w.Header().Get("Content-Disposition"))
}

func TestApiGetAllReports_MissingUserIDIs400(t *testing.T) {
	r := newReportRouter(&stubExporter{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/all", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApiGetAllReports_NoEntriesIs404(t *testing.T) {
	r := newReportRouter(&stubExporter{err: journal.ErrNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/all?userId=user-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}
