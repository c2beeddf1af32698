package report

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/app/service/journal"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/models"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/pkg/types"
)

type stubStore struct {
	entries  map[string]*models.JournalEntry
	order    []string
	getCalls int
}

func (s *stubStore) Create(_ context.Context, _, _, _ string, _ float64, _ *types.AnalysisResult) (*models.JournalEntry, error) {
	panic("not used")
}

func (s *stubStore) ListByUser(_ context.Context, _ string) ([]*models.JournalEntry, error) {
	out := make([]*models.JournalEntry, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.entries[id])
	}
	return out, nil
}

func (s *stubStore) GetByID(_ context.Context, id string) (*models.JournalEntry, error) {
	s.getCalls++
	if e, ok := s.entries[id]; ok {
		return e, nil
	}
	return nil, journal.ErrNotFound
}

func (s *stubStore) CountByUser(_ context.Context, _ string) (int64, error) { panic("not used") }
func (s *stubStore) DeleteAllByUser(_ context.Context, _ string) (int64, error) {
	panic("not used")
}

func testEntry(id string) *models.JournalEntry {
	return &models.JournalEntry{
		ID:        id,
		UserID:    "user-1",
		Title:     "A quiet morning",
		Content:   "<p>Slept well &amp; felt <b>rested</b>.</p>",
		MoodScore: 8,
		Analysis: datatypes.NewJSONType(types.AnalysisResult{
			MoodScore: 8,
			Summary:   "A restful start to the day.",
			Emotions:  types.Emotions{Primary: "calm", Secondary: []string{"grateful"}, Intensity: "low"},
			Topics:    []string{"sleep", "morning routine"},
			Suggestions: types.Suggestions{
				Immediate:  "Keep the slow pace going.",
				LongTerm:   "Protect your sleep schedule.",
				Activities: []string{"stretching"},
				Resources:  []string{"sleep hygiene guide"},
			},
		}),
		CreatedAt: time.Date(2024, time.April, 2, 8, 30, 0, 0, time.UTC),
	}
}

func newTestExporter(store journal.Store) Exporter {
	return NewExporter(store, zap.NewNop().Sugar())
}

func TestRender_ProducesPDF(t *testing.T) {
	exp := newTestExporter(&stubStore{})

	doc, err := exp.Render(testEntry("e1"))
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestRenderByID_NotFound(t *testing.T) {
	exp := newTestExporter(&stubStore{entries: map[string]*models.JournalEntry{}})

	_, err := exp.RenderByID(context.Background(), "missing")
	require.True(t, errors.Is(err, journal.ErrNotFound))
}

func TestRenderAllByUser_BuildsArchive(t *testing.T) {
	store := &stubStore{
		entries: map[string]*models.JournalEntry{
			"e1": testEntry("e1"),
			"e2": testEntry("e2"),
		},
		order: []string{"e1", "e2"},
	}
	exp := newTestExporter(store)

	data, err := exp.RenderAllByUser(context.Background(), "user-1")
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)

	names := []string{zr.File[0].Name, zr.File[1].Name}
	require.Contains(t, names, "journal_report_e1.pdf")
	require.Contains(t, names, "journal_report_e2.pdf")

	// The batch works off the listed rows; no per-entry lookups.
	require.Zero(t, store.getCalls)
}

// All-or-nothing: a batch that cannot finish produces no archive at all.
func TestRenderAllByUser_AbortsWholeBatchOnFailure(t *testing.T) {
	store := &stubStore{
		entries: map[string]*models.JournalEntry{
			"e1": testEntry("e1"),
			"e2": testEntry("e2"),
			"e3": testEntry("e3"),
		},
		order: []string{"e1", "e2", "e3"},
	}
	exp := newTestExporter(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	data, err := exp.RenderAllByUser(ctx, "user-1")
	require.Error(t, err)
	require.Nil(t, data)
}

func TestRenderAllByUser_NoEntries(t *testing.T) {
	exp := newTestExporter(&stubStore{})

	_, err := exp.RenderAllByUser(context.Background(), "user-1")
	require.True(t, errors.Is(err, journal.ErrNotFound))
}
