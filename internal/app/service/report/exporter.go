package report

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/microcosm-cc/bluemonday"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/app/service/journal"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/internal/models"
)

// Exporter renders stored entries into downloadable documents. Rendering is a
// pure transformation: no persistence side effects. A missing entry surfaces
// as journal.ErrNotFound.
type Exporter interface {
	Render(entry *models.JournalEntry) ([]byte, error)
	RenderByID(ctx context.Context, id string) ([]byte, error)
	RenderAllByUser(ctx context.Context, userID string) ([]byte, error)
}

type pdfExporter struct {
	store    journal.Store
	log      *zap.SugaredLogger
	sanitize *bluemonday.Policy
}

func NewExporter(store journal.Store, log *zap.SugaredLogger) Exporter {
	return &pdfExporter{store: store, log: log, sanitize: bluemonday.StrictPolicy()}
}

// ArchiveEntryName is the deterministic inner name of one document in a batch
// archive.
func ArchiveEntryName(id string) string {
	return fmt.Sprintf("journal_report_%s.pdf", id)
}

// Render lays out one entry as a fixed-format PDF: title, date, mood score,
// full content and the analysis record.
func (e *pdfExporter) Render(entry *models.JournalEntry) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(entry.Title, true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(33, 37, 41)
	pdf.MultiCell(0, 9, tr(entry.Title), "", "L", false)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 6, entry.CreatedAt.Format("January 2, 2006"), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Mood score: %.1f / 10", entry.MoodScore), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(33, 37, 41)
	pdf.MultiCell(0, 6, tr(e.stripMarkup(entry.Content)), "", "L", false)
	pdf.Ln(4)

	analysis := entry.Analysis.Data()

	e.section(pdf, "Summary")
	pdf.MultiCell(0, 6, tr(analysis.Summary), "", "L", false)
	pdf.Ln(2)

	e.section(pdf, "Emotions")
	emotions := analysis.Emotions.Primary
	if len(analysis.Emotions.Secondary) > 0 {
		emotions += ", " + strings.Join(analysis.Emotions.Secondary, ", ")
	}
	pdf.MultiCell(0, 6, tr(fmt.Sprintf("%s (intensity: %s)", emotions, analysis.Emotions.Intensity)), "", "L", false)
	pdf.Ln(2)

	e.section(pdf, "Topics")
	pdf.MultiCell(0, 6, tr(strings.Join(analysis.Topics, ", ")), "", "L", false)
	pdf.Ln(2)

	e.section(pdf, "Suggestions")
	suggestions := []string{
		"Right now: " + analysis.Suggestions.Immediate,
		"Longer term: " + analysis.Suggestions.LongTerm,
	}
	suggestions = append(suggestions, lo.Map(analysis.Suggestions.Activities, func(a string, _ int) string {
		return "Activity: " + a
	})...)
	suggestions = append(suggestions, lo.Map(analysis.Suggestions.Resources, func(r string, _ int) string {
		return "Resource: " + r
	})...)
	for _, s := range suggestions {
		pdf.MultiCell(0, 6, tr("- "+s), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *pdfExporter) section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
}

// stripMarkup flattens the rich-text entry body for PDF layout.
func (e *pdfExporter) stripMarkup(content string) string {
	return strings.TrimSpace(html.UnescapeString(e.sanitize.Sanitize(content)))
}

func (e *pdfExporter) RenderByID(ctx context.Context, id string) ([]byte, error) {
	entry, err := e.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return e.Render(entry)
}

// RenderAllByUser renders every entry of a user concurrently and packages the
// documents into one zip archive. Entries are rendered straight from the list
// query, with no per-entry re-fetch. All-or-nothing: any failed render aborts
// the whole batch and no archive is returned.
func (e *pdfExporter) RenderAllByUser(ctx context.Context, userID string) ([]byte, error) {
	entries, err := e.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, journal.ErrNotFound
	}

	docs := make([][]byte, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := e.Render(entry)
			if err != nil {
				return fmt.Errorf("failed to render %s: %w", entry.ID, err)
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for i, entry := range entries {
		w, err := zw.Create(ArchiveEntryName(entry.ID))
		if err != nil {
			return nil, fmt.Errorf("failed to build archive: %w", err)
		}
		if _, err := w.Write(docs[i]); err != nil {
			return nil, fmt.Errorf("failed to build archive: %w", err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to build archive: %w", err)
	}
	return buf.Bytes(), nil
}
