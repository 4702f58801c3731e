package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"github.com/ashu-94/bank-ai-analyzer/internal/common"
)

// PDFExtractor reads the text layer of a PDF. Pages without extractable
// text are skipped; the remaining page texts are joined with newlines.
type PDFExtractor struct {
	log *slog.Logger
}

func NewPDFExtractor(logger *slog.Logger) *PDFExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFExtractor{log: logger}
}

func (e *PDFExtractor) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	start := time.Now()

	pageTexts, pages, err := readPageTexts(path)
	if err != nil {
		e.log.Error("extract.pdf.failed", "path", path, "err", err)
		return TextExtractionResult{}, common.NewAppError("EXTRACTION_FAILED",
			fmt.Sprintf("failed to read PDF: %v", err), common.ErrExtraction)
	}

	res := TextExtractionResult{
		Text:     JoinPageTexts(pageTexts),
		Pages:    pages,
		Skipped:  pages - len(pageTexts),
		Duration: time.Since(start),
	}
	if strings.TrimSpace(res.Text) == "" {
		// A scanned statement with no text layer ends up here; that is a
		// caller problem, not a library fault, and the two stay distinct.
		e.log.Warn("extract.pdf.no_text", "path", path, "pages", pages)
		return res, common.NewAppError("NO_TEXT",
			"no readable text found in the PDF", common.ErrNoText)
	}

	e.log.Info("extract.pdf.ok",
		"pages", pages,
		"skipped", res.Skipped,
		"text_len", len(res.Text),
		"elapsed_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}

// readPageTexts returns the non-empty page texts in page order. The pdf
// package panics on some malformed documents; the recover folds those into
// the returned error so callers only ever see an extraction fault.
func readPageTexts(path string) (texts []string, pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	pages = r.NumPage()
	for i := 1; i <= pages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		txt, err := p.GetPlainText(nil)
		if err != nil {
			return nil, pages, fmt.Errorf("page %d: %w", i, err)
		}
		if strings.TrimSpace(txt) == "" {
			continue
		}
		texts = append(texts, txt)
	}
	return texts, pages, nil
}

// JoinPageTexts joins page texts with newlines, preserving page order.
func JoinPageTexts(pageTexts []string) string {
	return strings.Join(pageTexts, "\n")
}
