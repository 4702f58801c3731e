package extract

import (
	"context"
	"time"
)

// TextExtractor is stage 1 of the pipeline: file -> text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text     string
	Pages    int // pages in the document
	Skipped  int // pages that yielded no text
	Duration time.Duration
}
