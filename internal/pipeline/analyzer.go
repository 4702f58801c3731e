package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/ashu-94/bank-ai-analyzer/internal/common"
	"github.com/ashu-94/bank-ai-analyzer/internal/entity"
	"github.com/ashu-94/bank-ai-analyzer/internal/extract"
	"github.com/ashu-94/bank-ai-analyzer/internal/llm"
)

// Analyzer coordinates the per-request pipeline: spool the upload to a
// scoped temp file, extract text, build the prompt, call the completer,
// normalize and parse the completion, shape the response.
type Analyzer struct {
	log          *slog.Logger
	extractor    extract.TextExtractor
	completer    llm.Completer
	schema       map[string]any
	maxTextBytes int
}

func NewAnalyzer(logger *slog.Logger, extractor extract.TextExtractor, completer llm.Completer, maxTextBytes int) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		log:          logger,
		extractor:    extractor,
		completer:    completer,
		schema:       llm.BuildStatementJSONSchema(),
		maxTextBytes: maxTextBytes,
	}
}

// Analyze runs the full pipeline over one uploaded statement. The temp file
// is removed on every exit path, including caller disconnects.
func (a *Analyzer) Analyze(ctx context.Context, upload io.Reader) (*entity.BankStatementResponse, error) {
	rid := uuid.New().String()
	start := time.Now()

	tmpPath, err := saveToTemp(upload)
	if err != nil {
		a.log.Error("analyze.spool.failed", "req_id", rid, "err", err)
		return nil, common.NewAppError("EXTRACTION_FAILED",
			fmt.Sprintf("failed to store upload: %v", err), common.ErrInternal)
	}
	defer func() {
		if err := os.Remove(tmpPath); err != nil {
			a.log.Warn("analyze.cleanup.failed", "req_id", rid, "path", tmpPath, "err", err)
		}
	}()

	res, err := a.extractor.Extract(ctx, tmpPath)
	if err != nil {
		a.log.Error("analyze.extract.failed", "req_id", rid, "err", err)
		return nil, err
	}
	a.log.Info("analyze.extract.ok",
		"req_id", rid,
		"pages", res.Pages,
		"skipped", res.Skipped,
		"text_len", len(res.Text),
	)

	if a.maxTextBytes > 0 && len(res.Text) > a.maxTextBytes {
		a.log.Warn("analyze.text_too_large", "req_id", rid, "text_len", len(res.Text), "limit", a.maxTextBytes)
		return nil, common.NewAppError("INVALID_INPUT",
			fmt.Sprintf("statement text too large: %d bytes (limit %d)", len(res.Text), a.maxTextBytes),
			common.ErrInvalidInput)
	}

	messages := []llm.ChatMessage{
		{Role: "system", Content: llm.SystemPrompt()},
		{Role: "user", Content: llm.BuildUserPrompt(res.Text)},
	}
	content, err := a.completer.Complete(ctx, messages)
	if err != nil {
		a.log.Error("analyze.complete.failed", "req_id", rid, "err", err)
		return nil, err
	}

	doc, err := a.parseCompletion(rid, content)
	if err != nil {
		return nil, err
	}

	out := ShapeResponse(doc)
	a.log.Info("analyze.ok",
		"req_id", rid,
		"transactions", len(out.Transactions),
		"has_account_details", out.AccountDetails != nil,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// parseCompletion strips any fence wrapper and parses the completion as a
// JSON object. The schema check afterwards is warn-only: structural drift
// is tolerated and handled by shaping, not rejected.
func (a *Analyzer) parseCompletion(rid, content string) (map[string]any, error) {
	cleaned := llm.StripCodeFences(content)

	var doc map[string]any
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		a.log.Error("analyze.parse.invalid_json", "req_id", rid, "err", err, "content", content)
		return nil, common.NewAppError("MODEL_OUTPUT_INVALID",
			fmt.Sprintf("model returned invalid JSON: %v; raw output: %s", err, content),
			common.ErrModelOutput)
	}

	if err := llm.ValidateJSONAgainstSchema(a.schema, []byte(cleaned)); err != nil {
		a.log.Warn("analyze.parse.schema_mismatch", "req_id", rid, "err", err)
	}
	return doc, nil
}

// saveToTemp writes the upload to a uniquely named temp file and returns
// its path. On any failure the file is removed before returning.
func saveToTemp(r io.Reader) (string, error) {
	f, err := os.CreateTemp("", "statement-*.pdf")
	if err != nil {
		return "", err
	}
	path := f.Name()
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
