package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/ashu-94/bank-ai-analyzer/constants"
	"github.com/ashu-94/bank-ai-analyzer/internal/common"
	"github.com/ashu-94/bank-ai-analyzer/internal/entity"
)

// Analyzer runs the statement pipeline for one upload. The concrete
// implementation lives in internal/pipeline; handlers only see this
// contract so tests can substitute it.
type Analyzer interface {
	Analyze(ctx context.Context, upload io.Reader) (*entity.BankStatementResponse, error)
}

type StatementHandler struct {
	log            *slog.Logger
	analyzer       Analyzer
	maxUploadBytes int64
}

func NewStatementHandler(logger *slog.Logger, analyzer Analyzer, maxUploadBytes int64) *StatementHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatementHandler{
		log:            logger,
		analyzer:       analyzer,
		maxUploadBytes: maxUploadBytes,
	}
}

// Root handles GET /.
func (h *StatementHandler) Root(w http.ResponseWriter, r *http.Request) error {
	return writeJSON(w, http.StatusOK, map[string]string{
		"message": "Bank Statement Analyzer API",
		"docs":    "POST /analyze-bank-statement with multipart field 'file'",
		"health":  "/health",
	})
}

// Health handles GET /health.
func (h *StatementHandler) Health(w http.ResponseWriter, r *http.Request) error {
	return writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Analyze handles POST /analyze-bank-statement: one PDF per request,
// multipart field "file". The filename gate runs before the pipeline so a
// rejected upload never creates a scoped temp file.
func (h *StatementHandler) Analyze(w http.ResponseWriter, r *http.Request) error {
	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return common.NewAppError("INVALID_INPUT",
				fmt.Sprintf("upload exceeds the %d byte limit", mbe.Limit), common.ErrInvalidInput)
		}
		return common.NewAppError("INVALID_INPUT",
			"multipart file field 'file' is required", common.ErrInvalidInput)
	}
	defer file.Close()

	if !constants.AllowedExt(filepath.Ext(header.Filename)) {
		return common.NewAppError("INVALID_INPUT",
			"only PDF files are supported", common.ErrInvalidInput)
	}

	h.log.Info("http.analyze.accepted", "filename", header.Filename, "size", header.Size)

	resp, err := h.analyzer.Analyze(r.Context(), file)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
