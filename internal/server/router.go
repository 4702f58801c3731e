package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ashu-94/bank-ai-analyzer/internal/common"
)

// Handler is an http handler that reports failures as errors; ErrorHandling
// translates them into the {detail} error body at the boundary.
type Handler func(http.ResponseWriter, *http.Request) error

// ErrorHandling is the single place per-request errors become status codes.
// Callers always get a JSON body, never a raw stack trace.
func ErrorHandling(log *slog.Logger, next Handler) http.HandlerFunc {
	if log == nil {
		log = slog.Default()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		err := next(w, r)
		if err == nil {
			return
		}
		status := common.HTTPStatus(err)
		code := "INTERNAL"
		var ae *common.AppError
		if errors.As(err, &ae) {
			code = ae.Code
		}
		log.Error("http.request_failed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"code", code,
			"err", err,
		)
		_ = writeJSON(w, status, map[string]string{"detail": common.Detail(err)})
	}
}

func NewRouter(log *slog.Logger, h *StatementHandler) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /{$}", ErrorHandling(log, h.Root))
	mux.Handle("GET /health", ErrorHandling(log, h.Health))
	mux.Handle("POST /analyze-bank-statement", ErrorHandling(log, h.Analyze))

	return mux
}
