package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ashu-94/bank-ai-analyzer/internal/common"
	"github.com/ashu-94/bank-ai-analyzer/internal/llm"
)

// Complete implements llm.Completer against an Azure OpenAI deployment.
// One synchronous call per invocation; no retry, no circuit breaker.
func (c *Client) Complete(ctx context.Context, messages []llm.ChatMessage) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.azure.request",
		"req_id", rid,
		"deployment", c.cfg.Deployment,
		"api_version", c.cfg.APIVersion,
		"temp", c.cfg.Temperature,
		"messages", len(messages),
	)

	body := map[string]any{
		"messages":    messages,
		"temperature": c.cfg.Temperature,
	}
	raw, err := c.post(ctx, c.completionsURL(), body)
	if err != nil {
		c.log.Error("llm.azure.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", common.NewAppError("COMPLETION_FAILED",
			fmt.Sprintf("completion request failed: %v", err), common.ErrCompletion)
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.azure.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", common.NewAppError("COMPLETION_FAILED",
			fmt.Sprintf("decode completion response: %v", err), common.ErrCompletion)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("llm.azure.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", common.NewAppError("COMPLETION_FAILED",
			"no choices in completion response", common.ErrCompletion)
	}

	content := cc.Choices[0].Message.Content
	c.log.Info("llm.azure.ok",
		"req_id", rid,
		"content_len", len(content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return content, nil
}

func (c *Client) completionsURL() string {
	return strings.TrimRight(c.cfg.Endpoint, "/") +
		"/openai/deployments/" + url.PathEscape(c.cfg.Deployment) +
		"/chat/completions?api-version=" + url.QueryEscape(c.cfg.APIVersion)
}

func (c *Client) post(ctx context.Context, endpoint string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("api-key", c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("azure http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			c.log.Warn("azure response body close error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("azure status %d: %s", resp.StatusCode, string(raw))
	}
	return raw, nil
}
