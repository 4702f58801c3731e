package azure

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashu-94/bank-ai-analyzer/internal/common"
	"github.com/ashu-94/bank-ai-analyzer/internal/llm"
)

func testMessages() []llm.ChatMessage {
	return []llm.ChatMessage{
		{Role: "system", Content: "You are a financial document parser."},
		{Role: "user", Content: "Extract structured data..."},
	}
}

func TestCompleteSendsDeploymentRequest(t *testing.T) {
	var gotPath, gotVersion, gotKey string
	var gotBody map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotVersion = r.URL.Query().Get("api-version")
		gotKey = r.Header.Get("api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": `{"transactions": []}`}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer ts.Close()

	c := NewClient(Config{
		APIKey:     "test-key",
		Endpoint:   ts.URL,
		APIVersion: "2024-05-01-preview",
		Deployment: "gpt-4o",
	}, nil)

	content, err := c.Complete(context.Background(), testMessages())
	require.NoError(t, err)
	assert.Equal(t, `{"transactions": []}`, content)

	assert.Equal(t, "/openai/deployments/gpt-4o/chat/completions", gotPath)
	assert.Equal(t, "2024-05-01-preview", gotVersion)
	assert.Equal(t, "test-key", gotKey)

	// deterministic sampling
	assert.Equal(t, float64(0), gotBody["temperature"])
	msgs, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 2)
	first := msgs[0].(map[string]any)
	assert.Equal(t, "system", first["role"])
}

func TestCompleteNon2xxIsCompletionFault(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "rate limited"}`, http.StatusTooManyRequests)
	}))
	defer ts.Close()

	c := NewClient(Config{
		APIKey:     "k",
		Endpoint:   ts.URL,
		APIVersion: "v",
		Deployment: "d",
	}, nil)

	_, err := c.Complete(context.Background(), testMessages())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrCompletion)
	assert.Contains(t, common.Detail(err), "429")
}

func TestCompleteEmptyChoicesIsCompletionFault(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": []}`))
	}))
	defer ts.Close()

	c := NewClient(Config{
		APIKey:     "k",
		Endpoint:   ts.URL,
		APIVersion: "v",
		Deployment: "d",
	}, nil)

	_, err := c.Complete(context.Background(), testMessages())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrCompletion)
}

func TestCompleteUnreachableEndpoint(t *testing.T) {
	c := NewClient(Config{
		APIKey:     "k",
		Endpoint:   "http://127.0.0.1:1",
		APIVersion: "v",
		Deployment: "d",
	}, nil)

	_, err := c.Complete(context.Background(), testMessages())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrCompletion)
}
