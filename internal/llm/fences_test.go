package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain json untouched", `{"a":1}`, `{"a":1}`},
		{"plain json trimmed", "  {\"a\":1}\n", `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"uppercase tag", "```JSON\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"payload on fence line", "```{\"a\":1}```", `{"a":1}`},
		{"array payload", "```json\n[1,2]\n```", `[1,2]`},
		{"prose untouched", "Sure, here's the data: ...", "Sure, here's the data: ..."},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFences(tt.in))
		})
	}
}

// strip_and_parse(fence_wrap(v)) must parse identically to v.
func TestStripCodeFencesRoundTrip(t *testing.T) {
	valid := `{"account_details":{"account_holder":"Jane"},"transactions":[{"date":"2024-01-15","debit":54.2}]}`

	var direct, stripped map[string]any
	require.NoError(t, json.Unmarshal([]byte(valid), &direct))

	wrapped := "```json\n" + valid + "\n```"
	require.NoError(t, json.Unmarshal([]byte(StripCodeFences(wrapped)), &stripped))

	assert.Equal(t, direct, stripped)
}
