package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemPrompt(t *testing.T) {
	s := SystemPrompt()
	assert.Contains(t, s, "financial document parser")
	assert.Contains(t, s, "ONLY valid JSON")
}

func TestBuildUserPrompt(t *testing.T) {
	text := "ACME BANK\nStatement Period: Jan 2024\n01/15 POS PURCHASE 54.20"
	p := BuildUserPrompt(text)

	// extracted text goes in verbatim
	assert.Contains(t, p, text)

	// the example shape is embedded literally
	for _, key := range []string{
		`"account_details"`, `"account_holder"`, `"address"`, `"postal_code"`,
		`"account_number"`, `"account_type"`, `"currency"`,
		`"transactions"`, `"date"`, `"description"`, `"debit"`, `"credit"`, `"balance"`,
	} {
		assert.Contains(t, p, key)
	}
}

func TestBuildUserPromptDeterministic(t *testing.T) {
	text := strings.Repeat("line\n", 100)
	assert.Equal(t, BuildUserPrompt(text), BuildUserPrompt(text))
}
