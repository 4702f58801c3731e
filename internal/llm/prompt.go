package llm

import "strings"

const systemPrompt = "You are a financial document parser. " +
	"Return ONLY valid JSON with no explanations or surrounding text."

// exampleShape is the literal JSON shape the model is asked to fill in.
// It doubles as per-field documentation in the prompt itself.
const exampleShape = `{
  "account_details": {
    "account_holder": "John Doe",
    "address": {
      "line1": "221B Baker Street",
      "line2": "Flat 2",
      "city": "London",
      "state": "Greater London",
      "country": "United Kingdom",
      "postal_code": "NW1 6XE"
    },
    "account_number": "12345678",
    "account_type": "Checking",
    "currency": "GBP"
  },
  "transactions": [
    {
      "date": "2024-01-15",
      "description": "POS PURCHASE GROCERY STORE",
      "debit": 54.20,
      "balance": 1245.80
    },
    {
      "date": "2024-01-31",
      "description": "SALARY CREDIT",
      "credit": 3200.00,
      "balance": 4445.80
    }
  ]
}`

// SystemPrompt returns the fixed system instruction.
func SystemPrompt() string { return systemPrompt }

// BuildUserPrompt embeds the example JSON shape and the full extracted text.
// The text goes in verbatim; callers enforce any size limit beforehand.
func BuildUserPrompt(statementText string) string {
	var b strings.Builder
	b.WriteString("Extract structured data from this bank statement and return ONLY JSON matching this exact shape:\n\n")
	b.WriteString(exampleShape)
	b.WriteString("\n\nOmit fields that are not present in the statement. Keep transactions in statement order.\n\nBank Statement:\n")
	b.WriteString(statementText)
	return b.String()
}
