package pipeline

import (
	"strconv"
	"strings"

	"github.com/ashu-94/bank-ai-analyzer/internal/entity"
)

// SuccessMessage is the fixed status string attached to every shaped response.
const SuccessMessage = "Bank statement analyzed successfully."

// ShapeResponse maps the parsed completion document onto the response
// schema. Missing keys default to absent, unknown keys are dropped, and
// transactions keep their array order.
func ShapeResponse(doc map[string]any) *entity.BankStatementResponse {
	out := &entity.BankStatementResponse{
		Transactions: []entity.Transaction{},
		Message:      SuccessMessage,
	}
	if ad, ok := doc["account_details"].(map[string]any); ok {
		out.AccountDetails = shapeAccountDetails(ad)
	}
	if txs, ok := doc["transactions"].([]any); ok {
		for _, t := range txs {
			m, ok := t.(map[string]any)
			if !ok {
				continue
			}
			out.Transactions = append(out.Transactions, shapeTransaction(m))
		}
	}
	return out
}

func shapeAccountDetails(m map[string]any) *entity.AccountDetails {
	d := &entity.AccountDetails{
		AccountHolder: optString(m, "account_holder"),
		AccountNumber: optString(m, "account_number"),
		AccountType:   optString(m, "account_type"),
		Currency:      optString(m, "currency"),
	}
	if addr, ok := m["address"].(map[string]any); ok {
		d.Address = &entity.Address{
			Line1:      optString(addr, "line1"),
			Line2:      optString(addr, "line2"),
			City:       optString(addr, "city"),
			State:      optString(addr, "state"),
			Country:    optString(addr, "country"),
			PostalCode: optString(addr, "postal_code"),
		}
	}
	return d
}

func shapeTransaction(m map[string]any) entity.Transaction {
	return entity.Transaction{
		Date:        optString(m, "date"),
		Description: optString(m, "description"),
		Debit:       optNumber(m, "debit"),
		Credit:      optNumber(m, "credit"),
		Balance:     optNumber(m, "balance"),
	}
}

func optString(m map[string]any, key string) *string {
	switch v := m[key].(type) {
	case string:
		if s := strings.TrimSpace(v); s != "" {
			return &s
		}
	case float64:
		// account numbers occasionally come back as JSON numbers
		s := strconv.FormatFloat(v, 'f', -1, 64)
		return &s
	}
	return nil
}

func optNumber(m map[string]any, key string) *float64 {
	switch v := m[key].(type) {
	case float64:
		return &v
	case string:
		// models occasionally quote amounts, sometimes with separators
		s := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return &f
		}
	}
	return nil
}
