package llm

// BuildStatementJSONSchema returns a permissive JSON-Schema (draft 2020-12
// subset) for the model output as a generic map. It constrains types only:
// every field is optional, null is tolerated, and unknown fields are
// allowed. A mismatch is an observability signal, never a request failure.
func BuildStatementJSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"account_details": map[string]any{
				"type": []any{"object", "null"},
				"properties": map[string]any{
					"account_holder": strProp(),
					"address": map[string]any{
						"type": []any{"object", "null"},
						"properties": map[string]any{
							"line1":       strProp(),
							"line2":       strProp(),
							"city":        strProp(),
							"state":       strProp(),
							"country":     strProp(),
							"postal_code": strProp(),
						},
					},
					"account_number": strProp(),
					"account_type":   strProp(),
					"currency":       strProp(),
				},
			},
			"transactions": map[string]any{
				"type": []any{"array", "null"},
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"date":        strProp(),
						"description": strProp(),
						"debit":       numProp(),
						"credit":      numProp(),
						"balance":     numProp(),
					},
				},
			},
		},
	}
}

func strProp() map[string]any {
	return map[string]any{"type": []any{"string", "null"}}
}

func numProp() map[string]any {
	return map[string]any{"type": []any{"number", "null"}}
}
