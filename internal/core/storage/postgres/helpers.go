package postgres

import (
	"encoding/json"
	"fmt"
)

// marshalAttributes marshals a delivery attribute map to JSON for a jsonb
// column. Nil/empty maps produce nil (SQL NULL) rather than a JSON "null"
// or "{}" string.
func marshalAttributes(attrs map[string]string) ([]byte, error) {
	if len(attrs) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(attrs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal attributes: %w", err)
	}
	return data, nil
}

// marshalValidationErrors marshals the rendered violation list to JSON.
// Nil for valid records, so the column reads NULL instead of "[]".
func marshalValidationErrors(errs []string) ([]byte, error) {
	if len(errs) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(errs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal validation errors: %w", err)
	}
	return data, nil
}

// nullableJSON passes raw JSON through, mapping empty to SQL NULL.
func nullableJSON(raw json.RawMessage) []byte {
	if len(raw) == 0 {
		return nil
	}
	return raw
}
