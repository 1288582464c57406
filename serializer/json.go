package serializer

import (
	"encoding/json"
	"fmt"
)

// JSON serializes values as UTF-8 JSON documents using the standard mapping
// rules (struct tags for field names, null for nil).
type JSON struct{}

// ContentType returns the canonical MIME type for JSON.
func (JSON) ContentType() string {
	return "application/json"
}

// Encode renders v as a JSON document.
func (JSON) Encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("serializer: %w: %v", ErrEncode, err)
	}
	return string(data), nil
}

// Decode parses a JSON document into v.
func (JSON) Decode(text string, v any) error {
	if err := json.Unmarshal([]byte(text), v); err != nil {
		return &DecodeError{Err: err, Raw: text}
	}
	return nil
}
