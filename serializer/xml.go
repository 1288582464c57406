package serializer

import (
	"encoding/xml"
	"fmt"
)

// XML serializes values as XML documents. Encoding emits no XML declaration,
// no default namespace, and no indentation; decoding tolerates comments,
// processing instructions, and insignificant whitespace.
type XML struct{}

// ContentType returns the canonical MIME type for XML.
func (XML) ContentType() string {
	return "application/xml"
}

// Encode renders v as an XML document.
func (XML) Encode(v any) (string, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("serializer: %w: %v", ErrEncode, err)
	}
	return string(data), nil
}

// Decode parses an XML document into v.
func (XML) Decode(text string, v any) error {
	if err := xml.Unmarshal([]byte(text), v); err != nil {
		return &DecodeError{Err: err, Raw: text}
	}
	return nil
}
