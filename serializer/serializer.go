package serializer

// Serializer encodes typed values to text documents and decodes text back
// into typed values.
type Serializer interface {
	// ContentType returns the canonical MIME type for this serializer.
	ContentType() string

	// Encode renders v as a text document.
	Encode(v any) (string, error)

	// Decode parses text into v, which must be a pointer.
	Decode(text string, v any) error
}
