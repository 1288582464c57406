package serializer

import "strings"

// Registration binds a content-type token to a Serializer.
type Registration struct {
	ContentType string
	Serializer  Serializer
}

// Pipeline maps content-type tokens to serializers. Lookup is exact-string
// and case-insensitive.
type Pipeline struct {
	index map[string]Serializer
}

// NewPipeline builds a registry from the given registrations. Registrations
// whose content types differ only by case are rejected; on error nothing is
// registered.
func NewPipeline(regs ...Registration) (*Pipeline, error) {
	index := make(map[string]Serializer, len(regs))
	for _, reg := range regs {
		key := strings.ToLower(reg.ContentType)
		if _, exists := index[key]; exists {
			return nil, &ConfigError{Err: ErrDuplicateContentType, ContentType: reg.ContentType}
		}
		index[key] = reg.Serializer
	}
	return &Pipeline{index: index}, nil
}

// Default returns a pipeline with JSON and XML registered under the usual
// tokens.
func Default() *Pipeline {
	p, _ := NewPipeline(
		Registration{ContentType: "application/json", Serializer: JSON{}},
		Registration{ContentType: "text/json", Serializer: JSON{}},
		Registration{ContentType: "application/xml", Serializer: XML{}},
		Registration{ContentType: "text/xml", Serializer: XML{}},
	)
	return p
}

// Lookup returns the serializer registered under contentType.
func (p *Pipeline) Lookup(contentType string) (Serializer, bool) {
	if p == nil {
		return nil, false
	}
	s, ok := p.index[strings.ToLower(contentType)]
	return s, ok
}
