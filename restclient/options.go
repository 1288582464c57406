package restclient

import "github.com/restkit-go/restkit/serializer"

// Well-known keys in the per-request Options bag.
const (
	optAuthPipeline       = "restkit.auth.pipeline"
	optSerializerPipeline = "restkit.serializer.pipeline"
	optSelectedSerializer = "restkit.serializer.selected"
)

// Options is a per-request key-value side channel. The caller attaches
// pipelines through it before the call and reads the selected serializer
// back after the call. It is never wire-visible and belongs to a single
// request.
type Options struct {
	values map[string]any
}

// NewOptions returns an empty bag.
func NewOptions() *Options {
	return &Options{values: make(map[string]any)}
}

// Set stores a value under key.
func (o *Options) Set(key string, v any) {
	if o.values == nil {
		o.values = make(map[string]any)
	}
	o.values[key] = v
}

// Get returns the value stored under key.
func (o *Options) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// SetAuthPipeline attaches an authentication pipeline to the request.
func (o *Options) SetAuthPipeline(p *AuthPipeline) {
	o.Set(optAuthPipeline, p)
}

// AuthPipeline returns the attached authentication pipeline.
func (o *Options) AuthPipeline() (*AuthPipeline, bool) {
	v, ok := o.Get(optAuthPipeline)
	if !ok {
		return nil, false
	}
	p, ok := v.(*AuthPipeline)
	return p, ok && p != nil
}

// SetSerializerPipeline attaches a serializer pipeline to the request.
func (o *Options) SetSerializerPipeline(p *serializer.Pipeline) {
	o.Set(optSerializerPipeline, p)
}

// SerializerPipeline returns the attached serializer pipeline.
func (o *Options) SerializerPipeline() (*serializer.Pipeline, bool) {
	v, ok := o.Get(optSerializerPipeline)
	if !ok {
		return nil, false
	}
	p, ok := v.(*serializer.Pipeline)
	return p, ok && p != nil
}

// SelectedSerializer returns the serializer recorded for the response
// content type, if any.
func (o *Options) SelectedSerializer() (serializer.Serializer, bool) {
	v, ok := o.Get(optSelectedSerializer)
	if !ok {
		return nil, false
	}
	s, ok := v.(serializer.Serializer)
	return s, ok
}

func (o *Options) setSelectedSerializer(s serializer.Serializer) {
	o.Set(optSelectedSerializer, s)
}
