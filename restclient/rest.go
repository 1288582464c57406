package restclient

import (
	"context"
	"net/http"
	"time"

	"github.com/restkit-go/restkit/serializer"
)

// TypedResponse wraps a Response with a decoded body of type T. It is never
// mutated after being returned.
type TypedResponse[T any] struct {
	// Response is the raw response envelope.
	Response *Response
	// Data is the decoded response body, the zero value when no serializer
	// was selected for the response content type.
	Data T
}

// RequestOption configures a single request.
type RequestOption func(*Request)

// WithHeader adds a header to the request.
func WithHeader(key, value string) RequestOption {
	return func(r *Request) {
		if r.Header == nil {
			r.Header = make(http.Header)
		}
		r.Header.Set(key, value)
	}
}

// WithQueryParam adds a query parameter to the request.
func WithQueryParam(key, value string) RequestOption {
	return func(r *Request) {
		if r.Query == nil {
			r.Query = make(map[string]string)
		}
		r.Query[key] = value
	}
}

// WithTimeout sets the per-request timeout; NoTimeout disables the deadline.
func WithTimeout(d time.Duration) RequestOption {
	return func(r *Request) { r.Timeout = d }
}

// WithRequestAuth overrides the authentication pipeline for this request.
func WithRequestAuth(p *AuthPipeline) RequestOption {
	return func(r *Request) { r.Options.SetAuthPipeline(p) }
}

// WithRequestSerializers overrides the serializer pipeline for this request.
func WithRequestSerializers(p *serializer.Pipeline) RequestOption {
	return func(r *Request) { r.Options.SetSerializerPipeline(p) }
}

// Get performs a GET request and decodes the response into type T.
func Get[T any](c *Client, ctx context.Context, path string, opts ...RequestOption) (*TypedResponse[T], error) {
	return doTyped[T](c, ctx, http.MethodGet, path, nil, opts...)
}

// Post performs a POST request with an encoded body and decodes the response
// into type T.
func Post[T any](c *Client, ctx context.Context, path string, body any, opts ...RequestOption) (*TypedResponse[T], error) {
	return doTyped[T](c, ctx, http.MethodPost, path, body, opts...)
}

// Put performs a PUT request with an encoded body and decodes the response
// into type T.
func Put[T any](c *Client, ctx context.Context, path string, body any, opts ...RequestOption) (*TypedResponse[T], error) {
	return doTyped[T](c, ctx, http.MethodPut, path, body, opts...)
}

// Patch performs a PATCH request with an encoded body and decodes the
// response into type T.
func Patch[T any](c *Client, ctx context.Context, path string, body any, opts ...RequestOption) (*TypedResponse[T], error) {
	return doTyped[T](c, ctx, http.MethodPatch, path, body, opts...)
}

// Delete performs a DELETE request and decodes the response into type T.
func Delete[T any](c *Client, ctx context.Context, path string, opts ...RequestOption) (*TypedResponse[T], error) {
	return doTyped[T](c, ctx, http.MethodDelete, path, nil, opts...)
}

// doTyped executes a typed request and decodes the body through the
// serializer the pipeline interceptor selected for the response.
func doTyped[T any](c *Client, ctx context.Context, method, path string, body any, opts ...RequestOption) (*TypedResponse[T], error) {
	req, err := c.NewRequest(method, path, body)
	if err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(req)
	}

	resp, err := c.Do(ctx, req)
	if err != nil {
		if resp == nil {
			return nil, err
		}
		// Error statuses still carry a decodable payload sometimes; hand
		// it to the caller alongside the classification error.
		tr := &TypedResponse[T]{Response: resp}
		if s, ok := req.Options.SelectedSerializer(); ok && len(resp.Body) > 0 {
			var data T
			if decErr := s.Decode(string(resp.Body), &data); decErr == nil {
				tr.Data = data
			}
		}
		return tr, err
	}

	tr := &TypedResponse[T]{Response: resp}
	if s, ok := req.Options.SelectedSerializer(); ok && len(resp.Body) > 0 {
		if decErr := s.Decode(string(resp.Body), &tr.Data); decErr != nil {
			return nil, NewDeserializationError(decErr, resp.Body)
		}
	}
	return tr, nil
}
