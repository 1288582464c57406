package restclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/restkit-go/restkit/serializer"
)

// Client executes requests through the interceptor chain:
// timeout enforcement, then 401 re-authentication and serializer selection,
// then the net/http transport.
type Client struct {
	httpClient  *http.Client
	config      Config
	log         zerolog.Logger
	auth        *AuthPipeline
	serializers *serializer.Pipeline
	extra       []Interceptor
	tracing     bool
	handler     Handler
}

// Option customizes a Client.
type Option func(*Client)

// WithLogger sets the client logger. Defaults to a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithAuthPipeline installs the authentication pipeline attached to every
// request that does not carry its own.
func WithAuthPipeline(p *AuthPipeline) Option {
	return func(c *Client) { c.auth = p }
}

// WithSerializerPipeline replaces the default serializer pipeline attached
// to every request that does not carry its own.
func WithSerializerPipeline(p *serializer.Pipeline) Option {
	return func(c *Client) { c.serializers = p }
}

// WithTracing enables the OpenTelemetry trace interceptor as the outermost
// chain stage.
func WithTracing() Option {
	return func(c *Client) { c.tracing = true }
}

// WithInterceptors adds custom interceptors between tracing and the timeout
// stage, in the given order.
func WithInterceptors(interceptors ...Interceptor) Option {
	return func(c *Client) { c.extra = append(c.extra, interceptors...) }
}

// New creates a REST client with the given configuration.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.TLS != nil {
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, NewConfigurationError(err.Error())
		}
		if tlsCfg != nil {
			transport.TLSClientConfig = tlsCfg
		}
	}

	c := &Client{
		// Deadlines belong to the timeout interceptor; the transport
		// client carries none of its own.
		httpClient:  &http.Client{Transport: transport},
		config:      cfg,
		log:         zerolog.Nop(),
		serializers: serializer.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	var interceptors []Interceptor
	if c.tracing {
		interceptors = append(interceptors, NewTraceInterceptor())
	}
	interceptors = append(interceptors, c.extra...)
	interceptors = append(interceptors,
		NewTimeoutInterceptor(cfg.Timeout),
		NewPipelineInterceptor(c.log),
	)
	c.handler = chain(c.transport, interceptors...)

	return c, nil
}

// Do executes the request through the chain and classifies error statuses.
// The returned response is non-nil whenever the transport produced one, even
// alongside a classification error.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if err := c.prepare(req); err != nil {
		return nil, err
	}

	resp, err := c.handler(ctx, req)
	if err != nil {
		return resp, err
	}

	if classErr := ClassifyStatusCode(resp.StatusCode, resp.Body); classErr != nil {
		return resp, classErr
	}
	return resp, nil
}

// NewRequest builds a Request with an encoded body. Accepts nil, []byte,
// string, io.Reader, or any value to be JSON-encoded.
func (c *Client) NewRequest(method, path string, body any) (*Request, error) {
	req := &Request{
		Method:  method,
		Path:    path,
		Header:  make(http.Header),
		Options: NewOptions(),
	}
	if body == nil {
		return req, nil
	}

	switch v := body.(type) {
	case []byte:
		req.Body = v
	case string:
		req.Body = []byte(v)
		req.Header.Set("Content-Type", "text/plain")
	case io.Reader:
		data, err := io.ReadAll(v)
		if err != nil {
			return nil, NewValidationError(fmt.Sprintf("read body: %v", err))
		}
		req.Body = data
	default:
		text, err := serializer.JSON{}.Encode(v)
		if err != nil {
			return nil, NewValidationError(fmt.Sprintf("encode body: %v", err))
		}
		req.Body = []byte(text)
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (c *Client) Unwrap() *http.Client {
	return c.httpClient
}

// Close releases idle transport connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// prepare resolves the target URL and attaches defaults: headers, the
// client-level authentication and serializer pipelines.
func (c *Client) prepare(req *Request) error {
	if req.Header == nil {
		req.Header = make(http.Header)
	}
	if req.Options == nil {
		req.Options = NewOptions()
	}

	target := req.Path
	if c.config.BaseURL != "" && !strings.HasPrefix(req.Path, "http://") && !strings.HasPrefix(req.Path, "https://") {
		target = strings.TrimRight(c.config.BaseURL, "/") + "/" + strings.TrimLeft(req.Path, "/")
	}
	u, err := url.Parse(target)
	if err != nil {
		return NewValidationError(fmt.Sprintf("parse url: %v", err))
	}
	if len(req.Query) > 0 {
		q := u.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}
	req.url = u

	for k, v := range c.config.Headers {
		if req.Header.Get(k) == "" {
			req.Header.Set(k, v)
		}
	}
	if c.config.UserAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}

	if _, ok := req.Options.AuthPipeline(); !ok && c.auth != nil {
		req.Options.SetAuthPipeline(c.auth)
	}
	if _, ok := req.Options.SerializerPipeline(); !ok && c.serializers != nil {
		req.Options.SetSerializerPipeline(c.serializers)
	}
	return nil
}

// transport is the terminal chain stage bridging to net/http. It rebuilds
// the wire request on every invocation so a 401 retry sees the mutated
// headers and a fresh body reader.
func (c *Client) transport(ctx context.Context, req *Request) (*Response, error) {
	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.url.String(), body)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("create request: %v", err))
	}
	httpReq.Header = req.Header.Clone()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		switch {
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			return nil, NewTimeoutError(err)
		case ctx.Err() != nil:
			return nil, NewCanceledError(err)
		default:
			return nil, NewConnectionError(err)
		}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewConnectionError(fmt.Errorf("read response body: %w", err))
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Proto:      resp.Proto,
		Header:     resp.Header,
		Body:       raw,
	}, nil
}
