package restclient

import (
	"net/http"
	"net/url"
	"time"
)

// NoTimeout disables the per-request deadline entirely. The request is then
// bounded only by the caller's context.
const NoTimeout time.Duration = -1

// DefaultTimeout applies to requests that carry no explicit timeout.
const DefaultTimeout = 100 * time.Second

// Request describes an outbound HTTP request travelling through the
// interceptor chain. The chain may mutate Header in place (notably
// Authorization during a 401 round); everything else belongs to the caller
// until the request is handed to Client.Do.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, PATCH, DELETE, etc).
	Method string
	// Path is appended to the client's BaseURL. Can be a full URL if
	// BaseURL is empty.
	Path string
	// Query are URL query parameters.
	Query map[string]string
	// Header holds the request headers.
	Header http.Header
	// Body is the encoded request body, nil when absent.
	Body []byte
	// Timeout bounds this request. Zero means the client default applies;
	// NoTimeout disables the deadline.
	Timeout time.Duration
	// Options carries out-of-band request metadata: the attached
	// authentication and serializer pipelines, and after the call the
	// selected serializer.
	Options *Options

	// url is the resolved target, set by the client before the chain runs.
	url *url.URL
}

// URL returns the resolved target URI, nil before Client.Do.
func (r *Request) URL() *url.URL {
	return r.url
}

// RequestURI returns the resolved path and query, falling back to Path when
// the request has not been resolved yet.
func (r *Request) RequestURI() string {
	if r.url != nil {
		return r.url.RequestURI()
	}
	return r.Path
}

// Response is the raw result of one transport invocation. A request retried
// after a 401 produces a fresh Response that supersedes the first.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Status is the status line as sent by the server, e.g. "200 OK".
	Status string
	// Proto is the protocol version, e.g. "HTTP/1.1".
	Proto string
	// Header holds the response headers.
	Header http.Header
	// Body is the raw response body.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}
