package restclient

import "context"

// Handler executes a request and produces a response.
type Handler func(ctx context.Context, req *Request) (*Response, error)

// Interceptor wraps a Handler with additional behavior. Request mutation
// happens outside-in, response processing inside-out.
type Interceptor interface {
	Intercept(next Handler) Handler
}

// chain composes interceptors around a terminal handler at construction
// time. The first interceptor listed becomes the outermost stage.
func chain(terminal Handler, interceptors ...Interceptor) Handler {
	h := terminal
	for i := len(interceptors) - 1; i >= 0; i-- {
		h = interceptors[i].Intercept(h)
	}
	return h
}
