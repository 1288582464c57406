package restclient

import (
	"context"
	"errors"
	"time"
)

// TimeoutInterceptor bounds a single request's lifetime independently of the
// transport's own limits. An explicit request timeout governs; requests
// without one get the interceptor default; NoTimeout disables the deadline
// for that request (the caller's context still applies).
type TimeoutInterceptor struct {
	// Default applies to requests without an explicit timeout.
	Default time.Duration
}

// NewTimeoutInterceptor builds the interceptor; def <= 0 falls back to
// DefaultTimeout unless it is NoTimeout.
func NewTimeoutInterceptor(def time.Duration) *TimeoutInterceptor {
	if def <= 0 && def != NoTimeout {
		def = DefaultTimeout
	}
	return &TimeoutInterceptor{Default: def}
}

// Intercept implements Interceptor.
func (t *TimeoutInterceptor) Intercept(next Handler) Handler {
	return func(ctx context.Context, req *Request) (*Response, error) {
		timeout := req.Timeout
		if timeout == 0 {
			timeout = t.Default
		}
		if timeout == NoTimeout {
			return next(ctx, req)
		}

		tctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		resp, err := next(tctx, req)
		if err == nil {
			return resp, nil
		}

		// The per-request deadline and the caller's signal race to cancel
		// the transport call; attribute the failure to whichever fired.
		if IsTimeout(err) || IsCanceled(err) {
			if ctx.Err() != nil {
				return nil, NewCanceledError(err)
			}
			if errors.Is(tctx.Err(), context.DeadlineExceeded) {
				return nil, NewTimeoutError(err)
			}
		}
		return resp, err
	}
}
