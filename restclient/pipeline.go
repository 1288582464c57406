package restclient

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
)

// PipelineInterceptor drives 401 re-authentication and response serializer
// selection. It reads the attached pipelines from the request's Options bag
// and records the selected serializer back into it for the caller.
type PipelineInterceptor struct {
	log zerolog.Logger
}

// NewPipelineInterceptor builds the interceptor.
func NewPipelineInterceptor(log zerolog.Logger) *PipelineInterceptor {
	return &PipelineInterceptor{log: log}
}

// Intercept implements Interceptor.
func (p *PipelineInterceptor) Intercept(next Handler) Handler {
	return func(ctx context.Context, req *Request) (*Response, error) {
		resp, err := next(ctx, req)
		if err != nil {
			return resp, err
		}

		if resp.StatusCode == http.StatusUnauthorized {
			if ap, ok := req.Options.AuthPipeline(); ok {
				retried, rerr := p.reauthenticate(ctx, next, req, resp, ap)
				if rerr != nil {
					return nil, rerr
				}
				if retried != nil {
					resp = retried
				}
			}
		}

		p.selectSerializer(req, resp)
		return resp, nil
	}
}

// reauthenticate answers the first matching authenticator's challenge and
// re-issues the request exactly once. Further authenticators are not tried,
// even if the retried response is itself a 401. Returns nil when no
// authenticator matched.
func (p *PipelineInterceptor) reauthenticate(ctx context.Context, next Handler, req *Request, resp *Response, ap *AuthPipeline) (*Response, error) {
	for _, a := range ap.Authenticators() {
		if !a.Matches(resp) {
			continue
		}
		p.log.Debug().
			Str("method", req.Method).
			Str("path", req.Path).
			Msg("answering authentication challenge")
		if err := a.Apply(ctx, req, resp); err != nil {
			return nil, err
		}
		return next(ctx, req)
	}
	return nil, nil
}

// selectSerializer records the serializer registered for the first matching
// Content-Type value, in header order.
func (p *PipelineInterceptor) selectSerializer(req *Request, resp *Response) {
	sp, ok := req.Options.SerializerPipeline()
	if !ok {
		return
	}
	for _, ct := range resp.Header.Values("Content-Type") {
		if s, found := sp.Lookup(ct); found {
			req.Options.setSelectedSerializer(s)
			p.log.Debug().Str("content_type", ct).Msg("serializer selected")
			return
		}
	}
}
