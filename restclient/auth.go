package restclient

import "context"

// Authenticator answers a challenge response by mutating the pending request.
//
// Matches must be a pure predicate over the response headers. Apply is only
// invoked after Matches reported true for that response.
type Authenticator interface {
	// Matches reports whether this authenticator can answer the challenge
	// carried by resp.
	Matches(resp *Response) bool

	// Apply mutates req (typically its Authorization header) to satisfy the
	// challenge in resp.
	Apply(ctx context.Context, req *Request, resp *Response) error
}

// AuthPipeline is an ordered collection of authenticators tried in insertion
// order when a request comes back 401 Unauthorized. Only the first matching
// authenticator per pass is applied.
type AuthPipeline struct {
	authenticators []Authenticator
}

// NewAuthPipeline builds a pipeline preserving the given trial order.
func NewAuthPipeline(authenticators ...Authenticator) *AuthPipeline {
	return &AuthPipeline{authenticators: authenticators}
}

// Add appends an authenticator at the end of the trial order.
func (p *AuthPipeline) Add(a Authenticator) *AuthPipeline {
	p.authenticators = append(p.authenticators, a)
	return p
}

// Authenticators returns the authenticators in trial order.
func (p *AuthPipeline) Authenticators() []Authenticator {
	return p.authenticators
}
