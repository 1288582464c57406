package auth

import (
	"context"

	"github.com/restkit-go/restkit/restclient"
)

// Bearer answers Bearer challenges with an opaque token. It is stateless and
// idempotent.
type Bearer struct {
	Token string
}

// compile-time assertion
var _ restclient.Authenticator = (*Bearer)(nil)

// NewBearer creates a Bearer authenticator.
func NewBearer(token string) *Bearer {
	return &Bearer{Token: token}
}

// Matches reports whether resp carries a Bearer challenge.
func (b *Bearer) Matches(resp *restclient.Response) bool {
	return hasChallenge(resp, "Bearer")
}

// Apply sets the Authorization header on req.
func (b *Bearer) Apply(_ context.Context, req *restclient.Request, _ *restclient.Response) error {
	req.Header.Set("Authorization", "Bearer "+b.Token)
	return nil
}
