package auth

import (
	"context"
	"encoding/base64"

	"github.com/restkit-go/restkit/restclient"
)

// Basic answers Basic challenges with a base64 credential pair. It is
// stateless and idempotent.
type Basic struct {
	Username string
	Password string
}

// compile-time assertion
var _ restclient.Authenticator = (*Basic)(nil)

// NewBasic creates a Basic authenticator.
func NewBasic(username, password string) *Basic {
	return &Basic{Username: username, Password: password}
}

// Matches reports whether resp carries a Basic challenge.
func (b *Basic) Matches(resp *restclient.Response) bool {
	return hasChallenge(resp, "Basic")
}

// Apply sets the Authorization header on req.
func (b *Basic) Apply(_ context.Context, req *restclient.Request, _ *restclient.Response) error {
	cred := base64.StdEncoding.EncodeToString([]byte(b.Username + ":" + b.Password))
	req.Header.Set("Authorization", "Basic "+cred)
	return nil
}
