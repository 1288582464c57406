package auth

import (
	"context"
	"errors"

	"github.com/restkit-go/restkit/restclient"
)

// ErrOAuthNotImplemented is returned when OAuth signing is requested.
var ErrOAuthNotImplemented = errors.New("auth: oauth authentication is not implemented")

// OAuth holds OAuth 1.0 credentials. Signature negotiation is not
// implemented; Matches always reports false so the pipeline never selects
// this authenticator.
type OAuth struct {
	ConsumerKey    string
	ConsumerSecret string
	Token          string
	TokenSecret    string
}

// compile-time assertion
var _ restclient.Authenticator = (*OAuth)(nil)

// Matches always reports false.
func (o *OAuth) Matches(*restclient.Response) bool {
	return false
}

// Apply returns ErrOAuthNotImplemented.
func (o *OAuth) Apply(context.Context, *restclient.Request, *restclient.Response) error {
	return ErrOAuthNotImplemented
}
