// Package auth provides authenticators for the restclient authentication
// pipeline: Basic, Bearer, and RFC 2617 Digest challenge/response.
//
// Each authenticator matches a WWW-Authenticate scheme and mutates the
// pending request's Authorization header when the pipeline asks it to answer
// a 401 challenge:
//
//	pipeline := restclient.NewAuthPipeline(
//	    auth.NewDigest("user", "secret"),
//	    auth.NewBasic("user", "secret"),
//	)
package auth
