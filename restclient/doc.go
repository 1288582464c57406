// Package restclient implements an HTTP request pipeline with two pluggable
// extension points: challenge/response authentication and content-type-keyed
// serialization.
//
// A Client composes an ordered chain of interceptors around the net/http
// transport. The timeout interceptor enforces per-request deadlines; the
// pipeline interceptor answers 401 challenges through the attached
// authentication pipeline (one retry per original request) and records the
// serializer matching the response content type. Pipelines attach to a
// request through its Options bag, an out-of-band side channel that is never
// wire-visible.
//
// # Basic Usage
//
//	client, err := restclient.New(restclient.Config{
//	    BaseURL: "https://api.example.com",
//	    Timeout: 30 * time.Second,
//	}, restclient.WithAuthPipeline(
//	    restclient.NewAuthPipeline(auth.NewDigest("user", "secret")),
//	))
//
//	resp, err := restclient.Get[User](client, ctx, "/users/123")
package restclient
