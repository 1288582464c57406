package restclient

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"github.com/restkit-go/restkit/serializer"
)

// stubAuthenticator answers every matching challenge by stamping a header.
type stubAuthenticator struct {
	matches  bool
	applyErr error
	applied  int
}

func (s *stubAuthenticator) Matches(*Response) bool { return s.matches }

func (s *stubAuthenticator) Apply(_ context.Context, req *Request, _ *Response) error {
	s.applied++
	if s.applyErr != nil {
		return s.applyErr
	}
	req.Header.Set("Authorization", "Stub credential")
	return nil
}

// scriptedHandler returns the given responses in order, then repeats the last.
func scriptedHandler(calls *int, responses ...*Response) Handler {
	return func(ctx context.Context, req *Request) (*Response, error) {
		i := *calls
		*calls++
		if i >= len(responses) {
			i = len(responses) - 1
		}
		return responses[i], nil
	}
}

func respWithStatus(code int) *Response {
	return &Response{StatusCode: code, Header: make(http.Header)}
}

func authedRequest(a ...Authenticator) *Request {
	req := &Request{Header: make(http.Header), Options: NewOptions()}
	req.Options.SetAuthPipeline(NewAuthPipeline(a...))
	return req
}

func TestPipeline_RetriesOnceAfterChallenge(t *testing.T) {
	auth := &stubAuthenticator{matches: true}
	req := authedRequest(auth)

	var calls int
	h := NewPipelineInterceptor(zerolog.Nop()).Intercept(
		scriptedHandler(&calls, respWithStatus(401), respWithStatus(200)))

	resp, err := h(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if calls != 2 {
		t.Errorf("handler called %d times, want 2", calls)
	}
	if auth.applied != 1 {
		t.Errorf("authenticator applied %d times, want 1", auth.applied)
	}
	if req.Header.Get("Authorization") != "Stub credential" {
		t.Error("authenticator must mutate the request header")
	}
}

// A 401 on the retried request is returned as-is; the challenge round runs at
// most once per request.
func TestPipeline_SecondChallengeNotRetried(t *testing.T) {
	auth := &stubAuthenticator{matches: true}
	req := authedRequest(auth)

	var calls int
	h := NewPipelineInterceptor(zerolog.Nop()).Intercept(
		scriptedHandler(&calls, respWithStatus(401), respWithStatus(401)))

	resp, err := h(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
	if calls != 2 {
		t.Errorf("handler called %d times, want 2", calls)
	}
	if auth.applied != 1 {
		t.Errorf("authenticator applied %d times, want 1", auth.applied)
	}
}

func TestPipeline_NoMatchReturnsOriginal(t *testing.T) {
	auth := &stubAuthenticator{matches: false}
	req := authedRequest(auth)

	var calls int
	h := NewPipelineInterceptor(zerolog.Nop()).Intercept(
		scriptedHandler(&calls, respWithStatus(401)))

	resp, err := h(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}
}

func TestPipeline_FirstMatchWins(t *testing.T) {
	skipped := &stubAuthenticator{matches: false}
	first := &stubAuthenticator{matches: true}
	second := &stubAuthenticator{matches: true}
	req := authedRequest(skipped, first, second)

	var calls int
	h := NewPipelineInterceptor(zerolog.Nop()).Intercept(
		scriptedHandler(&calls, respWithStatus(401), respWithStatus(200)))

	if _, err := h(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.applied != 1 || second.applied != 0 || skipped.applied != 0 {
		t.Errorf("applied counts = %d/%d/%d, want 1/0/0",
			first.applied, second.applied, skipped.applied)
	}
}

func TestPipeline_ApplyErrorPropagates(t *testing.T) {
	want := NewChallengeError("missing nonce")
	auth := &stubAuthenticator{matches: true, applyErr: want}
	req := authedRequest(auth)

	var calls int
	h := NewPipelineInterceptor(zerolog.Nop()).Intercept(
		scriptedHandler(&calls, respWithStatus(401)))

	resp, err := h(context.Background(), req)
	if !errors.Is(err, want) && !IsChallenge(err) {
		t.Fatalf("expected challenge error, got %v", err)
	}
	if resp != nil {
		t.Error("failed challenge round must not return a response")
	}
	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}
}

func TestPipeline_NoAuthPipelineSkipsChallenge(t *testing.T) {
	req := &Request{Header: make(http.Header), Options: NewOptions()}

	var calls int
	h := NewPipelineInterceptor(zerolog.Nop()).Intercept(
		scriptedHandler(&calls, respWithStatus(401)))

	resp, err := h(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 401 || calls != 1 {
		t.Errorf("status = %d, calls = %d; want 401 after a single call", resp.StatusCode, calls)
	}
}

func TestPipeline_SelectsSerializerInHeaderOrder(t *testing.T) {
	req := &Request{Header: make(http.Header), Options: NewOptions()}
	req.Options.SetSerializerPipeline(serializer.Default())

	resp := respWithStatus(200)
	resp.Header.Add("Content-Type", "application/octet-stream")
	resp.Header.Add("Content-Type", "application/xml")
	resp.Header.Add("Content-Type", "application/json")

	h := NewPipelineInterceptor(zerolog.Nop()).Intercept(
		func(ctx context.Context, r *Request) (*Response, error) { return resp, nil })
	if _, err := h(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s, ok := req.Options.SelectedSerializer()
	if !ok {
		t.Fatal("expected a selected serializer")
	}
	// The first registered value wins, not the last.
	if s.ContentType() != "application/xml" {
		t.Errorf("selected %s, want application/xml", s.ContentType())
	}
}

func TestPipeline_NoSerializerMatchLeavesSelectionEmpty(t *testing.T) {
	req := &Request{Header: make(http.Header), Options: NewOptions()}
	req.Options.SetSerializerPipeline(serializer.Default())

	resp := respWithStatus(200)
	resp.Header.Set("Content-Type", "application/json; charset=utf-8")

	h := NewPipelineInterceptor(zerolog.Nop()).Intercept(
		func(ctx context.Context, r *Request) (*Response, error) { return resp, nil })
	if _, err := h(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Parameterized content types are not stripped before lookup.
	if _, ok := req.Options.SelectedSerializer(); ok {
		t.Error("parameterized content type must not match a bare registration")
	}
}

func TestPipeline_SerializerSelectedAfterRetry(t *testing.T) {
	auth := &stubAuthenticator{matches: true}
	req := authedRequest(auth)
	req.Options.SetSerializerPipeline(serializer.Default())

	ok := respWithStatus(200)
	ok.Header.Set("Content-Type", "application/json")

	var calls int
	h := NewPipelineInterceptor(zerolog.Nop()).Intercept(
		scriptedHandler(&calls, respWithStatus(401), ok))

	if _, err := h(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, found := req.Options.SelectedSerializer()
	if !found || s.ContentType() != "application/json" {
		t.Error("selection must reflect the retried response")
	}
}

func TestPipeline_TransportErrorPassesThrough(t *testing.T) {
	want := NewConnectionError(errors.New("refused"))
	h := NewPipelineInterceptor(zerolog.Nop()).Intercept(
		func(ctx context.Context, r *Request) (*Response, error) { return nil, want })

	_, err := h(context.Background(), &Request{Options: NewOptions()})
	if !IsConnection(err) {
		t.Fatalf("expected connection error, got %v", err)
	}
}
