package restclient_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/restkit-go/restkit/restclient"
)

type widget struct {
	ID   int    `json:"id" xml:"id"`
	Name string `json:"name" xml:"name"`
}

func TestGet_DecodesJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"name":"sprocket"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := restclient.Get[widget](c, context.Background(), "/widgets/7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Data.ID != 7 || got.Data.Name != "sprocket" {
		t.Errorf("data = %+v", got.Data)
	}
	if got.Response == nil || got.Response.StatusCode != http.StatusOK {
		t.Error("raw response must accompany the decoded data")
	}
}

func TestGet_DecodesXML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(`<widget><id>3</id><name>gear</name></widget>`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := restclient.Get[widget](c, context.Background(), "/widgets/3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Data.ID != 3 || got.Data.Name != "gear" {
		t.Errorf("data = %+v", got.Data)
	}
}

func TestPost_EncodesAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("request content type = %q", ct)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1,"name":"widget"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := restclient.Post[widget](c, context.Background(), "/widgets", widget{Name: "widget"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Data.ID != 1 {
		t.Errorf("data = %+v", got.Data)
	}
}

func TestGet_RequestOptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Trace") != "abc" {
			t.Errorf("header = %q", r.Header.Get("X-Trace"))
		}
		if r.URL.Query().Get("page") != "2" {
			t.Errorf("query = %q", r.URL.RawQuery)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := restclient.Get[struct{}](c, context.Background(), "/widgets",
		restclient.WithHeader("X-Trace", "abc"),
		restclient.WithQueryParam("page", "2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGet_MalformedBodyIsDeserializationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := restclient.Get[widget](c, context.Background(), "/widgets/7")
	if !restclient.IsDeserialization(err) {
		t.Fatalf("expected deserialization error, got %v", err)
	}

	var typed *restclient.Error
	if !errors.As(err, &typed) {
		t.Fatal("expected a typed error")
	}
	if string(typed.Body) != `{"id":` {
		t.Errorf("raw body not preserved: %q", typed.Body)
	}
}

func TestGet_ErrorStatusStillDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"id":0,"name":"not found"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := restclient.Get[widget](c, context.Background(), "/widgets/999")
	if !restclient.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if got == nil {
		t.Fatal("error statuses with a body must still return a typed response")
	}
	if got.Data.Name != "not found" {
		t.Errorf("data = %+v", got.Data)
	}
}

func TestGet_UnknownContentTypeLeavesZeroData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("id,name\n7,sprocket\n"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := restclient.Get[widget](c, context.Background(), "/widgets.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Data != (widget{}) {
		t.Errorf("data = %+v, want zero value", got.Data)
	}
	if len(got.Response.Body) == 0 {
		t.Error("raw body must still be available")
	}
}

func TestDelete_NoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := restclient.Delete[struct{}](c, context.Background(), "/widgets/7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Response.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d", got.Response.StatusCode)
	}
}
