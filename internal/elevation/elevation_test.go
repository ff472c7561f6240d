package elevation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Sector035/chronocalc/internal/logging"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient()
	c.BaseURL = srv.URL
	return c, srv
}

func TestLookup(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("locations"); !strings.HasPrefix(got, "50.9423") {
			t.Errorf("locations = %q, want lat,lon pair", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"latitude":50.9423,"longitude":6.9579,"elevation":56}]}`))
	})
	defer srv.Close()

	height, err := c.Lookup(context.Background(), 50.9423, 6.9579)
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if height != 56 {
		t.Errorf("Lookup() = %v, want 56", height)
	}
}

func TestLookupErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			"server error",
			func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			"malformed JSON",
			func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"results":`))
			},
		},
		{
			"empty results",
			func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"results":[]}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, srv := newTestClient(tt.handler)
			defer srv.Close()

			if _, err := c.Lookup(context.Background(), 50.9423, 6.9579); err == nil {
				t.Error("Lookup() expected error")
			}
		})
	}
}

func TestResolveFallsBack(t *testing.T) {
	c := NewClient()
	c.BaseURL = "http://127.0.0.1:1" // nothing listens here

	height := Resolve(context.Background(), c, 50.9423, 6.9579, logging.Discard())
	if height != FallbackHeightM {
		t.Errorf("Resolve() = %v, want fallback %v", height, FallbackHeightM)
	}
}

func TestResolveUsesLookup(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[{"latitude":1,"longitude":2,"elevation":123.5}]}`))
	})
	defer srv.Close()

	height := Resolve(context.Background(), c, 1, 2, logging.Discard())
	if height != 123.5 {
		t.Errorf("Resolve() = %v, want 123.5", height)
	}
}
