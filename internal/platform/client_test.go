package platform

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const aliasResponse = `aliases:
  - name: web-prod
    host: web1.nimbushost.io
    user: deploy
`

func TestFetchAliases(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Write([]byte(aliasResponse))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok_123")
	doc, err := c.FetchAliases(context.Background())
	if err != nil {
		t.Fatalf("FetchAliases() error: %v", err)
	}

	if gotPath != "/v1/aliases" {
		t.Errorf("request path = %q, want %q", gotPath, "/v1/aliases")
	}
	if gotAuth != "Bearer tok_123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok_123")
	}
	if len(doc.Aliases) != 1 || doc.Aliases[0].Name != "web-prod" {
		t.Errorf("FetchAliases() = %+v, want one alias named web-prod", doc.Aliases)
	}
}

func TestFetchAliasesTrimsTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "//") {
			t.Errorf("request path contains a double slash: %q", r.URL.Path)
		}
		w.Write([]byte(aliasResponse))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "tok_123")
	if _, err := c.FetchAliases(context.Background()); err != nil {
		t.Fatalf("FetchAliases() error: %v", err)
	}
}

func TestFetchAliasesErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantSub string
	}{
		{"unauthorized", http.StatusUnauthorized, "", "authentication failed"},
		{"forbidden", http.StatusForbidden, "", "authentication failed"},
		{"server error", http.StatusInternalServerError, "", "unexpected response"},
		{"malformed document", http.StatusOK, "{{{", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, "tok_123")
			_, err := c.FetchAliases(context.Background())
			if err == nil {
				t.Fatal("FetchAliases() returned no error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("FetchAliases() error = %q, want it to contain %q", err, tt.wantSub)
			}
		})
	}
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/ping" {
			t.Errorf("request path = %q, want /v1/ping", r.URL.Path)
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok_123")
	if err := c.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error: %v", err)
	}
}
