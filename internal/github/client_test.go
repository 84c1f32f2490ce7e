package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, api, raw *httptest.Server) *Client {
	t.Helper()
	return NewClient("skipper", "voyages", "main", 5*time.Second,
		WithBaseURLs(api.URL, raw.URL))
}

func TestListTree(t *testing.T) {
	t.Run("returns blob paths", func(t *testing.T) {
		api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/repos/skipper/voyages/git/trees/main" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			if r.URL.Query().Get("recursive") != "1" {
				t.Error("expected recursive=1")
			}
			w.Write([]byte(`{"tree":[
				{"path":"tracks","type":"tree"},
				{"path":"tracks/2024/day1.gpx","type":"blob"},
				{"path":"tracks/readme.md","type":"blob"}
			]}`))
		}))
		defer api.Close()
		raw := httptest.NewServer(http.NotFoundHandler())
		defer raw.Close()

		paths, err := newTestClient(t, api, raw).ListTree(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		expected := []string{"tracks/2024/day1.gpx", "tracks/readme.md"}
		if len(paths) != len(expected) {
			t.Fatalf("expected %d paths, got %d: %v", len(expected), len(paths), paths)
		}
		for i := range expected {
			if paths[i] != expected[i] {
				t.Errorf("path %d: expected %q, got %q", i, expected[i], paths[i])
			}
		}
	})

	t.Run("sends bearer token when configured", func(t *testing.T) {
		var gotAuth string
		api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{"tree":[]}`))
		}))
		defer api.Close()

		client := NewClient("skipper", "voyages", "main", 5*time.Second,
			WithBaseURLs(api.URL, api.URL), WithToken("secret"))

		if _, err := client.ListTree(context.Background()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if gotAuth != "Bearer secret" {
			t.Errorf("expected bearer token, got %q", gotAuth)
		}
	})

	t.Run("non-success status is an error", func(t *testing.T) {
		api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"API rate limit exceeded"}`, http.StatusForbidden)
		}))
		defer api.Close()

		client := NewClient("skipper", "voyages", "main", 5*time.Second,
			WithBaseURLs(api.URL, api.URL))

		if _, err := client.ListTree(context.Background()); err == nil {
			t.Error("expected an error for status 403")
		}
	})

	t.Run("invalid JSON is an error", func(t *testing.T) {
		api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>not json</html>"))
		}))
		defer api.Close()

		client := NewClient("skipper", "voyages", "main", 5*time.Second,
			WithBaseURLs(api.URL, api.URL))

		if _, err := client.ListTree(context.Background()); err == nil {
			t.Error("expected a decode error")
		}
	})
}

func TestFetchFile(t *testing.T) {
	t.Run("returns raw content", func(t *testing.T) {
		raw := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/skipper/voyages/main/tracks/2024/day1.gpx" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			w.Write([]byte("<gpx></gpx>"))
		}))
		defer raw.Close()
		api := httptest.NewServer(http.NotFoundHandler())
		defer api.Close()

		content, err := newTestClient(t, api, raw).FetchFile(context.Background(), "tracks/2024/day1.gpx")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if content != "<gpx></gpx>" {
			t.Errorf("unexpected content: %q", content)
		}
	})

	t.Run("escapes path segments", func(t *testing.T) {
		var gotPath string
		raw := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.EscapedPath()
			w.Write([]byte("ok"))
		}))
		defer raw.Close()
		api := httptest.NewServer(http.NotFoundHandler())
		defer api.Close()

		_, err := newTestClient(t, api, raw).FetchFile(context.Background(), "tracks/kieler woche/day 1.gpx")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if gotPath != "/skipper/voyages/main/tracks/kieler%20woche/day%201.gpx" {
			t.Errorf("unexpected request path: %s", gotPath)
		}
	})

	t.Run("missing file is an error", func(t *testing.T) {
		raw := httptest.NewServer(http.NotFoundHandler())
		defer raw.Close()
		api := httptest.NewServer(http.NotFoundHandler())
		defer api.Close()

		if _, err := newTestClient(t, api, raw).FetchFile(context.Background(), "tracks/missing.gpx"); err == nil {
			t.Error("expected an error for status 404")
		}
	})
}
