package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
)

func postSession(t *testing.T, h *Handler, endpoint, id string, handle echo.HandlerFunc) {
	t.Helper()
	e := echo.New()
	target := endpoint + "?tracks=" + url.QueryEscape(id)
	req := httptest.NewRequest(http.MethodPost, target, nil)
	rec := httptest.NewRecorder()

	if err := handle(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler failed for %q: %v", id, err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 for %q, got %d", id, rec.Code)
	}
}

func TestSessionSelectionRoundTrip(t *testing.T) {
	// Identifiers whose single percent-encoding still contains characters
	// that are significant to query or list parsing.
	ids := []string{
		"tracks/a,b.gpx",
		"tracks/50%.gpx",
		"tracks/a+b.gpx",
		"tracks/kieler woche/tag 1.gpx",
	}

	for _, id := range ids {
		t.Run(id, func(t *testing.T) {
			h := NewHandler(nil)

			postSession(t, h, "/api/session/select", id, h.HandleSelect)

			selected := h.session.Selected()
			if len(selected) != 1 || selected[0] != id {
				t.Fatalf("select of %q did not round-trip; selected: %v", id, selected)
			}

			postSession(t, h, "/api/session/deselect", id, h.HandleDeselect)

			if remaining := h.session.Selected(); len(remaining) != 0 {
				t.Errorf("deselect of %q failed; still selected: %v", id, remaining)
			}
		})
	}
}
