package api

import (
	"errors"
	"net/http"

	"tracklog/internal/server/service"

	"github.com/labstack/echo/v4"
)

// Handler contains the HTTP handlers for the tracklog API.
type Handler struct {
	svc     *service.TrackService
	session *service.MapSession
}

// NewHandler creates a handler over the track service and a fresh map
// session.
func NewHandler(svc *service.TrackService) *Handler {
	return &Handler{svc: svc, session: service.NewMapSession()}
}

// HandleTree handles GET /api/tree.
// Returns the full folder tree sorted by recording date, plus each file's
// first timestamp. An unreachable or empty repository yields an empty tree
// with status 200 so the UI can render a "no tracks" state.
func (h *Handler) HandleTree(c echo.Context) error {
	tree, dates := h.svc.LoadTree(c.Request().Context())

	return c.JSON(http.StatusOK, echo.Map{
		"tree":  tree,
		"dates": dates,
		"empty": tree.IsEmpty(),
	})
}

// HandleTrackInfo handles GET /api/track/info?path=...
// Returns duration and distance for a single track. Malformed GPX degrades
// to zero values rather than an error.
func (h *Handler) HandleTrackInfo(c echo.Context) error {
	path := c.QueryParam("path")
	if path == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "path query parameter is required",
		})
	}

	info, err := h.svc.Info(c.Request().Context(), path)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, info)
}

// HandleTrackGeometry handles GET /api/track/geometry?path=...
// Returns the track's point segments together with the session-assigned
// color, and registers the track as loaded.
func (h *Handler) HandleTrackGeometry(c echo.Context) error {
	path := c.QueryParam("path")
	if path == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "path query parameter is required",
		})
	}

	layer, err := h.svc.Geometry(c.Request().Context(), path)
	if err != nil {
		return mapServiceError(c, err)
	}

	h.session.RegisterTrack(path)

	resp := echo.Map{
		"path":     path,
		"color":    h.session.AssignColor(path),
		"segments": layer.Segments(),
	}
	if start, ok := layer.StartPoint(); ok {
		resp["start"] = start
	}
	if end, ok := layer.EndPoint(); ok {
		resp["end"] = end
	}
	return c.JSON(http.StatusOK, resp)
}

// HandleRecent handles GET /api/recent.
// Returns the most recently recorded track and the boat position marker.
func (h *Handler) HandleRecent(c echo.Context) error {
	recent, err := h.svc.Recent(c.Request().Context())
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, recent)
}

// HandleSelection handles GET /api/session/selection.
// Returns the loaded tracks as a comma-separated percent-encoded list, the
// same shape the UI persists in the URL.
func (h *Handler) HandleSelection(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"session":  h.session.ID,
		"selected": EncodeSelection(h.session.Selected()),
	})
}

// HandleSelect handles POST /api/session/select?tracks=...
// The list is read from the raw query so identifiers containing commas or
// percent signs survive intact.
func (h *Handler) HandleSelect(c echo.Context) error {
	for _, id := range ParseSelection(rawQueryValue(c, "tracks")) {
		h.session.RegisterTrack(id)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"selected": EncodeSelection(h.session.Selected()),
	})
}

// HandleDeselect handles POST /api/session/deselect?tracks=...
func (h *Handler) HandleDeselect(c echo.Context) error {
	for _, id := range ParseSelection(rawQueryValue(c, "tracks")) {
		h.session.UnregisterTrack(id)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"selected": EncodeSelection(h.session.Selected()),
	})
}

// HandleHealth handles GET /health.
func (h *Handler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "healthy",
		"session": h.session.ID,
	})
}

// mapServiceError translates service-layer errors into HTTP responses.
func mapServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrTrackNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "track not found"})
	case errors.Is(err, service.ErrEmptyTree):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no tracks available"})
	case errors.Is(err, service.ErrMalformedTrack):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "track content is not valid GPX"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
}
