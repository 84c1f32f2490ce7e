package api

import (
	"tracklog/internal/server/config"
	"tracklog/internal/server/web"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SetupRouter creates and configures the echo router with all routes and
// middleware.
func SetupRouter(handler *Handler, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))
	e.Use(RequestLogger())

	// Every tree load fans out one GitHub request per track, so the
	// tree endpoint is rate-limited to protect the API quota.
	treeLimiter := NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	e.GET("/health", handler.HandleHealth)

	e.GET("/api/tree", handler.HandleTree, treeLimiter.Middleware())
	e.GET("/api/recent", handler.HandleRecent, treeLimiter.Middleware())

	e.GET("/api/track/info", handler.HandleTrackInfo)
	e.GET("/api/track/geometry", handler.HandleTrackGeometry)

	e.GET("/api/session/selection", handler.HandleSelection)
	e.POST("/api/session/select", handler.HandleSelect)
	e.POST("/api/session/deselect", handler.HandleDeselect)

	// Embedded map UI
	e.FileFS("/", "static/index.html", web.Assets)
	e.StaticFS("/static", echo.MustSubFS(web.Assets, "static"))

	return e
}
