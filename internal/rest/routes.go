package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RegisterRoutes builds the echo instance with all API routes and
// middleware attached.
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			h.log.Info("HTTP request",
				"method", v.Method,
				"path", v.URI,
				"status", v.Status,
				"duration_ms", v.Latency.Milliseconds(),
				"remote_addr", v.RemoteIP,
			)
			return nil
		},
	}))
	e.Use(h.authenticate)

	e.GET("/health", h.Health)

	api := e.Group("/api/v1")

	api.GET("/posts", h.Posts)
	api.POST("/posts", h.CreatePost)
	api.POST("/posts/generate-slug", h.GenerateSlug)
	api.GET("/posts/slug/:slug", h.PostBySlug)
	api.GET("/posts/:id", h.PostByID)
	api.PUT("/posts/:id", h.UpdatePost)
	api.DELETE("/posts/:id", h.DeletePost)

	api.GET("/categories", h.Categories)
	api.POST("/categories", h.CreateCategory)
	api.PUT("/categories/:id", h.UpdateCategory)
	api.DELETE("/categories/:id", h.DeleteCategory)
	api.GET("/categories/:slug/posts", h.CategoryPosts)

	api.GET("/comments", h.Comments)
	api.POST("/comments", h.CreateComment)
	api.PUT("/comments/:id", h.UpdateComment)
	api.DELETE("/comments/:id", h.DeleteComment)

	api.GET("/likes", h.LikeStatus)
	api.POST("/likes", h.ToggleLike)

	return e
}

// Health handles GET /health
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
