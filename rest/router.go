package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewRouter wires the handler into an echo instance with the standard
// middleware chain.
func NewRouter(h *Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error.Error())
				slog.Error("request failed", attrs...)
			} else {
				slog.Info("request completed", attrs...)
			}
			return nil
		},
	}))

	e.GET("/health", h.Health)

	api := e.Group("/api")

	articles := api.Group("/articles")
	articles.GET("", h.ListArticles)
	articles.POST("", h.CreateArticle)
	articles.GET("/stats", h.GetStats)
	articles.GET("/:id", h.GetArticle)
	articles.PUT("/:id", h.UpdateArticle)
	articles.DELETE("/:id", h.DeleteArticle)
	articles.PATCH("/:id/status", h.ChangeArticleStatus)
	articles.POST("/:id/notify", h.NotifySubscribers)

	categories := api.Group("/categories")
	categories.GET("", h.ListCategories)
	categories.POST("", h.CreateCategory)
	categories.PUT("/:id", h.UpdateCategory)
	categories.DELETE("/:id", h.DeleteCategory)

	networks := api.Group("/networks")
	networks.GET("", h.ListNetworks)
	networks.POST("", h.CreateNetwork)
	networks.PUT("/:id", h.UpdateNetwork)
	networks.DELETE("/:id", h.DeleteNetwork)

	api.GET("/notifications", h.ListNotifications)
	api.POST("/import/articles", h.ImportArticles)

	return e
}
