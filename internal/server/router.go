// internal/server/router.go
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"activities-api/internal/common/config"
	"activities-api/internal/common/logger"
	"activities-api/internal/common/observability"
	"activities-api/pkg/registry"
)

// NewRouter wires the activity endpoints, the static sign-up page, and the
// operational endpoints onto a gin engine.
func NewRouter(reg *registry.Registry, log logger.Logger, obs *observability.Observability, metricsCfg config.MetricsConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger(log))
	router.Use(Metrics(obs))

	handler := NewHandler(reg, log)

	router.GET("/activities", handler.ListActivities)
	router.POST("/activities/:name/signup", handler.Signup)
	router.POST("/activities/:name/unregister", handler.Unregister)

	router.GET("/health", handler.Health)
	if metricsCfg.Enabled {
		router.GET(metricsCfg.Path, gin.WrapH(promhttp.Handler()))
	}

	router.StaticFS("/static", staticFS())
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusTemporaryRedirect, "/static/index.html")
	})

	return router
}
