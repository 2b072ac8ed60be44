// Package httpapi exposes the record store and statistics over JSON HTTP.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/jobtrack/internal/logging"
	"github.com/example/jobtrack/internal/ports/primary"
	"github.com/example/jobtrack/internal/version"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(apps primary.ApplicationService, stats primary.StatsService, logger *logging.Logger) *gin.Engine {
	if logger == nil {
		logger = logging.Nop()
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		RequestID(),
		Logging(logger),
		Recovery(logger),
		Actor(),
	)

	r.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "not_found", "route not found", nil)
	})

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "version": version.String()})
	})
	NewHandler(apps, stats).RegisterRoutes(api)

	return r
}
