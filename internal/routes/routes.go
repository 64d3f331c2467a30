package routes

import (
	"net/http"

	"jobboard_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// Setup mounts every route group on the engine root.
func Setup(r *gin.Engine, h *handlers.AppHandlers) {
	root := r.Group("")

	h.Auth.RegisterRoutes(root)
	h.Job.RegisterRoutes(root)
	h.Application.RegisterRoutes(root)
	h.Profile.RegisterRoutes(root)
	h.File.RegisterRoutes(root)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
