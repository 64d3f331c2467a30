package handlers

import (
	"errors"
	"io"
	"net/http"
	"os"

	"jobboard_backend/internal/storage"
	appErrors "jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// FileHandler serves stored resume files.
type FileHandler struct {
	BaseHandler
	store storage.Storage
}

func NewFileHandler(store storage.Storage) *FileHandler {
	return &FileHandler{store: store}
}

func (h *FileHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/uploads/:file", h.Serve)
}

func (h *FileHandler) Serve(c *gin.Context) {
	name := c.Param("file")

	f, err := h.store.Open(name)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidFilename) {
			h.HandleError(c, appErrors.NewBadRequestError("Invalid file name"))
			return
		}
		if os.IsNotExist(err) {
			h.HandleError(c, appErrors.NewNotFoundError("File not found"))
			return
		}
		h.HandleError(c, appErrors.InternalError(err))
		return
	}
	defer f.Close()

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, f); err != nil {
		// Headers are already out; nothing useful left to do.
		return
	}
}
