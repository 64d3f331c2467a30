package handlers

import (
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/validator"
	appErrors "jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// BaseHandler carries the helpers shared by every handler.
type BaseHandler struct{}

// BindAndValidateJSON binds the JSON body and runs struct validation.
// Returns false after writing the error response.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		appErrors.HandleError(c, appErrors.NewBadRequestError("Invalid request body"))
		return false
	}
	if err := validator.Validate(obj); err != nil {
		appErrors.HandleError(c, err)
		return false
	}
	return true
}

// CurrentUserID returns the authenticated caller's id. Returns false after
// writing a 401 when the auth middleware did not run.
func (h *BaseHandler) CurrentUserID(c *gin.Context) (models.UserID, bool) {
	id := c.GetString(middleware.ContextUserIDKey)
	if id == "" {
		appErrors.HandleError(c, appErrors.NewUnauthorizedError("Authentication required"))
		return "", false
	}
	return models.UserID(id), true
}

func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	appErrors.HandleError(c, err)
}
