package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/validator"
	appErrors "jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	BaseHandler
	appService   services.ApplicationService
	maxSize      int64
	allowedTypes []string
}

func NewApplicationHandler(appService services.ApplicationService, maxUploadSize int64, allowedTypes []string) *ApplicationHandler {
	return &ApplicationHandler{appService: appService, maxSize: maxUploadSize, allowedTypes: allowedTypes}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	apps := r.Group("/applications", middleware.AuthMiddleware())
	{
		apps.POST("", middleware.RequireRoles(models.UserRoleJobSeeker), h.Apply)
		apps.GET("/me", middleware.RequireRoles(models.UserRoleJobSeeker), h.ListMine)
		apps.GET("/job/:jobId", middleware.RequireRoles(models.UserRoleEmployer), h.ListForJob)
		apps.PUT("/:id/status", middleware.RequireRoles(models.UserRoleEmployer), h.UpdateStatus)
	}
}

// Apply accepts a multipart form with the application fields plus a "resume"
// file part.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if err := c.ShouldBind(&req); err != nil {
		h.HandleError(c, appErrors.NewBadRequestError("Invalid form data"))
		return
	}
	if err := validator.Validate(req); err != nil {
		h.HandleError(c, err)
		return
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		h.HandleError(c, appErrors.ErrResumeRequired)
		return
	}
	if h.maxSize > 0 && fileHeader.Size > h.maxSize {
		h.HandleError(c, appErrors.NewBadRequestError("Resume file is too large"))
		return
	}
	mimeType := fileHeader.Header.Get("Content-Type")
	if !h.typeAllowed(mimeType) {
		h.HandleError(c, appErrors.NewBadRequestError("Resume file type is not allowed"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleError(c, appErrors.InternalError(err))
		return
	}
	defer file.Close()

	resume := &dto.ResumeUpload{
		OriginalName: fileHeader.Filename,
		MimeType:     mimeType,
		Size:         fileHeader.Size,
		Reader:       file,
	}

	resp, err := h.appService.Apply(userID, req, resume)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// typeAllowed checks the declared content type against the configured list.
// An empty list allows everything.
func (h *ApplicationHandler) typeAllowed(mimeType string) bool {
	if len(h.allowedTypes) == 0 {
		return true
	}
	for _, t := range h.allowedTypes {
		if t == mimeType {
			return true
		}
	}
	return false
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	apps, err := h.appService.ListMine(userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	apps, err := h.appService.ListForJob(models.JobID(c.Param("jobId")), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.appService.UpdateStatus(models.ApplicationID(c.Param("id")), userID, req.Status)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
