package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	BaseHandler
	jobService services.JobService
}

func NewJobHandler(jobService services.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs")
	{
		jobs.GET("", h.List)
		jobs.GET("/my", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleEmployer), h.ListMine)
		jobs.GET("/:id", h.Get)

		jobs.POST("", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleEmployer), h.Create)
		jobs.PUT("/:id", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleEmployer), h.Update)
		jobs.DELETE("/:id", middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleEmployer), h.Delete)
	}
}

func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobService.ListAll()
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) ListMine(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.ListByEmployer(userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobService.GetByID(models.JobID(c.Param("id")))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Update(models.JobID(c.Param("id")), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.jobService.Delete(models.JobID(c.Param("id")), userID); err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}
