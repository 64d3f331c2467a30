package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

type CreateJobRequest struct {
	Title            string                 `json:"title" validate:"required"`
	Company          string                 `json:"company" validate:"required"`
	Location         string                 `json:"location"`
	EmploymentType   models.EmploymentType  `json:"employment_type"`
	ExperienceLevel  models.ExperienceLevel `json:"experience_level"`
	SalaryRange      string                 `json:"salary_range"`
	Skills           []string               `json:"skills"`
	Responsibilities []string               `json:"responsibilities"`
	Qualifications   []string               `json:"qualifications"`
	Benefits         []string               `json:"benefits"`
	Description      string                 `json:"description"`
	Deadline         *time.Time             `json:"deadline"`
}

// UpdateJobRequest uses pointers so absent fields are left untouched. There
// is deliberately no employer field: ownership never changes.
type UpdateJobRequest struct {
	Title            *string                 `json:"title"`
	Company          *string                 `json:"company"`
	Location         *string                 `json:"location"`
	EmploymentType   *models.EmploymentType  `json:"employment_type"`
	ExperienceLevel  *models.ExperienceLevel `json:"experience_level"`
	SalaryRange      *string                 `json:"salary_range"`
	Skills           []string                `json:"skills"`
	Responsibilities []string                `json:"responsibilities"`
	Qualifications   []string                `json:"qualifications"`
	Benefits         []string                `json:"benefits"`
	Description      *string                 `json:"description"`
	Deadline         *time.Time              `json:"deadline"`
}

// EmployerRef is the projected view of a job's owner. Email is only filled
// on single-job detail, never on public listings.
type EmployerRef struct {
	ID    models.UserID `json:"id"`
	Name  string        `json:"name"`
	Email string        `json:"email,omitempty"`
}

type JobResponse struct {
	ID               models.JobID           `json:"id"`
	Employer         EmployerRef            `json:"employer"`
	Title            string                 `json:"title"`
	Company          string                 `json:"company"`
	Location         string                 `json:"location"`
	EmploymentType   models.EmploymentType  `json:"employment_type"`
	ExperienceLevel  models.ExperienceLevel `json:"experience_level"`
	SalaryRange      string                 `json:"salary_range"`
	Skills           []string               `json:"skills"`
	Responsibilities []string               `json:"responsibilities"`
	Qualifications   []string               `json:"qualifications"`
	Benefits         []string               `json:"benefits"`
	Description      string                 `json:"description"`
	PostedAt         time.Time              `json:"posted_at"`
	Deadline         *time.Time             `json:"deadline,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
}
