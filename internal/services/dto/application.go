package dto

import (
	"io"
	"time"

	"jobboard_backend/internal/models"
)

// ApplyRequest is bound from the multipart form; the resume file itself is
// passed alongside as a ResumeUpload.
type ApplyRequest struct {
	Job         models.JobID `form:"job" validate:"required"`
	FullName    string       `form:"fullName" validate:"required"`
	Email       string       `form:"email" validate:"required,email"`
	Phone       string       `form:"phone"`
	CoverLetter string       `form:"coverLetter"`
}

// ResumeUpload is the received resume stream plus its upload metadata.
type ResumeUpload struct {
	OriginalName string
	MimeType     string
	Size         int64
	Reader       io.Reader
}

type UpdateStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required"`
}

// JobRef is the projected view of the applied-to job in "my applications".
type JobRef struct {
	ID       models.JobID `json:"id"`
	Title    string       `json:"title"`
	Company  string       `json:"company"`
	PostedAt time.Time    `json:"posted_at"`
}

// ApplicantRef is the restricted view of an applicant shown to the job's
// employer: name and email, nothing else.
type ApplicantRef struct {
	ID    models.UserID `json:"id"`
	Name  string        `json:"name"`
	Email string        `json:"email"`
}

type ApplicationResponse struct {
	ID          models.ApplicationID     `json:"id"`
	JobID       models.JobID             `json:"job_id"`
	ApplicantID models.UserID            `json:"applicant_id"`
	FullName    string                   `json:"full_name"`
	Email       string                   `json:"email"`
	Phone       string                   `json:"phone"`
	CoverLetter string                   `json:"cover_letter"`
	Resume      models.ResumeFile        `json:"resume"`
	Status      models.ApplicationStatus `json:"status"`
	Job         *JobRef                  `json:"job,omitempty"`
	Applicant   *ApplicantRef            `json:"applicant,omitempty"`
	CreatedAt   time.Time                `json:"created_at"`
}
