package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResumeFile is the stored resume artifact. The file must be durably written
// before the owning Application row is created.
type ResumeFile struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	MimeType     string `json:"mime_type"`
	Path         string `json:"path"`
}

type Application struct {
	ID          ApplicationID     `gorm:"type:uuid;primaryKey" json:"id"`
	JobID       JobID             `gorm:"type:uuid;not null;index;uniqueIndex:idx_app_job_applicant" json:"job_id"`
	ApplicantID UserID            `gorm:"type:uuid;not null;index;uniqueIndex:idx_app_job_applicant" json:"applicant_id"`
	FullName    string            `gorm:"not null" json:"full_name"`
	Email       string            `gorm:"not null" json:"email"`
	Phone       string            `json:"phone"`
	CoverLetter string            `json:"cover_letter"`
	Resume      ResumeFile        `gorm:"embedded;embeddedPrefix:resume_" json:"resume"`
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Timestamps

	// Relations. Soft references: deleting a Job does not cascade here.
	Job       *Job  `gorm:"foreignKey:JobID" json:"-"`
	Applicant *User `gorm:"foreignKey:ApplicantID" json:"-"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = ApplicationID(uuid.NewString())
	}
	if a.Status == "" {
		a.Status = ApplicationStatusPending
	}
	return nil
}
