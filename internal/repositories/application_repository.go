package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound      = errors.New("application not found")
	ErrApplicationAlreadyExists = errors.New("application already exists")
)

type ApplicationRepository interface {
	Create(app *models.Application) error
	FindByID(id models.ApplicationID) (*models.Application, error)
	FindByApplicant(applicantID models.UserID) ([]models.Application, error)
	FindByJob(jobID models.JobID) ([]models.Application, error)
	UpdateStatus(id models.ApplicationID, status models.ApplicationStatus) error
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(app *models.Application) error {
	var existing models.Application
	err := r.db.Where("job_id = ? AND applicant_id = ?", app.JobID, app.ApplicantID).
		First(&existing).Error
	if err == nil {
		return ErrApplicationAlreadyExists
	}

	return r.db.Create(app).Error
}

func (r *ApplicationRepositoryImpl) FindByID(id models.ApplicationID) (*models.Application, error) {
	var app models.Application
	err := r.db.First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByApplicant(applicantID models.UserID) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Preload("Job").
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindByJob(jobID models.JobID) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Preload("Applicant").
		Where("job_id = ?", jobID).
		Order("created_at DESC").Find(&apps).Error
	return apps, err
}

// UpdateStatus writes the status in a single atomic row update.
func (r *ApplicationRepositoryImpl) UpdateStatus(id models.ApplicationID, status models.ApplicationStatus) error {
	result := r.db.Model(&models.Application{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
