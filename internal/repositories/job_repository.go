package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id models.JobID) (*models.Job, error)
	// FindAll returns every job, newest first. The ordering is part of the
	// API contract.
	FindAll() ([]models.Job, error)
	FindByEmployer(employerID models.UserID) ([]models.Job, error)
	Update(job *models.Job) error
	Delete(id models.JobID) error
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id models.JobID) (*models.Job, error) {
	var job models.Job
	err := r.db.Preload("Employer").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindAll() ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Preload("Employer").Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindByEmployer(employerID models.UserID) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Preload("Employer").
		Where("employer_id = ?", employerID).
		Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) Update(job *models.Job) error {
	result := r.db.Save(job)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(id models.JobID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Job{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}
