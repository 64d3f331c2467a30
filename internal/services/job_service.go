package services

import (
	"errors"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	appErrors "jobboard_backend/pkg/apperrors"
)

type JobService interface {
	Create(employerID models.UserID, req dto.CreateJobRequest) (*dto.JobResponse, error)
	GetByID(id models.JobID) (*dto.JobResponse, error)
	ListAll() ([]dto.JobResponse, error)
	ListByEmployer(employerID models.UserID) ([]dto.JobResponse, error)
	Update(id models.JobID, requesterID models.UserID, req dto.UpdateJobRequest) (*dto.JobResponse, error)
	Delete(id models.JobID, requesterID models.UserID) error
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

func (s *JobServiceImpl) Create(employerID models.UserID, req dto.CreateJobRequest) (*dto.JobResponse, error) {
	if req.EmploymentType != "" && !req.EmploymentType.Valid() {
		return nil, appErrors.ErrInvalidOperation("job", "Invalid employment type")
	}
	if req.ExperienceLevel != "" && !req.ExperienceLevel.Valid() {
		return nil, appErrors.ErrInvalidOperation("job", "Invalid experience level")
	}

	job := &models.Job{
		EmployerID:      employerID,
		Title:           req.Title,
		Company:         req.Company,
		Location:        req.Location,
		EmploymentType:  req.EmploymentType,
		ExperienceLevel: req.ExperienceLevel,
		SalaryRange:     req.SalaryRange,
		Description:     req.Description,
		Deadline:        req.Deadline,
	}
	job.SetSkills(req.Skills)
	job.SetResponsibilities(req.Responsibilities)
	job.SetQualifications(req.Qualifications)
	job.SetBenefits(req.Benefits)

	if err := s.jobRepo.Create(job); err != nil {
		return nil, appErrors.InternalError(err)
	}

	created, err := s.jobRepo.FindByID(job.ID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return toJobResponse(created, true), nil
}

func (s *JobServiceImpl) GetByID(id models.JobID) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, appErrors.ErrJobNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return toJobResponse(job, true), nil
}

func (s *JobServiceImpl) ListAll() ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.FindAll()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return toJobResponses(jobs, false), nil
}

func (s *JobServiceImpl) ListByEmployer(employerID models.UserID) ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.FindByEmployer(employerID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return toJobResponses(jobs, false), nil
}

// Update mutates only the fields present in the request. The employer id is
// never touched: ownership is fixed at creation.
func (s *JobServiceImpl) Update(id models.JobID, requesterID models.UserID, req dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, appErrors.ErrJobNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if job.EmployerID != requesterID {
		return nil, appErrors.ErrNotJobOwner
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.EmploymentType != nil {
		if !req.EmploymentType.Valid() {
			return nil, appErrors.ErrInvalidOperation("job", "Invalid employment type")
		}
		job.EmploymentType = *req.EmploymentType
	}
	if req.ExperienceLevel != nil {
		if !req.ExperienceLevel.Valid() {
			return nil, appErrors.ErrInvalidOperation("job", "Invalid experience level")
		}
		job.ExperienceLevel = *req.ExperienceLevel
	}
	if req.SalaryRange != nil {
		job.SalaryRange = *req.SalaryRange
	}
	if req.Skills != nil {
		job.SetSkills(req.Skills)
	}
	if req.Responsibilities != nil {
		job.SetResponsibilities(req.Responsibilities)
	}
	if req.Qualifications != nil {
		job.SetQualifications(req.Qualifications)
	}
	if req.Benefits != nil {
		job.SetBenefits(req.Benefits)
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Deadline != nil {
		job.Deadline = req.Deadline
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return toJobResponse(job, true), nil
}

// Delete removes the job row only. Existing applications keep their stored
// job id and are served as-is.
func (s *JobServiceImpl) Delete(id models.JobID, requesterID models.UserID) error {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return appErrors.ErrJobNotFound
		}
		return appErrors.InternalError(err)
	}

	if job.EmployerID != requesterID {
		return appErrors.ErrNotJobOwner
	}

	if err := s.jobRepo.Delete(id); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}

// toJobResponse projects a job for the API. withEmail controls whether the
// employer's email is exposed; only single-job detail includes it.
func toJobResponse(job *models.Job, withEmail bool) *dto.JobResponse {
	resp := &dto.JobResponse{
		ID:               job.ID,
		Title:            job.Title,
		Company:          job.Company,
		Location:         job.Location,
		EmploymentType:   job.EmploymentType,
		ExperienceLevel:  job.ExperienceLevel,
		SalaryRange:      job.SalaryRange,
		Skills:           job.GetSkills(),
		Responsibilities: job.GetResponsibilities(),
		Qualifications:   job.GetQualifications(),
		Benefits:         job.GetBenefits(),
		Description:      job.Description,
		PostedAt:         job.PostedAt,
		Deadline:         job.Deadline,
		CreatedAt:        job.CreatedAt,
	}
	resp.Employer.ID = job.EmployerID
	if job.Employer != nil {
		resp.Employer.Name = job.Employer.Name
		if withEmail {
			resp.Employer.Email = job.Employer.Email
		}
	}
	return resp
}

func toJobResponses(jobs []models.Job, withEmail bool) []dto.JobResponse {
	out := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, *toJobResponse(&jobs[i], withEmail))
	}
	return out
}
