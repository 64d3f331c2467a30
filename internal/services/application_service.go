package services

import (
	"errors"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/storage"
	appErrors "jobboard_backend/pkg/apperrors"
)

type ApplicationService interface {
	Apply(applicantID models.UserID, req dto.ApplyRequest, resume *dto.ResumeUpload) (*dto.ApplicationResponse, error)
	ListMine(applicantID models.UserID) ([]dto.ApplicationResponse, error)
	ListForJob(jobID models.JobID, requesterID models.UserID) ([]dto.ApplicationResponse, error)
	UpdateStatus(id models.ApplicationID, requesterID models.UserID, status models.ApplicationStatus) (*dto.ApplicationResponse, error)
}

type ApplicationServiceImpl struct {
	appRepo repositories.ApplicationRepository
	jobRepo repositories.JobRepository
	store   storage.Storage
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	store storage.Storage,
) ApplicationService {
	return &ApplicationServiceImpl{appRepo: appRepo, jobRepo: jobRepo, store: store}
}

// Apply stores the resume first; if the file write fails, no application row
// is created.
func (s *ApplicationServiceImpl) Apply(applicantID models.UserID, req dto.ApplyRequest, resume *dto.ResumeUpload) (*dto.ApplicationResponse, error) {
	if resume == nil || resume.Reader == nil {
		return nil, appErrors.ErrResumeRequired
	}

	if _, err := s.jobRepo.FindByID(req.Job); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, appErrors.ErrJobNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	saved, err := s.store.Save(resume.OriginalName, resume.Reader)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	app := &models.Application{
		JobID:       req.Job,
		ApplicantID: applicantID,
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		CoverLetter: req.CoverLetter,
		Resume: models.ResumeFile{
			Filename:     saved.Filename,
			OriginalName: resume.OriginalName,
			MimeType:     resume.MimeType,
			Path:         saved.URL,
		},
		Status: models.ApplicationStatusPending,
	}
	if err := s.appRepo.Create(app); err != nil {
		s.store.Delete(saved.Filename)
		if errors.Is(err, repositories.ErrApplicationAlreadyExists) {
			return nil, appErrors.ErrApplicationAlreadyExists
		}
		return nil, appErrors.InternalError(err)
	}

	return toApplicationResponse(app), nil
}

func (s *ApplicationServiceImpl) ListMine(applicantID models.UserID) ([]dto.ApplicationResponse, error) {
	apps, err := s.appRepo.FindByApplicant(applicantID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	out := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		resp := toApplicationResponse(&apps[i])
		if apps[i].Job != nil {
			resp.Job = &dto.JobRef{
				ID:       apps[i].Job.ID,
				Title:    apps[i].Job.Title,
				Company:  apps[i].Job.Company,
				PostedAt: apps[i].Job.PostedAt,
			}
		}
		out = append(out, *resp)
	}
	return out, nil
}

// ListForJob verifies the requester owns the job before returning its
// applications.
func (s *ApplicationServiceImpl) ListForJob(jobID models.JobID, requesterID models.UserID) ([]dto.ApplicationResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, appErrors.ErrJobNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	if job.EmployerID != requesterID {
		return nil, appErrors.ErrNotJobOwner
	}

	apps, err := s.appRepo.FindByJob(jobID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	out := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		resp := toApplicationResponse(&apps[i])
		if apps[i].Applicant != nil {
			resp.Applicant = &dto.ApplicantRef{
				ID:    apps[i].Applicant.ID,
				Name:  apps[i].Applicant.Name,
				Email: apps[i].Applicant.Email,
			}
		}
		out = append(out, *resp)
	}
	return out, nil
}

// UpdateStatus checks in order: status value, application existence, job
// ownership, terminal state. Only then does it write.
func (s *ApplicationServiceImpl) UpdateStatus(id models.ApplicationID, requesterID models.UserID, status models.ApplicationStatus) (*dto.ApplicationResponse, error) {
	if !status.Valid() {
		return nil, appErrors.ErrInvalidApplicationStatus
	}

	app, err := s.appRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, appErrors.ErrApplicationNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	job, err := s.jobRepo.FindByID(app.JobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			// The job is gone but its applications remain; nobody owns them
			// anymore, so nobody may re-triage them.
			return nil, appErrors.ErrNotJobOwner
		}
		return nil, appErrors.InternalError(err)
	}
	if job.EmployerID != requesterID {
		return nil, appErrors.ErrNotJobOwner
	}

	if app.Status.Terminal() {
		return nil, appErrors.ErrApplicationFinalized
	}

	if err := s.appRepo.UpdateStatus(id, status); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, appErrors.ErrApplicationNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	app.Status = status
	return toApplicationResponse(app), nil
}

func toApplicationResponse(app *models.Application) *dto.ApplicationResponse {
	return &dto.ApplicationResponse{
		ID:          app.ID,
		JobID:       app.JobID,
		ApplicantID: app.ApplicantID,
		FullName:    app.FullName,
		Email:       app.Email,
		Phone:       app.Phone,
		CoverLetter: app.CoverLetter,
		Resume:      app.Resume,
		Status:      app.Status,
		CreatedAt:   app.CreatedAt,
	}
}
