package services

import (
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/storage"
)

// ServiceContainer bundles every service for handler wiring.
type ServiceContainer struct {
	Auth        AuthService
	Job         JobService
	Application ApplicationService
	Profile     ProfileService
}

func NewServiceContainer(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	appRepo repositories.ApplicationRepository,
	profileRepo repositories.ProfileRepository,
	store storage.Storage,
) *ServiceContainer {
	return &ServiceContainer{
		Auth:        NewAuthService(userRepo),
		Job:         NewJobService(jobRepo),
		Application: NewApplicationService(appRepo, jobRepo, store),
		Profile:     NewProfileService(profileRepo),
	}
}
