package handlers

import (
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/storage"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Auth        *AuthHandler
	Job         *JobHandler
	Application *ApplicationHandler
	Profile     *ProfileHandler
	File        *FileHandler
}

func NewAppHandlers(svc *services.ServiceContainer, store storage.Storage, maxUploadSize int64, allowedTypes []string) *AppHandlers {
	return &AppHandlers{
		Auth:        NewAuthHandler(svc.Auth),
		Job:         NewJobHandler(svc.Job),
		Application: NewApplicationHandler(svc.Application, maxUploadSize, allowedTypes),
		Profile:     NewProfileHandler(svc.Profile),
		File:        NewFileHandler(store),
	}
}
