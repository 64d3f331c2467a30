package services

import (
	"errors"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	appErrors "jobboard_backend/pkg/apperrors"
)

type ProfileService interface {
	GetMine(userID models.UserID) (*dto.ProfileResponse, error)
	// Save creates the caller's profile or overwrites it wholesale.
	Save(userID models.UserID, req dto.SaveProfileRequest) (*dto.ProfileResponse, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo}
}

func (s *ProfileServiceImpl) GetMine(userID models.UserID) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, appErrors.ErrProfileNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return toProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) Save(userID models.UserID, req dto.SaveProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	switch {
	case err == nil:
		profile.Bio = req.Bio
		profile.Resume = req.Resume
		profile.Experience = req.Experience
		profile.SetSkills(req.Skills)
		if err := s.profileRepo.Update(profile); err != nil {
			return nil, appErrors.InternalError(err)
		}
	case errors.Is(err, repositories.ErrProfileNotFound):
		profile = &models.Profile{
			UserID:     userID,
			Bio:        req.Bio,
			Resume:     req.Resume,
			Experience: req.Experience,
		}
		profile.SetSkills(req.Skills)
		if err := s.profileRepo.Create(profile); err != nil {
			return nil, appErrors.InternalError(err)
		}
	default:
		return nil, appErrors.InternalError(err)
	}

	return toProfileResponse(profile), nil
}

func toProfileResponse(p *models.Profile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:         p.ID,
		UserID:     p.UserID,
		Bio:        p.Bio,
		Skills:     p.GetSkills(),
		Resume:     p.Resume,
		Experience: p.Experience,
		UpdatedAt:  p.UpdatedAt,
	}
}
