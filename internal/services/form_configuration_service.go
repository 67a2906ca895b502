package services

import (
	"errors"

	"wealthcoach_backend/internal/auth"
	"wealthcoach_backend/internal/models"
	"wealthcoach_backend/internal/repositories"
	"wealthcoach_backend/internal/services/dto"
	"wealthcoach_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FormConfigurationService manages the admin-defined dynamic form schemas.
// Writes are admin-only; any authenticated user can list the active ones.
type FormConfigurationService interface {
	Create(db *gorm.DB, principal auth.Principal, req *dto.FormConfigurationRequest) (*models.FormConfiguration, error)
	Get(db *gorm.DB, id string) (*models.FormConfiguration, error)
	List(db *gorm.DB, principal auth.Principal, includeInactive bool) ([]models.FormConfiguration, error)
	Update(db *gorm.DB, principal auth.Principal, id string, req *dto.FormConfigurationRequest) (*models.FormConfiguration, error)
	Delete(db *gorm.DB, principal auth.Principal, id string) error
}

type FormConfigurationServiceImpl struct {
	formRepo repositories.FormRepository
}

func NewFormConfigurationService(formRepo repositories.FormRepository) FormConfigurationService {
	return &FormConfigurationServiceImpl{formRepo: formRepo}
}

func (s *FormConfigurationServiceImpl) Create(db *gorm.DB, principal auth.Principal, req *dto.FormConfigurationRequest) (*models.FormConfiguration, error) {
	if !auth.IsAdmin(principal) {
		return nil, apperrors.ErrAccessDenied
	}

	cfg := &models.FormConfiguration{
		Name:     req.Name,
		FormType: req.FormType,
		Schema:   datatypes.JSON(req.Schema),
		IsActive: true,
	}
	if req.IsActive != nil {
		cfg.IsActive = *req.IsActive
	}

	if err := s.formRepo.CreateConfiguration(db, cfg); err != nil {
		if errors.Is(err, repositories.ErrFormConfigExists) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return cfg, nil
}

func (s *FormConfigurationServiceImpl) Get(db *gorm.DB, id string) (*models.FormConfiguration, error) {
	cfg, err := s.formRepo.FindConfigurationByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrFormConfigNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return cfg, nil
}

func (s *FormConfigurationServiceImpl) List(db *gorm.DB, principal auth.Principal, includeInactive bool) ([]models.FormConfiguration, error) {
	// Inactive configurations are an admin concern.
	activeOnly := !includeInactive || !auth.IsAdmin(principal)

	cfgs, err := s.formRepo.ListConfigurations(db, activeOnly)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return cfgs, nil
}

func (s *FormConfigurationServiceImpl) Update(db *gorm.DB, principal auth.Principal, id string, req *dto.FormConfigurationRequest) (*models.FormConfiguration, error) {
	if !auth.IsAdmin(principal) {
		return nil, apperrors.ErrAccessDenied
	}

	cfg, err := s.Get(db, id)
	if err != nil {
		return nil, err
	}

	cfg.Name = req.Name
	cfg.FormType = req.FormType
	cfg.Schema = datatypes.JSON(req.Schema)
	if req.IsActive != nil {
		cfg.IsActive = *req.IsActive
	}

	if err := s.formRepo.UpdateConfiguration(db, cfg); err != nil {
		if errors.Is(err, repositories.ErrFormConfigNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return cfg, nil
}

func (s *FormConfigurationServiceImpl) Delete(db *gorm.DB, principal auth.Principal, id string) error {
	if !auth.IsAdmin(principal) {
		return apperrors.ErrAccessDenied
	}

	if err := s.formRepo.DeleteConfiguration(db, id); err != nil {
		if errors.Is(err, repositories.ErrFormConfigNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
