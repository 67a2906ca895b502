package services

import (
	"errors"

	"wealthcoach_backend/internal/auth"
	"wealthcoach_backend/internal/models"
	"wealthcoach_backend/internal/repositories"
	"wealthcoach_backend/internal/services/dto"
	"wealthcoach_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type PersonalDetailsService interface {
	Create(db *gorm.DB, principal auth.Principal, req *dto.CreatePersonalDetailsRequest) (*models.PersonalDetails, error)
	GetByID(db *gorm.DB, principal auth.Principal, id string) (*models.PersonalDetails, error)
	GetOwn(db *gorm.DB, principal auth.Principal) (*models.PersonalDetails, error)
	List(db *gorm.DB, principal auth.Principal) ([]dto.PersonalDetailsDTO, error)
	Update(db *gorm.DB, principal auth.Principal, id string, req *dto.UpdatePersonalDetailsRequest) (*models.PersonalDetails, error)
	Delete(db *gorm.DB, principal auth.Principal, id string) error
}

type PersonalDetailsServiceImpl struct {
	personalRepo repositories.PersonalDetailsRepository
	userRepo     repositories.UserRepository
}

func NewPersonalDetailsService(
	personalRepo repositories.PersonalDetailsRepository,
	userRepo repositories.UserRepository,
) PersonalDetailsService {
	return &PersonalDetailsServiceImpl{
		personalRepo: personalRepo,
		userRepo:     userRepo,
	}
}

func (s *PersonalDetailsServiceImpl) Create(db *gorm.DB, principal auth.Principal, req *dto.CreatePersonalDetailsRequest) (*models.PersonalDetails, error) {
	ownerID := principal.ID
	if req.UserID != "" && req.UserID != principal.ID {
		// Creating on behalf of a client takes coach or admin rights.
		if !auth.IsCoachOrAdmin(principal) {
			return nil, apperrors.ErrAccessDenied
		}
		if _, err := s.userRepo.FindByID(db, req.UserID); err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.InternalError(err)
		}
		ownerID = req.UserID
	}

	coachID := req.CoachID
	if coachID == "" && principal.Role == auth.RoleCoach && ownerID != principal.ID {
		coachID = principal.ID
	}

	birthDate, err := dto.ParseDate(req.BirthDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid birth_date")
	}

	applicantType := models.ApplicantType(req.ApplicantType)
	if applicantType == "" {
		applicantType = models.ApplicantPrimary
	}

	details := &models.PersonalDetails{
		UserID:        ownerID,
		CoachID:       coachID,
		ApplicantType: applicantType,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		StreetAddress: req.StreetAddress,
		PostalCode:    req.PostalCode,
		City:          req.City,
		Phone:         req.Phone,
		Email:         req.Email,
		BirthDate:     birthDate,
		BirthPlace:    req.BirthPlace,
		MaritalStatus: req.MaritalStatus,
		Nationality:   req.Nationality,
		Housing:       req.Housing,
	}

	if err := s.personalRepo.Create(db, details); err != nil {
		if errors.Is(err, repositories.ErrPersonalDetailsExist) {
			return nil, apperrors.ErrPersonalDetailsExist
		}
		return nil, apperrors.InternalError(err)
	}
	return details, nil
}

func (s *PersonalDetailsServiceImpl) GetByID(db *gorm.DB, principal auth.Principal, id string) (*models.PersonalDetails, error) {
	details, err := s.loadAuthorized(db, principal, id)
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (s *PersonalDetailsServiceImpl) GetOwn(db *gorm.DB, principal auth.Principal) (*models.PersonalDetails, error) {
	details, err := s.personalRepo.FindByUserID(db, principal.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrPersonalDetailsNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return details, nil
}

// List returns every record an admin can see, or the records assigned to the
// requesting coach. Clients use GetOwn.
func (s *PersonalDetailsServiceImpl) List(db *gorm.DB, principal auth.Principal) ([]dto.PersonalDetailsDTO, error) {
	var filter repositories.PersonalDetailsFilter
	switch principal.Role {
	case auth.RoleAdmin:
		// no filter
	case auth.RoleCoach:
		filter.CoachID = principal.ID
	default:
		filter.OwnerID = principal.ID
	}

	records, err := s.personalRepo.FindAll(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	dtos := make([]dto.PersonalDetailsDTO, 0, len(records))
	for i := range records {
		dtos = append(dtos, dto.NewPersonalDetailsDTO(&records[i]))
	}
	return dtos, nil
}

func (s *PersonalDetailsServiceImpl) Update(db *gorm.DB, principal auth.Principal, id string, req *dto.UpdatePersonalDetailsRequest) (*models.PersonalDetails, error) {
	details, err := s.loadAuthorized(db, principal, id)
	if err != nil {
		return nil, err
	}

	if req.CoachID != nil {
		// Reassigning the coach is not something a client decides.
		if !auth.IsCoachOrAdmin(principal) {
			return nil, apperrors.ErrAccessDenied
		}
		if err := s.personalRepo.AssignCoach(db, details.ID, *req.CoachID); err != nil {
			return nil, apperrors.InternalError(err)
		}
		details.CoachID = *req.CoachID
	}
	if req.ApplicantType != nil {
		details.ApplicantType = models.ApplicantType(*req.ApplicantType)
	}
	if req.FirstName != nil {
		details.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		details.LastName = *req.LastName
	}
	if req.StreetAddress != nil {
		details.StreetAddress = *req.StreetAddress
	}
	if req.PostalCode != nil {
		details.PostalCode = *req.PostalCode
	}
	if req.City != nil {
		details.City = *req.City
	}
	if req.Phone != nil {
		details.Phone = *req.Phone
	}
	if req.Email != nil {
		details.Email = *req.Email
	}
	if req.BirthDate != nil {
		birthDate, err := dto.ParseDate(*req.BirthDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid birth_date")
		}
		details.BirthDate = birthDate
	}
	if req.BirthPlace != nil {
		details.BirthPlace = *req.BirthPlace
	}
	if req.MaritalStatus != nil {
		details.MaritalStatus = *req.MaritalStatus
	}
	if req.Nationality != nil {
		details.Nationality = *req.Nationality
	}
	if req.Housing != nil {
		details.Housing = *req.Housing
	}

	if err := s.personalRepo.Update(db, details); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return details, nil
}

func (s *PersonalDetailsServiceImpl) Delete(db *gorm.DB, principal auth.Principal, id string) error {
	if _, err := s.loadAuthorized(db, principal, id); err != nil {
		return err
	}
	if err := s.personalRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// loadAuthorized fetches the record and runs the ownership gate. Unauthorized
// access is reported as 403, never leaked as 404.
func (s *PersonalDetailsServiceImpl) loadAuthorized(db *gorm.DB, principal auth.Principal, id string) (*models.PersonalDetails, error) {
	details, err := s.personalRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPersonalDetailsNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	ownerID, coachID := details.Ownership()
	if !auth.Authorize(principal, auth.ResourceOwnership{OwnerID: ownerID, CoachID: coachID}) {
		return nil, apperrors.ErrAccessDenied
	}
	return details, nil
}
