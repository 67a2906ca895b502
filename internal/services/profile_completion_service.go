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

// ProfileCompletionService reports how complete a client profile is. A
// section counts as filled when at least one record exists for it.
type ProfileCompletionService interface {
	GetOwn(db *gorm.DB, principal auth.Principal) (*dto.ProfileCompletionDTO, error)
	GetByPersonalID(db *gorm.DB, principal auth.Principal, personalID string) (*dto.ProfileCompletionDTO, error)
}

type ProfileCompletionServiceImpl struct {
	personalRepo repositories.PersonalDetailsRepository
}

func NewProfileCompletionService(personalRepo repositories.PersonalDetailsRepository) ProfileCompletionService {
	return &ProfileCompletionServiceImpl{personalRepo: personalRepo}
}

func (s *ProfileCompletionServiceImpl) GetOwn(db *gorm.DB, principal auth.Principal) (*dto.ProfileCompletionDTO, error) {
	details, err := s.personalRepo.FindByUserID(db, principal.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrPersonalDetailsNotFound) {
			// No profile yet: everything is missing.
			return emptyCompletion(), nil
		}
		return nil, apperrors.InternalError(err)
	}
	return buildCompletion(details), nil
}

func (s *ProfileCompletionServiceImpl) GetByPersonalID(db *gorm.DB, principal auth.Principal, personalID string) (*dto.ProfileCompletionDTO, error) {
	details, err := s.personalRepo.FindByID(db, personalID)
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
	return buildCompletion(details), nil
}

var completionSections = []string{
	"personal_details",
	"employment",
	"income",
	"expenses",
	"assets",
	"liabilities",
	"goals_and_wishes",
	"risk_appetite",
	"consents",
	"documents",
}

func emptyCompletion() *dto.ProfileCompletionDTO {
	sections := make(map[string]bool, len(completionSections))
	for _, name := range completionSections {
		sections[name] = false
	}
	return &dto.ProfileCompletionDTO{Percent: 0, Sections: sections}
}

func buildCompletion(details *models.PersonalDetails) *dto.ProfileCompletionDTO {
	sections := map[string]bool{
		"personal_details": details.FirstName != "" && details.LastName != "",
		"employment":       len(details.EmploymentDetails) > 0,
		"income":           len(details.IncomeDetails) > 0,
		"expenses":         len(details.ExpensesDetails) > 0,
		"assets":           len(details.Assets) > 0,
		"liabilities":      len(details.Liabilities) > 0,
		"goals_and_wishes": details.GoalsAndWishes != nil,
		"risk_appetite":    details.RiskAppetite != nil,
		"consents":         len(details.Consents) > 0,
		"documents":        len(details.Documents) > 0,
	}

	filled := 0
	for _, done := range sections {
		if done {
			filled++
		}
	}

	return &dto.ProfileCompletionDTO{
		PersonalID: details.ID,
		Percent:    filled * 100 / len(sections),
		Sections:   sections,
	}
}
