package services

import (
	"errors"
	"time"

	"wealthcoach_backend/internal/auth"
	"wealthcoach_backend/internal/models"
	"wealthcoach_backend/internal/repositories"
	"wealthcoach_backend/internal/services/dto"
	"wealthcoach_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FormService manages the insurance and loan contract forms. Forms belong to
// a user directly; a coach reaches them through the client's profile
// assignment.
type FormService interface {
	// Kfz
	CreateKfz(db *gorm.DB, principal auth.Principal, userID string, req *dto.KfzFormRequest) (*models.KfzForm, error)
	ListKfz(db *gorm.DB, principal auth.Principal, userID string) ([]models.KfzForm, error)
	UpdateKfz(db *gorm.DB, principal auth.Principal, id string, req *dto.KfzFormRequest) (*models.KfzForm, error)
	DeleteKfz(db *gorm.DB, principal auth.Principal, id string) error

	// Loans
	CreateLoan(db *gorm.DB, principal auth.Principal, userID string, req *dto.LoanFormRequest) (*models.LoanForm, error)
	ListLoans(db *gorm.DB, principal auth.Principal, userID string) ([]models.LoanForm, error)
	UpdateLoan(db *gorm.DB, principal auth.Principal, id string, req *dto.LoanFormRequest) (*models.LoanForm, error)
	DeleteLoan(db *gorm.DB, principal auth.Principal, id string) error

	// Real estate
	CreateImmobilien(db *gorm.DB, principal auth.Principal, userID string, req *dto.ImmobilienFormRequest) (*models.ImmobilienForm, error)
	ListImmobilien(db *gorm.DB, principal auth.Principal, userID string) ([]models.ImmobilienForm, error)
	UpdateImmobilien(db *gorm.DB, principal auth.Principal, id string, req *dto.ImmobilienFormRequest) (*models.ImmobilienForm, error)
	DeleteImmobilien(db *gorm.DB, principal auth.Principal, id string) error

	// Private health insurance
	CreatePrivateHealth(db *gorm.DB, principal auth.Principal, userID string, req *dto.PrivateHealthFormRequest) (*models.PrivateHealthInsuranceForm, error)
	ListPrivateHealth(db *gorm.DB, principal auth.Principal, userID string) ([]models.PrivateHealthInsuranceForm, error)
	UpdatePrivateHealth(db *gorm.DB, principal auth.Principal, id string, req *dto.PrivateHealthFormRequest) (*models.PrivateHealthInsuranceForm, error)
	DeletePrivateHealth(db *gorm.DB, principal auth.Principal, id string) error

	// State health insurance
	CreateStateHealth(db *gorm.DB, principal auth.Principal, userID string, req *dto.StateHealthFormRequest) (*models.StateHealthInsuranceForm, error)
	ListStateHealth(db *gorm.DB, principal auth.Principal, userID string) ([]models.StateHealthInsuranceForm, error)
	UpdateStateHealth(db *gorm.DB, principal auth.Principal, id string, req *dto.StateHealthFormRequest) (*models.StateHealthInsuranceForm, error)
	DeleteStateHealth(db *gorm.DB, principal auth.Principal, id string) error
}

type FormServiceImpl struct {
	formRepo     repositories.FormRepository
	personalRepo repositories.PersonalDetailsRepository
}

func NewFormService(
	formRepo repositories.FormRepository,
	personalRepo repositories.PersonalDetailsRepository,
) FormService {
	return &FormServiceImpl{
		formRepo:     formRepo,
		personalRepo: personalRepo,
	}
}

// authorizeUser gates access to a user's forms. The coach relation lives on
// the user's profile; a user without a profile is reachable only by
// themselves and admins.
func (s *FormServiceImpl) authorizeUser(db *gorm.DB, principal auth.Principal, userID string) error {
	coachID := ""
	details, err := s.personalRepo.FindByUserID(db, userID)
	if err == nil {
		coachID = details.CoachID
	} else if !errors.Is(err, repositories.ErrPersonalDetailsNotFound) {
		return apperrors.InternalError(err)
	}

	if !auth.Authorize(principal, auth.ResourceOwnership{OwnerID: userID, CoachID: coachID}) {
		return apperrors.ErrAccessDenied
	}
	return nil
}

func translateFormRepoErr(err error) error {
	if errors.Is(err, repositories.ErrFormNotFound) {
		return apperrors.ErrNotFound(err)
	}
	return apperrors.InternalError(err)
}

func parseDatePtr(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Kfz

func applyKfz(form *models.KfzForm, req *dto.KfzFormRequest) error {
	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		return apperrors.NewBadRequestError("Invalid start_date")
	}
	endDate, err := parseDatePtr(req.EndDate)
	if err != nil {
		return apperrors.NewBadRequestError("Invalid end_date")
	}

	form.InsuranceCompany = req.InsuranceCompany
	form.PolicyNumber = req.PolicyNumber
	form.StartDate = startDate
	form.EndDate = endDate
	form.VehicleMake = req.VehicleMake
	form.VehicleModel = req.VehicleModel
	form.LicensePlate = req.LicensePlate
	form.VinNumber = req.VinNumber
	form.YearOfManufacture = req.YearOfManufacture
	form.InsuranceType = req.InsuranceType
	form.CoverageAmount = req.CoverageAmount
	form.Deductible = req.Deductible
	form.MonthlyPremium = req.MonthlyPremium
	form.PaymentFrequency = req.PaymentFrequency
	if req.AdditionalDrivers != nil {
		form.AdditionalDrivers = datatypes.JSON(req.AdditionalDrivers)
	}
	if req.Documents != nil {
		form.Documents = datatypes.JSON(req.Documents)
	}
	form.Notes = req.Notes
	return nil
}

func (s *FormServiceImpl) CreateKfz(db *gorm.DB, principal auth.Principal, userID string, req *dto.KfzFormRequest) (*models.KfzForm, error) {
	if err := s.authorizeUser(db, principal, userID); err != nil {
		return nil, err
	}
	form := &models.KfzForm{UserID: userID}
	if err := applyKfz(form, req); err != nil {
		return nil, err
	}
	if err := s.formRepo.CreateKfz(db, form); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return form, nil
}

func (s *FormServiceImpl) ListKfz(db *gorm.DB, principal auth.Principal, userID string) ([]models.KfzForm, error) {
	if err := s.authorizeUser(db, principal, userID); err != nil {
		return nil, err
	}
	forms, err := s.formRepo.ListKfz(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return forms, nil
}

func (s *FormServiceImpl) UpdateKfz(db *gorm.DB, principal auth.Principal, id string, req *dto.KfzFormRequest) (*models.KfzForm, error) {
	form, err := s.formRepo.FindKfzByID(db, id)
	if err != nil {
		return nil, translateFormRepoErr(err)
	}
	if err := s.authorizeUser(db, principal, form.UserID); err != nil {
		return nil, err
	}
	if err := applyKfz(form, req); err != nil {
		return nil, err
	}
	if err := s.formRepo.UpdateKfz(db, form); err != nil {
		return nil, translateFormRepoErr(err)
	}
	return form, nil
}

func (s *FormServiceImpl) DeleteKfz(db *gorm.DB, principal auth.Principal, id string) error {
	form, err := s.formRepo.FindKfzByID(db, id)
	if err != nil {
		return translateFormRepoErr(err)
	}
	if err := s.authorizeUser(db, principal, form.UserID); err != nil {
		return err
	}
	if err := s.formRepo.DeleteKfz(db, id); err != nil {
		return translateFormRepoErr(err)
	}
	return nil
}

// Loans

func applyLoanForm(form *models.LoanForm, req *dto.LoanFormRequest) error {
	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		return apperrors.NewBadRequestError("Invalid start_date")
	}
	endDate, err := parseDatePtr(req.EndDate)
	if err != nil {
		return apperrors.NewBadRequestError("Invalid end_date")
	}

	form.LoanType = models.LoanType(req.LoanType)
	form.Bank = req.Bank
	form.LoanAmount = req.LoanAmount
	form.InterestRate = req.InterestRate
	form.MonthlyRate = req.MonthlyRate
	form.StartDate = startDate
	form.EndDate = endDate
	form.RemainingBalance = req.RemainingBalance
	form.Purpose = req.Purpose
	form.Notes = req.Notes
	return nil
}

func (s *FormServiceImpl) CreateLoan(db *gorm.DB, principal auth.Principal, userID string, req *dto.LoanFormRequest) (*models.LoanForm, error) {
	if err := s.authorizeUser(db, principal, userID); err != nil {
		return nil, err
	}
	form := &models.LoanForm{UserID: userID}
	if err := applyLoanForm(form, req); err != nil {
		return nil, err
	}
	if err := s.formRepo.CreateLoan(db, form); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return form, nil
}

func (s *FormServiceImpl) ListLoans(db *gorm.DB, principal auth.Principal, userID string) ([]models.LoanForm, error) {
	if err := s.authorizeUser(db, principal, userID); err != nil {
		return nil, err
	}
	forms, err := s.formRepo.ListLoans(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return forms, nil
}

func (s *FormServiceImpl) UpdateLoan(db *gorm.DB, principal auth.Principal, id string, req *dto.LoanFormRequest) (*models.LoanForm, error) {
	form, err := s.formRepo.FindLoanByID(db, id)
	if err != nil {
		return nil, translateFormRepoErr(err)
	}
	if err := s.authorizeUser(db, principal, form.UserID); err != nil {
		return nil, err
	}
	if err := applyLoanForm(form, req); err != nil {
		return nil, err
	}
	if err := s.formRepo.UpdateLoan(db, form); err != nil {
		return nil, translateFormRepoErr(err)
	}
	return form, nil
}

func (s *FormServiceImpl) DeleteLoan(db *gorm.DB, principal auth.Principal, id string) error {
	form, err := s.formRepo.FindLoanByID(db, id)
	if err != nil {
		return translateFormRepoErr(err)
	}
	if err := s.authorizeUser(db, principal, form.UserID); err != nil {
		return err
	}
	if err := s.formRepo.DeleteLoan(db, id); err != nil {
		return translateFormRepoErr(err)
	}
	return nil
}

// Real estate

func applyImmobilien(form *models.ImmobilienForm, req *dto.ImmobilienFormRequest) error {
	purchaseDate, err := dto.ParseDate(req.PurchaseDate)
	if err != nil {
		return apperrors.NewBadRequestError("Invalid purchase_date")
	}

	form.PropertyType = req.PropertyType
	form.Address = req.Address
	form.PurchasePrice = req.PurchasePrice
	form.CurrentValue = req.CurrentValue
	form.PurchaseDate = purchaseDate
	form.LivingArea = req.LivingArea
	form.LandArea = req.LandArea
	form.RentalIncome = req.RentalIncome
	form.OutstandingLoan = req.OutstandingLoan
	form.Usage = req.Usage
	form.Notes = req.Notes
	return nil
}

func (s *FormServiceImpl) CreateImmobilien(db *gorm.DB, principal auth.Principal, userID string, req *dto.ImmobilienFormRequest) (*models.ImmobilienForm, error) {
	if err := s.authorizeUser(db, principal, userID); err != nil {
		return nil, err
	}
	form := &models.ImmobilienForm{UserID: userID}
	if err := applyImmobilien(form, req); err != nil {
		return nil, err
	}
	if err := s.formRepo.CreateImmobilien(db, form); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return form, nil
}

func (s *FormServiceImpl) ListImmobilien(db *gorm.DB, principal auth.Principal, userID string) ([]models.ImmobilienForm, error) {
	if err := s.authorizeUser(db, principal, userID); err != nil {
		return nil, err
	}
	forms, err := s.formRepo.ListImmobilien(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return forms, nil
}

func (s *FormServiceImpl) UpdateImmobilien(db *gorm.DB, principal auth.Principal, id string, req *dto.ImmobilienFormRequest) (*models.ImmobilienForm, error) {
	form, err := s.formRepo.FindImmobilienByID(db, id)
	if err != nil {
		return nil, translateFormRepoErr(err)
	}
	if err := s.authorizeUser(db, principal, form.UserID); err != nil {
		return nil, err
	}
	if err := applyImmobilien(form, req); err != nil {
		return nil, err
	}
	if err := s.formRepo.UpdateImmobilien(db, form); err != nil {
		return nil, translateFormRepoErr(err)
	}
	return form, nil
}

func (s *FormServiceImpl) DeleteImmobilien(db *gorm.DB, principal auth.Principal, id string) error {
	form, err := s.formRepo.FindImmobilienByID(db, id)
	if err != nil {
		return translateFormRepoErr(err)
	}
	if err := s.authorizeUser(db, principal, form.UserID); err != nil {
		return err
	}
	if err := s.formRepo.DeleteImmobilien(db, id); err != nil {
		return translateFormRepoErr(err)
	}
	return nil
}

// Private health insurance

func applyPrivateHealth(form *models.PrivateHealthInsuranceForm, req *dto.PrivateHealthFormRequest) error {
	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		return apperrors.NewBadRequestError("Invalid start_date")
	}

	form.InsuranceCompany = req.InsuranceCompany
	form.PolicyNumber = req.PolicyNumber
	form.Tariff = req.Tariff
	form.MonthlyPremium = req.MonthlyPremium
	form.Deductible = req.Deductible
	form.StartDate = startDate
	form.DailySicknessPay = req.DailySicknessPay
	form.DentalCoverage = req.DentalCoverage
	form.Notes = req.Notes
	return nil
}

func (s *FormServiceImpl) CreatePrivateHealth(db *gorm.DB, principal auth.Principal, userID string, req *dto.PrivateHealthFormRequest) (*models.PrivateHealthInsuranceForm, error) {
	if err := s.authorizeUser(db, principal, userID); err != nil {
		return nil, err
	}
	form := &models.PrivateHealthInsuranceForm{UserID: userID}
	if err := applyPrivateHealth(form, req); err != nil {
		return nil, err
	}
	if err := s.formRepo.CreatePrivateHealth(db, form); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return form, nil
}

func (s *FormServiceImpl) ListPrivateHealth(db *gorm.DB, principal auth.Principal, userID string) ([]models.PrivateHealthInsuranceForm, error) {
	if err := s.authorizeUser(db, principal, userID); err != nil {
		return nil, err
	}
	forms, err := s.formRepo.ListPrivateHealth(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return forms, nil
}

func (s *FormServiceImpl) UpdatePrivateHealth(db *gorm.DB, principal auth.Principal, id string, req *dto.PrivateHealthFormRequest) (*models.PrivateHealthInsuranceForm, error) {
	form, err := s.formRepo.FindPrivateHealthByID(db, id)
	if err != nil {
		return nil, translateFormRepoErr(err)
	}
	if err := s.authorizeUser(db, principal, form.UserID); err != nil {
		return nil, err
	}
	if err := applyPrivateHealth(form, req); err != nil {
		return nil, err
	}
	if err := s.formRepo.UpdatePrivateHealth(db, form); err != nil {
		return nil, translateFormRepoErr(err)
	}
	return form, nil
}

func (s *FormServiceImpl) DeletePrivateHealth(db *gorm.DB, principal auth.Principal, id string) error {
	form, err := s.formRepo.FindPrivateHealthByID(db, id)
	if err != nil {
		return translateFormRepoErr(err)
	}
	if err := s.authorizeUser(db, principal, form.UserID); err != nil {
		return err
	}
	if err := s.formRepo.DeletePrivateHealth(db, id); err != nil {
		return translateFormRepoErr(err)
	}
	return nil
}

// State health insurance

func applyStateHealth(form *models.StateHealthInsuranceForm, req *dto.StateHealthFormRequest) error {
	memberSince, err := dto.ParseDate(req.MemberSince)
	if err != nil {
		return apperrors.NewBadRequestError("Invalid member_since")
	}

	form.InsuranceCompany = req.InsuranceCompany
	form.InsuranceNumber = req.InsuranceNumber
	form.MemberSince = memberSince
	form.ContributionRate = req.ContributionRate
	form.AdditionalRate = req.AdditionalRate
	form.FamilyInsured = req.FamilyInsured
	form.SupplementaryPlan = req.SupplementaryPlan
	form.Notes = req.Notes
	return nil
}

func (s *FormServiceImpl) CreateStateHealth(db *gorm.DB, principal auth.Principal, userID string, req *dto.StateHealthFormRequest) (*models.StateHealthInsuranceForm, error) {
	if err := s.authorizeUser(db, principal, userID); err != nil {
		return nil, err
	}
	form := &models.StateHealthInsuranceForm{UserID: userID}
	if err := applyStateHealth(form, req); err != nil {
		return nil, err
	}
	if err := s.formRepo.CreateStateHealth(db, form); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return form, nil
}

func (s *FormServiceImpl) ListStateHealth(db *gorm.DB, principal auth.Principal, userID string) ([]models.StateHealthInsuranceForm, error) {
	if err := s.authorizeUser(db, principal, userID); err != nil {
		return nil, err
	}
	forms, err := s.formRepo.ListStateHealth(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return forms, nil
}

func (s *FormServiceImpl) UpdateStateHealth(db *gorm.DB, principal auth.Principal, id string, req *dto.StateHealthFormRequest) (*models.StateHealthInsuranceForm, error) {
	form, err := s.formRepo.FindStateHealthByID(db, id)
	if err != nil {
		return nil, translateFormRepoErr(err)
	}
	if err := s.authorizeUser(db, principal, form.UserID); err != nil {
		return nil, err
	}
	if err := applyStateHealth(form, req); err != nil {
		return nil, err
	}
	if err := s.formRepo.UpdateStateHealth(db, form); err != nil {
		return nil, translateFormRepoErr(err)
	}
	return form, nil
}

func (s *FormServiceImpl) DeleteStateHealth(db *gorm.DB, principal auth.Principal, id string) error {
	form, err := s.formRepo.FindStateHealthByID(db, id)
	if err != nil {
		return translateFormRepoErr(err)
	}
	if err := s.authorizeUser(db, principal, form.UserID); err != nil {
		return err
	}
	if err := s.formRepo.DeleteStateHealth(db, id); err != nil {
		return translateFormRepoErr(err)
	}
	return nil
}
