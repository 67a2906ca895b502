package services

import (
	"errors"
	"time"

	"wealthcoach_backend/internal/auth"
	"wealthcoach_backend/internal/models"
	"wealthcoach_backend/internal/repositories"
	"wealthcoach_backend/internal/services/dto"
	"wealthcoach_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ClientDataService manages the dependent sections of a client profile. Every
// operation authorizes against the owning PersonalDetails record before it
// touches data.
type ClientDataService interface {
	// Employment
	CreateEmployment(db *gorm.DB, principal auth.Principal, personalID string, req *dto.EmploymentRequest) (*models.EmploymentDetails, error)
	ListEmployment(db *gorm.DB, principal auth.Principal, personalID string) ([]models.EmploymentDetails, error)
	UpdateEmployment(db *gorm.DB, principal auth.Principal, id string, req *dto.EmploymentRequest) (*models.EmploymentDetails, error)
	DeleteEmployment(db *gorm.DB, principal auth.Principal, id string) error

	// Income
	CreateIncome(db *gorm.DB, principal auth.Principal, personalID string, req *dto.IncomeRequest) (*models.IncomeDetails, error)
	ListIncome(db *gorm.DB, principal auth.Principal, personalID string) ([]models.IncomeDetails, error)
	UpdateIncome(db *gorm.DB, principal auth.Principal, id string, req *dto.IncomeRequest) (*models.IncomeDetails, error)
	DeleteIncome(db *gorm.DB, principal auth.Principal, id string) error

	// Expenses
	CreateExpenses(db *gorm.DB, principal auth.Principal, personalID string, req *dto.ExpensesRequest) (*models.ExpensesDetails, error)
	ListExpenses(db *gorm.DB, principal auth.Principal, personalID string) ([]models.ExpensesDetails, error)
	UpdateExpenses(db *gorm.DB, principal auth.Principal, id string, req *dto.ExpensesRequest) (*models.ExpensesDetails, error)
	DeleteExpenses(db *gorm.DB, principal auth.Principal, id string) error

	// Assets
	CreateAsset(db *gorm.DB, principal auth.Principal, personalID string, req *dto.AssetRequest) (*models.Asset, error)
	ListAssets(db *gorm.DB, principal auth.Principal, personalID string) ([]models.Asset, error)
	UpdateAsset(db *gorm.DB, principal auth.Principal, id string, req *dto.AssetRequest) (*models.Asset, error)
	DeleteAsset(db *gorm.DB, principal auth.Principal, id string) error

	// Liabilities
	CreateLiability(db *gorm.DB, principal auth.Principal, personalID string, req *dto.LiabilityRequest) (*models.Liability, error)
	ListLiabilities(db *gorm.DB, principal auth.Principal, personalID string) ([]models.Liability, error)
	UpdateLiability(db *gorm.DB, principal auth.Principal, id string, req *dto.LiabilityRequest) (*models.Liability, error)
	DeleteLiability(db *gorm.DB, principal auth.Principal, id string) error

	// Goals and wishes (one per profile)
	SetGoals(db *gorm.DB, principal auth.Principal, personalID string, req *dto.GoalsAndWishesRequest) (*models.GoalsAndWishes, error)
	GetGoals(db *gorm.DB, principal auth.Principal, personalID string) (*models.GoalsAndWishes, error)
	DeleteGoals(db *gorm.DB, principal auth.Principal, id string) error

	// Risk appetite (one per profile)
	SetRiskAppetite(db *gorm.DB, principal auth.Principal, personalID string, req *dto.RiskAppetiteRequest) (*models.RiskAppetite, error)
	GetRiskAppetite(db *gorm.DB, principal auth.Principal, personalID string) (*models.RiskAppetite, error)
	DeleteRiskAppetite(db *gorm.DB, principal auth.Principal, id string) error

	// Consents
	CreateConsent(db *gorm.DB, principal auth.Principal, personalID string, req *dto.ConsentRequest) (*models.Consent, error)
	ListConsents(db *gorm.DB, principal auth.Principal, personalID string) ([]models.Consent, error)
	UpdateConsent(db *gorm.DB, principal auth.Principal, id string, req *dto.ConsentRequest) (*models.Consent, error)
	DeleteConsent(db *gorm.DB, principal auth.Principal, id string) error
}

type ClientDataServiceImpl struct {
	clientRepo   repositories.ClientDataRepository
	personalRepo repositories.PersonalDetailsRepository
}

func NewClientDataService(
	clientRepo repositories.ClientDataRepository,
	personalRepo repositories.PersonalDetailsRepository,
) ClientDataService {
	return &ClientDataServiceImpl{
		clientRepo:   clientRepo,
		personalRepo: personalRepo,
	}
}

// authorizePersonal runs the ownership gate for the profile a section record
// belongs to.
func (s *ClientDataServiceImpl) authorizePersonal(db *gorm.DB, principal auth.Principal, personalID string) error {
	ownerID, coachID, err := s.personalRepo.FindOwnership(db, personalID)
	if err != nil {
		if errors.Is(err, repositories.ErrPersonalDetailsNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if !auth.Authorize(principal, auth.ResourceOwnership{OwnerID: ownerID, CoachID: coachID}) {
		return apperrors.ErrAccessDenied
	}
	return nil
}

func translateClientRepoErr(err error) error {
	if errors.Is(err, repositories.ErrClientRecordNotFound) {
		return apperrors.ErrNotFound(err)
	}
	return apperrors.InternalError(err)
}

// Employment

func applyEmployment(record *models.EmploymentDetails, req *dto.EmploymentRequest) error {
	employedSince, err := dto.ParseDate(req.EmployedSince)
	if err != nil {
		return apperrors.NewBadRequestError("Invalid employed_since")
	}
	record.EmploymentType = models.EmploymentType(req.EmploymentType)
	record.Occupation = req.Occupation
	record.ContractType = req.ContractType
	record.ContractDuration = req.ContractDuration
	record.EmployerName = req.EmployerName
	record.EmployedSince = employedSince
	return nil
}

func (s *ClientDataServiceImpl) CreateEmployment(db *gorm.DB, principal auth.Principal, personalID string, req *dto.EmploymentRequest) (*models.EmploymentDetails, error) {
	if err := s.authorizePersonal(db, principal, personalID); err != nil {
		return nil, err
	}
	record := &models.EmploymentDetails{PersonalID: personalID}
	if err := applyEmployment(record, req); err != nil {
		return nil, err
	}
	if err := s.clientRepo.CreateEmployment(db, record); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return record, nil
}

func (s *ClientDataServiceImpl) ListEmployment(db *gorm.DB, principal auth.Principal, personalID string) ([]models.EmploymentDetails, error) {
	if err := s.authorizePersonal(db, principal, personalID); err != nil {
		return nil, err
	}
	records, err := s.clientRepo.ListEmployment(db, personalID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return records, nil
}

func (s *ClientDataServiceImpl) UpdateEmployment(db *gorm.DB, principal auth.Principal, id string, req *dto.EmploymentRequest) (*models.EmploymentDetails, error) {
	record, err := s.clientRepo.FindEmploymentByID(db, id)
	if err != nil {
		return nil, translateClientRepoErr(err)
	}
	if err := s.authorizePersonal(db, principal, record.PersonalID); err != nil {
		return nil, err
	}
	if err := applyEmployment(record, req); err != nil {
		return nil, err
	}
	if err := s.clientRepo.UpdateEmployment(db, record); err != nil {
		return nil, translateClientRepoErr(err)
	}
	return record, nil
}

func (s *ClientDataServiceImpl) DeleteEmployment(db *gorm.DB, principal auth.Principal, id string) error {
	record, err := s.clientRepo.FindEmploymentByID(db, id)
	if err != nil {
		return translateClientRepoErr(err)
	}
	if err := s.authorizePersonal(db, principal, record.PersonalID); err != nil {
		return err
	}
	if err := s.clientRepo.DeleteEmployment(db, id); err != nil {
		return translateClientRepoErr(err)
	}
	return nil
}

// Income

func applyIncome(record *models.IncomeDetails, req *dto.IncomeRequest) {
	record.GrossIncome = req.GrossIncome
	record.NetIncome = req.NetIncome
	record.TaxClass = req.TaxClass
	record.TaxID = req.TaxID
	record.NumberOfSalaries = req.NumberOfSalaries
	record.ChildBenefit = req.ChildBenefit
	record.OtherIncome = req.OtherIncome
	record.IncomeTradeBusiness = req.IncomeTradeBusiness
	record.IncomeSelfEmployedWork = req.IncomeSelfEmployedWork
	record.IncomeSideJob = req.IncomeSideJob
}

func (s *ClientDataServiceImpl) CreateIncome(db *gorm.DB, principal auth.Principal, personalID string, req *dto.IncomeRequest) (*models.IncomeDetails, error) {
	if err := s.authorizePersonal(db, principal, personalID); err != nil {
		return nil, err
	}
	record := &models.IncomeDetails{PersonalID: personalID}
	applyIncome(record, req)
	if err := s.clientRepo.CreateIncome(db, record); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return record, nil
}

func (s *ClientDataServiceImpl) ListIncome(db *gorm.DB, principal auth.Principal, personalID string) ([]models.IncomeDetails, error) {
	if err := s.authorizePersonal(db, principal, personalID); err != nil {
		return nil, err
	}
	records, err := s.clientRepo.ListIncome(db, personalID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return records, nil
}

func (s *ClientDataServiceImpl) UpdateIncome(db *gorm.DB, principal auth.Principal, id string, req *dto.IncomeRequest) (*models.IncomeDetails, error) {
	record, err := s.clientRepo.FindIncomeByID(db, id)
	if err != nil {
		return nil, translateClientRepoErr(err)
	}
	if err := s.authorizePersonal(db, principal, record.PersonalID); err != nil {
		return nil, err
	}
	applyIncome(record, req)
	if err := s.clientRepo.UpdateIncome(db, record); err != nil {
		return nil, translateClientRepoErr(err)
	}
	return record, nil
}

func (s *ClientDataServiceImpl) DeleteIncome(db *gorm.DB, principal auth.Principal, id string) error {
	record, err := s.clientRepo.FindIncomeByID(db, id)
	if err != nil {
		return translateClientRepoErr(err)
	}
	if err := s.authorizePersonal(db, principal, record.PersonalID); err != nil {
		return err
	}
	if err := s.clientRepo.DeleteIncome(db, id); err != nil {
		return translateClientRepoErr(err)
	}
	return nil
}

// Expenses

func applyExpenses(record *models.ExpensesDetails, req *dto.ExpensesRequest) {
	record.ColdRent = req.ColdRent
	record.Electricity = req.Electricity
	record.LivingExpenses = req.LivingExpenses
	record.Gas = req.Gas
	record.Telecommunication = req.Telecommunication
	record.AccountMaintenanceFee = req.AccountMaintenanceFee
	record.Alimony = req.Alimony
	record.Subscriptions = req.Subscriptions
	record.OtherExpenses = req.OtherExpenses
}

func (s *ClientDataServiceImpl) CreateExpenses(db *gorm.DB, principal auth.Principal, personalID string, req *dto.ExpensesRequest) (*models.ExpensesDetails, error) {
	if err := s.authorizePersonal(db, principal, personalID); err != nil {
		return nil, err
	}
	record := &models.ExpensesDetails{PersonalID: personalID}
	applyExpenses(record, req)
	if err := s.clientRepo.CreateExpenses(db, record); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return record, nil
}

func (s *ClientDataServiceImpl) ListExpenses(db *gorm.DB, principal auth.Principal, personalID string) ([]models.ExpensesDetails, error) {
	if err := s.authorizePersonal(db, principal, personalID); err != nil {
		return nil, err
	}
	records, err := s.clientRepo.ListExpenses(db, personalID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return records, nil
}

func (s *ClientDataServiceImpl) UpdateExpenses(db *gorm.DB, principal auth.Principal, id string, req *dto.ExpensesRequest) (*models.ExpensesDetails, error) {
	record, err := s.clientRepo.FindExpensesByID(db, id)
	if err != nil {
		return nil, translateClientRepoErr(err)
	}
	if err := s.authorizePersonal(db, principal, record.PersonalID); err != nil {
		return nil, err
	}
	applyExpenses(record, req)
	if err := s.clientRepo.UpdateExpenses(db, record); err != nil {
		return nil, translateClientRepoErr(err)
	}
	return record, nil
}

func (s *ClientDataServiceImpl) DeleteExpenses(db *gorm.DB, principal auth.Principal, id string) error {
	record, err := s.clientRepo.FindExpensesByID(db, id)
	if err != nil {
		return translateClientRepoErr(err)
	}
	if err := s.authorizePersonal(db, principal, record.PersonalID); err != nil {
		return err
	}
	if err := s.clientRepo.DeleteExpenses(db, id); err != nil {
		return translateClientRepoErr(err)
	}
	return nil
}

// Assets

func applyAsset(record *models.Asset, req *dto.AssetRequest) {
	record.RealEstate = req.RealEstate
	record.Securities = req.Securities
	record.BankDeposits = req.BankDeposits
	record.BuildingSavings = req.BuildingSavings
	record.InsuranceValues = req.InsuranceValues
	record.OtherAssets = req.OtherAssets
}

func (s *ClientDataServiceImpl) CreateAsset(db *gorm.DB, principal auth.Principal, personalID string, req *dto.AssetRequest) (*models.Asset, error) {
	if err := s.authorizePersonal(db, principal, personalID); err != nil {
		return nil, err
	}
	record := &models.Asset{PersonalID: personalID}
	applyAsset(record, req)
	if err := s.clientRepo.CreateAsset(db, record); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return record, nil
}

func (s *ClientDataServiceImpl) ListAssets(db *gorm.DB, principal auth.Principal, personalID string) ([]models.Asset, error) {
	if err := s.authorizePersonal(db, principal, personalID); err != nil {
		return nil, err
	}
	records, err := s.clientRepo.ListAssets(db, personalID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return records, nil
}

func (s *ClientDataServiceImpl) UpdateAsset(db *gorm.DB, principal auth.Principal, id string, req *dto.AssetRequest) (*models.Asset, error) {
	record, err := s.clientRepo.FindAssetByID(db, id)
	if err != nil {
		return nil, translateClientRepoErr(err)
	}
	if err := s.authorizePersonal(db, principal, record.PersonalID); err != nil {
		return nil, err
	}
	applyAsset(record, req)
	if err := s.clientRepo.UpdateAsset(db, record); err != nil {
		return nil, translateClientRepoErr(err)
	}
	return record, nil
}

func (s *ClientDataServiceImpl) DeleteAsset(db *gorm.DB, principal auth.Principal, id string) error {
	record, err := s.clientRepo.FindAssetByID(db, id)
	if err != nil {
		return translateClientRepoErr(err)
	}
	if err := s.authorizePersonal(db, principal, record.PersonalID); err != nil {
		return err
	}
	if err := s.clientRepo.DeleteAsset(db, id); err != nil {
		return translateClientRepoErr(err)
	}
	return nil
}

// Liabilities

func applyLiability(record *models.Liability, req *dto.LiabilityRequest) {
	record.LoanType = models.LoanType(req.LoanType)
	record.LoanBank = req.LoanBank
	record.LoanAmount = req.LoanAmount
	record.LoanMonthlyRate = req.LoanMonthlyRate
	record.LoanInterest = req.LoanInterest
}

func (s *ClientDataServiceImpl) CreateLiability(db *gorm.DB, principal auth.Principal, personalID string, req *dto.LiabilityRequest) (*models.Liability, error) {
	if err := s.authorizePersonal(db, principal, personalID); err != nil {
		return nil, err
	}
	record := &models.Liability{PersonalID: personalID}
	applyLiability(record, req)
	if err := s.clientRepo.CreateLiability(db, record); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return record, nil
}

func (s *ClientDataServiceImpl) ListLiabilities(db *gorm.DB, principal auth.Principal, personalID string) ([]models.Liability, error) {
	if err := s.authorizePersonal(db, principal, personalID); err != nil {
		return nil, err
	}
	records, err := s.clientRepo.ListLiabilities(db, personalID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return records, nil
}

func (s *ClientDataServiceImpl) UpdateLiability(db *gorm.DB, principal auth.Principal, id string, req *dto.LiabilityRequest) (*models.Liability, error) {
	record, err := s.clientRepo.FindLiabilityByID(db, id)
	if err != nil {
		return nil, translateClientRepoErr(err)
	}
	if err := s.authorizePersonal(db, principal, record.PersonalID); err != nil {
		return nil, err
	}
	applyLiability(record, req)
	if err := s.clientRepo.UpdateLiability(db, record); err != nil {
		return nil, translateClientRepoErr(err)
	}
	return record, nil
}

func (s *ClientDataServiceImpl) DeleteLiability(db *gorm.DB, principal auth.Principal, id string) error {
	record, err := s.clientRepo.FindLiabilityByID(db, id)
	if err != nil {
		return translateClientRepoErr(err)
	}
	if err := s.authorizePersonal(db, principal, record.PersonalID); err != nil {
		return err
	}
	if err := s.clientRepo.DeleteLiability(db, id); err != nil {
		return translateClientRepoErr(err)
	}
	return nil
}

// Goals and wishes

func applyGoals(record *models.GoalsAndWishes, req *dto.GoalsAndWishesRequest) {
	record.RetirementPlanning = req.RetirementPlanning
	record.CapitalFormation = req.CapitalFormation
	record.RealEstateGoals = req.RealEstateGoals
	record.Financing = req.Financing
	record.Protection = req.Protection
	record.HealthcareProvision = req.HealthcareProvision
	record.OtherGoals = req.OtherGoals
}

// SetGoals creates the record on first write and updates it afterwards.
func (s *ClientDataServiceImpl) SetGoals(db *gorm.DB, principal auth.Principal, personalID string, req *dto.GoalsAndWishesRequest) (*models.GoalsAndWishes, error) {
	if err := s.authorizePersonal(db, principal, personalID); err != nil {
		return nil, err
	}

	record, err := s.clientRepo.FindGoalsByPersonalID(db, personalID)
	if err != nil {
		if !errors.Is(err, repositories.ErrClientRecordNotFound) {
			return nil, apperrors.InternalError(err)
		}
		record = &models.GoalsAndWishes{PersonalID: personalID}
		applyGoals(record, req)
		if err := s.clientRepo.CreateGoals(db, record); err != nil {
			return nil, apperrors.InternalError(err)
		}
		return record, nil
	}

	applyGoals(record, req)
	if err := s.clientRepo.UpdateGoals(db, record); err != nil {
		return nil, translateClientRepoErr(err)
	}
	return record, nil
}

func (s *ClientDataServiceImpl) GetGoals(db *gorm.DB, principal auth.Principal, personalID string) (*models.GoalsAndWishes, error) {
	if err := s.authorizePersonal(db, principal, personalID); err != nil {
		return nil, err
	}
	record, err := s.clientRepo.FindGoalsByPersonalID(db, personalID)
	if err != nil {
		return nil, translateClientRepoErr(err)
	}
	return record, nil
}

func (s *ClientDataServiceImpl) DeleteGoals(db *gorm.DB, principal auth.Principal, id string) error {
	record, err := s.clientRepo.FindGoalsByID(db, id)
	if err != nil {
		return translateClientRepoErr(err)
	}
	if err := s.authorizePersonal(db, principal, record.PersonalID); err != nil {
		return err
	}
	if err := s.clientRepo.DeleteGoals(db, id); err != nil {
		return translateClientRepoErr(err)
	}
	return nil
}

// Risk appetite

func applyRiskAppetite(record *models.RiskAppetite, req *dto.RiskAppetiteRequest) {
	record.RiskAppetite = req.RiskAppetite
	record.InvestmentHorizon = req.InvestmentHorizon
	record.KnowledgeExperience = req.KnowledgeExperience
	record.HealthInsurance = req.HealthInsurance
	record.HealthInsuranceNo = req.HealthInsuranceNo
	record.HealthInsuranceProof = req.HealthInsuranceProof
}

func (s *ClientDataServiceImpl) SetRiskAppetite(db *gorm.DB, principal auth.Principal, personalID string, req *dto.RiskAppetiteRequest) (*models.RiskAppetite, error) {
	if err := s.authorizePersonal(db, principal, personalID); err != nil {
		return nil, err
	}

	record, err := s.clientRepo.FindRiskAppetiteByPersonalID(db, personalID)
	if err != nil {
		if !errors.Is(err, repositories.ErrClientRecordNotFound) {
			return nil, apperrors.InternalError(err)
		}
		record = &models.RiskAppetite{PersonalID: personalID}
		applyRiskAppetite(record, req)
		if err := s.clientRepo.CreateRiskAppetite(db, record); err != nil {
			return nil, apperrors.InternalError(err)
		}
		return record, nil
	}

	applyRiskAppetite(record, req)
	if err := s.clientRepo.UpdateRiskAppetite(db, record); err != nil {
		return nil, translateClientRepoErr(err)
	}
	return record, nil
}

func (s *ClientDataServiceImpl) GetRiskAppetite(db *gorm.DB, principal auth.Principal, personalID string) (*models.RiskAppetite, error) {
	if err := s.authorizePersonal(db, principal, personalID); err != nil {
		return nil, err
	}
	record, err := s.clientRepo.FindRiskAppetiteByPersonalID(db, personalID)
	if err != nil {
		return nil, translateClientRepoErr(err)
	}
	return record, nil
}

func (s *ClientDataServiceImpl) DeleteRiskAppetite(db *gorm.DB, principal auth.Principal, id string) error {
	record, err := s.clientRepo.FindRiskAppetiteByID(db, id)
	if err != nil {
		return translateClientRepoErr(err)
	}
	if err := s.authorizePersonal(db, principal, record.PersonalID); err != nil {
		return err
	}
	if err := s.clientRepo.DeleteRiskAppetite(db, id); err != nil {
		return translateClientRepoErr(err)
	}
	return nil
}

// Consents

func applyConsent(record *models.Consent, req *dto.ConsentRequest) error {
	consentDate, err := dto.ParseDate(req.ConsentDate)
	if err != nil {
		return apperrors.NewBadRequestError("Invalid consent_date")
	}
	if consentDate.IsZero() {
		consentDate = time.Now()
	}
	record.ConsentType = models.ConsentType(req.ConsentType)
	record.Consent = req.Consent
	record.ConsentText = req.ConsentText
	record.ConsentSignature = req.ConsentSignature
	record.ConsentDate = consentDate
	record.Location = req.Location
	return nil
}

func (s *ClientDataServiceImpl) CreateConsent(db *gorm.DB, principal auth.Principal, personalID string, req *dto.ConsentRequest) (*models.Consent, error) {
	if err := s.authorizePersonal(db, principal, personalID); err != nil {
		return nil, err
	}
	record := &models.Consent{PersonalID: personalID}
	if err := applyConsent(record, req); err != nil {
		return nil, err
	}
	if err := s.clientRepo.CreateConsent(db, record); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return record, nil
}

func (s *ClientDataServiceImpl) ListConsents(db *gorm.DB, principal auth.Principal, personalID string) ([]models.Consent, error) {
	if err := s.authorizePersonal(db, principal, personalID); err != nil {
		return nil, err
	}
	records, err := s.clientRepo.ListConsents(db, personalID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return records, nil
}

func (s *ClientDataServiceImpl) UpdateConsent(db *gorm.DB, principal auth.Principal, id string, req *dto.ConsentRequest) (*models.Consent, error) {
	record, err := s.clientRepo.FindConsentByID(db, id)
	if err != nil {
		return nil, translateClientRepoErr(err)
	}
	if err := s.authorizePersonal(db, principal, record.PersonalID); err != nil {
		return nil, err
	}
	if err := applyConsent(record, req); err != nil {
		return nil, err
	}
	if err := s.clientRepo.UpdateConsent(db, record); err != nil {
		return nil, translateClientRepoErr(err)
	}
	return record, nil
}

func (s *ClientDataServiceImpl) DeleteConsent(db *gorm.DB, principal auth.Principal, id string) error {
	record, err := s.clientRepo.FindConsentByID(db, id)
	if err != nil {
		return translateClientRepoErr(err)
	}
	if err := s.authorizePersonal(db, principal, record.PersonalID); err != nil {
		return err
	}
	if err := s.clientRepo.DeleteConsent(db, id); err != nil {
		return translateClientRepoErr(err)
	}
	return nil
}
