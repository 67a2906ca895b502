package repositories

import (
	"errors"

	"wealthcoach_backend/internal/models"

	"gorm.io/gorm"
)

var ErrClientRecordNotFound = errors.New("client data record not found")

// ClientDataRepository covers the dependent sections of a PersonalDetails
// record: employment, income, expenses, assets, liabilities, goals and wishes,
// risk appetite and consents. All are uniform keyed-by-personal-id CRUD.
type ClientDataRepository interface {
	// Employment
	CreateEmployment(db *gorm.DB, record *models.EmploymentDetails) error
	ListEmployment(db *gorm.DB, personalID string) ([]models.EmploymentDetails, error)
	FindEmploymentByID(db *gorm.DB, id string) (*models.EmploymentDetails, error)
	UpdateEmployment(db *gorm.DB, record *models.EmploymentDetails) error
	DeleteEmployment(db *gorm.DB, id string) error

	// Income
	CreateIncome(db *gorm.DB, record *models.IncomeDetails) error
	ListIncome(db *gorm.DB, personalID string) ([]models.IncomeDetails, error)
	FindIncomeByID(db *gorm.DB, id string) (*models.IncomeDetails, error)
	UpdateIncome(db *gorm.DB, record *models.IncomeDetails) error
	DeleteIncome(db *gorm.DB, id string) error

	// Expenses
	CreateExpenses(db *gorm.DB, record *models.ExpensesDetails) error
	ListExpenses(db *gorm.DB, personalID string) ([]models.ExpensesDetails, error)
	FindExpensesByID(db *gorm.DB, id string) (*models.ExpensesDetails, error)
	UpdateExpenses(db *gorm.DB, record *models.ExpensesDetails) error
	DeleteExpenses(db *gorm.DB, id string) error

	// Assets
	CreateAsset(db *gorm.DB, record *models.Asset) error
	ListAssets(db *gorm.DB, personalID string) ([]models.Asset, error)
	FindAssetByID(db *gorm.DB, id string) (*models.Asset, error)
	UpdateAsset(db *gorm.DB, record *models.Asset) error
	DeleteAsset(db *gorm.DB, id string) error

	// Liabilities
	CreateLiability(db *gorm.DB, record *models.Liability) error
	ListLiabilities(db *gorm.DB, personalID string) ([]models.Liability, error)
	FindLiabilityByID(db *gorm.DB, id string) (*models.Liability, error)
	UpdateLiability(db *gorm.DB, record *models.Liability) error
	DeleteLiability(db *gorm.DB, id string) error

	// Goals and wishes (1:1 with personal details)
	CreateGoals(db *gorm.DB, record *models.GoalsAndWishes) error
	FindGoalsByPersonalID(db *gorm.DB, personalID string) (*models.GoalsAndWishes, error)
	FindGoalsByID(db *gorm.DB, id string) (*models.GoalsAndWishes, error)
	UpdateGoals(db *gorm.DB, record *models.GoalsAndWishes) error
	DeleteGoals(db *gorm.DB, id string) error

	// Risk appetite (1:1 with personal details)
	CreateRiskAppetite(db *gorm.DB, record *models.RiskAppetite) error
	FindRiskAppetiteByPersonalID(db *gorm.DB, personalID string) (*models.RiskAppetite, error)
	FindRiskAppetiteByID(db *gorm.DB, id string) (*models.RiskAppetite, error)
	UpdateRiskAppetite(db *gorm.DB, record *models.RiskAppetite) error
	DeleteRiskAppetite(db *gorm.DB, id string) error

	// Consents
	CreateConsent(db *gorm.DB, record *models.Consent) error
	ListConsents(db *gorm.DB, personalID string) ([]models.Consent, error)
	FindConsentByID(db *gorm.DB, id string) (*models.Consent, error)
	UpdateConsent(db *gorm.DB, record *models.Consent) error
	DeleteConsent(db *gorm.DB, id string) error
}

type ClientDataRepositoryImpl struct{}

func NewClientDataRepository() ClientDataRepository {
	return &ClientDataRepositoryImpl{}
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrClientRecordNotFound
	}
	return err
}

func deleteByID(db *gorm.DB, model interface{}, id string) error {
	result := db.Where("id = ?", id).Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClientRecordNotFound
	}
	return nil
}

// Employment

func (r *ClientDataRepositoryImpl) CreateEmployment(db *gorm.DB, record *models.EmploymentDetails) error {
	return db.Create(record).Error
}

func (r *ClientDataRepositoryImpl) ListEmployment(db *gorm.DB, personalID string) ([]models.EmploymentDetails, error) {
	var records []models.EmploymentDetails
	err := db.Where("personal_id = ?", personalID).Order("created_at").Find(&records).Error
	return records, err
}

func (r *ClientDataRepositoryImpl) FindEmploymentByID(db *gorm.DB, id string) (*models.EmploymentDetails, error) {
	var record models.EmploymentDetails
	if err := db.First(&record, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &record, nil
}

func (r *ClientDataRepositoryImpl) UpdateEmployment(db *gorm.DB, record *models.EmploymentDetails) error {
	result := db.Model(&models.EmploymentDetails{}).Where("id = ?", record.ID).
		Select("employment_type", "occupation", "contract_type",
			"contract_duration", "employer_name", "employed_since", "updated_at").
		Updates(record)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClientRecordNotFound
	}
	return nil
}

func (r *ClientDataRepositoryImpl) DeleteEmployment(db *gorm.DB, id string) error {
	return deleteByID(db, &models.EmploymentDetails{}, id)
}

// Income

func (r *ClientDataRepositoryImpl) CreateIncome(db *gorm.DB, record *models.IncomeDetails) error {
	return db.Create(record).Error
}

func (r *ClientDataRepositoryImpl) ListIncome(db *gorm.DB, personalID string) ([]models.IncomeDetails, error) {
	var records []models.IncomeDetails
	err := db.Where("personal_id = ?", personalID).Order("created_at").Find(&records).Error
	return records, err
}

func (r *ClientDataRepositoryImpl) FindIncomeByID(db *gorm.DB, id string) (*models.IncomeDetails, error) {
	var record models.IncomeDetails
	if err := db.First(&record, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &record, nil
}

func (r *ClientDataRepositoryImpl) UpdateIncome(db *gorm.DB, record *models.IncomeDetails) error {
	result := db.Model(&models.IncomeDetails{}).Where("id = ?", record.ID).
		Select("gross_income", "net_income", "tax_class", "tax_id",
			"number_of_salaries", "child_benefit", "other_income",
			"income_trade_business", "income_self_employed_work",
			"income_side_job", "updated_at").
		Updates(record)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClientRecordNotFound
	}
	return nil
}

func (r *ClientDataRepositoryImpl) DeleteIncome(db *gorm.DB, id string) error {
	return deleteByID(db, &models.IncomeDetails{}, id)
}

// Expenses

func (r *ClientDataRepositoryImpl) CreateExpenses(db *gorm.DB, record *models.ExpensesDetails) error {
	return db.Create(record).Error
}

func (r *ClientDataRepositoryImpl) ListExpenses(db *gorm.DB, personalID string) ([]models.ExpensesDetails, error) {
	var records []models.ExpensesDetails
	err := db.Where("personal_id = ?", personalID).Order("created_at").Find(&records).Error
	return records, err
}

func (r *ClientDataRepositoryImpl) FindExpensesByID(db *gorm.DB, id string) (*models.ExpensesDetails, error) {
	var record models.ExpensesDetails
	if err := db.First(&record, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &record, nil
}

func (r *ClientDataRepositoryImpl) UpdateExpenses(db *gorm.DB, record *models.ExpensesDetails) error {
	result := db.Model(&models.ExpensesDetails{}).Where("id = ?", record.ID).
		Select("cold_rent", "electricity", "living_expenses", "gas",
			"telecommunication", "account_maintenance_fee", "alimony",
			"subscriptions", "other_expenses", "updated_at").
		Updates(record)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClientRecordNotFound
	}
	return nil
}

func (r *ClientDataRepositoryImpl) DeleteExpenses(db *gorm.DB, id string) error {
	return deleteByID(db, &models.ExpensesDetails{}, id)
}

// Assets

func (r *ClientDataRepositoryImpl) CreateAsset(db *gorm.DB, record *models.Asset) error {
	return db.Create(record).Error
}

func (r *ClientDataRepositoryImpl) ListAssets(db *gorm.DB, personalID string) ([]models.Asset, error) {
	var records []models.Asset
	err := db.Where("personal_id = ?", personalID).Order("created_at").Find(&records).Error
	return records, err
}

func (r *ClientDataRepositoryImpl) FindAssetByID(db *gorm.DB, id string) (*models.Asset, error) {
	var record models.Asset
	if err := db.First(&record, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &record, nil
}

func (r *ClientDataRepositoryImpl) UpdateAsset(db *gorm.DB, record *models.Asset) error {
	result := db.Model(&models.Asset{}).Where("id = ?", record.ID).
		Select("real_estate", "securities", "bank_deposits",
			"building_savings", "insurance_values", "other_assets", "updated_at").
		Updates(record)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClientRecordNotFound
	}
	return nil
}

func (r *ClientDataRepositoryImpl) DeleteAsset(db *gorm.DB, id string) error {
	return deleteByID(db, &models.Asset{}, id)
}

// Liabilities

func (r *ClientDataRepositoryImpl) CreateLiability(db *gorm.DB, record *models.Liability) error {
	return db.Create(record).Error
}

func (r *ClientDataRepositoryImpl) ListLiabilities(db *gorm.DB, personalID string) ([]models.Liability, error) {
	var records []models.Liability
	err := db.Where("personal_id = ?", personalID).Order("created_at").Find(&records).Error
	return records, err
}

func (r *ClientDataRepositoryImpl) FindLiabilityByID(db *gorm.DB, id string) (*models.Liability, error) {
	var record models.Liability
	if err := db.First(&record, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &record, nil
}

func (r *ClientDataRepositoryImpl) UpdateLiability(db *gorm.DB, record *models.Liability) error {
	result := db.Model(&models.Liability{}).Where("id = ?", record.ID).
		Select("loan_type", "loan_bank", "loan_amount",
			"loan_monthly_rate", "loan_interest", "updated_at").
		Updates(record)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClientRecordNotFound
	}
	return nil
}

func (r *ClientDataRepositoryImpl) DeleteLiability(db *gorm.DB, id string) error {
	return deleteByID(db, &models.Liability{}, id)
}

// Goals and wishes

func (r *ClientDataRepositoryImpl) CreateGoals(db *gorm.DB, record *models.GoalsAndWishes) error {
	return db.Create(record).Error
}

func (r *ClientDataRepositoryImpl) FindGoalsByPersonalID(db *gorm.DB, personalID string) (*models.GoalsAndWishes, error) {
	var record models.GoalsAndWishes
	if err := db.First(&record, "personal_id = ?", personalID).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &record, nil
}

func (r *ClientDataRepositoryImpl) FindGoalsByID(db *gorm.DB, id string) (*models.GoalsAndWishes, error) {
	var record models.GoalsAndWishes
	if err := db.First(&record, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &record, nil
}

func (r *ClientDataRepositoryImpl) UpdateGoals(db *gorm.DB, record *models.GoalsAndWishes) error {
	result := db.Model(&models.GoalsAndWishes{}).Where("id = ?", record.ID).
		Select("retirement_planning", "capital_formation", "real_estate_goals",
			"financing", "protection", "healthcare_provision", "other_goals",
			"updated_at").
		Updates(record)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClientRecordNotFound
	}
	return nil
}

func (r *ClientDataRepositoryImpl) DeleteGoals(db *gorm.DB, id string) error {
	return deleteByID(db, &models.GoalsAndWishes{}, id)
}

// Risk appetite

func (r *ClientDataRepositoryImpl) CreateRiskAppetite(db *gorm.DB, record *models.RiskAppetite) error {
	return db.Create(record).Error
}

func (r *ClientDataRepositoryImpl) FindRiskAppetiteByPersonalID(db *gorm.DB, personalID string) (*models.RiskAppetite, error) {
	var record models.RiskAppetite
	if err := db.First(&record, "personal_id = ?", personalID).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &record, nil
}

func (r *ClientDataRepositoryImpl) FindRiskAppetiteByID(db *gorm.DB, id string) (*models.RiskAppetite, error) {
	var record models.RiskAppetite
	if err := db.First(&record, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &record, nil
}

func (r *ClientDataRepositoryImpl) UpdateRiskAppetite(db *gorm.DB, record *models.RiskAppetite) error {
	result := db.Model(&models.RiskAppetite{}).Where("id = ?", record.ID).
		Select("risk_appetite", "investment_horizon", "knowledge_experience",
			"health_insurance", "health_insurance_no", "health_insurance_proof",
			"updated_at").
		Updates(record)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClientRecordNotFound
	}
	return nil
}

func (r *ClientDataRepositoryImpl) DeleteRiskAppetite(db *gorm.DB, id string) error {
	return deleteByID(db, &models.RiskAppetite{}, id)
}

// Consents

func (r *ClientDataRepositoryImpl) CreateConsent(db *gorm.DB, record *models.Consent) error {
	return db.Create(record).Error
}

func (r *ClientDataRepositoryImpl) ListConsents(db *gorm.DB, personalID string) ([]models.Consent, error) {
	var records []models.Consent
	err := db.Where("personal_id = ?", personalID).Order("created_at").Find(&records).Error
	return records, err
}

func (r *ClientDataRepositoryImpl) FindConsentByID(db *gorm.DB, id string) (*models.Consent, error) {
	var record models.Consent
	if err := db.First(&record, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &record, nil
}

func (r *ClientDataRepositoryImpl) UpdateConsent(db *gorm.DB, record *models.Consent) error {
	result := db.Model(&models.Consent{}).Where("id = ?", record.ID).
		Select("consent_type", "consent", "consent_text", "consent_signature",
			"consent_date", "location", "updated_at").
		Updates(record)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClientRecordNotFound
	}
	return nil
}

func (r *ClientDataRepositoryImpl) DeleteConsent(db *gorm.DB, id string) error {
	return deleteByID(db, &models.Consent{}, id)
}
