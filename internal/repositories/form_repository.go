package repositories

import (
	"errors"

	"wealthcoach_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrFormNotFound       = errors.New("form not found")
	ErrFormConfigNotFound = errors.New("form configuration not found")
	ErrFormConfigExists   = errors.New("form configuration already exists")
)

// FormRepository persists the insurance and loan contract forms, all keyed by
// the owning user, plus the admin-managed form configurations.
type FormRepository interface {
	// Kfz (vehicle insurance)
	CreateKfz(db *gorm.DB, form *models.KfzForm) error
	ListKfz(db *gorm.DB, userID string) ([]models.KfzForm, error)
	FindKfzByID(db *gorm.DB, id string) (*models.KfzForm, error)
	UpdateKfz(db *gorm.DB, form *models.KfzForm) error
	DeleteKfz(db *gorm.DB, id string) error

	// Loans
	CreateLoan(db *gorm.DB, form *models.LoanForm) error
	ListLoans(db *gorm.DB, userID string) ([]models.LoanForm, error)
	FindLoanByID(db *gorm.DB, id string) (*models.LoanForm, error)
	UpdateLoan(db *gorm.DB, form *models.LoanForm) error
	DeleteLoan(db *gorm.DB, id string) error

	// Real estate
	CreateImmobilien(db *gorm.DB, form *models.ImmobilienForm) error
	ListImmobilien(db *gorm.DB, userID string) ([]models.ImmobilienForm, error)
	FindImmobilienByID(db *gorm.DB, id string) (*models.ImmobilienForm, error)
	UpdateImmobilien(db *gorm.DB, form *models.ImmobilienForm) error
	DeleteImmobilien(db *gorm.DB, id string) error

	// Private health insurance
	CreatePrivateHealth(db *gorm.DB, form *models.PrivateHealthInsuranceForm) error
	ListPrivateHealth(db *gorm.DB, userID string) ([]models.PrivateHealthInsuranceForm, error)
	FindPrivateHealthByID(db *gorm.DB, id string) (*models.PrivateHealthInsuranceForm, error)
	UpdatePrivateHealth(db *gorm.DB, form *models.PrivateHealthInsuranceForm) error
	DeletePrivateHealth(db *gorm.DB, id string) error

	// State health insurance
	CreateStateHealth(db *gorm.DB, form *models.StateHealthInsuranceForm) error
	ListStateHealth(db *gorm.DB, userID string) ([]models.StateHealthInsuranceForm, error)
	FindStateHealthByID(db *gorm.DB, id string) (*models.StateHealthInsuranceForm, error)
	UpdateStateHealth(db *gorm.DB, form *models.StateHealthInsuranceForm) error
	DeleteStateHealth(db *gorm.DB, id string) error

	// Form configurations
	CreateConfiguration(db *gorm.DB, cfg *models.FormConfiguration) error
	FindConfigurationByID(db *gorm.DB, id string) (*models.FormConfiguration, error)
	ListConfigurations(db *gorm.DB, activeOnly bool) ([]models.FormConfiguration, error)
	UpdateConfiguration(db *gorm.DB, cfg *models.FormConfiguration) error
	DeleteConfiguration(db *gorm.DB, id string) error
}

type FormRepositoryImpl struct{}

func NewFormRepository() FormRepository {
	return &FormRepositoryImpl{}
}

// updateForm rewrites all mutable columns of a form row. Ownership and
// creation metadata never change after insert.
func updateForm(db *gorm.DB, model interface{}, id string, values interface{}) error {
	result := db.Model(model).Where("id = ?", id).
		Select("*").Omit("id", "user_id", "created_at").
		Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFormNotFound
	}
	return nil
}

func deleteForm(db *gorm.DB, model interface{}, id string) error {
	result := db.Where("id = ?", id).Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFormNotFound
	}
	return nil
}

// Kfz

func (r *FormRepositoryImpl) CreateKfz(db *gorm.DB, form *models.KfzForm) error {
	return db.Create(form).Error
}

func (r *FormRepositoryImpl) ListKfz(db *gorm.DB, userID string) ([]models.KfzForm, error) {
	var forms []models.KfzForm
	err := db.Where("user_id = ?", userID).Order("created_at desc").Find(&forms).Error
	return forms, err
}

func (r *FormRepositoryImpl) FindKfzByID(db *gorm.DB, id string) (*models.KfzForm, error) {
	var form models.KfzForm
	if err := db.First(&form, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	return &form, nil
}

func (r *FormRepositoryImpl) UpdateKfz(db *gorm.DB, form *models.KfzForm) error {
	return updateForm(db, &models.KfzForm{}, form.ID, form)
}

func (r *FormRepositoryImpl) DeleteKfz(db *gorm.DB, id string) error {
	return deleteForm(db, &models.KfzForm{}, id)
}

// Loans

func (r *FormRepositoryImpl) CreateLoan(db *gorm.DB, form *models.LoanForm) error {
	return db.Create(form).Error
}

func (r *FormRepositoryImpl) ListLoans(db *gorm.DB, userID string) ([]models.LoanForm, error) {
	var forms []models.LoanForm
	err := db.Where("user_id = ?", userID).Order("created_at desc").Find(&forms).Error
	return forms, err
}

func (r *FormRepositoryImpl) FindLoanByID(db *gorm.DB, id string) (*models.LoanForm, error) {
	var form models.LoanForm
	if err := db.First(&form, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	return &form, nil
}

func (r *FormRepositoryImpl) UpdateLoan(db *gorm.DB, form *models.LoanForm) error {
	return updateForm(db, &models.LoanForm{}, form.ID, form)
}

func (r *FormRepositoryImpl) DeleteLoan(db *gorm.DB, id string) error {
	return deleteForm(db, &models.LoanForm{}, id)
}

// Real estate

func (r *FormRepositoryImpl) CreateImmobilien(db *gorm.DB, form *models.ImmobilienForm) error {
	return db.Create(form).Error
}

func (r *FormRepositoryImpl) ListImmobilien(db *gorm.DB, userID string) ([]models.ImmobilienForm, error) {
	var forms []models.ImmobilienForm
	err := db.Where("user_id = ?", userID).Order("created_at desc").Find(&forms).Error
	return forms, err
}

func (r *FormRepositoryImpl) FindImmobilienByID(db *gorm.DB, id string) (*models.ImmobilienForm, error) {
	var form models.ImmobilienForm
	if err := db.First(&form, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	return &form, nil
}

func (r *FormRepositoryImpl) UpdateImmobilien(db *gorm.DB, form *models.ImmobilienForm) error {
	return updateForm(db, &models.ImmobilienForm{}, form.ID, form)
}

func (r *FormRepositoryImpl) DeleteImmobilien(db *gorm.DB, id string) error {
	return deleteForm(db, &models.ImmobilienForm{}, id)
}

// Private health insurance

func (r *FormRepositoryImpl) CreatePrivateHealth(db *gorm.DB, form *models.PrivateHealthInsuranceForm) error {
	return db.Create(form).Error
}

func (r *FormRepositoryImpl) ListPrivateHealth(db *gorm.DB, userID string) ([]models.PrivateHealthInsuranceForm, error) {
	var forms []models.PrivateHealthInsuranceForm
	err := db.Where("user_id = ?", userID).Order("created_at desc").Find(&forms).Error
	return forms, err
}

func (r *FormRepositoryImpl) FindPrivateHealthByID(db *gorm.DB, id string) (*models.PrivateHealthInsuranceForm, error) {
	var form models.PrivateHealthInsuranceForm
	if err := db.First(&form, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	return &form, nil
}

func (r *FormRepositoryImpl) UpdatePrivateHealth(db *gorm.DB, form *models.PrivateHealthInsuranceForm) error {
	return updateForm(db, &models.PrivateHealthInsuranceForm{}, form.ID, form)
}

func (r *FormRepositoryImpl) DeletePrivateHealth(db *gorm.DB, id string) error {
	return deleteForm(db, &models.PrivateHealthInsuranceForm{}, id)
}

// State health insurance

func (r *FormRepositoryImpl) CreateStateHealth(db *gorm.DB, form *models.StateHealthInsuranceForm) error {
	return db.Create(form).Error
}

func (r *FormRepositoryImpl) ListStateHealth(db *gorm.DB, userID string) ([]models.StateHealthInsuranceForm, error) {
	var forms []models.StateHealthInsuranceForm
	err := db.Where("user_id = ?", userID).Order("created_at desc").Find(&forms).Error
	return forms, err
}

func (r *FormRepositoryImpl) FindStateHealthByID(db *gorm.DB, id string) (*models.StateHealthInsuranceForm, error) {
	var form models.StateHealthInsuranceForm
	if err := db.First(&form, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	return &form, nil
}

func (r *FormRepositoryImpl) UpdateStateHealth(db *gorm.DB, form *models.StateHealthInsuranceForm) error {
	return updateForm(db, &models.StateHealthInsuranceForm{}, form.ID, form)
}

func (r *FormRepositoryImpl) DeleteStateHealth(db *gorm.DB, id string) error {
	return deleteForm(db, &models.StateHealthInsuranceForm{}, id)
}

// Form configurations

func (r *FormRepositoryImpl) CreateConfiguration(db *gorm.DB, cfg *models.FormConfiguration) error {
	var count int64
	if err := db.Model(&models.FormConfiguration{}).Where("name = ?", cfg.Name).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrFormConfigExists
	}
	return db.Create(cfg).Error
}

func (r *FormRepositoryImpl) FindConfigurationByID(db *gorm.DB, id string) (*models.FormConfiguration, error) {
	var cfg models.FormConfiguration
	if err := db.First(&cfg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormConfigNotFound
		}
		return nil, err
	}
	return &cfg, nil
}

func (r *FormRepositoryImpl) ListConfigurations(db *gorm.DB, activeOnly bool) ([]models.FormConfiguration, error) {
	var cfgs []models.FormConfiguration
	query := db.Order("name")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&cfgs).Error
	return cfgs, err
}

func (r *FormRepositoryImpl) UpdateConfiguration(db *gorm.DB, cfg *models.FormConfiguration) error {
	result := db.Model(&models.FormConfiguration{}).Where("id = ?", cfg.ID).
		Select("name", "form_type", "schema", "is_active", "updated_at").
		Updates(cfg)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFormConfigNotFound
	}
	return nil
}

func (r *FormRepositoryImpl) DeleteConfiguration(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.FormConfiguration{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFormConfigNotFound
	}
	return nil
}
