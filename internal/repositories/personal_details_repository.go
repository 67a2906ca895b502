package repositories

import (
	"errors"

	"wealthcoach_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPersonalDetailsNotFound = errors.New("personal details not found")
	ErrPersonalDetailsExist    = errors.New("personal details already exist for this user")
)

type PersonalDetailsFilter struct {
	CoachID string
	OwnerID string
}

type PersonalDetailsRepository interface {
	Create(db *gorm.DB, details *models.PersonalDetails) error
	// FindByID loads the record with every dependent section preloaded.
	FindByID(db *gorm.DB, id string) (*models.PersonalDetails, error)
	FindByUserID(db *gorm.DB, userID string) (*models.PersonalDetails, error)
	FindAll(db *gorm.DB, filter PersonalDetailsFilter) ([]models.PersonalDetails, error)
	// FindOwnership loads just the columns the authorization gate needs.
	FindOwnership(db *gorm.DB, id string) (ownerID, coachID string, err error)
	Update(db *gorm.DB, details *models.PersonalDetails) error
	// AssignCoach sets or clears the coach assignment. An empty coachID
	// stores NULL; the uuid column rejects an empty string.
	AssignCoach(db *gorm.DB, id, coachID string) error
	Delete(db *gorm.DB, id string) error
}

type PersonalDetailsRepositoryImpl struct{}

func NewPersonalDetailsRepository() PersonalDetailsRepository {
	return &PersonalDetailsRepositoryImpl{}
}

func (r *PersonalDetailsRepositoryImpl) Create(db *gorm.DB, details *models.PersonalDetails) error {
	// One record per owner; the unique index backs this up but checking first
	// gives the caller a clean sentinel instead of a driver error.
	var existing models.PersonalDetails
	if err := db.Where("user_id = ?", details.UserID).First(&existing).Error; err == nil {
		return ErrPersonalDetailsExist
	}
	return db.Create(details).Error
}

func (r *PersonalDetailsRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.PersonalDetails, error) {
	var details models.PersonalDetails
	err := db.
		Preload("Coach").
		Preload("EmploymentDetails").
		Preload("IncomeDetails").
		Preload("ExpensesDetails").
		Preload("Assets").
		Preload("Liabilities").
		Preload("GoalsAndWishes").
		Preload("RiskAppetite").
		Preload("Consents").
		Preload("Documents").
		First(&details, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonalDetailsNotFound
		}
		return nil, err
	}
	return &details, nil
}

func (r *PersonalDetailsRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.PersonalDetails, error) {
	var details models.PersonalDetails
	err := db.
		Preload("EmploymentDetails").
		Preload("IncomeDetails").
		Preload("ExpensesDetails").
		Preload("Assets").
		Preload("Liabilities").
		Preload("GoalsAndWishes").
		Preload("RiskAppetite").
		Preload("Consents").
		Preload("Documents").
		First(&details, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonalDetailsNotFound
		}
		return nil, err
	}
	return &details, nil
}

func (r *PersonalDetailsRepositoryImpl) FindAll(db *gorm.DB, filter PersonalDetailsFilter) ([]models.PersonalDetails, error) {
	var details []models.PersonalDetails
	query := db.Preload("Coach").Order("created_at DESC")
	if filter.CoachID != "" {
		query = query.Where("coach_id = ?", filter.CoachID)
	}
	if filter.OwnerID != "" {
		query = query.Where("user_id = ?", filter.OwnerID)
	}
	err := query.Find(&details).Error
	return details, err
}

func (r *PersonalDetailsRepositoryImpl) FindOwnership(db *gorm.DB, id string) (string, string, error) {
	var details models.PersonalDetails
	err := db.Select("user_id", "coach_id").First(&details, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", ErrPersonalDetailsNotFound
		}
		return "", "", err
	}
	return details.UserID, details.CoachID, nil
}

func (r *PersonalDetailsRepositoryImpl) Update(db *gorm.DB, details *models.PersonalDetails) error {
	// coach_id is deliberately not in this list: forcing it through Updates
	// would bind the struct's empty string into the uuid column for every
	// record without a coach. Assignment goes through AssignCoach.
	result := db.Model(&models.PersonalDetails{}).
		Where("id = ?", details.ID).
		Select("applicant_type", "first_name", "last_name",
			"street_address", "postal_code", "city", "phone", "email",
			"birth_date", "birth_place", "marital_status", "nationality",
			"housing", "updated_at").
		Updates(details)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPersonalDetailsNotFound
	}
	return nil
}

func (r *PersonalDetailsRepositoryImpl) AssignCoach(db *gorm.DB, id, coachID string) error {
	var value interface{}
	if coachID != "" {
		value = coachID
	}
	result := db.Model(&models.PersonalDetails{}).
		Where("id = ?", id).
		Update("coach_id", value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPersonalDetailsNotFound
	}
	return nil
}

func (r *PersonalDetailsRepositoryImpl) Delete(db *gorm.DB, id string) error {
	// Dependent sections are removed with the root record.
	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.EmploymentDetails{}, &models.IncomeDetails{},
			&models.ExpensesDetails{}, &models.Asset{}, &models.Liability{},
			&models.GoalsAndWishes{}, &models.RiskAppetite{},
			&models.Consent{}, &models.Document{},
		} {
			if err := tx.Where("personal_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}

		result := tx.Where("id = ?", id).Delete(&models.PersonalDetails{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPersonalDetailsNotFound
		}
		return nil
	})
}
