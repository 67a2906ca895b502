package repositories

import (
	"errors"
	"time"

	"wealthcoach_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrRoleNotFound      = errors.New("role not found")
)

type UserFilter struct {
	RoleName string
	Search   string
	Page     int
	PageSize int
}

type UserRepository interface {
	// User operations. FindByID runs on every authenticated request, so it must
	// stay a single indexed lookup with the role preloaded.
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	Create(db *gorm.DB, user *models.User) error
	Update(db *gorm.DB, user *models.User) error
	Delete(db *gorm.DB, userID string) error
	FindByResetToken(db *gorm.DB, token string) (*models.User, error)
	MarkEmailVerified(db *gorm.DB, userID string) error
	ClearExpiredResetTokens(db *gorm.DB) (int64, error)
	FindWithFilter(db *gorm.DB, criteria UserFilter) ([]models.User, int64, error)

	// Role operations
	FindRoleByName(db *gorm.DB, name string) (*models.Role, error)
	CreateRole(db *gorm.DB, role *models.Role) error
	ListRoles(db *gorm.DB) ([]models.Role, error)
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.Preload("Role").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.Preload("Role").First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	var existing models.User
	if err := db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}
	return db.Create(user).Error
}

func (r *UserRepositoryImpl) Update(db *gorm.DB, user *models.User) error {
	result := db.Model(user).Updates(map[string]interface{}{
		"email":              user.Email,
		"password_hash":      user.PasswordHash,
		"display_name":       user.DisplayName,
		"phone_number":       user.PhoneNumber,
		"email_verified":     user.EmailVerified,
		"role_id":            user.RoleID,
		"reset_token":        user.ResetToken,
		"reset_token_expiry": user.ResetTokenExpiry,
		"updated_at":         time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) Delete(db *gorm.DB, userID string) error {
	result := db.Where("id = ?", userID).Delete(&models.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) FindByResetToken(db *gorm.DB, token string) (*models.User, error) {
	var user models.User
	err := db.Where("reset_token = ? AND reset_token_expiry > ?", token, time.Now()).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) MarkEmailVerified(db *gorm.DB, userID string) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"email_verified":     true,
		"reset_token":        "",
		"reset_token_expiry": nil,
		"updated_at":         time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) ClearExpiredResetTokens(db *gorm.DB) (int64, error) {
	result := db.Model(&models.User{}).
		Where("reset_token != '' AND reset_token_expiry < ?", time.Now()).
		Updates(map[string]interface{}{
			"reset_token":        "",
			"reset_token_expiry": nil,
		})
	return result.RowsAffected, result.Error
}

func (r *UserRepositoryImpl) FindWithFilter(db *gorm.DB, criteria UserFilter) ([]models.User, int64, error) {
	var users []models.User
	query := db.Model(&models.User{})

	if criteria.RoleName != "" {
		query = query.Joins("JOIN roles ON roles.id = users.role_id").
			Where("roles.name = ?", criteria.RoleName)
	}
	if criteria.Search != "" {
		search := "%" + criteria.Search + "%"
		query = query.Where("email ILIKE ? OR display_name ILIKE ?", search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	if limit <= 0 {
		limit = 20
	}
	page := criteria.Page
	if page <= 0 {
		page = 1
	}

	err := query.Preload("Role").
		Order("created_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&users).Error

	return users, total, err
}

// Role operations

func (r *UserRepositoryImpl) FindRoleByName(db *gorm.DB, name string) (*models.Role, error) {
	var role models.Role
	err := db.First(&role, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}
	return &role, nil
}

func (r *UserRepositoryImpl) CreateRole(db *gorm.DB, role *models.Role) error {
	return db.Create(role).Error
}

func (r *UserRepositoryImpl) ListRoles(db *gorm.DB) ([]models.Role, error) {
	var roles []models.Role
	err := db.Order("name").Find(&roles).Error
	return roles, err
}
