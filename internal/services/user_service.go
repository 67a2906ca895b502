package services

import (
	"encoding/json"
	"errors"

	"wealthcoach_backend/internal/auth"
	"wealthcoach_backend/internal/models"
	"wealthcoach_backend/internal/repositories"
	"wealthcoach_backend/internal/services/dto"
	"wealthcoach_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// UserService covers the admin-side user management endpoints.
type UserService interface {
	ListUsers(db *gorm.DB, principal auth.Principal, req *dto.ListUsersRequest) (*dto.UserListResponse, error)
	CreateUser(db *gorm.DB, principal auth.Principal, req *dto.AdminCreateUserRequest) (*dto.UserDTO, error)
	GetUser(db *gorm.DB, principal auth.Principal, userID string) (*dto.UserDTO, error)
	UpdateUser(db *gorm.DB, principal auth.Principal, userID string, req *dto.UpdateUserRequest) (*dto.UserDTO, error)
	DeleteUser(db *gorm.DB, principal auth.Principal, userID string) error
	ListRoles(db *gorm.DB, principal auth.Principal) ([]dto.RoleDTO, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) ListUsers(db *gorm.DB, principal auth.Principal, req *dto.ListUsersRequest) (*dto.UserListResponse, error) {
	if !auth.IsAdmin(principal) {
		return nil, apperrors.ErrAccessDenied
	}

	page := req.Page
	if page == 0 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize == 0 {
		pageSize = 20
	}

	users, total, err := s.userRepo.FindWithFilter(db, repositories.UserFilter{
		RoleName: req.Role,
		Search:   req.Search,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	dtos := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, dto.NewUserDTO(&users[i]))
	}

	return &dto.UserListResponse{
		Users:    dtos,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// CreateUser provisions an account administratively. Unlike self-registration
// any role can be assigned, and the email arrives pre-verified.
func (s *UserServiceImpl) CreateUser(db *gorm.DB, principal auth.Principal, req *dto.AdminCreateUserRequest) (*dto.UserDTO, error) {
	if !auth.IsAdmin(principal) {
		return nil, apperrors.ErrAccessDenied
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	role, err := s.userRepo.FindRoleByName(db, req.Role)
	if err != nil {
		if errors.Is(err, repositories.ErrRoleNotFound) {
			return nil, apperrors.ErrUnknownRole
		}
		return nil, apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:         req.Email,
		PasswordHash:  hash,
		DisplayName:   req.DisplayName,
		PhoneNumber:   req.PhoneNumber,
		RoleID:        role.ID,
		EmailVerified: true,
	}
	if err := s.userRepo.Create(db, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}
	user.Role = role

	userDTO := dto.NewUserDTO(user)
	return &userDTO, nil
}

func (s *UserServiceImpl) GetUser(db *gorm.DB, principal auth.Principal, userID string) (*dto.UserDTO, error) {
	if !auth.IsAdmin(principal) {
		return nil, apperrors.ErrAccessDenied
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	userDTO := dto.NewUserDTO(user)
	return &userDTO, nil
}

func (s *UserServiceImpl) UpdateUser(db *gorm.DB, principal auth.Principal, userID string, req *dto.UpdateUserRequest) (*dto.UserDTO, error) {
	if !auth.IsAdmin(principal) {
		return nil, apperrors.ErrAccessDenied
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.Role != nil {
		role, err := s.userRepo.FindRoleByName(db, *req.Role)
		if err != nil {
			if errors.Is(err, repositories.ErrRoleNotFound) {
				return nil, apperrors.ErrUnknownRole
			}
			return nil, apperrors.InternalError(err)
		}
		user.RoleID = role.ID
		user.Role = role
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	userDTO := dto.NewUserDTO(user)
	return &userDTO, nil
}

func (s *UserServiceImpl) DeleteUser(db *gorm.DB, principal auth.Principal, userID string) error {
	if !auth.IsAdmin(principal) {
		return apperrors.ErrAccessDenied
	}
	if principal.ID == userID {
		return apperrors.ErrInvalidOperation("user", "Cannot delete your own account")
	}

	if err := s.userRepo.Delete(db, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UserServiceImpl) ListRoles(db *gorm.DB, principal auth.Principal) ([]dto.RoleDTO, error) {
	if !auth.IsAdmin(principal) {
		return nil, apperrors.ErrAccessDenied
	}

	roles, err := s.userRepo.ListRoles(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	dtos := make([]dto.RoleDTO, 0, len(roles))
	for _, role := range roles {
		var permissions []string
		if len(role.Permissions) > 0 {
			// Stored as a json array; ignore malformed rows.
			_ = json.Unmarshal(role.Permissions, &permissions)
		}
		dtos = append(dtos, dto.RoleDTO{
			ID:          role.ID,
			Name:        role.Name,
			Description: role.Description,
			Permissions: permissions,
		})
	}
	return dtos, nil
}
