package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"wealthcoach_backend/internal/auth"
	"wealthcoach_backend/internal/email"
	"wealthcoach_backend/internal/logger"
	"wealthcoach_backend/internal/models"
	"wealthcoach_backend/internal/repositories"
	"wealthcoach_backend/internal/services/dto"
	"wealthcoach_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const (
	verificationTokenTTL  = 24 * time.Hour
	passwordResetTokenTTL = time.Hour
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	VerifyEmail(db *gorm.DB, token string) error
	ForgotPassword(db *gorm.DB, emailAddr string) error
	ResetPassword(db *gorm.DB, token, newPassword string) error
	GetCurrentUser(db *gorm.DB, userID string) (*dto.UserDTO, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserDTO, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	tokenIssuer   *auth.TokenIssuer
	emailProvider email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokenIssuer *auth.TokenIssuer,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		tokenIssuer:   tokenIssuer,
		emailProvider: emailProvider,
	}
}

func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	// Admins are seeded, never self-registered.
	roleName := req.Role
	if roleName == "" {
		roleName = auth.RoleClient
	}
	if roleName != auth.RoleClient && roleName != auth.RoleCoach {
		return nil, apperrors.ErrUnknownRole
	}

	role, err := s.userRepo.FindRoleByName(db, roleName)
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

	verificationToken := generateRandomToken()
	expiry := time.Now().Add(verificationTokenTTL)

	user := &models.User{
		Email:            req.Email,
		PasswordHash:     hash,
		DisplayName:      req.DisplayName,
		PhoneNumber:      req.PhoneNumber,
		RoleID:           role.ID,
		ResetToken:       verificationToken,
		ResetTokenExpiry: &expiry,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}
	user.Role = role

	// Delivery failures must not fail registration.
	if err := s.emailProvider.SendVerification(user.Email, verificationToken); err != nil {
		logger.Error("failed to send verification email", "user_id", user.ID, "error", err)
	}

	return s.buildAuthResponse(user)
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.buildAuthResponse(user)
}

func (s *AuthServiceImpl) VerifyEmail(db *gorm.DB, token string) error {
	user, err := s.userRepo.FindByResetToken(db, token)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.MarkEmailVerified(db, user.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ForgotPassword always reports success so the endpoint cannot be used to
// probe which emails are registered.
func (s *AuthServiceImpl) ForgotPassword(db *gorm.DB, emailAddr string) error {
	user, err := s.userRepo.FindByEmail(db, emailAddr)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			logger.Info("password reset requested for unknown email")
			return nil
		}
		return apperrors.InternalError(err)
	}

	resetToken := generateRandomToken()
	expiry := time.Now().Add(passwordResetTokenTTL)
	user.ResetToken = resetToken
	user.ResetTokenExpiry = &expiry

	if err := s.userRepo.Update(db, user); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.emailProvider.SendPasswordReset(user.Email, resetToken); err != nil {
		logger.Error("failed to send password reset email", "user_id", user.ID, "error", err)
	}
	return nil
}

func (s *AuthServiceImpl) ResetPassword(db *gorm.DB, token, newPassword string) error {
	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	user, err := s.userRepo.FindByResetToken(db, token)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hash
	user.ResetToken = ""
	user.ResetTokenExpiry = nil

	if err := s.userRepo.Update(db, user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) GetCurrentUser(db *gorm.DB, userID string) (*dto.UserDTO, error) {
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

func (s *AuthServiceImpl) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserDTO, error) {
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

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	userDTO := dto.NewUserDTO(user)
	return &userDTO, nil
}

func (s *AuthServiceImpl) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	token, err := s.tokenIssuer.Issue(user.ID, user.Email, user.RoleName())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{
		AccessToken: token,
		ExpiresIn:   int64(s.tokenIssuer.TTL().Seconds()),
		User:        dto.NewUserDTO(user),
	}, nil
}

// generateRandomToken returns a 64-char hex token.
func generateRandomToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing means the process environment is broken.
		panic(err)
	}
	return hex.EncodeToString(b)
}
