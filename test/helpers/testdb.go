package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"wealthcoach_backend/internal/auth"
	"wealthcoach_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// CreateUser inserts a user with the given role and a hashed password.
func CreateUser(t *testing.T, tx *gorm.DB, email, password, roleName string) *models.User {
	var role models.Role
	err := tx.Where("name = ?", roleName).First(&role).Error
	require.NoError(t, err, "role %s must be seeded", roleName)

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Email:         email,
		PasswordHash:  hash,
		DisplayName:   "Test User",
		EmailVerified: true,
		RoleID:        role.ID,
	}
	require.NoError(t, tx.Create(user).Error, "failed to create test user %s", email)

	user.Role = &role
	return user
}

// CreateAndLoginUser creates a user and logs in through the API.
func CreateAndLoginUser(t *testing.T, ts *TestServer, tx *gorm.DB, email, password, roleName string) (string, *models.User) {
	user := CreateUser(t, tx, email, password, roleName)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.Code, "login must succeed, got: %s", bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &loginResponse))
	require.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}

// CreateAndLoginClient creates a client with a unique email.
func CreateAndLoginClient(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("client_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, tx, email, "password123", auth.RoleClient)
}

// CreateAndLoginCoach creates a coach with a unique email.
func CreateAndLoginCoach(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("coach_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, tx, email, "password123", auth.RoleCoach)
}

// CreateAndLoginAdmin creates an admin with a unique email.
func CreateAndLoginAdmin(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("admin_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, tx, email, "password123", auth.RoleAdmin)
}

// CreatePersonalDetails inserts a client profile, optionally assigned to a
// coach.
func CreatePersonalDetails(t *testing.T, tx *gorm.DB, userID, coachID string) *models.PersonalDetails {
	details := &models.PersonalDetails{
		UserID:        userID,
		CoachID:       coachID,
		FirstName:     "Max",
		LastName:      "Mustermann",
		Email:         fmt.Sprintf("profile_%d@test.com", time.Now().UnixNano()),
		ApplicantType: models.ApplicantPrimary,
	}
	require.NoError(t, tx.Create(details).Error, "failed to create personal details")
	return details
}
