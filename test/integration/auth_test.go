package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"wealthcoach_backend/internal/models"
	"wealthcoach_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	registerBody := map[string]interface{}{
		"email":        "newclient@test.com",
		"password":     "super_password123",
		"display_name": "New Client",
	}
	regRes, regBodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/register", "", registerBody)

	require.Equal(t, http.StatusCreated, regRes.Code, "registration failed: %s", regBodyStr)
	assert.Contains(t, regBodyStr, "access_token")
	assert.Contains(t, regBodyStr, `"role":"CLIENT"`)

	loginBody := map[string]interface{}{
		"email":    "newclient@test.com",
		"password": "super_password123",
	}
	logRes, logBodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", "", loginBody)

	assert.Equal(t, http.StatusOK, logRes.Code)
	assert.Contains(t, logBodyStr, "access_token")

	var loginResp struct {
		ExpiresIn int64 `json:"expires_in"`
	}
	require.NoError(t, json.Unmarshal([]byte(logBodyStr), &loginResp))
	assert.Greater(t, loginResp.ExpiresIn, int64(0))
}

func TestRegister_AdminRoleRejected(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	registerBody := map[string]interface{}{
		"email":        "sneaky@test.com",
		"password":     "super_password123",
		"display_name": "Sneaky",
		"role":         "ADMIN",
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/register", "", registerBody)

	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Contains(t, bodyStr, "Unknown role")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	helpers.CreateUser(t, tx, "duplicate@test.com", "password123", "CLIENT")

	duplicateBody := map[string]interface{}{
		"email":        "duplicate@test.com",
		"password":     "another_password123",
		"display_name": "Second User",
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/register", "", duplicateBody)

	assert.Equal(t, http.StatusConflict, res.Code)
	assert.Contains(t, bodyStr, "Email already in use")
}

func TestLogin_BadPassword(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	helpers.CreateUser(t, tx, "badpass@test.com", "correct-password", "CLIENT")

	loginBody := map[string]interface{}{
		"email":    "badpass@test.com",
		"password": "WRONG-password",
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", "", loginBody)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.Contains(t, bodyStr, "Invalid email or password")
}

func TestLogin_UnknownEmail(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	loginBody := map[string]interface{}{
		"email":    "ghost@test.com",
		"password": "whatever-password",
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", "", loginBody)

	// Same answer as a wrong password so the endpoint does not leak which
	// emails exist.
	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.Contains(t, bodyStr, "Invalid email or password")
}

func TestMe(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginClient(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/auth/me", token, nil)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, bodyStr, user.Email)
	assert.Contains(t, bodyStr, `"role":"CLIENT"`)
}

func TestMe_NoToken(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, _ := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/auth/me", "", nil)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestMe_TamperedToken(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateAndLoginClient(t, ts, tx)
	tampered := token[:len(token)-2] + "xx"

	res, _ := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/auth/me", tampered, nil)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestUpdateProfile(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateAndLoginClient(t, ts, tx)

	newName := "Renamed Client"
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPut, "/api/v1/auth/profile", token, map[string]interface{}{
		"display_name": newName,
	})

	require.Equal(t, http.StatusOK, res.Code, "profile update failed: %s", bodyStr)

	var updated struct {
		DisplayName string `json:"display_name"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &updated))
	assert.Equal(t, newName, updated.DisplayName)
}

func TestForgotPassword_UnknownEmailStillSucceeds(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/forgot-password", "", map[string]interface{}{
		"email": "nobody@test.com",
	})

	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, bodyStr, "reset link")
}

func TestVerifyEmail(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	registerBody := map[string]interface{}{
		"email":        "toverify@test.com",
		"password":     "super_password123",
		"display_name": "To Verify",
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, res.Code, "registration failed: %s", bodyStr)

	// Grab the verification token straight from the row, as the mailed
	// link would carry it.
	var user models.User
	require.NoError(t, tx.First(&user, "email = ?", "toverify@test.com").Error)
	require.NotEmpty(t, user.ResetToken)
	assert.False(t, user.EmailVerified)

	res, bodyStr = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/verify-email", "", map[string]interface{}{
		"token": user.ResetToken,
	})
	require.Equal(t, http.StatusOK, res.Code, "verification failed: %s", bodyStr)

	require.NoError(t, tx.First(&user, "email = ?", "toverify@test.com").Error)
	assert.True(t, user.EmailVerified)
}

func TestVerifyEmail_BadToken(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, _ := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/verify-email", "", map[string]interface{}{
		"token": "definitely-not-a-real-token",
	})
	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestResetPasswordFlow(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	user := helpers.CreateUser(t, tx, "resetme@test.com", "old_password123", "CLIENT")

	res, _ := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/forgot-password", "", map[string]interface{}{
		"email": user.Email,
	})
	require.Equal(t, http.StatusOK, res.Code)

	var stored models.User
	require.NoError(t, tx.First(&stored, "email = ?", user.Email).Error)
	require.NotEmpty(t, stored.ResetToken)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/reset-password", "", map[string]interface{}{
		"token":        stored.ResetToken,
		"new_password": "brand_new_password1",
	})
	require.Equal(t, http.StatusOK, res.Code, "reset failed: %s", bodyStr)

	// Old credential is dead, the new one works.
	res, _ = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": "old_password123",
	})
	assert.Equal(t, http.StatusUnauthorized, res.Code)

	res, _ = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": "brand_new_password1",
	})
	assert.Equal(t, http.StatusOK, res.Code)

	// The token is single-use.
	res, _ = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/reset-password", "", map[string]interface{}{
		"token":        stored.ResetToken,
		"new_password": "yet_another_password1",
	})
	assert.Equal(t, http.StatusUnauthorized, res.Code)
}
