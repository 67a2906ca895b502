package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"wealthcoach_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminListUsers(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	_, client := helpers.CreateAndLoginClient(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/admin/users", adminToken, nil)

	require.Equal(t, http.StatusOK, res.Code, "list failed: %s", bodyStr)
	assert.Contains(t, bodyStr, client.Email)

	var resp struct {
		Total    int64 `json:"total"`
		Page     int   `json:"page"`
		PageSize int   `json:"page_size"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))
	assert.GreaterOrEqual(t, resp.Total, int64(2))
	assert.Equal(t, 1, resp.Page)
}

func TestAdminListUsers_RoleFilter(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	_, coach := helpers.CreateAndLoginCoach(t, ts, tx)
	_, client := helpers.CreateAndLoginClient(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/admin/users?role=COACH", adminToken, nil)

	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, bodyStr, coach.Email)
	assert.NotContains(t, bodyStr, client.Email)
}

func TestAdminRoutes_ForbiddenForOthers(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	clientToken, _ := helpers.CreateAndLoginClient(t, ts, tx)
	coachToken, _ := helpers.CreateAndLoginCoach(t, ts, tx)

	for _, token := range []string{clientToken, coachToken} {
		res, _ := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/admin/users", token, nil)
		assert.Equal(t, http.StatusForbidden, res.Code)
	}
}

func TestAdminUpdateUserRole(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	_, client := helpers.CreateAndLoginClient(t, ts, tx)

	newRole := "COACH"
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPut, "/api/v1/admin/users/"+client.ID, adminToken, map[string]interface{}{
		"role": newRole,
	})

	require.Equal(t, http.StatusOK, res.Code, "update failed: %s", bodyStr)
	assert.Contains(t, bodyStr, `"role":"COACH"`)
}

func TestAdminDeleteUser(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	_, client := helpers.CreateAndLoginClient(t, ts, tx)

	res, _ := ts.SendRequest(t, tx, http.MethodDelete, "/api/v1/admin/users/"+client.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, res.Code)

	res, _ = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/admin/users/"+client.ID, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestAdminCannotDeleteSelf(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, admin := helpers.CreateAndLoginAdmin(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodDelete, "/api/v1/admin/users/"+admin.ID, adminToken, nil)

	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Contains(t, bodyStr, "Cannot delete your own account")
}

func TestAdminListRoles(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/admin/roles", adminToken, nil)

	require.Equal(t, http.StatusOK, res.Code)
	for _, role := range []string{"ADMIN", "COACH", "CLIENT", "GUEST"} {
		assert.Contains(t, bodyStr, role)
	}
}

// A role change takes effect on the next request because the middleware
// resolves the user fresh every time.
func TestRoleDowngradeTakesEffectImmediately(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	victimToken, victim := helpers.CreateAndLoginAdmin(t, ts, tx)

	// The second admin can read the user list.
	res, _ := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/admin/users", victimToken, nil)
	require.Equal(t, http.StatusOK, res.Code)

	// Downgrade them to CLIENT.
	res, _ = ts.SendRequest(t, tx, http.MethodPut, "/api/v1/admin/users/"+victim.ID, adminToken, map[string]interface{}{
		"role": "CLIENT",
	})
	require.Equal(t, http.StatusOK, res.Code)

	// Their old token no longer opens admin routes.
	res, _ = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/admin/users", victimToken, nil)
	assert.Equal(t, http.StatusForbidden, res.Code)
}

func TestAdminCreateUser(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)

	email := fmt.Sprintf("provisioned-%d@example.com", time.Now().UnixNano())
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/admin/users", adminToken, map[string]interface{}{
		"email":        email,
		"password":     "secret-password-1",
		"display_name": "Provisioned Coach",
		"role":         "COACH",
	})

	require.Equal(t, http.StatusCreated, res.Code, "create failed: %s", bodyStr)
	assert.Contains(t, bodyStr, email)
	assert.Contains(t, bodyStr, `"role":"COACH"`)
	// Admin-created accounts skip email verification.
	assert.Contains(t, bodyStr, `"email_verified":true`)

	// The new account can log in right away.
	res, bodyStr = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "secret-password-1",
	})
	require.Equal(t, http.StatusOK, res.Code, "login failed: %s", bodyStr)
}

func TestAdminCreateUser_DuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	_, client := helpers.CreateAndLoginClient(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/admin/users", adminToken, map[string]interface{}{
		"email":        client.Email,
		"password":     "secret-password-1",
		"display_name": "Duplicate",
		"role":         "CLIENT",
	})

	assert.Equal(t, http.StatusConflict, res.Code)
	assert.Contains(t, bodyStr, "Email already in use")
}

func TestAdminCreateUser_ForbiddenForNonAdmins(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	coachToken, _ := helpers.CreateAndLoginCoach(t, ts, tx)

	res, _ := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/admin/users", coachToken, map[string]interface{}{
		"email":        "nope@example.com",
		"password":     "secret-password-1",
		"display_name": "Nope",
		"role":         "CLIENT",
	})

	assert.Equal(t, http.StatusForbidden, res.Code)
}
