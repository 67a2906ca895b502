package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"wealthcoach_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKfzForm_CreateListDelete(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateAndLoginClient(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/forms/kfz", token, map[string]interface{}{
		"insurance_company": "Allianz",
		"policy_number":     "KFZ-2024-001",
		"vehicle_make":      "Volkswagen",
		"vehicle_model":     "Golf",
		"license_plate":     "B-AB 1234",
		"start_date":        "2024-01-01",
		"monthly_premium":   62.50,
		"payment_frequency": "monthly",
		"additional_drivers": []map[string]interface{}{
			{"name": "Erika Mustermann", "license_since": "2010"},
		},
	})
	require.Equal(t, http.StatusCreated, res.Code, "kfz create failed: %s", bodyStr)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))

	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/forms/kfz", token, nil)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, bodyStr, "KFZ-2024-001")

	res, _ = ts.SendRequest(t, tx, http.MethodDelete, "/api/v1/forms/kfz/"+created.ID, token, nil)
	assert.Equal(t, http.StatusOK, res.Code)

	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/forms/kfz", token, nil)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.NotContains(t, bodyStr, created.ID)
}

func TestLoanForm_Update(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateAndLoginClient(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/forms/loans", token, map[string]interface{}{
		"loan_type":    "HomeLoan",
		"bank":         "Sparkasse",
		"loan_amount":  250000,
		"monthly_rate": 980,
	})
	require.Equal(t, http.StatusCreated, res.Code, "loan create failed: %s", bodyStr)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))

	res, bodyStr = ts.SendRequest(t, tx, http.MethodPut, "/api/v1/forms/loans/"+created.ID, token, map[string]interface{}{
		"loan_type":         "HomeLoan",
		"bank":              "Sparkasse",
		"loan_amount":       250000,
		"monthly_rate":      1050,
		"remaining_balance": 238000,
	})
	assert.Equal(t, http.StatusOK, res.Code, "loan update failed: %s", bodyStr)
	assert.Contains(t, bodyStr, "1050")
}

// A coach reaches a client's forms through the user_id query parameter, but
// only when the client's profile is assigned to them.
func TestForms_CoachAccess(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	clientToken, client := helpers.CreateAndLoginClient(t, ts, tx)
	coachToken, coach := helpers.CreateAndLoginCoach(t, ts, tx)
	otherCoachToken, _ := helpers.CreateAndLoginCoach(t, ts, tx)

	helpers.CreatePersonalDetails(t, tx, client.ID, coach.ID)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/forms/private-health", clientToken, map[string]interface{}{
		"insurance_company": "Debeka",
		"policy_number":     "PKV-555",
		"monthly_premium":   420,
	})
	require.Equal(t, http.StatusCreated, res.Code, "create failed: %s", bodyStr)

	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/forms/private-health?user_id="+client.ID, coachToken, nil)
	assert.Equal(t, http.StatusOK, res.Code, "assigned coach must read: %s", bodyStr)
	assert.Contains(t, bodyStr, "PKV-555")

	res, _ = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/forms/private-health?user_id="+client.ID, otherCoachToken, nil)
	assert.Equal(t, http.StatusForbidden, res.Code)
}

func TestStateHealthForm_Create(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateAndLoginClient(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/forms/state-health", token, map[string]interface{}{
		"insurance_company": "TK",
		"insurance_number":  "A123456789",
		"member_since":      "2015-07-01",
		"contribution_rate": 14.6,
		"additional_rate":   1.2,
	})

	require.Equal(t, http.StatusCreated, res.Code, "state health create failed: %s", bodyStr)
	assert.Contains(t, bodyStr, "A123456789")
}

func TestFormConfigurations_AdminOnlyWrites(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	clientToken, _ := helpers.CreateAndLoginClient(t, ts, tx)

	configBody := map[string]interface{}{
		"name":      "kfz-extended",
		"form_type": "kfz",
		"schema":    map[string]interface{}{"fields": []string{"insurance_company", "policy_number"}},
	}

	// Writes live under the admin group: a client never reaches them.
	res, _ := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/admin/form-configurations", clientToken, configBody)
	assert.Equal(t, http.StatusForbidden, res.Code)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/admin/form-configurations", adminToken, configBody)
	require.Equal(t, http.StatusCreated, res.Code, "admin create failed: %s", bodyStr)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))

	// Any authenticated user can read the active configurations.
	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/form-configurations", clientToken, nil)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, bodyStr, "kfz-extended")

	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/form-configurations/"+created.ID, clientToken, nil)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, bodyStr, "kfz-extended")
}

func TestFormConfigurations_DuplicateName(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)

	configBody := map[string]interface{}{
		"name":      "duplicate-config",
		"form_type": "custom",
		"schema":    map[string]interface{}{"fields": []string{}},
	}

	res, _ := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/admin/form-configurations", adminToken, configBody)
	require.Equal(t, http.StatusCreated, res.Code)

	res, _ = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/admin/form-configurations", adminToken, configBody)
	assert.Equal(t, http.StatusConflict, res.Code)
}
