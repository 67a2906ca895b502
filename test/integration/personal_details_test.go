package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"wealthcoach_backend/internal/models"
	"wealthcoach_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonalDetails_CreateAndGetOwn(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateAndLoginClient(t, ts, tx)

	createBody := map[string]interface{}{
		"first_name":     "Anna",
		"last_name":      "Schmidt",
		"email":          "anna.schmidt@test.com",
		"city":           "Berlin",
		"birth_date":     "1990-04-12",
		"marital_status": "single",
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/personal-details", token, createBody)
	require.Equal(t, http.StatusCreated, res.Code, "create failed: %s", bodyStr)
	assert.Contains(t, bodyStr, "Anna")

	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/personal-details/me", token, nil)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, bodyStr, "Schmidt")
	assert.Contains(t, bodyStr, "Berlin")
}

func TestPersonalDetails_SecondCreateConflicts(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginClient(t, ts, tx)
	helpers.CreatePersonalDetails(t, tx, user.ID, "")

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/personal-details", token, map[string]interface{}{
		"first_name": "Twice",
		"last_name":  "Created",
	})

	assert.Equal(t, http.StatusConflict, res.Code)
	assert.Contains(t, bodyStr, "already exist")
}

// TestPersonalDetails_AccessMatrix walks the ownership gate: the owner and
// the assigned coach and any admin may read the record, an unrelated client
// or coach gets 403.
func TestPersonalDetails_AccessMatrix(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	ownerToken, owner := helpers.CreateAndLoginClient(t, ts, tx)
	coachToken, coach := helpers.CreateAndLoginCoach(t, ts, tx)
	otherCoachToken, _ := helpers.CreateAndLoginCoach(t, ts, tx)
	strangerToken, _ := helpers.CreateAndLoginClient(t, ts, tx)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)

	details := helpers.CreatePersonalDetails(t, tx, owner.ID, coach.ID)
	path := fmt.Sprintf("/api/v1/personal-details/%s", details.ID)

	cases := []struct {
		name   string
		token  string
		status int
	}{
		{"owner", ownerToken, http.StatusOK},
		{"assigned coach", coachToken, http.StatusOK},
		{"admin", adminToken, http.StatusOK},
		{"unassigned coach", otherCoachToken, http.StatusForbidden},
		{"unrelated client", strangerToken, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, path, tc.token, nil)
			assert.Equal(t, tc.status, res.Code, "unexpected status for %s: %s", tc.name, bodyStr)
		})
	}
}

func TestPersonalDetails_CoachCreatesForClient(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	coachToken, coach := helpers.CreateAndLoginCoach(t, ts, tx)
	_, client := helpers.CreateAndLoginClient(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/personal-details", coachToken, map[string]interface{}{
		"user_id":    client.ID,
		"first_name": "Delegated",
		"last_name":  "Record",
	})
	require.Equal(t, http.StatusCreated, res.Code, "coach create failed: %s", bodyStr)

	var created struct {
		UserID  string `json:"user_id"`
		CoachID string `json:"coach_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))
	assert.Equal(t, client.ID, created.UserID)
	assert.Equal(t, coach.ID, created.CoachID)
}

func TestPersonalDetails_ClientCannotCreateForOthers(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	clientToken, _ := helpers.CreateAndLoginClient(t, ts, tx)
	_, victim := helpers.CreateAndLoginClient(t, ts, tx)

	res, _ := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/personal-details", clientToken, map[string]interface{}{
		"user_id":    victim.ID,
		"first_name": "Not",
		"last_name":  "Yours",
	})

	assert.Equal(t, http.StatusForbidden, res.Code)
}

func TestPersonalDetails_Update(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginClient(t, ts, tx)
	details := helpers.CreatePersonalDetails(t, tx, user.ID, "")

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPut, "/api/v1/personal-details/"+details.ID, token, map[string]interface{}{
		"city":  "Hamburg",
		"phone": "+49 40 123456",
	})

	require.Equal(t, http.StatusOK, res.Code, "update failed: %s", bodyStr)
	assert.Contains(t, bodyStr, "Hamburg")

	// The update must leave the coach column alone: with no coach assigned
	// it stays NULL, anything else would not be a valid uuid.
	var stored models.PersonalDetails
	require.NoError(t, tx.First(&stored, "id = ?", details.ID).Error)
	assert.Empty(t, stored.CoachID)
	assert.Equal(t, "Hamburg", stored.City)
}

func TestPersonalDetails_AssignAndClearCoach(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	coachToken, coach := helpers.CreateAndLoginCoach(t, ts, tx)
	_, client := helpers.CreateAndLoginClient(t, ts, tx)
	details := helpers.CreatePersonalDetails(t, tx, client.ID, "")

	// Unassigned coaches have no access.
	res, _ := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/personal-details/"+details.ID, coachToken, nil)
	require.Equal(t, http.StatusForbidden, res.Code)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPut, "/api/v1/personal-details/"+details.ID, adminToken, map[string]interface{}{
		"coach_id": coach.ID,
	})
	require.Equal(t, http.StatusOK, res.Code, "assign failed: %s", bodyStr)

	res, _ = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/personal-details/"+details.ID, coachToken, nil)
	assert.Equal(t, http.StatusOK, res.Code)

	// Clearing the assignment stores NULL and revokes the coach again.
	res, bodyStr = ts.SendRequest(t, tx, http.MethodPut, "/api/v1/personal-details/"+details.ID, adminToken, map[string]interface{}{
		"coach_id": "",
	})
	require.Equal(t, http.StatusOK, res.Code, "clear failed: %s", bodyStr)

	var stored models.PersonalDetails
	require.NoError(t, tx.First(&stored, "id = ?", details.ID).Error)
	assert.Empty(t, stored.CoachID)

	res, _ = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/personal-details/"+details.ID, coachToken, nil)
	assert.Equal(t, http.StatusForbidden, res.Code)
}

func TestPersonalDetails_ClientCannotReassignCoach(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginClient(t, ts, tx)
	_, coach := helpers.CreateAndLoginCoach(t, ts, tx)
	details := helpers.CreatePersonalDetails(t, tx, user.ID, "")

	res, _ := ts.SendRequest(t, tx, http.MethodPut, "/api/v1/personal-details/"+details.ID, token, map[string]interface{}{
		"coach_id": coach.ID,
	})
	assert.Equal(t, http.StatusForbidden, res.Code)
}

func TestPersonalDetails_List_ScopedByRole(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	coachToken, coach := helpers.CreateAndLoginCoach(t, ts, tx)
	_, clientA := helpers.CreateAndLoginClient(t, ts, tx)
	_, clientB := helpers.CreateAndLoginClient(t, ts, tx)

	assigned := helpers.CreatePersonalDetails(t, tx, clientA.ID, coach.ID)
	unassigned := helpers.CreatePersonalDetails(t, tx, clientB.ID, "")

	res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/personal-details", coachToken, nil)

	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, bodyStr, assigned.ID)
	assert.NotContains(t, bodyStr, unassigned.ID)
}

func TestProfileCompletion(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginClient(t, ts, tx)

	// No profile yet: every section reads false.
	res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/profile-completion", token, nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, bodyStr, `"percent":0`)

	helpers.CreatePersonalDetails(t, tx, user.ID, "")

	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/profile-completion", token, nil)
	require.Equal(t, http.StatusOK, res.Code)

	var completion struct {
		Percent  int             `json:"percent"`
		Sections map[string]bool `json:"sections"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &completion))
	assert.True(t, completion.Sections["personal_details"])
	assert.False(t, completion.Sections["employment"])
	assert.Greater(t, completion.Percent, 0)
}
