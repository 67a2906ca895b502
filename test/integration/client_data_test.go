package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"wealthcoach_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployment_CreateListUpdateDelete(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginClient(t, ts, tx)
	details := helpers.CreatePersonalDetails(t, tx, user.ID, "")
	base := fmt.Sprintf("/api/v1/personal-details/%s/employment", details.ID)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, base, token, map[string]interface{}{
		"employment_type": "Employed",
		"occupation":      "Software Engineer",
		"employer_name":   "ACME GmbH",
		"employed_since":  "2019-03-01",
	})
	require.Equal(t, http.StatusCreated, res.Code, "create failed: %s", bodyStr)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))
	require.NotEmpty(t, created.ID)

	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet, base, token, nil)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, bodyStr, "ACME GmbH")

	res, bodyStr = ts.SendRequest(t, tx, http.MethodPut, "/api/v1/employment/"+created.ID, token, map[string]interface{}{
		"employment_type": "SelfEmployed",
		"occupation":      "Consultant",
	})
	assert.Equal(t, http.StatusOK, res.Code, "update failed: %s", bodyStr)
	assert.Contains(t, bodyStr, "SelfEmployed")

	res, _ = ts.SendRequest(t, tx, http.MethodDelete, "/api/v1/employment/"+created.ID, token, nil)
	assert.Equal(t, http.StatusOK, res.Code)

	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet, base, token, nil)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.NotContains(t, bodyStr, created.ID)
}

func TestEmployment_InvalidTypeRejected(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginClient(t, ts, tx)
	details := helpers.CreatePersonalDetails(t, tx, user.ID, "")

	res, _ := ts.SendRequest(t, tx, http.MethodPost,
		fmt.Sprintf("/api/v1/personal-details/%s/employment", details.ID), token,
		map[string]interface{}{"employment_type": "Freelancing"})

	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestIncomeAndExpenses(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginClient(t, ts, tx)
	details := helpers.CreatePersonalDetails(t, tx, user.ID, "")

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost,
		fmt.Sprintf("/api/v1/personal-details/%s/income", details.ID), token,
		map[string]interface{}{
			"gross_income":       5200.50,
			"net_income":         3400.00,
			"tax_class":          "1",
			"number_of_salaries": 13,
		})
	require.Equal(t, http.StatusCreated, res.Code, "income create failed: %s", bodyStr)

	res, bodyStr = ts.SendRequest(t, tx, http.MethodPost,
		fmt.Sprintf("/api/v1/personal-details/%s/expenses", details.ID), token,
		map[string]interface{}{
			"cold_rent":   1200,
			"electricity": 80,
			"gas":         60,
		})
	require.Equal(t, http.StatusCreated, res.Code, "expenses create failed: %s", bodyStr)

	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet,
		fmt.Sprintf("/api/v1/personal-details/%s/income", details.ID), token, nil)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, bodyStr, "5200.5")
}

func TestLiability_InvalidLoanTypeRejected(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginClient(t, ts, tx)
	details := helpers.CreatePersonalDetails(t, tx, user.ID, "")

	res, _ := ts.SendRequest(t, tx, http.MethodPost,
		fmt.Sprintf("/api/v1/personal-details/%s/liabilities", details.ID), token,
		map[string]interface{}{"loan_type": "Payday", "loan_amount": 1000})

	assert.Equal(t, http.StatusBadRequest, res.Code)
}

// Goals and risk appetite are single records per profile: the first PUT
// creates, later PUTs update in place.
func TestGoals_UpsertSemantics(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginClient(t, ts, tx)
	details := helpers.CreatePersonalDetails(t, tx, user.ID, "")
	path := fmt.Sprintf("/api/v1/personal-details/%s/goals", details.ID)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPut, path, token, map[string]interface{}{
		"retirement_planning": "private pension",
		"capital_formation":   "ETF savings plan",
	})
	require.Equal(t, http.StatusOK, res.Code, "first put failed: %s", bodyStr)

	var first struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &first))

	res, bodyStr = ts.SendRequest(t, tx, http.MethodPut, path, token, map[string]interface{}{
		"retirement_planning": "company pension",
	})
	require.Equal(t, http.StatusOK, res.Code)

	var second struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &second))
	assert.Equal(t, first.ID, second.ID, "second put must update the same record")

	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet, path, token, nil)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, bodyStr, "company pension")
}

func TestRiskAppetite_SetAndGet(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginClient(t, ts, tx)
	details := helpers.CreatePersonalDetails(t, tx, user.ID, "")
	path := fmt.Sprintf("/api/v1/personal-details/%s/risk-appetite", details.ID)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPut, path, token, map[string]interface{}{
		"risk_appetite":      "moderate",
		"investment_horizon": "10 years",
	})
	require.Equal(t, http.StatusOK, res.Code, "put failed: %s", bodyStr)

	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet, path, token, nil)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, bodyStr, "moderate")
}

func TestConsent_CreateAndList(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginClient(t, ts, tx)
	details := helpers.CreatePersonalDetails(t, tx, user.ID, "")
	base := fmt.Sprintf("/api/v1/personal-details/%s/consents", details.ID)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, base, token, map[string]interface{}{
		"consent_type": "DataProcessing",
		"consent":      true,
		"consent_date": "2026-08-29",
		"location":     "Berlin",
	})
	require.Equal(t, http.StatusCreated, res.Code, "consent create failed: %s", bodyStr)

	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet, base, token, nil)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, bodyStr, "DataProcessing")
}

func TestClientData_StrangerGets403(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, owner := helpers.CreateAndLoginClient(t, ts, tx)
	strangerToken, _ := helpers.CreateAndLoginClient(t, ts, tx)
	details := helpers.CreatePersonalDetails(t, tx, owner.ID, "")

	res, _ := ts.SendRequest(t, tx, http.MethodGet,
		fmt.Sprintf("/api/v1/personal-details/%s/employment", details.ID), strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.Code)

	res, _ = ts.SendRequest(t, tx, http.MethodPost,
		fmt.Sprintf("/api/v1/personal-details/%s/income", details.ID), strangerToken,
		map[string]interface{}{"gross_income": 1})
	assert.Equal(t, http.StatusForbidden, res.Code)
}
