package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	Role           string `json:"role" binding:"omitempty,is-role"`
	EmploymentType string `json:"employment_type" binding:"omitempty,is-employment-type"`
	LoanType       string `json:"loan_type" binding:"omitempty,is-loan-type"`
	ConsentType    string `json:"consent_type" binding:"omitempty,is-consent-type"`
	Date           string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

func TestValidate_Passes(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email:          "user@test.com",
		Password:       "long enough",
		Role:           "COACH",
		EmploymentType: "Employed",
		LoanType:       "HomeLoan",
		ConsentType:    "Marketing",
		Date:           "2024-06-15",
	})
	assert.NoError(t, err)
}

func TestValidate_EmptyOptionalFieldsPass(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email:    "user@test.com",
		Password: "long enough",
	})
	assert.NoError(t, err)
}

func TestValidate_FieldMessagesUseJSONNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email:    "not-an-email",
		Password: "short",
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", err)

	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
	assert.Equal(t, "Must be at least 8 characters long", vErr.Errors["password"])
}

func TestValidate_CustomRules(t *testing.T) {
	v := New()

	cases := []struct {
		name    string
		request sampleRequest
		field   string
	}{
		{"unknown role", sampleRequest{Role: "SUPERUSER"}, "role"},
		{"unknown employment type", sampleRequest{EmploymentType: "Freelancing"}, "employment_type"},
		{"unknown loan type", sampleRequest{LoanType: "Payday"}, "loan_type"},
		{"unknown consent type", sampleRequest{ConsentType: "Cookies"}, "consent_type"},
		{"bad date format", sampleRequest{Date: "15.06.2024"}, "date"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.request.Email = "user@test.com"
			tc.request.Password = "long enough"

			err := v.Validate(&tc.request)
			require.Error(t, err)

			vErr, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.Contains(t, vErr.Errors, tc.field)
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Errors: map[string]string{"email": "Must be a valid email address"}}
	assert.Contains(t, err.Error(), "email")
	assert.Contains(t, err.Error(), "Validation failed")
}
