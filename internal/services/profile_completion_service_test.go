package services

import (
	"testing"

	"wealthcoach_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildCompletion_Empty(t *testing.T) {
	completion := buildCompletion(&models.PersonalDetails{})

	assert.Equal(t, 0, completion.Percent)
	for name, filled := range completion.Sections {
		assert.False(t, filled, "section %s must start empty", name)
	}
	assert.Len(t, completion.Sections, len(completionSections))
}

func TestBuildCompletion_PersonalDetailsNeedsBothNames(t *testing.T) {
	completion := buildCompletion(&models.PersonalDetails{FirstName: "Anna"})
	assert.False(t, completion.Sections["personal_details"])

	completion = buildCompletion(&models.PersonalDetails{FirstName: "Anna", LastName: "Schmidt"})
	assert.True(t, completion.Sections["personal_details"])
}

func TestBuildCompletion_Percent(t *testing.T) {
	details := &models.PersonalDetails{
		FirstName:         "Anna",
		LastName:          "Schmidt",
		EmploymentDetails: []models.EmploymentDetails{{}},
		IncomeDetails:     []models.IncomeDetails{{}},
		RiskAppetite:      &models.RiskAppetite{},
		GoalsAndWishes:    &models.GoalsAndWishes{},
	}

	completion := buildCompletion(details)

	assert.True(t, completion.Sections["employment"])
	assert.True(t, completion.Sections["income"])
	assert.True(t, completion.Sections["risk_appetite"])
	assert.True(t, completion.Sections["goals_and_wishes"])
	assert.False(t, completion.Sections["assets"])
	assert.False(t, completion.Sections["documents"])

	// 5 of 10 sections filled.
	assert.Equal(t, 50, completion.Percent)
}

func TestBuildCompletion_Full(t *testing.T) {
	details := &models.PersonalDetails{
		FirstName:         "Anna",
		LastName:          "Schmidt",
		EmploymentDetails: []models.EmploymentDetails{{}},
		IncomeDetails:     []models.IncomeDetails{{}},
		ExpensesDetails:   []models.ExpensesDetails{{}},
		Assets:            []models.Asset{{}},
		Liabilities:       []models.Liability{{}},
		GoalsAndWishes:    &models.GoalsAndWishes{},
		RiskAppetite:      &models.RiskAppetite{},
		Consents:          []models.Consent{{}},
		Documents:         []models.Document{{}},
	}

	completion := buildCompletion(details)
	assert.Equal(t, 100, completion.Percent)
}

func TestEmptyCompletion(t *testing.T) {
	completion := emptyCompletion()
	assert.Equal(t, 0, completion.Percent)
	assert.Len(t, completion.Sections, len(completionSections))
}
