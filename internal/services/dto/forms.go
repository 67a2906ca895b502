package dto

import "encoding/json"

// Contract form payloads. UserID of the record comes from the authenticated
// principal (or, for coaches and admins, the user_id query parameter).

type KfzFormRequest struct {
	InsuranceCompany  string          `json:"insurance_company" binding:"required"`
	PolicyNumber      string          `json:"policy_number" binding:"required"`
	StartDate         string          `json:"start_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	EndDate           string          `json:"end_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	VehicleMake       string          `json:"vehicle_make,omitempty"`
	VehicleModel      string          `json:"vehicle_model,omitempty"`
	LicensePlate      string          `json:"license_plate,omitempty"`
	VinNumber         string          `json:"vin_number,omitempty"`
	YearOfManufacture int             `json:"year_of_manufacture,omitempty" binding:"omitempty,min=1900,max=2100"`
	InsuranceType     string          `json:"insurance_type,omitempty"`
	CoverageAmount    float64         `json:"coverage_amount" binding:"min=0"`
	Deductible        float64         `json:"deductible" binding:"min=0"`
	MonthlyPremium    float64         `json:"monthly_premium" binding:"min=0"`
	PaymentFrequency  string          `json:"payment_frequency,omitempty" binding:"omitempty,oneof=monthly quarterly half-yearly yearly"`
	AdditionalDrivers json.RawMessage `json:"additional_drivers,omitempty"`
	Documents         json.RawMessage `json:"documents,omitempty"`
	Notes             string          `json:"notes,omitempty"`
}

type LoanFormRequest struct {
	LoanType         string  `json:"loan_type" binding:"required,is-loan-type"`
	Bank             string  `json:"bank" binding:"required"`
	LoanAmount       float64 `json:"loan_amount" binding:"min=0"`
	InterestRate     float64 `json:"interest_rate" binding:"min=0"`
	MonthlyRate      float64 `json:"monthly_rate" binding:"min=0"`
	StartDate        string  `json:"start_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	EndDate          string  `json:"end_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	RemainingBalance float64 `json:"remaining_balance" binding:"min=0"`
	Purpose          string  `json:"purpose,omitempty"`
	Notes            string  `json:"notes,omitempty"`
}

type ImmobilienFormRequest struct {
	PropertyType    string  `json:"property_type" binding:"required"`
	Address         string  `json:"address,omitempty"`
	PurchasePrice   float64 `json:"purchase_price" binding:"min=0"`
	CurrentValue    float64 `json:"current_value" binding:"min=0"`
	PurchaseDate    string  `json:"purchase_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	LivingArea      float64 `json:"living_area" binding:"min=0"`
	LandArea        float64 `json:"land_area" binding:"min=0"`
	RentalIncome    float64 `json:"rental_income" binding:"min=0"`
	OutstandingLoan float64 `json:"outstanding_loan" binding:"min=0"`
	Usage           string  `json:"usage,omitempty" binding:"omitempty,oneof=own rented mixed"`
	Notes           string  `json:"notes,omitempty"`
}

type PrivateHealthFormRequest struct {
	InsuranceCompany string  `json:"insurance_company" binding:"required"`
	PolicyNumber     string  `json:"policy_number" binding:"required"`
	Tariff           string  `json:"tariff,omitempty"`
	MonthlyPremium   float64 `json:"monthly_premium" binding:"min=0"`
	Deductible       float64 `json:"deductible" binding:"min=0"`
	StartDate        string  `json:"start_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	DailySicknessPay float64 `json:"daily_sickness_pay" binding:"min=0"`
	DentalCoverage   bool    `json:"dental_coverage"`
	Notes            string  `json:"notes,omitempty"`
}

type StateHealthFormRequest struct {
	InsuranceCompany  string  `json:"insurance_company" binding:"required"`
	InsuranceNumber   string  `json:"insurance_number" binding:"required"`
	MemberSince       string  `json:"member_since,omitempty" binding:"omitempty,datetime=2006-01-02"`
	ContributionRate  float64 `json:"contribution_rate" binding:"min=0"`
	AdditionalRate    float64 `json:"additional_rate" binding:"min=0"`
	FamilyInsured     bool    `json:"family_insured"`
	SupplementaryPlan string  `json:"supplementary_plan,omitempty"`
	Notes             string  `json:"notes,omitempty"`
}

type FormConfigurationRequest struct {
	Name     string          `json:"name" binding:"required"`
	FormType string          `json:"form_type" binding:"required,oneof=kfz loan immobilien private_health state_health custom"`
	Schema   json.RawMessage `json:"schema" binding:"required"`
	IsActive *bool           `json:"is_active,omitempty"`
}
