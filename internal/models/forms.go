package models

import (
	"time"

	"gorm.io/datatypes"
)

// Insurance and loan contract forms. Each is keyed by the owning user; a coach
// reaches them through the owner's PersonalDetails assignment.

type KfzForm struct {
	BaseModel
	UserID            string         `gorm:"type:uuid;not null;index" json:"user_id"`
	InsuranceCompany  string         `gorm:"not null" json:"insurance_company"`
	PolicyNumber      string         `gorm:"not null" json:"policy_number"`
	StartDate         time.Time      `json:"start_date"`
	EndDate           *time.Time     `json:"end_date,omitempty"`
	VehicleMake       string         `json:"vehicle_make"`
	VehicleModel      string         `json:"vehicle_model"`
	LicensePlate      string         `json:"license_plate"`
	VinNumber         string         `json:"vin_number"`
	YearOfManufacture int            `json:"year_of_manufacture"`
	InsuranceType     string         `gorm:"type:varchar(30)" json:"insurance_type"`
	CoverageAmount    float64        `json:"coverage_amount"`
	Deductible        float64        `json:"deductible"`
	MonthlyPremium    float64        `json:"monthly_premium"`
	PaymentFrequency  string         `gorm:"type:varchar(20)" json:"payment_frequency"`
	AdditionalDrivers datatypes.JSON `gorm:"type:jsonb" json:"additional_drivers,omitempty"`
	Documents         datatypes.JSON `gorm:"type:jsonb" json:"documents,omitempty"`
	Notes             string         `json:"notes"`
}

type LoanForm struct {
	BaseModel
	UserID           string     `gorm:"type:uuid;not null;index" json:"user_id"`
	LoanType         LoanType   `gorm:"type:varchar(30);not null" json:"loan_type"`
	Bank             string     `gorm:"not null" json:"bank"`
	LoanAmount       float64    `json:"loan_amount"`
	InterestRate     float64    `json:"interest_rate"`
	MonthlyRate      float64    `json:"monthly_rate"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	RemainingBalance float64    `json:"remaining_balance"`
	Purpose          string     `json:"purpose"`
	Notes            string     `json:"notes"`
}

type ImmobilienForm struct {
	BaseModel
	UserID          string    `gorm:"type:uuid;not null;index" json:"user_id"`
	PropertyType    string    `gorm:"not null" json:"property_type"`
	Address         string    `json:"address"`
	PurchasePrice   float64   `json:"purchase_price"`
	CurrentValue    float64   `json:"current_value"`
	PurchaseDate    time.Time `json:"purchase_date"`
	LivingArea      float64   `json:"living_area"`
	LandArea        float64   `json:"land_area"`
	RentalIncome    float64   `json:"rental_income"`
	OutstandingLoan float64   `json:"outstanding_loan"`
	Usage           string    `gorm:"type:varchar(30)" json:"usage"`
	Notes           string    `json:"notes"`
}

type PrivateHealthInsuranceForm struct {
	BaseModel
	UserID           string    `gorm:"type:uuid;not null;index" json:"user_id"`
	InsuranceCompany string    `gorm:"not null" json:"insurance_company"`
	PolicyNumber     string    `gorm:"not null" json:"policy_number"`
	Tariff           string    `json:"tariff"`
	MonthlyPremium   float64   `json:"monthly_premium"`
	Deductible       float64   `json:"deductible"`
	StartDate        time.Time `json:"start_date"`
	DailySicknessPay float64   `json:"daily_sickness_pay"`
	DentalCoverage   bool      `json:"dental_coverage"`
	Notes            string    `json:"notes"`
}

type StateHealthInsuranceForm struct {
	BaseModel
	UserID            string    `gorm:"type:uuid;not null;index" json:"user_id"`
	InsuranceCompany  string    `gorm:"not null" json:"insurance_company"`
	InsuranceNumber   string    `gorm:"not null" json:"insurance_number"`
	MemberSince       time.Time `json:"member_since"`
	ContributionRate  float64   `json:"contribution_rate"`
	AdditionalRate    float64   `json:"additional_rate"`
	FamilyInsured     bool      `json:"family_insured"`
	SupplementaryPlan string    `json:"supplementary_plan"`
	Notes             string    `json:"notes"`
}

// FormConfiguration is an admin-managed description of a dynamic form.
type FormConfiguration struct {
	BaseModel
	Name     string         `gorm:"uniqueIndex;not null" json:"name"`
	FormType string         `gorm:"type:varchar(40);not null" json:"form_type"`
	Schema   datatypes.JSON `gorm:"type:jsonb;not null" json:"schema"`
	IsActive bool           `gorm:"default:true" json:"is_active"`
}
