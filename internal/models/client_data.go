package models

import "time"

type EmploymentType string

const (
	EmploymentEmployed     EmploymentType = "Employed"
	EmploymentSelfEmployed EmploymentType = "SelfEmployed"
	EmploymentUnemployed   EmploymentType = "Unemployed"
	EmploymentRetired      EmploymentType = "Retired"
	EmploymentStudent      EmploymentType = "Student"
)

type LoanType string

const (
	LoanPersonal   LoanType = "PersonalLoan"
	LoanRealEstate LoanType = "HomeLoan"
	LoanCar        LoanType = "CarLoan"
	LoanBusiness   LoanType = "BusinessLoan"
	LoanEducation  LoanType = "EducationLoan"
	LoanOther      LoanType = "OtherLoan"
)

type EmploymentDetails struct {
	BaseModel
	PersonalID       string         `gorm:"type:uuid;not null;index" json:"personal_id"`
	EmploymentType   EmploymentType `gorm:"type:varchar(30);not null" json:"employment_type"`
	Occupation       string         `json:"occupation"`
	ContractType     string         `json:"contract_type"`
	ContractDuration string         `json:"contract_duration"`
	EmployerName     string         `json:"employer_name"`
	EmployedSince    time.Time      `json:"employed_since"`
}

type IncomeDetails struct {
	BaseModel
	PersonalID             string  `gorm:"type:uuid;not null;index" json:"personal_id"`
	GrossIncome            float64 `json:"gross_income"`
	NetIncome              float64 `json:"net_income"`
	TaxClass               string  `json:"tax_class"`
	TaxID                  string  `json:"tax_id"`
	NumberOfSalaries       int     `json:"number_of_salaries"`
	ChildBenefit           float64 `json:"child_benefit"`
	OtherIncome            float64 `json:"other_income"`
	IncomeTradeBusiness    float64 `json:"income_trade_business"`
	IncomeSelfEmployedWork float64 `json:"income_self_employed_work"`
	IncomeSideJob          float64 `json:"income_side_job"`
}

type ExpensesDetails struct {
	BaseModel
	PersonalID            string  `gorm:"type:uuid;not null;index" json:"personal_id"`
	ColdRent              float64 `json:"cold_rent"`
	Electricity           float64 `json:"electricity"`
	LivingExpenses        float64 `json:"living_expenses"`
	Gas                   float64 `json:"gas"`
	Telecommunication     float64 `json:"telecommunication"`
	AccountMaintenanceFee float64 `json:"account_maintenance_fee"`
	Alimony               float64 `json:"alimony"`
	Subscriptions         float64 `json:"subscriptions"`
	OtherExpenses         float64 `json:"other_expenses"`
}

type Asset struct {
	BaseModel
	PersonalID      string  `gorm:"type:uuid;not null;index" json:"personal_id"`
	RealEstate      float64 `json:"real_estate"`
	Securities      float64 `json:"securities"`
	BankDeposits    float64 `json:"bank_deposits"`
	BuildingSavings float64 `json:"building_savings"`
	InsuranceValues float64 `json:"insurance_values"`
	OtherAssets     float64 `json:"other_assets"`
}

type Liability struct {
	BaseModel
	PersonalID      string   `gorm:"type:uuid;not null;index" json:"personal_id"`
	LoanType        LoanType `gorm:"type:varchar(30);not null" json:"loan_type"`
	LoanBank        string   `json:"loan_bank"`
	LoanAmount      float64  `json:"loan_amount"`
	LoanMonthlyRate float64  `json:"loan_monthly_rate"`
	LoanInterest    float64  `json:"loan_interest"`
}

// GoalsAndWishes is 1:1 with PersonalDetails.
type GoalsAndWishes struct {
	BaseModel
	PersonalID          string `gorm:"type:uuid;uniqueIndex;not null" json:"personal_id"`
	RetirementPlanning  string `json:"retirement_planning"`
	CapitalFormation    string `json:"capital_formation"`
	RealEstateGoals     string `json:"real_estate_goals"`
	Financing           string `json:"financing"`
	Protection          string `json:"protection"`
	HealthcareProvision string `json:"healthcare_provision"`
	OtherGoals          string `json:"other_goals"`
}

// RiskAppetite is 1:1 with PersonalDetails.
type RiskAppetite struct {
	BaseModel
	PersonalID           string `gorm:"type:uuid;uniqueIndex;not null" json:"personal_id"`
	RiskAppetite         string `json:"risk_appetite"`
	InvestmentHorizon    string `json:"investment_horizon"`
	KnowledgeExperience  string `json:"knowledge_experience"`
	HealthInsurance      string `json:"health_insurance"`
	HealthInsuranceNo    string `json:"health_insurance_number"`
	HealthInsuranceProof string `json:"health_insurance_proof"`
}
