package dto

// Section payloads for the client-data endpoints. Every record hangs off a
// PersonalDetails root; the personal id comes from the URL, never the body.

type EmploymentRequest struct {
	EmploymentType   string `json:"employment_type" binding:"required,is-employment-type"`
	Occupation       string `json:"occupation,omitempty"`
	ContractType     string `json:"contract_type,omitempty"`
	ContractDuration string `json:"contract_duration,omitempty"`
	EmployerName     string `json:"employer_name,omitempty"`
	EmployedSince    string `json:"employed_since,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

type IncomeRequest struct {
	GrossIncome            float64 `json:"gross_income" binding:"min=0"`
	NetIncome              float64 `json:"net_income" binding:"min=0"`
	TaxClass               string  `json:"tax_class,omitempty"`
	TaxID                  string  `json:"tax_id,omitempty"`
	NumberOfSalaries       int     `json:"number_of_salaries" binding:"omitempty,min=0,max=14"`
	ChildBenefit           float64 `json:"child_benefit" binding:"min=0"`
	OtherIncome            float64 `json:"other_income" binding:"min=0"`
	IncomeTradeBusiness    float64 `json:"income_trade_business" binding:"min=0"`
	IncomeSelfEmployedWork float64 `json:"income_self_employed_work" binding:"min=0"`
	IncomeSideJob          float64 `json:"income_side_job" binding:"min=0"`
}

type ExpensesRequest struct {
	ColdRent              float64 `json:"cold_rent" binding:"min=0"`
	Electricity           float64 `json:"electricity" binding:"min=0"`
	LivingExpenses        float64 `json:"living_expenses" binding:"min=0"`
	Gas                   float64 `json:"gas" binding:"min=0"`
	Telecommunication     float64 `json:"telecommunication" binding:"min=0"`
	AccountMaintenanceFee float64 `json:"account_maintenance_fee" binding:"min=0"`
	Alimony               float64 `json:"alimony" binding:"min=0"`
	Subscriptions         float64 `json:"subscriptions" binding:"min=0"`
	OtherExpenses         float64 `json:"other_expenses" binding:"min=0"`
}

type AssetRequest struct {
	RealEstate      float64 `json:"real_estate" binding:"min=0"`
	Securities      float64 `json:"securities" binding:"min=0"`
	BankDeposits    float64 `json:"bank_deposits" binding:"min=0"`
	BuildingSavings float64 `json:"building_savings" binding:"min=0"`
	InsuranceValues float64 `json:"insurance_values" binding:"min=0"`
	OtherAssets     float64 `json:"other_assets" binding:"min=0"`
}

type LiabilityRequest struct {
	LoanType        string  `json:"loan_type" binding:"required,is-loan-type"`
	LoanBank        string  `json:"loan_bank,omitempty"`
	LoanAmount      float64 `json:"loan_amount" binding:"min=0"`
	LoanMonthlyRate float64 `json:"loan_monthly_rate" binding:"min=0"`
	LoanInterest    float64 `json:"loan_interest" binding:"min=0"`
}

type GoalsAndWishesRequest struct {
	RetirementPlanning  string `json:"retirement_planning,omitempty"`
	CapitalFormation    string `json:"capital_formation,omitempty"`
	RealEstateGoals     string `json:"real_estate_goals,omitempty"`
	Financing           string `json:"financing,omitempty"`
	Protection          string `json:"protection,omitempty"`
	HealthcareProvision string `json:"healthcare_provision,omitempty"`
	OtherGoals          string `json:"other_goals,omitempty"`
}

type RiskAppetiteRequest struct {
	RiskAppetite         string `json:"risk_appetite" binding:"required"`
	InvestmentHorizon    string `json:"investment_horizon,omitempty"`
	KnowledgeExperience  string `json:"knowledge_experience,omitempty"`
	HealthInsurance      string `json:"health_insurance,omitempty"`
	HealthInsuranceNo    string `json:"health_insurance_number,omitempty"`
	HealthInsuranceProof string `json:"health_insurance_proof,omitempty"`
}

type ConsentRequest struct {
	ConsentType      string `json:"consent_type" binding:"required,is-consent-type"`
	Consent          bool   `json:"consent"`
	ConsentText      string `json:"consent_text,omitempty"`
	ConsentSignature string `json:"consent_signature,omitempty"`
	ConsentDate      string `json:"consent_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Location         string `json:"location,omitempty"`
}
