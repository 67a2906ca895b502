package models

import "time"

type ApplicantType string

const (
	ApplicantPrimary   ApplicantType = "PrimaryApplicant"
	ApplicantSecondary ApplicantType = "SecondaryApplicant"
)

// PersonalDetails is the root personal-data record of a client. A user has at
// most one record (unique constraint on user_id); CoachID is the coach with
// delegated access.
type PersonalDetails struct {
	BaseModel
	UserID  string `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	// default:null keeps the column NULL when no coach is assigned; an empty
	// string is not a valid uuid.
	CoachID string `gorm:"type:uuid;index;default:null" json:"coach_id"`

	ApplicantType ApplicantType `gorm:"type:varchar(30);not null" json:"applicant_type"`
	FirstName     string        `gorm:"not null" json:"first_name"`
	LastName      string        `gorm:"not null" json:"last_name"`
	StreetAddress string        `json:"street_address"`
	PostalCode    string        `json:"postal_code"`
	City          string        `json:"city"`
	Phone         string        `json:"phone"`
	Email         string        `json:"email"`
	BirthDate     time.Time     `json:"birth_date"`
	BirthPlace    string        `json:"birth_place"`
	MaritalStatus string        `json:"marital_status"`
	Nationality   string        `json:"nationality"`
	Housing       string        `json:"housing"`

	// Relations
	Owner             *User               `gorm:"foreignKey:UserID" json:"-"`
	Coach             *User               `gorm:"foreignKey:CoachID" json:"coach,omitempty"`
	EmploymentDetails []EmploymentDetails `gorm:"foreignKey:PersonalID" json:"employment_details,omitempty"`
	IncomeDetails     []IncomeDetails     `gorm:"foreignKey:PersonalID" json:"income_details,omitempty"`
	ExpensesDetails   []ExpensesDetails   `gorm:"foreignKey:PersonalID" json:"expenses_details,omitempty"`
	Assets            []Asset             `gorm:"foreignKey:PersonalID" json:"assets,omitempty"`
	Liabilities       []Liability         `gorm:"foreignKey:PersonalID" json:"liabilities,omitempty"`
	GoalsAndWishes    *GoalsAndWishes     `gorm:"foreignKey:PersonalID" json:"goals_and_wishes,omitempty"`
	RiskAppetite      *RiskAppetite       `gorm:"foreignKey:PersonalID" json:"risk_appetite,omitempty"`
	Consents          []Consent           `gorm:"foreignKey:PersonalID" json:"consents,omitempty"`
	Documents         []Document          `gorm:"foreignKey:PersonalID" json:"documents,omitempty"`
}

// Ownership returns the fields the authorization gate decides on.
func (p *PersonalDetails) Ownership() (ownerID, coachID string) {
	return p.UserID, p.CoachID
}
