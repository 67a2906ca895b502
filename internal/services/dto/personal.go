package dto

import (
	"time"

	"wealthcoach_backend/internal/models"
)

// Dates cross the API as "YYYY-MM-DD" strings and are parsed at the
// service boundary.
const DateLayout = "2006-01-02"

type CreatePersonalDetailsRequest struct {
	// UserID lets a coach or admin create the record for a client. Clients
	// always create their own.
	UserID        string `json:"user_id,omitempty" binding:"omitempty,uuid"`
	CoachID       string `json:"coach_id,omitempty" binding:"omitempty,uuid"`
	ApplicantType string `json:"applicant_type,omitempty" binding:"omitempty,is-applicant-type"`
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	StreetAddress string `json:"street_address,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	City          string `json:"city,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty" binding:"omitempty,email"`
	BirthDate     string `json:"birth_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	BirthPlace    string `json:"birth_place,omitempty"`
	MaritalStatus string `json:"marital_status,omitempty"`
	Nationality   string `json:"nationality,omitempty"`
	Housing       string `json:"housing,omitempty"`
}

type UpdatePersonalDetailsRequest struct {
	CoachID       *string `json:"coach_id,omitempty" binding:"omitempty,uuid"`
	ApplicantType *string `json:"applicant_type,omitempty" binding:"omitempty,is-applicant-type"`
	FirstName     *string `json:"first_name,omitempty"`
	LastName      *string `json:"last_name,omitempty"`
	StreetAddress *string `json:"street_address,omitempty"`
	PostalCode    *string `json:"postal_code,omitempty"`
	City          *string `json:"city,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty" binding:"omitempty,email"`
	BirthDate     *string `json:"birth_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	BirthPlace    *string `json:"birth_place,omitempty"`
	MaritalStatus *string `json:"marital_status,omitempty"`
	Nationality   *string `json:"nationality,omitempty"`
	Housing       *string `json:"housing,omitempty"`
}

type PersonalDetailsDTO struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	CoachID       string     `json:"coach_id,omitempty"`
	ApplicantType string     `json:"applicant_type"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	StreetAddress string     `json:"street_address,omitempty"`
	PostalCode    string     `json:"postal_code,omitempty"`
	City          string     `json:"city,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	Email         string     `json:"email,omitempty"`
	BirthDate     time.Time  `json:"birth_date"`
	BirthPlace    string     `json:"birth_place,omitempty"`
	MaritalStatus string     `json:"marital_status,omitempty"`
	Nationality   string     `json:"nationality,omitempty"`
	Housing       string     `json:"housing,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func NewPersonalDetailsDTO(pd *models.PersonalDetails) PersonalDetailsDTO {
	return PersonalDetailsDTO{
		ID:            pd.ID,
		UserID:        pd.UserID,
		CoachID:       pd.CoachID,
		ApplicantType: string(pd.ApplicantType),
		FirstName:     pd.FirstName,
		LastName:      pd.LastName,
		StreetAddress: pd.StreetAddress,
		PostalCode:    pd.PostalCode,
		City:          pd.City,
		Phone:         pd.Phone,
		Email:         pd.Email,
		BirthDate:     pd.BirthDate,
		BirthPlace:    pd.BirthPlace,
		MaritalStatus: pd.MaritalStatus,
		Nationality:   pd.Nationality,
		Housing:       pd.Housing,
		CreatedAt:     pd.CreatedAt,
		UpdatedAt:     pd.UpdatedAt,
	}
}

// ParseDate parses an optional "YYYY-MM-DD" value. Empty input yields the
// zero time.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(DateLayout, value)
}
