package models

import "time"

type ConsentType string

const (
	ConsentDataProcessing ConsentType = "DataProcessing"
	ConsentMarketing      ConsentType = "Marketing"
	ConsentDataSharing    ConsentType = "DataSharing"
	ConsentTermsOfService ConsentType = "TermsOfService"
)

type Consent struct {
	BaseModel
	PersonalID       string      `gorm:"type:uuid;not null;index" json:"personal_id"`
	ConsentType      ConsentType `gorm:"type:varchar(30);not null" json:"consent_type"`
	Consent          bool        `json:"consent"`
	ConsentText      string      `json:"consent_text"`
	ConsentSignature string      `json:"consent_signature"`
	ConsentDate      time.Time   `json:"consent_date"`
	Location         string      `json:"location"`
}

// Document is the metadata record of an uploaded file; the payload lives in
// object storage under DocumentLocation.
type Document struct {
	BaseModel
	PersonalID       string    `gorm:"type:uuid;not null;index" json:"personal_id"`
	DocumentName     string    `gorm:"not null" json:"document_name"`
	DocumentLocation string    `gorm:"not null" json:"document_location"`
	ContentType      string    `json:"content_type"`
	Size             int64     `json:"size"`
	DocumentDate     time.Time `json:"document_date"`
}
