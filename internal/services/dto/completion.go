package dto

// ProfileCompletionDTO reports which sections of a client profile hold data.
type ProfileCompletionDTO struct {
	PersonalID string          `json:"personal_id,omitempty"`
	Percent    int             `json:"percent"`
	Sections   map[string]bool `json:"sections"`
}
