package dto

import (
	"time"

	"wealthcoach_backend/internal/models"
)

// DocumentDownloadURL builds the API path that serves a document's bytes.
func DocumentDownloadURL(id string) string {
	return "/api/v1/documents/" + id + "/download"
}

type UpdateDocumentRequest struct {
	DocumentName *string `json:"document_name,omitempty"`
	DocumentDate *string `json:"document_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

type DocumentDTO struct {
	ID           string    `json:"id"`
	PersonalID   string    `json:"personal_id"`
	DocumentName string    `json:"document_name"`
	ContentType  string    `json:"content_type,omitempty"`
	Size         int64     `json:"size"`
	DocumentDate time.Time `json:"document_date"`
	URL          string    `json:"url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewDocumentDTO(doc *models.Document, url string) DocumentDTO {
	return DocumentDTO{
		ID:           doc.ID,
		PersonalID:   doc.PersonalID,
		DocumentName: doc.DocumentName,
		ContentType:  doc.ContentType,
		Size:         doc.Size,
		DocumentDate: doc.DocumentDate,
		URL:          url,
		CreatedAt:    doc.CreatedAt,
	}
}
