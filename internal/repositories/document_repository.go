package repositories

import (
	"errors"

	"wealthcoach_backend/internal/models"

	"gorm.io/gorm"
)

var ErrDocumentNotFound = errors.New("document not found")

type DocumentRepository interface {
	Create(db *gorm.DB, doc *models.Document) error
	FindByID(db *gorm.DB, id string) (*models.Document, error)
	ListByPersonalID(db *gorm.DB, personalID string) ([]models.Document, error)
	Update(db *gorm.DB, doc *models.Document) error
	Delete(db *gorm.DB, id string) error
}

type DocumentRepositoryImpl struct{}

func NewDocumentRepository() DocumentRepository {
	return &DocumentRepositoryImpl{}
}

func (r *DocumentRepositoryImpl) Create(db *gorm.DB, doc *models.Document) error {
	return db.Create(doc).Error
}

func (r *DocumentRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Document, error) {
	var doc models.Document
	if err := db.First(&doc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (r *DocumentRepositoryImpl) ListByPersonalID(db *gorm.DB, personalID string) ([]models.Document, error) {
	var docs []models.Document
	err := db.Where("personal_id = ?", personalID).Order("created_at desc").Find(&docs).Error
	return docs, err
}

func (r *DocumentRepositoryImpl) Update(db *gorm.DB, doc *models.Document) error {
	result := db.Model(&models.Document{}).Where("id = ?", doc.ID).
		Select("document_name", "document_date", "updated_at").
		Updates(doc)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

func (r *DocumentRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Document{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}
