package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"wealthcoach_backend/internal/auth"
	"wealthcoach_backend/internal/logger"
	"wealthcoach_backend/internal/models"
	"wealthcoach_backend/internal/repositories"
	"wealthcoach_backend/internal/services/dto"
	"wealthcoach_backend/internal/storage"
	"wealthcoach_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentUpload carries an incoming file through the service boundary.
type DocumentUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type DocumentService interface {
	Upload(ctx context.Context, db *gorm.DB, principal auth.Principal, personalID string, upload *DocumentUpload) (*dto.DocumentDTO, error)
	List(ctx context.Context, db *gorm.DB, principal auth.Principal, personalID string) ([]dto.DocumentDTO, error)
	Get(ctx context.Context, db *gorm.DB, principal auth.Principal, id string) (*dto.DocumentDTO, error)
	// Download returns the stored content stream together with the metadata.
	Download(ctx context.Context, db *gorm.DB, principal auth.Principal, id string) (*models.Document, io.ReadCloser, error)
	Update(ctx context.Context, db *gorm.DB, principal auth.Principal, id string, req *dto.UpdateDocumentRequest) (*dto.DocumentDTO, error)
	Delete(ctx context.Context, db *gorm.DB, principal auth.Principal, id string) error
}

type DocumentServiceImpl struct {
	documentRepo repositories.DocumentRepository
	personalRepo repositories.PersonalDetailsRepository
	store        storage.Storage
	maxSize      int64
	allowedTypes []string
}

func NewDocumentService(
	documentRepo repositories.DocumentRepository,
	personalRepo repositories.PersonalDetailsRepository,
	store storage.Storage,
	maxSize int64,
	allowedTypes []string,
) DocumentService {
	return &DocumentServiceImpl{
		documentRepo: documentRepo,
		personalRepo: personalRepo,
		store:        store,
		maxSize:      maxSize,
		allowedTypes: allowedTypes,
	}
}

func (s *DocumentServiceImpl) authorizePersonal(db *gorm.DB, principal auth.Principal, personalID string) error {
	ownerID, coachID, err := s.personalRepo.FindOwnership(db, personalID)
	if err != nil {
		if errors.Is(err, repositories.ErrPersonalDetailsNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if !auth.Authorize(principal, auth.ResourceOwnership{OwnerID: ownerID, CoachID: coachID}) {
		return apperrors.ErrAccessDenied
	}
	return nil
}

func (s *DocumentServiceImpl) Upload(ctx context.Context, db *gorm.DB, principal auth.Principal, personalID string, upload *DocumentUpload) (*dto.DocumentDTO, error) {
	if err := s.authorizePersonal(db, principal, personalID); err != nil {
		return nil, err
	}

	if s.maxSize > 0 && upload.Size > s.maxSize {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("File exceeds the maximum size of %d bytes", s.maxSize))
	}
	if !s.typeAllowed(upload.ContentType) {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("Content type '%s' is not allowed", upload.ContentType))
	}

	// Stored under a fresh name; the original name lives in the metadata row.
	ext := filepath.Ext(upload.FileName)
	location := fmt.Sprintf("documents/%s/%s%s", personalID, uuid.NewString(), ext)

	if err := s.store.Save(ctx, location, upload.Reader, upload.ContentType); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "document", "Failed to store file", 502)
	}

	doc := &models.Document{
		PersonalID:       personalID,
		DocumentName:     upload.FileName,
		DocumentLocation: location,
		ContentType:      upload.ContentType,
		Size:             upload.Size,
		DocumentDate:     time.Now(),
	}

	if err := s.documentRepo.Create(db, doc); err != nil {
		// Roll the stored object back so no orphan file stays behind.
		if delErr := s.store.Delete(ctx, location); delErr != nil {
			logger.Error("failed to remove orphaned upload", "location", location, "error", delErr)
		}
		return nil, apperrors.InternalError(err)
	}

	return s.toDTO(doc), nil
}

func (s *DocumentServiceImpl) List(ctx context.Context, db *gorm.DB, principal auth.Principal, personalID string) ([]dto.DocumentDTO, error) {
	if err := s.authorizePersonal(db, principal, personalID); err != nil {
		return nil, err
	}

	docs, err := s.documentRepo.ListByPersonalID(db, personalID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	dtos := make([]dto.DocumentDTO, 0, len(docs))
	for i := range docs {
		dtos = append(dtos, *s.toDTO(&docs[i]))
	}
	return dtos, nil
}

func (s *DocumentServiceImpl) Get(ctx context.Context, db *gorm.DB, principal auth.Principal, id string) (*dto.DocumentDTO, error) {
	doc, err := s.loadAuthorized(db, principal, id)
	if err != nil {
		return nil, err
	}
	return s.toDTO(doc), nil
}

func (s *DocumentServiceImpl) Download(ctx context.Context, db *gorm.DB, principal auth.Principal, id string) (*models.Document, io.ReadCloser, error) {
	doc, err := s.loadAuthorized(db, principal, id)
	if err != nil {
		return nil, nil, err
	}

	reader, err := s.store.Get(ctx, doc.DocumentLocation)
	if err != nil {
		return nil, nil, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "document", "Failed to read stored file", 502)
	}
	return doc, reader, nil
}

func (s *DocumentServiceImpl) Update(ctx context.Context, db *gorm.DB, principal auth.Principal, id string, req *dto.UpdateDocumentRequest) (*dto.DocumentDTO, error) {
	doc, err := s.loadAuthorized(db, principal, id)
	if err != nil {
		return nil, err
	}

	if req.DocumentName != nil {
		doc.DocumentName = *req.DocumentName
	}
	if req.DocumentDate != nil {
		date, err := dto.ParseDate(*req.DocumentDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid document_date")
		}
		doc.DocumentDate = date
	}

	if err := s.documentRepo.Update(db, doc); err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return s.toDTO(doc), nil
}

func (s *DocumentServiceImpl) Delete(ctx context.Context, db *gorm.DB, principal auth.Principal, id string) error {
	doc, err := s.loadAuthorized(db, principal, id)
	if err != nil {
		return err
	}

	if err := s.documentRepo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	// The row is gone; a stale file is only worth a log line.
	if err := s.store.Delete(ctx, doc.DocumentLocation); err != nil {
		logger.Error("failed to delete stored file", "location", doc.DocumentLocation, "error", err)
	}
	return nil
}

func (s *DocumentServiceImpl) loadAuthorized(db *gorm.DB, principal auth.Principal, id string) (*models.Document, error) {
	doc, err := s.documentRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if err := s.authorizePersonal(db, principal, doc.PersonalID); err != nil {
		return nil, err
	}
	return doc, nil
}

// toDTO advertises the download endpoint as the document URL. Storage paths
// are an internal detail and are not routable.
func (s *DocumentServiceImpl) toDTO(doc *models.Document) *dto.DocumentDTO {
	d := dto.NewDocumentDTO(doc, dto.DocumentDownloadURL(doc.ID))
	return &d
}

func (s *DocumentServiceImpl) typeAllowed(contentType string) bool {
	if len(s.allowedTypes) == 0 {
		return true
	}
	for _, allowed := range s.allowedTypes {
		if strings.EqualFold(allowed, contentType) {
			return true
		}
	}
	return false
}
