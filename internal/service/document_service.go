package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"docklogger/internal/config"
	"docklogger/internal/domain"
	"docklogger/internal/extract"
	"docklogger/internal/port"
)

// DocumentExtractor is the slice of the extraction pipeline the document
// service needs.
type DocumentExtractor interface {
	ParseTimesheet(ctx context.Context, in extract.Input) ([]domain.TimesheetEntry, error)
	ParsePaystub(ctx context.Context, in extract.Input) (*domain.PaystubData, error)
	ParseStatSchedule(ctx context.Context, in extract.Input) (*domain.StatSchedule, error)
}

// UploadDocumentInput is the DTO for document upload requests. DataURL is the
// base64 data URL captured by the mobile app's camera or file picker.
type UploadDocumentInput struct {
	UserID   int64
	Name     string
	Category domain.DocumentCategory
	DataURL  string
	Notes    string
}

// DocumentService defines the document management contract.
type DocumentService interface {
	Upload(ctx context.Context, input UploadDocumentInput) (*domain.Document, error)
	GetByID(ctx context.Context, userID, docID int64) (*domain.Document, error)
	List(ctx context.Context, userID int64, category domain.DocumentCategory, offset, limit int) ([]domain.Document, int, error)
	UpdateNotes(ctx context.Context, userID, docID int64, notes string) error
	Delete(ctx context.Context, userID, docID int64) error
	ShareURL(ctx context.Context, userID, docID int64) (string, error)
	ExtractDocument(ctx context.Context, doc *domain.Document)
}

type documentService struct {
	docRepo     port.DocumentRepository
	entryRepo   port.TimesheetEntryRepository
	holidayRepo port.HolidayRepository
	storage     port.ObjectStorage
	extractor   DocumentExtractor
	cfg         *config.S3Config
}

// NewDocumentService creates a new DocumentService implementation.
func NewDocumentService(
	docRepo port.DocumentRepository,
	entryRepo port.TimesheetEntryRepository,
	holidayRepo port.HolidayRepository,
	storage port.ObjectStorage,
	extractor DocumentExtractor,
	cfg *config.S3Config,
) DocumentService {
	return &documentService{
		docRepo:     docRepo,
		entryRepo:   entryRepo,
		holidayRepo: holidayRepo,
		storage:     storage,
		extractor:   extractor,
		cfg:         cfg,
	}
}

func (s *documentService) Upload(ctx context.Context, input UploadDocumentInput) (*domain.Document, error) {
	att := extract.ParseDataURL(input.DataURL)
	if att == nil {
		return nil, domain.ErrInvalidDataURL
	}

	ext, ok := domain.AllowedContentTypes[att.MediaType]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	fileBytes, err := base64.StdEncoding.DecodeString(att.Data)
	if err != nil {
		return nil, domain.ErrInvalidDataURL
	}

	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if int64(len(fileBytes)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	name := input.Name
	if name == "" {
		name = "document." + ext
	}

	s3Key := fmt.Sprintf("users/%d/documents/%s.%s", input.UserID, uuid.New(), ext)

	log.Printf("documentService.Upload: uploading %s (%s, %d bytes) for user %d",
		name, att.MediaType, len(fileBytes), input.UserID)

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         s3Key,
		Body:        bytes.NewReader(fileBytes),
		ContentType: att.MediaType,
		Size:        int64(len(fileBytes)),
	})
	if err != nil {
		log.Printf("documentService.Upload: S3 upload failed: %v", err)
		return nil, domain.ErrUploadFailed
	}

	status := domain.ExtractStatusNone
	if input.Category.Extractable() {
		status = domain.ExtractStatusQueued
	}

	doc := &domain.Document{
		UserID:        input.UserID,
		Name:          name,
		Type:          ext,
		FilePath:      s3Key,
		FileSize:      int64(len(fileBytes)),
		MimeType:      att.MediaType,
		Category:      input.Category,
		ExtractedData: json.RawMessage("null"),
		ExtractStatus: status,
		Notes:         input.Notes,
	}
	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("creating document: %w", err)
	}
	return doc, nil
}

func (s *documentService) GetByID(ctx context.Context, userID, docID int64) (*domain.Document, error) {
	return s.docRepo.GetByID(ctx, userID, docID)
}

func (s *documentService) List(ctx context.Context, userID int64, category domain.DocumentCategory, offset, limit int) ([]domain.Document, int, error) {
	return s.docRepo.ListByUser(ctx, userID, category, offset, limit)
}

func (s *documentService) UpdateNotes(ctx context.Context, userID, docID int64, notes string) error {
	return s.docRepo.UpdateNotes(ctx, userID, docID, notes)
}

func (s *documentService) Delete(ctx context.Context, userID, docID int64) error {
	doc, err := s.docRepo.GetByID(ctx, userID, docID)
	if err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, s.cfg.Bucket, doc.FilePath); err != nil {
		log.Printf("documentService.Delete: failed to delete from S3: %v", err)
		return fmt.Errorf("deleting from storage: %w", err)
	}
	return s.docRepo.Delete(ctx, userID, docID)
}

// ShareURL issues a time-limited presigned download link for a document.
func (s *documentService) ShareURL(ctx context.Context, userID, docID int64) (string, error) {
	doc, err := s.docRepo.GetByID(ctx, userID, docID)
	if err != nil {
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, s.cfg.Bucket, doc.FilePath, s.cfg.ShareExpiry)
}

// ExtractDocument downloads a claimed document's file, runs the extraction
// appropriate to its category, and persists the result. Called by the queue
// worker; the document is already marked running.
func (s *documentService) ExtractDocument(ctx context.Context, doc *domain.Document) {
	if !doc.Category.Extractable() {
		s.failExtraction(ctx, doc.ID, domain.ErrNotExtractable.Error())
		return
	}

	fileBytes, err := s.storage.Download(ctx, s.cfg.Bucket, doc.FilePath)
	if err != nil {
		s.failExtraction(ctx, doc.ID, fmt.Sprintf("downloading file: %v", err))
		return
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s", doc.MimeType, base64.StdEncoding.EncodeToString(fileBytes))
	in := extract.Input{ImageDataURL: dataURL}

	switch doc.Category {
	case domain.CategoryTimesheet, domain.CategoryManningSheet:
		entries, err := s.extractor.ParseTimesheet(ctx, in)
		if err != nil {
			s.failExtraction(ctx, doc.ID, err.Error())
			return
		}
		for i := range entries {
			entries[i].UserID = doc.UserID
			entries[i].DocumentID = doc.ID
		}
		if err := s.entryRepo.ReplaceForDocument(ctx, doc.ID, entries); err != nil {
			s.failExtraction(ctx, doc.ID, fmt.Sprintf("saving entries: %v", err))
			return
		}
		s.completeExtraction(ctx, doc.ID, entries)

	case domain.CategoryPaystub:
		data, err := s.extractor.ParsePaystub(ctx, in)
		if err != nil {
			s.failExtraction(ctx, doc.ID, err.Error())
			return
		}
		s.completeExtraction(ctx, doc.ID, data)

	case domain.CategoryStatSchedule:
		schedule, err := s.extractor.ParseStatSchedule(ctx, in)
		if err != nil {
			s.failExtraction(ctx, doc.ID, err.Error())
			return
		}
		if err := s.holidayRepo.ReplaceYear(ctx, schedule.Year, schedule.Holidays); err != nil {
			s.failExtraction(ctx, doc.ID, fmt.Sprintf("saving holidays: %v", err))
			return
		}
		s.completeExtraction(ctx, doc.ID, schedule)
	}
}

func (s *documentService) completeExtraction(ctx context.Context, docID int64, result interface{}) {
	data, err := json.Marshal(result)
	if err != nil {
		s.failExtraction(ctx, docID, fmt.Sprintf("encoding result: %v", err))
		return
	}
	if err := s.docRepo.UpdateExtraction(ctx, docID, domain.ExtractStatusCompleted, data, ""); err != nil {
		log.Printf("documentService.ExtractDocument: failed to save results for %d: %v", docID, err)
		return
	}
	log.Printf("documentService.ExtractDocument: document %d extracted", docID)
}

func (s *documentService) failExtraction(ctx context.Context, docID int64, errMsg string) {
	log.Printf("documentService.ExtractDocument: document %d failed: %s", docID, errMsg)
	if err := s.docRepo.UpdateExtraction(ctx, docID, domain.ExtractStatusFailed, nil, errMsg); err != nil {
		log.Printf("documentService.failExtraction: failed to update status for %d: %v", docID, err)
	}
}
