package port

import (
	"context"
	"encoding/json"

	"docklogger/internal/domain"
)

// UserRepository persists registered workers.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// DocumentRepository persists document metadata keyed by numeric id.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, userID, docID int64) (*domain.Document, error)
	ListByUser(ctx context.Context, userID int64, category domain.DocumentCategory, offset, limit int) ([]domain.Document, int, error)
	UpdateExtraction(ctx context.Context, docID int64, status domain.ExtractStatus, data json.RawMessage, extractErr string) error
	UpdateNotes(ctx context.Context, userID, docID int64, notes string) error
	Delete(ctx context.Context, userID, docID int64) error

	// ClaimQueued atomically marks up to limit queued documents as running
	// and returns them, so concurrent workers never claim the same document.
	ClaimQueued(ctx context.Context, limit int) ([]domain.Document, error)
}

// TimesheetEntryRepository persists extracted timesheet entries.
type TimesheetEntryRepository interface {
	ReplaceForDocument(ctx context.Context, docID int64, entries []domain.TimesheetEntry) error
	ListByUser(ctx context.Context, userID int64, from, to string) ([]domain.TimesheetEntry, error)
}

// HolidayRepository persists statutory holiday schedules.
type HolidayRepository interface {
	ReplaceYear(ctx context.Context, year int, holidays []domain.StatHoliday) error
	ListByYear(ctx context.Context, year int) ([]domain.StatHoliday, error)
}
