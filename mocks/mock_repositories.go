package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"docklogger/internal/domain"
)

// MockUserRepo is a mock implementation of port.UserRepository.
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockDocumentRepo is a mock implementation of port.DocumentRepository.
type MockDocumentRepo struct {
	mock.Mock
}

func (m *MockDocumentRepo) Create(ctx context.Context, doc *domain.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentRepo) GetByID(ctx context.Context, userID, docID int64) (*domain.Document, error) {
	args := m.Called(ctx, userID, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentRepo) ListByUser(ctx context.Context, userID int64, category domain.DocumentCategory, offset, limit int) ([]domain.Document, int, error) {
	args := m.Called(ctx, userID, category, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Document), args.Int(1), args.Error(2)
}

func (m *MockDocumentRepo) UpdateExtraction(ctx context.Context, docID int64, status domain.ExtractStatus, data json.RawMessage, extractErr string) error {
	args := m.Called(ctx, docID, status, data, extractErr)
	return args.Error(0)
}

func (m *MockDocumentRepo) UpdateNotes(ctx context.Context, userID, docID int64, notes string) error {
	args := m.Called(ctx, userID, docID, notes)
	return args.Error(0)
}

func (m *MockDocumentRepo) Delete(ctx context.Context, userID, docID int64) error {
	args := m.Called(ctx, userID, docID)
	return args.Error(0)
}

func (m *MockDocumentRepo) ClaimQueued(ctx context.Context, limit int) ([]domain.Document, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

// MockTimesheetEntryRepo is a mock implementation of port.TimesheetEntryRepository.
type MockTimesheetEntryRepo struct {
	mock.Mock
}

func (m *MockTimesheetEntryRepo) ReplaceForDocument(ctx context.Context, docID int64, entries []domain.TimesheetEntry) error {
	args := m.Called(ctx, docID, entries)
	return args.Error(0)
}

func (m *MockTimesheetEntryRepo) ListByUser(ctx context.Context, userID int64, from, to string) ([]domain.TimesheetEntry, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimesheetEntry), args.Error(1)
}

// MockHolidayRepo is a mock implementation of port.HolidayRepository.
type MockHolidayRepo struct {
	mock.Mock
}

func (m *MockHolidayRepo) ReplaceYear(ctx context.Context, year int, holidays []domain.StatHoliday) error {
	args := m.Called(ctx, year, holidays)
	return args.Error(0)
}

func (m *MockHolidayRepo) ListByYear(ctx context.Context, year int) ([]domain.StatHoliday, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatHoliday), args.Error(1)
}
