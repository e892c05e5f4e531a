package export_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"docklogger/internal/domain"
	"docklogger/internal/export"
	"docklogger/internal/port"
	"docklogger/mocks"
)

func floatPtr(v float64) *float64 { return &v }

func TestTimesheetXLSX(t *testing.T) {
	entries := []domain.TimesheetEntry{
		{Date: "2025-07-14", ShiftType: domain.ShiftDay, Hours: 8, JobName: "Lashing", Earnings: floatPtr(412.50), Location: "Centerm", Ship: "EVER ACE"},
		{Date: "2025-07-15", ShiftType: domain.ShiftGraveyard, Hours: 6.5, JobName: "Crane"},
	}

	data, err := export.TimesheetXLSX(entries)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Timesheet")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Date", "Shift", "Hours", "Job", "Earnings", "Location", "Ship"}, rows[0])
	assert.Equal(t, "2025-07-14", rows[1][0])
	assert.Equal(t, "day", rows[1][1])
	assert.Equal(t, "Lashing", rows[1][3])
	assert.Equal(t, "2025-07-15", rows[2][0])
	assert.Equal(t, "graveyard", rows[2][1])
}

func TestTimesheetXLSX_NoEntries(t *testing.T) {
	data, err := export.TimesheetXLSX(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Timesheet")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestExportTimesheet(t *testing.T) {
	entryRepo := new(mocks.MockTimesheetEntryRepo)
	userRepo := new(mocks.MockUserRepo)
	sender := new(mocks.MockEmailSender)

	entries := []domain.TimesheetEntry{
		{Date: "2025-07-14", ShiftType: domain.ShiftDay, Hours: 8, JobName: "Lashing"},
	}
	entryRepo.On("ListByUser", mock.Anything, int64(42), "2025-07-01", "2025-07-31").Return(entries, nil)

	svc := export.NewService(entryRepo, userRepo, sender)
	result, err := svc.ExportTimesheet(context.Background(), export.TimesheetExportInput{
		UserID: 42,
		From:   "2025-07-01",
		To:     "2025-07-31",
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Filename, "timesheet-"))
	assert.True(t, strings.HasSuffix(result.Filename, ".xlsx"))
	assert.NotEmpty(t, result.Data)
	assert.False(t, result.Emailed)
	sender.AssertNotCalled(t, "SendExport", mock.Anything, mock.Anything)
}

func TestExportTimesheet_Emailed(t *testing.T) {
	entryRepo := new(mocks.MockTimesheetEntryRepo)
	userRepo := new(mocks.MockUserRepo)
	sender := new(mocks.MockEmailSender)

	entryRepo.On("ListByUser", mock.Anything, int64(42), "", "").
		Return([]domain.TimesheetEntry{{Date: "2025-07-14", Hours: 8}}, nil)
	userRepo.On("GetByID", mock.Anything, int64(42)).
		Return(&domain.User{ID: 42, FullName: "Dana Reyes", Email: "dana@example.com"}, nil)
	sender.On("SendExport", mock.Anything, mock.MatchedBy(func(email port.ExportEmail) bool {
		return email.ToAddress == "dana@example.com" &&
			email.ToName == "Dana Reyes" &&
			len(email.Attachment) > 0 &&
			strings.Contains(email.BodyText, "Dana Reyes")
	})).Return(nil)

	svc := export.NewService(entryRepo, userRepo, sender)
	result, err := svc.ExportTimesheet(context.Background(), export.TimesheetExportInput{
		UserID:  42,
		EmailTo: "dana@example.com",
	})

	require.NoError(t, err)
	assert.True(t, result.Emailed)
	sender.AssertExpectations(t)
}

func TestExportTimesheet_EmailFailure(t *testing.T) {
	entryRepo := new(mocks.MockTimesheetEntryRepo)
	userRepo := new(mocks.MockUserRepo)
	sender := new(mocks.MockEmailSender)

	entryRepo.On("ListByUser", mock.Anything, int64(42), "", "").Return([]domain.TimesheetEntry{}, nil)
	userRepo.On("GetByID", mock.Anything, int64(42)).
		Return(&domain.User{ID: 42, FullName: "Dana Reyes"}, nil)
	sender.On("SendExport", mock.Anything, mock.Anything).Return(assert.AnError)

	svc := export.NewService(entryRepo, userRepo, sender)
	_, err := svc.ExportTimesheet(context.Background(), export.TimesheetExportInput{
		UserID:  42,
		EmailTo: "dana@example.com",
	})

	assert.ErrorContains(t, err, "sending export email")
}
