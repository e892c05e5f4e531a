package extract_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docklogger/internal/extract"
	"docklogger/mocks"
)

func TestParseStatSchedule_SingleHoliday(t *testing.T) {
	primary := new(mocks.MockVisionClient)

	raw := `{"year":2026,"holidays":[{"name":"Canada Day","date":"2026-07-01","qualification_start":"2026-05-04","qualification_end":"2026-06-02"}]}`
	primary.On("Generate", mock.Anything, mock.Anything).Return(raw, nil)

	e := extract.NewExtractor(primary, nil, "")

	schedule, err := e.ParseStatSchedule(context.Background(), extract.Input{
		ImageDataURL: "data:image/jpeg;base64,AAAA",
	})

	require.NoError(t, err)
	assert.Equal(t, 2026, schedule.Year)
	require.Len(t, schedule.Holidays, 1)
	h := schedule.Holidays[0]
	assert.Equal(t, "Canada Day", h.Name)
	assert.Equal(t, "2026-07-01", h.Date)
	assert.Equal(t, "2026-05-04", h.QualificationStart)
	assert.Equal(t, "2026-06-02", h.QualificationEnd)
	assert.Empty(t, h.PayDate)
}

func TestParseStatSchedule_NotStatSchedule(t *testing.T) {
	primary := new(mocks.MockVisionClient)
	backup := new(mocks.MockVisionClient)

	primary.On("Generate", mock.Anything, mock.Anything).Return(`{"error":"not_stat_schedule"}`, nil)

	e := extract.NewExtractor(primary, backup, "backup-key")

	schedule, err := e.ParseStatSchedule(context.Background(), extract.Input{})

	assert.Nil(t, schedule)
	require.Error(t, err)
	assert.ErrorIs(t, err, extract.ErrNotStatSchedule)
	assert.Equal(t, "not_stat_schedule", err.Error())
	// a definitive model answer is not retried against the backup
	backup.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestParseStatSchedule_MissingYearIsInvalid(t *testing.T) {
	primary := new(mocks.MockVisionClient)

	primary.On("Generate", mock.Anything, mock.Anything).Return(`{"holidays":[]}`, nil)

	e := extract.NewExtractor(primary, nil, "backup-key")

	_, err := e.ParseStatSchedule(context.Background(), extract.Input{})

	require.Error(t, err)
	assert.Equal(t, "Invalid data format", err.Error())
	assert.True(t, extract.IsValidationError(err))
}

func TestParseStatSchedule_FiltersIncompleteHolidays(t *testing.T) {
	primary := new(mocks.MockVisionClient)

	raw := `{"year":2026,"holidays":[
		{"name":"Canada Day","date":"2026-07-01","qualification_start":"2026-05-04","qualification_end":"2026-06-02","pay_date":"2026-07-09"},
		{"name":"Mystery Day","date":"2026-08-03","qualification_start":"","qualification_end":"2026-07-02"},
		{"name":"","date":"2026-09-07","qualification_start":"2026-07-06","qualification_end":"2026-08-04"}
	]}`
	primary.On("Generate", mock.Anything, mock.Anything).Return(raw, nil)

	e := extract.NewExtractor(primary, nil, "")

	schedule, err := e.ParseStatSchedule(context.Background(), extract.Input{})

	require.NoError(t, err)
	require.Len(t, schedule.Holidays, 1)
	assert.Equal(t, "Canada Day", schedule.Holidays[0].Name)
	assert.Equal(t, "2026-07-09", schedule.Holidays[0].PayDate)
}

func TestParseStatSchedule_AllHolidaysInvalid(t *testing.T) {
	primary := new(mocks.MockVisionClient)
	backup := new(mocks.MockVisionClient)

	raw := `{"year":2026,"holidays":[{"name":"Broken","date":""}]}`
	primary.On("Generate", mock.Anything, mock.Anything).Return(raw, nil)

	e := extract.NewExtractor(primary, backup, "backup-key")

	_, err := e.ParseStatSchedule(context.Background(), extract.Input{})

	require.Error(t, err)
	assert.Equal(t, "No valid holidays found", err.Error())
	backup.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestParseStatSchedule_FallbackOnPrimaryFailure(t *testing.T) {
	primary := new(mocks.MockVisionClient)
	backup := new(mocks.MockVisionClient)

	primary.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("network down"))
	backup.On("Generate", mock.Anything, mock.Anything).Return(
		`{"year":2026,"holidays":[{"name":"Labour Day","date":"2026-09-07","qualification_start":"2026-07-06","qualification_end":"2026-08-04"}]}`, nil)

	e := extract.NewExtractor(primary, backup, "backup-key")

	schedule, err := e.ParseStatSchedule(context.Background(), extract.Input{})

	require.NoError(t, err)
	assert.Equal(t, 2026, schedule.Year)
	backup.AssertNumberOfCalls(t, "Generate", 1)
}

func TestTestConnection(t *testing.T) {
	primary := new(mocks.MockVisionClient)
	primary.On("Generate", mock.Anything, mock.Anything).Return("OK", nil).Once()

	e := extract.NewExtractor(primary, nil, "")
	assert.True(t, e.TestConnection(context.Background(), "key"))

	primary.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("invalid api key")).Once()
	assert.False(t, e.TestConnection(context.Background(), "key"))
}
