package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docklogger/internal/domain"
	"docklogger/internal/extract"
	"docklogger/internal/handler"
)

// mockExtractor is a mock implementation of service.DocumentExtractor.
type mockExtractor struct {
	mock.Mock
}

func (m *mockExtractor) ParseTimesheet(ctx context.Context, in extract.Input) ([]domain.TimesheetEntry, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimesheetEntry), args.Error(1)
}

func (m *mockExtractor) ParsePaystub(ctx context.Context, in extract.Input) (*domain.PaystubData, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaystubData), args.Error(1)
}

func (m *mockExtractor) ParseStatSchedule(ctx context.Context, in extract.Input) (*domain.StatSchedule, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatSchedule), args.Error(1)
}

type stubTester struct {
	connected bool
}

func (s stubTester) TestConnection(ctx context.Context, apiKey string) bool {
	return s.connected
}

func newExtractRouter(extractor *mockExtractor, tester handler.ConnectionTester) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewExtractHandler(extractor, tester)
	r := gin.New()
	r.POST("/extract/timesheet", h.Timesheet)
	r.POST("/extract/paystub", h.Paystub)
	r.POST("/extract/stat-schedule", h.StatSchedule)
	r.POST("/extract/test-connection", h.TestConnection)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type extractResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestExtractHandler_Timesheet(t *testing.T) {
	extractor := new(mockExtractor)
	extractor.On("ParseTimesheet", mock.Anything, mock.MatchedBy(func(in extract.Input) bool {
		return in.ImageDataURL == "data:image/png;base64,Zm9v" && in.APIKey == "sk-user-key"
	})).Return([]domain.TimesheetEntry{
		{Date: "2025-07-14", ShiftType: domain.ShiftDay, Hours: 8, JobName: "Lashing"},
	}, nil)

	r := newExtractRouter(extractor, stubTester{})
	w := postJSON(t, r, "/extract/timesheet", gin.H{
		"image":   "data:image/png;base64,Zm9v",
		"api_key": "sk-user-key",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp extractResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	var entries []domain.TimesheetEntry
	require.NoError(t, json.Unmarshal(resp.Data, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Lashing", entries[0].JobName)
}

func TestExtractHandler_ValidationErrorIn200Envelope(t *testing.T) {
	extractor := new(mockExtractor)
	extractor.On("ParseStatSchedule", mock.Anything, mock.Anything).
		Return(nil, extract.NewValidationError(errors.New("not_stat_schedule")))

	r := newExtractRouter(extractor, stubTester{})
	w := postJSON(t, r, "/extract/stat-schedule", gin.H{"image": "data:image/png;base64,Zm9v"})

	// extraction outcomes are a success/error union, not transport errors
	require.Equal(t, http.StatusOK, w.Code)
	var resp extractResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_DOCUMENT", resp.Error.Code)
	assert.Equal(t, "not_stat_schedule", resp.Error.Message)
}

func TestExtractHandler_ProviderFailureIn200Envelope(t *testing.T) {
	extractor := new(mockExtractor)
	extractor.On("ParsePaystub", mock.Anything, mock.Anything).
		Return(nil, errors.New("calling anthropic API: connection refused"))

	r := newExtractRouter(extractor, stubTester{})
	w := postJSON(t, r, "/extract/paystub", gin.H{"image": "data:image/png;base64,Zm9v"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp extractResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "EXTRACTION_FAILED", resp.Error.Code)
}

func TestExtractHandler_MalformedBody(t *testing.T) {
	r := newExtractRouter(new(mockExtractor), stubTester{})

	req := httptest.NewRequest(http.MethodPost, "/extract/timesheet", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExtractHandler_TestConnection(t *testing.T) {
	r := newExtractRouter(new(mockExtractor), stubTester{connected: true})
	w := postJSON(t, r, "/extract/test-connection", gin.H{"api_key": "sk-probe"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Connected bool `json:"connected"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.Data.Connected)
}
