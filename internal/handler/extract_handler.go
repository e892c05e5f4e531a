package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"docklogger/internal/extract"
	"docklogger/internal/service"
)

// ExtractHandler exposes the extraction pipeline directly for the app's
// capture flow, without requiring an uploaded document.
type ExtractHandler struct {
	extractor service.DocumentExtractor
	tester    ConnectionTester
}

// ConnectionTester probes the primary provider with a caller-supplied key.
type ConnectionTester interface {
	TestConnection(ctx context.Context, apiKey string) bool
}

// NewExtractHandler creates a new ExtractHandler.
func NewExtractHandler(extractor service.DocumentExtractor, tester ConnectionTester) *ExtractHandler {
	return &ExtractHandler{extractor: extractor, tester: tester}
}

// extractRequest is the shared request shape for the extraction endpoints.
// Image is a base64 data URL; APIKey and BackupAPIKey override the configured
// provider keys for this call only.
type extractRequest struct {
	Image        string `json:"image"`
	Text         string `json:"text"`
	APIKey       string `json:"api_key"`
	BackupAPIKey string `json:"backup_api_key"`
}

func (r extractRequest) toInput() extract.Input {
	return extract.Input{
		APIKey:       r.APIKey,
		BackupAPIKey: r.BackupAPIKey,
		Text:         r.Text,
		ImageDataURL: r.Image,
	}
}

// respondExtractError reports an extraction failure inside a 200 envelope:
// the app treats the result as a success/error union, not a transport error.
func respondExtractError(c *gin.Context, err error) {
	code := "EXTRACTION_FAILED"
	if extract.IsValidationError(err) {
		code = "INVALID_DOCUMENT"
	}
	c.JSON(http.StatusOK, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: err.Error()},
	})
}

// Timesheet handles POST /api/v1/extract/timesheet
func (h *ExtractHandler) Timesheet(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	entries, err := h.extractor.ParseTimesheet(c.Request.Context(), req.toInput())
	if err != nil {
		respondExtractError(c, err)
		return
	}

	RespondOK(c, entries)
}

// Paystub handles POST /api/v1/extract/paystub
func (h *ExtractHandler) Paystub(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	data, err := h.extractor.ParsePaystub(c.Request.Context(), req.toInput())
	if err != nil {
		respondExtractError(c, err)
		return
	}

	RespondOK(c, data)
}

// StatSchedule handles POST /api/v1/extract/stat-schedule
func (h *ExtractHandler) StatSchedule(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	schedule, err := h.extractor.ParseStatSchedule(c.Request.Context(), req.toInput())
	if err != nil {
		respondExtractError(c, err)
		return
	}

	RespondOK(c, schedule)
}

type testConnectionRequest struct {
	APIKey string `json:"api_key"`
}

// TestConnection handles POST /api/v1/extract/test-connection
func (h *ExtractHandler) TestConnection(c *gin.Context) {
	var req testConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	ok := h.tester.TestConnection(c.Request.Context(), req.APIKey)
	RespondOK(c, gin.H{"connected": ok})
}
