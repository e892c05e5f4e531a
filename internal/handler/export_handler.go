package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docklogger/internal/export"
)

// ExportHandler serves XLSX exports of a user's records.
type ExportHandler struct {
	exportService *export.Service
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService *export.Service) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Timesheets handles GET /api/v1/exports/timesheets?from=&to=&email=
// Without email the workbook is returned as a download; with email it is also
// delivered as an attachment.
func (h *ExportHandler) Timesheets(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	result, err := h.exportService.ExportTimesheet(c.Request.Context(), export.TimesheetExportInput{
		UserID:  userID,
		From:    c.Query("from"),
		To:      c.Query("to"),
		EmailTo: c.Query("email"),
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	if result.Emailed {
		RespondOK(c, gin.H{"message": "export emailed", "filename": result.Filename})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", result.Data)
}
