package handler

import (
	"github.com/gin-gonic/gin"

	"docklogger/internal/port"
)

// TimesheetHandler serves extracted timesheet entries.
type TimesheetHandler struct {
	entryRepo port.TimesheetEntryRepository
}

// NewTimesheetHandler creates a new TimesheetHandler.
func NewTimesheetHandler(entryRepo port.TimesheetEntryRepository) *TimesheetHandler {
	return &TimesheetHandler{entryRepo: entryRepo}
}

// List handles GET /api/v1/timesheet-entries?from=&to=
func (h *TimesheetHandler) List(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	entries, err := h.entryRepo.ListByUser(c.Request.Context(), userID, c.Query("from"), c.Query("to"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, entries)
}
