package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"docklogger/internal/port"
)

// HolidayHandler serves statutory holiday schedules.
type HolidayHandler struct {
	holidayRepo port.HolidayRepository
}

// NewHolidayHandler creates a new HolidayHandler.
func NewHolidayHandler(holidayRepo port.HolidayRepository) *HolidayHandler {
	return &HolidayHandler{holidayRepo: holidayRepo}
}

// ListByYear handles GET /api/v1/holidays?year=2026
func (h *HolidayHandler) ListByYear(c *gin.Context) {
	if _, ok := authUserID(c); !ok {
		return
	}

	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid year")
		return
	}

	holidays, err := h.holidayRepo.ListByYear(c.Request.Context(), year)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"year": year, "holidays": holidays})
}
