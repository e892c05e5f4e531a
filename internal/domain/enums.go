package domain

import "strings"

// ShiftType classifies a worked shift.
type ShiftType string

const (
	ShiftDay       ShiftType = "day"
	ShiftAfternoon ShiftType = "afternoon"
	ShiftGraveyard ShiftType = "graveyard"
)

// graveyard keywords are checked before afternoon keywords: a raw value
// containing both "night" and "pm" classifies as graveyard.
var (
	graveyardKeywords = []string{"grave", "night", "mid"}
	afternoonKeywords = []string{"after", "evening", "pm", "swing"}
)

// ClassifyShift maps a free-text shift description to a ShiftType.
// Matching is case-insensitive; empty or unrecognized input is a day shift.
func ClassifyShift(raw string) ShiftType {
	s := strings.ToLower(raw)
	for _, kw := range graveyardKeywords {
		if strings.Contains(s, kw) {
			return ShiftGraveyard
		}
	}
	for _, kw := range afternoonKeywords {
		if strings.Contains(s, kw) {
			return ShiftAfternoon
		}
	}
	return ShiftDay
}

// EarningType distinguishes regular from overtime paystub rows.
type EarningType string

const (
	EarningRegular  EarningType = "regular"
	EarningOvertime EarningType = "overtime"
)

// DocumentCategory groups documents by what the app does with them.
type DocumentCategory string

const (
	CategoryTimesheet    DocumentCategory = "timesheet"
	CategoryPaystub      DocumentCategory = "paystub"
	CategoryManningSheet DocumentCategory = "manning_sheet"
	CategoryStatSchedule DocumentCategory = "stat_schedule"
	CategoryOther        DocumentCategory = "other"
)

// Extractable reports whether documents in this category go through the
// extraction pipeline.
func (c DocumentCategory) Extractable() bool {
	switch c {
	case CategoryTimesheet, CategoryPaystub, CategoryManningSheet, CategoryStatSchedule:
		return true
	}
	return false
}

// ExtractStatus tracks a document's progress through the extraction queue.
type ExtractStatus string

const (
	ExtractStatusNone      ExtractStatus = "none"
	ExtractStatusQueued    ExtractStatus = "queued"
	ExtractStatusRunning   ExtractStatus = "running"
	ExtractStatusCompleted ExtractStatus = "completed"
	ExtractStatusFailed    ExtractStatus = "failed"
)

// AllowedContentTypes maps upload MIME types to canonical file extensions.
var AllowedContentTypes = map[string]string{
	"application/pdf": "pdf",
	"image/jpeg":      "jpg",
	"image/png":       "png",
	"image/gif":       "gif",
	"image/webp":      "webp",
}
