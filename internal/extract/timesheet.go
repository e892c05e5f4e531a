package extract

import (
	"context"
	"strings"
	"time"

	"docklogger/internal/domain"
	"docklogger/internal/port"
)

// DefaultJobName is substituted when a timesheet row has no job name.
const DefaultJobName = "Unknown Job"

const defaultShiftHours = 8

// dateLayouts are tried in order when normalizing extracted dates.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// ParseTimesheet extracts worked shifts from a timesheet or manning sheet.
// Entries missing a date or an hours value are dropped, never repaired; an
// empty result is a valid success.
func (e *Extractor) ParseTimesheet(ctx context.Context, in Input) ([]domain.TimesheetEntry, error) {
	prompt := TimesheetPrompt(in.Text)

	var att *port.Attachment
	if in.ImageDataURL != "" {
		att = ParseDataURL(in.ImageDataURL)
	}

	var entries []domain.TimesheetEntry
	err := e.generateWithFallback(ctx, in, prompt, att, func(raw string) error {
		normalized, derr := normalizeTimesheet(raw)
		if derr != nil {
			return derr
		}
		entries = normalized
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// rawTimesheetEntry is the loosely typed shape the model may return; hours
// and earnings can arrive as numbers or strings.
type rawTimesheetEntry struct {
	Date      string      `json:"date"`
	ShiftType string      `json:"shift_type"`
	Hours     interface{} `json:"hours"`
	JobName   string      `json:"job_name"`
	Earnings  interface{} `json:"earnings"`
	Location  string      `json:"location"`
	Ship      string      `json:"ship"`
}

func normalizeTimesheet(raw string) ([]domain.TimesheetEntry, error) {
	var rows []rawTimesheetEntry
	if err := DecodeArray(raw, &rows); err != nil {
		return nil, err
	}

	entries := make([]domain.TimesheetEntry, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(row.Date) == "" || row.Hours == nil {
			continue
		}

		hours, ok := toFloat(row.Hours)
		if !ok {
			hours = defaultShiftHours
		}
		if hours <= 0 {
			continue
		}

		jobName := strings.TrimSpace(row.JobName)
		if jobName == "" {
			jobName = DefaultJobName
		}

		entries = append(entries, domain.TimesheetEntry{
			Date:      normalizeDate(row.Date),
			ShiftType: domain.ClassifyShift(row.ShiftType),
			Hours:     hours,
			JobName:   jobName,
			Earnings:  toFloatPtr(row.Earnings),
			Location:  strings.TrimSpace(row.Location),
			Ship:      strings.TrimSpace(row.Ship),
		})
	}
	return entries, nil
}

// normalizeDate reformats a date to YYYY-MM-DD via calendar parsing, passing
// the raw value through unchanged when no layout matches.
func normalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}
