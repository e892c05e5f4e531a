package extract

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"docklogger/internal/domain"
	"docklogger/internal/port"
)

// ErrNotStatSchedule is returned when the model recognizes the image as
// something other than a statutory holiday schedule.
var ErrNotStatSchedule = errors.New("not_stat_schedule")

// ParseStatSchedule extracts a year's statutory holiday schedule. Holidays
// missing any of name, date, qualification_start or qualification_end are
// invalid and excluded. Uses the same one-shot backup fallback as
// ParseTimesheet.
func (e *Extractor) ParseStatSchedule(ctx context.Context, in Input) (*domain.StatSchedule, error) {
	var att *port.Attachment
	if in.ImageDataURL != "" {
		att = ParseDataURL(in.ImageDataURL)
	}

	var schedule *domain.StatSchedule
	err := e.generateWithFallback(ctx, in, StatSchedulePrompt(), att, func(raw string) error {
		normalized, derr := normalizeStatSchedule(raw)
		if derr != nil {
			return derr
		}
		schedule = normalized
		return nil
	})
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

type rawStatSchedule struct {
	Error    string          `json:"error"`
	Year     interface{}     `json:"year"`
	Holidays json.RawMessage `json:"holidays"`
}

type rawHoliday struct {
	Name               string `json:"name"`
	Date               string `json:"date"`
	QualificationStart string `json:"qualification_start"`
	QualificationEnd   string `json:"qualification_end"`
	PayDate            string `json:"pay_date"`
}

func normalizeStatSchedule(raw string) (*domain.StatSchedule, error) {
	var parsed rawStatSchedule
	if err := DecodeObject(raw, &parsed); err != nil {
		return nil, err
	}

	if parsed.Error != "" {
		if parsed.Error == ErrNotStatSchedule.Error() {
			return nil, NewValidationError(ErrNotStatSchedule)
		}
		return nil, NewValidationError(errors.New(parsed.Error))
	}

	year, ok := toFloat(parsed.Year)
	if !ok || len(parsed.Holidays) == 0 {
		return nil, NewValidationError(errors.New("Invalid data format"))
	}

	var rows []rawHoliday
	if err := json.Unmarshal(parsed.Holidays, &rows); err != nil {
		return nil, NewValidationError(errors.New("Invalid data format"))
	}

	holidays := make([]domain.StatHoliday, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(row.Name) == "" ||
			strings.TrimSpace(row.Date) == "" ||
			strings.TrimSpace(row.QualificationStart) == "" ||
			strings.TrimSpace(row.QualificationEnd) == "" {
			continue
		}
		holidays = append(holidays, domain.StatHoliday{
			Year:               int(year),
			Name:               strings.TrimSpace(row.Name),
			Date:               normalizeDate(row.Date),
			QualificationStart: normalizeDate(row.QualificationStart),
			QualificationEnd:   normalizeDate(row.QualificationEnd),
			PayDate:            strings.TrimSpace(row.PayDate),
		})
	}

	if len(holidays) == 0 {
		return nil, NewValidationError(errors.New("No valid holidays found"))
	}

	return &domain.StatSchedule{
		Year:     int(year),
		Holidays: holidays,
	}, nil
}
