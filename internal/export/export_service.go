package export

import (
	"context"
	"fmt"
	"log"
	"time"

	"docklogger/internal/domain"
	"docklogger/internal/port"
)

// TimesheetExportInput is the DTO for timesheet export requests. From and To
// are inclusive YYYY-MM-DD bounds; either may be empty. A non-empty EmailTo
// also delivers the workbook as an attachment.
type TimesheetExportInput struct {
	UserID  int64
	From    string
	To      string
	EmailTo string
}

// ExportResult is a rendered export workbook.
type ExportResult struct {
	Filename string
	Data     []byte
	Emailed  bool
}

// Service produces XLSX exports of a user's extracted records.
type Service struct {
	entryRepo port.TimesheetEntryRepository
	userRepo  port.UserRepository
	sender    port.EmailSender
}

// NewService creates a new export Service. sender may be nil when email
// delivery is not configured.
func NewService(entryRepo port.TimesheetEntryRepository, userRepo port.UserRepository, sender port.EmailSender) *Service {
	return &Service{
		entryRepo: entryRepo,
		userRepo:  userRepo,
		sender:    sender,
	}
}

// ExportTimesheet renders the user's worked shifts in the requested window and
// optionally emails the workbook.
func (s *Service) ExportTimesheet(ctx context.Context, input TimesheetExportInput) (*ExportResult, error) {
	entries, err := s.entryRepo.ListByUser(ctx, input.UserID, input.From, input.To)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}

	data, err := TimesheetXLSX(entries)
	if err != nil {
		return nil, fmt.Errorf("rendering workbook: %w", err)
	}

	result := &ExportResult{
		Filename: fmt.Sprintf("timesheet-%s.xlsx", time.Now().UTC().Format("2006-01-02")),
		Data:     data,
	}

	if input.EmailTo != "" && s.sender != nil {
		user, err := s.userRepo.GetByID(ctx, input.UserID)
		if err != nil {
			return nil, err
		}
		email := port.ExportEmail{
			ToAddress:  input.EmailTo,
			ToName:     user.FullName,
			Subject:    "Your timesheet export",
			BodyText:   exportBody(user, len(entries), input.From, input.To),
			Attachment: data,
			Filename:   result.Filename,
		}
		if err := s.sender.SendExport(ctx, email); err != nil {
			log.Printf("exportService.ExportTimesheet: email delivery failed for user %d: %v", input.UserID, err)
			return nil, fmt.Errorf("sending export email: %w", err)
		}
		result.Emailed = true
	}

	log.Printf("exportService.ExportTimesheet: exported %d entries for user %d", len(entries), input.UserID)
	return result, nil
}

func exportBody(user *domain.User, count int, from, to string) string {
	window := "all dates"
	switch {
	case from != "" && to != "":
		window = from + " to " + to
	case from != "":
		window = "from " + from
	case to != "":
		window = "up to " + to
	}
	return fmt.Sprintf("Hi %s,\n\nAttached is your timesheet export covering %s (%d shifts).\n",
		user.FullName, window, count)
}
