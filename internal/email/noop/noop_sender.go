package noop

import (
	"context"
	"log"

	"docklogger/internal/port"
)

type noopSender struct{}

// NewNoopSender creates an EmailSender that only logs. Used in development and
// when no email provider is configured.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendExport(_ context.Context, email port.ExportEmail) error {
	log.Printf("noopSender.SendExport: would send %q to %s (%d byte attachment)",
		email.Subject, email.ToAddress, len(email.Attachment))
	return nil
}
