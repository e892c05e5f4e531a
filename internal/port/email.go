package port

import "context"

// ExportEmail is a rendered export ready for delivery.
type ExportEmail struct {
	ToAddress  string
	ToName     string
	Subject    string
	BodyText   string
	Attachment []byte
	Filename   string
}

// EmailSender delivers export emails.
type EmailSender interface {
	SendExport(ctx context.Context, email ExportEmail) error
}
