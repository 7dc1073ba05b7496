package repository

import (
	"context"
	"io"
)

// Attachment is a support-request file forwarded as-is.
type Attachment struct {
	Filename string
	Reader   io.Reader
}

// SupportRepository is the port to the backend's support endpoint.
type SupportRepository interface {
	Send(ctx context.Context, email, message string, attachments []Attachment) error
}
