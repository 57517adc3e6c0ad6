// Package email delivers transactional mail through an external provider.
package email

import (
	"context"
	"time"
)

// SendRequest contains the data needed to send one email.
type SendRequest struct {
	To      []string
	From    string
	Subject string
	HTML    string
	Text    string
}

// SendResult is the provider's acknowledgement.
type SendResult struct {
	MessageID string
	SentAt    time.Time
}

// Sender hands a message to a provider.
type Sender interface {
	Send(ctx context.Context, req SendRequest) (SendResult, error)
}
