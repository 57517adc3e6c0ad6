package email

import (
	"context"
	"errors"

	"newsletter/internal/subscriptions/models"
)

// Client adapts a Sender to the subscriptions email port, filling in the
// configured sender address.
type Client struct {
	sender Sender
	from   string
}

func NewClient(sender Sender, from string) (*Client, error) {
	if sender == nil {
		return nil, errors.New("email sender is required")
	}
	if from == "" {
		return nil, errors.New("sender address is required")
	}
	return &Client{sender: sender, from: from}, nil
}

func (c *Client) SendEmail(ctx context.Context, recipient models.SubscriberEmail, subject, htmlBody, textBody string) error {
	_, err := c.sender.Send(ctx, SendRequest{
		To:      []string{recipient.String()},
		From:    c.from,
		Subject: subject,
		HTML:    htmlBody,
		Text:    textBody,
	})
	return err
}
