// Package ports defines the collaborators the subscriptions service depends on.
// Stores and the email transport implement these; tests use the generated mocks.
package ports

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks SubscriberStore,StoreTx,EmailClient

import (
	"context"

	"newsletter/internal/subscriptions/models"
	id "newsletter/pkg/domain"
)

// SubscriberStore is pure I/O over the subscribers and subscription_tokens
// tables. Implementations never commit on their own; they are handed to
// callers by StoreTx.RunInTx.
type SubscriberStore interface {
	// FindPendingTokenByEmail returns the token of the pending subscriber with
	// this email, or sentinel.ErrNotFound.
	FindPendingTokenByEmail(ctx context.Context, email models.SubscriberEmail) (models.SubscriptionToken, error)

	// InsertSubscriber stores a pending subscriber and returns its generated id.
	InsertSubscriber(ctx context.Context, subscriber models.NewSubscriber) (id.SubscriberID, error)

	// StoreToken links token to an existing subscriber.
	StoreToken(ctx context.Context, subscriberID id.SubscriberID, token models.SubscriptionToken) error

	// FindSubscriberIDByToken resolves a token, or returns sentinel.ErrNotFound.
	FindSubscriberIDByToken(ctx context.Context, token models.SubscriptionToken) (id.SubscriberID, error)

	// MarkConfirmed sets the subscriber's status to confirmed. Idempotent.
	MarkConfirmed(ctx context.Context, subscriberID id.SubscriberID) error
}

// StoreTx provides a transactional boundary for subscriber store operations.
// fn's writes are committed only if it returns nil; every other exit path
// rolls back.
type StoreTx interface {
	RunInTx(ctx context.Context, fn func(store SubscriberStore) error) error
}

// EmailClient delivers a single message with both an HTML and a plain-text body.
type EmailClient interface {
	SendEmail(ctx context.Context, recipient models.SubscriberEmail, subject, htmlBody, textBody string) error
}
