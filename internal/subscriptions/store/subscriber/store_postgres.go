package subscriber

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"newsletter/internal/subscriptions/models"
	id "newsletter/pkg/domain"
	"newsletter/pkg/platform/sentinel"
	"newsletter/pkg/requestcontext"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// PostgresStore persists subscribers and their confirmation tokens.
// This store is pure I/O; workflow rules belong in the service.
type PostgresStore struct {
	db dbExecutor
}

// NewPostgres constructs a store that runs each statement in its own implicit
// transaction. Use PostgresTx to group statements.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindPendingTokenByEmail(ctx context.Context, email models.SubscriberEmail) (models.SubscriptionToken, error) {
	query := `
		SELECT t.token
		FROM subscription_tokens t
		JOIN subscribers s ON s.id = t.subscriber_id
		WHERE s.email = $1
		  AND s.status = 'pending_confirmation'
	`
	var raw string
	if err := s.db.QueryRowContext(ctx, query, email.String()).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SubscriptionToken{}, sentinel.ErrNotFound
		}
		return models.SubscriptionToken{}, fmt.Errorf("find pending token: %w", err)
	}
	token, err := models.ParseSubscriptionToken(raw)
	if err != nil {
		return models.SubscriptionToken{}, fmt.Errorf("stored token is malformed: %w", err)
	}
	return token, nil
}

func (s *PostgresStore) InsertSubscriber(ctx context.Context, subscriber models.NewSubscriber) (id.SubscriberID, error) {
	subscriberID := id.NewSubscriberID()
	query := `
		INSERT INTO subscribers (id, email, name, subscribed_at, status)
		VALUES ($1, $2, $3, $4, 'pending_confirmation')
	`
	_, err := s.db.ExecContext(ctx, query,
		uuid.UUID(subscriberID),
		subscriber.Email.String(),
		subscriber.Name.String(),
		requestcontext.Now(ctx).UTC(),
	)
	if err != nil {
		return id.SubscriberID{}, translate("insert subscriber", err)
	}
	return subscriberID, nil
}

func (s *PostgresStore) StoreToken(ctx context.Context, subscriberID id.SubscriberID, token models.SubscriptionToken) error {
	query := `INSERT INTO subscription_tokens (token, subscriber_id) VALUES ($1, $2)`
	if _, err := s.db.ExecContext(ctx, query, token.String(), uuid.UUID(subscriberID)); err != nil {
		return translate("store token", err)
	}
	return nil
}

func (s *PostgresStore) FindSubscriberIDByToken(ctx context.Context, token models.SubscriptionToken) (id.SubscriberID, error) {
	var rawID string
	err := s.db.QueryRowContext(ctx,
		`SELECT subscriber_id::text FROM subscription_tokens WHERE token = $1`,
		token.String(),
	).Scan(&rawID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return id.SubscriberID{}, sentinel.ErrNotFound
		}
		return id.SubscriberID{}, fmt.Errorf("find subscriber by token: %w", err)
	}
	subscriberID, err := id.ParseSubscriberID(rawID)
	if err != nil {
		return id.SubscriberID{}, fmt.Errorf("stored subscriber id is malformed: %w", err)
	}
	return subscriberID, nil
}

func (s *PostgresStore) MarkConfirmed(ctx context.Context, subscriberID id.SubscriberID) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE subscribers SET status = 'confirmed' WHERE id = $1`,
		uuid.UUID(subscriberID),
	)
	if err != nil {
		return fmt.Errorf("mark subscriber confirmed: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark subscriber confirmed rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("mark subscriber %s confirmed: %w", subscriberID, sentinel.ErrNotFound)
	}
	return nil
}

// FindByID loads a subscriber row.
func (s *PostgresStore) FindByID(ctx context.Context, subscriberID id.SubscriberID) (*models.Subscriber, error) {
	query := `
		SELECT email, name, subscribed_at, status
		FROM subscribers
		WHERE id = $1
	`
	var (
		rawEmail, rawName, status string
		subscribedAt              time.Time
	)
	err := s.db.QueryRowContext(ctx, query, uuid.UUID(subscriberID)).Scan(&rawEmail, &rawName, &subscribedAt, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find subscriber: %w", err)
	}
	email, err := models.ParseSubscriberEmail(rawEmail)
	if err != nil {
		return nil, fmt.Errorf("stored email is malformed: %w", err)
	}
	name, err := models.ParseSubscriberName(rawName)
	if err != nil {
		return nil, fmt.Errorf("stored name is malformed: %w", err)
	}
	subscriberStatus, err := models.ParseStatus(status)
	if err != nil {
		return nil, fmt.Errorf("stored status is malformed: %w", err)
	}
	return &models.Subscriber{
		ID:           subscriberID,
		Name:         name,
		Email:        email,
		SubscribedAt: subscribedAt,
		Status:       subscriberStatus,
	}, nil
}

// translate maps constraint violations onto sentinel errors, keeping the
// driver error in the chain.
func translate(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w: %w", op, sentinel.ErrAlreadyUsed, err)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: %w: %w", op, sentinel.ErrInvalidState, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
