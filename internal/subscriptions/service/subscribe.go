package service

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"newsletter/internal/subscriptions/metrics"
	"newsletter/internal/subscriptions/models"
	"newsletter/internal/subscriptions/ports"
	dErrors "newsletter/pkg/domain-errors"
	"newsletter/pkg/platform/sentinel"
	"newsletter/pkg/requestcontext"
)

// SubscribeRequest carries the raw form fields.
type SubscribeRequest struct {
	Name  string
	Email string
}

// Subscribe validates the request, records a pending subscriber with a fresh
// token (or reuses the token of an existing pending subscriber with the same
// email) and then mails the confirmation link.
//
// The email is sent only after the transaction commits. A delivery failure
// leaves the rows in place, so resubmitting the form resends the same link.
func (s *Service) Subscribe(ctx context.Context, req SubscribeRequest) error {
	start := time.Now()
	defer s.metrics.ObserveSubscribe(start)

	ctx, span := s.tracer.Start(ctx, "subscriptions.subscribe")
	defer span.End()

	subscriber, err := models.ParseNewSubscriber(req.Name, req.Email)
	if err != nil {
		s.metrics.IncrementSubscribe(metrics.OutcomeRejected)
		span.SetAttributes(attribute.String("subscribe.outcome", metrics.OutcomeRejected))
		return err
	}
	span.SetAttributes(attribute.String("subscriber.email", subscriber.Email.String()))

	token, reused, err := s.recordPendingSubscriber(ctx, subscriber)
	if err != nil {
		s.metrics.IncrementSubscribe(metrics.OutcomeStoreFailed)
		recordSpanError(span, err, "record pending subscriber")
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to store subscriber")
	}
	span.SetAttributes(attribute.Bool("subscription_token.reused", reused))
	if reused {
		s.metrics.IncrementTokenReused()
	}

	if err := s.sendConfirmationEmail(ctx, subscriber.Email, token); err != nil {
		s.metrics.IncrementSubscribe(metrics.OutcomeEmailFailed)
		recordSpanError(span, err, "send confirmation email")
		s.logger.ErrorContext(ctx, "confirmation email not delivered; subscriber stays pending",
			"request_id", requestcontext.RequestID(ctx),
			"email", subscriber.Email.String(),
			"token_reused", reused,
			"error", err.Error(),
		)
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to send confirmation email")
	}

	s.metrics.IncrementSubscribe(metrics.OutcomeSuccess)
	s.logger.InfoContext(ctx, "confirmation email sent",
		"request_id", requestcontext.RequestID(ctx),
		"token_reused", reused,
	)
	return nil
}

// recordPendingSubscriber returns the token to mail and whether it was reused
// from an earlier submission. Either the subscriber row and its token are both
// committed or neither is.
func (s *Service) recordPendingSubscriber(ctx context.Context, subscriber models.NewSubscriber) (models.SubscriptionToken, bool, error) {
	var (
		token  models.SubscriptionToken
		reused bool
	)
	err := s.tx.RunInTx(ctx, func(store ports.SubscriberStore) error {
		existing, err := s.findPendingToken(ctx, store, subscriber.Email)
		if err == nil {
			token, reused = existing, true
			return nil
		}
		if !errors.Is(err, sentinel.ErrNotFound) {
			return err
		}
		token, err = s.createPendingSubscriber(ctx, store, subscriber)
		return err
	})
	if err != nil {
		return models.SubscriptionToken{}, false, err
	}
	return token, reused, nil
}

func (s *Service) findPendingToken(ctx context.Context, store ports.SubscriberStore, email models.SubscriberEmail) (models.SubscriptionToken, error) {
	ctx, span := s.tracer.Start(ctx, "subscriptions.find_pending_token")
	defer span.End()

	token, err := store.FindPendingTokenByEmail(ctx, email)
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		recordSpanError(span, err, "find pending token")
	}
	return token, err
}

func (s *Service) createPendingSubscriber(ctx context.Context, store ports.SubscriberStore, subscriber models.NewSubscriber) (models.SubscriptionToken, error) {
	ctx, span := s.tracer.Start(ctx, "subscriptions.insert_subscriber")
	defer span.End()

	subscriberID, err := store.InsertSubscriber(ctx, subscriber)
	if err != nil {
		recordSpanError(span, err, "insert subscriber")
		return models.SubscriptionToken{}, err
	}
	span.SetAttributes(attribute.String("subscriber.id", subscriberID.String()))

	token, err := s.tokens.Generate()
	if err != nil {
		recordSpanError(span, err, "generate token")
		return models.SubscriptionToken{}, err
	}
	if err := store.StoreToken(ctx, subscriberID, token); err != nil {
		recordSpanError(span, err, "store token")
		return models.SubscriptionToken{}, err
	}
	return token, nil
}

func recordSpanError(span trace.Span, err error, msg string) {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)
}
