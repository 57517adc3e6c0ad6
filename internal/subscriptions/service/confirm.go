package service

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"

	"newsletter/internal/subscriptions/metrics"
	"newsletter/internal/subscriptions/models"
	"newsletter/internal/subscriptions/ports"
	dErrors "newsletter/pkg/domain-errors"
	"newsletter/pkg/platform/sentinel"
)

// unknownTokenMessage is shared by malformed and unknown tokens so a caller
// cannot tell which check failed.
const unknownTokenMessage = "subscription token is not valid"

// Confirm marks the subscriber that owns rawToken as confirmed. Confirming an
// already confirmed subscriber succeeds.
func (s *Service) Confirm(ctx context.Context, rawToken string) error {
	ctx, span := s.tracer.Start(ctx, "subscriptions.confirm")
	defer span.End()

	token, err := models.ParseSubscriptionToken(rawToken)
	if err != nil {
		s.metrics.IncrementConfirm(metrics.OutcomeUnauthorized)
		span.SetAttributes(attribute.String("confirm.outcome", metrics.OutcomeUnauthorized))
		return dErrors.Wrap(err, dErrors.CodeUnauthorized, unknownTokenMessage)
	}

	err = s.tx.RunInTx(ctx, func(store ports.SubscriberStore) error {
		subscriberID, err := store.FindSubscriberIDByToken(ctx, token)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeUnauthorized, unknownTokenMessage)
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up subscription token")
		}
		span.SetAttributes(attribute.String("subscriber.id", subscriberID.String()))

		if err := store.MarkConfirmed(ctx, subscriberID); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to confirm subscriber")
		}
		return nil
	})
	if err != nil {
		if dErrors.Is(err, dErrors.CodeUnauthorized) {
			s.metrics.IncrementConfirm(metrics.OutcomeUnauthorized)
			span.SetAttributes(attribute.String("confirm.outcome", metrics.OutcomeUnauthorized))
			return err
		}
		s.metrics.IncrementConfirm(metrics.OutcomeStoreFailed)
		recordSpanError(span, err, "confirm subscriber")
		if _, ok := dErrors.As(err); ok {
			return err
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to confirm subscriber")
	}

	s.metrics.IncrementConfirm(metrics.OutcomeSuccess)
	return nil
}
