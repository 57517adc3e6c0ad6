package service

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"

	"newsletter/internal/subscriptions/models"
)

const confirmationSubject = "Welcome!"

// confirmationLink returns {base}/subscriptions/confirm?subscription_token={token}.
// Tokens are alphanumeric so the query needs no escaping.
func (s *Service) confirmationLink(token models.SubscriptionToken) string {
	return s.baseURL + "/subscriptions/confirm?subscription_token=" + token.String()
}

func confirmationBodies(link string) (html, text string) {
	html = fmt.Sprintf("Welcome to our newsletter!<br/>Click <a href=\"%s\">here</a> to confirm your subscription.", link)
	text = fmt.Sprintf("Welcome to our newsletter!\nVisit %s to confirm your subscription.", link)
	return html, text
}

func (s *Service) sendConfirmationEmail(ctx context.Context, recipient models.SubscriberEmail, token models.SubscriptionToken) error {
	ctx, span := s.tracer.Start(ctx, "subscriptions.send_confirmation_email")
	defer span.End()

	start := time.Now()
	defer s.metrics.ObserveEmailSend(start)

	html, text := confirmationBodies(s.confirmationLink(token))
	if err := s.email.SendEmail(ctx, recipient, confirmationSubject, html, text); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "send confirmation email")
		return err
	}
	return nil
}
