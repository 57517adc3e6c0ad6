package models

import (
	"strconv"
	"time"

	id "newsletter/pkg/domain"
	dErrors "newsletter/pkg/domain-errors"
)

// Status is the lifecycle state of a subscriber.
type Status string

const (
	StatusPendingConfirmation Status = "pending_confirmation"
	StatusConfirmed           Status = "confirmed"
)

func (s Status) IsValid() bool {
	return s == StatusPendingConfirmation || s == StatusConfirmed
}

// ParseStatus converts a stored status column into a Status.
func ParseStatus(raw string) (Status, error) {
	status := Status(raw)
	if !status.IsValid() {
		return "", dErrors.New(dErrors.CodeInvariantViolation, "unknown subscriber status "+strconv.Quote(raw))
	}
	return status, nil
}

// NewSubscriber is a validated form submission that has not been stored yet.
type NewSubscriber struct {
	Name  SubscriberName
	Email SubscriberEmail
}

// ParseNewSubscriber validates both raw form fields.
func ParseNewSubscriber(rawName, rawEmail string) (NewSubscriber, error) {
	name, err := ParseSubscriberName(rawName)
	if err != nil {
		return NewSubscriber{}, err
	}
	email, err := ParseSubscriberEmail(rawEmail)
	if err != nil {
		return NewSubscriber{}, err
	}
	return NewSubscriber{Name: name, Email: email}, nil
}

// Subscriber is a stored subscriber row.
//
// Invariants:
//   - ID and SubscribedAt are immutable after insert
//   - Status only moves from pending_confirmation to confirmed
type Subscriber struct {
	ID           id.SubscriberID
	Name         SubscriberName
	Email        SubscriberEmail
	SubscribedAt time.Time
	Status       Status
}

func (s Subscriber) IsPending() bool {
	return s.Status == StatusPendingConfirmation
}

// Confirm moves the subscriber to confirmed. Confirming twice is a no-op.
func (s *Subscriber) Confirm() {
	s.Status = StatusConfirmed
}
