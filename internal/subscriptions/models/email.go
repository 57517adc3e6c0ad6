package models

import (
	dErrors "newsletter/pkg/domain-errors"
	"newsletter/pkg/email"
)

// SubscriberEmail is a syntactically valid recipient address.
type SubscriberEmail struct {
	value string
}

// ParseSubscriberEmail validates raw as local-part@domain with a dotted domain.
func ParseSubscriberEmail(raw string) (SubscriberEmail, error) {
	if !email.IsValidAddress(raw) {
		return SubscriberEmail{}, dErrors.New(dErrors.CodeValidation, "invalid subscriber email")
	}
	return SubscriberEmail{value: raw}, nil
}

func (e SubscriberEmail) String() string {
	return e.value
}
