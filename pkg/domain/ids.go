package domain

import (
	"github.com/google/uuid"

	dErrors "newsletter/pkg/domain-errors"
)

// SubscriberID identifies a subscriber row. It is generated by the store at
// insert time and never supplied by callers.
type SubscriberID uuid.UUID

// NewSubscriberID returns a fresh random subscriber id.
func NewSubscriberID() SubscriberID {
	return SubscriberID(uuid.New())
}

// ParseSubscriberID parses s at a trust boundary. Empty, malformed and nil
// UUIDs are rejected.
func ParseSubscriberID(s string) (SubscriberID, error) {
	if s == "" {
		return SubscriberID{}, dErrors.New(dErrors.CodeValidation, "subscriber id is required")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return SubscriberID{}, dErrors.Wrap(err, dErrors.CodeValidation, "invalid subscriber id")
	}
	if parsed == uuid.Nil {
		return SubscriberID{}, dErrors.New(dErrors.CodeValidation, "subscriber id cannot be nil")
	}
	return SubscriberID(parsed), nil
}

func (id SubscriberID) String() string {
	return uuid.UUID(id).String()
}

func (id SubscriberID) IsNil() bool {
	return uuid.UUID(id) == uuid.Nil
}
