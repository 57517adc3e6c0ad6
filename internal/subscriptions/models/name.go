package models

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"

	dErrors "newsletter/pkg/domain-errors"
)

// MaxNameLength is counted in grapheme clusters, not bytes.
const MaxNameLength = 256

const forbiddenNameCharacters = `/()"<>\{}`

// SubscriberName is a validated display name.
//
// Invariants:
//   - not empty and not whitespace-only
//   - at most MaxNameLength grapheme clusters
//   - contains none of / ( ) " < > \ { } and no control characters
type SubscriberName struct {
	value string
}

// ParseSubscriberName validates raw without trimming it.
func ParseSubscriberName(raw string) (SubscriberName, error) {
	if strings.TrimSpace(raw) == "" {
		return SubscriberName{}, dErrors.New(dErrors.CodeValidation, "subscriber name cannot be empty")
	}
	if uniseg.GraphemeClusterCount(raw) > MaxNameLength {
		return SubscriberName{}, dErrors.New(dErrors.CodeValidation, "subscriber name is too long")
	}
	for _, r := range raw {
		if strings.ContainsRune(forbiddenNameCharacters, r) || unicode.IsControl(r) {
			return SubscriberName{}, dErrors.New(dErrors.CodeValidation, "subscriber name contains forbidden characters")
		}
	}
	return SubscriberName{value: raw}, nil
}

func (n SubscriberName) String() string {
	return n.value
}
