package models

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	dErrors "newsletter/pkg/domain-errors"
)

// TokenLength is the exact length of every subscription token.
const TokenLength = 25

const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Bytes at or above this bound are discarded so that byte % len(alphabet)
// stays uniform.
const tokenRejectionBound = 256 - (256 % len(tokenAlphabet))

// SubscriptionToken is the credential embedded in a confirmation link. The
// zero value is not a valid token; construct one with ParseSubscriptionToken
// or a TokenGenerator.
type SubscriptionToken struct {
	value string
}

// ParseSubscriptionToken accepts exactly TokenLength ASCII alphanumerics.
func ParseSubscriptionToken(raw string) (SubscriptionToken, error) {
	if len(raw) != TokenLength {
		return SubscriptionToken{}, dErrors.New(dErrors.CodeValidation, "invalid subscription token length")
	}
	for i := 0; i < len(raw); i++ {
		if !isASCIIAlphanumeric(raw[i]) {
			return SubscriptionToken{}, dErrors.New(dErrors.CodeValidation, "invalid character in subscription token")
		}
	}
	return SubscriptionToken{value: raw}, nil
}

func (t SubscriptionToken) String() string {
	return t.value
}

func (t SubscriptionToken) IsZero() bool {
	return t.value == ""
}

func isASCIIAlphanumeric(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// TokenGenerator draws tokens from an owned random source. It is safe for
// concurrent use even when source is not.
type TokenGenerator struct {
	mu     sync.Mutex
	source io.Reader
}

// NewTokenGenerator returns a generator reading from source. A nil source
// means crypto/rand.
func NewTokenGenerator(source io.Reader) *TokenGenerator {
	if source == nil {
		source = rand.Reader
	}
	return &TokenGenerator{source: source}
}

// Generate returns TokenLength characters chosen uniformly from [A-Za-z0-9].
func (g *TokenGenerator) Generate() (SubscriptionToken, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]byte, 0, TokenLength)
	buf := make([]byte, TokenLength*2)
	for len(out) < TokenLength {
		if _, err := io.ReadFull(g.source, buf); err != nil {
			return SubscriptionToken{}, fmt.Errorf("read token entropy: %w", err)
		}
		for _, b := range buf {
			if int(b) >= tokenRejectionBound {
				continue
			}
			out = append(out, tokenAlphabet[int(b)%len(tokenAlphabet)])
			if len(out) == TokenLength {
				break
			}
		}
	}
	return SubscriptionToken{value: string(out)}, nil
}
