package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "newsletter/pkg/domain-errors"
)

func TestParseSubscriberEmail(t *testing.T) {
	valid := []string{
		"ursula@example.com",
		"le.guin+earthsea@books.example.org",
	}
	for _, input := range valid {
		t.Run("accepts "+input, func(t *testing.T) {
			e, err := ParseSubscriberEmail(input)
			require.NoError(t, err)
			assert.Equal(t, input, e.String())
		})
	}

	invalid := map[string]string{
		"empty":           "",
		"whitespace":      " ",
		"missing at":      "ursuladomain.com",
		"missing subject": "@domain.com",
		"undotted domain": "ursula@earthsea",
		"leading space":   " ursula@example.com",
		"embedded space":  "ursula le@example.com",
		"double at":       "ursula@@example.com",
	}
	for name, input := range invalid {
		t.Run("rejects "+name, func(t *testing.T) {
			_, err := ParseSubscriberEmail(input)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		})
	}
}
