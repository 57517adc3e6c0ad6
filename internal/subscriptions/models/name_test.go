package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "newsletter/pkg/domain-errors"
)

func TestParseSubscriberName(t *testing.T) {
	t.Run("accepts a regular name", func(t *testing.T) {
		name, err := ParseSubscriberName("Ursula Le Guin")
		require.NoError(t, err)
		assert.Equal(t, "Ursula Le Guin", name.String())
	})

	t.Run("does not trim surrounding whitespace", func(t *testing.T) {
		name, err := ParseSubscriberName(" Ursula ")
		require.NoError(t, err)
		assert.Equal(t, " Ursula ", name.String())
	})

	t.Run("accepts exactly the maximum grapheme count", func(t *testing.T) {
		_, err := ParseSubscriberName(strings.Repeat("ё", MaxNameLength))
		require.NoError(t, err)
	})

	t.Run("counts combining sequences as one grapheme", func(t *testing.T) {
		// "e" + combining acute accent is one grapheme and two runes.
		_, err := ParseSubscriberName(strings.Repeat("e\u0301", MaxNameLength))
		require.NoError(t, err)
	})

	rejected := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   \t "},
		{"too long", strings.Repeat("a", MaxNameLength+1)},
		{"slash", "Ursula/Le Guin"},
		{"parentheses", "Ursula (Le Guin)"},
		{"double quote", `Ursula "Le" Guin`},
		{"angle brackets", "<script>"},
		{"backslash", `Ursula\Le`},
		{"braces", "{Ursula}"},
		{"control character", "Ursula\x00"},
		{"newline", "Ursula\nLe Guin"},
	}
	for _, tt := range rejected {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			_, err := ParseSubscriberName(tt.input)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		})
	}
}

func TestParseNewSubscriber(t *testing.T) {
	t.Run("valid form", func(t *testing.T) {
		ns, err := ParseNewSubscriber("Ursula Le Guin", "ursula@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Ursula Le Guin", ns.Name.String())
		assert.Equal(t, "ursula@example.com", ns.Email.String())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := ParseNewSubscriber("", "ursula@example.com")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("email without at sign", func(t *testing.T) {
		_, err := ParseNewSubscriber("Ursula", "ursuladomain.com")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})
}
