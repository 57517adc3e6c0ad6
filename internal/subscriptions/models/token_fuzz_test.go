package models

import (
	"testing"
)

// FuzzParseSubscriptionToken checks that only 25 ASCII alphanumerics are
// ever accepted and that accepted tokens round-trip.
func FuzzParseSubscriptionToken(f *testing.F) {
	f.Add("")
	f.Add("abcdeFGHIJ0123456789klmno")
	f.Add("abcdeFGHIJ0123456789klmn!")
	f.Add("'; DROP TABLE subscription_tokens;--")
	f.Add(string([]byte{0x00, 0x01, 0x02}))

	f.Fuzz(func(t *testing.T, input string) {
		tok, err := ParseSubscriptionToken(input)
		if err != nil {
			return
		}
		if len(input) != TokenLength {
			t.Fatalf("accepted token of length %d", len(input))
		}
		for i := 0; i < len(input); i++ {
			if !isASCIIAlphanumeric(input[i]) {
				t.Fatalf("accepted non-alphanumeric byte %q", input[i])
			}
		}
		if tok.String() != input {
			t.Fatal("parse changed token value")
		}
	})
}
