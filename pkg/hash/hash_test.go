package hash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndCompare(t *testing.T) {
	encoded, err := Generate("pw123")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$"), "hash should use the argon2id PHC format")
	assert.NotContains(t, encoded, "pw123", "hash must not contain the plaintext")

	assert.NoError(t, Compare(encoded, "pw123"))
	assert.ErrorIs(t, Compare(encoded, "wrong"), ErrMismatchedPassword)
}

func TestGenerateUsesRandomSalt(t *testing.T) {
	first, err := Generate("same-password")
	assert.NoError(t, err)
	second, err := Generate("same-password")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second, "two hashes of one password must differ by salt")
	assert.NoError(t, Compare(first, "same-password"))
	assert.NoError(t, Compare(second, "same-password"))
}

func TestCompareRejectsMalformedHash(t *testing.T) {
	for _, encoded := range []string{
		"",
		"plaintext",
		"$argon2i$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=1,p=4$not-base64!$aGFzaA",
	} {
		assert.ErrorIs(t, Compare(encoded, "pw"), ErrInvalidHash, "input: %q", encoded)
	}
}
