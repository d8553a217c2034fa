package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyCipher_RoundTrip(t *testing.T) {
	cipher, err := NewKeyCipher("local-storage-secret")
	require.NoError(t, err)

	sealed, err := cipher.Encrypt("pk_live_0123456789")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "pk_live")

	again, err := cipher.Encrypt("pk_live_0123456789")
	require.NoError(t, err)
	assert.NotEqual(t, sealed, again, "nonces must differ")

	plain, err := cipher.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "pk_live_0123456789", plain)
}

func TestKeyCipher_EmptyValues(t *testing.T) {
	cipher, err := NewKeyCipher("local-storage-secret")
	require.NoError(t, err)

	sealed, err := cipher.Encrypt("")
	assert.NoError(t, err)
	assert.Empty(t, sealed)

	plain, err := cipher.Decrypt("")
	assert.NoError(t, err)
	assert.Empty(t, plain)
}

func TestKeyCipher_RejectsForeignCiphertext(t *testing.T) {
	ours, err := NewKeyCipher("secret-a")
	require.NoError(t, err)
	theirs, err := NewKeyCipher("secret-b")
	require.NoError(t, err)

	sealed, err := theirs.Encrypt("pk_live_0123456789")
	require.NoError(t, err)

	for _, input := range []string{sealed, "%%%not-base64", "c2hvcnQ="} {
		_, err := ours.Decrypt(input)
		assert.ErrorIs(t, err, ErrCiphertextInvalid, input)
	}
}

func TestNewKeyCipher_RequiresSecret(t *testing.T) {
	_, err := NewKeyCipher("")
	assert.ErrorIs(t, err, ErrEmptyStorageSecret)
}
