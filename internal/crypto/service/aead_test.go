package service

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/ameerarsath/publicdocsafe-sub005/internal/crypto/domain"
)

func randomKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, cryptoDomain.KeySize)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func TestAESGCMCipher(t *testing.T) {
	key := randomKey(t)

	t.Run("round trip", func(t *testing.T) {
		cipher, err := NewAESGCM(key)
		require.NoError(t, err)

		plaintext := []byte("attack at dawn")
		ciphertext, nonce, err := cipher.Encrypt(plaintext, nil)
		require.NoError(t, err)
		assert.Len(t, nonce, cryptoDomain.NonceSize)
		assert.Len(t, ciphertext, len(plaintext)+cryptoDomain.TagSize)

		recovered, err := cipher.Decrypt(ciphertext, nonce, nil)
		require.NoError(t, err)
		assert.Equal(t, plaintext, recovered)
	})

	t.Run("round trip with aad", func(t *testing.T) {
		cipher, err := NewAESGCM(key)
		require.NoError(t, err)

		aad := []byte("document-42")
		ciphertext, nonce, err := cipher.Encrypt([]byte("payload"), aad)
		require.NoError(t, err)

		recovered, err := cipher.Decrypt(ciphertext, nonce, aad)
		require.NoError(t, err)
		assert.Equal(t, []byte("payload"), recovered)

		_, err = cipher.Decrypt(ciphertext, nonce, []byte("document-43"))
		assert.Error(t, err)
	})

	t.Run("encrypt with caller supplied nonce is deterministic", func(t *testing.T) {
		cipher, err := NewAESGCM(key)
		require.NoError(t, err)

		nonce := make([]byte, cryptoDomain.NonceSize)
		first, err := cipher.EncryptWithNonce([]byte("payload"), nonce, nil)
		require.NoError(t, err)
		second, err := cipher.EncryptWithNonce([]byte("payload"), nonce, nil)
		require.NoError(t, err)
		assert.Equal(t, first, second)

		_, err = cipher.EncryptWithNonce([]byte("payload"), nonce[:8], nil)
		assert.Error(t, err)
	})

	t.Run("wrong key fails", func(t *testing.T) {
		cipher, err := NewAESGCM(key)
		require.NoError(t, err)
		other, err := NewAESGCM(randomKey(t))
		require.NoError(t, err)

		ciphertext, nonce, err := cipher.Encrypt([]byte("payload"), nil)
		require.NoError(t, err)

		_, err = other.Decrypt(ciphertext, nonce, nil)
		assert.Error(t, err)
	})

	t.Run("rejects short key", func(t *testing.T) {
		_, err := NewAESGCM(key[:16])
		assert.Error(t, err)
	})
}

func TestChaCha20Poly1305Cipher(t *testing.T) {
	key := randomKey(t)

	cipher, err := NewChaCha20Poly1305(key)
	require.NoError(t, err)

	plaintext := []byte("alternate cipher payload")
	ciphertext, nonce, err := cipher.Encrypt(plaintext, nil)
	require.NoError(t, err)
	assert.Len(t, nonce, cryptoDomain.NonceSize)

	recovered, err := cipher.Decrypt(ciphertext, nonce, nil)
	require.NoError(t, err)
	assert.Equal(t, plaintext, recovered)
}

func TestAEADManagerCreateCipher(t *testing.T) {
	manager := NewAEADManager()
	key := randomKey(t)

	t.Run("creates each supported algorithm", func(t *testing.T) {
		for _, alg := range []cryptoDomain.Algorithm{cryptoDomain.AESGCM, cryptoDomain.ChaCha20} {
			cipher, err := manager.CreateCipher(key, alg)
			require.NoError(t, err)
			assert.NotNil(t, cipher)
		}
	})

	t.Run("rejects wrong key size", func(t *testing.T) {
		_, err := manager.CreateCipher(key[:31], cryptoDomain.AESGCM)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)
	})

	t.Run("rejects unknown algorithm", func(t *testing.T) {
		_, err := manager.CreateCipher(key, cryptoDomain.Algorithm("ROT13"))
		assert.ErrorIs(t, err, cryptoDomain.ErrUnsupportedAlgorithm)
	})
}
