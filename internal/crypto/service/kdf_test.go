package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/ameerarsath/publicdocsafe-sub005/internal/crypto/domain"
)

func TestDeriveKey(t *testing.T) {
	salt := bytes.Repeat([]byte{0x5A}, cryptoDomain.SaltSize)

	t.Run("deterministic for same inputs", func(t *testing.T) {
		first, err := DeriveKey("correct horse battery staple", salt, cryptoDomain.MinKDFIterations)
		require.NoError(t, err)
		second, err := DeriveKey("correct horse battery staple", salt, cryptoDomain.MinKDFIterations)
		require.NoError(t, err)

		assert.Len(t, first, cryptoDomain.KeySize)
		assert.Equal(t, first, second)
	})

	t.Run("different salt yields a different key", func(t *testing.T) {
		otherSalt := bytes.Repeat([]byte{0xA5}, cryptoDomain.SaltSize)
		first, err := DeriveKey("password", salt, cryptoDomain.MinKDFIterations)
		require.NoError(t, err)
		second, err := DeriveKey("password", otherSalt, cryptoDomain.MinKDFIterations)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("empty password fails", func(t *testing.T) {
		_, err := DeriveKey("", salt, cryptoDomain.MinKDFIterations)
		assert.ErrorIs(t, err, cryptoDomain.ErrKeyDerivation)
	})

	t.Run("short salt fails", func(t *testing.T) {
		_, err := DeriveKey("password", salt[:cryptoDomain.MinSaltSize-1], cryptoDomain.MinKDFIterations)
		assert.ErrorIs(t, err, cryptoDomain.ErrKeyDerivation)
	})

	t.Run("minimum length salt is accepted", func(t *testing.T) {
		key, err := DeriveKey("password", salt[:cryptoDomain.MinSaltSize], cryptoDomain.MinKDFIterations)
		require.NoError(t, err)
		assert.Len(t, key, cryptoDomain.KeySize)
	})

	t.Run("weak iteration count fails", func(t *testing.T) {
		_, err := DeriveKey("password", salt, cryptoDomain.MinKDFIterations-1)
		assert.ErrorIs(t, err, cryptoDomain.ErrKeyDerivation)
	})
}

func TestDeriveMasterKey(t *testing.T) {
	salt := bytes.Repeat([]byte{0x01}, cryptoDomain.SaltSize)

	masterKey, err := DeriveMasterKey("password", salt, cryptoDomain.MinKDFIterations, "mk-1")
	require.NoError(t, err)
	assert.Equal(t, "mk-1", masterKey.ID)
	assert.True(t, masterKey.Valid())
}

func TestNewSessionFromPassword(t *testing.T) {
	salt := bytes.Repeat([]byte{0x02}, cryptoDomain.SaltSize)

	t.Run("session owns a usable master key until closed", func(t *testing.T) {
		session, err := NewSessionFromPassword("password", salt, cryptoDomain.MinKDFIterations, "mk-1")
		require.NoError(t, err)

		masterKey, err := session.MasterKey()
		require.NoError(t, err)
		assert.True(t, masterKey.Valid())

		session.Close()
		_, err = session.MasterKey()
		assert.ErrorIs(t, err, cryptoDomain.ErrSessionClosed)
	})

	t.Run("derivation failure propagates", func(t *testing.T) {
		_, err := NewSessionFromPassword("", salt, cryptoDomain.MinKDFIterations, "mk-1")
		assert.ErrorIs(t, err, cryptoDomain.ErrKeyDerivation)
	})
}

func TestGenerateSalt(t *testing.T) {
	first, err := GenerateSalt()
	require.NoError(t, err)
	second, err := GenerateSalt()
	require.NoError(t, err)

	assert.Len(t, first, cryptoDomain.SaltSize)
	assert.NotEqual(t, first, second)
}
