package service

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	cryptoDomain "github.com/ameerarsath/publicdocsafe-sub005/internal/crypto/domain"
	"github.com/ameerarsath/publicdocsafe-sub005/internal/errors"
)

// DeriveKey derives a 32-byte key from a password using PBKDF2-HMAC-SHA256.
//
// The salt must be at least 16 bytes (the canonical size is 32) and the iteration
// count at least 100000. The same password, salt, and iteration count always yield
// the same key, so the surrounding application must persist the salt per user.
// Parameter violations fail with ErrKeyDerivation.
func DeriveKey(password string, salt []byte, iterations int) ([]byte, error) {
	if password == "" {
		return nil, errors.Wrap(cryptoDomain.ErrKeyDerivation, "password must not be empty")
	}
	if len(salt) < cryptoDomain.MinSaltSize {
		return nil, errors.Wrap(
			cryptoDomain.ErrKeyDerivation,
			fmt.Sprintf("salt must be at least %d bytes, got %d", cryptoDomain.MinSaltSize, len(salt)),
		)
	}
	if iterations < cryptoDomain.MinKDFIterations {
		return nil, errors.Wrap(
			cryptoDomain.ErrKeyDerivation,
			fmt.Sprintf("iteration count must be at least %d, got %d", cryptoDomain.MinKDFIterations, iterations),
		)
	}

	return pbkdf2.Key([]byte(password), salt, iterations, cryptoDomain.KeySize, sha256.New), nil
}

// DeriveMasterKey derives a master key from a password and wraps it with an identifier.
func DeriveMasterKey(password string, salt []byte, iterations int, id string) (*cryptoDomain.MasterKey, error) {
	key, err := DeriveKey(password, salt, iterations)
	if err != nil {
		return nil, err
	}
	return &cryptoDomain.MasterKey{ID: id, Key: key}, nil
}

// NewSessionFromPassword derives a master key from a password and returns it wrapped
// in a caller-owned session. Closing the session zeroes the key material.
func NewSessionFromPassword(password string, salt []byte, iterations int, id string) (*cryptoDomain.MasterKeySession, error) {
	masterKey, err := DeriveMasterKey(password, salt, iterations, id)
	if err != nil {
		return nil, err
	}
	return cryptoDomain.NewMasterKeySession(masterKey), nil
}

// GenerateSalt generates a cryptographically secure random salt of the canonical size.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, cryptoDomain.SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}
