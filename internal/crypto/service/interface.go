// Package service provides the cryptographic primitive layer and the DEK manager
// for the zero-knowledge document encryption subsystem. Implements AEAD ciphers
// (AES-256-GCM, ChaCha20-Poly1305), PBKDF2 key derivation, a strict base64 codec,
// and per-document key wrapping with rotation.
package service

import (
	"context"

	cryptoDomain "github.com/ameerarsath/publicdocsafe-sub005/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext and a
	// freshly generated nonce. The authentication tag is appended to the ciphertext.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// EncryptWithNonce encrypts plaintext using a caller-supplied nonce. The caller
	// is responsible for nonce uniqueness under the key.
	EncryptWithNonce(plaintext, nonce, aad []byte) ([]byte, error)

	// Decrypt decrypts ciphertext (with appended tag) using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// DekManager defines the interface for the per-document key hierarchy: generate a
// DEK per document, wrap it under the master key, unwrap on demand, and re-wrap
// during rotation.
type DekManager interface {
	// GenerateDek produces a fresh random 32-byte DEK.
	GenerateDek() ([]byte, error)

	// EncryptDek wraps raw DEK bytes under the master key. An empty dekID generates one.
	EncryptDek(dekKey []byte, masterKey *cryptoDomain.MasterKey, dekID string) (cryptoDomain.DekInfo, error)

	// DecryptDek unwraps a DEK using the master key.
	DecryptDek(info *cryptoDomain.DekInfo, masterKey *cryptoDomain.MasterKey) ([]byte, error)

	// EncryptDocument generates a DEK, wraps it, and encrypts the document payload.
	EncryptDocument(plaintext []byte, masterKey *cryptoDomain.MasterKey, dekID string) (*cryptoDomain.DocumentEncryptionData, error)

	// DecryptDocument unwraps the DEK and decrypts the document payload. When
	// dekInfoJSON is non-empty it is parsed strictly and takes precedence over
	// the DekInfo embedded in data.
	DecryptDocument(data *cryptoDomain.DocumentEncryptionData, dekInfoJSON []byte, masterKey *cryptoDomain.MasterKey) ([]byte, error)

	// RewrapDek re-wraps a DEK under a new master key without touching document
	// ciphertext. The result preserves DekID and CreatedAt and increments Version.
	RewrapDek(info *cryptoDomain.DekInfo, oldMasterKey, newMasterKey *cryptoDomain.MasterKey) (cryptoDomain.DekInfo, error)

	// RewrapBatch rewraps a slice of DekInfos concurrently. Either all succeed or
	// an error is returned and the results are discarded.
	RewrapBatch(ctx context.Context, infos []*cryptoDomain.DekInfo, oldMasterKey, newMasterKey *cryptoDomain.MasterKey) ([]cryptoDomain.DekInfo, error)
}
