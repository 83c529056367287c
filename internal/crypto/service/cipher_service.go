package service

import (
	"fmt"
	"log/slog"

	cryptoDomain "github.com/ameerarsath/publicdocsafe-sub005/internal/crypto/domain"
	"github.com/ameerarsath/publicdocsafe-sub005/internal/errors"
)

// EncryptedPayload is the primitive layer's output: base64-encoded ciphertext with
// the IV and the 128-bit authentication tag independently addressable. All
// downstream code depends on ciphertext and tag being separate fields, never a
// single concatenated blob.
type EncryptedPayload struct {
	Ciphertext string `json:"ciphertext"`
	IV         string `json:"iv"`
	AuthTag    string `json:"authTag"`
}

// Violations performs a non-throwing structural check over the decryption
// inputs and returns a human-readable list of everything wrong with them. An
// empty list means the payload is structurally decryptable. Intended for
// diagnostics and health checks; the throwing path is Decrypt, which collapses
// the same problems into the uniform error.
func (p *EncryptedPayload) Violations() []string {
	if p == nil {
		return []string{"payload is missing"}
	}

	var violations []string

	if p.Ciphertext == "" {
		violations = append(violations, "ciphertext is missing")
	} else if _, err := DecodeBase64(p.Ciphertext); err != nil {
		violations = append(violations, "ciphertext is not valid base64")
	}

	if p.IV == "" {
		violations = append(violations, "iv is missing")
	} else if iv, err := DecodeBase64(p.IV); err != nil {
		violations = append(violations, "iv is not valid base64")
	} else if len(iv) != cryptoDomain.NonceSize {
		violations = append(violations, fmt.Sprintf("iv must decode to %d bytes, got %d", cryptoDomain.NonceSize, len(iv)))
	}

	if p.AuthTag == "" {
		violations = append(violations, "authTag is missing")
	} else if tag, err := DecodeBase64(p.AuthTag); err != nil {
		violations = append(violations, "authTag is not valid base64")
	} else if len(tag) != cryptoDomain.TagSize {
		violations = append(violations, fmt.Sprintf("authTag must decode to %d bytes, got %d", cryptoDomain.TagSize, len(tag)))
	}

	return violations
}

// CipherService is the typed entry point to the authenticated-encryption
// primitives. It owns the ciphertext/tag split on encrypt and the uniform
// error collapse on decrypt.
//
// Stateless and safe for concurrent use; keys are caller-owned and passed into
// every call.
type CipherService struct {
	aeadManager AEADManager
	logger      *slog.Logger
}

// NewCipherService creates a CipherService. A nil logger falls back to slog.Default().
func NewCipherService(aeadManager AEADManager, logger *slog.Logger) *CipherService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CipherService{
		aeadManager: aeadManager,
		logger:      logger,
	}
}

// Encrypt encrypts plaintext under the given 32-byte key using AES-256-GCM.
//
// A fresh 96-bit IV is generated unless the caller supplies one; callers that
// supply their own IV are responsible for uniqueness under the key. The AEAD
// output is split into ciphertext and the trailing 16-byte tag. The tag length
// is a contract invariant: an AEAD output of any other shape is a fatal
// configuration error, never an inferred tag size.
func (c *CipherService) Encrypt(plaintext, key, iv, aad []byte) (*EncryptedPayload, error) {
	aead, err := c.aeadManager.CreateCipher(key, cryptoDomain.AESGCM)
	if err != nil {
		return nil, err
	}

	var raw []byte
	if iv == nil {
		raw, iv, err = aead.Encrypt(plaintext, aad)
	} else {
		raw, err = aead.EncryptWithNonce(plaintext, iv, aad)
	}
	if err != nil {
		return nil, errors.Wrap(cryptoDomain.ErrEncryptionFailed, err.Error())
	}

	if len(raw) != len(plaintext)+cryptoDomain.TagSize {
		return nil, errors.Wrap(cryptoDomain.ErrEncryptionFailed, "AEAD output does not carry a 128-bit tag")
	}

	split := len(raw) - cryptoDomain.TagSize
	return &EncryptedPayload{
		Ciphertext: EncodeBase64(raw[:split]),
		IV:         EncodeBase64(iv),
		AuthTag:    EncodeBase64(raw[split:]),
	}, nil
}

// Decrypt decrypts an EncryptedPayload under the given key.
//
// The AEAD input is rebuilt by concatenating ciphertext and tag, and the tag is
// verified as part of the same operation. Any failure (bad key, corrupted bytes,
// tag mismatch, malformed IV length) surfaces uniformly as ErrDecryptionFailed;
// the sub-step that failed is only logged locally at debug level, never exposed
// to the caller.
func (c *CipherService) Decrypt(payload *EncryptedPayload, key, aad []byte) ([]byte, error) {
	ciphertext, iv, tag, err := c.decodePayload(payload)
	if err != nil {
		return nil, err
	}

	aead, err := c.aeadManager.CreateCipher(key, cryptoDomain.AESGCM)
	if err != nil {
		c.logger.Debug("decrypt failed creating cipher", slog.Any("error", err))
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	plaintext, err := aead.Decrypt(assembleTagAppended(ciphertext, tag), iv, aad)
	if err != nil {
		c.logger.Debug("decrypt failed", slog.Any("error", err))
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	return plaintext, nil
}

// DecryptLegacy decrypts a payload whose tag packaging is unknown, trying each
// known framing variant in order and returning the first success. The succeeding
// variant is logged for observability. Used only on the legacy import path; the
// hot path always uses the canonical tag-appended framing.
func (c *CipherService) DecryptLegacy(payload *EncryptedPayload, key, aad []byte) ([]byte, error) {
	ciphertext, iv, tag, err := c.decodePayload(payload)
	if err != nil {
		return nil, err
	}

	aead, err := c.aeadManager.CreateCipher(key, cryptoDomain.AESGCM)
	if err != nil {
		c.logger.Debug("legacy decrypt failed creating cipher", slog.Any("error", err))
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	for _, variant := range framingVariants {
		plaintext, err := aead.Decrypt(variant.assemble(ciphertext, tag), iv, aad)
		if err == nil {
			c.logger.Debug("legacy framing variant succeeded", slog.String("variant", variant.name))
			return plaintext, nil
		}
	}

	c.logger.Debug("all legacy framing variants failed")
	return nil, cryptoDomain.ErrDecryptionFailed
}

// decodePayload decodes and size-checks the three base64 fields. All failures
// collapse to ErrDecryptionFailed with debug-only detail.
func (c *CipherService) decodePayload(payload *EncryptedPayload) (ciphertext, iv, tag []byte, err error) {
	if payload == nil {
		return nil, nil, nil, cryptoDomain.ErrDecryptionFailed
	}

	ciphertext, err = DecodeBase64(payload.Ciphertext)
	if err != nil {
		c.logger.Debug("decrypt failed decoding ciphertext", slog.Any("error", err))
		return nil, nil, nil, cryptoDomain.ErrDecryptionFailed
	}
	iv, err = DecodeBase64(payload.IV)
	if err != nil {
		c.logger.Debug("decrypt failed decoding iv", slog.Any("error", err))
		return nil, nil, nil, cryptoDomain.ErrDecryptionFailed
	}
	tag, err = DecodeBase64(payload.AuthTag)
	if err != nil {
		c.logger.Debug("decrypt failed decoding auth tag", slog.Any("error", err))
		return nil, nil, nil, cryptoDomain.ErrDecryptionFailed
	}

	if len(iv) != cryptoDomain.NonceSize {
		c.logger.Debug("decrypt failed: malformed iv length", slog.Int("length", len(iv)))
		return nil, nil, nil, cryptoDomain.ErrDecryptionFailed
	}
	if len(tag) != cryptoDomain.TagSize {
		c.logger.Debug("decrypt failed: malformed tag length", slog.Int("length", len(tag)))
		return nil, nil, nil, cryptoDomain.ErrDecryptionFailed
	}

	return ciphertext, iv, tag, nil
}
