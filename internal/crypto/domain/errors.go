package domain

import (
	"github.com/ameerarsath/publicdocsafe-sub005/internal/errors"
)

// Cryptographic operation error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors to
// provide context for cryptographic failures. Decryption failures are deliberately
// coarse: the class of error never discloses which sub-step failed, to avoid
// oracle-style side channels.
var (
	// ErrUnsupportedAlgorithm indicates the requested encryption algorithm is not supported.
	//
	// Supported algorithms: AESGCM (AES-256-GCM), ChaCha20 (ChaCha20-Poly1305)
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKeySize indicates the cryptographic key size is invalid.
	//
	// All keys (master keys and DEKs) must be exactly 32 bytes (256 bits).
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrKeyDerivation indicates PBKDF2 key derivation failed, either because the
	// parameters are out of range (short salt, iteration count below the minimum)
	// or the password is empty.
	ErrKeyDerivation = errors.Wrap(errors.ErrInvalidInput, "key derivation failed")

	// ErrEncryptionFailed indicates a generic AEAD failure during encrypt.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrDecryptionFailed indicates a decryption operation failed.
	//
	// This error can occur due to:
	//   - Wrong decryption key used
	//   - Ciphertext has been tampered with (authentication failure)
	//   - Invalid nonce provided
	//   - Corrupted encrypted data
	//
	// For security reasons, the specific cause is not disclosed to prevent
	// information leakage that could aid attackers.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrAuthenticationFailed is a specialization of ErrDecryptionFailed used by
	// user-facing layers that need to name the tag-verification case. The primitive
	// layer itself never distinguishes it.
	ErrAuthenticationFailed = errors.Wrap(ErrDecryptionFailed, "authentication tag verification failed")

	// ErrCorruptedData indicates data that is structurally implausible before even
	// attempting an AEAD operation (wrong absolute length, mostly-null buffer).
	ErrCorruptedData = errors.Wrap(errors.ErrInvalidInput, "corrupted data")

	// ErrUnsupportedFormat indicates a buffer too small to be any valid ciphertext
	// or a container magic signature mismatch.
	ErrUnsupportedFormat = errors.Wrap(errors.ErrUnsupported, "unsupported format")
)

// DEK manager error family. These wrap the generic failures above for the
// two-tier key hierarchy so callers can match on the family as a whole.
var (
	// ErrDek is the base error of the DEK manager family.
	ErrDek = errors.New("dek operation failed")

	// ErrDekGeneration indicates a fresh DEK could not be generated.
	ErrDekGeneration = errors.Wrap(ErrDek, "dek generation failed")

	// ErrDekDecryption indicates a wrapped DEK could not be unwrapped, typically
	// because the master key is wrong or the DEK metadata is inconsistent.
	ErrDekDecryption = errors.Wrap(ErrDek, "dek decryption failed")
)

// Base64 codec errors. These are distinguishable so that callers can report
// empty input separately from malformed input.
var (
	// ErrEmptyBase64 indicates an empty string was passed to the base64 decoder.
	ErrEmptyBase64 = errors.Wrap(errors.ErrInvalidInput, "empty base64 input")

	// ErrInvalidBase64 indicates input containing characters outside the base64 alphabet.
	ErrInvalidBase64 = errors.Wrap(errors.ErrInvalidInput, "invalid base64 characters")
)

// ErrSessionClosed indicates a master-key session was used after Close.
var ErrSessionClosed = errors.Wrap(errors.ErrInvalidInput, "master key session closed")
