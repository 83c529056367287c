package container

import (
	cryptoDomain "github.com/ameerarsath/publicdocsafe-sub005/internal/crypto/domain"
	"github.com/ameerarsath/publicdocsafe-sub005/internal/errors"
)

// Container codec error definitions.
var (
	// ErrIncorrectPasswordOrCorrupted indicates AEAD authentication failed while
	// decrypting a container. AEAD cannot distinguish a wrong password from
	// tampered data, and distinguishing them would create a password-guessing
	// oracle, so both cases deliberately collapse into this one error.
	ErrIncorrectPasswordOrCorrupted = errors.Wrap(
		cryptoDomain.ErrDecryptionFailed,
		"incorrect password or corrupted file",
	)

	// ErrNotContainer indicates the bytes are too small to be a container or do
	// not carry the magic signature.
	ErrNotContainer = errors.Wrap(cryptoDomain.ErrUnsupportedFormat, "not an encrypted container")

	// ErrLengthMismatch indicates truncation or tampering: the blob's total length
	// does not equal 4 + headerLength + encryptedSize + 16 exactly.
	ErrLengthMismatch = errors.Wrap(cryptoDomain.ErrCorruptedData, "container length mismatch")
)
