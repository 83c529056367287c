// Package container implements the self-describing encrypted file format used for
// portable password-protected exports.
//
// A container bundles a password-derived-key-encrypted payload with its metadata
// header in one blob, so a file can be decrypted anywhere from nothing but the
// bytes and the password, with no external key-management state. Binary layout
// (little-endian):
//
//	[0..4)            uint32  headerLength (N)
//	[4..4+N)          bytes   header JSON (UTF-8)
//	[4+N..4+N+C)      bytes   ciphertext (C = encryptedSize)
//	[4+N+C..4+N+C+16) bytes   authentication tag
//
// This is a wire format other implementations interoperate with; field order,
// endianness, and the exact byte-count invariants must be reproduced precisely.
package container

import (
	"time"

	validation "github.com/jellydator/validation"

	appvalidation "github.com/ameerarsath/publicdocsafe-sub005/internal/validation"
)

const (
	// MagicSignature identifies the container format inside the header JSON.
	MagicSignature = "DOCSAFE_ENCRYPTED"

	// FormatVersion is the current container format version.
	FormatVersion = 1

	// DefaultKDFIterations is the canonical PBKDF2 iteration count for the
	// container path.
	DefaultKDFIterations = 100000
)

// FileHeader is the JSON header embedded in every container.
type FileHeader struct {
	Signature        string    `json:"signature"`
	Version          int       `json:"version"`
	OriginalFilename string    `json:"originalFilename"`
	OriginalMimeType string    `json:"originalMimeType"`
	OriginalSize     int64     `json:"originalSize"`
	EncryptedSize    int64     `json:"encryptedSize"`
	Salt             string    `json:"salt"`
	IV               string    `json:"iv"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Validate checks the structural integrity of a parsed header. All field
// violations are collected and reported together.
func (h *FileHeader) Validate() error {
	return validation.ValidateStruct(h,
		validation.Field(&h.Signature, validation.Required, validation.In(MagicSignature)),
		validation.Field(&h.Version, validation.Required, validation.Min(1)),
		validation.Field(&h.OriginalFilename, validation.Required),
		validation.Field(&h.OriginalSize, validation.Min(int64(0))),
		validation.Field(&h.EncryptedSize, validation.Min(int64(0))),
		validation.Field(&h.Salt, validation.Required, appvalidation.Base64),
		validation.Field(&h.IV, validation.Required, appvalidation.Base64),
		validation.Field(&h.CreatedAt, validation.Required),
	)
}
