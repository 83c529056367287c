package domain

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	appvalidation "github.com/ameerarsath/publicdocsafe-sub005/internal/validation"
)

// DekInfo is the durable, serializable representation of a wrapped Data Encryption Key.
//
// The raw DEK exists only transiently in memory; what is persisted alongside a
// document is the DEK encrypted under the user's master key, together with the
// metadata needed to unwrap it later. DekInfo values are never mutated in place:
// rotation produces a new value with Version incremented and DekID/CreatedAt
// preserved.
type DekInfo struct {
	DekID        string    `json:"dekId"`
	EncryptedDek string    `json:"encryptedDek"`
	DekIV        string    `json:"dekIv"`
	DekAuthTag   string    `json:"dekAuthTag"`
	Algorithm    Algorithm `json:"algorithm"`
	KeyLength    int       `json:"keyLength"`
	Version      uint      `json:"version"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewDekID generates a DEK identifier: "dek:" + base36 unix-millisecond timestamp +
// "_" + 12 characters of unpadded standard-alphabet base64.
func NewDekID() (string, error) {
	// 9 random bytes encode to exactly 12 base64 characters without padding.
	buf := make([]byte, 9)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate dek id: %w", err)
	}

	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	return DekIDPrefix + ts + "_" + base64.RawStdEncoding.EncodeToString(buf), nil
}

// Validate checks the structural integrity of the DekInfo. All field violations
// are collected and reported together, not just the first one, because DekInfo
// typically arrives from external storage that may have been corrupted or
// partially written.
func (d *DekInfo) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.DekID, validation.Required, appvalidation.DekID),
		validation.Field(&d.EncryptedDek, validation.Required, appvalidation.Base64),
		validation.Field(&d.DekIV, validation.Required, appvalidation.Base64),
		validation.Field(&d.DekAuthTag, validation.Required, appvalidation.Base64),
		validation.Field(&d.Algorithm, validation.Required, validation.In(AESGCM)),
		validation.Field(&d.KeyLength, validation.Required, validation.In(KeySize)),
		validation.Field(&d.Version, validation.Required, validation.Min(uint(1))),
		validation.Field(&d.CreatedAt, validation.Required),
	)
}

// Violations performs a non-throwing structural check and returns a human-readable
// list of everything wrong with the DekInfo. An empty list means the value is
// structurally sound. Intended for diagnostics and health checks; the throwing
// parse path is ParseDekInfo in the crypto service.
func (d *DekInfo) Violations() []string {
	var violations []string

	if !strings.HasPrefix(d.DekID, DekIDPrefix) {
		violations = append(violations, fmt.Sprintf("dekId must start with %q", DekIDPrefix))
	}
	if d.EncryptedDek == "" {
		violations = append(violations, "encryptedDek is missing")
	}
	if d.DekIV == "" {
		violations = append(violations, "dekIv is missing")
	}
	if d.DekAuthTag == "" {
		violations = append(violations, "dekAuthTag is missing")
	}
	if d.Algorithm != AESGCM {
		violations = append(violations, fmt.Sprintf("algorithm must be %q, got %q", AESGCM, d.Algorithm))
	}
	if d.KeyLength != KeySize {
		violations = append(violations, fmt.Sprintf("keyLength must be %d, got %d", KeySize, d.KeyLength))
	}
	if d.Version < 1 {
		violations = append(violations, "version must be at least 1")
	}
	if d.CreatedAt.IsZero() {
		violations = append(violations, "createdAt is missing")
	}

	if d.DekIV != "" {
		if iv, err := decodeLenientBase64(d.DekIV); err != nil {
			violations = append(violations, "dekIv is not valid base64")
		} else if len(iv) != NonceSize {
			violations = append(violations, fmt.Sprintf("dekIv must decode to %d bytes, got %d", NonceSize, len(iv)))
		}
	}
	if d.DekAuthTag != "" {
		if tag, err := decodeLenientBase64(d.DekAuthTag); err != nil {
			violations = append(violations, "dekAuthTag is not valid base64")
		} else if len(tag) != TagSize {
			violations = append(violations, fmt.Sprintf("dekAuthTag must decode to %d bytes, got %d", TagSize, len(tag)))
		}
	}
	if d.EncryptedDek != "" {
		if _, err := decodeLenientBase64(d.EncryptedDek); err != nil {
			violations = append(violations, "encryptedDek is not valid base64")
		}
	}

	return violations
}

// decodeLenientBase64 decodes standard or URL-safe base64, with or without padding.
// The strict, error-classifying codec lives in the crypto service; this helper only
// backs the diagnostics path.
func decodeLenientBase64(s string) ([]byte, error) {
	normalized := strings.NewReplacer("-", "+", "_", "/").Replace(strings.TrimRight(s, "="))
	return base64.RawStdEncoding.DecodeString(normalized)
}
