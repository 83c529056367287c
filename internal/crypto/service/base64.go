package service

import (
	"encoding/base64"
	"regexp"
	"strings"

	cryptoDomain "github.com/ameerarsath/publicdocsafe-sub005/internal/crypto/domain"
	"github.com/ameerarsath/publicdocsafe-sub005/internal/errors"
)

// base64Alphabet accepts the standard and URL-safe alphabets with optional padding.
var base64Alphabet = regexp.MustCompile(`^[A-Za-z0-9+/\-_]+={0,2}$`)

// urlSafeReplacer normalizes URL-safe base64 characters to the standard alphabet.
var urlSafeReplacer = strings.NewReplacer("-", "+", "_", "/")

// EncodeBase64 encodes bytes using the standard base64 alphabet with padding.
func EncodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeBase64 strictly decodes a base64 string.
//
// The input is validated before decoding: empty input and input containing
// characters outside the base64 alphabet fail with distinguishable errors rather
// than being silently truncated. URL-safe input (`-`/`_`) is normalized to the
// standard alphabet, and missing trailing padding is tolerated.
func DecodeBase64(s string) ([]byte, error) {
	if s == "" {
		return nil, cryptoDomain.ErrEmptyBase64
	}
	if !base64Alphabet.MatchString(s) {
		return nil, errors.Wrap(cryptoDomain.ErrInvalidBase64, "input contains characters outside the base64 alphabet")
	}

	normalized := urlSafeReplacer.Replace(strings.TrimRight(s, "="))
	decoded, err := base64.RawStdEncoding.DecodeString(normalized)
	if err != nil {
		return nil, errors.Wrap(cryptoDomain.ErrInvalidBase64, err.Error())
	}
	return decoded, nil
}
