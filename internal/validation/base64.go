// Package validation provides custom validation rules for the application.
package validation

import (
	"encoding/base64"
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"
)

var base64Alphabet = regexp.MustCompile(`^[A-Za-z0-9+/\-_]+={0,2}$`)

// Base64 validates that a string is valid base64-encoded data. URL-safe input
// (`-`/`_`) and missing trailing padding are accepted, matching the decoder in
// the crypto service.
var Base64 = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_base64_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	if !base64Alphabet.MatchString(s) {
		return validation.NewError("validation_base64", "must be valid base64-encoded data")
	}
	normalized := strings.NewReplacer("-", "+", "_", "/").Replace(strings.TrimRight(s, "="))
	if _, err := base64.RawStdEncoding.DecodeString(normalized); err != nil {
		return validation.NewError("validation_base64", "must be valid base64-encoded data")
	}
	return nil
})
