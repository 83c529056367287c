// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"

	validation "github.com/jellydator/validation"

	apperrors "github.com/ameerarsath/publicdocsafe-sub005/internal/errors"
)

var (
	// dekIDRegex matches the DEK identifier format: a "dek:" prefix, a base36
	// timestamp, and a 12-character random suffix from the base64 alphabet.
	dekIDRegex = regexp.MustCompile(`^dek:[0-9a-z]+_[A-Za-z0-9+/]{12}$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// DekID validates that a string follows the DEK identifier format.
var DekID = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_dek_id_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	if !dekIDRegex.MatchString(s) {
		return validation.NewError("validation_dek_id", "must match the dek:<timestamp>_<random> format")
	}
	return nil
})
