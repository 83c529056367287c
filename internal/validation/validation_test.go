package validation

import (
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"
)

func TestBase64(t *testing.T) {
	t.Run("valid standard base64", func(t *testing.T) {
		assert.NoError(t, validation.Validate("aGVsbG8=", Base64))
	})

	t.Run("valid url-safe base64", func(t *testing.T) {
		assert.NoError(t, validation.Validate("aGVs-_8", Base64))
	})

	t.Run("missing padding is tolerated", func(t *testing.T) {
		assert.NoError(t, validation.Validate("aGVsbG8", Base64))
	})

	t.Run("invalid characters", func(t *testing.T) {
		assert.Error(t, validation.Validate("abc#def", Base64))
	})

	t.Run("empty string is left to Required", func(t *testing.T) {
		assert.NoError(t, validation.Validate("", Base64))
	})
}

func TestDekID(t *testing.T) {
	t.Run("valid dek id", func(t *testing.T) {
		assert.NoError(t, validation.Validate("dek:m1abc23_AbCdEf123+/0", DekID))
	})

	t.Run("missing prefix", func(t *testing.T) {
		assert.Error(t, validation.Validate("m1abc23_AbCdEf123+/0", DekID))
	})

	t.Run("short random suffix", func(t *testing.T) {
		assert.Error(t, validation.Validate("dek:m1abc23_short", DekID))
	})
}

func TestWrapValidationError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, WrapValidationError(nil))
	})

	t.Run("error is wrapped as invalid input", func(t *testing.T) {
		err := WrapValidationError(validation.NewError("code", "bad value"))
		assert.ErrorContains(t, err, "bad value")
	})
}
