package domain

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDekInfo() DekInfo {
	return DekInfo{
		DekID:        "dek:m1abc23_AbCdEf123+/0",
		EncryptedDek: base64.StdEncoding.EncodeToString(make([]byte, KeySize+TagSize)),
		DekIV:        base64.StdEncoding.EncodeToString(make([]byte, NonceSize)),
		DekAuthTag:   base64.StdEncoding.EncodeToString(make([]byte, TagSize)),
		Algorithm:    AESGCM,
		KeyLength:    KeySize,
		Version:      1,
		CreatedAt:    time.Now().UTC(),
	}
}

func TestNewDekID(t *testing.T) {
	t.Run("format", func(t *testing.T) {
		id, err := NewDekID()
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(id, DekIDPrefix))
		parts := strings.SplitN(strings.TrimPrefix(id, DekIDPrefix), "_", 2)
		require.Len(t, parts, 2)
		assert.NotEmpty(t, parts[0])
		assert.Len(t, parts[1], DekIDRandomLength)
	})

	t.Run("unique", func(t *testing.T) {
		a, err := NewDekID()
		require.NoError(t, err)
		b, err := NewDekID()
		require.NoError(t, err)

		assert.NotEqual(t, a, b)
	})
}

func TestDekInfo_Validate(t *testing.T) {
	t.Run("valid dek info", func(t *testing.T) {
		info := validDekInfo()
		assert.NoError(t, info.Validate())
	})

	t.Run("collects all violations", func(t *testing.T) {
		info := DekInfo{}
		err := info.Validate()
		require.Error(t, err)

		// Every required field must be reported, not just the first.
		msg := err.Error()
		for _, field := range []string{"dekId", "encryptedDek", "dekIv", "dekAuthTag", "algorithm", "keyLength", "version", "createdAt"} {
			assert.Contains(t, msg, field)
		}
	})

	t.Run("rejects non-base64 fields", func(t *testing.T) {
		info := validDekInfo()
		info.EncryptedDek = "not#base64"
		assert.Error(t, info.Validate())
	})

	t.Run("rejects wrong algorithm", func(t *testing.T) {
		info := validDekInfo()
		info.Algorithm = ChaCha20
		assert.Error(t, info.Validate())
	})
}

func TestDekInfo_Violations(t *testing.T) {
	t.Run("structurally sound value has no violations", func(t *testing.T) {
		info := validDekInfo()
		assert.Empty(t, info.Violations())
	})

	t.Run("reports every problem", func(t *testing.T) {
		info := DekInfo{
			DekID:      "bogus",
			DekIV:      base64.StdEncoding.EncodeToString(make([]byte, 8)),
			DekAuthTag: "###",
			Algorithm:  Algorithm("rot13"),
			KeyLength:  16,
		}

		violations := info.Violations()
		assert.GreaterOrEqual(t, len(violations), 6)

		joined := strings.Join(violations, "\n")
		assert.Contains(t, joined, `dekId must start with "dek:"`)
		assert.Contains(t, joined, "encryptedDek is missing")
		assert.Contains(t, joined, "dekIv must decode to 12 bytes")
		assert.Contains(t, joined, "dekAuthTag is not valid base64")
		assert.Contains(t, joined, "keyLength must be 32")
	})

	t.Run("url-safe base64 fields are accepted", func(t *testing.T) {
		info := validDekInfo()
		info.DekIV = base64.RawURLEncoding.EncodeToString(make([]byte, NonceSize))
		assert.Empty(t, info.Violations())
	})
}
