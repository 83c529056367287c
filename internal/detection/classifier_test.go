package detection

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/ameerarsath/publicdocsafe-sub005/internal/crypto/domain"
)

func zeroKnowledgeRecord() *cryptoDomain.DocumentRecord {
	return &cryptoDomain.DocumentRecord{
		EncryptedDek: "c29tZS13cmFwcGVkLWRlaw==",
		EncryptionIV: "AAAAAAAAAAAAAAAA",
		IsEncrypted:  true,
	}
}

func legacyRecord() *cryptoDomain.DocumentRecord {
	return &cryptoDomain.DocumentRecord{
		EncryptionKeyID:   "key-2024-01",
		EncryptionIV:      "AAAAAAAAAAAAAAAA",
		EncryptionAuthTag: "AAAAAAAAAAAAAAAAAAAAAA==",
		IsEncrypted:       true,
	}
}

func TestDetectorDetect(t *testing.T) {
	detector := NewDetector(0, 0, nil)

	t.Run("zero knowledge metadata is definitive", func(t *testing.T) {
		result := detector.Detect(zeroKnowledgeRecord(), nil)
		assert.True(t, result.IsEncrypted)
		assert.Equal(t, TypeZeroKnowledge, result.EncryptionType)
		assert.Equal(t, 1.0, result.Confidence)
		assert.True(t, result.Metadata.HasZeroKnowledgeFields)
	})

	t.Run("zero knowledge metadata wins over legacy metadata", func(t *testing.T) {
		record := zeroKnowledgeRecord()
		record.EncryptionKeyID = "key-2024-01"
		record.EncryptionAuthTag = "AAAAAAAAAAAAAAAAAAAAAA=="

		result := detector.Detect(record, nil)
		assert.Equal(t, TypeZeroKnowledge, result.EncryptionType)
	})

	t.Run("legacy metadata", func(t *testing.T) {
		result := detector.Detect(legacyRecord(), nil)
		assert.True(t, result.IsEncrypted)
		assert.Equal(t, TypeLegacy, result.EncryptionType)
		assert.Equal(t, 0.95, result.Confidence)
	})

	t.Run("metadata wins over plaintext looking bytes", func(t *testing.T) {
		result := detector.Detect(zeroKnowledgeRecord(), []byte("%PDF-1.7 plain document"))
		assert.True(t, result.IsEncrypted)
		assert.Equal(t, 1.0, result.Confidence)
	})

	t.Run("pdf bytes classify as plaintext regardless of entropy", func(t *testing.T) {
		data := make([]byte, 2048)
		_, err := rand.Read(data)
		require.NoError(t, err)
		copy(data, "%PDF-1.4")

		result := detector.Detect(nil, data)
		assert.False(t, result.IsEncrypted)
		assert.Equal(t, TypeNone, result.EncryptionType)
		assert.GreaterOrEqual(t, result.Confidence, 0.9)
		assert.Equal(t, "pdf", result.Metadata.KnownFormat)
	})

	t.Run("random bytes without metadata infer ciphertext of unknown scheme", func(t *testing.T) {
		data := make([]byte, 2048)
		_, err := rand.Read(data)
		require.NoError(t, err)

		result := detector.Detect(nil, data)
		assert.True(t, result.IsEncrypted)
		assert.Equal(t, TypeNone, result.EncryptionType)
		require.NotNil(t, result.Metadata.Entropy)
		assert.Greater(t, *result.Metadata.Entropy, 7.5)
	})

	t.Run("database flag alone is low confidence", func(t *testing.T) {
		record := &cryptoDomain.DocumentRecord{IsEncrypted: true}

		result := detector.Detect(record, nil)
		assert.True(t, result.IsEncrypted)
		assert.Equal(t, TypeNone, result.EncryptionType)
		assert.Equal(t, 0.3, result.Confidence)
	})

	t.Run("nothing available means plaintext", func(t *testing.T) {
		result := detector.Detect(nil, nil)
		assert.False(t, result.IsEncrypted)
		assert.Equal(t, TypeNone, result.EncryptionType)
	})

	t.Run("deterministic on repeated calls", func(t *testing.T) {
		data := []byte("Some ordinary document content, nothing special here at all.")
		first := detector.Detect(nil, data)
		for range 10 {
			assert.Equal(t, first, detector.Detect(nil, data))
		}
	})
}

func TestDetectorValidateDecryptionPossible(t *testing.T) {
	detector := NewDetector(0, 0, nil)

	t.Run("allows zero knowledge decrypt with metadata", func(t *testing.T) {
		record := zeroKnowledgeRecord()
		result := detector.Detect(record, nil)

		check := detector.ValidateDecryptionPossible(record, result)
		assert.True(t, check.CanDecrypt)
		assert.Empty(t, check.Reason)
	})

	t.Run("refuses plaintext verdicts", func(t *testing.T) {
		check := detector.ValidateDecryptionPossible(nil, DetectionResult{IsEncrypted: false})
		assert.False(t, check.CanDecrypt)
		assert.NotEmpty(t, check.Reason)
	})

	t.Run("refuses low confidence verdicts", func(t *testing.T) {
		check := detector.ValidateDecryptionPossible(zeroKnowledgeRecord(), DetectionResult{
			IsEncrypted:    true,
			EncryptionType: TypeZeroKnowledge,
			Confidence:     0.3,
		})
		assert.False(t, check.CanDecrypt)
	})

	t.Run("refuses claimed scheme with missing fields", func(t *testing.T) {
		check := detector.ValidateDecryptionPossible(&cryptoDomain.DocumentRecord{}, DetectionResult{
			IsEncrypted:    true,
			EncryptionType: TypeZeroKnowledge,
			Confidence:     1.0,
		})
		assert.False(t, check.CanDecrypt)
	})

	t.Run("refuses content inferred ciphertext without a scheme", func(t *testing.T) {
		check := detector.ValidateDecryptionPossible(nil, DetectionResult{
			IsEncrypted:    true,
			EncryptionType: TypeNone,
			Confidence:     0.9,
		})
		assert.False(t, check.CanDecrypt)
	})
}
