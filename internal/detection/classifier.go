// Package detection classifies document blobs as encrypted or plaintext before
// any decryption is attempted. Misclassifying a plaintext PDF as ciphertext
// (or the reverse) would corrupt it or waste a decryption attempt, so the
// classifier combines server metadata with byte-level heuristics and reports
// an explicit confidence with every verdict.
package detection

import (
	"log/slog"

	cryptoDomain "github.com/ameerarsath/publicdocsafe-sub005/internal/crypto/domain"
)

// EncryptionType identifies the scheme a document is encrypted under.
type EncryptionType string

const (
	// TypeZeroKnowledge marks documents encrypted client-side under the DEK
	// hierarchy.
	TypeZeroKnowledge EncryptionType = "zero-knowledge"
	// TypeLegacy marks documents encrypted server-side under a named key.
	TypeLegacy EncryptionType = "legacy"
	// TypeNone marks plaintext documents, and verdicts where ciphertext was
	// inferred from content alone and no scheme can be named.
	TypeNone EncryptionType = "none"
)

// DetectionMetadata carries the evidence behind a verdict.
type DetectionMetadata struct {
	HasZeroKnowledgeFields bool     `json:"hasZeroKnowledgeFields"`
	HasLegacyFields        bool     `json:"hasLegacyFields"`
	DatabaseFlag           bool     `json:"databaseFlag"`
	Entropy                *float64 `json:"entropy,omitempty"`
	KnownFormat            string   `json:"knownFormat,omitempty"`
}

// DetectionResult is a classification verdict. It is computed fresh on every
// call and never persisted.
type DetectionResult struct {
	IsEncrypted    bool              `json:"isEncrypted"`
	EncryptionType EncryptionType    `json:"encryptionType"`
	Confidence     float64           `json:"confidence"`
	Reason         string            `json:"reason"`
	Metadata       DetectionMetadata `json:"metadata"`
}

// DecryptionCheck is the verdict of ValidateDecryptionPossible.
type DecryptionCheck struct {
	CanDecrypt bool   `json:"canDecrypt"`
	Reason     string `json:"reason"`
}

// Detector classifies documents. Stateless apart from configuration; safe for
// concurrent use, and deterministic: the same inputs always yield the same
// verdict.
type Detector struct {
	sampleSize     int
	textSampleSize int
	logger         *slog.Logger
}

// NewDetector creates a detector. Non-positive sample sizes fall back to the
// defaults, a nil logger falls back to slog.Default().
func NewDetector(sampleSize, textSampleSize int, logger *slog.Logger) *Detector {
	if sampleSize <= 0 {
		sampleSize = defaultSampleSize
	}
	if textSampleSize <= 0 {
		textSampleSize = defaultTextSampleSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Detector{
		sampleSize:     sampleSize,
		textSampleSize: textSampleSize,
		logger:         logger,
	}
}

// Detect classifies a document from its storage record and, when available,
// its raw bytes. Decision order, first confident match wins:
//
//  1. Zero-knowledge metadata on the record, which is definitive.
//  2. Legacy metadata on the record.
//  3. Content analysis over the leading bytes.
//  4. The record's is_encrypted flag, known to be unreliable and therefore
//     reported with a confidence too low to pass the decryption guard alone.
//
// Either argument may be nil/empty; a nil record with no data yields a
// low-confidence plaintext verdict.
func (d *Detector) Detect(record *cryptoDomain.DocumentRecord, data []byte) DetectionResult {
	meta := DetectionMetadata{
		HasZeroKnowledgeFields: record.HasZeroKnowledgeMetadata(),
		HasLegacyFields:        record.HasLegacyMetadata(),
		DatabaseFlag:           record != nil && record.IsEncrypted,
	}

	if meta.HasZeroKnowledgeFields {
		return DetectionResult{
			IsEncrypted:    true,
			EncryptionType: TypeZeroKnowledge,
			Confidence:     1.0,
			Reason:         "document carries zero-knowledge encryption metadata",
			Metadata:       meta,
		}
	}

	if meta.HasLegacyFields {
		return DetectionResult{
			IsEncrypted:    true,
			EncryptionType: TypeLegacy,
			Confidence:     0.95,
			Reason:         "document carries legacy encryption metadata",
			Metadata:       meta,
		}
	}

	if len(data) > 0 {
		analysis := d.AnalyzeContent(data)
		meta.Entropy = &analysis.Entropy
		meta.KnownFormat = analysis.KnownFormat

		d.logger.Debug("content analysis verdict",
			slog.Float64("entropy", analysis.Entropy),
			slog.Bool("likely_encrypted", analysis.LikelyEncrypted),
			slog.Float64("confidence", analysis.Confidence),
		)

		// Content alone cannot name a scheme, so an inferred-ciphertext
		// verdict stays typed "none"; the decryption guard then refuses it
		// for lack of metadata, which is the right outcome.
		return DetectionResult{
			IsEncrypted:    analysis.LikelyEncrypted,
			EncryptionType: TypeNone,
			Confidence:     analysis.Confidence,
			Reason:         analysis.Reason,
			Metadata:       meta,
		}
	}

	return DetectionResult{
		IsEncrypted:    meta.DatabaseFlag,
		EncryptionType: TypeNone,
		Confidence:     0.3,
		Reason:         "only the database flag is available",
		Metadata:       meta,
	}
}

// ValidateDecryptionPossible is the guard called before any decrypt attempt.
// It refuses when the verdict says plaintext, when the claimed scheme's
// required metadata fields are missing from the record, or when confidence is
// below 0.5.
func (d *Detector) ValidateDecryptionPossible(
	record *cryptoDomain.DocumentRecord,
	result DetectionResult,
) DecryptionCheck {
	if !result.IsEncrypted {
		return DecryptionCheck{Reason: "document is not encrypted"}
	}
	if result.Confidence < 0.5 {
		return DecryptionCheck{Reason: "encryption verdict confidence is too low"}
	}

	switch result.EncryptionType {
	case TypeZeroKnowledge:
		if !record.HasZeroKnowledgeMetadata() {
			return DecryptionCheck{Reason: "zero-knowledge metadata fields are missing"}
		}
	case TypeLegacy:
		if !record.HasLegacyMetadata() {
			return DecryptionCheck{Reason: "legacy metadata fields are missing"}
		}
	default:
		return DecryptionCheck{Reason: "no encryption scheme could be determined"}
	}

	return DecryptionCheck{CanDecrypt: true}
}
