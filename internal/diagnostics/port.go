// Package diagnostics exposes the analysis and self-test surface used by
// operator tooling. The port is constructed explicitly and injected by the
// caller; there is no ambient global state.
package diagnostics

import (
	"bytes"
	"log/slog"

	"github.com/ameerarsath/publicdocsafe-sub005/internal/container"
	cryptoDomain "github.com/ameerarsath/publicdocsafe-sub005/internal/crypto/domain"
	cryptoService "github.com/ameerarsath/publicdocsafe-sub005/internal/crypto/service"
	"github.com/ameerarsath/publicdocsafe-sub005/internal/detection"
	"github.com/ameerarsath/publicdocsafe-sub005/internal/errors"
)

// Port bundles the read-only inspection operations over the crypto subsystem.
type Port struct {
	detector *detection.Detector
	codec    *container.Codec
	logger   *slog.Logger
}

// NewPort creates a diagnostics port. A nil logger falls back to slog.Default().
func NewPort(detector *detection.Detector, codec *container.Codec, logger *slog.Logger) *Port {
	if logger == nil {
		logger = slog.Default()
	}
	return &Port{
		detector: detector,
		codec:    codec,
		logger:   logger,
	}
}

// AnalyzeContent runs the byte-level heuristics over a blob.
func (p *Port) AnalyzeContent(data []byte) detection.ContentAnalysis {
	return p.detector.AnalyzeContent(data)
}

// Detect classifies a document from its metadata record and raw bytes.
func (p *Port) Detect(record *cryptoDomain.DocumentRecord, data []byte) detection.DetectionResult {
	return p.detector.Detect(record, data)
}

// InspectContainer returns the header of an encrypted container without
// decrypting it. Fails on non-container input.
func (p *Port) InspectContainer(data []byte) (*container.FileHeader, error) {
	return p.codec.PeekInfo(data)
}

// CheckDekInfo parses DEKInfo JSON and reports its violations without
// attempting any cryptography. A nil slice means the metadata is usable.
func (p *Port) CheckDekInfo(dekInfoJSON []byte) []string {
	info, err := cryptoService.ParseDekInfo(dekInfoJSON)
	if err != nil {
		return []string{err.Error()}
	}
	return info.Violations()
}

// CheckDecryptionInputs reports the violations of an encrypted payload's
// fields without attempting any cryptography. A nil slice means the payload is
// structurally decryptable.
func (p *Port) CheckDecryptionInputs(payload *cryptoService.EncryptedPayload) []string {
	return payload.Violations()
}

// SelfTest exercises a full encrypt/decrypt round trip with a throwaway key
// and reports whether the crypto stack is operational.
func (p *Port) SelfTest(manager cryptoService.DekManager) error {
	dekKey, err := manager.GenerateDek()
	if err != nil {
		return err
	}
	defer cryptoDomain.Zero(dekKey)

	masterKey := &cryptoDomain.MasterKey{ID: "selftest", Key: dekKey}
	plaintext := []byte("diagnostics self test payload")

	data, err := manager.EncryptDocument(plaintext, masterKey, "")
	if err != nil {
		return err
	}

	recovered, err := manager.DecryptDocument(data, nil, masterKey)
	if err != nil {
		return err
	}
	defer cryptoDomain.Zero(recovered)

	if !bytes.Equal(recovered, plaintext) {
		return errors.Wrap(cryptoDomain.ErrDecryptionFailed, "self test round trip mismatch")
	}

	p.logger.Debug("self test round trip completed", slog.Int("plaintext_size", len(recovered)))
	return nil
}
