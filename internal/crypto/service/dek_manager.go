package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	cryptoDomain "github.com/ameerarsath/publicdocsafe-sub005/internal/crypto/domain"
	"github.com/ameerarsath/publicdocsafe-sub005/internal/errors"
	appvalidation "github.com/ameerarsath/publicdocsafe-sub005/internal/validation"
)

// rewrapConcurrency bounds the number of concurrent workers in RewrapBatch.
const rewrapConcurrency = 8

// DekManagerService implements the DekManager interface for the two-tier key
// hierarchy: MasterKey wraps DEKs, each DEK encrypts exactly one document.
//
// Per-document key isolation means compromising one document's key never exposes
// others, and rotation re-wraps keys in O(number of documents) without touching
// document ciphertext. The raw DEK bytes exist outside an AEAD operation only
// inside EncryptDek/DecryptDek and are zeroed as soon as they are wrapped.
type DekManagerService struct {
	cipher *CipherService
	logger *slog.Logger
}

// NewDekManager creates a DekManagerService on top of the primitive cipher layer.
// A nil logger falls back to slog.Default().
func NewDekManager(cipher *CipherService, logger *slog.Logger) *DekManagerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DekManagerService{
		cipher: cipher,
		logger: logger,
	}
}

// GenerateDek produces a fresh random 32-byte Data Encryption Key.
func (dm *DekManagerService) GenerateDek() ([]byte, error) {
	dekKey := make([]byte, cryptoDomain.KeySize)
	if _, err := rand.Read(dekKey); err != nil {
		return nil, errors.Wrap(cryptoDomain.ErrDekGeneration, err.Error())
	}
	return dekKey, nil
}

// EncryptDek wraps raw DEK bytes under the master key and packages the result as
// a DekInfo. An empty dekID generates a fresh identifier. The caller keeps
// ownership of dekKey and is responsible for zeroing it.
func (dm *DekManagerService) EncryptDek(
	dekKey []byte,
	masterKey *cryptoDomain.MasterKey,
	dekID string,
) (cryptoDomain.DekInfo, error) {
	if len(dekKey) != cryptoDomain.KeySize {
		return cryptoDomain.DekInfo{}, cryptoDomain.ErrInvalidKeySize
	}
	if !masterKey.Valid() {
		return cryptoDomain.DekInfo{}, cryptoDomain.ErrInvalidKeySize
	}

	if dekID == "" {
		generated, err := cryptoDomain.NewDekID()
		if err != nil {
			return cryptoDomain.DekInfo{}, errors.Wrap(cryptoDomain.ErrDekGeneration, err.Error())
		}
		dekID = generated
	}

	payload, err := dm.cipher.Encrypt(dekKey, masterKey.Key, nil, nil)
	if err != nil {
		return cryptoDomain.DekInfo{}, err
	}

	return cryptoDomain.DekInfo{
		DekID:        dekID,
		EncryptedDek: payload.Ciphertext,
		DekIV:        payload.IV,
		DekAuthTag:   payload.AuthTag,
		Algorithm:    cryptoDomain.AESGCM,
		KeyLength:    cryptoDomain.KeySize,
		Version:      1,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// DecryptDek unwraps a DEK using the master key. Fails with ErrDekDecryption if
// the master key is wrong or the DekInfo is internally inconsistent.
func (dm *DekManagerService) DecryptDek(
	info *cryptoDomain.DekInfo,
	masterKey *cryptoDomain.MasterKey,
) ([]byte, error) {
	if info == nil {
		return nil, errors.Wrap(cryptoDomain.ErrDekDecryption, "dek metadata is missing")
	}
	if violations := info.Violations(); len(violations) > 0 {
		return nil, errors.Wrap(
			cryptoDomain.ErrDekDecryption,
			"dek metadata invalid: "+strings.Join(violations, "; "),
		)
	}
	if !masterKey.Valid() {
		return nil, errors.Wrap(cryptoDomain.ErrDekDecryption, "master key invalid")
	}

	payload := &EncryptedPayload{
		Ciphertext: info.EncryptedDek,
		IV:         info.DekIV,
		AuthTag:    info.DekAuthTag,
	}
	dekKey, err := dm.cipher.Decrypt(payload, masterKey.Key, nil)
	if err != nil {
		return nil, cryptoDomain.ErrDekDecryption
	}
	if len(dekKey) != cryptoDomain.KeySize {
		cryptoDomain.Zero(dekKey)
		return nil, cryptoDomain.ErrDekDecryption
	}
	return dekKey, nil
}

// EncryptDocument is the standard "encrypt a new document" entry point: generate a
// DEK, wrap it under the master key, and encrypt the payload under the DEK.
func (dm *DekManagerService) EncryptDocument(
	plaintext []byte,
	masterKey *cryptoDomain.MasterKey,
	dekID string,
) (*cryptoDomain.DocumentEncryptionData, error) {
	dekKey, err := dm.GenerateDek()
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(dekKey)

	info, err := dm.EncryptDek(dekKey, masterKey, dekID)
	if err != nil {
		return nil, err
	}

	payload, err := dm.cipher.Encrypt(plaintext, dekKey, nil, nil)
	if err != nil {
		return nil, err
	}

	return &cryptoDomain.DocumentEncryptionData{
		Ciphertext: payload.Ciphertext,
		IV:         payload.IV,
		AuthTag:    payload.AuthTag,
		DekInfo:    &info,
	}, nil
}

// DecryptDocument is the standard "open an existing document" entry point: parse
// the DEK metadata, unwrap the DEK, and decrypt the payload. A non-empty
// dekInfoJSON is parsed strictly and takes precedence over data.DekInfo.
func (dm *DekManagerService) DecryptDocument(
	data *cryptoDomain.DocumentEncryptionData,
	dekInfoJSON []byte,
	masterKey *cryptoDomain.MasterKey,
) ([]byte, error) {
	if data == nil {
		return nil, errors.Wrap(cryptoDomain.ErrDekDecryption, "encryption data is missing")
	}

	info := data.DekInfo
	if len(dekInfoJSON) > 0 {
		parsed, err := ParseDekInfo(dekInfoJSON)
		if err != nil {
			return nil, errors.Wrap(cryptoDomain.ErrDekDecryption, err.Error())
		}
		info = parsed
	}
	if info == nil {
		return nil, errors.Wrap(cryptoDomain.ErrDekDecryption, "dek metadata is missing")
	}

	dekKey, err := dm.DecryptDek(info, masterKey)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(dekKey)

	payload := &EncryptedPayload{
		Ciphertext: data.Ciphertext,
		IV:         data.IV,
		AuthTag:    data.AuthTag,
	}
	return dm.cipher.Decrypt(payload, dekKey, nil)
}

// RewrapDek is the rotation primitive: unwrap under the old master key, re-wrap
// under the new one. The result preserves DekID and CreatedAt and increments
// Version; document ciphertext is untouched, which is the entire reason for the
// two-tier key hierarchy.
func (dm *DekManagerService) RewrapDek(
	info *cryptoDomain.DekInfo,
	oldMasterKey, newMasterKey *cryptoDomain.MasterKey,
) (cryptoDomain.DekInfo, error) {
	dekKey, err := dm.DecryptDek(info, oldMasterKey)
	if err != nil {
		return cryptoDomain.DekInfo{}, err
	}
	defer cryptoDomain.Zero(dekKey)

	if !newMasterKey.Valid() {
		return cryptoDomain.DekInfo{}, cryptoDomain.ErrInvalidKeySize
	}

	payload, err := dm.cipher.Encrypt(dekKey, newMasterKey.Key, nil, nil)
	if err != nil {
		return cryptoDomain.DekInfo{}, err
	}

	return cryptoDomain.DekInfo{
		DekID:        info.DekID,
		EncryptedDek: payload.Ciphertext,
		DekIV:        payload.IV,
		DekAuthTag:   payload.AuthTag,
		Algorithm:    cryptoDomain.AESGCM,
		KeyLength:    cryptoDomain.KeySize,
		Version:      info.Version + 1,
		CreatedAt:    info.CreatedAt,
	}, nil
}

// RewrapBatch rewraps a slice of DekInfos concurrently with a bounded worker
// pool. Results keep the input order. The batch is all-or-nothing: on any
// failure the error is returned and the partial results are discarded.
func (dm *DekManagerService) RewrapBatch(
	ctx context.Context,
	infos []*cryptoDomain.DekInfo,
	oldMasterKey, newMasterKey *cryptoDomain.MasterKey,
) ([]cryptoDomain.DekInfo, error) {
	results := make([]cryptoDomain.DekInfo, len(infos))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(rewrapConcurrency)

	for i, info := range infos {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if info == nil {
				return errors.Wrap(cryptoDomain.ErrDekDecryption, fmt.Sprintf("rewrap entry %d: dek metadata is missing", i))
			}
			rewrapped, err := dm.RewrapDek(info, oldMasterKey, newMasterKey)
			if err != nil {
				return fmt.Errorf("rewrap %s: %w", info.DekID, err)
			}
			results[i] = rewrapped
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	dm.logger.Debug("rewrapped dek batch", slog.Int("count", len(results)))
	return results, nil
}

// dekInfoFields maps each required DekInfo JSON field to the JSON type it must have.
var dekInfoFields = []struct {
	name    string
	numeric bool
}{
	{name: "dekId"},
	{name: "encryptedDek"},
	{name: "dekIv"},
	{name: "dekAuthTag"},
	{name: "algorithm"},
	{name: "keyLength", numeric: true},
	{name: "version", numeric: true},
	{name: "createdAt"},
}

// ParseDekInfo strictly deserializes DekInfo JSON.
//
// Presence and type of every required field are checked individually and ALL
// violations are collected before failing, because DekInfo typically arrives from
// external storage that may have been corrupted or partially written. The decoded
// struct is then validated (base64 alphabet, algorithm, sizes) before being
// returned.
func ParseDekInfo(data []byte) (*cryptoDomain.DekInfo, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, "dek info is not valid JSON")
	}

	var violations []string
	for _, field := range dekInfoFields {
		value, ok := raw[field.name]
		if !ok || value == nil {
			violations = append(violations, fmt.Sprintf("%s is missing", field.name))
			continue
		}
		if field.numeric {
			num, ok := value.(float64)
			if !ok {
				violations = append(violations, fmt.Sprintf("%s must be a number", field.name))
			} else if num < 0 || num != math.Trunc(num) {
				violations = append(violations, fmt.Sprintf("%s must be a non-negative integer", field.name))
			}
			continue
		}
		if _, ok := value.(string); !ok {
			violations = append(violations, fmt.Sprintf("%s must be a string", field.name))
		}
	}
	if len(violations) > 0 {
		return nil, errors.Wrap(errors.ErrInvalidInput, strings.Join(violations, "; "))
	}

	createdAt, err := time.Parse(time.RFC3339Nano, raw["createdAt"].(string))
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, "createdAt is not a valid timestamp")
	}

	info := &cryptoDomain.DekInfo{
		DekID:        raw["dekId"].(string),
		EncryptedDek: raw["encryptedDek"].(string),
		DekIV:        raw["dekIv"].(string),
		DekAuthTag:   raw["dekAuthTag"].(string),
		Algorithm:    cryptoDomain.Algorithm(raw["algorithm"].(string)),
		KeyLength:    int(raw["keyLength"].(float64)),
		Version:      uint(raw["version"].(float64)),
		CreatedAt:    createdAt,
	}

	if err := info.Validate(); err != nil {
		return nil, appvalidation.WrapValidationError(err)
	}
	return info, nil
}

// SerializeDekInfo validates and serializes a DekInfo to its JSON wire form.
func SerializeDekInfo(info *cryptoDomain.DekInfo) ([]byte, error) {
	if info == nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, "dek info is missing")
	}
	if err := info.Validate(); err != nil {
		return nil, appvalidation.WrapValidationError(err)
	}
	return json.Marshal(info)
}
