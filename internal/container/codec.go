package container

import (
	"encoding/binary"
	"encoding/json"
	"log/slog"
	"time"

	cryptoDomain "github.com/ameerarsath/publicdocsafe-sub005/internal/crypto/domain"
	cryptoService "github.com/ameerarsath/publicdocsafe-sub005/internal/crypto/service"
	"github.com/ameerarsath/publicdocsafe-sub005/internal/errors"
)

// headerLengthPrefixSize is the size of the little-endian uint32 length prefix.
const headerLengthPrefixSize = 4

// maxHeaderSize bounds the header length accepted at parse time. Anything larger
// is not a plausible header and is rejected before allocation.
const maxHeaderSize = 64 * 1024

// Parsed is the result of structurally decoding a container without decrypting it.
type Parsed struct {
	Header     *FileHeader
	Ciphertext []byte
	AuthTag    []byte
}

// Result is the outcome of decrypting a container.
type Result struct {
	Plaintext        []byte
	OriginalFilename string
	OriginalMimeType string
}

// Codec creates and opens encrypted container files. The password is the only key
// source: each container carries its own salt, so keys are scoped per file.
//
// Stateless and safe for concurrent use.
type Codec struct {
	aeadManager cryptoService.AEADManager
	iterations  int
	logger      *slog.Logger
}

// NewCodec creates a container codec. An iteration count below the accepted
// minimum falls back to the canonical default; a nil logger falls back to
// slog.Default().
func NewCodec(aeadManager cryptoService.AEADManager, iterations int, logger *slog.Logger) *Codec {
	if iterations < cryptoDomain.MinKDFIterations {
		iterations = DefaultKDFIterations
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Codec{
		aeadManager: aeadManager,
		iterations:  iterations,
		logger:      logger,
	}
}

// Create encrypts plaintext under a key derived from the password and assembles a
// portable container: fresh salt and IV, PBKDF2 key derivation, AES-256-GCM, and
// the binary layout documented on this package. The header's encryptedSize always
// equals the actual ciphertext length; Parse relies on that invariant.
func (c *Codec) Create(plaintext []byte, filename, mimeType, password string) ([]byte, error) {
	salt, err := cryptoService.GenerateSalt()
	if err != nil {
		return nil, errors.Wrap(cryptoDomain.ErrEncryptionFailed, err.Error())
	}

	key, err := cryptoService.DeriveKey(password, salt, c.iterations)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(key)

	aead, err := c.aeadManager.CreateCipher(key, cryptoDomain.AESGCM)
	if err != nil {
		return nil, err
	}

	raw, nonce, err := aead.Encrypt(plaintext, nil)
	if err != nil {
		return nil, errors.Wrap(cryptoDomain.ErrEncryptionFailed, err.Error())
	}
	if len(raw) != len(plaintext)+cryptoDomain.TagSize {
		return nil, errors.Wrap(cryptoDomain.ErrEncryptionFailed, "AEAD output does not carry a 128-bit tag")
	}

	split := len(raw) - cryptoDomain.TagSize
	ciphertext, tag := raw[:split], raw[split:]

	header := FileHeader{
		Signature:        MagicSignature,
		Version:          FormatVersion,
		OriginalFilename: filename,
		OriginalMimeType: mimeType,
		OriginalSize:     int64(len(plaintext)),
		EncryptedSize:    int64(len(ciphertext)),
		Salt:             cryptoService.EncodeBase64(salt),
		IV:               cryptoService.EncodeBase64(nonce),
		CreatedAt:        time.Now().UTC(),
	}
	headerJSON, err := json.Marshal(&header)
	if err != nil {
		return nil, errors.Wrap(cryptoDomain.ErrEncryptionFailed, err.Error())
	}

	wrapped := make([]byte, 0, headerLengthPrefixSize+len(headerJSON)+len(ciphertext)+cryptoDomain.TagSize)
	wrapped = binary.LittleEndian.AppendUint32(wrapped, uint32(len(headerJSON)))
	wrapped = append(wrapped, headerJSON...)
	wrapped = append(wrapped, ciphertext...)
	wrapped = append(wrapped, tag...)

	c.logger.Debug("created encrypted container",
		slog.String("filename", filename),
		slog.Int("plaintext_size", len(plaintext)),
		slog.Int("container_size", len(wrapped)),
	)
	return wrapped, nil
}

// Parse structurally decodes a container: reads the length prefix, slices and
// validates the header, and checks that the total byte length equals
// 4 + headerLength + encryptedSize + 16 exactly. Any mismatch (truncation,
// tampering, wrong format) is a hard parse failure, never a best-effort recovery.
func (c *Codec) Parse(data []byte) (*Parsed, error) {
	header, headerLen, err := c.peekHeader(data)
	if err != nil {
		return nil, err
	}

	if err := header.Validate(); err != nil {
		return nil, errors.Wrap(cryptoDomain.ErrCorruptedData, err.Error())
	}
	if err := c.checkHeaderMaterial(header); err != nil {
		return nil, err
	}

	expected := int64(headerLengthPrefixSize) + int64(headerLen) + header.EncryptedSize + cryptoDomain.TagSize
	if int64(len(data)) != expected {
		return nil, ErrLengthMismatch
	}

	payloadStart := headerLengthPrefixSize + headerLen
	tagStart := int64(payloadStart) + header.EncryptedSize
	return &Parsed{
		Header:     header,
		Ciphertext: data[payloadStart:tagStart],
		AuthTag:    data[tagStart:],
	}, nil
}

// Decrypt opens a container with the supplied password: parse, derive the key from
// the embedded salt, AEAD-decrypt ciphertext‖tag with the embedded IV, and verify
// the recovered plaintext length against the header.
func (c *Codec) Decrypt(data []byte, password string) (*Result, error) {
	parsed, err := c.Parse(data)
	if err != nil {
		return nil, err
	}

	salt, err := cryptoService.DecodeBase64(parsed.Header.Salt)
	if err != nil {
		return nil, errors.Wrap(cryptoDomain.ErrCorruptedData, "header salt is not valid base64")
	}
	iv, err := cryptoService.DecodeBase64(parsed.Header.IV)
	if err != nil {
		return nil, errors.Wrap(cryptoDomain.ErrCorruptedData, "header iv is not valid base64")
	}

	key, err := cryptoService.DeriveKey(password, salt, c.iterations)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(key)

	aead, err := c.aeadManager.CreateCipher(key, cryptoDomain.AESGCM)
	if err != nil {
		return nil, err
	}

	combined := make([]byte, 0, len(parsed.Ciphertext)+len(parsed.AuthTag))
	combined = append(combined, parsed.Ciphertext...)
	combined = append(combined, parsed.AuthTag...)

	plaintext, err := aead.Decrypt(combined, iv, nil)
	if err != nil {
		// Wrong password and tampered data are indistinguishable here and must
		// stay that way for the caller.
		c.logger.Debug("container decrypt failed", slog.Any("error", err))
		return nil, ErrIncorrectPasswordOrCorrupted
	}

	if int64(len(plaintext)) != parsed.Header.OriginalSize {
		return nil, errors.Wrap(cryptoDomain.ErrCorruptedData, "plaintext size does not match header")
	}

	return &Result{
		Plaintext:        plaintext,
		OriginalFilename: parsed.Header.OriginalFilename,
		OriginalMimeType: parsed.Header.OriginalMimeType,
	}, nil
}

// IsContainer reports whether the bytes look like an encrypted container. It never
// fails on arbitrary input; any structural problem simply means "no".
func (c *Codec) IsContainer(data []byte) bool {
	_, _, err := c.peekHeader(data)
	return err == nil
}

// PeekInfo returns the header fields without the password and without decrypting.
// The payload is not length-validated here; Peek is a UI affordance, and full
// validation happens in Parse.
func (c *Codec) PeekInfo(data []byte) (*FileHeader, error) {
	header, _, err := c.peekHeader(data)
	if err != nil {
		return nil, err
	}
	return header, nil
}

// peekHeader reads the length prefix and decodes the header JSON, validating only
// the magic signature.
func (c *Codec) peekHeader(data []byte) (*FileHeader, int, error) {
	if len(data) < headerLengthPrefixSize {
		return nil, 0, ErrNotContainer
	}

	headerLen := int(binary.LittleEndian.Uint32(data))
	if headerLen == 0 || headerLen > maxHeaderSize {
		return nil, 0, ErrNotContainer
	}
	if len(data) < headerLengthPrefixSize+headerLen {
		return nil, 0, ErrNotContainer
	}

	var header FileHeader
	if err := json.Unmarshal(data[headerLengthPrefixSize:headerLengthPrefixSize+headerLen], &header); err != nil {
		return nil, 0, ErrNotContainer
	}
	if header.Signature != MagicSignature {
		return nil, 0, ErrNotContainer
	}

	return &header, headerLen, nil
}

// checkHeaderMaterial validates the decoded sizes of the header's cryptographic
// material against the fixed constants.
func (c *Codec) checkHeaderMaterial(header *FileHeader) error {
	salt, err := cryptoService.DecodeBase64(header.Salt)
	if err != nil {
		return errors.Wrap(cryptoDomain.ErrCorruptedData, "header salt is not valid base64")
	}
	if len(salt) != cryptoDomain.SaltSize {
		return errors.Wrap(cryptoDomain.ErrCorruptedData, "header salt has wrong size")
	}

	iv, err := cryptoService.DecodeBase64(header.IV)
	if err != nil {
		return errors.Wrap(cryptoDomain.ErrCorruptedData, "header iv is not valid base64")
	}
	if len(iv) != cryptoDomain.NonceSize {
		return errors.Wrap(cryptoDomain.ErrCorruptedData, "header iv has wrong size")
	}

	return nil
}
