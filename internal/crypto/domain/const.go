package domain

// Algorithm represents the cryptographic algorithm used for encryption.
//
// All supported algorithms provide Authenticated Encryption with Associated Data
// (AEAD), ensuring both confidentiality and authenticity of encrypted data. The
// persisted DEK metadata is pinned to AESGCM; ChaCha20 is available only at the
// primitive layer.
type Algorithm string

const (
	// AESGCM represents the AES-256-GCM authenticated encryption algorithm.
	//
	// The name matches the WebCrypto algorithm identifier so that DEK metadata
	// produced by the browser client and by this package is interchangeable.
	AESGCM Algorithm = "AES-GCM"

	// ChaCha20 represents the ChaCha20-Poly1305 authenticated encryption algorithm.
	//
	// Designed for high performance on platforms without AES hardware acceleration.
	// Not used for persisted DEK metadata.
	ChaCha20 Algorithm = "chacha20-poly1305"
)

// Fixed sizes for all cryptographic material. Any deviation from these values is a
// validation error, never a silent accommodation.
const (
	// KeySize is the size of all symmetric keys in bytes (256 bits).
	KeySize = 32

	// NonceSize is the AEAD nonce/IV size in bytes (96 bits).
	NonceSize = 12

	// TagSize is the authentication tag size in bytes (128 bits).
	TagSize = 16

	// SaltSize is the canonical PBKDF2 salt size in bytes (256 bits).
	SaltSize = 32

	// MinSaltSize is the minimum accepted PBKDF2 salt size in bytes.
	MinSaltSize = 16

	// MinKDFIterations is the minimum accepted PBKDF2 iteration count.
	MinKDFIterations = 100000

	// RecommendedKDFIterations is the recommended PBKDF2 iteration count for
	// session master-key derivation.
	RecommendedKDFIterations = 500000
)

const (
	// DekIDPrefix is the required prefix of every DEK identifier.
	DekIDPrefix = "dek:"

	// DekIDRandomLength is the length of the random suffix of a DEK identifier.
	DekIDRandomLength = 12
)
