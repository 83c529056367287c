// Package domain defines the core cryptographic domain models for the zero-knowledge
// document encryption subsystem.
//
// It implements a two-tier key hierarchy: Master Key → DEK → Document bytes.
// The master key is derived from the user's password and only ever wraps Data
// Encryption Keys; every document is encrypted under its own DEK, so rotation
// re-wraps keys without touching document ciphertext.
package domain

// MasterKey represents the symmetric key used to wrap and unwrap Data Encryption Keys.
//
// Master keys are derived once per session from the user's password via PBKDF2 and
// are owned by the caller; this subsystem never persists them. The same password
// and salt must always yield the same master key, so the salt is managed and
// persisted by the surrounding application per user.
//
// Fields:
//   - ID: Caller-chosen identifier for diagnostics (e.g., a user or session handle)
//   - Key: The raw 32-byte master key material
type MasterKey struct {
	ID  string
	Key []byte
}

// Valid reports whether the master key carries exactly KeySize bytes of material.
func (m *MasterKey) Valid() bool {
	return m != nil && len(m.Key) == KeySize
}
