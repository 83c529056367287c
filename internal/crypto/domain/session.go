package domain

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// MasterKeySession is a caller-owned holder for a derived master key.
//
// It replaces any ambient module-level key cache: the session is explicitly
// constructed after key derivation and explicitly closed when the user session
// ends, at which point the key material is zeroed. A closed session can never
// hand out the key again.
//
// Thread safety: all methods are safe for concurrent use.
type MasterKeySession struct {
	id        uuid.UUID
	createdAt time.Time

	mu        sync.RWMutex
	masterKey *MasterKey
}

// NewMasterKeySession wraps a derived master key in a session object.
// The session takes ownership of the key material.
func NewMasterKeySession(masterKey *MasterKey) *MasterKeySession {
	return &MasterKeySession{
		id:        uuid.Must(uuid.NewV7()),
		createdAt: time.Now().UTC(),
		masterKey: masterKey,
	}
}

// ID returns the unique identifier of this session.
func (s *MasterKeySession) ID() uuid.UUID {
	return s.id
}

// CreatedAt returns when the session was created.
func (s *MasterKeySession) CreatedAt() time.Time {
	return s.createdAt
}

// MasterKey returns the session's master key, or ErrSessionClosed after Close.
func (s *MasterKeySession) MasterKey() (*MasterKey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.masterKey == nil {
		return nil, ErrSessionClosed
	}
	return s.masterKey, nil
}

// Close zeroes the master key material and marks the session unusable.
// Close is idempotent.
func (s *MasterKeySession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.masterKey != nil {
		Zero(s.masterKey.Key)
		s.masterKey = nil
	}
}
