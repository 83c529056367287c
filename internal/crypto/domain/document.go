package domain

// DocumentEncryptionData is the result of encrypting document bytes under a DEK.
// This is the unit persisted alongside a document by the external storage
// collaborator. All three crypto fields are base64-encoded.
type DocumentEncryptionData struct {
	Ciphertext string   `json:"ciphertext"`
	IV         string   `json:"iv"`
	AuthTag    string   `json:"authTag"`
	DekInfo    *DekInfo `json:"dekInfo,omitempty"`
}

// DocumentRecord carries the server-supplied metadata fields consumed for
// encryption classification. Field names follow the storage collaborator's
// wire format.
type DocumentRecord struct {
	EncryptedDek      string `json:"encrypted_dek"`
	EncryptionIV      string `json:"encryption_iv"`
	EncryptionKeyID   string `json:"encryption_key_id"`
	EncryptionAuthTag string `json:"encryption_auth_tag"`
	IsEncrypted       bool   `json:"is_encrypted"`
	MimeType          string `json:"mime_type"`
}

// HasZeroKnowledgeMetadata reports whether the record carries the fields written
// by the zero-knowledge encryption path (a wrapped DEK plus its IV).
func (r *DocumentRecord) HasZeroKnowledgeMetadata() bool {
	return r != nil && r.EncryptedDek != "" && r.EncryptionIV != ""
}

// HasLegacyMetadata reports whether the record carries the fields written by the
// legacy server-side encryption path.
func (r *DocumentRecord) HasLegacyMetadata() bool {
	return r != nil && r.EncryptionKeyID != "" && r.EncryptionIV != "" && r.EncryptionAuthTag != ""
}
