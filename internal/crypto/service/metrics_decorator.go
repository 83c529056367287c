package service

import (
	"context"
	"time"

	cryptoDomain "github.com/ameerarsath/publicdocsafe-sub005/internal/crypto/domain"
	"github.com/ameerarsath/publicdocsafe-sub005/internal/metrics"
)

// dekManagerWithMetrics decorates DekManager with metrics instrumentation.
type dekManagerWithMetrics struct {
	next    DekManager
	metrics metrics.BusinessMetrics
}

// NewDekManagerWithMetrics wraps a DekManager with metrics recording.
func NewDekManagerWithMetrics(manager DekManager, m metrics.BusinessMetrics) DekManager {
	return &dekManagerWithMetrics{
		next:    manager,
		metrics: m,
	}
}

// record reports one operation's status and duration under the crypto domain.
func (d *dekManagerWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	d.metrics.RecordOperation(ctx, "crypto", operation, status)
	d.metrics.RecordDuration(ctx, "crypto", operation, time.Since(start), status)
}

func (d *dekManagerWithMetrics) GenerateDek() ([]byte, error) {
	start := time.Now()
	dekKey, err := d.next.GenerateDek()
	d.record(context.Background(), "dek_generate", start, err)
	return dekKey, err
}

func (d *dekManagerWithMetrics) EncryptDek(
	dekKey []byte,
	masterKey *cryptoDomain.MasterKey,
	dekID string,
) (cryptoDomain.DekInfo, error) {
	start := time.Now()
	info, err := d.next.EncryptDek(dekKey, masterKey, dekID)
	d.record(context.Background(), "dek_encrypt", start, err)
	return info, err
}

func (d *dekManagerWithMetrics) DecryptDek(
	info *cryptoDomain.DekInfo,
	masterKey *cryptoDomain.MasterKey,
) ([]byte, error) {
	start := time.Now()
	dekKey, err := d.next.DecryptDek(info, masterKey)
	d.record(context.Background(), "dek_decrypt", start, err)
	return dekKey, err
}

func (d *dekManagerWithMetrics) EncryptDocument(
	plaintext []byte,
	masterKey *cryptoDomain.MasterKey,
	dekID string,
) (*cryptoDomain.DocumentEncryptionData, error) {
	start := time.Now()
	data, err := d.next.EncryptDocument(plaintext, masterKey, dekID)
	d.record(context.Background(), "document_encrypt", start, err)
	return data, err
}

func (d *dekManagerWithMetrics) DecryptDocument(
	data *cryptoDomain.DocumentEncryptionData,
	dekInfoJSON []byte,
	masterKey *cryptoDomain.MasterKey,
) ([]byte, error) {
	start := time.Now()
	plaintext, err := d.next.DecryptDocument(data, dekInfoJSON, masterKey)
	d.record(context.Background(), "document_decrypt", start, err)
	return plaintext, err
}

func (d *dekManagerWithMetrics) RewrapDek(
	info *cryptoDomain.DekInfo,
	oldMasterKey, newMasterKey *cryptoDomain.MasterKey,
) (cryptoDomain.DekInfo, error) {
	start := time.Now()
	rewrapped, err := d.next.RewrapDek(info, oldMasterKey, newMasterKey)
	d.record(context.Background(), "dek_rewrap", start, err)
	return rewrapped, err
}

func (d *dekManagerWithMetrics) RewrapBatch(
	ctx context.Context,
	infos []*cryptoDomain.DekInfo,
	oldMasterKey, newMasterKey *cryptoDomain.MasterKey,
) ([]cryptoDomain.DekInfo, error) {
	start := time.Now()
	results, err := d.next.RewrapBatch(ctx, infos, oldMasterKey, newMasterKey)
	d.record(ctx, "dek_rewrap_batch", start, err)
	return results, err
}
