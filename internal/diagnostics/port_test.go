package diagnostics

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameerarsath/publicdocsafe-sub005/internal/container"
	cryptoDomain "github.com/ameerarsath/publicdocsafe-sub005/internal/crypto/domain"
	cryptoService "github.com/ameerarsath/publicdocsafe-sub005/internal/crypto/service"
	"github.com/ameerarsath/publicdocsafe-sub005/internal/detection"
)

func newTestPort() *Port {
	aeadManager := cryptoService.NewAEADManager()
	detector := detection.NewDetector(0, 0, nil)
	codec := container.NewCodec(aeadManager, container.DefaultKDFIterations, nil)
	return NewPort(detector, codec, nil)
}

func TestPortAnalyzeAndDetect(t *testing.T) {
	port := newTestPort()

	t.Run("analyze content", func(t *testing.T) {
		analysis := port.AnalyzeContent([]byte("%PDF-1.7 sample document"))
		assert.True(t, analysis.IsKnownFormat)
	})

	t.Run("detect with metadata", func(t *testing.T) {
		record := &cryptoDomain.DocumentRecord{
			EncryptedDek: "c29tZS13cmFwcGVkLWRlaw==",
			EncryptionIV: "AAAAAAAAAAAAAAAA",
		}
		result := port.Detect(record, nil)
		assert.True(t, result.IsEncrypted)
		assert.Equal(t, detection.TypeZeroKnowledge, result.EncryptionType)
	})
}

func TestPortInspectContainer(t *testing.T) {
	port := newTestPort()

	t.Run("inspects created container", func(t *testing.T) {
		aeadManager := cryptoService.NewAEADManager()
		codec := container.NewCodec(aeadManager, container.DefaultKDFIterations, nil)
		wrapped, err := codec.Create([]byte("hello"), "note.txt", "text/plain", "password123")
		require.NoError(t, err)

		header, err := port.InspectContainer(wrapped)
		require.NoError(t, err)
		assert.Equal(t, "note.txt", header.OriginalFilename)
	})

	t.Run("fails on arbitrary bytes", func(t *testing.T) {
		_, err := port.InspectContainer([]byte("definitely not a container"))
		assert.Error(t, err)
	})
}

func TestPortCheckDekInfo(t *testing.T) {
	port := newTestPort()

	t.Run("reports parse failure", func(t *testing.T) {
		violations := port.CheckDekInfo([]byte("{not json"))
		assert.NotEmpty(t, violations)
	})

	t.Run("accepts metadata from a real wrap", func(t *testing.T) {
		manager := cryptoService.NewDekManager(
			cryptoService.NewCipherService(cryptoService.NewAEADManager(), nil),
			nil,
		)
		key := make([]byte, cryptoDomain.KeySize)
		_, err := rand.Read(key)
		require.NoError(t, err)
		masterKey := &cryptoDomain.MasterKey{ID: "mk", Key: key}

		dekKey, err := manager.GenerateDek()
		require.NoError(t, err)
		info, err := manager.EncryptDek(dekKey, masterKey, "")
		require.NoError(t, err)

		dekInfoJSON, err := cryptoService.SerializeDekInfo(&info)
		require.NoError(t, err)

		assert.Empty(t, port.CheckDekInfo(dekInfoJSON))
	})
}

func TestPortCheckDecryptionInputs(t *testing.T) {
	port := newTestPort()

	t.Run("reports malformed payload fields", func(t *testing.T) {
		violations := port.CheckDecryptionInputs(&cryptoService.EncryptedPayload{
			Ciphertext: "AAAA",
			IV:         "AAAA",
			AuthTag:    "####",
		})
		assert.NotEmpty(t, violations)
	})

	t.Run("accepts a real payload", func(t *testing.T) {
		cipher := cryptoService.NewCipherService(cryptoService.NewAEADManager(), nil)
		key := make([]byte, cryptoDomain.KeySize)
		_, err := rand.Read(key)
		require.NoError(t, err)

		payload, err := cipher.Encrypt([]byte("payload"), key, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, port.CheckDecryptionInputs(payload))
	})
}

func TestPortSelfTest(t *testing.T) {
	port := newTestPort()
	manager := cryptoService.NewDekManager(
		cryptoService.NewCipherService(cryptoService.NewAEADManager(), nil),
		nil,
	)

	require.NoError(t, port.SelfTest(manager))
}
