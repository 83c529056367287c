package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	t.Run("creates provider with namespace", func(t *testing.T) {
		provider, err := NewProvider("test_app")

		require.NoError(t, err)
		assert.NotNil(t, provider)
		assert.NotNil(t, provider.meterProvider)
		assert.NotNil(t, provider.exporter)
		assert.NotNil(t, provider.registry)
	})

	t.Run("handler serves prometheus format", func(t *testing.T) {
		provider, err := NewProvider("test_app")
		require.NoError(t, err)

		bm, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")
		require.NoError(t, err)
		bm.RecordOperation(context.Background(), "crypto", "document_encrypt", "success")

		recorder := httptest.NewRecorder()
		provider.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "test_app_operations_total")
	})

	t.Run("shutdown", func(t *testing.T) {
		provider, err := NewProvider("test_app")
		require.NoError(t, err)

		assert.NoError(t, provider.Shutdown(context.Background()))
	})
}

func TestBusinessMetrics(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")
	require.NoError(t, err)

	t.Run("record operations across domains", func(t *testing.T) {
		bm.RecordOperation(context.Background(), "crypto", "dek_rewrap", "success")
		bm.RecordOperation(context.Background(), "container", "container_create", "error")
		bm.RecordOperation(context.Background(), "detection", "detect", "success")
	})

	t.Run("record durations", func(t *testing.T) {
		bm.RecordDuration(context.Background(), "crypto", "document_decrypt", 25*time.Millisecond, "success")
	})
}

func TestNoOpBusinessMetrics(t *testing.T) {
	bm := NewNoOpBusinessMetrics()

	// Must not panic.
	bm.RecordOperation(context.Background(), "crypto", "document_encrypt", "success")
	bm.RecordDuration(context.Background(), "crypto", "document_encrypt", time.Second, "success")
}
