package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	httpin "tailoring/internal/adapters/in/http"
	"tailoring/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogging(t *testing.T) {
	t.Run("should log the cause and count the status of a rejected request", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		e, err := httpin.NewEcho(t.Context(), httpin.NewServer(httpin.Handlers{}), httpin.RouterConfig{}, zap.New(core))
		require.NoError(t, err)
		counter := metrics.RequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/catalog", "401")
		before := testutil.ToFloat64(counter)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.InDelta(t, before+1, testutil.ToFloat64(counter), 0)

		entries := logs.FilterMessage("request").All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.EqualValues(t, http.StatusUnauthorized, fields["status"])
		assert.Contains(t, fields, "error")
	})

	t.Run("should log successful requests without an error", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		e, err := httpin.NewEcho(t.Context(), httpin.NewServer(httpin.Handlers{}), httpin.RouterConfig{}, zap.New(core))
		require.NoError(t, err)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

		entries := logs.FilterMessage("request").All()
		require.Len(t, entries, 1)
		assert.NotContains(t, entries[0].ContextMap(), "error")
	})
}
