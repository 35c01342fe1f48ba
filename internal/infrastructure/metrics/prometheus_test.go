package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	m := New("maestros")
	m.Observe("GET", "/api/v1/entidad", 200, 15*time.Millisecond)
	m.Observe("GET", "/api/v1/entidad", 200, 5*time.Millisecond)
	m.Observe("POST", "/api/v1/entidad", 400, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/v1/entidad", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("POST", "/api/v1/entidad", "400")))
}

func TestHandler(t *testing.T) {
	m := New("maestros")
	m.Observe("GET", "/health", 200, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `maestros_http_requests_total{method="GET",route="/health",status="200"} 1`)
}
