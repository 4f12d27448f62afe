package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveStore(t *testing.T) {
	c := NewCollector("portfolio")

	c.ObserveStore("get", "projects", "ok", 5*time.Millisecond)
	c.ObserveStore("get", "projects", "ok", 5*time.Millisecond)
	c.ObserveStore("get", "projects", "not_found", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.StoreOperations.WithLabelValues("get", "projects", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.StoreOperations.WithLabelValues("get", "projects", "not_found")))
}

func TestCollectorsAreIndependent(t *testing.T) {
	a := NewCollector("portfolio")
	b := NewCollector("portfolio")

	a.CacheHits.Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.CacheHits))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.CacheHits))
}

func TestHandlerExposesHTTPMetrics(t *testing.T) {
	c := NewCollector("portfolio")
	c.ObserveHTTP(http.MethodGet, "/api/portfolio", http.StatusOK, 10*time.Millisecond)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `portfolio_http_requests_total{method="GET",route="/api/portfolio",status="200"} 1`)
}
