package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSpinAndClaim(t *testing.T) {
	before := testutil.ToFloat64(spins.WithLabelValues("FIRST"))
	RecordSpin("FIRST", 50)
	assert.Equal(t, before+1, testutil.ToFloat64(spins.WithLabelValues("FIRST")))

	beforeClaims := testutil.ToFloat64(claims)
	RecordClaim(50)
	assert.Equal(t, beforeClaims+1, testutil.ToFloat64(claims))
}

func TestInstrumentHandlerUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(InstrumentHandler)
	r.Get("/wheel/players/{address}/spins", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Handle("/metrics", Handler())

	req := httptest.NewRequest(http.MethodGet, "/wheel/players/0xabc/spins", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusTeapot, rec.Code)

	got := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/wheel/players/{address}/spins", "418"))
	assert.Equal(t, 1.0, got)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "lucky_wheel_http_requests_total"))
}
