package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/fittracker/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestMetrics(t *testing.T) {
	metricsManager, reg := metrics.NewTestManagerAndRegistry()

	r := mux.NewRouter()
	r.HandleFunc("/workouts/{id:[0-9]+}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("DELETE")
	r.HandleFunc("/stats/steps", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid request", http.StatusBadRequest)
	}).Methods("PUT")
	r.Use(RequestMetrics(metricsManager))

	for _, path := range []string{"/workouts/1", "/workouts/2"} {
		req := httptest.NewRequest("DELETE", path, nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
	}

	req := httptest.NewRequest("PUT", "/stats/steps", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	assert.Equal(t, 2.0, testutil.ToFloat64(metricsManager.CounterRequests.WithLabelValues("DELETE", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metricsManager.CounterRequests.WithLabelValues("PUT", "400")))

	// one series per route template, not per id
	assert.Equal(t, 2, testutil.CollectAndCount(metricsManager.HistogramRequestDuration))

	count, err := testutil.GatherAndCount(reg, "fittracker_test_server_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
