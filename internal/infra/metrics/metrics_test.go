package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCountsLookups(t *testing.T) {
	rec := NewRecorder()
	rec.RecordLookup("ok", 20*time.Millisecond)
	rec.RecordLookup("ok", 30*time.Millisecond)
	rec.RecordLookup("invalid", 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.lookups.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.lookups.WithLabelValues("invalid")))
	assert.Equal(t, 0.0, testutil.ToFloat64(rec.lookups.WithLabelValues("error")))
}

func TestRecorderCountsUpstreamResults(t *testing.T) {
	rec := NewRecorder()
	rec.RecordUpstream(10*time.Millisecond, nil)
	rec.RecordUpstream(10*time.Millisecond, errors.New("boom"))
	rec.RecordUpstream(10*time.Millisecond, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.upstreamCalls.WithLabelValues("ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.upstreamCalls.WithLabelValues("error")))
}

func TestNilRecorderIsNoop(t *testing.T) {
	var rec *Recorder
	assert.NotPanics(t, func() {
		rec.RecordLookup("ok", time.Second)
		rec.RecordUpstream(time.Second, nil)
	})
	assert.NotNil(t, rec.Handler())
}

func TestHandlerExposesMetrics(t *testing.T) {
	rec := NewRecorder()
	rec.RecordLookup("failed", time.Millisecond)

	w := httptest.NewRecorder()
	rec.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(w.Result().Body)
	require.NoError(t, err)
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, string(body), `matchinfo_lookups_total{outcome="failed"} 1`)
}
