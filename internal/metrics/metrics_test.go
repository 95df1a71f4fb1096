package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersCollectors(t *testing.T) {
	m := New()
	require.NotNil(t, m.Registry())

	m.RecordHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	m.RecordTransform(nil, time.Millisecond)
	m.RecordArtifactRemoval(1, 0)
	m.RecordSweep(1)

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "image_filter_http_requests_total")
	assert.Contains(t, names, "image_filter_http_request_duration_seconds")
	assert.Contains(t, names, "image_filter_transforms_total")
	assert.Contains(t, names, "image_filter_transform_duration_seconds")
	assert.Contains(t, names, "image_filter_artifacts_removed_total")
	assert.Contains(t, names, "image_filter_artifacts_swept_total")
}

func TestRecordHTTPRequest(t *testing.T) {
	m := New()

	m.RecordHTTPRequest(http.MethodGet, "/filteredimage", http.StatusUnauthorized, time.Millisecond)
	m.RecordHTTPRequest(http.MethodGet, "/filteredimage", http.StatusUnauthorized, time.Millisecond)

	got := testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues(http.MethodGet, "/filteredimage", "401"))
	assert.Equal(t, float64(2), got)
}

func TestRecordTransform(t *testing.T) {
	m := New()

	m.RecordTransform(nil, time.Second)
	m.RecordTransform(errors.New("decode"), time.Second)
	m.RecordTransform(errors.New("fetch"), time.Second)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.transformsTotal.WithLabelValues(ResultSuccess)))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.transformsTotal.WithLabelValues(ResultFailure)))
}

func TestRecordArtifactRemoval(t *testing.T) {
	m := New()

	m.RecordArtifactRemoval(3, 1)

	assert.Equal(t, float64(3), testutil.ToFloat64(m.artifactsRemoved.WithLabelValues(ResultSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.artifactsRemoved.WithLabelValues(ResultFailure)))
}

func TestRecordSweep(t *testing.T) {
	m := New()

	m.RecordSweep(4)

	assert.Equal(t, float64(4), testutil.ToFloat64(m.artifactsSwept))
}

func TestNilMetrics_IsSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
		m.RecordTransform(nil, time.Millisecond)
		m.RecordArtifactRemoval(1, 1)
		m.RecordSweep(1)
	})
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := New()
	m.RecordSweep(2)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "image_filter_artifacts_swept_total 2")
}
