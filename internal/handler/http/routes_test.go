package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/image-filter/internal/metrics"
	"github.com/stretchr/testify/assert"
)

func TestInit_Routes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		authHeader string
		wantStatus int
	}{
		{name: "root", method: http.MethodGet, target: "/", wantStatus: http.StatusOK},
		{name: "version", method: http.MethodGet, target: "/version", wantStatus: http.StatusOK},
		{name: "filtered image without auth", method: http.MethodGet, target: "/filteredimage?image_url=" + testImageURL, wantStatus: http.StatusUnauthorized},
		{name: "filtered image with bad token", method: http.MethodGet, target: "/filteredimage", authHeader: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "post to root", method: http.MethodPost, target: "/", wantStatus: http.StatusNotFound},
		{name: "post to filtered image", method: http.MethodPost, target: "/filteredimage", authHeader: testAuthHeader, wantStatus: http.StatusNotFound},
		{name: "delete version", method: http.MethodDelete, target: "/version", wantStatus: http.StatusNotFound},
		{name: "unknown route", method: http.MethodGet, target: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestRouterHandler(t, nil)
			req := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			h.Init().ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
		})
	}
}

func TestInit_MetricsRouteOnlyWithMetrics(t *testing.T) {
	h, _ := newTestRouterHandler(t, nil)
	rr := httptest.NewRecorder()

	h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_MetricsExposeRequests(t *testing.T) {
	h, _ := newTestRouterHandler(t, metrics.New())
	router := h.Init()

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/filteredimage", nil))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `image_filter_http_requests_total{method="GET",route="/filteredimage",status="401"} 1`)
}

func TestInit_PanicIsRecovered(t *testing.T) {
	h, _ := newTestRouterHandler(t, nil)
	h.services.AppInfoService = nil
	rr := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/version", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
