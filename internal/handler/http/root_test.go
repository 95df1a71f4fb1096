package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/image-filter/internal/app"
	"github.com/stretchr/testify/assert"
)

func TestRoot_UsageRegardlessOfQuery(t *testing.T) {
	for _, target := range []string{"/", "/?image_url=https://example.com/a.png", "/?x=1&y=2"} {
		t.Run(target, func(t *testing.T) {
			h, _ := newTestRouterHandler(t, nil)
			rr := httptest.NewRecorder()

			h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
			assert.Equal(t, app.MsgUsage, rr.Body.String())
		})
	}
}

func TestRoot_NoAuthorizationRequired(t *testing.T) {
	h, _ := newTestRouterHandler(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rr := httptest.NewRecorder()

	h.Init().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
