package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/image-filter/internal/logger"
	"github.com/MKhiriev/image-filter/internal/mock"
	"github.com/MKhiriev/image-filter/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion_WritesVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	appInfo := mock.NewMockAppInfoService(ctrl)
	h := NewHandler(&service.Services{AppInfoService: appInfo}, nil, logger.Nop())

	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := httptest.NewRecorder()
	h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rec.Body.String())
}
