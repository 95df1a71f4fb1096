// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/MKhiriev/image-filter/internal/adapter"
	"github.com/MKhiriev/image-filter/internal/config"
	"github.com/MKhiriev/image-filter/internal/logger"
	"github.com/MKhiriev/image-filter/internal/service"
	"github.com/MKhiriev/image-filter/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSourceImageServer serves a colourful PNG at every path.
func newSourceImageServer(t *testing.T) *httptest.Server {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 320, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 320; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(buf.Bytes())
	}))
	t.Cleanup(srv.Close)
	return srv
}

// newPipelineHandler wires a Handler to the real fetcher, artifact storage and
// services, with artifacts written to dir.
func newPipelineHandler(t *testing.T, dir string) *Handler {
	t.Helper()

	storage, err := store.NewFileArtifactStorage(dir)
	require.NoError(t, err)

	cfg := config.StructuredConfig{
		App:     config.App{SecretToken: testSecret, Version: "1.2.3"},
		Adapter: config.Adapter{RequestTimeout: 10 * time.Second, MaxImageSize: 10 << 20},
	}

	services, err := service.NewServices(
		&store.Storages{ArtifactStorage: storage},
		adapter.NewHTTPImageFetcher(cfg.Adapter),
		cfg,
		nil,
		logger.Nop(),
	)
	require.NoError(t, err)

	return NewHandler(services, nil, logger.Nop())
}

func TestFilteredImage_RealPipeline_ServesJPEGAndLeavesNoArtifacts(t *testing.T) {
	src := newSourceImageServer(t)
	dir := t.TempDir()
	router := newPipelineHandler(t, dir).Init()

	target := "/filteredimage?" + url.Values{imageURLQueryParam: {src.URL + "/cat.png"}}.Encode()

	// repeated requests behave the same and never accumulate files
	for range 2 {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		req.Header.Set("Authorization", testAuthHeader)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		assert.Equal(t, "image/jpeg", rr.Header().Get("Content-Type"))

		cfg, format, err := image.DecodeConfig(bytes.NewReader(rr.Body.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, "jpeg", format)
		assert.Equal(t, 256, cfg.Width)
		assert.Equal(t, 256, cfg.Height)

		decoded, err := jpeg.Decode(bytes.NewReader(rr.Body.Bytes()))
		require.NoError(t, err)
		for _, pt := range []image.Point{{0, 0}, {128, 128}, {255, 255}, {200, 40}} {
			r, g, b, _ := decoded.At(pt.X, pt.Y).RGBA()
			assert.InDelta(t, r>>8, g>>8, 2, "pixel %v", pt)
			assert.InDelta(t, g>>8, b>>8, 2, "pixel %v", pt)
		}

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	}
}

func TestFilteredImage_RealPipeline_UnreachableSourceLeavesNoArtifacts(t *testing.T) {
	src := newSourceImageServer(t)
	srcURL := src.URL
	src.Close()

	dir := t.TempDir()
	router := newPipelineHandler(t, dir).Init()

	target := "/filteredimage?" + url.Values{imageURLQueryParam: {srcURL + "/cat.png"}}.Encode()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Authorization", testAuthHeader)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.NotEmpty(t, decodeMessage(t, rr))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
