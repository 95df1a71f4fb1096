// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/MKhiriev/image-filter/internal/app"
	"github.com/MKhiriev/image-filter/internal/logger"
	"github.com/MKhiriev/image-filter/internal/utils"
)

const imageURLQueryParam = "image_url"

// filteredImage filters the image referenced by the image_url query
// parameter and responds with the result.
//
// The artifact produced by the image service is removed once the response
// has been sent or its sending failed. Failures before an artifact exists
// leave nothing to remove.
func (h *Handler) filteredImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	imageURL := r.URL.Query().Get(imageURLQueryParam)
	if imageURL == "" {
		log.Err(ErrImageURLRequired).Send()
		writeError(w, ErrImageURLRequired)
		return
	}

	path, err := h.services.ImageService.FilterImageFromURL(ctx, imageURL)
	if err != nil {
		log.Err(err).Str("image_url", imageURL).Msg("could not process image")
		utils.WriteMessage(w, app.MsgCouldNotProcessImage, http.StatusUnprocessableEntity)
		return
	}
	defer h.services.ImageService.DeleteLocalFiles(context.WithoutCancel(ctx), path)

	h.sendFile(w, r, path)
}

// conditionalHeaders are dropped before serving an artifact. Each artifact is
// fresh and served once, so partial and conditional responses never apply.
var conditionalHeaders = []string{
	"Range",
	"If-Range",
	"If-Match",
	"If-None-Match",
	"If-Modified-Since",
	"If-Unmodified-Since",
}

// sendFile streams the whole file at path with [http.ServeContent]. Errors
// that occur before the response is committed are answered with 500; later
// write errors are only logged.
func (h *Handler) sendFile(w http.ResponseWriter, r *http.Request, path string) {
	log := logger.FromRequest(r).With().Str("path", path).Logger()

	file, err := os.Open(path)
	if err != nil {
		log.Err(err).Msg("error opening filtered image")
		writeError(w, fmt.Errorf("%w: %w", errSendingFile, err))
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		log.Err(err).Msg("error reading filtered image info")
		writeError(w, fmt.Errorf("%w: %w", errSendingFile, err))
		return
	}

	sw := &responseWriter{ResponseWriter: w}
	http.ServeContent(sw, wholeFileRequest(r), filepath.Base(path), info.ModTime(), file)

	if sw.err != nil {
		log.Err(sw.err).Msg("error sending filtered image")
	}
}

func wholeFileRequest(r *http.Request) *http.Request {
	req := r.Clone(r.Context())
	for _, h := range conditionalHeaders {
		req.Header.Del(h)
	}
	return req
}
