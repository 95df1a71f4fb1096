// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrImageURLRequired is returned by the filtered image handler when the
	// image_url query parameter is absent or empty.
	ErrImageURLRequired = errors.New("image url query is required")

	// errSendingFile is returned when the filtered image cannot be opened or
	// inspected before any part of the response has been written.
	errSendingFile = errors.New("error sending file")
)
