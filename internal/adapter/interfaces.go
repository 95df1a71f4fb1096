// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound transport used to acquire source images.
//
// The primary abstraction is [ImageFetcher], which decouples the service layer
// from the underlying protocol. The package ships an HTTP implementation
// ([NewHTTPImageFetcher]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrImageNotFound] for 404).
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/image_fetcher_mock.go -package=mock

// ImageFetcher downloads the raw bytes of a publicly reachable image.
type ImageFetcher interface {
	// Fetch performs a GET request to imageURL and returns the response body.
	// Any transport failure, non-2xx status or oversized body is an error.
	// Fetch never retries.
	Fetch(ctx context.Context, imageURL string) ([]byte, error)
}
