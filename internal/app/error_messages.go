// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// image-filter gateway handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgUsage is the body of the root endpoint.
	MsgUsage = "try GET /filteredimage?image_url={{}}"

	// MsgAuthorizationHeaderRequired is returned when the request carries no
	// "Authorization" header.
	MsgAuthorizationHeaderRequired = "authorization header is required"

	// MsgAuthorizationHeaderNotValid is returned when the "Authorization"
	// header does not split into exactly a scheme and a token.
	MsgAuthorizationHeaderNotValid = "authorization header is not valid"

	// MsgTokenIsIncorrect is returned when the presented token is not the
	// shared secret.
	MsgTokenIsIncorrect = "token is incorrect"

	// MsgImageURLRequired is returned when the image_url query parameter is
	// absent or empty.
	MsgImageURLRequired = "image url query is required"

	// MsgCouldNotProcessImage is returned when the source image could not be
	// fetched, decoded, filtered or persisted.
	MsgCouldNotProcessImage = "could not process image"

	// MsgCouldNotSendFile is returned when the filtered image exists but
	// cannot be opened for delivery.
	MsgCouldNotSendFile = "could not send file"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
