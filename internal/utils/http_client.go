package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient for outbound requests of the gateway.
//
// Requests made with it identify themselves with userAgent, are bounded by
// timeout and are never retried: a failed upstream call fails the request
// that caused it.
func NewHTTPClient(timeout time.Duration, userAgent string) *HTTPClient {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", userAgent)

	return &HTTPClient{Client: client}
}
