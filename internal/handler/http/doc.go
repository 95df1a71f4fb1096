// Package http implements the HTTP transport layer of the image-filter
// gateway.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as authentication, request tracing, access logging and
// request metrics are handled in this package before requests are delegated
// to the service layer.
package http
