// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A request whose path matches a route of router but whose method is not
// registered for it gets a bare 404 instead of chi's 405, so /filteredimage,
// /version and / do not advertise themselves to other methods.
//
// Only exact route patterns are compared with the request path.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		route, ok := routeByPattern(router, r.URL.Path)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		if _, ok = route.Handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		// method is registered after all; let the router dispatch it
		router.ServeHTTP(w, r)
	}
}

func routeByPattern(router *chi.Mux, pattern string) (chi.Route, bool) {
	for _, route := range router.Routes() {
		if route.Pattern == pattern {
			return route, true
		}
	}
	return chi.Route{}, false
}
