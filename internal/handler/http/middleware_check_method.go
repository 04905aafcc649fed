// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/novera/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// Instead of chi's default 405 it answers 404 with the usual
// {"detail": "Not Found"} body, so an unsupported method does not reveal
// that the path exists. Parameterised patterns are never expanded during the
// lookup, which means any request reaching this handler on such a path is
// answered with 404.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			writeNotFound(w)
			return
		}

		router.ServeHTTP(w, r)
	}
}

func writeNotFound(w http.ResponseWriter) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
