// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-bus-schedule/internal/app"
)

// routeNotFound answers unknown paths and unsupported methods alike with
// 404, so callers cannot probe which routes exist.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, r, app.MsgRouteNotFound, http.StatusNotFound)
}
