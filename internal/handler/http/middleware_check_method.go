// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-users-service/internal/utils"
)

// notFound answers unknown paths and, registered as the router's
// MethodNotAllowed handler, known paths with an unsupported method. Both get
// the same 404 body, so unsupported methods do not reveal which paths
// exist.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
