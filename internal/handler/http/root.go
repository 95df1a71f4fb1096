package http

import (
	"net/http"

	"github.com/MKhiriev/image-filter/internal/app"
)

// root answers every GET / with the usage hint, whatever the query.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(app.MsgUsage))
}
