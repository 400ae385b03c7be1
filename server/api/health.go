// server/api/health.go
package api

import (
	"net/http"

	"github.com/gorilla/mux"

	sharedapi "github.com/streamkit/stream-manager/shared/api"
)

// RegisterHealthRoute wires the liveness probe.
func RegisterHealthRoute(router *mux.Router) {
	router.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		sharedapi.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
}
