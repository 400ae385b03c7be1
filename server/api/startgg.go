// server/api/startgg.go
package api

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/streamkit/stream-manager/server/startgg"
	sharedapi "github.com/streamkit/stream-manager/shared/api"
)

// StartGGHandler proxies entrant lookups to the start.gg API so the
// dashboard can seed team presets from a bracket.
type StartGGHandler struct {
	client *startgg.Client
}

func NewStartGGHandler(client *startgg.Client) *StartGGHandler {
	return &StartGGHandler{client: client}
}

func (h *StartGGHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/startgg/teams", h.Teams).Methods(http.MethodGet)
}

func (h *StartGGHandler) Teams(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("eventSlug")
	if slug == "" {
		sharedapi.WriteBadRequest(w, "eventSlug query parameter is required")
		return
	}

	entrants, err := h.client.EntrantsBySlug(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, startgg.ErrEventNotFound):
			sharedapi.WriteNotFound(w, err.Error())
		case errors.Is(err, startgg.ErrNoToken):
			sharedapi.WriteInternalServerError(w, err.Error())
		default:
			writeServiceError(w, err)
		}
		return
	}
	sharedapi.WriteJSON(w, http.StatusOK, entrants)
}
