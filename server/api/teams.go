// server/api/teams.go
package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/streamkit/stream-manager/server/service"
	sharedapi "github.com/streamkit/stream-manager/shared/api"
	"github.com/streamkit/stream-manager/shared/models"
)

// TeamHandler exposes saved team preset CRUD.
type TeamHandler struct {
	service *service.TeamService
}

func NewTeamHandler(service *service.TeamService) *TeamHandler {
	return &TeamHandler{service: service}
}

func (h *TeamHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/teams", h.CreateTeam).Methods(http.MethodPost)
	router.HandleFunc("/api/teams", h.ListTeams).Methods(http.MethodGet)
	router.HandleFunc("/api/teams/{id}", h.GetTeam).Methods(http.MethodGet)
	router.HandleFunc("/api/teams/{id}", h.UpdateTeam).Methods(http.MethodPut)
	router.HandleFunc("/api/teams/{id}", h.DeleteTeam).Methods(http.MethodDelete)
}

func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var patch models.TeamPresetPatch
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			sharedapi.WriteBadRequest(w, "invalid request body")
			return
		}
	}

	team, err := h.service.CreateTeam(r.Context(), &patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	sharedapi.WriteJSON(w, http.StatusCreated, team)
}

func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.service.ListTeams(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	sharedapi.WriteJSON(w, http.StatusOK, teams)
}

func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	team, err := h.service.GetTeam(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	sharedapi.WriteJSON(w, http.StatusOK, team)
}

func (h *TeamHandler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	var patch models.TeamPresetPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		sharedapi.WriteBadRequest(w, "invalid request body")
		return
	}

	team, err := h.service.UpdateTeam(r.Context(), mux.Vars(r)["id"], &patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	sharedapi.WriteJSON(w, http.StatusOK, team)
}

func (h *TeamHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteTeam(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
