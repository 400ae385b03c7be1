// server/api/sessions.go
package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/streamkit/stream-manager/server/service"
	"github.com/streamkit/stream-manager/server/webdeck"
	sharedapi "github.com/streamkit/stream-manager/shared/api"
	"github.com/streamkit/stream-manager/shared/models"
)

// SessionHandler exposes the session API. The dashboard drives the
// mutation endpoints; overlay pages only ever GET.
type SessionHandler struct {
	service *service.SessionService
	baseURL string
}

func NewSessionHandler(service *service.SessionService, baseURL string) *SessionHandler {
	return &SessionHandler{service: service, baseURL: baseURL}
}

func (h *SessionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/sessions", h.CreateSession).Methods(http.MethodPost)
	router.HandleFunc("/api/sessions", h.ListSessions).Methods(http.MethodGet)
	router.HandleFunc("/api/sessions/{id}", h.GetSession).Methods(http.MethodGet)
	router.HandleFunc("/api/sessions/{id}", h.UpdateSession).Methods(http.MethodPut)
	router.HandleFunc("/api/sessions/{id}", h.DeleteSession).Methods(http.MethodDelete)
	// Older overlay builds fetch sessionInfo; both paths serve the same data.
	router.HandleFunc("/api/sessions/{id}/sessionInfo", h.GetSession).Methods(http.MethodGet)
	router.HandleFunc("/api/sessions/{id}/reset", h.ResetSession).Methods(http.MethodPost)
	router.HandleFunc("/api/sessions/{id}/updateScore", h.UpdateScore).Methods(http.MethodPost)
	router.HandleFunc("/api/sessions/{id}/updateBan", h.UpdateBan).Methods(http.MethodPost)
	router.HandleFunc("/api/sessions/{id}/updateMap", h.UpdateMap).Methods(http.MethodPost)
	router.HandleFunc("/api/sessions/{id}/updateMapSlot", h.UpdateMapSlot).Methods(http.MethodPost)
	router.HandleFunc("/api/sessions/{id}/resizeMaps", h.ResizeMaps).Methods(http.MethodPost)
	router.HandleFunc("/api/sessions/{id}/flipSides", h.FlipSides).Methods(http.MethodPost)
	router.HandleFunc("/api/sessions/{id}/webdeck.zip", h.WebdeckBundle).Methods(http.MethodGet)
}

// parseTeam converts the wire selector ("1" or "2") to the model's int.
func parseTeam(team string) (int, error) {
	switch team {
	case "1":
		return 1, nil
	case "2":
		return 2, nil
	default:
		return 0, fmt.Errorf("team must be %q or %q", "1", "2")
	}
}

func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var patch models.SessionPatch
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			sharedapi.WriteBadRequest(w, "invalid request body")
			return
		}
	}

	session, err := h.service.CreateSession(r.Context(), &patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	sharedapi.WriteJSON(w, http.StatusCreated, session)
}

func (h *SessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.service.ListSessions(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	sharedapi.WriteJSON(w, http.StatusOK, sessions)
}

func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.GetSession(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	sharedapi.WriteJSON(w, http.StatusOK, session)
}

func (h *SessionHandler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	var patch models.SessionPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		sharedapi.WriteBadRequest(w, "invalid request body")
		return
	}

	session, err := h.service.UpdateSession(r.Context(), mux.Vars(r)["id"], &patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	sharedapi.WriteJSON(w, http.StatusOK, session)
}

func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSession(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) ResetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.ResetSession(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	sharedapi.WriteJSON(w, http.StatusOK, session)
}

func (h *SessionHandler) UpdateScore(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Team     string `json:"team"`
		ChangeBy int    `json:"changeBy"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sharedapi.WriteBadRequest(w, "invalid request body")
		return
	}
	team, err := parseTeam(body.Team)
	if err != nil {
		sharedapi.WriteBadRequest(w, err.Error())
		return
	}

	session, err := h.service.UpdateScore(r.Context(), mux.Vars(r)["id"], team, body.ChangeBy)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	sharedapi.WriteJSON(w, http.StatusOK, session)
}

func (h *SessionHandler) UpdateBan(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Team          string  `json:"team"`
		CharacterName *string `json:"characterName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sharedapi.WriteBadRequest(w, "invalid request body")
		return
	}
	team, err := parseTeam(body.Team)
	if err != nil {
		sharedapi.WriteBadRequest(w, err.Error())
		return
	}

	session, err := h.service.UpdateBan(r.Context(), mux.Vars(r)["id"], team, body.CharacterName)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	sharedapi.WriteJSON(w, http.StatusOK, session)
}

func (h *SessionHandler) UpdateMap(w http.ResponseWriter, r *http.Request) {
	var body struct {
		MapName string `json:"mapName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sharedapi.WriteBadRequest(w, "invalid request body")
		return
	}

	session, err := h.service.UpdateMap(r.Context(), mux.Vars(r)["id"], body.MapName)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	sharedapi.WriteJSON(w, http.StatusOK, session)
}

func (h *SessionHandler) UpdateMapSlot(w http.ResponseWriter, r *http.Request) {
	// Winner stays a RawMessage so "winner": null (clear the winner) is
	// distinguishable from the field being absent (leave it alone).
	var body struct {
		ID     int             `json:"id"`
		Name   *string         `json:"name"`
		Winner json.RawMessage `json:"winner"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sharedapi.WriteBadRequest(w, "invalid request body")
		return
	}

	winnerSet := len(body.Winner) > 0
	var winner *models.Winner
	if winnerSet {
		if err := json.Unmarshal(body.Winner, &winner); err != nil {
			sharedapi.WriteBadRequest(w, "invalid winner value")
			return
		}
	}

	session, err := h.service.SetMapSlot(r.Context(), mux.Vars(r)["id"], body.ID, body.Name, winnerSet, winner)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	sharedapi.WriteJSON(w, http.StatusOK, session)
}

func (h *SessionHandler) ResizeMaps(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sharedapi.WriteBadRequest(w, "invalid request body")
		return
	}

	session, err := h.service.ResizeMaps(r.Context(), mux.Vars(r)["id"], body.Count)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	sharedapi.WriteJSON(w, http.StatusOK, session)
}

func (h *SessionHandler) FlipSides(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.FlipSides(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	sharedapi.WriteJSON(w, http.StatusOK, session)
}

// WebdeckBundle streams the macro-pad script bundle for this session.
func (h *SessionHandler) WebdeckBundle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	// Confirm the session exists before handing out a bundle for it.
	if _, err := h.service.GetSession(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "webdeck-"+id+".zip"))
	if err := webdeck.BuildZip(w, h.baseURL, id); err != nil {
		// Headers are already sent; all we can do is log.
		log.Printf("ERROR: webdeck bundle for %s failed: %v", id, err)
	}
}
