// server/api/errors.go
package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/streamkit/stream-manager/server/engine"
	"github.com/streamkit/stream-manager/server/service"
	sharedapi "github.com/streamkit/stream-manager/shared/api"
)

// writeServiceError maps service and engine errors onto the HTTP error
// envelope. Anything unrecognized is a 500 with the detail kept out of
// the response.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrTeamNotFound):
		sharedapi.WriteNotFound(w, err.Error())
	case errors.Is(err, service.ErrUnknownGame),
		errors.Is(err, service.ErrWrongGame),
		errors.Is(err, service.ErrInvalidMapCount),
		errors.Is(err, engine.ErrInvalidTeam),
		errors.Is(err, engine.ErrInvalidWinner),
		errors.Is(err, engine.ErrUnknownSlot),
		errors.Is(err, engine.ErrUnknownMap),
		errors.Is(err, engine.ErrUnknownCharacter),
		errors.Is(err, engine.ErrNoCurrentSlot):
		sharedapi.WriteBadRequest(w, err.Error())
	default:
		log.Printf("ERROR: API: %v", err)
		sharedapi.WriteInternalServerError(w, "internal server error")
	}
}
