// shared/catalog/catalog.go
package catalog

import "github.com/streamkit/stream-manager/shared/models"

// Map is one entry in a game's static map pool. Mode is "" for games
// without rotating modes (Valorant, CS).
type Map struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Mode  string `json:"mode,omitempty"`
}

// Character is one entry in a game's playable roster. Only Overwatch has a
// roster today; it drives ban validation.
type Character struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Role  string `json:"role"`
}

// MapsFor returns the map pool for a game. Games without a curated pool
// get an empty slice; slot names are then free text from the dashboard.
func MapsFor(game models.GameType) []Map {
	switch game {
	case models.GameOverwatch:
		return OverwatchMaps
	case models.GameValorant:
		return ValorantMaps
	case models.GameMarvelRivals:
		return MarvelRivalsMaps
	default:
		return nil
	}
}

// FindMap looks a map up by exact name.
func FindMap(maps []Map, name string) (Map, bool) {
	for _, m := range maps {
		if m.Name == name {
			return m, true
		}
	}
	return Map{}, false
}

// FindCharacter looks a character up by exact name.
func FindCharacter(roster []Character, name string) (Character, bool) {
	for _, c := range roster {
		if c.Name == name {
			return c, true
		}
	}
	return Character{}, false
}
