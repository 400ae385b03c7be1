// shared/models/team.go
package models

// TeamPreset is a saved team the producer can bulk-apply onto a session's
// TeamState from the dashboard. Presets live in their own collection and
// are not referenced by sessions.
type TeamPreset struct {
	ID           string `bson:"_id" json:"id"`
	Name         string `bson:"name" json:"name"`
	Color        string `bson:"color" json:"color"`
	Logo         string `bson:"logo" json:"logo"`
	Abbreviation string `bson:"abbreviation" json:"abbreviation"`
	Rank         string `bson:"rank" json:"rank"`
}

// NewTeamPreset returns a preset with the dashboard's stock values.
func NewTeamPreset(id string) *TeamPreset {
	return &TeamPreset{
		ID:    id,
		Name:  "New Team",
		Color: "#000000",
	}
}

// TeamPresetPatch is the wire shape for PUT /api/teams/{id}.
type TeamPresetPatch struct {
	Name         *string `json:"name"`
	Color        *string `json:"color"`
	Logo         *string `json:"logo"`
	Abbreviation *string `json:"abbreviation"`
	Rank         *string `json:"rank"`
}
