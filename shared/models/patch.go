// shared/models/patch.go
package models

// SessionPatch is the wire shape for the general-purpose dashboard edit
// path (PUT /api/sessions/{id}). nil means "leave unchanged". Logos and
// bans are cleared by sending an empty string.
type SessionPatch struct {
	Game           *GameType       `json:"game"`
	Name           *string         `json:"name"`
	Team1          *TeamStatePatch `json:"team1"`
	Team2          *TeamStatePatch `json:"team2"`
	Team1First     *bool           `json:"team1First"`
	MapInfo        *[]MapSlot      `json:"mapInfo"`
	BestOf         *bool           `json:"bestOf"`
	Casters        *[]CasterInfo   `json:"casters"`
	MatchName      *string         `json:"matchName"`
	AnimationDelay *int            `json:"animationDelay"`
}

// TeamStatePatch mirrors TeamState with every field optional.
type TeamStatePatch struct {
	DisplayName  *string `json:"displayName"`
	Abbreviation *string `json:"abbreviation"`
	Record       *string `json:"record"`
	Rank         *string `json:"rank"`
	Color        *string `json:"color"`
	Logo         *string `json:"logo"`
	Score        *int    `json:"score"`
	Ban          *string `json:"ban"`
}
