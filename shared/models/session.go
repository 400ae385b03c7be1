// shared/models/session.go
package models

// GameType identifies one of the supported titles. A session's game stays
// nil until the producer picks one on the dashboard.
type GameType string

const (
	GameOverwatch       GameType = "Overwatch"
	GameSplatoon        GameType = "Splatoon"
	GameRocketLeague    GameType = "Rocket League"
	GameSmash           GameType = "Smash"
	GameValorant        GameType = "Valorant"
	GameCS              GameType = "CS"
	GameLeagueOfLegends GameType = "League of Legends"
	GameDeadlock        GameType = "Deadlock"
	GameMarvelRivals    GameType = "Marvel Rivals"
)

// SupportedGames lists every game the dashboard can select.
var SupportedGames = []GameType{
	GameOverwatch,
	GameSplatoon,
	GameRocketLeague,
	GameSmash,
	GameValorant,
	GameCS,
	GameLeagueOfLegends,
	GameDeadlock,
	GameMarvelRivals,
}

// ValidGame reports whether g is one of the supported titles.
func ValidGame(g GameType) bool {
	for _, s := range SupportedGames {
		if s == g {
			return true
		}
	}
	return false
}

// Winner marks which team took a map slot.
type Winner string

const (
	WinnerTeam1 Winner = "team1"
	WinnerTeam2 Winner = "team2"
)

// TeamState holds everything the overlays render for one side of a match.
// A session carries two of these; which one is shown on the left is decided
// by Session.Team1First, not by swapping the structs around.
type TeamState struct {
	DisplayName  string  `bson:"display_name" json:"displayName"`
	Abbreviation string  `bson:"abbreviation" json:"abbreviation"`
	Record       string  `bson:"record" json:"record"`
	Rank         string  `bson:"rank" json:"rank"`
	Color        string  `bson:"color" json:"color"`
	Logo         *string `bson:"logo,omitempty" json:"logo"`
	Score        int     `bson:"score" json:"score"`
	Ban          *string `bson:"ban,omitempty" json:"ban"`
}

// MapSlot is one entry in a session's ordered map sequence. An empty Name
// means the slot is still TBD. A nil Winner means the slot is undecided;
// the first undecided slot in order is the "current" map. Team1Ban/Team2Ban
// snapshot the bans that were live while this slot was being played.
type MapSlot struct {
	ID       int     `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Image    string  `bson:"image" json:"image"`
	Mode     *string `bson:"mode,omitempty" json:"mode"`
	Winner   *Winner `bson:"winner,omitempty" json:"winner"`
	Team1Ban *string `bson:"team1_ban,omitempty" json:"team1Ban"`
	Team2Ban *string `bson:"team2_ban,omitempty" json:"team2Ban"`
}

// CasterInfo describes one caster card. IDs come from the dashboard
// (timestamp based) and are only unique within a single session.
type CasterInfo struct {
	ID        int64  `bson:"id" json:"id"`
	Name      string `bson:"name" json:"name"`
	Pronouns  string `bson:"pronouns" json:"pronouns"`
	Twitter   string `bson:"twitter" json:"twitter"`
	Twitch    string `bson:"twitch" json:"twitch"`
	Youtube   string `bson:"youtube" json:"youtube"`
	Instagram string `bson:"instagram" json:"instagram"`
}

// Session is the full mutable record for one live match. One document per
// session; every mutation is a destructive overwrite of the previous value.
type Session struct {
	ID             string       `bson:"_id" json:"id"`
	Game           *GameType    `bson:"game,omitempty" json:"game"`
	Name           string       `bson:"name" json:"name"`
	Team1          TeamState    `bson:"team1" json:"team1"`
	Team2          TeamState    `bson:"team2" json:"team2"`
	Team1First     bool         `bson:"team1_first" json:"team1First"`
	MapInfo        []MapSlot    `bson:"map_info" json:"mapInfo"`
	BestOf         bool         `bson:"best_of" json:"bestOf"`
	Casters        []CasterInfo `bson:"casters" json:"casters"`
	MatchName      string       `bson:"match_name" json:"matchName"`
	AnimationDelay int          `bson:"animation_delay" json:"animationDelay"`
}

// Team returns the state for team 1 or team 2. Callers must validate the
// selector first; anything else returns nil.
func (s *Session) Team(n int) *TeamState {
	switch n {
	case 1:
		return &s.Team1
	case 2:
		return &s.Team2
	default:
		return nil
	}
}

// DefaultTeamState is the state a team is (re)set to on session create and
// on reset. The colors match the stock overlay theme.
func DefaultTeamState(n int) TeamState {
	ts := TeamState{
		DisplayName: "Team 1",
		Color:       "#8e6f3e",
	}
	if n == 2 {
		ts.DisplayName = "Team 2"
		ts.Color = "#555960"
	}
	return ts
}

// NewSession builds a fresh session with stock defaults and no maps.
func NewSession(id string) *Session {
	return &Session{
		ID:         id,
		Name:       "New Session",
		Team1:      DefaultTeamState(1),
		Team2:      DefaultTeamState(2),
		Team1First: true,
		MapInfo:    []MapSlot{},
		Casters:    []CasterInfo{},
	}
}
