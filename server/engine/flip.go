// server/engine/flip.go
package engine

import "github.com/streamkit/stream-manager/shared/models"

// Flip swaps the roles of team 1 and team 2 across the whole session: the
// two TeamState values trade places, every slot's winner is remapped and
// its ban snapshots swap sides. Slot order, ids, names and images stay put.
//
// Team1First is forced to true afterwards, on purpose: after a flip,
// "team1" is by definition whichever team is displayed first. Flipping
// twice restores every mirrored field but still leaves Team1First true.
func Flip(s *models.Session) {
	s.Team1, s.Team2 = s.Team2, s.Team1
	for i := range s.MapInfo {
		slot := &s.MapInfo[i]
		if slot.Winner != nil {
			switch *slot.Winner {
			case models.WinnerTeam1:
				w := models.WinnerTeam2
				slot.Winner = &w
			case models.WinnerTeam2:
				w := models.WinnerTeam1
				slot.Winner = &w
			}
		}
		slot.Team1Ban, slot.Team2Ban = slot.Team2Ban, slot.Team1Ban
	}
	s.Team1First = true
}
