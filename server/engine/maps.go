// server/engine/maps.go
package engine

import (
	"errors"

	"github.com/streamkit/stream-manager/shared/catalog"
	"github.com/streamkit/stream-manager/shared/models"
)

var ErrInvalidTeam = errors.New("team must be 1 or 2")
var ErrInvalidWinner = errors.New("winner must be team1, team2 or null")
var ErrUnknownSlot = errors.New("no map slot with that id")
var ErrUnknownMap = errors.New("map not found in catalog")
var ErrUnknownCharacter = errors.New("character not found in roster")
var ErrNoCurrentSlot = errors.New("all map slots are decided")

// CurrentSlotIndex resolves the derived "current map" pointer: the first
// slot in order whose winner is unset. Returns -1 when the series is fully
// decided. This is never stored; it is recomputed on every operation.
func CurrentSlotIndex(slots []models.MapSlot) int {
	for i := range slots {
		if slots[i].Winner == nil {
			return i
		}
	}
	return -1
}

// LastDecidedIndex resolves the undo target: the last slot in order whose
// winner is set. Returns -1 when nothing has been decided yet.
func LastDecidedIndex(slots []models.MapSlot) int {
	for i := len(slots) - 1; i >= 0; i-- {
		if slots[i].Winner != nil {
			return i
		}
	}
	return -1
}

// Resize regenerates the whole slot list. This is a hard reset: picks,
// winners and ban snapshots are all discarded, never merged.
func Resize(count int) []models.MapSlot {
	slots := make([]models.MapSlot, count)
	for i := range slots {
		slots[i] = models.MapSlot{ID: i + 1}
	}
	return slots
}

// SetSlotName renames a single slot by id, leaving the rest untouched.
// When the name matches a catalog entry its image and mode are copied in;
// otherwise only the name changes (free-text maps for uncurated games).
func SetSlotName(slots []models.MapSlot, slotID int, name string, maps []catalog.Map) error {
	slot := slotByID(slots, slotID)
	if slot == nil {
		return ErrUnknownSlot
	}
	slot.Name = name
	if m, ok := catalog.FindMap(maps, name); ok {
		slot.Image = m.Image
		slot.Mode = modePtr(m.Mode)
	}
	return nil
}

// SetSlotWinner hand-edits a single slot's winner by id. No score or ban
// bookkeeping happens here; that belongs to ApplyScoreChange.
func SetSlotWinner(slots []models.MapSlot, slotID int, winner *models.Winner) error {
	if winner != nil && *winner != models.WinnerTeam1 && *winner != models.WinnerTeam2 {
		return ErrInvalidWinner
	}
	slot := slotByID(slots, slotID)
	if slot == nil {
		return ErrUnknownSlot
	}
	slot.Winner = cloneWinner(winner)
	return nil
}

// SelectCurrentMap locks a catalog map into the current slot and stamps the
// session's live bans onto it, so the in-progress map displays the bans
// that are active right now. The session is untouched on error.
func SelectCurrentMap(s *models.Session, mapName string, maps []catalog.Map) error {
	i := CurrentSlotIndex(s.MapInfo)
	if i < 0 {
		return ErrNoCurrentSlot
	}
	m, ok := catalog.FindMap(maps, mapName)
	if !ok {
		return ErrUnknownMap
	}
	slot := &s.MapInfo[i]
	slot.Name = m.Name
	slot.Image = m.Image
	slot.Mode = modePtr(m.Mode)
	slot.Team1Ban = cloneString(s.Team1.Ban)
	slot.Team2Ban = cloneString(s.Team2.Ban)
	return nil
}

// ApplyScoreChange adjusts a team's score and keeps the slot sequence in
// step. A positive delta credits the current slot (if any) with the win,
// freezes the live bans onto it, and clears the session-level bans; the
// score always moves even when every slot is already decided, since a
// series can run past its modeled length. A negative delta undoes the last
// decided slot, whichever team won it, and clamps the score at zero.
func ApplyScoreChange(s *models.Session, team, delta int) error {
	if team != 1 && team != 2 {
		return ErrInvalidTeam
	}
	if delta == 0 {
		return nil
	}
	ts := s.Team(team)
	if delta > 0 {
		if i := CurrentSlotIndex(s.MapInfo); i >= 0 {
			w := models.WinnerTeam1
			if team == 2 {
				w = models.WinnerTeam2
			}
			slot := &s.MapInfo[i]
			slot.Winner = &w
			slot.Team1Ban = cloneString(s.Team1.Ban)
			slot.Team2Ban = cloneString(s.Team2.Ban)
		}
		// Bans are per-map; they do not carry over to the next one.
		s.Team1.Ban = nil
		s.Team2.Ban = nil
		ts.Score += delta
		return nil
	}
	if i := LastDecidedIndex(s.MapInfo); i >= 0 {
		slot := &s.MapInfo[i]
		slot.Winner = nil
		slot.Team1Ban = nil
		slot.Team2Ban = nil
	}
	ts.Score += delta
	if ts.Score < 0 {
		ts.Score = 0
	}
	return nil
}

// ApplyBanChange sets a team's live ban (nil clears it) and mirrors the
// value onto the current slot when one exists, so the in-progress map's
// ban display tracks the live ban until the map is decided.
func ApplyBanChange(s *models.Session, team int, characterName *string, roster []catalog.Character) error {
	if team != 1 && team != 2 {
		return ErrInvalidTeam
	}
	if characterName != nil {
		if _, ok := catalog.FindCharacter(roster, *characterName); !ok {
			return ErrUnknownCharacter
		}
	}
	s.Team(team).Ban = cloneString(characterName)
	if i := CurrentSlotIndex(s.MapInfo); i >= 0 {
		slot := &s.MapInfo[i]
		if team == 1 {
			slot.Team1Ban = cloneString(characterName)
		} else {
			slot.Team2Ban = cloneString(characterName)
		}
	}
	return nil
}

func slotByID(slots []models.MapSlot, slotID int) *models.MapSlot {
	for i := range slots {
		if slots[i].ID == slotID {
			return &slots[i]
		}
	}
	return nil
}

func modePtr(mode string) *string {
	if mode == "" {
		return nil
	}
	return &mode
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneWinner(p *models.Winner) *models.Winner {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
