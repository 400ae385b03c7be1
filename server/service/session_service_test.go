// server/service/session_service_test.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/streamkit/stream-manager/shared/models"
)

// fakeSessionStore keeps sessions in a map and hands out deep copies, so
// a test can't accidentally mutate stored state without going through
// Replace. Misses surface as mongo.ErrNoDocuments like the real store.
type fakeSessionStore struct {
	sessions map[string]*models.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*models.Session)}
}

func copySession(s *models.Session) *models.Session {
	raw, _ := json.Marshal(s)
	var out models.Session
	_ = json.Unmarshal(raw, &out)
	return &out
}

func (f *fakeSessionStore) Create(_ context.Context, s *models.Session) error {
	f.sessions[s.ID] = copySession(s)
	return nil
}

func (f *fakeSessionStore) Get(_ context.Context, id string) (*models.Session, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return copySession(s), nil
}

func (f *fakeSessionStore) List(_ context.Context) ([]models.Session, error) {
	out := []models.Session{}
	for _, s := range f.sessions {
		out = append(out, *copySession(s))
	}
	return out, nil
}

func (f *fakeSessionStore) Replace(_ context.Context, s *models.Session) error {
	if _, ok := f.sessions[s.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	f.sessions[s.ID] = copySession(s)
	return nil
}

func (f *fakeSessionStore) Delete(_ context.Context, id string) error {
	if _, ok := f.sessions[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.sessions, id)
	return nil
}

type fakeSessionCache struct{}

func (fakeSessionCache) Get(_ context.Context, _ string) (*models.Session, error) { return nil, nil }
func (fakeSessionCache) Set(_ context.Context, _ *models.Session) error           { return nil }
func (fakeSessionCache) Invalidate(_ context.Context, _ string) error             { return nil }

func newTestService() (*SessionService, *fakeSessionStore) {
	store := newFakeSessionStore()
	return NewSessionService(store, fakeSessionCache{}), store
}

func gamePtr(g models.GameType) *models.GameType { return &g }
func strPtr(s string) *string                    { return &s }
func intPtr(n int) *int                          { return &n }

func mustCreate(t *testing.T, svc *SessionService, patch *models.SessionPatch) *models.Session {
	t.Helper()
	s, err := svc.CreateSession(context.Background(), patch)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	return s
}

func TestCreateSessionDefaults(t *testing.T) {
	svc, _ := newTestService()
	s := mustCreate(t, svc, nil)

	if s.ID == "" {
		t.Fatal("expected a generated session id")
	}
	if s.Name != "New Session" {
		t.Errorf("Name = %q", s.Name)
	}
	if s.Game != nil {
		t.Errorf("Game = %v, want nil", *s.Game)
	}
	if len(s.MapInfo) != 5 {
		t.Fatalf("len(MapInfo) = %d, want 5", len(s.MapInfo))
	}
	if !s.Team1First {
		t.Error("Team1First should default to true")
	}
	if s.Team1.DisplayName != "Team 1" || s.Team2.DisplayName != "Team 2" {
		t.Errorf("team names = %q / %q", s.Team1.DisplayName, s.Team2.DisplayName)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.GetSession(context.Background(), "nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestUpdateSessionGameSwitchClearsMaps(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	s := mustCreate(t, svc, &models.SessionPatch{Game: gamePtr(models.GameOverwatch)})

	if _, err := svc.UpdateMap(ctx, s.ID, "Busan"); err != nil {
		t.Fatalf("UpdateMap: %v", err)
	}

	updated, err := svc.UpdateSession(ctx, s.ID, &models.SessionPatch{Game: gamePtr(models.GameValorant)})
	if err != nil {
		t.Fatalf("UpdateSession: %v", err)
	}
	if len(updated.MapInfo) != 0 {
		t.Fatalf("len(MapInfo) = %d after game switch, want 0", len(updated.MapInfo))
	}

	// Re-sending the same game must not wipe anything.
	resized, err := svc.ResizeMaps(ctx, s.ID, 3)
	if err != nil {
		t.Fatalf("ResizeMaps: %v", err)
	}
	same, err := svc.UpdateSession(ctx, s.ID, &models.SessionPatch{Game: gamePtr(models.GameValorant)})
	if err != nil {
		t.Fatalf("UpdateSession: %v", err)
	}
	if len(same.MapInfo) != len(resized.MapInfo) {
		t.Fatalf("len(MapInfo) = %d after same-game update, want %d", len(same.MapInfo), len(resized.MapInfo))
	}
}

func TestUpdateSessionRejectsUnknownGame(t *testing.T) {
	svc, _ := newTestService()
	s := mustCreate(t, svc, nil)

	_, err := svc.UpdateSession(context.Background(), s.ID, &models.SessionPatch{Game: gamePtr(models.GameType("Chess"))})
	if !errors.Is(err, ErrUnknownGame) {
		t.Fatalf("err = %v, want ErrUnknownGame", err)
	}
}

func TestUpdateSessionPartialMerge(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	s := mustCreate(t, svc, nil)

	updated, err := svc.UpdateSession(ctx, s.ID, &models.SessionPatch{
		Team1:     &models.TeamStatePatch{DisplayName: strPtr("Fuel"), Logo: strPtr("/uploads/fuel.png")},
		MatchName: strPtr("Grand Finals"),
	})
	if err != nil {
		t.Fatalf("UpdateSession: %v", err)
	}
	if updated.Team1.DisplayName != "Fuel" {
		t.Errorf("Team1.DisplayName = %q", updated.Team1.DisplayName)
	}
	if updated.Team1.Logo == nil || *updated.Team1.Logo != "/uploads/fuel.png" {
		t.Errorf("Team1.Logo = %v", updated.Team1.Logo)
	}
	if updated.Team2.DisplayName != "Team 2" {
		t.Errorf("Team2.DisplayName = %q, untouched team changed", updated.Team2.DisplayName)
	}

	// Empty string clears the logo.
	cleared, err := svc.UpdateSession(ctx, s.ID, &models.SessionPatch{
		Team1: &models.TeamStatePatch{Logo: strPtr("")},
	})
	if err != nil {
		t.Fatalf("UpdateSession: %v", err)
	}
	if cleared.Team1.Logo != nil {
		t.Errorf("Team1.Logo = %v after clear, want nil", *cleared.Team1.Logo)
	}
	if cleared.MatchName != "Grand Finals" {
		t.Errorf("MatchName = %q, lost on later patch", cleared.MatchName)
	}
}

func TestResetPreservesIdentity(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	s := mustCreate(t, svc, &models.SessionPatch{
		Game:      gamePtr(models.GameOverwatch),
		Name:      strPtr("Scrim Night"),
		MatchName: strPtr("Week 3"),
		Team1:     &models.TeamStatePatch{DisplayName: strPtr("Shock"), Score: intPtr(2)},
	})

	reset, err := svc.ResetSession(ctx, s.ID)
	if err != nil {
		t.Fatalf("ResetSession: %v", err)
	}
	if reset.Name != "Scrim Night" || reset.MatchName != "Week 3" {
		t.Errorf("identity fields lost: name=%q match=%q", reset.Name, reset.MatchName)
	}
	if reset.Game == nil || *reset.Game != models.GameOverwatch {
		t.Errorf("Game = %v, want Overwatch", reset.Game)
	}
	if reset.Team1.DisplayName != "Team 1" || reset.Team1.Score != 0 {
		t.Errorf("Team1 = %+v, want stock defaults", reset.Team1)
	}
	if len(reset.MapInfo) != 5 {
		t.Errorf("len(MapInfo) = %d, want 5", len(reset.MapInfo))
	}
	for _, slot := range reset.MapInfo {
		if slot.Name != "" || slot.Winner != nil {
			t.Errorf("slot %d not fresh: %+v", slot.ID, slot)
		}
	}
}

func TestBanRequiresOverwatch(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	s := mustCreate(t, svc, &models.SessionPatch{Game: gamePtr(models.GameValorant)})
	if _, err := svc.UpdateBan(ctx, s.ID, 1, strPtr("Ana")); !errors.Is(err, ErrWrongGame) {
		t.Fatalf("err = %v, want ErrWrongGame", err)
	}

	noGame := mustCreate(t, svc, nil)
	if _, err := svc.UpdateBan(ctx, noGame.ID, 1, strPtr("Ana")); !errors.Is(err, ErrWrongGame) {
		t.Fatalf("err = %v, want ErrWrongGame for game-less session", err)
	}
}

func TestMapSelectRequiresOverwatch(t *testing.T) {
	svc, _ := newTestService()
	s := mustCreate(t, svc, &models.SessionPatch{Game: gamePtr(models.GameSmash)})

	if _, err := svc.UpdateMap(context.Background(), s.ID, "Busan"); !errors.Is(err, ErrWrongGame) {
		t.Fatalf("err = %v, want ErrWrongGame", err)
	}
}

func TestResizeMapsBounds(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	s := mustCreate(t, svc, nil)

	if _, err := svc.ResizeMaps(ctx, s.ID, -1); !errors.Is(err, ErrInvalidMapCount) {
		t.Fatalf("count -1: err = %v, want ErrInvalidMapCount", err)
	}
	if _, err := svc.ResizeMaps(ctx, s.ID, 99); !errors.Is(err, ErrInvalidMapCount) {
		t.Fatalf("count 99: err = %v, want ErrInvalidMapCount", err)
	}
	resized, err := svc.ResizeMaps(ctx, s.ID, 7)
	if err != nil {
		t.Fatalf("ResizeMaps: %v", err)
	}
	if len(resized.MapInfo) != 7 {
		t.Fatalf("len(MapInfo) = %d, want 7", len(resized.MapInfo))
	}
}

func TestSetMapSlotFreeTextForUncuratedGame(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	s := mustCreate(t, svc, &models.SessionPatch{Game: gamePtr(models.GameSmash)})

	updated, err := svc.SetMapSlot(ctx, s.ID, 1, strPtr("Battlefield"), false, nil)
	if err != nil {
		t.Fatalf("SetMapSlot: %v", err)
	}
	if updated.MapInfo[0].Name != "Battlefield" {
		t.Errorf("slot name = %q", updated.MapInfo[0].Name)
	}
	if updated.MapInfo[0].Image != "" || updated.MapInfo[0].Mode != nil {
		t.Errorf("free-text slot picked up catalog data: %+v", updated.MapInfo[0])
	}
}

func TestDeleteSession(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	s := mustCreate(t, svc, nil)

	if err := svc.DeleteSession(ctx, s.ID); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
	if _, ok := store.sessions[s.ID]; ok {
		t.Fatal("session still stored after delete")
	}
	if err := svc.DeleteSession(ctx, s.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("second delete: err = %v, want ErrSessionNotFound", err)
	}
}

// Walks a best-of-three the way a producer actually would: pick a map,
// trade bans, score it, mis-click, undo, and finish the series.
func TestOverwatchSeriesFlow(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	s := mustCreate(t, svc, &models.SessionPatch{Game: gamePtr(models.GameOverwatch)})
	id := s.ID

	if _, err := svc.ResizeMaps(ctx, id, 3); err != nil {
		t.Fatalf("ResizeMaps: %v", err)
	}

	// Map 1: Busan, both teams ban, team 1 takes it.
	if _, err := svc.UpdateMap(ctx, id, "Busan"); err != nil {
		t.Fatalf("UpdateMap: %v", err)
	}
	if _, err := svc.UpdateBan(ctx, id, 1, strPtr("Sombra")); err != nil {
		t.Fatalf("UpdateBan: %v", err)
	}
	if _, err := svc.UpdateBan(ctx, id, 2, strPtr("Ana")); err != nil {
		t.Fatalf("UpdateBan: %v", err)
	}
	cur, err := svc.UpdateScore(ctx, id, 1, 1)
	if err != nil {
		t.Fatalf("UpdateScore: %v", err)
	}
	if cur.Team1.Score != 1 {
		t.Fatalf("Team1.Score = %d, want 1", cur.Team1.Score)
	}
	slot := cur.MapInfo[0]
	if slot.Winner == nil || *slot.Winner != models.WinnerTeam1 {
		t.Fatalf("slot 1 winner = %v, want team1", slot.Winner)
	}
	if slot.Team1Ban == nil || *slot.Team1Ban != "Sombra" || slot.Team2Ban == nil || *slot.Team2Ban != "Ana" {
		t.Fatalf("slot 1 ban snapshot = %v / %v", slot.Team1Ban, slot.Team2Ban)
	}
	if cur.Team1.Ban != nil || cur.Team2.Ban != nil {
		t.Fatal("session bans should clear when a map is won")
	}

	// Mis-click: team 2 given a point, then undone. The undo clears map 2,
	// the slot team 2 had just been credited with.
	if _, err := svc.UpdateScore(ctx, id, 2, 1); err != nil {
		t.Fatalf("UpdateScore: %v", err)
	}
	cur, err = svc.UpdateScore(ctx, id, 2, -1)
	if err != nil {
		t.Fatalf("UpdateScore undo: %v", err)
	}
	if cur.Team2.Score != 0 {
		t.Fatalf("Team2.Score = %d after undo, want 0", cur.Team2.Score)
	}
	if cur.MapInfo[1].Winner != nil {
		t.Fatal("slot 2 should be undecided after undo")
	}
	if cur.MapInfo[0].Winner == nil {
		t.Fatal("slot 1 should keep its winner after undo of slot 2")
	}

	// Maps 2 and 3 go to team 1.
	if _, err := svc.UpdateMap(ctx, id, "King's Row"); err != nil {
		t.Fatalf("UpdateMap: %v", err)
	}
	if _, err := svc.UpdateScore(ctx, id, 1, 1); err != nil {
		t.Fatalf("UpdateScore: %v", err)
	}
	cur, err = svc.UpdateScore(ctx, id, 1, 1)
	if err != nil {
		t.Fatalf("UpdateScore: %v", err)
	}
	if cur.Team1.Score != 3 {
		t.Fatalf("Team1.Score = %d, want 3", cur.Team1.Score)
	}
	for i, slot := range cur.MapInfo {
		if slot.Winner == nil {
			t.Fatalf("slot %d undecided at series end", i+1)
		}
	}

	// Series done: map picks now fail, score still moves.
	if _, err := svc.UpdateMap(ctx, id, "Busan"); err == nil {
		t.Fatal("UpdateMap should fail once every slot is decided")
	}
	cur, err = svc.UpdateScore(ctx, id, 1, 1)
	if err != nil {
		t.Fatalf("UpdateScore past series end: %v", err)
	}
	if cur.Team1.Score != 4 {
		t.Fatalf("Team1.Score = %d, want 4", cur.Team1.Score)
	}
}

func TestFlipSidesThroughService(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	s := mustCreate(t, svc, &models.SessionPatch{
		Team1: &models.TeamStatePatch{DisplayName: strPtr("Shock"), Score: intPtr(2)},
		Team2: &models.TeamStatePatch{DisplayName: strPtr("Fuel"), Score: intPtr(1)},
	})

	flipped, err := svc.FlipSides(ctx, s.ID)
	if err != nil {
		t.Fatalf("FlipSides: %v", err)
	}
	if flipped.Team1.DisplayName != "Fuel" || flipped.Team2.DisplayName != "Shock" {
		t.Fatalf("teams = %q / %q after flip", flipped.Team1.DisplayName, flipped.Team2.DisplayName)
	}
	if flipped.Team1.Score != 1 || flipped.Team2.Score != 2 {
		t.Fatalf("scores = %d / %d after flip", flipped.Team1.Score, flipped.Team2.Score)
	}
	if !flipped.Team1First {
		t.Fatal("Team1First must be true after a flip")
	}
}
