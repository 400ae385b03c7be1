// server/service/session_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/streamkit/stream-manager/server/engine"
	"github.com/streamkit/stream-manager/shared/catalog"
	"github.com/streamkit/stream-manager/shared/models"
)

var ErrSessionNotFound = errors.New("session not found")
var ErrUnknownGame = errors.New("unknown game")
var ErrWrongGame = errors.New("operation not available for this game")
var ErrInvalidMapCount = errors.New("map count out of range")

// Slot lists longer than this are almost certainly a dashboard bug.
const maxMapSlots = 15

// Fresh and reset sessions start with a best-of-five slot list.
const defaultMapSlots = 5

// SessionStore is what SessionService needs from the MongoDB layer.
type SessionStore interface {
	Create(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
	List(ctx context.Context) ([]models.Session, error)
	Replace(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, id string) error
}

// SessionCache is the Redis read-through cache used on the overlay
// polling path. Get returns (nil, nil) on a miss.
type SessionCache interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	Set(ctx context.Context, session *models.Session) error
	Invalidate(ctx context.Context, id string) error
}

// SessionService owns every session mutation. All writes to one session
// are serialized behind a per-session mutex, so the load-modify-replace
// cycle can't interleave between two dashboard requests.
type SessionService struct {
	store SessionStore
	cache SessionCache
	locks sync.Map // session id -> *sync.Mutex
}

func NewSessionService(store SessionStore, cache SessionCache) *SessionService {
	return &SessionService{
		store: store,
		cache: cache,
	}
}

func (s *SessionService) lockFor(id string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// mutate runs the locked load-modify-replace cycle for one session. The
// callback mutates the loaded session in place; any error it returns
// aborts the write.
func (s *SessionService) mutate(ctx context.Context, id string, fn func(*models.Session) error) (*models.Session, error) {
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	session, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}

	if err := fn(session); err != nil {
		return nil, err
	}

	if err := s.store.Replace(ctx, session); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		// The TTL bounds how stale the overlay can get; don't fail the write.
		log.Printf("WARN: SessionService: cache invalidation for %s failed: %v", id, err)
	}
	return session, nil
}

// CreateSession makes a fresh session with stock defaults and applies any
// initial fields the dashboard sent along.
func (s *SessionService) CreateSession(ctx context.Context, patch *models.SessionPatch) (*models.Session, error) {
	session := models.NewSession(uuid.NewString())
	if patch != nil {
		if err := applyPatch(session, patch); err != nil {
			return nil, err
		}
	}
	// Patch runs first: picking an initial game counts as a game change
	// and would wipe a pre-seeded slot list.
	if len(session.MapInfo) == 0 {
		session.MapInfo = engine.Resize(defaultMapSlots)
	}
	if err := s.store.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession serves the overlay polling path: Redis first, MongoDB on a
// miss, then backfill the cache.
func (s *SessionService) GetSession(ctx context.Context, id string) (*models.Session, error) {
	cached, err := s.cache.Get(ctx, id)
	if err != nil {
		log.Printf("WARN: SessionService: cache read for %s failed: %v", id, err)
	} else if cached != nil {
		return cached, nil
	}

	session, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}

	if err := s.cache.Set(ctx, session); err != nil {
		log.Printf("WARN: SessionService: cache fill for %s failed: %v", id, err)
	}
	return session, nil
}

func (s *SessionService) ListSessions(ctx context.Context) ([]models.Session, error) {
	return s.store.List(ctx)
}

// UpdateSession is the general-purpose dashboard edit: a partial merge of
// the patch into the stored session. Switching the game to a different
// title throws the whole slot list away, since picks from one game's
// catalog mean nothing in another's.
func (s *SessionService) UpdateSession(ctx context.Context, id string, patch *models.SessionPatch) (*models.Session, error) {
	return s.mutate(ctx, id, func(session *models.Session) error {
		return applyPatch(session, patch)
	})
}

func applyPatch(session *models.Session, patch *models.SessionPatch) error {
	if patch.Game != nil {
		if !models.ValidGame(*patch.Game) {
			return ErrUnknownGame
		}
		if session.Game == nil || *session.Game != *patch.Game {
			session.MapInfo = []models.MapSlot{}
		}
		g := *patch.Game
		session.Game = &g
	}
	if patch.Name != nil {
		session.Name = *patch.Name
	}
	if patch.Team1 != nil {
		applyTeamPatch(&session.Team1, patch.Team1)
	}
	if patch.Team2 != nil {
		applyTeamPatch(&session.Team2, patch.Team2)
	}
	if patch.Team1First != nil {
		session.Team1First = *patch.Team1First
	}
	if patch.MapInfo != nil {
		session.MapInfo = *patch.MapInfo
	}
	if patch.BestOf != nil {
		session.BestOf = *patch.BestOf
	}
	if patch.Casters != nil {
		session.Casters = *patch.Casters
	}
	if patch.MatchName != nil {
		session.MatchName = *patch.MatchName
	}
	if patch.AnimationDelay != nil {
		session.AnimationDelay = *patch.AnimationDelay
	}
	return nil
}

func applyTeamPatch(ts *models.TeamState, patch *models.TeamStatePatch) {
	if patch.DisplayName != nil {
		ts.DisplayName = *patch.DisplayName
	}
	if patch.Abbreviation != nil {
		ts.Abbreviation = *patch.Abbreviation
	}
	if patch.Record != nil {
		ts.Record = *patch.Record
	}
	if patch.Rank != nil {
		ts.Rank = *patch.Rank
	}
	if patch.Color != nil {
		ts.Color = *patch.Color
	}
	if patch.Logo != nil {
		// Empty string clears the logo.
		if *patch.Logo == "" {
			ts.Logo = nil
		} else {
			logo := *patch.Logo
			ts.Logo = &logo
		}
	}
	if patch.Score != nil {
		ts.Score = *patch.Score
	}
	if patch.Ban != nil {
		if *patch.Ban == "" {
			ts.Ban = nil
		} else {
			ban := *patch.Ban
			ts.Ban = &ban
		}
	}
}

// ResetSession puts the match state back to stock between series: default
// teams, five fresh slots, bans gone. The session's identity fields
// (game, name, casters, match name, format, delay) survive the reset.
func (s *SessionService) ResetSession(ctx context.Context, id string) (*models.Session, error) {
	return s.mutate(ctx, id, func(session *models.Session) error {
		session.Team1 = models.DefaultTeamState(1)
		session.Team2 = models.DefaultTeamState(2)
		session.MapInfo = engine.Resize(defaultMapSlots)
		return nil
	})
}

// UpdateScore applies a score delta for one team, with all the slot and
// ban bookkeeping that goes with it.
func (s *SessionService) UpdateScore(ctx context.Context, id string, team, delta int) (*models.Session, error) {
	return s.mutate(ctx, id, func(session *models.Session) error {
		return engine.ApplyScoreChange(session, team, delta)
	})
}

// UpdateBan sets or clears (nil) a team's live hero ban. Bans only exist
// for Overwatch; the roster validation runs against its character list.
func (s *SessionService) UpdateBan(ctx context.Context, id string, team int, characterName *string) (*models.Session, error) {
	return s.mutate(ctx, id, func(session *models.Session) error {
		if session.Game == nil || *session.Game != models.GameOverwatch {
			return ErrWrongGame
		}
		return engine.ApplyBanChange(session, team, characterName, catalog.OverwatchCharacters)
	})
}

// UpdateMap locks a catalog map into the current slot. Overwatch-only;
// other games edit slots by hand through SetMapSlot.
func (s *SessionService) UpdateMap(ctx context.Context, id string, mapName string) (*models.Session, error) {
	return s.mutate(ctx, id, func(session *models.Session) error {
		if session.Game == nil || *session.Game != models.GameOverwatch {
			return ErrWrongGame
		}
		return engine.SelectCurrentMap(session, mapName, catalog.MapsFor(models.GameOverwatch))
	})
}

// SetMapSlot is the dashboard's hand-edit path for a single slot: rename
// it, or set/clear its winner directly. winnerSet distinguishes "winner
// field absent" from "winner: null" in the request body.
func (s *SessionService) SetMapSlot(ctx context.Context, id string, slotID int, name *string, winnerSet bool, winner *models.Winner) (*models.Session, error) {
	return s.mutate(ctx, id, func(session *models.Session) error {
		var maps []catalog.Map
		if session.Game != nil {
			maps = catalog.MapsFor(*session.Game)
		}
		if name != nil {
			if err := engine.SetSlotName(session.MapInfo, slotID, *name, maps); err != nil {
				return err
			}
		}
		if winnerSet {
			if err := engine.SetSlotWinner(session.MapInfo, slotID, winner); err != nil {
				return err
			}
		}
		return nil
	})
}

// ResizeMaps regenerates the slot list at the requested length. Hard
// reset; existing picks and winners are discarded.
func (s *SessionService) ResizeMaps(ctx context.Context, id string, count int) (*models.Session, error) {
	if count < 0 || count > maxMapSlots {
		return nil, ErrInvalidMapCount
	}
	return s.mutate(ctx, id, func(session *models.Session) error {
		session.MapInfo = engine.Resize(count)
		return nil
	})
}

// FlipSides swaps which team is team 1 and which is team 2.
func (s *SessionService) FlipSides(ctx context.Context, id string) (*models.Session, error) {
	return s.mutate(ctx, id, func(session *models.Session) error {
		engine.Flip(session)
		return nil
	})
}

// DeleteSession ends a session for good.
func (s *SessionService) DeleteSession(ctx context.Context, id string) error {
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrSessionNotFound
		}
		return err
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		log.Printf("WARN: SessionService: cache invalidation for %s failed: %v", id, err)
	}
	s.locks.Delete(id)
	return nil
}
