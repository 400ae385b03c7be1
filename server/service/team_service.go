// server/service/team_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/streamkit/stream-manager/shared/models"
)

var ErrTeamNotFound = errors.New("team preset not found")

// TeamStore is what TeamService needs from the MongoDB layer.
type TeamStore interface {
	Create(ctx context.Context, team *models.TeamPreset) error
	Get(ctx context.Context, id string) (*models.TeamPreset, error)
	List(ctx context.Context) ([]models.TeamPreset, error)
	Replace(ctx context.Context, team *models.TeamPreset) error
	Delete(ctx context.Context, id string) error
}

// TeamService manages saved team presets. Presets are plain CRUD; none
// of the session engine's rules apply here.
type TeamService struct {
	store TeamStore
}

func NewTeamService(store TeamStore) *TeamService {
	return &TeamService{store: store}
}

func (s *TeamService) CreateTeam(ctx context.Context, patch *models.TeamPresetPatch) (*models.TeamPreset, error) {
	team := models.NewTeamPreset(uuid.NewString())
	if patch != nil {
		applyTeamPresetPatch(team, patch)
	}
	if err := s.store.Create(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

func (s *TeamService) GetTeam(ctx context.Context, id string) (*models.TeamPreset, error) {
	team, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team preset %s: %w", id, err)
	}
	return team, nil
}

func (s *TeamService) ListTeams(ctx context.Context) ([]models.TeamPreset, error) {
	return s.store.List(ctx)
}

func (s *TeamService) UpdateTeam(ctx context.Context, id string, patch *models.TeamPresetPatch) (*models.TeamPreset, error) {
	team, err := s.GetTeam(ctx, id)
	if err != nil {
		return nil, err
	}
	applyTeamPresetPatch(team, patch)
	if err := s.store.Replace(ctx, team); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return team, nil
}

func (s *TeamService) DeleteTeam(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrTeamNotFound
		}
		return err
	}
	return nil
}

func applyTeamPresetPatch(team *models.TeamPreset, patch *models.TeamPresetPatch) {
	if patch.Name != nil {
		team.Name = *patch.Name
	}
	if patch.Color != nil {
		team.Color = *patch.Color
	}
	if patch.Logo != nil {
		team.Logo = *patch.Logo
	}
	if patch.Abbreviation != nil {
		team.Abbreviation = *patch.Abbreviation
	}
	if patch.Rank != nil {
		team.Rank = *patch.Rank
	}
}
