// server/store/team_store.go
package store

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/streamkit/stream-manager/shared/models"
)

// TeamStore is the MongoDB data store for saved team presets.
type TeamStore struct {
	collection *mongo.Collection
}

func NewTeamStore(collection *mongo.Collection) *TeamStore {
	return &TeamStore{
		collection: collection,
	}
}

func (ts *TeamStore) Create(ctx context.Context, team *models.TeamPreset) error {
	if _, err := ts.collection.InsertOne(ctx, team); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("team preset %s already exists", team.ID)
		}
		return fmt.Errorf("failed to create team preset %s: %w", team.ID, err)
	}
	return nil
}

// Get returns mongo.ErrNoDocuments when the preset does not exist.
func (ts *TeamStore) Get(ctx context.Context, id string) (*models.TeamPreset, error) {
	var team models.TeamPreset
	if err := ts.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (ts *TeamStore) List(ctx context.Context) ([]models.TeamPreset, error) {
	cursor, err := ts.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list team presets: %w", err)
	}
	defer cursor.Close(ctx)

	teams := []models.TeamPreset{}
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, fmt.Errorf("failed to decode team presets: %w", err)
	}
	return teams, nil
}

func (ts *TeamStore) Replace(ctx context.Context, team *models.TeamPreset) error {
	res, err := ts.collection.ReplaceOne(ctx, bson.M{"_id": team.ID}, team)
	if err != nil {
		return fmt.Errorf("failed to replace team preset %s: %w", team.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("team preset %s not found for replace: %w", team.ID, mongo.ErrNoDocuments)
	}
	return nil
}

func (ts *TeamStore) Delete(ctx context.Context, id string) error {
	res, err := ts.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete team preset %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("team preset %s not found for delete: %w", id, mongo.ErrNoDocuments)
	}
	return nil
}

// ClearLogoReferences blanks preset logos that still point at a deleted
// upload, matched by filename substring.
func (ts *TeamStore) ClearLogoReferences(ctx context.Context, filename string) error {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filename)}
	if _, err := ts.collection.UpdateMany(ctx,
		bson.M{"logo": pattern},
		bson.M{"$set": bson.M{"logo": ""}},
	); err != nil {
		return fmt.Errorf("failed to clear team preset logo references to %s: %w", filename, err)
	}
	return nil
}
