// server/store/session_store.go
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

// SessionStore is the MongoDB data store for session documents. Stores
// only do DB work; all mutation rules live in the service layer.
type SessionStore struct {
	collection *mongo.Collection
}

func NewSessionStore(collection *mongo.Collection) *SessionStore {
	return &SessionStore{
		collection: collection,
	}
}

// Create inserts a new session document.
func (ss *SessionStore) Create(ctx context.Context, session *models.Session) error {
	if _, err := ss.collection.InsertOne(ctx, session); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("session %s already exists", session.ID)
		}
		return fmt.Errorf("failed to create session %s: %w", session.ID, err)
	}
	return nil
}

// Get retrieves one session by id. Returns mongo.ErrNoDocuments when the
// session does not exist.
func (ss *SessionStore) Get(ctx context.Context, id string) (*models.Session, error) {
	var session models.Session
	if err := ss.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session); err != nil {
		return nil, err
	}
	return &session, nil
}

// List returns every session, for the dashboard's session picker.
func (ss *SessionStore) List(ctx context.Context) ([]models.Session, error) {
	cursor, err := ss.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer cursor.Close(ctx)

	sessions := []models.Session{}
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("failed to decode sessions: %w", err)
	}
	return sessions, nil
}

// Replace overwrites the whole session document. Every mutation is a full
// read-modify-write of the row.
func (ss *SessionStore) Replace(ctx context.Context, session *models.Session) error {
	res, err := ss.collection.ReplaceOne(ctx, bson.M{"_id": session.ID}, session)
	if err != nil {
		return fmt.Errorf("failed to replace session %s: %w", session.ID, err)
	}
	if res.MatchedCount == 0 {
		// Session was deleted between load and write.
		return fmt.Errorf("session %s disappeared during update: %w", session.ID, mongo.ErrNoDocuments)
	}
	return nil
}

// Delete removes a session document.
func (ss *SessionStore) Delete(ctx context.Context, id string) error {
	res, err := ss.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("session %s not found for delete: %w", id, mongo.ErrNoDocuments)
	}
	return nil
}

// ClearLogoReferences nulls out any team logo still pointing at a deleted
// upload, matched by filename substring. Used by the cleanup sweep.
func (ss *SessionStore) ClearLogoReferences(ctx context.Context, filename string) error {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filename)}

	if _, err := ss.collection.UpdateMany(ctx,
		bson.M{"team1.logo": pattern},
		bson.M{"$set": bson.M{"team1.logo": nil}},
	); err != nil {
		return fmt.Errorf("failed to clear team1 logo references to %s: %w", filename, err)
	}
	if _, err := ss.collection.UpdateMany(ctx,
		bson.M{"team2.logo": pattern},
		bson.M{"$set": bson.M{"team2.logo": nil}},
	); err != nil {
		return fmt.Errorf("failed to clear team2 logo references to %s: %w", filename, err)
	}
	return nil
}
