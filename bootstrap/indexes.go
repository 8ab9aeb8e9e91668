package bootstrap

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/playscout/game-recommender/domain"
	"github.com/playscout/game-recommender/mongo"
)

// EnsureIndexes creates the unique indexes backing the lookup and
// upsert keys: users are addressed by email and preferences are
// upserted by user_email. CreateOne is idempotent for an existing
// index, so running this on every start is safe.
func EnsureIndexes(ctx context.Context, db mongo.Database) error {
	indexes := []struct {
		collection string
		key        string
	}{
		{domain.CollectionUser, "email"},
		{domain.CollectionUserPreferences, "user_email"},
	}

	for _, idx := range indexes {
		model := driver.IndexModel{
			Keys:    bson.D{{Key: idx.key, Value: 1}},
			Options: options.Index().SetUnique(true),
		}
		if _, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("create index on %s.%s: %w", idx.collection, idx.key, err)
		}
	}
	return nil
}
