package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/playscout/game-recommender/domain"
	"github.com/playscout/game-recommender/mongo"
)

type preferencesRepository struct {
	database   mongo.Database
	collection string
}

func NewPreferencesRepository(db mongo.Database, collection string) domain.PreferencesRepository {
	return &preferencesRepository{
		database:   db,
		collection: collection,
	}
}

// Upsert writes the full preferences snapshot keyed by user email.
// Repeating the call with the same email overwrites the previous
// snapshot instead of creating a second document.
func (pr *preferencesRepository) Upsert(ctx context.Context, prefs *domain.UserPreferences) error {
	filter := bson.M{"user_email": prefs.UserEmail}
	update := bson.M{
		"$set": bson.M{
			"selected_games":        prefs.SelectedGames,
			"questionnaire_answers": prefs.QuestionnaireAnswers,
			"updated_at":            time.Now().UTC(),
		},
		"$setOnInsert": bson.M{
			"created_at": time.Now().UTC(),
		},
	}

	opts := options.Update().SetUpsert(true)
	coll := pr.database.Collection(pr.collection)

	if _, err := coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("upsert preferences failed: %w", err)
	}
	return nil
}

// UpsertAnswers replaces only the questionnaire answers, leaving any
// previously saved selection untouched.
func (pr *preferencesRepository) UpsertAnswers(ctx context.Context, email string, answers domain.QuestionnaireAnswers) error {
	filter := bson.M{"user_email": email}
	update := bson.M{
		"$set": bson.M{
			"questionnaire_answers": answers,
			"updated_at":            time.Now().UTC(),
		},
		"$setOnInsert": bson.M{
			"selected_games": []int64{},
			"created_at":     time.Now().UTC(),
		},
	}

	opts := options.Update().SetUpsert(true)
	coll := pr.database.Collection(pr.collection)

	if _, err := coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("upsert questionnaire answers failed: %w", err)
	}
	return nil
}

func (pr *preferencesRepository) GetByEmail(ctx context.Context, email string) (*domain.UserPreferences, error) {
	coll := pr.database.Collection(pr.collection)

	var prefs domain.UserPreferences
	err := coll.FindOne(ctx, bson.M{"user_email": email}).Decode(&prefs)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, domain.NewNotFoundError("no preferences found for the user")
		}
		return nil, fmt.Errorf("fetch preferences failed: %w", err)
	}
	return &prefs, nil
}
