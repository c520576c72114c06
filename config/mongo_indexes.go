package config

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sarveshramani/portfolio/internal/models"
)

// EnsureMongoIndexes creates the unique id index on every collection plus
// one index per listing order.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	listings := map[string][]bson.D{
		models.CollectionPersonalInfo: {{{Key: models.FieldCreatedAt, Value: 1}}},
		models.CollectionExperience:   {{{Key: models.FieldCreatedAt, Value: -1}}},
		models.CollectionProjects: {
			{{Key: models.FieldCreatedAt, Value: -1}},
			{{Key: models.FieldIsFeatured, Value: 1}, {Key: models.FieldCreatedAt, Value: -1}},
		},
		models.CollectionSkills:       {{{Key: "category", Value: 1}}},
		models.CollectionEducation:    {{{Key: models.FieldCreatedAt, Value: -1}}},
		models.CollectionAchievements: {{{Key: "year", Value: -1}}},
	}

	for name, keys := range listings {
		idx := []mongo.IndexModel{{
			Keys:    bson.D{{Key: models.FieldID, Value: 1}},
			Options: options.Index().SetName("uniq_id").SetUnique(true),
		}}
		for _, k := range keys {
			idx = append(idx, mongo.IndexModel{Keys: k})
		}

		if _, err := db.Collection(name).Indexes().CreateMany(ctx, idx); err != nil {
			return err
		}
	}
	return nil
}
