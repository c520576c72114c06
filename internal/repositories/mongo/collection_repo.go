package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sarveshramani/portfolio/internal/models"
	"github.com/sarveshramani/portfolio/internal/repositories"
	"github.com/sarveshramani/portfolio/internal/utils"
)

type collectionRepo[T models.Entity] struct {
	col *mongo.Collection
	now repositories.Clock
}

// NewCollectionRepo stores T documents in the named collection of db.
func NewCollectionRepo[T models.Entity](db *mongo.Database, name string, opts ...repositories.Option) repositories.Store[T] {
	o := repositories.Apply(opts...)
	return &collectionRepo[T]{col: db.Collection(name), now: o.Clock}
}

func sortDoc(s repositories.Sort) bson.D {
	d := bson.D{{Key: s.Key, Value: int(s.Direction)}}
	if s.Key != models.FieldID {
		d = append(d, bson.E{Key: models.FieldID, Value: 1})
	}
	return d
}

func (r *collectionRepo[T]) List(ctx context.Context, sort repositories.Sort) ([]T, error) {
	return r.ListWhere(ctx, nil, sort)
}

func (r *collectionRepo[T]) ListWhere(ctx context.Context, filter repositories.Filter, sort repositories.Sort) ([]T, error) {
	q := bson.M{}
	for k, v := range filter {
		q[k] = v
	}

	cur, err := r.col.Find(ctx, q, options.Find().SetSort(sortDoc(sort)))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetOne returns the oldest document.
func (r *collectionRepo[T]) GetOne(ctx context.Context) (*T, error) {
	return r.findOne(ctx, bson.M{}, options.FindOne().SetSort(sortDoc(repositories.SortBy(models.FieldCreatedAt, repositories.Ascending))))
}

func (r *collectionRepo[T]) GetByID(ctx context.Context, id string) (*T, error) {
	return r.findOne(ctx, bson.M{models.FieldID: id})
}

func (r *collectionRepo[T]) findOne(ctx context.Context, q bson.M, opts ...*options.FindOneOptions) (*T, error) {
	var doc T
	err := r.col.FindOne(ctx, q, opts...).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *collectionRepo[T]) Insert(ctx context.Context, doc *T) error {
	_, err := r.col.InsertOne(ctx, doc)
	return err
}

func (r *collectionRepo[T]) UpdateByID(ctx context.Context, id string, fields map[string]any) (*T, error) {
	set := repositories.PatchSet(fields, r.now())

	var doc T
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{models.FieldID: id},
		bson.M{"$set": bson.M(set)},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *collectionRepo[T]) DeleteByID(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{models.FieldID: id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *collectionRepo[T]) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.D{})
}

func (r *collectionRepo[T]) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

var _ repositories.Store[models.Skill] = (*collectionRepo[models.Skill])(nil)
