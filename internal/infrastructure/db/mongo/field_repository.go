package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yamato-seiki/schedule-api/internal/core/domain"
)

const collectionFields = "fields"

type FieldRepository struct {
	col *mongo.Collection
}

func NewFieldRepository(db *mongo.Database) *FieldRepository {
	return &FieldRepository{col: db.Collection(collectionFields)}
}

func (r *FieldRepository) Create(ctx context.Context, f *domain.Field) (*domain.Field, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if f.ID == "" {
		f.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, f); err != nil {
		return nil, fmt.Errorf("insert field: %w", err)
	}
	return f, nil
}

func (r *FieldRepository) FindByID(ctx context.Context, id string) (*domain.Field, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var f domain.Field
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&f); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFieldNotFound
		}
		return nil, fmt.Errorf("find field: %w", err)
	}
	return &f, nil
}

func (r *FieldRepository) List(ctx context.Context) ([]*domain.Field, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}
	defer cur.Close(ctx)

	var fields []*domain.Field
	if err := cur.All(ctx, &fields); err != nil {
		return nil, fmt.Errorf("decode fields: %w", err)
	}
	return fields, nil
}

func (r *FieldRepository) Update(ctx context.Context, f *domain.Field) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": f.ID}, f)
	if err != nil {
		return fmt.Errorf("update field: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrFieldNotFound
	}
	return nil
}

func (r *FieldRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete field: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrFieldNotFound
	}
	return nil
}
