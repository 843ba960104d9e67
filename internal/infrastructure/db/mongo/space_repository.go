package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/coworkia/coworking-api/internal/core/domain"
)

const spaceCollection = "spaces"

type SpaceRepository struct {
	coll *mongo.Collection
}

func NewSpaceRepository(db *mongo.Database) *SpaceRepository {
	return &SpaceRepository{coll: db.Collection(spaceCollection)}
}

func (r *SpaceRepository) Create(ctx context.Context, s *domain.Space) error {
	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return domain.NewInternal(fmt.Errorf("insert space: %w", err))
	}
	return nil
}

func (r *SpaceRepository) FindByID(ctx context.Context, id string) (*domain.Space, error) {
	var s domain.Space
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewNotFound("space not found")
		}
		return nil, domain.NewInternal(fmt.Errorf("find space: %w", err))
	}
	return &s, nil
}

func (r *SpaceRepository) List(ctx context.Context) ([]*domain.Space, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, domain.NewInternal(fmt.Errorf("list spaces: %w", err))
	}
	defer cursor.Close(ctx)

	var spaces []*domain.Space
	if err := cursor.All(ctx, &spaces); err != nil {
		return nil, domain.NewInternal(fmt.Errorf("decode spaces: %w", err))
	}
	return spaces, nil
}

func (r *SpaceRepository) Update(ctx context.Context, s *domain.Space) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	if err != nil {
		return domain.NewInternal(fmt.Errorf("update space: %w", err))
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFound("space not found")
	}
	return nil
}

func (r *SpaceRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return domain.NewInternal(fmt.Errorf("delete space: %w", err))
	}
	if res.DeletedCount == 0 {
		return domain.NewNotFound("space not found")
	}
	return nil
}
