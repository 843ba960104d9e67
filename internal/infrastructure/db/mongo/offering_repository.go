package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/coworkia/coworking-api/internal/core/domain"
)

const offeringCollection = "services"

type OfferingRepository struct {
	coll *mongo.Collection
}

func NewOfferingRepository(db *mongo.Database) *OfferingRepository {
	return &OfferingRepository{coll: db.Collection(offeringCollection)}
}

func (r *OfferingRepository) Create(ctx context.Context, o *domain.Offering) error {
	if _, err := r.coll.InsertOne(ctx, o); err != nil {
		return domain.NewInternal(fmt.Errorf("insert offering: %w", err))
	}
	return nil
}

func (r *OfferingRepository) FindByID(ctx context.Context, id string) (*domain.Offering, error) {
	var o domain.Offering
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&o); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewNotFound("service not found")
		}
		return nil, domain.NewInternal(fmt.Errorf("find offering: %w", err))
	}
	return &o, nil
}

func (r *OfferingRepository) List(ctx context.Context) ([]*domain.Offering, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, domain.NewInternal(fmt.Errorf("list offerings: %w", err))
	}
	defer cursor.Close(ctx)

	var offerings []*domain.Offering
	if err := cursor.All(ctx, &offerings); err != nil {
		return nil, domain.NewInternal(fmt.Errorf("decode offerings: %w", err))
	}
	return offerings, nil
}

func (r *OfferingRepository) Update(ctx context.Context, o *domain.Offering) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": o.ID}, o)
	if err != nil {
		return domain.NewInternal(fmt.Errorf("update offering: %w", err))
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFound("service not found")
	}
	return nil
}

func (r *OfferingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return domain.NewInternal(fmt.Errorf("delete offering: %w", err))
	}
	if res.DeletedCount == 0 {
		return domain.NewNotFound("service not found")
	}
	return nil
}
