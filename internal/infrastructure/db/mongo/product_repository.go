package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/coworkia/coworking-api/internal/core/domain"
)

const productCollection = "products"

type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productCollection)}
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return domain.NewInternal(fmt.Errorf("insert product: %w", err))
	}
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewNotFound("product not found")
		}
		return nil, domain.NewInternal(fmt.Errorf("find product: %w", err))
	}
	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, domain.NewInternal(fmt.Errorf("list products: %w", err))
	}
	defer cursor.Close(ctx)

	var products []*domain.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, domain.NewInternal(fmt.Errorf("decode products: %w", err))
	}
	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return domain.NewInternal(fmt.Errorf("update product: %w", err))
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFound("product not found")
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return domain.NewInternal(fmt.Errorf("delete product: %w", err))
	}
	if res.DeletedCount == 0 {
		return domain.NewNotFound("product not found")
	}
	return nil
}
