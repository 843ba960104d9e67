package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coworkia/coworking-api/internal/core/domain"
)

const userCollection = "users"

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(userCollection)}
}

// EnsureIndexes creates the unique index on email and the sparse unique index
// on document_number. The indexes are the final arbiter of uniqueness: a
// concurrent signup that slips past the service pre-check fails here and is
// translated to the same conflict error.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "document_number", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	})
	if err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	if _, err := r.coll.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return duplicateKeyConflict(err)
		}
		return domain.NewInternal(fmt.Errorf("insert user: %w", err))
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var u domain.User
	if err := r.coll.FindOne(ctx, filter).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewNotFound("user not found")
		}
		return nil, domain.NewInternal(fmt.Errorf("find user: %w", err))
	}
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context, q string) ([]*domain.User, error) {
	filter := bson.M{}
	if q != "" {
		re := primitive.Regex{Pattern: q, Options: "i"}
		filter = bson.M{"$or": bson.A{
			bson.M{"name": re},
			bson.M{"email": re},
		}}
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, domain.NewInternal(fmt.Errorf("list users: %w", err))
	}
	defer cursor.Close(ctx)

	var users []*domain.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, domain.NewInternal(fmt.Errorf("decode users: %w", err))
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": u.ID}, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return duplicateKeyConflict(err)
		}
		return domain.NewInternal(fmt.Errorf("update user: %w", err))
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFound("user not found")
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return domain.NewInternal(fmt.Errorf("delete user: %w", err))
	}
	if res.DeletedCount == 0 {
		return domain.NewNotFound("user not found")
	}
	return nil
}

// duplicateKeyConflict maps a unique index violation onto the user-visible
// conflict message, matching the service-level pre-check outcome.
func duplicateKeyConflict(err error) error {
	if strings.Contains(err.Error(), "document_number") {
		return domain.NewConflict("document number already registered")
	}
	return domain.NewConflict("email already registered")
}
