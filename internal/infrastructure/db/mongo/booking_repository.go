package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/coworkia/coworking-api/internal/core/domain"
)

const bookingCollection = "bookings"

type BookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{coll: db.Collection(bookingCollection)}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return domain.NewInternal(fmt.Errorf("insert booking: %w", err))
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewNotFound("booking not found")
		}
		return nil, domain.NewInternal(fmt.Errorf("find booking: %w", err))
	}
	return &b, nil
}

func (r *BookingRepository) List(ctx context.Context, userID string) ([]*domain.Booking, error) {
	filter := bson.M{}
	if userID != "" {
		filter["user_id"] = userID
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, domain.NewInternal(fmt.Errorf("list bookings: %w", err))
	}
	defer cursor.Close(ctx)

	var bookings []*domain.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, domain.NewInternal(fmt.Errorf("decode bookings: %w", err))
	}
	return bookings, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": b.ID}, b)
	if err != nil {
		return domain.NewInternal(fmt.Errorf("update booking: %w", err))
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFound("booking not found")
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return domain.NewInternal(fmt.Errorf("delete booking: %w", err))
	}
	if res.DeletedCount == 0 {
		return domain.NewNotFound("booking not found")
	}
	return nil
}
