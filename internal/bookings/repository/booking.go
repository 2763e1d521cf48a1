package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	bookings_errors "frontdesk/internal/bookings/errors"
	"frontdesk/pkg/model"
)

// BookingRepository abstracts persistence for bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	FindByID(ctx context.Context, id string) (*model.Booking, error)
	FindByStatus(ctx context.Context, status string) ([]model.Booking, error)
	FindPendingBySender(ctx context.Context, sender string) (*model.Booking, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type mongoBookingRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewMongoBookingRepository(db *mongo.Database, timeout time.Duration) BookingRepository {
	return &mongoBookingRepository{
		collection: db.Collection("bookings"),
		timeout:    timeout,
	}
}

func (r *mongoBookingRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *mongoBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, booking)
	return err
}

func (r *mongoBookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var booking model.Booking
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, bookings_errors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *mongoBookingRepository) FindByStatus(ctx context.Context, status string) ([]model.Booking, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []model.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *mongoBookingRepository) FindPendingBySender(ctx context.Context, sender string) (*model.Booking, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	filter := bson.M{"sender": sender, "status": model.StatusPending}
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var booking model.Booking
	err := r.collection.FindOne(ctx, filter, opts).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, bookings_errors.ErrNoPendingBooking
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *mongoBookingRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return bookings_errors.ErrNotFound
	}
	return nil
}

func (r *mongoBookingRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.collection.CountDocuments(ctx, bson.M{"status": status})
}
