// File: database/repository/booking/crud.go
package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"feastly/models"
)

func (r *mongoBookingRepo) Create(ctx context.Context, req *models.BookingRequest) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, req); err != nil {
		return fmt.Errorf("failed to insert booking request: %w", err)
	}
	return nil
}

func (r *mongoBookingRepo) FindByID(ctx context.Context, id string) (*models.BookingRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var req models.BookingRequest
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// UpdateStatusIfPending transitions a request out of pending with a
// compare-and-swap on the status field, stamping decisionAt. Two concurrent
// decisions cannot both match the pending filter, so only one wins; the loser
// gets ErrNotPending.
func (r *mongoBookingRepo) UpdateStatusIfPending(ctx context.Context, id, status, decisionNotes string) (*models.BookingRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": models.BookingStatusPending}
	update := bson.M{"$set": bson.M{
		"status":        status,
		"decisionNotes": decisionNotes,
		"decisionAt":    time.Now(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.BookingRequest
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotPending
		}
		return nil, fmt.Errorf("failed to update booking request status: %w", err)
	}
	return &updated, nil
}

func (r *mongoBookingRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]models.BookingRequest, error) {
	return r.list(ctx, bson.M{"restaurantId": restaurantID})
}

func (r *mongoBookingRepo) ListByCustomer(ctx context.Context, customerID string) ([]models.BookingRequest, error) {
	return r.list(ctx, bson.M{"customerId": customerID})
}

func (r *mongoBookingRepo) list(ctx context.Context, filter bson.M) ([]models.BookingRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "eventDate", Value: 1}, {Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list booking requests: %w", err)
	}
	defer cursor.Close(ctx)

	var reqs []models.BookingRequest
	if err := cursor.All(ctx, &reqs); err != nil {
		return nil, fmt.Errorf("failed to decode booking requests: %w", err)
	}
	return reqs, nil
}

func (r *mongoBookingRepo) CreateMessage(ctx context.Context, msg *models.BookingMessage) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	if _, err := r.msgsColl.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to insert booking message: %w", err)
	}
	return nil
}

func (r *mongoBookingRepo) ListMessages(ctx context.Context, bookingRequestID string) ([]models.BookingMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.msgsColl.Find(ctx, bson.M{"bookingRequestId": bookingRequestID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list booking messages: %w", err)
	}
	defer cursor.Close(ctx)

	var msgs []models.BookingMessage
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, fmt.Errorf("failed to decode booking messages: %w", err)
	}
	return msgs, nil
}
