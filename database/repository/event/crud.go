// File: database/repository/event/crud.go
package eventRepo

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

func (r *mongoEventRepo) Create(ctx context.Context, ev *models.Event) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	now := time.Now()
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = now
	}
	ev.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, ev); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("event already exists for booking request %s: %w", ev.BookingRequestID, err)
		}
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

func (r *mongoEventRepo) FindByID(ctx context.Context, id string) (*models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var ev models.Event
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *mongoEventRepo) FindByBookingRequestID(ctx context.Context, bookingRequestID string) (*models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var ev models.Event
	err := r.coll.FindOne(ctx, bson.M{"bookingRequestId": bookingRequestID}).Decode(&ev)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find event for booking request %s: %w", bookingRequestID, err)
	}
	return &ev, nil
}

func (r *mongoEventRepo) UpdateSpecs(ctx context.Context, ev *models.Event) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"finalGuestCount":        ev.FinalGuestCount,
		"menuSelection":          ev.MenuSelection,
		"setupNotes":             ev.SetupNotes,
		"timeline":               ev.Timeline,
		"productionRequirements": ev.ProductionRequirements,
		"fnbDetails":             ev.FnbDetails,
		"specsStatus":            ev.SpecsStatus,
		"status":                 ev.Status,
		"updatedAt":              time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": ev.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update event specs: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoEventRepo) MarkCompleted(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	update := bson.M{"$set": bson.M{
		"status":      models.EventStatusCompleted,
		"completedAt": now,
		"updatedAt":   now,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to mark event %s completed: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoEventRepo) CreateReview(ctx context.Context, rv *models.Review) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if rv.ID == "" {
		rv.ID = uuid.New().String()
	}
	if rv.CreatedAt.IsZero() {
		rv.CreatedAt = time.Now()
	}
	if _, err := r.reviewsColl.InsertOne(ctx, rv); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateReview
		}
		return fmt.Errorf("failed to insert review: %w", err)
	}
	return nil
}

func (r *mongoEventRepo) ListReviews(ctx context.Context, eventID string) ([]models.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.reviewsColl.Find(ctx, bson.M{"eventId": eventID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}
