// File: database/repository/event/interface.go
package eventRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"feastly/database"
	"feastly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateReview is returned when the unique (eventId, customerId) index
// rejects a second review from the same customer.
var ErrDuplicateReview = errors.New("review already exists for this event and customer")

// Repository persists events and their reviews.
type Repository interface {
	Create(ctx context.Context, ev *models.Event) error
	FindByID(ctx context.Context, id string) (*models.Event, error)
	// FindByBookingRequestID returns (nil, nil) when no event exists; it is
	// the idempotency probe for the approval transaction.
	FindByBookingRequestID(ctx context.Context, bookingRequestID string) (*models.Event, error)
	UpdateSpecs(ctx context.Context, ev *models.Event) error
	MarkCompleted(ctx context.Context, id string) error
	CreateReview(ctx context.Context, rv *models.Review) error
	ListReviews(ctx context.Context, eventID string) ([]models.Review, error)
}

type mongoEventRepo struct {
	coll        *mongo.Collection
	reviewsColl *mongo.Collection
}

// NewMongoEventRepo constructs a new MongoDB event repository.
func NewMongoEventRepo() Repository {
	db := database.MongoClient.Database(database.DBName())
	repo := &mongoEventRepo{
		coll:        db.Collection("events"),
		reviewsColl: db.Collection("reviews"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
