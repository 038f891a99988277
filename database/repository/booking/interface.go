// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"feastly/database"
	"feastly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotPending is returned by UpdateStatusIfPending when the request is no
// longer in the pending state (or does not exist); only one caller can win the
// pending -> terminal transition.
var ErrNotPending = errors.New("booking request is no longer pending")

// Repository persists booking requests and their message threads. Requests are
// never deleted.
type Repository interface {
	Create(ctx context.Context, req *models.BookingRequest) error
	FindByID(ctx context.Context, id string) (*models.BookingRequest, error)
	UpdateStatusIfPending(ctx context.Context, id, status, decisionNotes string) (*models.BookingRequest, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]models.BookingRequest, error)
	ListByCustomer(ctx context.Context, customerID string) ([]models.BookingRequest, error)
	CreateMessage(ctx context.Context, msg *models.BookingMessage) error
	ListMessages(ctx context.Context, bookingRequestID string) ([]models.BookingMessage, error)
}

type mongoBookingRepo struct {
	coll     *mongo.Collection
	msgsColl *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB booking request repository.
func NewMongoBookingRepo() Repository {
	db := database.MongoClient.Database(database.DBName())
	repo := &mongoBookingRepo{
		coll:     db.Collection("booking_requests"),
		msgsColl: db.Collection("booking_messages"),
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
