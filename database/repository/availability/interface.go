// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"feastly/database"
	"feastly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BlockRepository persists availability blocks and answers overlap queries.
// It is a raw persistence layer: callers must have already checked for
// conflicts before Create, and service-layer guards decide what may be deleted.
type BlockRepository interface {
	Create(ctx context.Context, block *models.AvailabilityBlock) error
	FindByID(ctx context.Context, id string) (*models.AvailabilityBlock, error)
	FindOverlappingBlocks(ctx context.Context, spaceID string, eventDate time.Time, startTime, endTime string) ([]models.AvailabilityBlock, error)
	ExistsForBooking(ctx context.Context, spaceID string, eventDate time.Time, startTime, endTime, reason string) (bool, error)
	GetBlockedSpaceIDs(ctx context.Context, eventDate time.Time, startTime, endTime string, bufferMinutes int) ([]string, error)
	ListByRestaurant(ctx context.Context, restaurantID string, eventDate *time.Time) ([]models.AvailabilityBlock, error)
	Delete(ctx context.Context, id string) error
}

type mongoBlockRepo struct {
	coll *mongo.Collection
}

// NewMongoBlockRepo constructs a new MongoDB BlockRepository.
func NewMongoBlockRepo() BlockRepository {
	db := database.MongoClient.Database(database.DBName())
	repo := &mongoBlockRepo{
		coll: db.Collection("availability_blocks"),
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
