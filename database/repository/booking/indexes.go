// File: database/repository/booking/indexes.go
package bookingRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *mongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "restaurantId", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "customerId", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "spaceId", Value: 1}, {Key: "eventDate", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}

	msgIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "bookingRequestId", Value: 1}, {Key: "createdAt", Value: 1}}},
	}
	if _, err := r.msgsColl.Indexes().CreateMany(ctx, msgIndexes); err != nil {
		return fmt.Errorf("failed to create message indexes: %w", err)
	}
	return nil
}
