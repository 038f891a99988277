// File: database/repository/availability/indexes.go
package availabilityRepo

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateEventBlock is returned when the unique event-block index rejects
// an insert: another approval already locked the exact same slot.
var ErrDuplicateEventBlock = errors.New("an event block already exists for this slot")

// ensureIndexes creates indexes for the block collection. The unique partial
// index on event-reason blocks makes the second of two racing approvals fail
// its insert, closing the check-then-act window left by the overlap re-check.
func (r *mongoBlockRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "spaceId", Value: 1},
				{Key: "eventDate", Value: 1},
				{Key: "startTime", Value: 1},
				{Key: "endTime", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"reason": "event"}),
		},
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "spaceId", Value: 1}, {Key: "eventDate", Value: 1}}},
		{Keys: bson.D{{Key: "restaurantId", Value: 1}, {Key: "eventDate", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
