// File: database/repository/event/indexes.go
package eventRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates indexes for the event and review collections. The
// unique bookingRequestId index enforces exactly one event per approved
// request even if two approvals race past the service-level probe.
func (r *mongoEventRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	eventIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "bookingRequestId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, eventIndexes); err != nil {
		return fmt.Errorf("failed to create event indexes: %w", err)
	}

	reviewIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys:    bson.D{{Key: "eventId", Value: 1}, {Key: "customerId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := r.reviewsColl.Indexes().CreateMany(ctx, reviewIndexes); err != nil {
		return fmt.Errorf("failed to create review indexes: %w", err)
	}
	return nil
}
