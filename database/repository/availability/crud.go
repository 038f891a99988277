// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"feastly/models"
)

func (r *mongoBlockRepo) Create(ctx context.Context, block *models.AvailabilityBlock) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if block.ID == "" {
		block.ID = uuid.New().String()
	}
	if block.CreatedAt.IsZero() {
		block.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, block); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEventBlock
		}
		return fmt.Errorf("failed to insert availability block: %w", err)
	}
	return nil
}

func (r *mongoBlockRepo) FindByID(ctx context.Context, id string) (*models.AvailabilityBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var block models.AvailabilityBlock
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&block); err != nil {
		return nil, err
	}
	return &block, nil
}

// FindOverlappingBlocks returns all blocks on the same space and calendar day
// whose [startTime, endTime) interval overlaps the query interval. Intervals
// are half-open: a block ending exactly when the query starts does not
// conflict.
func (r *mongoBlockRepo) FindOverlappingBlocks(ctx context.Context, spaceID string, eventDate time.Time, startTime, endTime string) ([]models.AvailabilityBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	dayStart, dayEnd := dayRange(eventDate)
	filter := bson.M{
		"spaceId":   spaceID,
		"eventDate": bson.M{"$gte": dayStart, "$lte": dayEnd},
		// queryStart < blockEnd AND queryEnd > blockStart; "HH:MM" strings
		// compare correctly as text.
		"startTime": bson.M{"$lt": endTime},
		"endTime":   bson.M{"$gt": startTime},
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping blocks: %w", err)
	}
	defer cursor.Close(ctx)

	var blocks []models.AvailabilityBlock
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("failed to decode overlapping blocks: %w", err)
	}
	return blocks, nil
}

// ExistsForBooking is an exact-match existence check (not overlap), used to
// detect a previous write before retrying an approval.
func (r *mongoBlockRepo) ExistsForBooking(ctx context.Context, spaceID string, eventDate time.Time, startTime, endTime, reason string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	dayStart, dayEnd := dayRange(eventDate)
	filter := bson.M{
		"spaceId":   spaceID,
		"eventDate": bson.M{"$gte": dayStart, "$lte": dayEnd},
		"startTime": startTime,
		"endTime":   endTime,
		"reason":    reason,
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check block existence: %w", err)
	}
	return count > 0, nil
}

// GetBlockedSpaceIDs returns the ids of spaces that have any block overlapping
// the query window padded by bufferMinutes on both sides. Used by browse paths
// to pre-exclude busy spaces with turnover margin; the strict booking path
// uses FindOverlappingBlocks unpadded.
func (r *mongoBlockRepo) GetBlockedSpaceIDs(ctx context.Context, eventDate time.Time, startTime, endTime string, bufferMinutes int) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if bufferMinutes < 0 {
		bufferMinutes = 0
	}
	paddedStart := SubtractMinutes(startTime, bufferMinutes)
	paddedEnd := AddMinutes(endTime, bufferMinutes)

	dayStart, dayEnd := dayRange(eventDate)
	filter := bson.M{
		"eventDate": bson.M{"$gte": dayStart, "$lte": dayEnd},
		"startTime": bson.M{"$lt": paddedEnd},
		"endTime":   bson.M{"$gt": paddedStart},
	}

	raw, err := r.coll.Distinct(ctx, "spaceId", filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query blocked space ids: %w", err)
	}

	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *mongoBlockRepo) ListByRestaurant(ctx context.Context, restaurantID string, eventDate *time.Time) ([]models.AvailabilityBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"restaurantId": restaurantID}
	if eventDate != nil {
		dayStart, dayEnd := dayRange(*eventDate)
		filter["eventDate"] = bson.M{"$gte": dayStart, "$lte": dayEnd}
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list blocks for restaurant %s: %w", restaurantID, err)
	}
	defer cursor.Close(ctx)

	var blocks []models.AvailabilityBlock
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("failed to decode blocks: %w", err)
	}
	return blocks, nil
}

func (r *mongoBlockRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete block %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
