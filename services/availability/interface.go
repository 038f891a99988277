package availability

import (
	"context"
	"time"

	availabilityRepo "feastly/database/repository/availability"
	spaceRepo "feastly/database/repository/space"
	"feastly/models"

	"github.com/go-redis/redis/v8"
)

// Service answers "can this slot be booked?" and manages manual blocks.
// Availability is determined solely from AvailabilityBlock, never by scanning
// booking requests, so the conflict source-of-truth stays singular.
type Service interface {
	CheckAvailability(ctx context.Context, query models.AvailabilityQuery) (*models.AvailabilityResult, error)
	CreateBlock(ctx context.Context, input models.CreateBlockInput) (*models.AvailabilityBlock, error)
	DeleteBlock(ctx context.Context, blockID, restaurantID string) error
	ListBlocks(ctx context.Context, restaurantID string, eventDate *time.Time) ([]models.AvailabilityBlock, error)
	BlockedSpaceIDs(ctx context.Context, eventDate time.Time, startTime, endTime string, bufferMinutes int) ([]string, error)
}

// DefaultAvailabilityService implements Service. Cache, when set, holds space
// documents with a short TTL; calendar blocks are never cached, since a stale
// busy-slot view directly causes double-booking.
type DefaultAvailabilityService struct {
	BlockRepo availabilityRepo.BlockRepository
	SpaceRepo spaceRepo.Repository
	Cache     *redis.Client
}
