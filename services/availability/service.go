package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	availabilityRepo "feastly/database/repository/availability"
	"feastly/models"
	"feastly/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const spaceCacheTTL = 5 * time.Minute

// CheckAvailability validates a requested slot against the space's capacity
// and existing blocks. Capacity and time-conflict failures are expected
// negative outcomes returned in the result, not errors.
func (s *DefaultAvailabilityService) CheckAvailability(ctx context.Context, query models.AvailabilityQuery) (*models.AvailabilityResult, error) {
	space, err := s.loadSpace(ctx, query.SpaceID)
	if err != nil {
		return nil, err
	}
	if space.RestaurantID != query.RestaurantID {
		return nil, utils.NewInvalidRequest("space does not belong to this restaurant")
	}

	// Capacity short-circuits before the block query; when both would fail the
	// reported reason must be "capacity".
	if query.GuestCount < space.MinCapacity || query.GuestCount > space.MaxCapacity {
		return &models.AvailabilityResult{
			Available: false,
			Reason:    models.UnavailableReasonCapacity,
			Message: fmt.Sprintf("guest count %d is outside the space capacity of %d-%d",
				query.GuestCount, space.MinCapacity, space.MaxCapacity),
			Space: space.Summary(),
		}, nil
	}

	blocks, err := s.BlockRepo.FindOverlappingBlocks(ctx, query.SpaceID, query.EventDate, query.StartTime, query.EndTime)
	if err != nil {
		return nil, err
	}
	if len(blocks) > 0 {
		return &models.AvailabilityResult{
			Available: false,
			Reason:    models.UnavailableReasonTimeConflict,
			Message:   "the requested time overlaps an existing reservation or hold",
			Conflicts: models.ConflictViews(blocks),
			Space:     space.Summary(),
		}, nil
	}

	return &models.AvailabilityResult{
		Available: true,
		Space:     space.Summary(),
	}, nil
}

// CreateBlock records a manual hold or maintenance block after re-checking
// for overlap. Event blocks can only be created by the approval transaction.
func (s *DefaultAvailabilityService) CreateBlock(ctx context.Context, input models.CreateBlockInput) (*models.AvailabilityBlock, error) {
	logger := utils.GetLogger()

	if input.Reason == "" {
		input.Reason = models.BlockReasonHold
	}
	if input.Reason != models.BlockReasonHold && input.Reason != models.BlockReasonMaintenance {
		return nil, utils.NewInvalidRequest("reason must be \"hold\" or \"maintenance\"")
	}
	if err := validateTimeRange(input.StartTime, input.EndTime); err != nil {
		return nil, err
	}
	if input.EventDate.IsZero() {
		return nil, utils.NewInvalidRequest("eventDate is required")
	}

	space, err := s.loadSpace(ctx, input.SpaceID)
	if err != nil {
		return nil, err
	}
	if space.RestaurantID != input.RestaurantID {
		return nil, utils.NewInvalidRequest("space does not belong to this restaurant")
	}

	conflicts, err := s.BlockRepo.FindOverlappingBlocks(ctx, input.SpaceID, input.EventDate, input.StartTime, input.EndTime)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, utils.NewConflict("the requested time overlaps an existing block").
			WithDetails(models.ConflictViews(conflicts))
	}

	block := &models.AvailabilityBlock{
		RestaurantID: input.RestaurantID,
		SpaceID:      input.SpaceID,
		EventDate:    input.EventDate,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		Reason:       input.Reason,
	}
	if err := s.BlockRepo.Create(ctx, block); err != nil {
		return nil, err
	}

	logger.Info("manual availability block created",
		zap.String("blockID", block.ID),
		zap.String("spaceID", block.SpaceID),
		zap.String("reason", block.Reason))
	return block, nil
}

// DeleteBlock removes a manual block. Event blocks are immutable: removing one
// would leave an approved booking with no calendar lock, so the only way to
// free that slot is to cancel the underlying booking.
func (s *DefaultAvailabilityService) DeleteBlock(ctx context.Context, blockID, restaurantID string) error {
	block, err := s.BlockRepo.FindByID(ctx, blockID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return utils.NewNotFound("availability block not found")
		}
		return err
	}
	if block.RestaurantID != restaurantID {
		return utils.NewForbidden("block belongs to another restaurant")
	}
	if block.Reason == models.BlockReasonEvent {
		return utils.NewInvalidRequest("event blocks cannot be deleted; cancel the booking instead")
	}
	return s.BlockRepo.Delete(ctx, blockID)
}

func (s *DefaultAvailabilityService) ListBlocks(ctx context.Context, restaurantID string, eventDate *time.Time) ([]models.AvailabilityBlock, error) {
	return s.BlockRepo.ListByRestaurant(ctx, restaurantID, eventDate)
}

// BlockedSpaceIDs pads the query window by bufferMinutes (default 30) and
// returns ids of spaces with any overlapping block, for browse pre-exclusion.
func (s *DefaultAvailabilityService) BlockedSpaceIDs(ctx context.Context, eventDate time.Time, startTime, endTime string, bufferMinutes int) ([]string, error) {
	if err := validateTimeRange(startTime, endTime); err != nil {
		return nil, err
	}
	if bufferMinutes <= 0 {
		bufferMinutes = models.DefaultSearchBufferMinutes
	}
	return s.BlockRepo.GetBlockedSpaceIDs(ctx, eventDate, startTime, endTime, bufferMinutes)
}

// loadSpace fetches a space, consulting the short-TTL cache first.
func (s *DefaultAvailabilityService) loadSpace(ctx context.Context, spaceID string) (*models.Space, error) {
	cacheKey := "space:" + spaceID
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var space models.Space
			if err := json.Unmarshal([]byte(data), &space); err == nil {
				return &space, nil
			}
		}
	}

	space, err := s.SpaceRepo.FindByID(ctx, spaceID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("space not found")
		}
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(space); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, data, spaceCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache space", zap.String("spaceID", spaceID), zap.Error(err))
			}
		}
	}
	return space, nil
}

func validateTimeRange(startTime, endTime string) error {
	if !availabilityRepo.ValidClock(startTime) || !availabilityRepo.ValidClock(endTime) {
		return utils.NewInvalidRequest("startTime and endTime must be \"HH:MM\" clock times")
	}
	if startTime >= endTime {
		return utils.NewInvalidRequest("startTime must be before endTime")
	}
	return nil
}
