package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	availabilityRepo "feastly/database/repository/availability"
	"feastly/models"
	"feastly/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// CreateBookingRequest validates and persists a new pending request. A request
// must carry at least one price signal (bidPrice or acceptMinSpend) for the
// restaurant to evaluate; capacity and style are gated against the space
// before anything is written.
func (s *DefaultBookingService) CreateBookingRequest(ctx context.Context, input models.CreateBookingInput) (*models.BookingCreated, error) {
	logger := utils.GetLogger()

	if input.CustomerID == "" {
		return nil, utils.NewInvalidRequest("customerId is required")
	}
	if input.BidPrice == nil && input.AcceptMinSpend == nil {
		return nil, utils.NewInvalidRequest("at least one of bidPrice or acceptMinSpend is required")
	}
	if input.EventDate.IsZero() {
		return nil, utils.NewInvalidRequest("eventDate is required")
	}
	if !availabilityRepo.ValidClock(input.StartTime) || !availabilityRepo.ValidClock(input.EndTime) {
		return nil, utils.NewInvalidRequest("startTime and endTime must be \"HH:MM\" clock times")
	}
	if input.StartTime >= input.EndTime {
		return nil, utils.NewInvalidRequest("startTime must be before endTime")
	}
	if input.GuestCount <= 0 {
		return nil, utils.NewInvalidRequest("guestCount must be a positive integer")
	}

	customer, err := s.AccountRepo.GetCustomerByID(ctx, input.CustomerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("customer not found")
		}
		return nil, err
	}

	space, err := s.SpaceRepo.FindByID(ctx, input.SpaceID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("space not found")
		}
		return nil, err
	}
	if space.RestaurantID != input.RestaurantID {
		return nil, utils.NewInvalidRequest("space does not belong to this restaurant")
	}

	if input.GuestCount < space.MinCapacity || input.GuestCount > space.MaxCapacity {
		return nil, utils.NewInvalidRequest(fmt.Sprintf(
			"guest count %d is outside the space capacity of %d-%d",
			input.GuestCount, space.MinCapacity, space.MaxCapacity))
	}
	if !space.AllowsStyle(input.EventStyle) {
		return nil, utils.NewInvalidRequest(fmt.Sprintf(
			"event style %q is not offered for this space; allowed: %s",
			input.EventStyle, strings.Join(space.AllowedEventStyles, ", ")))
	}

	now := time.Now()
	req := &models.BookingRequest{
		CustomerID:     input.CustomerID,
		RestaurantID:   input.RestaurantID,
		SpaceID:        input.SpaceID,
		EventDate:      input.EventDate,
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
		GuestCount:     input.GuestCount,
		EventStyle:     input.EventStyle,
		MessageToHost:  input.MessageToHost,
		BidPrice:       input.BidPrice,
		AcceptMinSpend: input.AcceptMinSpend,
		Currency:       input.Currency,
		Status:         models.BookingStatusPending,
		ExpiresAt:      now.Add(models.BookingRequestExpiry),
		CreatedAt:      now,
	}
	if err := s.BookingRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	if input.MessageToHost != "" {
		msg := &models.BookingMessage{
			BookingRequestID: req.ID,
			SenderUserID:     customer.UserID,
			SenderRole:       "customer",
			Body:             input.MessageToHost,
		}
		if err := s.BookingRepo.CreateMessage(ctx, msg); err != nil {
			// The request itself is already recorded; losing the intro message
			// is not worth failing the submission over.
			logger.Warn("failed to record initial booking message",
				zap.String("bookingRequestID", req.ID), zap.Error(err))
		}
	}

	logger.Info("booking request created",
		zap.String("bookingRequestID", req.ID),
		zap.String("spaceID", req.SpaceID),
		zap.String("customerID", req.CustomerID))

	return &models.BookingCreated{
		BookingRequestID: req.ID,
		Status:           req.Status,
		ExpiresAt:        req.ExpiresAt,
	}, nil
}
