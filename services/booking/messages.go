package booking

import (
	"context"
	"errors"

	"feastly/models"
	"feastly/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// SendMessage posts a message on the booking's thread. The sender's underlying
// user id is resolved from whichever side is specified, independent of who is
// authenticated: either party may post once the booking exists.
func (s *DefaultBookingService) SendMessage(ctx context.Context, bookingRequestID string, input models.SendMessageInput) (*models.BookingMessage, error) {
	if input.Body == "" {
		return nil, utils.NewInvalidRequest("message body is required")
	}

	req, err := s.BookingRepo.FindByID(ctx, bookingRequestID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("booking request not found")
		}
		return nil, err
	}

	var senderUserID string
	switch input.Sender {
	case "customer":
		customer, err := s.AccountRepo.GetCustomerByID(ctx, req.CustomerID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, utils.NewNotFound("customer not found")
			}
			return nil, err
		}
		senderUserID = customer.UserID
	case "restaurant":
		restaurant, err := s.AccountRepo.GetRestaurantByID(ctx, req.RestaurantID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, utils.NewNotFound("restaurant not found")
			}
			return nil, err
		}
		senderUserID = restaurant.OwnerUserID
	default:
		return nil, utils.NewInvalidRequest("sender must be \"customer\" or \"restaurant\"")
	}

	msg := &models.BookingMessage{
		BookingRequestID: req.ID,
		SenderUserID:     senderUserID,
		SenderRole:       input.Sender,
		Body:             input.Body,
	}
	if err := s.BookingRepo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// ListMessages returns the booking's thread in chronological order.
func (s *DefaultBookingService) ListMessages(ctx context.Context, bookingRequestID string) ([]models.BookingMessage, error) {
	if _, err := s.BookingRepo.FindByID(ctx, bookingRequestID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("booking request not found")
		}
		return nil, err
	}
	return s.BookingRepo.ListMessages(ctx, bookingRequestID)
}
