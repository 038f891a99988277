package booking

import (
	"context"

	accountRepo "feastly/database/repository/account"
	availabilityRepo "feastly/database/repository/availability"
	bookingRepo "feastly/database/repository/booking"
	eventRepo "feastly/database/repository/event"
	spaceRepo "feastly/database/repository/space"
	"feastly/models"
)

// Service orchestrates the booking request lifecycle: submission, the
// approve/reject decision transaction, messaging, and the grouped history
// views.
type Service interface {
	CreateBookingRequest(ctx context.Context, input models.CreateBookingInput) (*models.BookingCreated, error)
	MakeDecision(ctx context.Context, bookingRequestID string, input models.DecisionInput) (*models.DecisionResult, error)
	SendMessage(ctx context.Context, bookingRequestID string, input models.SendMessageInput) (*models.BookingMessage, error)
	ListMessages(ctx context.Context, bookingRequestID string) ([]models.BookingMessage, error)
	GroupedByRestaurant(ctx context.Context, restaurantID string) (*models.GroupedBookings, error)
	GroupedBookingHistory(ctx context.Context, customerID string) (*models.GroupedBookings, error)
}

// DefaultBookingService implements Service.
type DefaultBookingService struct {
	BookingRepo bookingRepo.Repository
	BlockRepo   availabilityRepo.BlockRepository
	EventRepo   eventRepo.Repository
	SpaceRepo   spaceRepo.Repository
	AccountRepo accountRepo.Repository
}
