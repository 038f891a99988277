package event

import (
	"context"

	bookingRepo "feastly/database/repository/booking"
	eventRepo "feastly/database/repository/event"
	"feastly/models"
)

// Service manages the post-approval event record: spec updates while the event
// is still mutable, the completion trigger, and review attachment.
type Service interface {
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	UpdateSpecs(ctx context.Context, id string, input models.EventSpecsUpdate) (*models.Event, error)
	MarkCompleted(ctx context.Context, id string) (*models.Event, error)
	AddReview(ctx context.Context, eventID string, input models.ReviewInput) (*models.Review, error)
	ListReviews(ctx context.Context, eventID string) ([]models.Review, error)
}

// DefaultEventService implements Service.
type DefaultEventService struct {
	EventRepo   eventRepo.Repository
	BookingRepo bookingRepo.Repository
}
