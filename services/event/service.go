package event

import (
	"context"
	"errors"

	eventRepo "feastly/database/repository/event"
	"feastly/models"
	"feastly/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func (s *DefaultEventService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	ev, err := s.EventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("event not found")
		}
		return nil, err
	}
	return ev, nil
}

// UpdateSpecs applies a partial spec update. Specs are a one-way finalize:
// once specsStatus is final or the event is completed, no further changes are
// accepted through this API.
func (s *DefaultEventService) UpdateSpecs(ctx context.Context, id string, input models.EventSpecsUpdate) (*models.Event, error) {
	ev, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	if ev.Status == models.EventStatusCompleted {
		return nil, utils.NewInvalidRequest("event is already completed")
	}
	if ev.SpecsStatus == models.SpecsStatusFinal {
		return nil, utils.NewInvalidRequest("event specs are already finalized")
	}

	if input.FinalGuestCount != nil {
		if *input.FinalGuestCount <= 0 {
			return nil, utils.NewInvalidRequest("finalGuestCount must be a positive integer")
		}
		ev.FinalGuestCount = *input.FinalGuestCount
	}
	if input.MenuSelection != nil {
		ev.MenuSelection = *input.MenuSelection
	}
	if input.SetupNotes != nil {
		ev.SetupNotes = *input.SetupNotes
	}
	if input.Timeline != nil {
		ev.Timeline = *input.Timeline
	}
	if input.ProductionRequirements != nil {
		ev.ProductionRequirements = *input.ProductionRequirements
	}
	if input.FnbDetails != nil {
		ev.FnbDetails = *input.FnbDetails
	}

	switch input.SpecsStatus {
	case "", models.SpecsStatusDraft:
		// no status change
	case models.SpecsStatusFinal:
		ev.SpecsStatus = models.SpecsStatusFinal
		ev.Status = models.EventStatusFinal
	default:
		return nil, utils.NewInvalidRequest("specsStatus must be \"draft\" or \"final\"")
	}

	if err := s.EventRepo.UpdateSpecs(ctx, ev); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("event not found")
		}
		return nil, err
	}
	return ev, nil
}

// MarkCompleted transitions an event to its terminal state. The call comes
// from an external trigger once the event date has passed; completion unlocks
// reviews and freezes specs.
func (s *DefaultEventService) MarkCompleted(ctx context.Context, id string) (*models.Event, error) {
	ev, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	if ev.Status == models.EventStatusCompleted {
		return nil, utils.NewInvalidRequest("event is already completed")
	}

	if err := s.EventRepo.MarkCompleted(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("event not found")
		}
		return nil, err
	}

	utils.GetLogger().Info("event marked completed", zap.String("eventID", id))
	return s.GetEvent(ctx, id)
}

// AddReview attaches a customer review to a completed event. Only the customer
// who made the booking may review it, and only once.
func (s *DefaultEventService) AddReview(ctx context.Context, eventID string, input models.ReviewInput) (*models.Review, error) {
	if input.CustomerID == "" {
		return nil, utils.NewInvalidRequest("customerId is required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, utils.NewInvalidRequest("rating must be between 1 and 5")
	}

	ev, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if ev.Status != models.EventStatusCompleted {
		return nil, utils.NewInvalidRequest("reviews may only be added once the event is completed")
	}

	req, err := s.BookingRepo.FindByID(ctx, ev.BookingRequestID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("booking request not found")
		}
		return nil, err
	}
	if req.CustomerID != input.CustomerID {
		return nil, utils.NewForbidden("only the booking customer may review this event")
	}

	rv := &models.Review{
		EventID:    eventID,
		CustomerID: input.CustomerID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}
	if err := s.EventRepo.CreateReview(ctx, rv); err != nil {
		if errors.Is(err, eventRepo.ErrDuplicateReview) {
			return nil, utils.NewConflict("a review for this event already exists")
		}
		return nil, err
	}
	return rv, nil
}

func (s *DefaultEventService) ListReviews(ctx context.Context, eventID string) ([]models.Review, error) {
	if _, err := s.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}
	return s.EventRepo.ListReviews(ctx, eventID)
}
