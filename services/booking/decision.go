package booking

import (
	"context"
	"errors"
	"strings"

	availabilityRepo "feastly/database/repository/availability"
	bookingRepo "feastly/database/repository/booking"
	"feastly/models"
	"feastly/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SlotUnavailableCode is attached to the 409 raised when an approval loses the
// slot to a conflicting block created since submission.
const SlotUnavailableCode = "SLOT_UNAVAILABLE"

// MakeDecision resolves a pending request to approved or rejected. Decisions
// are single-shot: once a request leaves pending, no further decision is
// accepted.
func (s *DefaultBookingService) MakeDecision(ctx context.Context, bookingRequestID string, input models.DecisionInput) (*models.DecisionResult, error) {
	req, err := s.BookingRepo.FindByID(ctx, bookingRequestID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFound("booking request not found")
		}
		return nil, err
	}

	if input.RestaurantID == "" {
		return nil, utils.NewInvalidRequest("restaurantId is required")
	}
	if req.RestaurantID != input.RestaurantID {
		return nil, utils.NewForbidden("unauthorized to decide on this booking")
	}
	if req.Status != models.BookingStatusPending {
		return nil, utils.NewInvalidRequest("booking request is no longer pending")
	}

	switch strings.ToLower(input.Decision) {
	case models.DecisionReject:
		return s.rejectBooking(ctx, req, input.Notes)
	case models.DecisionApprove:
		return s.approveBooking(ctx, req, input.Notes)
	default:
		return nil, utils.NewInvalidRequest("decision must be \"approve\" or \"reject\"")
	}
}

// rejectBooking flips the status and stamps the decision. No side effects
// beyond the status fields.
func (s *DefaultBookingService) rejectBooking(ctx context.Context, req *models.BookingRequest, notes string) (*models.DecisionResult, error) {
	updated, err := s.BookingRepo.UpdateStatusIfPending(ctx, req.ID, models.BookingStatusRejected, notes)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotPending) {
			return nil, utils.NewInvalidRequest("booking request is no longer pending")
		}
		return nil, err
	}

	utils.GetLogger().Info("booking request rejected",
		zap.String("bookingRequestID", req.ID),
		zap.String("restaurantID", req.RestaurantID))

	return &models.DecisionResult{
		Status:     updated.Status,
		DecisionAt: *updated.DecisionAt,
	}, nil
}

// approveBooking is the critical transaction: re-check the calendar, guard
// against a previous partial approval, flip the status with a compare-and-swap,
// then create the event and the locking block. The CAS is the primary gate
// against concurrent approvals; the unique event-block index backs it up at
// the store.
func (s *DefaultBookingService) approveBooking(ctx context.Context, req *models.BookingRequest, notes string) (*models.DecisionResult, error) {
	logger := utils.GetLogger()

	// The slot may have been taken by another approval or a manual block since
	// the request was submitted.
	conflicts, err := s.BlockRepo.FindOverlappingBlocks(ctx, req.SpaceID, req.EventDate, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, utils.NewConflict("the requested slot is no longer available").
			WithCode(SlotUnavailableCode).
			WithDetails(models.ConflictViews(conflicts))
	}

	// Idempotency guards: a previous approval attempt may have written the
	// event or the lock before failing partway.
	existing, err := s.EventRepo.FindByBookingRequestID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.NewInvalidRequest("booking request already has an associated event")
	}
	locked, err := s.BlockRepo.ExistsForBooking(ctx, req.SpaceID, req.EventDate, req.StartTime, req.EndTime, models.BlockReasonEvent)
	if err != nil {
		return nil, err
	}
	if locked {
		return nil, utils.NewInvalidRequest("slot is already locked by an event block for this booking")
	}

	updated, err := s.BookingRepo.UpdateStatusIfPending(ctx, req.ID, models.BookingStatusApproved, notes)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotPending) {
			return nil, utils.NewInvalidRequest("booking request is no longer pending")
		}
		return nil, err
	}

	event := &models.Event{
		BookingRequestID: req.ID,
		FinalGuestCount:  req.GuestCount,
		SpecsStatus:      models.SpecsStatusDraft,
		Status:           models.EventStatusDraft,
	}
	if err := s.EventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	block := &models.AvailabilityBlock{
		RestaurantID: req.RestaurantID,
		SpaceID:      req.SpaceID,
		EventDate:    req.EventDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Reason:       models.BlockReasonEvent,
	}
	if err := s.BlockRepo.Create(ctx, block); err != nil {
		if errors.Is(err, availabilityRepo.ErrDuplicateEventBlock) {
			// A racing approval won the unique index; surface it as the same
			// conflict the overlap re-check would have reported.
			return nil, utils.NewConflict("the requested slot is no longer available").
				WithCode(SlotUnavailableCode)
		}
		return nil, err
	}

	logger.Info("booking request approved",
		zap.String("bookingRequestID", req.ID),
		zap.String("eventID", event.ID),
		zap.String("blockID", block.ID))

	return &models.DecisionResult{
		Status:     updated.Status,
		DecisionAt: *updated.DecisionAt,
		EventID:    event.ID,
	}, nil
}
