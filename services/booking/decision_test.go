package booking_test

import (
	"context"
	"testing"
	"time"

	"feastly/models"
	"feastly/services/availability"
	"feastly/services/booking"
	"feastly/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPending(t *testing.T, env *testEnv) *models.BookingCreated {
	t.Helper()
	created, err := env.svc.CreateBookingRequest(context.Background(), validInput())
	require.NoError(t, err)
	return created
}

func TestMakeDecision_Reject(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	created := createPending(t, env)

	result, err := env.svc.MakeDecision(ctx, created.BookingRequestID, models.DecisionInput{
		RestaurantID: "rest-1",
		Decision:     "reject",
		Notes:        "fully booked that week",
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusRejected, result.Status)
	assert.Empty(t, result.EventID)
	assert.False(t, result.DecisionAt.IsZero())

	req, err := env.bookings.FindByID(ctx, created.BookingRequestID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusRejected, req.Status)
	assert.Equal(t, "fully booked that week", req.DecisionNotes)

	// Rejection has no calendar side effects.
	assert.Empty(t, env.blocks.blocks)
	assert.Empty(t, env.events.events)
}

func TestMakeDecision_Approve(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	created := createPending(t, env)

	result, err := env.svc.MakeDecision(ctx, created.BookingRequestID, models.DecisionInput{
		RestaurantID: "rest-1",
		Decision:     "approve",
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusApproved, result.Status)
	require.NotEmpty(t, result.EventID)

	// Exactly one draft event tied back to the request.
	ev, err := env.events.FindByID(ctx, result.EventID)
	require.NoError(t, err)
	assert.Equal(t, created.BookingRequestID, ev.BookingRequestID)
	assert.Equal(t, models.EventStatusDraft, ev.Status)
	assert.Equal(t, models.SpecsStatusDraft, ev.SpecsStatus)
	assert.Equal(t, 25, ev.FinalGuestCount)

	// Exactly one locking block covering the booked slot.
	require.Equal(t, 1, env.blocks.countByReason(models.BlockReasonEvent))
	block := env.blocks.blocks[0]
	assert.Equal(t, "space-1", block.SpaceID)
	assert.Equal(t, "18:00", block.StartTime)
	assert.Equal(t, "22:00", block.EndTime)
}

func TestMakeDecision_NotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.MakeDecision(context.Background(), "missing", models.DecisionInput{
		RestaurantID: "rest-1",
		Decision:     "approve",
	})
	apiErr, ok := utils.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.StatusCode)
}

func TestMakeDecision_Ownership(t *testing.T) {
	env := newTestEnv()
	created := createPending(t, env)

	for _, decision := range []string{"approve", "reject"} {
		_, err := env.svc.MakeDecision(context.Background(), created.BookingRequestID, models.DecisionInput{
			RestaurantID: "rest-2",
			Decision:     decision,
		})
		apiErr, ok := utils.AsAPIError(err)
		require.True(t, ok)
		assert.Equal(t, 403, apiErr.StatusCode)
	}

	// The ownership rejection left the request untouched.
	req, err := env.bookings.FindByID(context.Background(), created.BookingRequestID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, req.Status)
}

func TestMakeDecision_InvalidDecision(t *testing.T) {
	env := newTestEnv()
	created := createPending(t, env)

	_, err := env.svc.MakeDecision(context.Background(), created.BookingRequestID, models.DecisionInput{
		RestaurantID: "rest-1",
		Decision:     "maybe",
	})
	apiErr, ok := utils.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 400, apiErr.StatusCode)
}

func TestMakeDecision_Terminal(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	created := createPending(t, env)

	_, err := env.svc.MakeDecision(ctx, created.BookingRequestID, models.DecisionInput{
		RestaurantID: "rest-1",
		Decision:     "approve",
	})
	require.NoError(t, err)

	// A second decision of either kind is refused.
	for _, decision := range []string{"approve", "reject"} {
		_, err := env.svc.MakeDecision(ctx, created.BookingRequestID, models.DecisionInput{
			RestaurantID: "rest-1",
			Decision:     decision,
		})
		apiErr, ok := utils.AsAPIError(err)
		require.True(t, ok)
		assert.Equal(t, 400, apiErr.StatusCode)
	}

	// No duplicated side effects either.
	assert.Len(t, env.events.events, 1)
	assert.Equal(t, 1, env.blocks.countByReason(models.BlockReasonEvent))
}

func TestMakeDecision_ApproveConflict(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	created := createPending(t, env)

	// A maintenance block landed on part of the slot after submission.
	require.NoError(t, env.blocks.Create(ctx, &models.AvailabilityBlock{
		RestaurantID: "rest-1",
		SpaceID:      "space-1",
		EventDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime:    "21:00",
		EndTime:      "23:00",
		Reason:       models.BlockReasonMaintenance,
	}))

	_, err := env.svc.MakeDecision(ctx, created.BookingRequestID, models.DecisionInput{
		RestaurantID: "rest-1",
		Decision:     "approve",
	})
	apiErr, ok := utils.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 409, apiErr.StatusCode)
	assert.Equal(t, booking.SlotUnavailableCode, apiErr.Code)
	assert.NotNil(t, apiErr.Details)

	// The failed approval left the request pending and wrote nothing.
	req, err := env.bookings.FindByID(ctx, created.BookingRequestID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, req.Status)
	assert.Empty(t, env.events.events)
	assert.Equal(t, 0, env.blocks.countByReason(models.BlockReasonEvent))
}

func TestMakeDecision_CompetingRequests(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	first := createPending(t, env)

	// A second customer wants an overlapping slot in the same space.
	env.accounts.customers["cust-2"] = &models.Customer{ID: "cust-2", UserID: "user-c2", FullName: "Bea"}
	second := validInput()
	second.CustomerID = "cust-2"
	second.StartTime = "20:00"
	second.EndTime = "23:00"
	competing, err := env.svc.CreateBookingRequest(ctx, second)
	require.NoError(t, err)

	_, err = env.svc.MakeDecision(ctx, first.BookingRequestID, models.DecisionInput{
		RestaurantID: "rest-1",
		Decision:     "approve",
	})
	require.NoError(t, err)

	// Approving the loser now trips the calendar re-check.
	_, err = env.svc.MakeDecision(ctx, competing.BookingRequestID, models.DecisionInput{
		RestaurantID: "rest-1",
		Decision:     "approve",
	})
	apiErr, ok := utils.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 409, apiErr.StatusCode)
	assert.Equal(t, booking.SlotUnavailableCode, apiErr.Code)

	// Rejecting the loser still works.
	result, err := env.svc.MakeDecision(ctx, competing.BookingRequestID, models.DecisionInput{
		RestaurantID: "rest-1",
		Decision:     "reject",
		Notes:        "slot went to an earlier request",
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusRejected, result.Status)
}

// An approved booking's lock is visible through the availability surface: the
// booked slot reads as a time conflict while a back-to-back slot stays open.
func TestApprovalLocksCalendar(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	created := createPending(t, env)

	_, err := env.svc.MakeDecision(ctx, created.BookingRequestID, models.DecisionInput{
		RestaurantID: "rest-1",
		Decision:     "approve",
	})
	require.NoError(t, err)

	availSvc := &availability.DefaultAvailabilityService{
		BlockRepo: env.blocks,
		SpaceRepo: env.spaces,
	}

	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	result, err := availSvc.CheckAvailability(ctx, models.AvailabilityQuery{
		RestaurantID: "rest-1",
		SpaceID:      "space-1",
		EventDate:    day,
		StartTime:    "19:00",
		EndTime:      "23:00",
		GuestCount:   25,
	})
	require.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, models.UnavailableReasonTimeConflict, result.Reason)
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, models.BlockReasonEvent, result.Conflicts[0].Reason)

	// Half-open intervals: a slot starting exactly at the booking's end is free.
	result, err = availSvc.CheckAvailability(ctx, models.AvailabilityQuery{
		RestaurantID: "rest-1",
		SpaceID:      "space-1",
		EventDate:    day,
		StartTime:    "22:00",
		EndTime:      "23:30",
		GuestCount:   25,
	})
	require.NoError(t, err)
	assert.True(t, result.Available)
}
