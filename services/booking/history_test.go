package booking_test

import (
	"context"
	"testing"
	"time"

	"feastly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupedBookings(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	seed := func(id, status string, eventDate time.Time) {
		require.NoError(t, env.bookings.Create(ctx, &models.BookingRequest{
			ID:           id,
			CustomerID:   "cust-1",
			RestaurantID: "rest-1",
			SpaceID:      "space-1",
			EventDate:    eventDate,
			StartTime:    "18:00",
			EndTime:      "22:00",
			Status:       status,
		}))
	}

	seed("pending-future", models.BookingStatusPending, today.AddDate(0, 0, 10))
	seed("pending-past", models.BookingStatusPending, today.AddDate(0, 0, -10))
	seed("approved-today", models.BookingStatusApproved, today)
	seed("approved-future", models.BookingStatusApproved, today.AddDate(0, 0, 3))
	seed("approved-past", models.BookingStatusApproved, today.AddDate(0, 0, -3))
	seed("rejected", models.BookingStatusRejected, today.AddDate(0, 0, 5))
	seed("expired", models.BookingStatusExpired, today.AddDate(0, 0, 5))

	ids := func(reqs []models.BookingRequest) []string {
		out := make([]string, 0, len(reqs))
		for _, r := range reqs {
			out = append(out, r.ID)
		}
		return out
	}

	grouped, err := env.svc.GroupedBookingHistory(ctx, "cust-1")
	require.NoError(t, err)

	// Pending is keyed on status alone; eventDate does not move it.
	assert.ElementsMatch(t, []string{"pending-future", "pending-past"}, ids(grouped.Pending))
	// An event happening today is still upcoming.
	assert.ElementsMatch(t, []string{"approved-today", "approved-future"}, ids(grouped.Upcoming))
	assert.ElementsMatch(t, []string{"approved-past"}, ids(grouped.Past))
	assert.ElementsMatch(t, []string{"rejected", "expired"}, ids(grouped.Rejected))

	// The restaurant view applies the same partitioning.
	grouped, err = env.svc.GroupedByRestaurant(ctx, "rest-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"approved-past"}, ids(grouped.Past))

	grouped, err = env.svc.GroupedByRestaurant(ctx, "rest-other")
	require.NoError(t, err)
	assert.Empty(t, grouped.Pending)
	assert.Empty(t, grouped.Upcoming)
	assert.Empty(t, grouped.Past)
	assert.Empty(t, grouped.Rejected)
	assert.NotNil(t, grouped.Pending)
}
