package booking

import (
	"context"
	"time"

	"feastly/models"
)

// GroupedByRestaurant returns a restaurant's requests partitioned into the
// four history buckets.
func (s *DefaultBookingService) GroupedByRestaurant(ctx context.Context, restaurantID string) (*models.GroupedBookings, error) {
	reqs, err := s.BookingRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return bucketBookings(reqs, time.Now()), nil
}

// GroupedBookingHistory returns a customer's requests partitioned into the
// four history buckets.
func (s *DefaultBookingService) GroupedBookingHistory(ctx context.Context, customerID string) (*models.GroupedBookings, error) {
	reqs, err := s.BookingRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return bucketBookings(reqs, time.Now()), nil
}

// bucketBookings partitions requests against "today" at midnight:
// pending stays pending regardless of expiresAt (only the external sweeper
// transitions it), approved splits into upcoming (eventDate >= today) and past,
// and rejected absorbs expired.
func bucketBookings(reqs []models.BookingRequest, now time.Time) *models.GroupedBookings {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	grouped := &models.GroupedBookings{
		Pending:  []models.BookingRequest{},
		Upcoming: []models.BookingRequest{},
		Past:     []models.BookingRequest{},
		Rejected: []models.BookingRequest{},
	}
	for _, req := range reqs {
		switch req.Status {
		case models.BookingStatusPending:
			grouped.Pending = append(grouped.Pending, req)
		case models.BookingStatusApproved:
			if !req.EventDate.Before(today) {
				grouped.Upcoming = append(grouped.Upcoming, req)
			} else {
				grouped.Past = append(grouped.Past, req)
			}
		case models.BookingStatusRejected, models.BookingStatusExpired:
			grouped.Rejected = append(grouped.Rejected, req)
		}
	}
	return grouped
}
