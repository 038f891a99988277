package models

import "time"

// Reasons an availability block may carry. Event blocks are created only by the
// approval transaction and are immutable; hold and maintenance blocks are
// managed manually by the restaurant.
const (
	BlockReasonEvent       = "event"
	BlockReasonMaintenance = "maintenance"
	BlockReasonHold        = "hold"
)

// DefaultSearchBufferMinutes pads the browse-path exclusion window to leave
// turnover time between events. The strict booking path does not use it.
const DefaultSearchBufferMinutes = 30

// AvailabilityBlock is an opaque time reservation on a space, used purely for
// conflict detection. It does not record who booked it beyond the reason tag.
// Intervals are half-open: [startTime, endTime), so back-to-back blocks do not
// conflict.
type AvailabilityBlock struct {
	ID           string    `bson:"id" json:"id"`
	RestaurantID string    `bson:"restaurantId" json:"restaurantId"`
	SpaceID      string    `bson:"spaceId" json:"spaceId"`
	EventDate    time.Time `bson:"eventDate" json:"eventDate"`
	StartTime    string    `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime      string    `bson:"endTime" json:"endTime"`     // "HH:MM"
	Reason       string    `bson:"reason" json:"reason"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// BlockConflict is the caller-facing view of a conflicting block, returned so
// UIs can render why a slot is unavailable.
type BlockConflict struct {
	ID        string    `json:"id"`
	EventDate time.Time `json:"eventDate"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Reason    string    `json:"reason"`
}

// ConflictViews converts blocks into their caller-facing conflict shape.
func ConflictViews(blocks []AvailabilityBlock) []BlockConflict {
	conflicts := make([]BlockConflict, 0, len(blocks))
	for _, b := range blocks {
		conflicts = append(conflicts, BlockConflict{
			ID:        b.ID,
			EventDate: b.EventDate,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			Reason:    b.Reason,
		})
	}
	return conflicts
}

// Unavailability reasons reported by availability checks.
const (
	UnavailableReasonCapacity     = "capacity"
	UnavailableReasonTimeConflict = "time_conflict"
)

// AvailabilityQuery asks whether a slot can be booked.
type AvailabilityQuery struct {
	RestaurantID string    `json:"restaurantId"`
	SpaceID      string    `json:"spaceId"`
	EventDate    time.Time `json:"eventDate"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	GuestCount   int       `json:"guestCount"`
}

// AvailabilityResult is the structured answer to an availability query.
// Unavailability is an expected outcome for a UI to render, not an error.
type AvailabilityResult struct {
	Available bool            `json:"available"`
	Reason    string          `json:"reason,omitempty"`
	Message   string          `json:"message,omitempty"`
	Conflicts []BlockConflict `json:"conflicts,omitempty"`
	Space     *SpaceSummary   `json:"space,omitempty"`
}

// CreateBlockInput carries a manual hold/maintenance block request.
type CreateBlockInput struct {
	RestaurantID string    `json:"restaurantId"`
	SpaceID      string    `json:"spaceId"`
	EventDate    time.Time `json:"eventDate"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	Reason       string    `json:"reason,omitempty"` // defaults to "hold"
}
