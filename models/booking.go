package models

import "time"

// BookingRequest status lifecycle. Pending is the only non-terminal state;
// "expired" is reachable only through an external sweeper, never through the
// decision flow.
const (
	BookingStatusPending  = "pending"
	BookingStatusApproved = "approved"
	BookingStatusRejected = "rejected"
	BookingStatusExpired  = "expired"
)

// Decision values accepted by the decision endpoint.
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

// BookingRequestExpiry is the window a restaurant has to decide on a request.
const BookingRequestExpiry = 7 * 24 * time.Hour

// BookingRequest is a customer's bid for a space at a given date and time.
// Requests are never deleted; they remain as the historical record of the bid.
type BookingRequest struct {
	ID             string     `bson:"id" json:"id"`
	CustomerID     string     `bson:"customerId" json:"customerId"`
	RestaurantID   string     `bson:"restaurantId" json:"restaurantId"`
	SpaceID        string     `bson:"spaceId" json:"spaceId"`
	EventDate      time.Time  `bson:"eventDate" json:"eventDate"`
	StartTime      string     `bson:"startTime" json:"startTime"` // "HH:MM", same-day
	EndTime        string     `bson:"endTime" json:"endTime"`     // "HH:MM", same-day
	GuestCount     int        `bson:"guestCount" json:"guestCount"`
	EventStyle     string     `bson:"eventStyle" json:"eventStyle"`
	MessageToHost  string     `bson:"messageToHost,omitempty" json:"messageToHost,omitempty"`
	BidPrice       *float64   `bson:"bidPrice,omitempty" json:"bidPrice,omitempty"`
	AcceptMinSpend *float64   `bson:"acceptMinSpend,omitempty" json:"acceptMinSpend,omitempty"`
	Currency       string     `bson:"currency,omitempty" json:"currency,omitempty"`
	Status         string     `bson:"status" json:"status"`
	DecisionNotes  string     `bson:"decisionNotes,omitempty" json:"decisionNotes,omitempty"`
	DecisionAt     *time.Time `bson:"decisionAt,omitempty" json:"decisionAt,omitempty"`
	ExpiresAt      time.Time  `bson:"expiresAt" json:"expiresAt"`
	CreatedAt      time.Time  `bson:"createdAt" json:"createdAt"`
}

// BookingMessage is a thread entry tied to a booking request. Either party may
// post once the request exists.
type BookingMessage struct {
	ID               string    `bson:"id" json:"id"`
	BookingRequestID string    `bson:"bookingRequestId" json:"bookingRequestId"`
	SenderUserID     string    `bson:"senderUserId" json:"senderUserId"`
	SenderRole       string    `bson:"senderRole" json:"senderRole"` // "customer" or "restaurant"
	Body             string    `bson:"body" json:"body"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
}

// CreateBookingInput carries a new booking request submission.
type CreateBookingInput struct {
	CustomerID     string    `json:"customerId"`
	RestaurantID   string    `json:"restaurantId"`
	SpaceID        string    `json:"spaceId"`
	EventDate      time.Time `json:"eventDate"`
	StartTime      string    `json:"startTime"`
	EndTime        string    `json:"endTime"`
	GuestCount     int       `json:"guestCount"`
	EventStyle     string    `json:"eventStyle"`
	MessageToHost  string    `json:"messageToHost,omitempty"`
	BidPrice       *float64  `json:"bidPrice,omitempty"`
	AcceptMinSpend *float64  `json:"acceptMinSpend,omitempty"`
	Currency       string    `json:"currency,omitempty"`
}

// BookingCreated is the minimal write-path response for a new request.
type BookingCreated struct {
	BookingRequestID string    `json:"bookingRequestId"`
	Status           string    `json:"status"`
	ExpiresAt        time.Time `json:"expiresAt"`
}

// DecisionInput carries a restaurant's approve/reject call.
type DecisionInput struct {
	RestaurantID string `json:"restaurantId"`
	Decision     string `json:"decision"`
	Notes        string `json:"notes,omitempty"`
}

// DecisionResult is returned by the decision operation. EventID is set only on
// approval.
type DecisionResult struct {
	Status     string    `json:"status"`
	DecisionAt time.Time `json:"decisionAt"`
	EventID    string    `json:"eventId,omitempty"`
}

// SendMessageInput posts a message on behalf of one side of the booking.
type SendMessageInput struct {
	Sender string `json:"sender"` // "customer" or "restaurant"
	Body   string `json:"body"`
}

// GroupedBookings partitions a party's requests into the four history buckets.
// Rejected absorbs expired; upcoming/past split approved requests on today's
// midnight.
type GroupedBookings struct {
	Pending  []BookingRequest `json:"pending"`
	Upcoming []BookingRequest `json:"upcoming"`
	Past     []BookingRequest `json:"past"`
	Rejected []BookingRequest `json:"rejected"`
}
