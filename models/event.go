package models

import "time"

// Event status values. Draft events accept spec changes; final events have
// locked specs; completed events accept reviews and nothing else.
const (
	EventStatusDraft     = "draft"
	EventStatusFinal     = "final"
	EventStatusCompleted = "completed"
)

// Specs status values. Finalizing specs is one-way.
const (
	SpecsStatusDraft = "draft"
	SpecsStatusFinal = "final"
)

// Event is the finalized record created atomically during booking approval.
// Exactly one Event exists per approved BookingRequest.
type Event struct {
	ID                     string     `bson:"id" json:"id"`
	BookingRequestID       string     `bson:"bookingRequestId" json:"bookingRequestId"`
	FinalGuestCount        int        `bson:"finalGuestCount" json:"finalGuestCount"`
	MenuSelection          string     `bson:"menuSelection,omitempty" json:"menuSelection,omitempty"`
	SetupNotes             string     `bson:"setupNotes,omitempty" json:"setupNotes,omitempty"`
	Timeline               string     `bson:"timeline,omitempty" json:"timeline,omitempty"`
	ProductionRequirements string     `bson:"productionRequirements,omitempty" json:"productionRequirements,omitempty"`
	FnbDetails             string     `bson:"fnbDetails,omitempty" json:"fnbDetails,omitempty"`
	SpecsStatus            string     `bson:"specsStatus" json:"specsStatus"`
	Status                 string     `bson:"status" json:"status"`
	CreatedAt              time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt              time.Time  `bson:"updatedAt" json:"updatedAt"`
	CompletedAt            *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}

// EventSpecsUpdate carries a partial update of event specs. Nil fields are left
// unchanged. SpecsStatus may be set to "final" to lock specs.
type EventSpecsUpdate struct {
	FinalGuestCount        *int    `json:"finalGuestCount,omitempty"`
	MenuSelection          *string `json:"menuSelection,omitempty"`
	SetupNotes             *string `json:"setupNotes,omitempty"`
	Timeline               *string `json:"timeline,omitempty"`
	ProductionRequirements *string `json:"productionRequirements,omitempty"`
	FnbDetails             *string `json:"fnbDetails,omitempty"`
	SpecsStatus            string  `json:"specsStatus,omitempty"`
}

// Review is attached to an event by the customer once the event is completed.
// One review per (event, customer).
type Review struct {
	ID         string    `bson:"id" json:"id"`
	EventID    string    `bson:"eventId" json:"eventId"`
	CustomerID string    `bson:"customerId" json:"customerId"`
	Rating     int       `bson:"rating" json:"rating"` // 1..5
	Comment    string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// ReviewInput carries a new review submission.
type ReviewInput struct {
	CustomerID string `json:"customerId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment,omitempty"`
}
