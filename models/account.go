package models

import "time"

// Customer is the booking-side identity. UserID links to the underlying user
// account managed by the out-of-scope auth surface; messages are attributed to
// it.
type Customer struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	FullName  string    `bson:"fullName" json:"fullName"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Restaurant is the host-side identity.
type Restaurant struct {
	ID          string    `bson:"id" json:"id"`
	OwnerUserID string    `bson:"ownerUserId" json:"ownerUserId"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	City        string    `bson:"city,omitempty" json:"city,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
