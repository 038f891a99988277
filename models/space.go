package models

import "time"

// Event styles a space can host.
const (
	EventStyleSeated   = "seated"
	EventStyleStanding = "standing"
)

// Space is a bookable physical area within a restaurant. Spaces are managed by
// the restaurant-facing CRUD surface; the booking core only reads them.
type Space struct {
	ID                 string    `bson:"id" json:"id"`
	RestaurantID       string    `bson:"restaurantId" json:"restaurantId"`
	Name               string    `bson:"name" json:"name"`
	Description        string    `bson:"description,omitempty" json:"description,omitempty"`
	MinCapacity        int       `bson:"minCapacity" json:"minCapacity"`
	MaxCapacity        int       `bson:"maxCapacity" json:"maxCapacity"`
	AllowedEventStyles []string  `bson:"allowedEventStyles" json:"allowedEventStyles"`
	CreatedAt          time.Time `bson:"createdAt" json:"createdAt"`
}

// AllowsStyle reports whether the space can host the given event style.
func (s *Space) AllowsStyle(style string) bool {
	for _, allowed := range s.AllowedEventStyles {
		if allowed == style {
			return true
		}
	}
	return false
}

// SpaceSummary is the trimmed space view returned by availability checks.
type SpaceSummary struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	MinCapacity        int      `json:"minCapacity"`
	MaxCapacity        int      `json:"maxCapacity"`
	AllowedEventStyles []string `json:"allowedEventStyles"`
}

// Summary builds the SpaceSummary view of a space.
func (s *Space) Summary() *SpaceSummary {
	return &SpaceSummary{
		ID:                 s.ID,
		Name:               s.Name,
		MinCapacity:        s.MinCapacity,
		MaxCapacity:        s.MaxCapacity,
		AllowedEventStyles: s.AllowedEventStyles,
	}
}
