package handlers

import (
	"net/http"
	"time"

	"feastly/models"
	"feastly/services/booking"
	"feastly/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking request lifecycle over HTTP.
type BookingHandler struct {
	Svc booking.Service
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.Service) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// parseEventDate parses a "YYYY-MM-DD" calendar date.
func parseEventDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, utils.NewInvalidRequest("event_date is required")
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, utils.NewInvalidRequest("event_date must be formatted as YYYY-MM-DD")
	}
	return d, nil
}

// CreateBookingRequest handles POST /api/bookings/requests.
func (h *BookingHandler) CreateBookingRequest(c *gin.Context) {
	var body struct {
		CustomerID     string   `json:"customerId"`
		RestaurantID   string   `json:"restaurantId"`
		SpaceID        string   `json:"spaceId"`
		EventDate      string   `json:"eventDate"`
		StartTime      string   `json:"startTime"`
		EndTime        string   `json:"endTime"`
		GuestCount     int      `json:"guestCount"`
		EventStyle     string   `json:"eventStyle"`
		MessageToHost  string   `json:"messageToHost"`
		BidPrice       *float64 `json:"bidPrice"`
		AcceptMinSpend *float64 `json:"acceptMinSpend"`
		Currency       string   `json:"currency"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, utils.NewInvalidRequest("invalid request body: "+err.Error()))
		return
	}

	eventDate, err := parseEventDate(body.EventDate)
	if err != nil {
		respondError(c, err)
		return
	}

	created, err := h.Svc.CreateBookingRequest(c.Request.Context(), models.CreateBookingInput{
		CustomerID:     body.CustomerID,
		RestaurantID:   body.RestaurantID,
		SpaceID:        body.SpaceID,
		EventDate:      eventDate,
		StartTime:      body.StartTime,
		EndTime:        body.EndTime,
		GuestCount:     body.GuestCount,
		EventStyle:     body.EventStyle,
		MessageToHost:  body.MessageToHost,
		BidPrice:       body.BidPrice,
		AcceptMinSpend: body.AcceptMinSpend,
		Currency:       body.Currency,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "booking request created", created)
}

// MakeDecision handles POST /api/bookings/:id/decision.
func (h *BookingHandler) MakeDecision(c *gin.Context) {
	var body models.DecisionInput
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, utils.NewInvalidRequest("invalid request body: "+err.Error()))
		return
	}

	result, err := h.Svc.MakeDecision(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "decision recorded", result)
}

// SendMessage handles POST /api/bookings/:id/messages.
func (h *BookingHandler) SendMessage(c *gin.Context) {
	var body models.SendMessageInput
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, utils.NewInvalidRequest("invalid request body: "+err.Error()))
		return
	}

	msg, err := h.Svc.SendMessage(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "message sent", msg)
}

// ListMessages handles GET /api/bookings/:id/messages.
func (h *BookingHandler) ListMessages(c *gin.Context) {
	msgs, err := h.Svc.ListMessages(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"messages": msgs})
}

// RestaurantBookings handles GET /api/restaurants/:id/bookings.
func (h *BookingHandler) RestaurantBookings(c *gin.Context) {
	grouped, err := h.Svc.GroupedByRestaurant(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", grouped)
}

// CustomerBookings handles GET /api/customers/:id/bookings.
func (h *BookingHandler) CustomerBookings(c *gin.Context) {
	grouped, err := h.Svc.GroupedBookingHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", grouped)
}
