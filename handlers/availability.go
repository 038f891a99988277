package handlers

import (
	"net/http"
	"strconv"
	"time"

	"feastly/models"
	"feastly/services/availability"
	"feastly/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes availability checks and manual block management.
type AvailabilityHandler struct {
	Svc availability.Service
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc availability.Service) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc}
}

// CheckAvailability handles
// GET /api/restaurants/:id/availability?event_date&start_time&end_time&guest_count&space_id.
func (h *AvailabilityHandler) CheckAvailability(c *gin.Context) {
	eventDate, err := parseEventDate(c.Query("event_date"))
	if err != nil {
		respondError(c, err)
		return
	}
	guestCount, err := strconv.Atoi(c.Query("guest_count"))
	if err != nil {
		respondError(c, utils.NewInvalidRequest("guest_count must be an integer"))
		return
	}

	result, err := h.Svc.CheckAvailability(c.Request.Context(), models.AvailabilityQuery{
		RestaurantID: c.Param("id"),
		SpaceID:      c.Query("space_id"),
		EventDate:    eventDate,
		StartTime:    c.Query("start_time"),
		EndTime:      c.Query("end_time"),
		GuestCount:   guestCount,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", result)
}

// ListBlocks handles GET /api/restaurants/:id/availability/blocks.
func (h *AvailabilityHandler) ListBlocks(c *gin.Context) {
	var eventDate *time.Time
	if raw := c.Query("event_date"); raw != "" {
		d, err := parseEventDate(raw)
		if err != nil {
			respondError(c, err)
			return
		}
		eventDate = &d
	}

	blocks, err := h.Svc.ListBlocks(c.Request.Context(), c.Param("id"), eventDate)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"blocks": blocks})
}

// CreateBlock handles POST /api/restaurants/:id/availability/blocks.
func (h *AvailabilityHandler) CreateBlock(c *gin.Context) {
	var body struct {
		SpaceID   string `json:"spaceId"`
		EventDate string `json:"eventDate"`
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
		Reason    string `json:"reason"`
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

	block, err := h.Svc.CreateBlock(c.Request.Context(), models.CreateBlockInput{
		RestaurantID: c.Param("id"),
		SpaceID:      body.SpaceID,
		EventDate:    eventDate,
		StartTime:    body.StartTime,
		EndTime:      body.EndTime,
		Reason:       body.Reason,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "availability block created", block)
}

// DeleteBlock handles DELETE /api/restaurants/:id/availability/blocks/:blockId.
func (h *AvailabilityHandler) DeleteBlock(c *gin.Context) {
	if err := h.Svc.DeleteBlock(c.Request.Context(), c.Param("blockId"), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "availability block deleted", nil)
}

// BlockedSpaces handles
// GET /api/availability/blocked-spaces?event_date&start_time&end_time&buffer_minutes.
func (h *AvailabilityHandler) BlockedSpaces(c *gin.Context) {
	eventDate, err := parseEventDate(c.Query("event_date"))
	if err != nil {
		respondError(c, err)
		return
	}

	bufferMinutes := 0
	if raw := c.Query("buffer_minutes"); raw != "" {
		bufferMinutes, err = strconv.Atoi(raw)
		if err != nil {
			respondError(c, utils.NewInvalidRequest("buffer_minutes must be an integer"))
			return
		}
	}

	ids, err := h.Svc.BlockedSpaceIDs(c.Request.Context(), eventDate, c.Query("start_time"), c.Query("end_time"), bufferMinutes)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"blockedSpaceIds": ids})
}
