package handlers

import (
	"net/http"

	"feastly/models"
	"feastly/services/event"
	"feastly/utils"

	"github.com/gin-gonic/gin"
)

// EventHandler exposes the post-approval event surface.
type EventHandler struct {
	Svc event.Service
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(svc event.Service) *EventHandler {
	return &EventHandler{Svc: svc}
}

// GetEvent handles GET /api/events/:id.
func (h *EventHandler) GetEvent(c *gin.Context) {
	ev, err := h.Svc.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", ev)
}

// UpdateSpecs handles PUT /api/events/:id/specs.
func (h *EventHandler) UpdateSpecs(c *gin.Context) {
	var body models.EventSpecsUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, utils.NewInvalidRequest("invalid request body: "+err.Error()))
		return
	}

	ev, err := h.Svc.UpdateSpecs(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "event specs updated", ev)
}

// CompleteEvent handles POST /api/events/:id/complete.
func (h *EventHandler) CompleteEvent(c *gin.Context) {
	ev, err := h.Svc.MarkCompleted(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "event completed", ev)
}

// AddReview handles POST /api/events/:id/reviews.
func (h *EventHandler) AddReview(c *gin.Context) {
	var body models.ReviewInput
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, utils.NewInvalidRequest("invalid request body: "+err.Error()))
		return
	}

	rv, err := h.Svc.AddReview(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "review added", rv)
}

// ListReviews handles GET /api/events/:id/reviews.
func (h *EventHandler) ListReviews(c *gin.Context) {
	reviews, err := h.Svc.ListReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"reviews": reviews})
}
