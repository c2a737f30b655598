package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gamenight-backend/internal/schedule"
	"gamenight-backend/internal/slot"
)

// gridResponse carries a user's dense grid plus the slot labels the boolean
// columns map to.
type gridResponse struct {
	Slots []string           `json:"slots"`
	Days  []schedule.GridRow `json:"days"`
}

// GetGrid handles GET /api/availability?start=...&end=... and returns the
// authenticated user's dense day×slot grid for the range.
func (h *Handler) GetGrid(c *gin.Context) {
	days, err := parseRange(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	existing, err := h.store.UserGrid(c.Request.Context(), currentUser(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gridResponse{
		Slots: slot.Labels(),
		Days:  schedule.BuildGrid(days, existing),
	})
}

type setCellRequest struct {
	Day       string `json:"day" binding:"required"`
	Slot      string `json:"slot" binding:"required"`
	Available *bool  `json:"available" binding:"required"`
}

// SetCell handles PUT /api/availability: a full-overwrite upsert of one
// (day, slot) cell for the authenticated user.
func (h *Handler) SetCell(c *gin.Context) {
	var req setCellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.store.SetAvailability(c.Request.Context(), currentUser(c), req.Day, req.Slot, *req.Available)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
