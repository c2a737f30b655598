package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gamenight-backend/internal/schedule"
	"gamenight-backend/internal/slot"
)

// matrixResponse carries the dense group count matrix plus the slot labels
// the count columns map to.
type matrixResponse struct {
	Slots []string             `json:"slots"`
	Days  []schedule.MatrixRow `json:"days"`
}

// GetGroupMatrix handles GET /api/group/matrix?start=...&end=... and returns
// the dense day×slot count matrix across all users. Cells nobody marked are
// 0, never omitted.
func (h *Handler) GetGroupMatrix(c *gin.Context) {
	days, err := parseRange(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	counts, err := h.store.GroupCounts(c.Request.Context(), days)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, matrixResponse{
		Slots: slot.Labels(),
		Days:  schedule.BuildMatrix(days, counts),
	})
}

// GetTopSlots handles GET /api/group/top?start=...&end=...&k=10 and returns
// the ranked best slots for the range.
func (h *Handler) GetTopSlots(c *gin.Context) {
	days, err := parseRange(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	k := schedule.DefaultTopK
	if raw := c.Query("k"); raw != "" {
		k, err = strconv.Atoi(raw)
		if err != nil || k <= 0 {
			abortWithError(c, fmt.Errorf("%w: k must be a positive integer", schedule.ErrInvalidInput))
			return
		}
	}

	counts, err := h.store.GroupCounts(c.Request.Context(), days)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedule.TopSlots(counts, k))
}
