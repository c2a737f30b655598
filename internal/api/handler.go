package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamenight-backend/internal/mw"
	"gamenight-backend/internal/schedule"
	"gamenight-backend/internal/session"
	"gamenight-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store    store.Store
	sessions *session.Manager
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, sessions *session.Manager) *Handler {
	return &Handler{
		store:    s,
		sessions: sessions,
	}
}

// currentUser returns the authenticated display name injected by mw.Auth.
func currentUser(c *gin.Context) string {
	return c.GetString(mw.UserKey)
}

// abortWithError maps domain errors to HTTP responses. Anything that is not
// an input, range, or auth problem is a storage failure: fatal to the
// operation, no retry, reported without internals.
func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, schedule.ErrInvalidInput), errors.Is(err, schedule.ErrInvalidRange):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrAuthFailure):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": session.ErrAuthFailure.Error()})
	default:
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable"})
	}
}

// parseRange expands the start/end query parameters into the inclusive day
// sequence every range-consuming endpoint works over.
func parseRange(c *gin.Context) ([]string, error) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		return nil, fmt.Errorf("%w: start and end query parameters are required", schedule.ErrInvalidInput)
	}
	return schedule.Days(start, end)
}
