package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

// Login handles POST /api/auth/login. A successful login registers the name
// in the user registry and returns a session token bound to it.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	name, err := h.sessions.Authenticate(req.Name, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := h.store.RegisterUser(c.Request.Context(), name); err != nil {
		abortWithError(c, err)
		return
	}

	token, err := h.sessions.Issue(name)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{Token: token, Name: name})
}

// Logout handles POST /api/auth/logout. Session tokens are self-contained,
// so logging out is the client discarding its token; the endpoint exists so
// the transition is an explicit call.
func (h *Handler) Logout(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
