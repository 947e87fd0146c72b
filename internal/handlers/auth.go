package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elrefaeey/ahmedelrefaey/internal/admin"
	"github.com/elrefaeey/ahmedelrefaey/internal/auth"
	"github.com/elrefaeey/ahmedelrefaey/internal/middleware"
	"github.com/elrefaeey/ahmedelrefaey/internal/models"
)

type AuthHandler struct {
	gate     *auth.Gate
	registry *admin.Registry
}

func NewAuthHandler(gate *auth.Gate, registry *admin.Registry) *AuthHandler {
	return &AuthHandler{gate: gate, registry: registry}
}

// Login godoc
// @Summary     Admin login
// @Description Exchanges the shared admin password for a session token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       credentials body models.LoginRequest true "Admin password"
// @Success     200 {object} models.LoginResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /api/v1/admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "malformed request body"})
		return
	}

	if !h.gate.AttemptLogin(req.Password) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "incorrect password"})
		return
	}

	token, err := h.gate.IssueToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create session",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{Token: token})
}

// Logout drops the session's controller state, discarding any open draft.
// The token itself simply expires; there is no server-side revocation list.
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.GetString(middleware.SessionIDKey)
	h.registry.Remove(sessionID)
	c.JSON(http.StatusOK, models.StatusResponse{Status: "logged out"})
}
