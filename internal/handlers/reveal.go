package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elrefaeey/ahmedelrefaey/internal/models"
	"github.com/elrefaeey/ahmedelrefaey/internal/reveal"
)

// RevealHandler answers the page's scroll ticks. The client sends its
// current geometry plus the indices it already revealed; the response is
// the grown set. Keeping the set on the client makes the endpoint stateless
// while the revealed set stays monotonic for the page's lifetime.
type RevealHandler struct{}

func NewRevealHandler() *RevealHandler {
	return &RevealHandler{}
}

// Reveal godoc
// @Summary     Compute revealed sections
// @Description Returns which scroll-animated elements are revealed for the given viewport geometry
// @Tags        reveal
// @Accept      json
// @Produce     json
// @Param       geometry body models.RevealRequest true "Viewport geometry and prior revealed set"
// @Success     200 {object} models.RevealResponse
// @Router      /api/v1/reveal [post]
func (h *RevealHandler) Reveal(c *gin.Context) {
	var req models.RevealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "malformed request body"})
		return
	}

	tracker := reveal.NewTracker()
	tracker.Seed(req.Revealed)
	tracker.Observe(req.ViewportHeight, req.Tops)

	c.JSON(http.StatusOK, models.RevealResponse{Revealed: tracker.Revealed()})
}
