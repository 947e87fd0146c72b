package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elrefaeey/ahmedelrefaey/internal/models"
	"github.com/elrefaeey/ahmedelrefaey/internal/store"
)

// ProjectsHandler serves the public, unauthenticated project list.
type ProjectsHandler struct {
	store store.ProjectStore
}

func NewProjectsHandler(s store.ProjectStore) *ProjectsHandler {
	return &ProjectsHandler{store: s}
}

// ListActive godoc
// @Summary     List active projects
// @Description Returns all active projects ordered for display
// @Tags        projects
// @Produce     json
// @Success     200 {object} models.ProjectListResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /api/v1/projects [get]
func (h *ProjectsHandler) ListActive(c *gin.Context) {
	projects, err := h.store.ListActive(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching projects: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: "failed to fetch projects"})
		return
	}
	if projects == nil {
		projects = []models.Project{}
	}
	c.JSON(http.StatusOK, models.ProjectListResponse{Projects: projects})
}
