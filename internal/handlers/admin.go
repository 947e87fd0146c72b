package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/elrefaeey/ahmedelrefaey/internal/admin"
	"github.com/elrefaeey/ahmedelrefaey/internal/middleware"
	"github.com/elrefaeey/ahmedelrefaey/internal/models"
)

// ImageStore is the slice of the storage client the admin handler needs to
// clean up bucket objects belonging to deleted projects.
type ImageStore interface {
	ObjectPath(publicURL string) (string, bool)
	DeleteFile(storagePath string) error
}

// AdminHandler exposes the per-session project admin controller over HTTP.
// All routes sit behind the session middleware; the session id selects the
// controller instance.
type AdminHandler struct {
	registry *admin.Registry
	images   ImageStore
}

func NewAdminHandler(registry *admin.Registry, images ImageStore) *AdminHandler {
	return &AdminHandler{registry: registry, images: images}
}

func (h *AdminHandler) controller(c *gin.Context) *admin.Controller {
	return h.registry.Get(c.GetString(middleware.SessionIDKey))
}

// ListAll returns every project, active and inactive, for the admin panel.
func (h *AdminHandler) ListAll(c *gin.Context) {
	ctrl := h.controller(c)
	projects, err := ctrl.ListAll(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	if projects == nil {
		projects = []models.Project{}
	}
	c.JSON(http.StatusOK, models.ProjectListResponse{Projects: projects})
}

// StartCreate opens a blank draft and returns it with its defaults filled.
func (h *AdminHandler) StartCreate(c *gin.Context) {
	draft, err := h.controller(c).StartCreate()
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.DraftResponse{Mode: admin.ModeCreate, Draft: draft})
}

// StartEdit opens a draft pre-filled from the addressed project.
func (h *AdminHandler) StartEdit(c *gin.Context) {
	ctrl := h.controller(c)
	id, ok := projectID(c)
	if !ok {
		return
	}
	project, err := ctrl.FindProject(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	draft, err := ctrl.StartEdit(project)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.DraftResponse{Mode: admin.ModeEdit, EditID: id, Draft: draft})
}

// SaveDraft persists the submitted draft in the controller's current mode.
func (h *AdminHandler) SaveDraft(c *gin.Context) {
	var draft models.ProjectDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "malformed request body"})
		return
	}
	ctrl := h.controller(c)
	if err := ctrl.Save(c.Request.Context(), draft); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ProjectListResponse{Projects: ctrl.Projects()})
}

// CancelDraft discards the open draft.
func (h *AdminHandler) CancelDraft(c *gin.Context) {
	if err := h.controller(c).CancelDraft(); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.StatusResponse{Status: "cancelled"})
}

// Delete permanently removes a project. The browser's confirm dialog is
// relayed as ?confirm=true; without it the call does nothing.
func (h *AdminHandler) Delete(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	confirmed := c.Query("confirm") == "true"
	ctrl := h.controller(c)
	project, findErr := ctrl.FindProject(id)
	if err := ctrl.Delete(c.Request.Context(), id, confirmed); err != nil {
		h.writeError(c, err)
		return
	}
	if findErr == nil {
		h.removeImage(project)
	}
	c.JSON(http.StatusOK, models.ProjectListResponse{Projects: ctrl.Projects()})
}

// removeImage drops a deleted project's object from the bucket. Best effort:
// the row is already gone, so a storage failure only orphans a file.
func (h *AdminHandler) removeImage(p models.Project) {
	if h.images == nil || p.ImageURL == nil {
		return
	}
	storagePath, ok := h.images.ObjectPath(*p.ImageURL)
	if !ok {
		return
	}
	if err := h.images.DeleteFile(storagePath); err != nil {
		log.Printf("Error removing image %s: %v", storagePath, err)
	}
}

// ToggleActive flips a project's visibility on the public page.
func (h *AdminHandler) ToggleActive(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	ctrl := h.controller(c)
	project, err := ctrl.FindProject(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if err := ctrl.ToggleActive(c.Request.Context(), project); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ProjectListResponse{Projects: ctrl.Projects()})
}

func projectID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("project_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return 0, false
	}
	return id, true
}

func (h *AdminHandler) writeError(c *gin.Context, err error) {
	var vErr *admin.ValidationError
	switch {
	case errors.Is(err, admin.ErrBusy):
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: "busy", Message: err.Error()})
	case errors.Is(err, admin.ErrNoDraft), errors.Is(err, admin.ErrConfirmationRequired):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, admin.ErrUnknownProject):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "project not found"})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "validation failed", Message: vErr.Error()})
	default:
		log.Printf("Store error: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: "store operation failed", Message: err.Error()})
	}
}
