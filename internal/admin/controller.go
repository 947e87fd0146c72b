// Package admin holds the project management controller behind the admin
// panel: the full list of projects (active and inactive), a single
// outstanding draft, and a busy flag that serializes mutations.
package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/elrefaeey/ahmedelrefaey/internal/models"
	"github.com/elrefaeey/ahmedelrefaey/internal/store"
)

var (
	// ErrBusy is returned when an operation is attempted while another
	// call is in flight. The UI disables its buttons while loading, so
	// hitting this means a second client raced the panel.
	ErrBusy = errors.New("another operation is in progress")

	// ErrNoDraft is returned by Save when no draft is open.
	ErrNoDraft = errors.New("no draft is open")

	// ErrConfirmationRequired is returned by Delete when the caller has
	// not confirmed; the delete is a no-op in that case.
	ErrConfirmationRequired = errors.New("delete requires confirmation")

	// ErrUnknownProject is returned when an id does not match any project
	// in the last fetched list.
	ErrUnknownProject = errors.New("unknown project")
)

// ValidationError marks a draft field that failed validation. The draft
// stays open so the admin can correct and retry.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// Draft modes.
const (
	ModeCreate = "create"
	ModeEdit   = "edit"
)

// Controller drives all admin operations against the project store. One
// instance exists per admin session. At most one mutating call runs at a
// time; every mutation re-fetches the list after it resolves so the panel
// always shows the store's state (read-after-write, no local patching).
type Controller struct {
	store store.ProjectStore

	mu       sync.Mutex
	busy     bool
	projects []models.Project

	mode   string // "" when no draft is open
	editID int64
	draft  models.ProjectDraft
}

func NewController(s store.ProjectStore) *Controller {
	return &Controller{store: s}
}

// Projects returns a copy of the last successfully fetched list.
func (c *Controller) Projects() []models.Project {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Project, len(c.projects))
	copy(out, c.projects)
	return out
}

// Draft returns the open draft, its mode and edit target, if any.
func (c *Controller) Draft() (draft models.ProjectDraft, mode string, editID int64, open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft, c.mode, c.editID, c.mode != ""
}

// ListAll fetches every project ordered by display_order. On a store
// failure the previously fetched list is returned alongside the error, so
// the panel keeps showing stale-but-available data.
func (c *Controller) ListAll(ctx context.Context) ([]models.Project, error) {
	if err := c.begin(); err != nil {
		return c.Projects(), err
	}
	defer c.end()

	projects, err := c.store.ListAll(ctx)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		stale := make([]models.Project, len(c.projects))
		copy(stale, c.projects)
		return stale, fmt.Errorf("list projects: %w", err)
	}
	c.projects = projects
	out := make([]models.Project, len(projects))
	copy(out, projects)
	return out, nil
}

// StartCreate opens a blank draft, discarding any in-progress edit. The
// display order defaults to one past the end of the current list and new
// projects default to active.
func (c *Controller) StartCreate() (models.ProjectDraft, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return models.ProjectDraft{}, ErrBusy
	}
	c.mode = ModeCreate
	c.editID = 0
	c.draft = models.ProjectDraft{
		DisplayOrder: len(c.projects) + 1,
		IsActive:     true,
	}
	return c.draft, nil
}

// StartEdit opens a draft pre-filled from the given project, discarding any
// in-progress create.
func (c *Controller) StartEdit(p models.Project) (models.ProjectDraft, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return models.ProjectDraft{}, ErrBusy
	}
	c.mode = ModeEdit
	c.editID = p.ID
	c.draft = models.DraftOf(p)
	return c.draft, nil
}

// CancelDraft discards the open draft without persisting anything.
func (c *Controller) CancelDraft() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return ErrBusy
	}
	c.closeDraftLocked()
	return nil
}

// Save persists the submitted draft: an insert in create mode, an update of
// the edit target in edit mode. On success the draft closes and the list is
// re-fetched; on failure the draft stays open, unsaved, for retry.
func (c *Controller) Save(ctx context.Context, draft models.ProjectDraft) error {
	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return ErrBusy
	}
	if c.mode == "" {
		c.mu.Unlock()
		return ErrNoDraft
	}
	c.draft = draft
	if err := validateDraft(draft); err != nil {
		c.mu.Unlock()
		return err
	}
	mode, editID := c.mode, c.editID
	c.busy = true
	c.mu.Unlock()
	defer c.end()

	var err error
	if mode == ModeCreate {
		_, err = c.store.Insert(ctx, draft)
	} else {
		err = c.store.Update(ctx, editID, draft)
	}
	if err != nil {
		return fmt.Errorf("save project: %w", err)
	}

	c.mu.Lock()
	c.closeDraftLocked()
	c.mu.Unlock()
	c.refresh(ctx)
	return nil
}

// Delete removes a project permanently. Unconfirmed calls are a no-op: the
// yes/no prompt happens in the browser and only a confirmed answer reaches
// the store.
func (c *Controller) Delete(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	if err := c.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	c.refresh(ctx)
	return nil
}

// ToggleActive flips only the is-active flag of the given project.
func (c *Controller) ToggleActive(ctx context.Context, p models.Project) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	if err := c.store.SetActive(ctx, p.ID, !p.IsActive); err != nil {
		return fmt.Errorf("toggle project: %w", err)
	}
	c.refresh(ctx)
	return nil
}

// FindProject resolves an id against the last fetched list.
func (c *Controller) FindProject(id int64) (models.Project, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Project{}, ErrUnknownProject
}

func (c *Controller) begin() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return ErrBusy
	}
	c.busy = true
	return nil
}

func (c *Controller) end() {
	c.mu.Lock()
	c.busy = false
	c.mu.Unlock()
}

// refresh re-fetches the list after a mutation has resolved. Runs while the
// busy flag is still held. A refresh failure keeps the previous list; the
// mutation itself already succeeded.
func (c *Controller) refresh(ctx context.Context) {
	projects, err := c.store.ListAll(ctx)
	if err != nil {
		log.Printf("Error refreshing projects after mutation: %v", err)
		return
	}
	c.mu.Lock()
	c.projects = projects
	c.mu.Unlock()
}

func (c *Controller) closeDraftLocked() {
	c.mode = ""
	c.editID = 0
	c.draft = models.ProjectDraft{}
}

func validateDraft(d models.ProjectDraft) error {
	switch {
	case d.TitleEN == "":
		return &ValidationError{Field: "title_en"}
	case d.TitleAR == "":
		return &ValidationError{Field: "title_ar"}
	case d.DescriptionEN == "":
		return &ValidationError{Field: "description_en"}
	case d.DescriptionAR == "":
		return &ValidationError{Field: "description_ar"}
	case d.Link == "":
		return &ValidationError{Field: "link"}
	}
	return nil
}
