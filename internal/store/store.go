// Package store defines the remote project store contract. The production
// implementation lives in internal/supabase; an in-memory fake for tests
// lives alongside in this package.
package store

import (
	"context"

	"github.com/elrefaeey/ahmedelrefaey/internal/models"
)

// ProjectStore is the full query/mutation surface the site needs from the
// hosted projects table. Every failure, whatever its cause on the backend
// side, is reported as a plain error and treated uniformly by callers.
type ProjectStore interface {
	// ListAll returns every project, active or not, ordered by
	// display_order ascending.
	ListAll(ctx context.Context) ([]models.Project, error)

	// ListActive returns only is_active=true projects, ordered by
	// display_order ascending.
	ListActive(ctx context.Context) ([]models.Project, error)

	// Insert creates a new project from the draft's fields. The store
	// assigns id and timestamps.
	Insert(ctx context.Context, draft models.ProjectDraft) (models.Project, error)

	// Update replaces the editable fields of the project with the given id.
	Update(ctx context.Context, id int64, draft models.ProjectDraft) error

	// SetActive flips only the is_active column of the project with the
	// given id.
	SetActive(ctx context.Context, id int64, active bool) error

	// Delete permanently removes the project with the given id.
	Delete(ctx context.Context, id int64) error
}
