package supabase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/supabase-community/postgrest-go"

	"github.com/elrefaeey/ahmedelrefaey/internal/models"
)

const projectsTable = "projects"

// ProjectStore implements store.ProjectStore on top of the hosted PostgREST
// endpoint. The client library carries its own transport handling; calls run
// to completion or failure with no cancellation of our own, so the context
// parameters are accepted for interface compatibility only.
type ProjectStore struct {
	client *Client
}

func NewProjectStore(client *Client) *ProjectStore {
	return &ProjectStore{client: client}
}

func (s *ProjectStore) ListAll(_ context.Context) ([]models.Project, error) {
	var projects []models.Project
	_, err := s.client.Supabase.From(projectsTable).
		Select("*", "", false).
		Order("display_order", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&projects)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectStore) ListActive(_ context.Context) ([]models.Project, error) {
	var projects []models.Project
	_, err := s.client.Supabase.From(projectsTable).
		Select("*", "", false).
		Eq("is_active", "true").
		Order("display_order", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&projects)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectStore) Insert(_ context.Context, draft models.ProjectDraft) (models.Project, error) {
	var inserted []models.Project
	_, err := s.client.Supabase.From(projectsTable).
		Insert(draft, false, "", "representation", "").
		ExecuteTo(&inserted)
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to insert project: %w", err)
	}
	if len(inserted) == 0 {
		return models.Project{}, fmt.Errorf("insert returned no rows")
	}
	return inserted[0], nil
}

func (s *ProjectStore) Update(_ context.Context, id int64, draft models.ProjectDraft) error {
	_, _, err := s.client.Supabase.From(projectsTable).
		Update(draft, "", "").
		Eq("id", strconv.FormatInt(id, 10)).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to update project %d: %w", id, err)
	}
	return nil
}

func (s *ProjectStore) SetActive(_ context.Context, id int64, active bool) error {
	_, _, err := s.client.Supabase.From(projectsTable).
		Update(map[string]interface{}{"is_active": active}, "", "").
		Eq("id", strconv.FormatInt(id, 10)).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to toggle project %d: %w", id, err)
	}
	return nil
}

func (s *ProjectStore) Delete(_ context.Context, id int64) error {
	_, _, err := s.client.Supabase.From(projectsTable).
		Delete("", "").
		Eq("id", strconv.FormatInt(id, 10)).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete project %d: %w", id, err)
	}
	return nil
}
