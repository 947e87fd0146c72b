package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/elrefaeey/ahmedelrefaey/internal/models"
)

// ErrNotFound is returned by the in-memory store for mutations against an
// unknown id.
var ErrNotFound = errors.New("project not found")

// Memory is an in-memory ProjectStore used in tests in place of the hosted
// backend. Ids are assigned sequentially and never reused; listing order is
// display_order ascending with ties broken by insertion order, matching the
// backend's stable ordering.
type Memory struct {
	mu       sync.Mutex
	nextID   int64
	projects []models.Project

	// Err, when set, makes every call fail with it. Tests use this to
	// exercise the uniform store-failure paths.
	Err error
}

func NewMemory() *Memory {
	return &Memory{nextID: 1}
}

func (m *Memory) ListAll(_ context.Context) ([]models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.sorted(func(models.Project) bool { return true }), nil
}

func (m *Memory) ListActive(_ context.Context) ([]models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.sorted(func(p models.Project) bool { return p.IsActive }), nil
}

func (m *Memory) Insert(_ context.Context, draft models.ProjectDraft) (models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return models.Project{}, m.Err
	}
	now := time.Now().UTC()
	p := models.Project{
		ID:            m.nextID,
		TitleEN:       draft.TitleEN,
		TitleAR:       draft.TitleAR,
		DescriptionEN: draft.DescriptionEN,
		DescriptionAR: draft.DescriptionAR,
		Link:          draft.Link,
		ImageURL:      draft.ImageURL,
		AltText:       draft.AltText,
		DisplayOrder:  draft.DisplayOrder,
		IsActive:      draft.IsActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	m.nextID++
	m.projects = append(m.projects, p)
	return p, nil
}

func (m *Memory) Update(_ context.Context, id int64, draft models.ProjectDraft) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	for i := range m.projects {
		if m.projects[i].ID == id {
			p := &m.projects[i]
			p.TitleEN = draft.TitleEN
			p.TitleAR = draft.TitleAR
			p.DescriptionEN = draft.DescriptionEN
			p.DescriptionAR = draft.DescriptionAR
			p.Link = draft.Link
			p.ImageURL = draft.ImageURL
			p.AltText = draft.AltText
			p.DisplayOrder = draft.DisplayOrder
			p.IsActive = draft.IsActive
			p.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) SetActive(_ context.Context, id int64, active bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	for i := range m.projects {
		if m.projects[i].ID == id {
			m.projects[i].IsActive = active
			m.projects[i].UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	for i := range m.projects {
		if m.projects[i].ID == id {
			m.projects = append(m.projects[:i], m.projects[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// sorted returns a copy filtered by keep, ordered by display_order with
// insertion order preserved among equals.
func (m *Memory) sorted(keep func(models.Project) bool) []models.Project {
	out := make([]models.Project, 0, len(m.projects))
	for _, p := range m.projects {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out
}
