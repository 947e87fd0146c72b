package admin

import (
	"sync"

	"github.com/elrefaeey/ahmedelrefaey/internal/store"
)

// Registry maps admin session ids (the token's jti) to their controllers.
// Controllers are created on demand, so a still-valid token keeps working
// across a server restart; Remove drops the session's draft state on
// logout.
type Registry struct {
	store store.ProjectStore

	mu       sync.Mutex
	sessions map[string]*Controller
}

func NewRegistry(s store.ProjectStore) *Registry {
	return &Registry{
		store:    s,
		sessions: make(map[string]*Controller),
	}
}

func (r *Registry) Get(sessionID string) *Controller {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.sessions[sessionID]
	if !ok {
		c = NewController(r.store)
		r.sessions[sessionID] = c
	}
	return c
}

func (r *Registry) Remove(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
}
