// Package session holds each client's last successful visualizations so a
// follow-up like "convert this to a pie chart" can reuse them. The slot is
// keyed per session, never process-wide, so concurrent clients cannot see
// each other's charts.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"salesql/apimodels"
)

type entry struct {
	visualizations []apimodels.Visualization
	updated        time.Time
}

type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	ttl      time.Duration
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*entry),
		ttl:      ttl,
	}
}

// NewID mints a session identifier for clients that did not supply one.
func (m *Manager) NewID() string {
	return uuid.NewString()
}

// Last returns the visualizations stored for the session, if any are still
// within the TTL.
func (m *Manager) Last(id string) ([]apimodels.Visualization, bool) {
	m.mu.RLock()
	e, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok || time.Since(e.updated) > m.ttl {
		return nil, false
	}
	return e.visualizations, true
}

// Put stores the visualizations for the session, replacing any previous
// result. Expired sessions are pruned opportunistically; there is no
// background sweeper.
func (m *Manager) Put(id string, visualizations []apimodels.Visualization) {
	if id == "" || len(visualizations) == 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for key, e := range m.sessions {
		if time.Since(e.updated) > m.ttl {
			delete(m.sessions, key)
		}
	}

	m.sessions[id] = &entry{
		visualizations: visualizations,
		updated:        time.Now(),
	}
}
