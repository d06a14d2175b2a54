package engine

import (
	"sync"
	"sync/atomic"

	"github.com/frankyi-gh/aplcheck/internal/core"
)

// Manager holds the currently active Checker and allows swapping the APL
// at runtime (admin APL updates) without interrupting in-flight checks.
type Manager struct {
	current atomic.Pointer[Checker]
	mu      sync.Mutex
}

func NewManager(apl *core.APL) *Manager {
	m := &Manager{}
	m.current.Store(New(apl))
	return m
}

func (m *Manager) Checker() *Checker {
	return m.current.Load()
}

// Update replaces the active APL. Callers are expected to have validated
// the APL at construction time (config.Build does).
func (m *Manager) Update(apl *core.APL) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current.Store(New(apl))
}
