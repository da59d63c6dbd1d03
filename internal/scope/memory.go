package scope

import (
	"context"
	"strconv"
	"sync"
)

// MemoryProvider is a ReadWriter held entirely in memory. It backs runs that
// take their scoped configuration from the YAML file, and tests.
type MemoryProvider struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryProvider creates an empty MemoryProvider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{values: make(map[string]string)}
}

// Set stores value at path for scope s.
func (m *MemoryProvider) Set(path, value string, s Scope) *MemoryProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key(path, s)] = value
	return m
}

// Value implements Provider.
func (m *MemoryProvider) Value(_ context.Context, path string, s Scope) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, sc := range s.chain() {
		if v, ok := m.values[key(path, sc)]; ok {
			return v, true, nil
		}
	}
	return "", false, nil
}

// Save implements Writer.
func (m *MemoryProvider) Save(_ context.Context, path, value string, s Scope) error {
	m.Set(path, value, s)
	return nil
}

// Reinit implements Writer. Values are never cached separately, so it is a no-op.
func (*MemoryProvider) Reinit(context.Context) error { return nil }

func key(path string, s Scope) string {
	kind := s.Kind
	if kind == "" {
		kind = KindDefault
	}
	id := s.ID
	if kind == KindDefault {
		id = 0
	}
	return string(kind) + "|" + strconv.FormatInt(id, 10) + "|" + path
}
