package scope

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	queryLoadScopeConfig = `
		SELECT scope, scope_id, path, COALESCE(value, '')
		FROM scope_config`

	querySaveScopeConfig = `
		INSERT INTO scope_config (scope, scope_id, path, value, updated_at)
		VALUES (@scope, @scope_id, @path, @value, now())
		ON CONFLICT (scope, scope_id, path) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = now()`
)

// DB is the subset of *pgxpool.Pool used by PostgresProvider.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresProvider reads scoped configuration from the scope_config table.
// The whole table is loaded on first use and kept until Reinit.
type PostgresProvider struct {
	db DB

	mu     sync.RWMutex
	cache  *MemoryProvider
	loaded bool
}

// NewPostgresProvider creates a provider over db.
func NewPostgresProvider(db DB) *PostgresProvider {
	return &PostgresProvider{db: db}
}

// Value implements Provider.
func (p *PostgresProvider) Value(ctx context.Context, path string, s Scope) (string, bool, error) {
	cache, err := p.snapshot(ctx)
	if err != nil {
		return "", false, err
	}
	return cache.Value(ctx, path, s)
}

// Save implements Writer. The cached snapshot is left untouched until Reinit.
func (p *PostgresProvider) Save(ctx context.Context, path, value string, s Scope) error {
	kind := s.Kind
	if kind == "" {
		kind = KindDefault
	}
	_, err := p.db.Exec(ctx, querySaveScopeConfig, pgx.NamedArgs{
		"scope":    string(kind),
		"scope_id": s.ID,
		"path":     path,
		"value":    value,
	})
	if err != nil {
		return fmt.Errorf("saving %s for %s: %w", path, s, err)
	}
	return nil
}

// Reinit implements Writer by discarding the cached snapshot.
func (p *PostgresProvider) Reinit(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cache = nil
	p.loaded = false
	return nil
}

func (p *PostgresProvider) snapshot(ctx context.Context) (*MemoryProvider, error) {
	p.mu.RLock()
	if p.loaded {
		c := p.cache
		p.mu.RUnlock()
		return c, nil
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.loaded {
		return p.cache, nil
	}

	rows, err := p.db.Query(ctx, queryLoadScopeConfig)
	if err != nil {
		return nil, fmt.Errorf("loading scope config: %w", err)
	}
	defer rows.Close()

	cache := NewMemoryProvider()
	for rows.Next() {
		var (
			kind, path, value string
			id                int64
		)
		if err := rows.Scan(&kind, &id, &path, &value); err != nil {
			return nil, fmt.Errorf("scanning scope config: %w", err)
		}
		cache.Set(path, value, Scope{Kind: Kind(kind), ID: id})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scope config: %w", err)
	}

	p.cache = cache
	p.loaded = true
	return cache, nil
}
