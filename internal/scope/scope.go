// Package scope provides the scoped key-value configuration that drives the
// notifier per website and store. Lookups resolve store -> website -> default,
// the way the storefront's own configuration does.
package scope

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// Kind identifies the level a configuration value is stored at.
type Kind string

// Scope kinds.
const (
	KindDefault Kind = "default"
	KindWebsite Kind = "websites"
	KindStore   Kind = "stores"
)

// Scope addresses a configuration level. WebsiteID is only meaningful for
// store scopes and enables the store -> website fallback.
type Scope struct {
	Kind      Kind
	ID        int64
	WebsiteID int64
}

// Default returns the global scope.
func Default() Scope { return Scope{Kind: KindDefault} }

// Website returns the scope of a website.
func Website(id int64) Scope { return Scope{Kind: KindWebsite, ID: id} }

// Store returns the scope of a store belonging to websiteID.
func Store(id, websiteID int64) Scope {
	return Scope{Kind: KindStore, ID: id, WebsiteID: websiteID}
}

// String renders the scope for log lines.
func (s Scope) String() string {
	if s.Kind == KindDefault || s.Kind == "" {
		return string(KindDefault)
	}
	return string(s.Kind) + "/" + strconv.FormatInt(s.ID, 10)
}

// chain returns the scopes to try, most specific first.
func (s Scope) chain() []Scope {
	switch s.Kind {
	case KindStore:
		out := []Scope{s}
		if s.WebsiteID != 0 {
			out = append(out, Website(s.WebsiteID))
		}
		return append(out, Default())
	case KindWebsite:
		return []Scope{s, Default()}
	default:
		return []Scope{Default()}
	}
}

// Provider reads scoped configuration values.
type Provider interface {
	// Value returns the value at path for the most specific scope that
	// defines it. ok is false when no scope in the chain defines the path.
	Value(ctx context.Context, path string, s Scope) (value string, ok bool, err error)
}

// Writer persists values and refreshes any cached view of them.
type Writer interface {
	Save(ctx context.Context, path, value string, s Scope) error
	// Reinit drops cached values so the next read observes saved changes.
	Reinit(ctx context.Context) error
}

// ReadWriter is a Provider that can also persist values.
type ReadWriter interface {
	Provider
	Writer
}

// ErrMissing is wrapped by ConfigError when a required value is absent.
var ErrMissing = errors.New("value not configured")

// ConfigError reports a missing or invalid configuration value. The affected
// website or store is skipped for the run.
type ConfigError struct {
	Path  string
	Scope Scope
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s (%s): %v", e.Path, e.Scope, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
