// Package engine runs the cart abandonment job: it walks websites and
// stores, finds carts that are due a notification, triggers the event API
// and records the outcome.
package engine

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/donaldgifford/cart-abandonment-notifier/internal/eventapi"
	"github.com/donaldgifford/cart-abandonment-notifier/internal/notify"
	"github.com/donaldgifford/cart-abandonment-notifier/internal/scope"
	"github.com/donaldgifford/cart-abandonment-notifier/internal/store"
	domain "github.com/donaldgifford/cart-abandonment-notifier/pkg/types"
)

// PayloadBuilder renders the event request for a cart.
type PayloadBuilder interface {
	Build(ctx context.Context, cart *domain.CandidateCart, websiteID, storeID int64) (*eventapi.Request, error)
}

// Engine orchestrates abandonment detection, notification and reporting.
type Engine struct {
	store    store.Store
	sender   eventapi.Sender
	builder  PayloadBuilder
	settings *scope.Settings
	reporter *SummaryReporter
	log      *slog.Logger
	nowFunc  func() time.Time // for testing

	concurrency    int
	candidateLimit int
	lockHolder     string
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	sender eventapi.Sender,
	builder PayloadBuilder,
	settings *scope.Settings,
	n notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:       s,
		sender:      sender,
		builder:     builder,
		settings:    settings,
		log:         slog.Default(),
		nowFunc:     time.Now,
		concurrency: 1,
		lockHolder:  defaultLockHolder(),
	}
	for _, opt := range opts {
		opt(eng)
	}
	eng.reporter = NewSummaryReporter(settings, n, eng.log)
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithNowFunc overrides the clock.
func WithNowFunc(fn func() time.Time) EngineOption {
	return func(e *Engine) {
		e.nowFunc = fn
	}
}

// WithConcurrency sets how many stores are processed at once. Carts within
// a store are always processed sequentially.
func WithConcurrency(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// WithCandidateLimit caps the candidate set per store. Zero means no cap.
func WithCandidateLimit(n int) EngineOption {
	return func(e *Engine) {
		e.candidateLimit = n
	}
}

// WithLockHolder sets the identity recorded on the scheduler lock.
func WithLockHolder(holder string) EngineOption {
	return func(e *Engine) {
		e.lockHolder = holder
	}
}

func defaultLockHolder() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "unknown"
	}
	return host
}
