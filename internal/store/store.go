// Package store defines the datastore abstraction for cart-abandonment-notifier.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
//
// The storefront tables (websites, stores, quotes, customers, catalog) are
// read only. The notifier owns cart_abandonment_info, scope_config, job_runs
// and scheduler_locks, which are created by the embedded migrations.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/donaldgifford/cart-abandonment-notifier/pkg/types"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// PersistenceError reports a failed write to the notification state. It
// must propagate: losing a trigger-count update causes duplicate emails.
type PersistenceError struct {
	Op      string
	QuoteID int64
	Err     error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s abandonment record for quote %d: %v", e.Op, e.QuoteID, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// CartQuery defines the abandonment filter for one store.
type CartQuery struct {
	StoreID int64
	// CreatedAfter is the abandonment start date of the website.
	CreatedAfter time.Time
	// UpdatedAfter is now minus the store's quote lifetime.
	UpdatedAfter time.Time
	// MaxTriggerCount excludes carts notified this many times (default 2).
	MaxTriggerCount int
	// FirstDueBefore and SecondDueBefore restrict the set to carts due a
	// notification: stage 0 carts updated before FirstDueBefore and stage 1
	// carts updated before SecondDueBefore. Both zero disables the filter.
	// With a Limit set, this keeps not-yet-due carts from taking the slots.
	FirstDueBefore  time.Time
	SecondDueBefore time.Time
	// Limit caps the candidate set. Zero means no limit.
	Limit int
}

// Store defines all data access operations for cart-abandonment-notifier.
type Store interface {
	// Topology
	ListWebsites(ctx context.Context) ([]domain.Website, error)
	ListStores(ctx context.Context, websiteID int64) ([]domain.Store, error)

	// Carts
	FindAbandonedCarts(ctx context.Context, q *CartQuery) ([]domain.CandidateCart, error)
	GetQuote(ctx context.Context, quoteID, storeID int64) (*domain.Quote, error)
	GetCustomer(ctx context.Context, customerID int64) (*domain.Customer, error)
	GetProduct(ctx context.Context, sku string, storeID int64) (*domain.Product, error)

	// Notification state
	GetAbandonmentRecord(ctx context.Context, quoteID int64) (*domain.AbandonmentRecord, error)
	UpsertAbandonmentRecord(
		ctx context.Context,
		quoteID int64,
		count int,
		entityID *int64,
	) (*domain.AbandonmentRecord, error)

	// Scheduler
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, errText string, rowsAffected int) error
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	RecoverStaleJobRuns(ctx context.Context, olderThan time.Duration) (int, error)
	AcquireSchedulerLock(ctx context.Context, jobName string, holder string, ttl time.Duration) (bool, error)
	ReleaseSchedulerLock(ctx context.Context, jobName string, holder string) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
