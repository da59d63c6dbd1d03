package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/cart-abandonment-notifier/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Pool exposes the underlying pool so the scope provider can share it.
func (s *PostgresStore) Pool() *pgxpool.Pool {
	return s.pool
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// ListWebsites returns every non-admin website ordered by id.
func (s *PostgresStore) ListWebsites(ctx context.Context) ([]domain.Website, error) {
	rows, err := s.pool.Query(ctx, queryListWebsites)
	if err != nil {
		return nil, fmt.Errorf("querying websites: %w", err)
	}
	defer rows.Close()

	var websites []domain.Website
	for rows.Next() {
		var w domain.Website
		if err := rows.Scan(&w.ID, &w.Code); err != nil {
			return nil, fmt.Errorf("scanning website: %w", err)
		}
		websites = append(websites, w)
	}
	return websites, rows.Err()
}

// ListStores returns the active stores of a website ordered by id.
func (s *PostgresStore) ListStores(ctx context.Context, websiteID int64) ([]domain.Store, error) {
	rows, err := s.pool.Query(ctx, queryListStores, websiteID)
	if err != nil {
		return nil, fmt.Errorf("querying stores for website %d: %w", websiteID, err)
	}
	defer rows.Close()

	var stores []domain.Store
	for rows.Next() {
		var st domain.Store
		if err := rows.Scan(&st.ID, &st.WebsiteID, &st.Code); err != nil {
			return nil, fmt.Errorf("scanning store: %w", err)
		}
		stores = append(stores, st)
	}
	return stores, rows.Err()
}

// FindAbandonedCarts returns the candidate carts matching q, ordered by quote id.
func (s *PostgresStore) FindAbandonedCarts(
	ctx context.Context,
	q *CartQuery,
) ([]domain.CandidateCart, error) {
	sql, args := q.ToSQL()

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying abandoned carts for store %d: %w", q.StoreID, err)
	}
	defer rows.Close()

	var carts []domain.CandidateCart
	for rows.Next() {
		var c domain.CandidateCart
		if err := rows.Scan(
			&c.QuoteID, &c.StoreID, &c.CustomerID, &c.CustomerEmail,
			&c.UpdatedAt, &c.EventTriggerCount,
		); err != nil {
			return nil, fmt.Errorf("scanning candidate cart: %w", err)
		}
		carts = append(carts, c)
	}
	return carts, rows.Err()
}

// GetQuote loads a quote with its billing address and top-level items.
func (s *PostgresStore) GetQuote(ctx context.Context, quoteID, storeID int64) (*domain.Quote, error) {
	var q domain.Quote
	err := s.pool.QueryRow(ctx, queryGetQuote, quoteID, storeID).Scan(
		&q.ID, &q.StoreID, &q.CustomerID,
		&q.CustomerEmail, &q.CustomerFirstName, &q.CustomerLastName,
		&q.BillingAddress.Email, &q.BillingAddress.FirstName, &q.BillingAddress.LastName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("quote %d: %w", quoteID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting quote %d: %w", quoteID, err)
	}

	rows, err := s.pool.Query(ctx, queryListQuoteItems, quoteID)
	if err != nil {
		return nil, fmt.Errorf("querying items for quote %d: %w", quoteID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var it domain.QuoteItem
		if err := rows.Scan(&it.SKU, &it.Name, &it.Price); err != nil {
			return nil, fmt.Errorf("scanning quote item: %w", err)
		}
		q.Items = append(q.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items for quote %d: %w", quoteID, err)
	}

	return &q, nil
}

// GetCustomer loads a registered customer by id.
func (s *PostgresStore) GetCustomer(ctx context.Context, customerID int64) (*domain.Customer, error) {
	var c domain.Customer
	err := s.pool.QueryRow(ctx, queryGetCustomer, customerID).Scan(
		&c.ID, &c.Email, &c.FirstName, &c.LastName, &c.ExternalID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("customer %d: %w", customerID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting customer %d: %w", customerID, err)
	}
	return &c, nil
}

// GetProduct loads catalog attributes for a sku as seen by a store.
func (s *PostgresStore) GetProduct(ctx context.Context, sku string, storeID int64) (*domain.Product, error) {
	args := pgx.NamedArgs{
		"sku":      sku,
		"store_id": storeID,
	}

	var p domain.Product
	err := s.pool.QueryRow(ctx, queryGetProduct, args).Scan(
		&p.SKU, &p.Brand, &p.DetailURL, &p.ImageURL, &p.AdditionalImages,
		&p.ShortDescription, &p.SpecialPrice, &p.ExcludeFromAbandonmentAlert,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("product %q: %w", sku, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting product %q: %w", sku, err)
	}
	return &p, nil
}

// GetAbandonmentRecord returns the notification record for a quote, or
// ErrNotFound when the cart was never notified.
func (s *PostgresStore) GetAbandonmentRecord(
	ctx context.Context,
	quoteID int64,
) (*domain.AbandonmentRecord, error) {
	var r domain.AbandonmentRecord
	err := s.pool.QueryRow(ctx, queryGetAbandonmentRecord, quoteID).Scan(
		&r.EntityID, &r.QuoteID, &r.EventTriggerCount,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &PersistenceError{Op: "loading", QuoteID: quoteID, Err: err}
	}
	return &r, nil
}

// UpsertAbandonmentRecord inserts a record when entityID is nil and updates
// the identified row otherwise. An insert that races an existing row for the
// same quote updates that row instead.
func (s *PostgresStore) UpsertAbandonmentRecord(
	ctx context.Context,
	quoteID int64,
	count int,
	entityID *int64,
) (*domain.AbandonmentRecord, error) {
	query := queryInsertAbandonmentRecord
	op := "inserting"
	args := pgx.NamedArgs{
		"quote_id": quoteID,
		"count":    count,
	}
	if entityID != nil {
		query = queryUpdateAbandonmentRecord
		op = "updating"
		args["entity_id"] = *entityID
	}

	var r domain.AbandonmentRecord
	err := s.pool.QueryRow(ctx, query, args).Scan(&r.EntityID, &r.QuoteID, &r.EventTriggerCount)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &PersistenceError{Op: op, QuoteID: quoteID, Err: ErrNotFound}
	}
	if err != nil {
		return nil, &PersistenceError{Op: op, QuoteID: quoteID, Err: err}
	}
	return &r, nil
}

// InsertJobRun records the start of a scheduled job and returns its UUID.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun marks a job run as finished with the given status and metadata.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	errText string,
	rowsAffected int,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListJobRuns returns the most recent runs for a specific job, newest first.
func (s *PostgresStore) ListJobRuns(
	ctx context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListJobRuns, jobName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// ListLatestJobRuns returns the single most recent run for each distinct job name.
func (s *PostgresStore) ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListLatestJobRuns)
	if err != nil {
		return nil, fmt.Errorf("querying latest job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// RecoverStaleJobRuns marks any 'running' job rows older than olderThan as 'crashed',
// then deletes all rows older than 30 days. Returns the number of rows marked as crashed.
func (s *PostgresStore) RecoverStaleJobRuns(
	ctx context.Context,
	olderThan time.Duration,
) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	tag, err := s.pool.Exec(ctx, queryMarkStaleJobRunsCrashed, cutoff)
	if err != nil {
		return 0, fmt.Errorf("marking stale job runs crashed: %w", err)
	}
	affected := int(tag.RowsAffected())

	if _, err := s.pool.Exec(ctx, queryDeleteOldJobRuns); err != nil {
		return affected, fmt.Errorf("deleting old job runs: %w", err)
	}

	return affected, nil
}

// AcquireSchedulerLock attempts to acquire a distributed lock for the given job.
// Returns true if the lock was acquired, false if another holder already owns it.
func (s *PostgresStore) AcquireSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
	ttl time.Duration,
) (bool, error) {
	expiresAt := time.Now().Add(ttl)

	var gotName string
	err := s.pool.QueryRow(ctx, queryAcquireSchedulerLock, jobName, holder, expiresAt).Scan(&gotName)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil // lock held by another; conflict not replaced
	}
	if err != nil {
		return false, fmt.Errorf("acquiring scheduler lock: %w", err)
	}

	return true, nil
}

// ReleaseSchedulerLock deletes the lock row for the given job and holder.
func (s *PostgresStore) ReleaseSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
) error {
	_, err := s.pool.Exec(ctx, queryReleaseSchedulerLock, jobName, holder)
	if err != nil {
		return fmt.Errorf("releasing scheduler lock: %w", err)
	}
	return nil
}

// scanJobRuns scans rows from a job_runs query into a slice.
func scanJobRuns(rows pgx.Rows) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
