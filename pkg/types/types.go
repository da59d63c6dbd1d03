// Package domain defines the core business types for the cart abandonment notifier.
package domain

import (
	"time"
)

// TokenTimeLayout is the layout used to persist access token expiry. Values in
// this layout compare correctly as plain strings.
const TokenTimeLayout = "2006-01-02 15:04:05"

// MaxTriggerCount is the notification stage after which a cart is never
// considered again.
const MaxTriggerCount = 2

// Website groups one or more stores and owns website-scoped configuration.
type Website struct {
	ID   int64  `json:"id"   db:"website_id"`
	Code string `json:"code" db:"code"`
}

// Store is a storefront under a website.
type Store struct {
	ID        int64  `json:"id"         db:"store_id"`
	WebsiteID int64  `json:"website_id" db:"website_id"`
	Code      string `json:"code"       db:"code"`
}

// CandidateCart is a cart row returned by the abandonment query.
type CandidateCart struct {
	QuoteID           int64     `json:"quote_id"            db:"quote_id"`
	StoreID           int64     `json:"store_id"            db:"store_id"`
	CustomerID        *int64    `json:"customer_id"         db:"customer_id"`
	CustomerEmail     string    `json:"customer_email"      db:"customer_email"`
	UpdatedAt         time.Time `json:"updated_at"          db:"updated_at"`
	EventTriggerCount int       `json:"event_trigger_count" db:"event_trigger_count"`
}

// IsGuest reports whether the cart belongs to a guest checkout.
func (c *CandidateCart) IsGuest() bool {
	return c.CustomerID == nil || *c.CustomerID == 0
}

// Address holds the identity fields of a billing address.
type Address struct {
	Email     string `json:"email"     db:"email"`
	FirstName string `json:"firstname" db:"firstname"`
	LastName  string `json:"lastname"  db:"lastname"`
}

// QuoteItem is a single cart line.
type QuoteItem struct {
	SKU   string  `json:"sku"   db:"sku"`
	Name  string  `json:"name"  db:"name"`
	Price float64 `json:"price" db:"price"`
}

// Quote is the full cart read by the payload builder. It is never mutated by
// this system.
type Quote struct {
	ID                int64       `json:"id"                 db:"entity_id"`
	StoreID           int64       `json:"store_id"           db:"store_id"`
	CustomerID        *int64      `json:"customer_id"        db:"customer_id"`
	CustomerEmail     string      `json:"customer_email"     db:"customer_email"`
	CustomerFirstName string      `json:"customer_firstname" db:"customer_firstname"`
	CustomerLastName  string      `json:"customer_lastname"  db:"customer_lastname"`
	BillingAddress    Address     `json:"billing_address"`
	Items             []QuoteItem `json:"items"`
}

// Customer is a registered storefront customer.
type Customer struct {
	ID        int64  `json:"id"          db:"entity_id"`
	Email     string `json:"email"       db:"email"`
	FirstName string `json:"firstname"   db:"firstname"`
	LastName  string `json:"lastname"    db:"lastname"`
	// ExternalID is the stable identity-provider subject for the customer.
	ExternalID string `json:"external_id" db:"external_id"`
}

// Product carries the catalog attributes copied into the event payload.
type Product struct {
	SKU              string   `json:"sku"               db:"sku"`
	Brand            string   `json:"brand"             db:"brand"`
	DetailURL        string   `json:"detail_url"        db:"detail_url"`
	ImageURL         string   `json:"image_url"         db:"image_url"`
	AdditionalImages []string `json:"additional_images" db:"additional_images"`
	ShortDescription string   `json:"short_description" db:"short_description"`
	SpecialPrice     *float64 `json:"special_price"     db:"special_price"`

	ExcludeFromAbandonmentAlert bool `json:"exclude_cart_abandonment_alert" db:"exclude_cart_abandonment_alert"`
}

// AbandonmentRecord tracks how many recovery notifications a cart has received.
// There is at most one record per quote.
type AbandonmentRecord struct {
	EntityID          int64 `json:"entity_id"           db:"entity_id"`
	QuoteID           int64 `json:"quote_id"            db:"quote_id"`
	EventTriggerCount int   `json:"event_trigger_count" db:"event_trigger_count"`
}

// Terminal reports whether no further notification is possible for the cart.
func (r *AbandonmentRecord) Terminal() bool {
	return r.EventTriggerCount >= MaxTriggerCount
}

// AccessToken is a cached event API credential for one website.
type AccessToken struct {
	Token     string `json:"access_token"`
	ExpiresAt string `json:"expires_at"`
}

// Expired reports whether the token must be refreshed at now. A missing token
// or expiry is always expired.
func (t AccessToken) Expired(now time.Time) bool {
	if t.Token == "" || t.ExpiresAt == "" {
		return true
	}
	return now.Format(TokenTimeLayout) >= t.ExpiresAt
}

// StoreResult is the outcome of processing one store's candidate set.
type StoreResult struct {
	WebsiteID      int64   `json:"website_id"`
	StoreID        int64   `json:"store_id"`
	Candidates     int     `json:"candidates"`
	Skipped        int     `json:"skipped"`
	SuccessCount   int     `json:"success_count"`
	FailureCount   int     `json:"failure_count"`
	FailedQuoteIDs []int64 `json:"failed_quote_ids"`
	Error          string  `json:"error,omitempty"`
}

// Total returns the number of carts for which the event API was attempted.
func (r *StoreResult) Total() int {
	return r.SuccessCount + r.FailureCount
}

// Job run statuses.
// AbandonmentJobName identifies the abandonment job in job_runs and
// scheduler_locks.
const AbandonmentJobName = "cart_abandonment"

const (
	JobStatusRunning   = "running"
	JobStatusSucceeded = "succeeded"
	JobStatusFailed    = "failed"
	JobStatusCrashed   = "crashed"
)

// JobRun records a single execution of a scheduled job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}

// RunSummary aggregates one scheduler invocation.
type RunSummary struct {
	RunID      string        `json:"run_id"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Stores     []StoreResult `json:"stores"`
}

// Totals sums success and failure counts across all stores.
func (s *RunSummary) Totals() (success, failure int) {
	for i := range s.Stores {
		success += s.Stores[i].SuccessCount
		failure += s.Stores[i].FailureCount
	}
	return success, failure
}
