// Package eventapi talks to the marketing automation platform: the
// client-credentials token endpoint and the journey event endpoint that
// starts the cart recovery campaign.
package eventapi

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/donaldgifford/cart-abandonment-notifier/pkg/types"
)

// ErrNoToken is returned by EventClient.Send when no access token could be
// obtained. No HTTP call is made.
var ErrNoToken = errors.New("no access token")

// TokenProvider returns an access token for a website. On failure it returns
// an empty token and an *AuthError.
type TokenProvider interface {
	Token(ctx context.Context, websiteID int64) (string, error)
}

// TokenStore persists access tokens across runs, keyed by website id.
// Implementations must be safe for concurrent use across different websites.
// Callers serialize Load/Save sequences for the same website.
type TokenStore interface {
	// Load returns the cached token. A zero AccessToken and nil error mean
	// nothing is cached.
	Load(ctx context.Context, websiteID int64) (domain.AccessToken, error)
	Save(ctx context.Context, websiteID int64, tok domain.AccessToken) error
}

// Sender triggers one journey event for a website.
type Sender interface {
	Send(ctx context.Context, req *Request, websiteID int64) (*Result, error)
}

// AuthError reports a failed client-credentials grant. The cached token is
// left as is and the grant is retried on the next call.
type AuthError struct {
	WebsiteID  int64
	StatusCode int
	Err        error
}

func (e *AuthError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("authenticating website %d (status %d): %v", e.WebsiteID, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("authenticating website %d: %v", e.WebsiteID, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// TransportError reports that the event endpoint could not be reached or
// was refused by the circuit breaker.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("calling event api %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
