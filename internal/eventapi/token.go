package eventapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/donaldgifford/cart-abandonment-notifier/internal/metrics"
	"github.com/donaldgifford/cart-abandonment-notifier/internal/scope"
	domain "github.com/donaldgifford/cart-abandonment-notifier/pkg/types"
)

const grantType = "client_credentials"

// TokenManager implements TokenProvider with the client-credentials grant.
// Tokens are cached in a TokenStore so later runs reuse them until expiry.
// Refreshes for the same website are serialized.
type TokenManager struct {
	settings *scope.Settings
	store    TokenStore
	client   *http.Client
	logger   *slog.Logger
	loc      *time.Location
	nowFunc  func() time.Time // for testing

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

// TokenOption configures the TokenManager.
type TokenOption func(*TokenManager)

// WithTokenHTTPClient overrides the default HTTP client.
func WithTokenHTTPClient(c *http.Client) TokenOption {
	return func(m *TokenManager) {
		m.client = c
	}
}

// WithTokenLogger sets the logger.
func WithTokenLogger(l *slog.Logger) TokenOption {
	return func(m *TokenManager) {
		m.logger = l
	}
}

// WithLocation sets the zone expiry timestamps are written in.
func WithLocation(loc *time.Location) TokenOption {
	return func(m *TokenManager) {
		m.loc = loc
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) TokenOption {
	return func(m *TokenManager) {
		m.nowFunc = f
	}
}

// NewTokenManager creates a TokenManager reading credentials from settings
// and caching tokens in store.
func NewTokenManager(settings *scope.Settings, store TokenStore, opts ...TokenOption) *TokenManager {
	m := &TokenManager{
		settings: settings,
		store:    store,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   slog.Default(),
		loc:      time.UTC,
		nowFunc:  time.Now,
		locks:    make(map[int64]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	// ExpiresIn is applied as minutes.
	ExpiresIn int    `json:"expires_in"`
	TokenType string `json:"token_type"`
}

type tokenErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// Token returns a valid access token for the website, performing the grant
// when the cached one is missing or expired. On failure the error is logged
// and an empty token is returned with an *AuthError.
func (m *TokenManager) Token(ctx context.Context, websiteID int64) (string, error) {
	l := m.lockFor(websiteID)
	l.Lock()
	defer l.Unlock()

	now := m.nowFunc().In(m.loc)

	cached, err := m.store.Load(ctx, websiteID)
	if err != nil {
		// A broken cache only costs an extra grant.
		m.logger.Warn("loading cached token", "website_id", websiteID, "error", err)
		cached = domain.AccessToken{}
	}
	if !cached.Expired(now) {
		return cached.Token, nil
	}

	tok, err := m.refresh(ctx, websiteID, now)
	if err != nil {
		metrics.TokenRefreshTotal.WithLabelValues("error").Inc()
		m.logger.Error("access token refresh failed", "website_id", websiteID, "error", err)
		return "", err
	}
	metrics.TokenRefreshTotal.WithLabelValues("success").Inc()

	if err := m.store.Save(ctx, websiteID, tok); err != nil {
		// The fresh token is still usable for this call.
		m.logger.Error("persisting access token", "website_id", websiteID, "error", err)
	} else {
		m.logger.Info("access token updated", "website_id", websiteID, "expires_at", tok.ExpiresAt)
	}

	return tok.Token, nil
}

func (m *TokenManager) lockFor(websiteID int64) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.locks[websiteID]
	if !ok {
		l = &sync.Mutex{}
		m.locks[websiteID] = l
	}
	return l
}

func (m *TokenManager) refresh(ctx context.Context, websiteID int64, now time.Time) (domain.AccessToken, error) {
	creds, err := m.settings.Credentials(ctx, websiteID)
	if err != nil {
		return domain.AccessToken{}, &AuthError{WebsiteID: websiteID, Err: err}
	}

	form := url.Values{
		"grant_type":    {grantType},
		"client_id":     {creds.ClientID},
		"client_secret": {creds.ClientSecret},
		"account_id":    {creds.AccountID},
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		creds.AuthURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return domain.AccessToken{}, &AuthError{WebsiteID: websiteID, Err: fmt.Errorf("creating token request: %w", err)}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.client.Do(req)
	if err != nil {
		return domain.AccessToken{}, &AuthError{WebsiteID: websiteID, Err: fmt.Errorf("executing token request: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.AccessToken{}, &AuthError{
			WebsiteID:  websiteID,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("reading token response: %w", err),
		}
	}

	if resp.StatusCode != http.StatusOK {
		var errResp tokenErrorResponse
		_ = json.Unmarshal(body, &errResp) //nolint:errcheck // best-effort error parsing
		return domain.AccessToken{}, &AuthError{
			WebsiteID:  websiteID,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("token request failed: %s - %s", errResp.Error, errResp.ErrorDescription),
		}
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return domain.AccessToken{}, &AuthError{
			WebsiteID:  websiteID,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("parsing token response: %w", err),
		}
	}
	if tokenResp.AccessToken == "" {
		return domain.AccessToken{}, &AuthError{
			WebsiteID:  websiteID,
			StatusCode: resp.StatusCode,
			Err:        errors.New("token response has no access_token"),
		}
	}

	return domain.AccessToken{
		Token:     tokenResp.AccessToken,
		ExpiresAt: now.Add(time.Duration(tokenResp.ExpiresIn) * time.Minute).Format(domain.TokenTimeLayout),
	}, nil
}
