package eventapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sony/gobreaker"

	"github.com/donaldgifford/cart-abandonment-notifier/internal/metrics"
	"github.com/donaldgifford/cart-abandonment-notifier/internal/scope"
)

// maxResponseBody caps how much of a response is kept for logging.
const maxResponseBody = 64 << 10

// errServerStatus marks 5xx responses so the breaker counts them as failures.
var errServerStatus = errors.New("server error status")

// Result is the event endpoint response. Any status is a valid Result; only
// 201 counts as accepted.
type Result struct {
	StatusCode int
	Body       string
}

// Succeeded reports whether the event was accepted.
func (r *Result) Succeeded() bool {
	return r != nil && r.StatusCode == http.StatusCreated
}

// EventClient implements Sender against the platform's event endpoint.
type EventClient struct {
	tokens      TokenProvider
	settings    *scope.Settings
	client      *http.Client
	rateLimiter *RateLimiter
	breakerCfg  BreakerConfig
	logger      *slog.Logger

	// One breaker per website: each website has its own endpoint and
	// credentials, so a failing tenant must not block the others.
	mu       sync.Mutex
	breakers map[int64]*gobreaker.CircuitBreaker
}

// EventOption configures the EventClient.
type EventOption func(*EventClient)

// WithEventHTTPClient overrides the default HTTP client.
func WithEventHTTPClient(hc *http.Client) EventOption {
	return func(c *EventClient) {
		c.client = hc
	}
}

// WithRateLimiter injects a rate limiter. When set, every Send goes through
// Wait first.
func WithRateLimiter(r *RateLimiter) EventOption {
	return func(c *EventClient) {
		c.rateLimiter = r
	}
}

// WithBreakerConfig overrides the circuit breaker settings.
func WithBreakerConfig(cfg BreakerConfig) EventOption {
	return func(c *EventClient) {
		c.breakerCfg = cfg
	}
}

// WithEventLogger sets the logger.
func WithEventLogger(l *slog.Logger) EventOption {
	return func(c *EventClient) {
		c.logger = l
	}
}

// NewEventClient creates an event client. The endpoint URL is resolved per
// website from settings on every call.
func NewEventClient(tokens TokenProvider, settings *scope.Settings, opts ...EventOption) *EventClient {
	c := &EventClient{
		tokens:     tokens,
		settings:   settings,
		client:     &http.Client{Timeout: 30 * time.Second},
		breakerCfg: DefaultBreakerConfig(),
		logger:     slog.Default(),
		breakers:   make(map[int64]*gobreaker.CircuitBreaker),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send posts req for the website. When no token is available it returns
// ErrNoToken without calling the endpoint. Network failures, exhausted
// quota and an open breaker are returned as *TransportError. Non-201
// responses are returned as a Result with a nil error.
func (c *EventClient) Send(ctx context.Context, req *Request, websiteID int64) (*Result, error) {
	token, err := c.tokens.Token(ctx, websiteID)
	if token == "" {
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoToken, err)
		}
		return nil, ErrNoToken
	}

	endpoint, err := c.settings.EventAPIURL(ctx, websiteID)
	if err != nil {
		return nil, err
	}

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.EventAPIDailyLimitHits.Inc()
			}
			return nil, &TransportError{URL: endpoint, Err: fmt.Errorf("rate limit: %w", err)}
		}
		metrics.EventAPIDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}

	start := time.Now()
	out, err := c.breakerFor(websiteID).Execute(func() (any, error) {
		return c.post(ctx, endpoint, token, req)
	})
	metrics.EventAPIDuration.Observe(time.Since(start).Seconds())

	res, _ := out.(*Result)
	if err != nil && !errors.Is(err, errServerStatus) {
		metrics.EventAPICallsTotal.WithLabelValues("error").Inc()
		var te *TransportError
		if errors.As(err, &te) {
			return nil, te
		}
		return nil, &TransportError{URL: endpoint, Err: err}
	}

	metrics.EventAPICallsTotal.WithLabelValues(strconv.Itoa(res.StatusCode)).Inc()
	c.logger.Debug("event api responded",
		"website_id", websiteID,
		"status", res.StatusCode,
		"contact_key", req.ContactKey)
	return res, nil
}

func (c *EventClient) breakerFor(websiteID int64) *gobreaker.CircuitBreaker {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.breakers[websiteID]
	if !ok {
		cfg := c.breakerCfg
		cfg.Name = c.breakerCfg.Name + "-" + strconv.FormatInt(websiteID, 10)
		b = newBreaker(cfg, c.logger)
		c.breakers[websiteID] = b
	}
	return b
}

func (c *EventClient) post(ctx context.Context, endpoint, token string, req *Request) (*Result, error) {
	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		endpoint,
		strings.NewReader(req.Encode()),
	)
	if err != nil {
		return nil, &TransportError{URL: endpoint, Err: fmt.Errorf("creating HTTP request: %w", err)}
	}

	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &TransportError{URL: endpoint, Err: fmt.Errorf("executing event request: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, &TransportError{URL: endpoint, Err: fmt.Errorf("reading response body: %w", err)}
	}

	res := &Result{StatusCode: resp.StatusCode, Body: string(body)}
	if resp.StatusCode >= http.StatusInternalServerError {
		return res, errServerStatus
	}
	return res, nil
}
