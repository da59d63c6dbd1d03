package scope

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Configuration paths.
const (
	PathAuthURL           = "marketing/authentication/api_url"
	PathClientID          = "marketing/authentication/client_id"
	PathClientSecret      = "marketing/authentication/client_secret"
	PathAccountID         = "marketing/authentication/account_id"
	PathAccessToken       = "marketing/authentication/access_token"
	PathAccessTokenExpiry = "marketing/authentication/expired_in"

	PathEventAPIURL = "marketing/event_api/general/api_url"

	PathAbandonmentEnabled   = "marketing/event_api/cart_abandonment_alert/enabled"
	PathAbandonmentKey       = "marketing/event_api/cart_abandonment_alert/cart_abandonment_key"
	PathAbandonmentStartDate = "marketing/event_api/cart_abandonment_alert/start_date_of_cart_abandonment"
	PathFirstDelay           = "marketing/event_api/cart_abandonment_alert/x_mins_later_since_cart_first"
	PathSecondDelay          = "marketing/event_api/cart_abandonment_alert/x_mins_later_since_cart_second"

	PathResultAlertEnabled   = "marketing/event_api/result_notification_alert/enabled"
	PathResultAlertSender    = "marketing/event_api/result_notification_alert/email_sender"
	PathResultAlertRecipient = "marketing/event_api/result_notification_alert/send_email"
	PathResultAlertTemplate  = "marketing/event_api/result_notification_alert/email_template"

	PathBaseURL           = "web/secure/base_link_url"
	PathLoginRedirectPath = "customer/sso/login_redirect_path"
	PathQuoteLifetime     = "checkout/cart/delete_quote_after"
)

// Defaults applied when an optional path is unset.
const (
	DefaultQuoteLifetimeDays = 30
	DefaultLoginRedirectPath = "customer/account/login?redirect_uri="
)

// StartDateLayouts are accepted for the abandonment start date.
var StartDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Settings resolves typed values from a Provider.
type Settings struct {
	p   Provider
	loc *time.Location
}

// NewSettings wraps p. Dates without a zone are parsed in loc, which defaults
// to UTC.
func NewSettings(p Provider, loc *time.Location) *Settings {
	if loc == nil {
		loc = time.UTC
	}
	return &Settings{p: p, loc: loc}
}

// Provider returns the underlying provider.
func (s *Settings) Provider() Provider { return s.p }

// String returns the raw value at path and whether any scope defines it.
func (s *Settings) String(ctx context.Context, path string, sc Scope) (string, bool, error) {
	v, ok, err := s.p.Value(ctx, path, sc)
	if err != nil {
		return "", false, &ConfigError{Path: path, Scope: sc, Err: err}
	}
	return strings.TrimSpace(v), ok, nil
}

// Required returns the value at path, or a *ConfigError when it is unset or
// blank.
func (s *Settings) Required(ctx context.Context, path string, sc Scope) (string, error) {
	v, ok, err := s.String(ctx, path, sc)
	if err != nil {
		return "", err
	}
	if !ok || v == "" {
		return "", &ConfigError{Path: path, Scope: sc, Err: ErrMissing}
	}
	return v, nil
}

// Bool reads a flag. Unset paths are false.
func (s *Settings) Bool(ctx context.Context, path string, sc Scope) (bool, error) {
	v, ok, err := s.String(ctx, path, sc)
	if err != nil || !ok || v == "" {
		return false, err
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	return false, &ConfigError{Path: path, Scope: sc, Err: fmt.Errorf("invalid flag %q", v)}
}

// Int reads a non-negative integer, returning def when the path is unset.
func (s *Settings) Int(ctx context.Context, path string, sc Scope, def int) (int, error) {
	v, ok, err := s.String(ctx, path, sc)
	if err != nil {
		return 0, err
	}
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, &ConfigError{Path: path, Scope: sc, Err: fmt.Errorf("invalid integer %q", v)}
	}
	return n, nil
}

// AbandonmentEnabled reports whether the feature is on for the website.
func (s *Settings) AbandonmentEnabled(ctx context.Context, websiteID int64) (bool, error) {
	return s.Bool(ctx, PathAbandonmentEnabled, Website(websiteID))
}

// Delays returns the first and second trigger delays for the website.
func (s *Settings) Delays(ctx context.Context, websiteID int64) (first, second time.Duration, err error) {
	sc := Website(websiteID)
	f, err := s.minutes(ctx, PathFirstDelay, sc)
	if err != nil {
		return 0, 0, err
	}
	sec, err := s.minutes(ctx, PathSecondDelay, sc)
	if err != nil {
		return 0, 0, err
	}
	return f, sec, nil
}

func (s *Settings) minutes(ctx context.Context, path string, sc Scope) (time.Duration, error) {
	v, err := s.Required(ctx, path, sc)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, &ConfigError{Path: path, Scope: sc, Err: fmt.Errorf("invalid minutes %q", v)}
	}
	return time.Duration(n) * time.Minute, nil
}

// StartDate returns the floor on cart creation time for the website.
func (s *Settings) StartDate(ctx context.Context, websiteID int64) (time.Time, error) {
	sc := Website(websiteID)
	v, err := s.Required(ctx, PathAbandonmentStartDate, sc)
	if err != nil {
		return time.Time{}, err
	}
	for _, layout := range StartDateLayouts {
		if t, perr := time.ParseInLocation(layout, v, s.loc); perr == nil {
			return t, nil
		}
	}
	return time.Time{}, &ConfigError{
		Path:  PathAbandonmentStartDate,
		Scope: sc,
		Err:   fmt.Errorf("invalid date %q", v),
	}
}

// QuoteLifetimeDays returns how long a cart stays eligible, read from the
// store scope.
func (s *Settings) QuoteLifetimeDays(ctx context.Context, storeID, websiteID int64) (int, error) {
	return s.Int(ctx, PathQuoteLifetime, Store(storeID, websiteID), DefaultQuoteLifetimeDays)
}

// EventDefinitionKey returns the campaign key for the website.
func (s *Settings) EventDefinitionKey(ctx context.Context, websiteID int64) (string, error) {
	return s.Required(ctx, PathAbandonmentKey, Website(websiteID))
}

// BaseURL returns the secure storefront URL for the website, always ending
// in a slash.
func (s *Settings) BaseURL(ctx context.Context, websiteID int64) (string, error) {
	v, err := s.Required(ctx, PathBaseURL, Website(websiteID))
	if err != nil {
		return "", err
	}
	if !strings.HasSuffix(v, "/") {
		v += "/"
	}
	return v, nil
}

// LoginRedirectPath returns the storefront path that signs a customer in and
// forwards to the URL appended to it.
func (s *Settings) LoginRedirectPath(ctx context.Context, websiteID int64) (string, error) {
	v, ok, err := s.String(ctx, PathLoginRedirectPath, Website(websiteID))
	if err != nil {
		return "", err
	}
	if !ok || v == "" {
		return DefaultLoginRedirectPath, nil
	}
	return strings.TrimPrefix(v, "/"), nil
}

// EventAPIURL returns the event endpoint for the website, falling back to the
// default scope.
func (s *Settings) EventAPIURL(ctx context.Context, websiteID int64) (string, error) {
	return s.Required(ctx, PathEventAPIURL, Website(websiteID))
}

// Credentials holds the client-credentials grant parameters for a website.
type Credentials struct {
	AuthURL      string
	ClientID     string
	ClientSecret string
	AccountID    string
}

// Credentials resolves the auth URL and client id/secret from the default
// scope and the account id from the website scope.
func (s *Settings) Credentials(ctx context.Context, websiteID int64) (Credentials, error) {
	var (
		c    Credentials
		errs []error
		err  error
	)
	if c.AuthURL, err = s.Required(ctx, PathAuthURL, Default()); err != nil {
		errs = append(errs, err)
	}
	if c.ClientID, err = s.Required(ctx, PathClientID, Default()); err != nil {
		errs = append(errs, err)
	}
	if c.ClientSecret, err = s.Required(ctx, PathClientSecret, Default()); err != nil {
		errs = append(errs, err)
	}
	if c.AccountID, err = s.Required(ctx, PathAccountID, Website(websiteID)); err != nil {
		errs = append(errs, err)
	}
	return c, errors.Join(errs...)
}

// ResultAlert is the operator summary email configuration of a website.
type ResultAlert struct {
	Enabled    bool
	Sender     string
	Recipients []string
	TemplateID string
}

// ResultAlert returns the summary email settings for the website. Sender,
// recipient and template are only required when the alert is enabled.
func (s *Settings) ResultAlert(ctx context.Context, websiteID int64) (ResultAlert, error) {
	sc := Website(websiteID)
	enabled, err := s.Bool(ctx, PathResultAlertEnabled, sc)
	if err != nil || !enabled {
		return ResultAlert{}, err
	}

	ra := ResultAlert{Enabled: true}
	var errs []error
	if ra.Sender, err = s.Required(ctx, PathResultAlertSender, sc); err != nil {
		errs = append(errs, err)
	}
	recipients, err := s.Required(ctx, PathResultAlertRecipient, sc)
	if err != nil {
		errs = append(errs, err)
	}
	for _, r := range strings.Split(recipients, ",") {
		if r = strings.TrimSpace(r); r != "" {
			ra.Recipients = append(ra.Recipients, r)
		}
	}
	if ra.TemplateID, err = s.Required(ctx, PathResultAlertTemplate, sc); err != nil {
		errs = append(errs, err)
	}
	return ra, errors.Join(errs...)
}
