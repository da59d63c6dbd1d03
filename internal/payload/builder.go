// Package payload turns an abandoned cart into an event API request.
package payload

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/donaldgifford/cart-abandonment-notifier/internal/eventapi"
	"github.com/donaldgifford/cart-abandonment-notifier/internal/scope"
	domain "github.com/donaldgifford/cart-abandonment-notifier/pkg/types"
)

const (
	// MaxItems is the number of cart lines copied into a payload.
	MaxItems = 5

	subImages = 5

	contactKeyLayout = "2006010203:04:05"
	regDateLayout    = "2006/01/02 03:04:05"
)

// ErrNoPayload means the cart cannot produce a request: no usable email or
// no eligible items. The cart is skipped without counting as a failure.
var ErrNoPayload = errors.New("no payload")

// Repository is the read access the builder needs.
type Repository interface {
	GetQuote(ctx context.Context, quoteID, storeID int64) (*domain.Quote, error)
	GetCustomer(ctx context.Context, customerID int64) (*domain.Customer, error)
	GetProduct(ctx context.Context, sku string, storeID int64) (*domain.Product, error)
}

// Builder assembles event API requests for candidate carts.
type Builder struct {
	repo     Repository
	settings *scope.Settings
	logger   *slog.Logger
	loc      *time.Location
	nowFunc  func() time.Time // for testing
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = l
	}
}

// WithLocation sets the zone payload timestamps are rendered in.
func WithLocation(loc *time.Location) Option {
	return func(b *Builder) {
		b.loc = loc
	}
}

// WithNowFunc overrides the clock.
func WithNowFunc(fn func() time.Time) Option {
	return func(b *Builder) {
		b.nowFunc = fn
	}
}

// New creates a Builder.
func New(repo Repository, settings *scope.Settings, opts ...Option) *Builder {
	b := &Builder{
		repo:     repo,
		settings: settings,
		logger:   slog.Default(),
		loc:      time.UTC,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build loads the cart and renders its request. It returns an error wrapping
// ErrNoPayload when the cart has nothing to send.
func (b *Builder) Build(
	ctx context.Context,
	cart *domain.CandidateCart,
	websiteID, storeID int64,
) (*eventapi.Request, error) {
	quote, err := b.repo.GetQuote(ctx, cart.QuoteID, storeID)
	if err != nil {
		return nil, fmt.Errorf("%w: loading quote %d: %w", ErrNoPayload, cart.QuoteID, err)
	}

	cc, err := b.customerContext(ctx, quote)
	if err != nil {
		return nil, err
	}

	email := cc.Email()
	if email == "" || email == "NULL" {
		return nil, fmt.Errorf("%w: email empty for quote %d", ErrNoPayload, cart.QuoteID)
	}

	baseURL, err := b.settings.BaseURL(ctx, websiteID)
	if err != nil {
		return nil, err
	}
	eventKey, err := b.settings.EventDefinitionKey(ctx, websiteID)
	if err != nil {
		return nil, err
	}

	now := b.nowFunc().In(b.loc)
	contactKey := cc.ContactPrefix() + "_" + strconv.FormatInt(quote.ID, 10) + "_" + now.Format(contactKeyLayout)

	req := &eventapi.Request{
		ContactKey:         contactKey,
		EventDefinitionKey: eventKey,
	}
	req.Set("mailaddress", email)
	req.Set("contactkey", contactKey)

	switch c := cc.(type) {
	case LoggedIn:
		loginPath, err := b.settings.LoginRedirectPath(ctx, websiteID)
		if err != nil {
			return nil, err
		}
		req.Set("rid", c.Hash)
		req.Set("lastname", c.LastName)
		req.Set("firstname", c.FirstName)
		req.Set("cart_url_checkout", baseURL+loginPath+baseURL+"checkout")
		req.Set("cart_url_mybag", baseURL+loginPath+baseURL+"checkout/cart")
	case Guest:
		req.Set("rid", "")
		req.Set("lastname", c.Billing.LastName)
		req.Set("firstname", c.Billing.FirstName)
		req.Set("cart_url_checkout", baseURL+"checkout")
		req.Set("cart_url_mybag", baseURL+"checkout/cart")
	}

	if n := b.addItems(ctx, req, quote, storeID); n == 0 {
		return nil, fmt.Errorf("%w: no eligible items for quote %d", ErrNoPayload, cart.QuoteID)
	}

	req.Set("reg_date", now.Format(regDateLayout))
	req.Set("sending_count", strconv.Itoa(sendingCount(cart.EventTriggerCount)))

	return req, nil
}

func (b *Builder) customerContext(ctx context.Context, q *domain.Quote) (CustomerContext, error) {
	if q.CustomerID == nil || *q.CustomerID == 0 {
		return Guest{Billing: q.BillingAddress}, nil
	}

	c, err := b.repo.GetCustomer(ctx, *q.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("%w: loading customer %d for quote %d: %w", ErrNoPayload, *q.CustomerID, q.ID, err)
	}
	return NewLoggedIn(c, q), nil
}

// addItems numbers the first MaxItems eligible lines and returns how many
// were added. Lines whose product cannot be loaded or is excluded are skipped.
func (b *Builder) addItems(ctx context.Context, req *eventapi.Request, q *domain.Quote, storeID int64) int {
	n := 0
	for _, item := range q.Items {
		if n == MaxItems {
			break
		}

		p, err := b.repo.GetProduct(ctx, item.SKU, storeID)
		if err != nil {
			b.logger.Error("loading product",
				"quote_id", q.ID,
				"sku", item.SKU,
				"error", err,
			)
			continue
		}
		if p.ExcludeFromAbandonmentAlert {
			b.logger.Info("product excluded from cart abandonment alert",
				"quote_id", q.ID,
				"sku", item.SKU,
			)
			continue
		}

		n++
		suffix := "_" + strconv.Itoa(n)
		req.Set("brand"+suffix, p.Brand)
		req.Set("sku"+suffix, item.SKU)
		req.Set("product_name"+suffix, item.Name)
		req.Set("productview_url"+suffix, p.DetailURL)
		req.Set("main_imageurl"+suffix, p.ImageURL)
		for i := range subImages {
			img := ""
			if i < len(p.AdditionalImages) {
				img = p.AdditionalImages[i]
			}
			req.Set("sub_imageurl"+strconv.Itoa(i+1)+suffix, img)
		}
		req.Set("short_description"+suffix, p.ShortDescription)
		req.Set("price"+suffix, formatPrice(item.Price))
		special := ""
		if p.SpecialPrice != nil {
			special = formatPrice(*p.SpecialPrice)
		}
		req.Set("special_price"+suffix, special)
	}
	return n
}

// sendingCount is 1 for the first notification and 2 for the reminder.
func sendingCount(triggerCount int) int {
	if triggerCount == 0 {
		return 1
	}
	return 2
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
