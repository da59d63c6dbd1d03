package payload_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/cart-abandonment-notifier/internal/payload"
	"github.com/donaldgifford/cart-abandonment-notifier/internal/scope"
	"github.com/donaldgifford/cart-abandonment-notifier/internal/store"
	"github.com/donaldgifford/cart-abandonment-notifier/internal/store/mocks"
	"github.com/donaldgifford/cart-abandonment-notifier/pkg/logger"
	domain "github.com/donaldgifford/cart-abandonment-notifier/pkg/types"
)

var fixedNow = time.Date(2026, 3, 1, 15, 4, 5, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func testSettings() *scope.Settings {
	p := scope.NewMemoryProvider().
		Set(scope.PathBaseURL, "https://shop.example.com/", scope.Website(1)).
		Set(scope.PathAbandonmentKey, "APIEvent-cart", scope.Website(1))
	return scope.NewSettings(p, nil)
}

func newBuilder(repo payload.Repository) *payload.Builder {
	return payload.New(repo, testSettings(),
		payload.WithLogger(logger.Discard()),
		payload.WithNowFunc(func() time.Time { return fixedNow }),
	)
}

func product(sku string) *domain.Product {
	return &domain.Product{
		SKU:              sku,
		Brand:            "Atelier",
		DetailURL:        "https://shop.example.com/p/" + sku,
		ImageURL:         "https://img.example.com/" + sku + ".jpg",
		AdditionalImages: []string{"https://img.example.com/" + sku + "-a.jpg"},
		ShortDescription: "desc " + sku,
	}
}

func TestBuild_Guest(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockStore(t)
	repo.EXPECT().GetQuote(mock.Anything, int64(100), int64(1)).Return(&domain.Quote{
		ID:      100,
		StoreID: 1,
		BillingAddress: domain.Address{
			Email: "guest@example.com", FirstName: "Taro", LastName: "Suzuki",
		},
		Items: []domain.QuoteItem{{SKU: "SKU-1", Name: "Linen Shirt", Price: 12000}},
	}, nil)
	p := product("SKU-1")
	p.SpecialPrice = ptr(9800.5)
	repo.EXPECT().GetProduct(mock.Anything, "SKU-1", int64(1)).Return(p, nil)

	req, err := newBuilder(repo).Build(context.Background(), &domain.CandidateCart{QuoteID: 100, StoreID: 1}, 1, 1)
	require.NoError(t, err)

	assert.Equal(t, "guest@example.com_100_2026030103:04:05", req.ContactKey)
	assert.Equal(t, "APIEvent-cart", req.EventDefinitionKey)

	want := map[string]string{
		"mailaddress":         "guest@example.com",
		"rid":                 "",
		"lastname":            "Suzuki",
		"firstname":           "Taro",
		"cart_url_checkout":   "https://shop.example.com/checkout",
		"cart_url_mybag":      "https://shop.example.com/checkout/cart",
		"contactkey":          "guest@example.com_100_2026030103:04:05",
		"brand_1":             "Atelier",
		"sku_1":               "SKU-1",
		"product_name_1":      "Linen Shirt",
		"productview_url_1":   "https://shop.example.com/p/SKU-1",
		"main_imageurl_1":     "https://img.example.com/SKU-1.jpg",
		"sub_imageurl1_1":     "https://img.example.com/SKU-1-a.jpg",
		"sub_imageurl2_1":     "",
		"sub_imageurl3_1":     "",
		"sub_imageurl4_1":     "",
		"sub_imageurl5_1":     "",
		"short_description_1": "desc SKU-1",
		"price_1":             "12000",
		"special_price_1":     "9800.5",
		"reg_date":            "2026/03/01 03:04:05",
		"sending_count":       "1",
	}
	assert.Equal(t, want, req.Data)
}

func TestBuild_LoggedIn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		quoteEmail string
		externalID string
		wantEmail  string
		wantRID    string
	}{
		{
			name:       "quote email and hashed external id",
			quoteEmail: "member@example.com",
			externalID: "sub-0007",
			wantEmail:  "member@example.com",
			wantRID:    payload.HashExternalID("sub-0007"),
		},
		{
			name:       "falls back to customer record email",
			externalID: "sub-0007",
			wantEmail:  "record@example.com",
			wantRID:    payload.HashExternalID("sub-0007"),
		},
		{
			name:       "no external id gives empty rid",
			quoteEmail: "member@example.com",
			wantEmail:  "member@example.com",
			wantRID:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := mocks.NewMockStore(t)
			repo.EXPECT().GetQuote(mock.Anything, int64(101), int64(1)).Return(&domain.Quote{
				ID:                101,
				StoreID:           1,
				CustomerID:        ptr(int64(7)),
				CustomerEmail:     tt.quoteEmail,
				CustomerFirstName: "Hanako",
				CustomerLastName:  "Yamada",
				Items:             []domain.QuoteItem{{SKU: "SKU-1", Name: "Linen Shirt", Price: 12000}},
			}, nil)
			repo.EXPECT().GetCustomer(mock.Anything, int64(7)).Return(&domain.Customer{
				ID: 7, Email: "record@example.com", ExternalID: tt.externalID,
			}, nil)
			repo.EXPECT().GetProduct(mock.Anything, "SKU-1", int64(1)).Return(product("SKU-1"), nil)

			cart := &domain.CandidateCart{QuoteID: 101, StoreID: 1, CustomerID: ptr(int64(7)), EventTriggerCount: 1}
			req, err := newBuilder(repo).Build(context.Background(), cart, 1, 1)
			require.NoError(t, err)

			assert.Equal(t, tt.wantRID+"_101_2026030103:04:05", req.ContactKey)
			assert.Equal(t, tt.wantEmail, req.Data["mailaddress"])
			assert.Equal(t, tt.wantRID, req.Data["rid"])
			assert.Equal(t, "Yamada", req.Data["lastname"])
			assert.Equal(t, "Hanako", req.Data["firstname"])
			assert.Equal(t,
				"https://shop.example.com/customer/account/login?redirect_uri=https://shop.example.com/checkout",
				req.Data["cart_url_checkout"])
			assert.Equal(t,
				"https://shop.example.com/customer/account/login?redirect_uri=https://shop.example.com/checkout/cart",
				req.Data["cart_url_mybag"])
			assert.Equal(t, "2", req.Data["sending_count"])
		})
	}
}

func TestBuild_ItemSelection(t *testing.T) {
	t.Parallel()

	items := make([]domain.QuoteItem, 0, 8)
	for _, sku := range []string{"A", "BROKEN", "EXCL", "B", "C", "D", "E", "F"} {
		items = append(items, domain.QuoteItem{SKU: sku, Name: "name " + sku, Price: 100})
	}

	repo := mocks.NewMockStore(t)
	repo.EXPECT().GetQuote(mock.Anything, int64(100), int64(1)).Return(&domain.Quote{
		ID:             100,
		BillingAddress: domain.Address{Email: "guest@example.com"},
		Items:          items,
	}, nil)
	repo.EXPECT().GetProduct(mock.Anything, "BROKEN", int64(1)).Return(nil, errors.New("catalog down"))
	excluded := product("EXCL")
	excluded.ExcludeFromAbandonmentAlert = true
	repo.EXPECT().GetProduct(mock.Anything, "EXCL", int64(1)).Return(excluded, nil)
	for _, sku := range []string{"A", "B", "C", "D", "E"} {
		repo.EXPECT().GetProduct(mock.Anything, sku, int64(1)).Return(product(sku), nil)
	}

	req, err := newBuilder(repo).Build(context.Background(), &domain.CandidateCart{QuoteID: 100}, 1, 1)
	require.NoError(t, err)

	assert.Equal(t, "A", req.Data["sku_1"])
	assert.Equal(t, "B", req.Data["sku_2"])
	assert.Equal(t, "E", req.Data["sku_5"])
	assert.NotContains(t, req.Data, "sku_6")
	for _, v := range req.Data {
		assert.NotEqual(t, "EXCL", v)
		assert.NotEqual(t, "F", v)
	}
}

func TestBuild_NoPayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(repo *mocks.MockStore)
	}{
		{
			name: "quote not found",
			setup: func(repo *mocks.MockStore) {
				repo.EXPECT().GetQuote(mock.Anything, int64(100), int64(1)).Return(nil, store.ErrNotFound)
			},
		},
		{
			name: "empty billing email",
			setup: func(repo *mocks.MockStore) {
				repo.EXPECT().GetQuote(mock.Anything, int64(100), int64(1)).Return(&domain.Quote{
					ID:    100,
					Items: []domain.QuoteItem{{SKU: "A"}},
				}, nil)
			},
		},
		{
			name: "literal NULL email",
			setup: func(repo *mocks.MockStore) {
				repo.EXPECT().GetQuote(mock.Anything, int64(100), int64(1)).Return(&domain.Quote{
					ID:             100,
					BillingAddress: domain.Address{Email: "NULL"},
					Items:          []domain.QuoteItem{{SKU: "A"}},
				}, nil)
			},
		},
		{
			name: "customer lookup fails",
			setup: func(repo *mocks.MockStore) {
				repo.EXPECT().GetQuote(mock.Anything, int64(100), int64(1)).Return(&domain.Quote{
					ID:         100,
					CustomerID: ptr(int64(7)),
				}, nil)
				repo.EXPECT().GetCustomer(mock.Anything, int64(7)).Return(nil, store.ErrNotFound)
			},
		},
		{
			name: "no items",
			setup: func(repo *mocks.MockStore) {
				repo.EXPECT().GetQuote(mock.Anything, int64(100), int64(1)).Return(&domain.Quote{
					ID:             100,
					BillingAddress: domain.Address{Email: "guest@example.com"},
				}, nil)
			},
		},
		{
			name: "every item excluded",
			setup: func(repo *mocks.MockStore) {
				repo.EXPECT().GetQuote(mock.Anything, int64(100), int64(1)).Return(&domain.Quote{
					ID:             100,
					BillingAddress: domain.Address{Email: "guest@example.com"},
					Items:          []domain.QuoteItem{{SKU: "EXCL"}},
				}, nil)
				p := product("EXCL")
				p.ExcludeFromAbandonmentAlert = true
				repo.EXPECT().GetProduct(mock.Anything, "EXCL", int64(1)).Return(p, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := mocks.NewMockStore(t)
			tt.setup(repo)

			req, err := newBuilder(repo).Build(context.Background(), &domain.CandidateCart{QuoteID: 100}, 1, 1)
			require.ErrorIs(t, err, payload.ErrNoPayload)
			assert.Nil(t, req)
		})
	}
}

func TestBuild_MissingBaseURLIsConfigError(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockStore(t)
	repo.EXPECT().GetQuote(mock.Anything, int64(100), int64(1)).Return(&domain.Quote{
		ID:             100,
		BillingAddress: domain.Address{Email: "guest@example.com"},
		Items:          []domain.QuoteItem{{SKU: "A"}},
	}, nil)

	b := payload.New(repo, scope.NewSettings(scope.NewMemoryProvider(), nil), payload.WithLogger(logger.Discard()))
	_, err := b.Build(context.Background(), &domain.CandidateCart{QuoteID: 100}, 1, 1)

	var cfgErr *scope.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, scope.PathBaseURL, cfgErr.Path)
	assert.NotErrorIs(t, err, payload.ErrNoPayload)
}

func TestBuild_Location(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockStore(t)
	repo.EXPECT().GetQuote(mock.Anything, int64(100), int64(1)).Return(&domain.Quote{
		ID:             100,
		BillingAddress: domain.Address{Email: "guest@example.com"},
		Items:          []domain.QuoteItem{{SKU: "A"}},
	}, nil)
	repo.EXPECT().GetProduct(mock.Anything, "A", int64(1)).Return(product("A"), nil)

	jst := time.FixedZone("JST", 9*60*60)
	b := payload.New(repo, testSettings(),
		payload.WithLogger(logger.Discard()),
		payload.WithLocation(jst),
		payload.WithNowFunc(func() time.Time { return fixedNow }),
	)

	req, err := b.Build(context.Background(), &domain.CandidateCart{QuoteID: 100}, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "2026/03/02 12:04:05", req.Data["reg_date"])
	assert.Equal(t, "guest@example.com_100_2026030212:04:05", req.ContactKey)
}

func TestHashExternalID(t *testing.T) {
	t.Parallel()

	assert.Empty(t, payload.HashExternalID(""))
	// sha256("abc")
	assert.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		payload.HashExternalID("abc"))
}
