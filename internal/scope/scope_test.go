package scope

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryProvider_Fallback(t *testing.T) {
	t.Parallel()

	p := NewMemoryProvider().
		Set("a/b/c", "default", Default()).
		Set("a/b/c", "website", Website(1)).
		Set("a/b/c", "store", Store(10, 1)).
		Set("x/y/z", "only-default", Default())

	tests := []struct {
		name   string
		path   string
		scope  Scope
		want   string
		wantOK bool
	}{
		{name: "store overrides website", path: "a/b/c", scope: Store(10, 1), want: "store", wantOK: true},
		{name: "store falls back to website", path: "a/b/c", scope: Store(11, 1), want: "website", wantOK: true},
		{name: "store without website falls back to default", path: "a/b/c", scope: Store(11, 0), want: "default", wantOK: true},
		{name: "website overrides default", path: "a/b/c", scope: Website(1), want: "website", wantOK: true},
		{name: "other website falls back to default", path: "a/b/c", scope: Website(2), want: "default", wantOK: true},
		{name: "default only", path: "x/y/z", scope: Store(10, 1), want: "only-default", wantOK: true},
		{name: "missing path", path: "nope", scope: Website(1), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok, err := p.Value(context.Background(), tt.path, tt.scope)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMemoryProvider_Save(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := NewMemoryProvider()

	require.NoError(t, p.Save(ctx, "k", "v1", Website(3)))
	require.NoError(t, p.Reinit(ctx))

	got, ok, err := p.Value(ctx, "k", Website(3))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v1", got)
}

func TestScope_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "default", Default().String())
	assert.Equal(t, "default", Scope{}.String())
	assert.Equal(t, "websites/2", Website(2).String())
	assert.Equal(t, "stores/7", Store(7, 2).String())
}

func TestConfigError(t *testing.T) {
	t.Parallel()

	err := error(&ConfigError{Path: "p", Scope: Website(1), Err: ErrMissing})
	assert.Equal(t, "config p (websites/1): value not configured", err.Error())
	assert.ErrorIs(t, err, ErrMissing)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "p", cfgErr.Path)
}

type failingProvider struct{}

func (failingProvider) Value(context.Context, string, Scope) (string, bool, error) {
	return "", false, errors.New("db down")
}

func TestSettings_ProviderErrorIsConfigError(t *testing.T) {
	t.Parallel()

	s := NewSettings(failingProvider{}, nil)
	_, err := s.Required(context.Background(), PathAbandonmentKey, Website(1))

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, PathAbandonmentKey, cfgErr.Path)
}

func TestSettings_Bool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value   string
		set     bool
		want    bool
		wantErr bool
	}{
		{value: "1", set: true, want: true},
		{value: "true", set: true, want: true},
		{value: "0", set: true, want: false},
		{value: "", set: true, want: false},
		{set: false, want: false},
		{value: "maybe", set: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			p := NewMemoryProvider()
			if tt.set {
				p.Set(PathAbandonmentEnabled, tt.value, Website(1))
			}
			got, err := NewSettings(p, nil).AbandonmentEnabled(context.Background(), 1)
			if tt.wantErr {
				var cfgErr *ConfigError
				require.ErrorAs(t, err, &cfgErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSettings_Delays(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		p := NewMemoryProvider().
			Set(PathFirstDelay, "15", Website(1)).
			Set(PathSecondDelay, "60", Default())
		first, second, err := NewSettings(p, nil).Delays(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 15*time.Minute, first)
		assert.Equal(t, time.Hour, second)
	})

	t.Run("missing second", func(t *testing.T) {
		t.Parallel()
		p := NewMemoryProvider().Set(PathFirstDelay, "15", Website(1))
		_, _, err := NewSettings(p, nil).Delays(ctx, 1)
		assert.ErrorIs(t, err, ErrMissing)
	})

	t.Run("negative", func(t *testing.T) {
		t.Parallel()
		p := NewMemoryProvider().
			Set(PathFirstDelay, "-5", Website(1)).
			Set(PathSecondDelay, "60", Website(1))
		_, _, err := NewSettings(p, nil).Delays(ctx, 1)
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, PathFirstDelay, cfgErr.Path)
	})
}

func TestSettings_StartDate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tokyo := time.FixedZone("JST", 9*3600)

	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr error
	}{
		{
			name:  "date only",
			value: "2026-03-01",
			want:  time.Date(2026, 3, 1, 0, 0, 0, 0, tokyo),
		},
		{
			name:  "date and time",
			value: "2026-03-01 08:30:00",
			want:  time.Date(2026, 3, 1, 8, 30, 0, 0, tokyo),
		},
		{
			name:    "missing",
			wantErr: ErrMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := NewMemoryProvider()
			if tt.value != "" {
				p.Set(PathAbandonmentStartDate, tt.value, Website(1))
			}
			got, err := NewSettings(p, tokyo).StartDate(ctx, 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		p := NewMemoryProvider().Set(PathAbandonmentStartDate, "yesterday", Default())
		_, err := NewSettings(p, nil).StartDate(ctx, 1)
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.NotErrorIs(t, err, ErrMissing)
	})
}

func TestSettings_QuoteLifetimeDays(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := NewMemoryProvider().Set(PathQuoteLifetime, "7", Store(10, 1))
	s := NewSettings(p, nil)

	got, err := s.QuoteLifetimeDays(ctx, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	got, err = s.QuoteLifetimeDays(ctx, 11, 1)
	require.NoError(t, err)
	assert.Equal(t, DefaultQuoteLifetimeDays, got)
}

func TestSettings_BaseURLAndLoginPath(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := NewMemoryProvider().
		Set(PathBaseURL, "https://shop.example.com", Website(1)).
		Set(PathBaseURL, "https://shop.example.jp/", Website(2)).
		Set(PathLoginRedirectPath, "/sso/login?to=", Website(2))
	s := NewSettings(p, nil)

	base, err := s.BaseURL(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example.com/", base)

	login, err := s.LoginRedirectPath(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, DefaultLoginRedirectPath, login)

	login, err = s.LoginRedirectPath(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "sso/login?to=", login)

	_, err = s.BaseURL(ctx, 3)
	assert.ErrorIs(t, err, ErrMissing)
}

func TestSettings_EventAPIURL_WebsiteScoped(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := NewMemoryProvider().
		Set(PathEventAPIURL, "https://events.example.com/default", Default()).
		Set(PathEventAPIURL, "https://events.example.com/jp", Website(2))
	s := NewSettings(p, nil)

	got, err := s.EventAPIURL(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "https://events.example.com/default", got)

	got, err = s.EventAPIURL(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "https://events.example.com/jp", got)
}

func TestSettings_Credentials(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("complete", func(t *testing.T) {
		t.Parallel()
		p := NewMemoryProvider().
			Set(PathAuthURL, "https://auth.example.com/token", Default()).
			Set(PathClientID, "id", Default()).
			Set(PathClientSecret, "secret", Default()).
			Set(PathAccountID, "acct-1", Website(1))
		got, err := NewSettings(p, nil).Credentials(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, Credentials{
			AuthURL:      "https://auth.example.com/token",
			ClientID:     "id",
			ClientSecret: "secret",
			AccountID:    "acct-1",
		}, got)
	})

	t.Run("reports every missing value", func(t *testing.T) {
		t.Parallel()
		p := NewMemoryProvider().Set(PathAuthURL, "https://auth.example.com/token", Default())
		_, err := NewSettings(p, nil).Credentials(ctx, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), PathClientID)
		assert.Contains(t, err.Error(), PathClientSecret)
		assert.Contains(t, err.Error(), PathAccountID)
	})
}

func TestSettings_ResultAlert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()
		got, err := NewSettings(NewMemoryProvider(), nil).ResultAlert(ctx, 1)
		require.NoError(t, err)
		assert.False(t, got.Enabled)
	})

	t.Run("enabled", func(t *testing.T) {
		t.Parallel()
		p := NewMemoryProvider().
			Set(PathResultAlertEnabled, "1", Website(1)).
			Set(PathResultAlertSender, "noreply@example.com", Default()).
			Set(PathResultAlertRecipient, "ops@example.com, team@example.com", Website(1)).
			Set(PathResultAlertTemplate, "cart-summary", Default())
		got, err := NewSettings(p, nil).ResultAlert(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, ResultAlert{
			Enabled:    true,
			Sender:     "noreply@example.com",
			Recipients: []string{"ops@example.com", "team@example.com"},
			TemplateID: "cart-summary",
		}, got)
	})

	t.Run("enabled without recipient", func(t *testing.T) {
		t.Parallel()
		p := NewMemoryProvider().
			Set(PathResultAlertEnabled, "1", Website(1)).
			Set(PathResultAlertSender, "noreply@example.com", Default()).
			Set(PathResultAlertTemplate, "cart-summary", Default())
		_, err := NewSettings(p, nil).ResultAlert(ctx, 1)
		assert.ErrorIs(t, err, ErrMissing)
	})
}
