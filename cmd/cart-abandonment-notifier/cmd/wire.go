package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/donaldgifford/cart-abandonment-notifier/internal/config"
	"github.com/donaldgifford/cart-abandonment-notifier/internal/engine"
	"github.com/donaldgifford/cart-abandonment-notifier/internal/eventapi"
	"github.com/donaldgifford/cart-abandonment-notifier/internal/notify"
	"github.com/donaldgifford/cart-abandonment-notifier/internal/payload"
	"github.com/donaldgifford/cart-abandonment-notifier/internal/scope"
	"github.com/donaldgifford/cart-abandonment-notifier/internal/store"
	"github.com/donaldgifford/cart-abandonment-notifier/pkg/logger"
)

// app holds the components shared by serve and run.
type app struct {
	store     *store.PostgresStore
	scopes    scope.ReadWriter
	limiter   *eventapi.RateLimiter
	engine    *engine.Engine
	scheduler *engine.Scheduler
	redis     *redis.Client
}

// close releases connections in reverse order of creation.
func (a *app) close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.store != nil {
		a.store.Close()
	}
}

func buildApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*app, error) {
	a := &app{}

	pg, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	a.store = pg

	loc := cfg.Location()
	provider := scopeProvider(cfg, pg)
	a.scopes = provider
	settings := scope.NewSettings(provider, loc)

	tokenStore, err := a.tokenStore(ctx, cfg, provider)
	if err != nil {
		a.close()
		return nil, err
	}

	tokens := eventapi.NewTokenManager(settings, tokenStore,
		eventapi.WithTokenHTTPClient(&http.Client{Timeout: cfg.EventAPI.AuthTimeout}),
		eventapi.WithTokenLogger(logger.Component(log, "token")),
		eventapi.WithLocation(loc),
	)

	rl := cfg.EventAPI.RateLimit
	a.limiter = eventapi.NewRateLimiter(rl.PerSecond, rl.Burst, rl.DailyLimit)

	br := cfg.EventAPI.Breaker
	events := eventapi.NewEventClient(tokens, settings,
		eventapi.WithEventHTTPClient(&http.Client{Timeout: cfg.EventAPI.EventTimeout}),
		eventapi.WithRateLimiter(a.limiter),
		eventapi.WithBreakerConfig(eventapi.BreakerConfig{
			Name:             "event-api",
			MaxRequests:      br.MaxRequests,
			Interval:         br.Interval,
			Timeout:          br.Timeout,
			FailureThreshold: br.FailureThreshold,
			MinRequests:      br.MinRequests,
		}),
		eventapi.WithEventLogger(logger.Component(log, "event_api")),
	)

	builder := payload.New(pg, settings,
		payload.WithLogger(logger.Component(log, "payload")),
		payload.WithLocation(loc),
	)

	notifier, err := buildNotifier(ctx, cfg, log)
	if err != nil {
		a.close()
		return nil, err
	}

	a.engine = engine.NewEngine(pg, events, builder, settings, notifier,
		engine.WithLogger(logger.Component(log, "run")),
		engine.WithConcurrency(cfg.Runner.Concurrency),
		engine.WithCandidateLimit(cfg.Runner.CandidateLimit),
	)

	a.scheduler, err = engine.NewScheduler(a.engine, pg, cfg.Schedule.Cron,
		logger.Component(log, "scheduler"),
		engine.WithLockTTL(cfg.Schedule.LockTTL),
	)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("creating scheduler: %w", err)
	}

	return a, nil
}

// scopeProvider returns the configured source of scoped business settings.
func scopeProvider(cfg *config.Config, pg *store.PostgresStore) scope.ReadWriter {
	if cfg.ConfigSource == config.SourcePostgres {
		return scope.NewPostgresProvider(pg.Pool())
	}
	return seedScopes(cfg.Scopes)
}

// seedScopes loads the scopes block into a memory provider.
func seedScopes(values []config.ScopeValue) *scope.MemoryProvider {
	p := scope.NewMemoryProvider()
	for _, v := range values {
		p.Set(v.Path, v.Value, toScope(v))
	}
	return p
}

func toScope(v config.ScopeValue) scope.Scope {
	switch v.Scope {
	case config.ScopeWebsites:
		return scope.Website(v.ScopeID)
	case config.ScopeStores:
		return scope.Store(v.ScopeID, v.WebsiteID)
	default:
		return scope.Default()
	}
}

func (a *app) tokenStore(
	ctx context.Context,
	cfg *config.Config,
	provider scope.ReadWriter,
) (eventapi.TokenStore, error) {
	if cfg.TokenStore.Backend != config.TokenStoreRedisBackend {
		return eventapi.NewConfigTokenStore(provider), nil
	}

	a.redis = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := a.redis.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return eventapi.NewRedisTokenStore(a.redis, cfg.TokenStore.KeyPrefix, cfg.Location()), nil
}

// buildNotifier fans summaries out to every enabled target. With none
// enabled summaries are only logged.
func buildNotifier(ctx context.Context, cfg *config.Config, log *slog.Logger) (notify.Notifier, error) {
	var backends []notify.Notifier

	if cfg.Notifications.SES.Enabled {
		ses, err := notify.NewSESNotifier(ctx, cfg.Notifications.SES.Region)
		if err != nil {
			return nil, fmt.Errorf("creating ses notifier: %w", err)
		}
		backends = append(backends, ses)
	}
	if cfg.Notifications.Discord.Enabled {
		backends = append(backends, notify.NewDiscordNotifier(cfg.Notifications.Discord.WebhookURL))
	}

	switch len(backends) {
	case 0:
		return notify.NewNoOpNotifier(logger.Component(log, "notify")), nil
	case 1:
		return backends[0], nil
	default:
		return notify.NewMultiNotifier(backends...), nil
	}
}
