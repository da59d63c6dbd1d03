package eventapi

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/donaldgifford/cart-abandonment-notifier/internal/scope"
	domain "github.com/donaldgifford/cart-abandonment-notifier/pkg/types"
)

// ConfigTokenStore keeps tokens in the website scope of the scoped
// configuration, next to the credentials. Save reinitializes the config
// cache so reads later in the same run observe the new token.
type ConfigTokenStore struct {
	rw scope.ReadWriter
}

// NewConfigTokenStore creates a ConfigTokenStore over rw.
func NewConfigTokenStore(rw scope.ReadWriter) *ConfigTokenStore {
	return &ConfigTokenStore{rw: rw}
}

// Load implements TokenStore.
func (s *ConfigTokenStore) Load(ctx context.Context, websiteID int64) (domain.AccessToken, error) {
	sc := scope.Website(websiteID)

	token, _, err := s.rw.Value(ctx, scope.PathAccessToken, sc)
	if err != nil {
		return domain.AccessToken{}, fmt.Errorf("reading access token: %w", err)
	}
	expiry, _, err := s.rw.Value(ctx, scope.PathAccessTokenExpiry, sc)
	if err != nil {
		return domain.AccessToken{}, fmt.Errorf("reading access token expiry: %w", err)
	}
	return domain.AccessToken{Token: token, ExpiresAt: expiry}, nil
}

// Save implements TokenStore.
func (s *ConfigTokenStore) Save(ctx context.Context, websiteID int64, tok domain.AccessToken) error {
	sc := scope.Website(websiteID)

	if err := s.rw.Save(ctx, scope.PathAccessTokenExpiry, tok.ExpiresAt, sc); err != nil {
		return fmt.Errorf("saving access token expiry: %w", err)
	}
	if err := s.rw.Save(ctx, scope.PathAccessToken, tok.Token, sc); err != nil {
		return fmt.Errorf("saving access token: %w", err)
	}
	if err := s.rw.Reinit(ctx); err != nil {
		return fmt.Errorf("reinitializing config: %w", err)
	}
	return nil
}

const (
	redisFieldToken   = "token"
	redisFieldExpires = "expires_at"
)

// RedisTokenStore keeps tokens in a Redis hash per website. Keys expire at
// the token expiry so stale entries do not linger.
type RedisTokenStore struct {
	client *redis.Client
	prefix string
	loc    *time.Location
}

// NewRedisTokenStore creates a RedisTokenStore. Keys are "<prefix>:<websiteID>".
// loc is the zone ExpiresAt values are written in.
func NewRedisTokenStore(client *redis.Client, prefix string, loc *time.Location) *RedisTokenStore {
	if prefix == "" {
		prefix = "can:token"
	}
	if loc == nil {
		loc = time.UTC
	}
	return &RedisTokenStore{client: client, prefix: prefix, loc: loc}
}

func (s *RedisTokenStore) key(websiteID int64) string {
	return s.prefix + ":" + strconv.FormatInt(websiteID, 10)
}

// Load implements TokenStore.
func (s *RedisTokenStore) Load(ctx context.Context, websiteID int64) (domain.AccessToken, error) {
	vals, err := s.client.HGetAll(ctx, s.key(websiteID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.AccessToken{}, nil
		}
		return domain.AccessToken{}, fmt.Errorf("reading token for website %d: %w", websiteID, err)
	}
	return domain.AccessToken{
		Token:     vals[redisFieldToken],
		ExpiresAt: vals[redisFieldExpires],
	}, nil
}

// Save implements TokenStore.
func (s *RedisTokenStore) Save(ctx context.Context, websiteID int64, tok domain.AccessToken) error {
	key := s.key(websiteID)

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, redisFieldToken, tok.Token, redisFieldExpires, tok.ExpiresAt)
	if exp, err := time.ParseInLocation(domain.TokenTimeLayout, tok.ExpiresAt, s.loc); err == nil {
		pipe.ExpireAt(ctx, key, exp)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("saving token for website %d: %w", websiteID, err)
	}
	return nil
}
