package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"touradmin/internal/domain/models"
)

const (
	KeyCategoryOptions = "options:categories"
	KeyScopeOptions    = "options:scopes"
)

// OptionsCache keeps the small {id,name} select-box lists in Redis so list and
// detail pages do not hit the DB for them on every render. A nil cache or nil
// client disables caching entirely.
type OptionsCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func New(client *redis.Client) *OptionsCache {
	return &OptionsCache{Client: client, TTL: 30 * time.Second}
}

func (c *OptionsCache) Get(ctx context.Context, key string) ([]models.Option, bool) {
	if c == nil || c.Client == nil {
		return nil, false
	}
	raw, err := c.Client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var opts []models.Option
	if err := json.Unmarshal(raw, &opts); err != nil {
		return nil, false
	}
	return opts, true
}

func (c *OptionsCache) Set(ctx context.Context, key string, opts []models.Option) {
	if c == nil || c.Client == nil {
		return
	}
	raw, err := json.Marshal(opts)
	if err != nil {
		return
	}
	ttl := c.TTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	_ = c.Client.Set(ctx, key, raw, ttl).Err()
}

// Invalidate drops keys after a mutation so stale option lists never outlive
// the record they describe.
func (c *OptionsCache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.Client == nil || len(keys) == 0 {
		return
	}
	_ = c.Client.Del(ctx, keys...).Err()
}
