// Package cache provides the Redis-backed scorecard cache. The cache is an
// optimization only: every failure degrades to a recomputation, never to an
// error on the read path.
package cache

import (
	"context"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"dri_index/internal/domain/entity"
	"dri_index/pkg/contextx"
	"dri_index/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type ScorecardCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewScorecardCache(client *redis.Client, ttl time.Duration) *ScorecardCache {
	return &ScorecardCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *ScorecardCache) Get(ctx context.Context, key string) (entity.Scorecard, bool) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger(ctx).Warn("scorecard cache get", logx.Error(err))
		}
		return entity.Scorecard{}, false
	}

	var card entity.Scorecard
	if err := json.Unmarshal(payload, &card); err != nil {
		logger(ctx).Warn("scorecard cache unmarshal", logx.Error(err))
		return entity.Scorecard{}, false
	}

	return card, true
}

func (c *ScorecardCache) Set(ctx context.Context, key string, card entity.Scorecard) {
	payload, err := json.Marshal(card)
	if err != nil {
		logger(ctx).Warn("scorecard cache marshal", logx.Error(err))
		return
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		logger(ctx).Warn("scorecard cache set", logx.Error(err))
	}
}
