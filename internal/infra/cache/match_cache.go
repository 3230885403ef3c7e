package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"jobmatch/internal/domain/entity"
	"jobmatch/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// matchCache implements the service.MatchCache interface on Redis. One key per
// job holds the full ranked top-N list as a JSON blob; entries are invalidated
// explicitly on posting changes, the TTL is only a backstop.
type matchCache struct {
	client *redis.Client
}

// NewMatchCache is the constructor for matchCache.
func NewMatchCache(client *redis.Client) service.MatchCache {
	return &matchCache{
		client: client,
	}
}

func matchKey(jobID uuid.UUID) string {
	return fmt.Sprintf("matches:job:%s", jobID)
}

// GetMatches returns the cached results for a job, or (nil, false, nil) on a miss.
func (c *matchCache) GetMatches(ctx context.Context, jobID uuid.UUID) ([]*entity.MatchResult, bool, error) {
	payload, err := c.client.Get(ctx, matchKey(jobID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, errors.Wrap(err, "failed to read cached matches")
	}

	var results []*entity.MatchResult
	if err := json.Unmarshal(payload, &results); err != nil {
		// A corrupt entry is treated as a miss; the caller repopulates it.
		return nil, false, nil
	}

	return results, true, nil
}

// SetMatches stores the results for a job with the given TTL.
func (c *matchCache) SetMatches(ctx context.Context, jobID uuid.UUID, results []*entity.MatchResult, ttl time.Duration) error {
	payload, err := json.Marshal(results)
	if err != nil {
		return errors.Wrap(err, "failed to marshal matches for caching")
	}

	if err := c.client.Set(ctx, matchKey(jobID), payload, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write cached matches")
	}

	return nil
}

// InvalidateJob removes the cached results for a job.
func (c *matchCache) InvalidateJob(ctx context.Context, jobID uuid.UUID) error {
	if err := c.client.Del(ctx, matchKey(jobID)).Err(); err != nil {
		return errors.Wrap(err, "failed to invalidate cached matches")
	}

	return nil
}
