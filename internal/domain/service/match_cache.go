package service

import (
	"context"
	"time"

	"jobmatch/internal/domain/entity"

	"github.com/google/uuid"
)

// MatchCache caches ranked match lists per job. Entries are invalidated
// explicitly when a posting is edited or expires; the TTL is only a backstop.
type MatchCache interface {
	// GetMatches returns the cached results for a job, or (nil, false, nil) on a miss.
	GetMatches(ctx context.Context, jobID uuid.UUID) ([]*entity.MatchResult, bool, error)

	// SetMatches stores the results for a job with the given TTL.
	SetMatches(ctx context.Context, jobID uuid.UUID, results []*entity.MatchResult, ttl time.Duration) error

	// InvalidateJob removes the cached results for a job.
	InvalidateJob(ctx context.Context, jobID uuid.UUID) error
}
