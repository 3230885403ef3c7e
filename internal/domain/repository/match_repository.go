package repository

import (
	"context"

	"jobmatch/internal/domain/entity"

	"github.com/google/uuid"
)

// MatchRepository persists the precomputed top-N match results produced by the
// background generation path. Results are derived data; the store is a cache
// with database durability, never the source of truth.
type MatchRepository interface {
	// UpsertMatches stores the given results for a job. The operation is an
	// idempotent upsert keyed by (jobID, candidateID); replaying an event
	// overwrites scores instead of duplicating rows.
	UpsertMatches(ctx context.Context, jobID uuid.UUID, results []*entity.MatchResult) error

	// FindMatchesByJob retrieves persisted results for a job ordered by rank,
	// with offset pagination. It also returns the total row count.
	FindMatchesByJob(ctx context.Context, jobID uuid.UUID, limit, offset int) ([]*entity.MatchResult, int64, error)

	// DeleteMatchesByJob removes all persisted results for a job. Called when a
	// posting is edited or expires, so stale rankings are never served.
	DeleteMatchesByJob(ctx context.Context, jobID uuid.UUID) error
}
