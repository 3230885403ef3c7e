package repository

import (
	"context"
	"errors"
	"time"

	"jobmatch/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrJobNotFound is a domain-specific error returned when a job posting is not found.
var ErrJobNotFound = errors.New("job posting not found")

// JobFilters holds the hard filters pushed down to the job radius query.
type JobFilters struct {
	// JobType, when set, requires an exact job type match.
	JobType *entity.JobType

	// MinSalary, when set, excludes postings whose offer ceiling is below this amount.
	// Postings with no stated salary pass.
	MinSalary *float64

	// Keyword, when non-empty, requires a case-insensitive substring match on
	// the posting title or description.
	Keyword string

	// SkillIDs filters to postings requiring at least one of the listed skills (OR semantics).
	SkillIDs []uuid.UUID
}

// JobRecord is a job row qualified by the radius query with the precomputed
// distance from the search center.
type JobRecord struct {
	Job        *entity.JobPosting
	DistanceKm float64
}

// JobRepository defines the read operations the matching engine performs
// against the job store, plus the status sweep the maintenance scheduler runs.
type JobRepository interface {
	// FindByID retrieves a single job posting by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.JobPosting, error)

	// FindWithinRadius retrieves active postings within radiusKm of the center,
	// with the given hard filters applied and DistanceKm populated.
	FindWithinRadius(ctx context.Context, center entity.GeoPoint, radiusKm float64, filters JobFilters) ([]*JobRecord, error)

	// ExpirePastDeadline marks active postings whose application deadline is
	// before the cutoff as expired and returns the IDs of the postings touched.
	ExpirePastDeadline(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error)
}
