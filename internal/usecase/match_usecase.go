package usecase

import (
	"context"

	"jobmatch/internal/domain/entity"

	"github.com/google/uuid"
)

// SearchCandidatesInput represents an employer-side candidate search. The
// criteria double as hard filters and as the scoring reference, so an ad hoc
// search behaves exactly like matching against a posting with these attributes.
type SearchCandidatesInput struct {
	CallerID uuid.UUID `json:"caller_id"`

	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	RadiusKm  *float64 `json:"radius_km,omitempty"` // nil resolves to the caller's tier cap

	RequiredSkillIDs []uuid.UUID          `json:"required_skill_ids,omitempty"`
	RequiredYears    *float64             `json:"required_years,omitempty"`
	OfferedSalary    *float64             `json:"offered_salary,omitempty"`
	Availability     *entity.Availability `json:"availability,omitempty"`
	VerifiedOnly     bool                 `json:"verified_only"`

	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// SearchJobsInput represents a job-seeker-side job search. Scoring attributes
// (skills, expected salary, availability, experience) come from the caller's
// candidate profile; the input only narrows the posting set.
type SearchJobsInput struct {
	CallerID uuid.UUID `json:"caller_id"`

	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	RadiusKm  *float64 `json:"radius_km,omitempty"` // nil resolves to the caller's tier cap

	JobType   *entity.JobType `json:"job_type,omitempty"`
	MinSalary *float64        `json:"min_salary,omitempty"`
	Keyword   string          `json:"keyword,omitempty"` // case-insensitive substring on title or description

	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// MatchPage is one page of a ranked result set.
type MatchPage struct {
	Results []*entity.MatchResult `json:"results"`

	// SearchRadiusUsed is the effective radius in kilometers after tier capping.
	SearchRadiusUsed float64 `json:"search_radius_used"`

	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

// MatchUsecase defines the matching and ranking engine use cases.
type MatchUsecase interface {
	// SearchCandidates runs the synchronous employer-side pipeline: resolve
	// radius, fetch, qualify, score, rank, paginate. An empty qualified set
	// yields an empty page, not an error.
	SearchCandidates(ctx context.Context, input *SearchCandidatesInput) (*MatchPage, error)

	// SearchJobs runs the synchronous seeker-side pipeline against active postings.
	SearchJobs(ctx context.Context, input *SearchJobsInput) (*MatchPage, error)

	// GenerateMatchesForJob recomputes and persists the top-N candidate matches
	// for a posting. Triggered by job.created / job.updated events; the stored
	// ranking for the job is replaced atomically and its cache entry dropped.
	GenerateMatchesForJob(ctx context.Context, jobID uuid.UUID) error

	// GetMatchesForJob serves a page of the persisted ranking for a posting,
	// cache-first. Only the posting's employer may read it.
	GetMatchesForJob(ctx context.Context, callerID, jobID uuid.UUID, page, pageSize int) (*MatchPage, error)
}
