// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"jobmatch/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCandidateNotFound is a domain-specific error returned when a candidate is not found.
var ErrCandidateNotFound = errors.New("candidate not found")

// CandidateFilters holds the hard filters pushed down to the candidate radius query.
// Soft criteria never appear here; they only affect ranking.
type CandidateFilters struct {
	// SkillIDs filters to candidates holding at least one of the listed skills (OR semantics).
	SkillIDs []uuid.UUID

	// Availability, when set, requires an exact availability match.
	Availability *entity.Availability

	// VerifiedOnly, when true, requires exam-verified candidates.
	VerifiedOnly bool

	// MaxSalary, when set, excludes candidates expecting more than this amount.
	// Candidates with no stated expectation pass.
	MaxSalary *float64
}

// CandidateRecord is a candidate row qualified by the radius query, carrying the
// precomputed great-circle distance from the search center so the engine never
// re-queries per record.
type CandidateRecord struct {
	Candidate  *entity.Candidate
	DistanceKm float64
}

// CandidateRepository defines the read operations the matching engine performs
// against the candidate store. Implementations must return only rows with
// non-null coordinates.
type CandidateRepository interface {
	// FindByID retrieves a single candidate by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Candidate, error)

	// FindWithinRadius retrieves active, non-banned job seekers within radiusKm
	// of the center, with the given hard filters applied and DistanceKm populated.
	FindWithinRadius(ctx context.Context, center entity.GeoPoint, radiusKm float64, filters CandidateFilters) ([]*CandidateRecord, error)
}
