package impl

import (
	"time"

	"jobmatch/internal/domain/entity"
	domainerrors "jobmatch/internal/domain/errors"
	"jobmatch/internal/domain/repository"

	"github.com/google/uuid"
)

// scoringContext carries the attributes shared by every record in one scoring
// batch: the opposite side of the pair and the normalization constants.
type scoringContext struct {
	// effectiveRadiusKm normalizes the location subscore. It is the resolved
	// search radius, never the raw requested one.
	effectiveRadiusKm float64

	// referenceSalary normalizes the salary gap when the posting states no figure.
	referenceSalary float64
}

// scoreCandidateForJob scores one qualified candidate against posting-side
// criteria. The returned result carries the score and distance at full
// precision so the ranking downstream can break ties exactly; display rounding
// happens at the page boundary. A candidate with a missing ID is upstream data
// corruption and yields ErrInvalidRecord so the caller can skip it.
func scoreCandidateForJob(
	record *repository.CandidateRecord,
	subjectID uuid.UUID,
	requiredSkillIDs []uuid.UUID,
	requiredYears *float64,
	offeredSalary *float64,
	sctx scoringContext,
) (*entity.MatchResult, error) {
	candidate := record.Candidate
	if candidate.ID == uuid.Nil {
		return nil, domainerrors.ErrInvalidRecord
	}

	breakdown := entity.ScoreBreakdown{
		Skill:        skillScore(candidate.SkillIDs(), requiredSkillIDs),
		Location:     locationScore(record.DistanceKm, sctx.effectiveRadiusKm),
		Salary:       salaryScore(candidate.ExpectedSalary, offeredSalary, sctx.referenceSalary),
		Availability: availabilityScore(candidate.Availability),
		Experience:   experienceScore(candidate.TotalYearsOfExperience(), requiredYears),
	}

	return &entity.MatchResult{
		SubjectID:     subjectID,
		CounterpartID: candidate.ID,
		DistanceKm:    record.DistanceKm,
		Score:         breakdown.Weighted(),
		Breakdown:     breakdown,
		Verified:      candidate.ExamVerified,
		ComputedAt:    time.Now(),
	}, nil
}

// scoreJobForCandidate scores one qualified posting against the searching
// candidate's profile. The subscores are the same five as the employer-side
// path with the pair roles swapped.
func scoreJobForCandidate(
	record *repository.JobRecord,
	candidate *entity.Candidate,
	sctx scoringContext,
) (*entity.MatchResult, error) {
	job := record.Job
	if job.ID == uuid.Nil {
		return nil, domainerrors.ErrInvalidRecord
	}

	breakdown := entity.ScoreBreakdown{
		Skill:        skillScore(candidate.SkillIDs(), job.RequiredSkillIDs),
		Location:     locationScore(record.DistanceKm, sctx.effectiveRadiusKm),
		Salary:       salaryScore(candidate.ExpectedSalary, job.OfferedSalary(), sctx.referenceSalary),
		Availability: availabilityScore(candidate.Availability),
		Experience:   experienceScore(candidate.TotalYearsOfExperience(), job.RequiredYears),
	}

	return &entity.MatchResult{
		SubjectID:     candidate.ID,
		CounterpartID: job.ID,
		DistanceKm:    record.DistanceKm,
		Score:         breakdown.Weighted(),
		Breakdown:     breakdown,
		Verified:      candidate.ExamVerified,
		ComputedAt:    time.Now(),
	}, nil
}

// skillScore is the Jaccard similarity of the two skill sets:
// |intersection| / |union|. An empty union scores 0.
func skillScore(candidateSkills, requiredSkills []uuid.UUID) float64 {
	union := make(map[uuid.UUID]struct{}, len(candidateSkills)+len(requiredSkills))
	for _, id := range candidateSkills {
		union[id] = struct{}{}
	}

	candidateSet := make(map[uuid.UUID]struct{}, len(candidateSkills))
	for _, id := range candidateSkills {
		candidateSet[id] = struct{}{}
	}

	var intersection int
	for _, id := range requiredSkills {
		if _, ok := candidateSet[id]; ok {
			intersection++
		}
		union[id] = struct{}{}
	}

	if len(union) == 0 {
		return 0
	}

	return float64(intersection) / float64(len(union))
}

// locationScore decays linearly with distance: 1 at the center, 0 at the
// effective radius, clamped to [0,1].
func locationScore(distanceKm, effectiveRadiusKm float64) float64 {
	if effectiveRadiusKm <= 0 {
		return 0
	}

	score := 1 - distanceKm/effectiveRadiusKm
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}

	return score
}

// salaryScore is 1 when either side states no figure or the expectation fits
// within the offer; otherwise it decays linearly with the gap normalized by the
// offered salary (or the reference floor when the offer itself is the missing side).
func salaryScore(expected, offered *float64, referenceSalary float64) float64 {
	if expected == nil || offered == nil {
		return 1
	}

	if *expected <= *offered {
		return 1
	}

	gap := *expected - *offered

	normalizer := *offered
	if normalizer <= 0 {
		normalizer = referenceSalary
	}
	if normalizer <= 0 {
		return 0
	}

	ratio := gap / normalizer
	if ratio > 1 {
		ratio = 1
	}

	return 1 - ratio
}

// availabilityScore maps start readiness onto a fixed ladder. Unknown values
// score 0, same as not available.
func availabilityScore(availability entity.Availability) float64 {
	switch availability {
	case entity.AvailabilityImmediate:
		return 1
	case entity.AvailabilityWithinWeek:
		return 0.66
	case entity.AvailabilityWithinMonth:
		return 0.33
	default:
		return 0
	}
}

// experienceScore is the fraction of the required years the candidate holds,
// capped at 1. No stated requirement scores 1.
func experienceScore(years float64, requiredYears *float64) float64 {
	if requiredYears == nil || *requiredYears <= 0 {
		return 1
	}

	if years >= *requiredYears {
		return 1
	}

	if years < 0 {
		return 0
	}

	return years / *requiredYears
}
