package impl

import (
	"testing"

	"jobmatch/internal/domain/entity"
	domainerrors "jobmatch/internal/domain/errors"
	"jobmatch/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillScore_Jaccard(t *testing.T) {
	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	// {A,B,C} vs {B,C,D}: intersection 2, union 4.
	assert.InDelta(t, 0.5, skillScore([]uuid.UUID{a, b, c}, []uuid.UUID{b, c, d}), 1e-9)

	// Identical sets score 1.
	assert.InDelta(t, 1.0, skillScore([]uuid.UUID{a, b}, []uuid.UUID{a, b}), 1e-9)

	// Disjoint sets score 0.
	assert.InDelta(t, 0.0, skillScore([]uuid.UUID{a}, []uuid.UUID{b}), 1e-9)

	// Empty union scores 0, not NaN.
	assert.Equal(t, 0.0, skillScore(nil, nil))
}

func TestLocationScore_LinearDecay(t *testing.T) {
	assert.InDelta(t, 1.0, locationScore(0, 10), 1e-9)
	assert.InDelta(t, 0.5, locationScore(5, 10), 1e-9)
	assert.InDelta(t, 0.0, locationScore(10, 10), 1e-9)

	// Beyond the radius clamps to 0 instead of going negative.
	assert.Equal(t, 0.0, locationScore(15, 10))

	// Degenerate radius never divides by zero.
	assert.Equal(t, 0.0, locationScore(1, 0))
}

func TestSalaryScore(t *testing.T) {
	// Either side unspecified scores 1.
	assert.Equal(t, 1.0, salaryScore(nil, float64Ptr(50000), 10000))
	assert.Equal(t, 1.0, salaryScore(float64Ptr(50000), nil, 10000))

	// Expectation within the offer scores 1.
	assert.Equal(t, 1.0, salaryScore(float64Ptr(40000), float64Ptr(50000), 10000))
	assert.Equal(t, 1.0, salaryScore(float64Ptr(50000), float64Ptr(50000), 10000))

	// Gap decays linearly against the offered salary.
	assert.InDelta(t, 0.8, salaryScore(float64Ptr(60000), float64Ptr(50000), 10000), 1e-9)

	// A gap of the full offer or more bottoms out at 0.
	assert.Equal(t, 0.0, salaryScore(float64Ptr(100000), float64Ptr(50000), 10000))
	assert.Equal(t, 0.0, salaryScore(float64Ptr(200000), float64Ptr(50000), 10000))
}

func TestSalaryScore_ReferenceFloorForZeroOffer(t *testing.T) {
	// A zero offer falls back to the reference floor as the normalizer.
	assert.InDelta(t, 0.5, salaryScore(float64Ptr(5000), float64Ptr(0), 10000), 1e-9)

	// No usable normalizer at all scores 0.
	assert.Equal(t, 0.0, salaryScore(float64Ptr(5000), float64Ptr(0), 0))
}

func TestAvailabilityScore_Ladder(t *testing.T) {
	assert.Equal(t, 1.0, availabilityScore(entity.AvailabilityImmediate))
	assert.Equal(t, 0.66, availabilityScore(entity.AvailabilityWithinWeek))
	assert.Equal(t, 0.33, availabilityScore(entity.AvailabilityWithinMonth))
	assert.Equal(t, 0.0, availabilityScore(entity.AvailabilityNotAvailable))
	assert.Equal(t, 0.0, availabilityScore(entity.Availability("sabbatical")))
}

func TestExperienceScore(t *testing.T) {
	// No requirement scores 1.
	assert.Equal(t, 1.0, experienceScore(0, nil))
	assert.Equal(t, 1.0, experienceScore(0, float64Ptr(0)))

	// Meeting or exceeding the requirement scores 1.
	assert.Equal(t, 1.0, experienceScore(5, float64Ptr(3)))
	assert.Equal(t, 1.0, experienceScore(3, float64Ptr(3)))

	// Partial experience scores proportionally.
	assert.InDelta(t, 0.5, experienceScore(2, float64Ptr(4)), 1e-9)
	assert.Equal(t, 0.0, experienceScore(0, float64Ptr(4)))
}

func TestScoreBreakdown_WeightsSumToOne(t *testing.T) {
	total := entity.WeightSkill + entity.WeightLocation + entity.WeightSalary +
		entity.WeightAvailability + entity.WeightExperience
	assert.InDelta(t, 1.0, total, 1e-9)

	// A perfect candidate scores exactly 1.
	perfect := entity.ScoreBreakdown{Skill: 1, Location: 1, Salary: 1, Availability: 1, Experience: 1}
	assert.InDelta(t, 1.0, perfect.Weighted(), 1e-9)
}

func TestScoreCandidateForJob(t *testing.T) {
	skillA, skillB, skillC, skillD := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	jobID := uuid.New()

	record := seekerRecord(func(c *entity.Candidate) {
		c.Skills = []entity.CandidateSkill{
			{SkillID: skillA, YearsOfExperience: 4},
			{SkillID: skillB, YearsOfExperience: 2},
			{SkillID: skillC, YearsOfExperience: 1},
		}
		c.ExpectedSalary = float64Ptr(40000)
		c.ExamVerified = true
	})
	record.DistanceKm = 5.0

	sctx := scoringContext{effectiveRadiusKm: 10, referenceSalary: 10000}

	result, err := scoreCandidateForJob(record, jobID, []uuid.UUID{skillB, skillC, skillD}, float64Ptr(2), float64Ptr(50000), sctx)
	require.NoError(t, err)

	assert.Equal(t, jobID, result.SubjectID)
	assert.Equal(t, record.Candidate.ID, result.CounterpartID)
	assert.Equal(t, 5.0, result.DistanceKm)
	assert.True(t, result.Verified)

	assert.InDelta(t, 0.5, result.Breakdown.Skill, 1e-9)
	assert.InDelta(t, 0.5, result.Breakdown.Location, 1e-9)
	assert.Equal(t, 1.0, result.Breakdown.Salary)
	assert.Equal(t, 1.0, result.Breakdown.Availability)
	assert.Equal(t, 1.0, result.Breakdown.Experience)
	assert.InDelta(t, result.Breakdown.Weighted(), result.Score, 1e-9)
}

func TestScoreCandidateForJob_KeepsFullPrecisionDistance(t *testing.T) {
	record := seekerRecord(nil)
	record.DistanceKm = 5.4321987

	result, err := scoreCandidateForJob(record, uuid.New(), nil, nil, nil, scoringContext{effectiveRadiusKm: 10, referenceSalary: 10000})
	require.NoError(t, err)
	assert.Equal(t, 5.4321987, result.DistanceKm)
}

func TestScoreCandidateForJob_MissingIDIsInvalidRecord(t *testing.T) {
	record := seekerRecord(func(c *entity.Candidate) { c.ID = uuid.Nil })

	_, err := scoreCandidateForJob(record, uuid.New(), nil, nil, nil, scoringContext{effectiveRadiusKm: 10, referenceSalary: 10000})
	assert.Equal(t, domainerrors.ErrInvalidRecord, err)
}

func TestScoreJobForCandidate(t *testing.T) {
	skillA, skillB := uuid.New(), uuid.New()

	candidate := &entity.Candidate{
		ID:           uuid.New(),
		Role:         entity.RoleJobSeeker,
		Skills:       []entity.CandidateSkill{{SkillID: skillA, YearsOfExperience: 3}},
		Availability: entity.AvailabilityWithinWeek,
	}

	record := activeJobRecord(func(j *entity.JobPosting) {
		j.RequiredSkillIDs = []uuid.UUID{skillA, skillB}
		j.SalaryMax = float64Ptr(45000)
	})
	record.DistanceKm = 0

	sctx := scoringContext{effectiveRadiusKm: 10, referenceSalary: 10000}

	result, err := scoreJobForCandidate(record, candidate, sctx)
	require.NoError(t, err)

	assert.Equal(t, candidate.ID, result.SubjectID)
	assert.Equal(t, record.Job.ID, result.CounterpartID)
	assert.InDelta(t, 0.5, result.Breakdown.Skill, 1e-9)
	assert.Equal(t, 1.0, result.Breakdown.Location)
	assert.Equal(t, 1.0, result.Breakdown.Salary)
	assert.Equal(t, 0.66, result.Breakdown.Availability)
	assert.Equal(t, 1.0, result.Breakdown.Experience)
}

func TestScoreJobForCandidate_MissingIDIsInvalidRecord(t *testing.T) {
	candidate := &entity.Candidate{ID: uuid.New(), Role: entity.RoleJobSeeker}
	record := &repository.JobRecord{Job: &entity.JobPosting{}, DistanceKm: 1}

	_, err := scoreJobForCandidate(record, candidate, scoringContext{effectiveRadiusKm: 10, referenceSalary: 10000})
	assert.Equal(t, domainerrors.ErrInvalidRecord, err)
}
