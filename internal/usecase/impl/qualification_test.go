package impl

import (
	"testing"

	"jobmatch/internal/domain/entity"
	"jobmatch/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// matchCenter is the search center shared by these tests; helper records
// default to sitting exactly on it.
var matchCenter = entity.GeoPoint{Latitude: 12.9716, Longitude: 77.5946}

// pointKmNorth returns a location the given number of kilometers due north of
// matchCenter. One degree of latitude is ~111.195 km on the matching sphere.
func pointKmNorth(km float64) *entity.GeoPoint {
	return &entity.GeoPoint{Latitude: matchCenter.Latitude + km/111.195, Longitude: matchCenter.Longitude}
}

func seekerRecord(mutate func(*entity.Candidate)) *repository.CandidateRecord {
	candidate := &entity.Candidate{
		ID:           uuid.New(),
		Role:         entity.RoleJobSeeker,
		Location:     &entity.GeoPoint{Latitude: 12.9716, Longitude: 77.5946},
		Availability: entity.AvailabilityImmediate,
		IsActive:     true,
		Tier:         entity.TierFree,
	}
	if mutate != nil {
		mutate(candidate)
	}

	return &repository.CandidateRecord{Candidate: candidate, DistanceKm: 2.0}
}

func TestQualifyCandidates_PassesCleanRecord(t *testing.T) {
	records := []*repository.CandidateRecord{seekerRecord(nil)}

	qualified := qualifyCandidates(records, matchCenter, 10, candidateCriteria{})
	assert.Len(t, qualified, 1)
}

func TestQualifyCandidates_StatusFilters(t *testing.T) {
	records := []*repository.CandidateRecord{
		seekerRecord(func(c *entity.Candidate) { c.IsActive = false }),
		seekerRecord(func(c *entity.Candidate) { c.IsBanned = true }),
		seekerRecord(func(c *entity.Candidate) { c.Role = entity.RoleEmployer }),
		seekerRecord(func(c *entity.Candidate) { c.Location = nil }),
	}

	qualified := qualifyCandidates(records, matchCenter, 10, candidateCriteria{})
	assert.Empty(t, qualified)
}

func TestQualifyCandidates_SkillMembershipIsOrSemantics(t *testing.T) {
	skillA, skillB, skillC := uuid.New(), uuid.New(), uuid.New()

	holder := seekerRecord(func(c *entity.Candidate) {
		c.Skills = []entity.CandidateSkill{{SkillID: skillA}}
	})
	nonHolder := seekerRecord(func(c *entity.Candidate) {
		c.Skills = []entity.CandidateSkill{{SkillID: skillC}}
	})

	qualified := qualifyCandidates(
		[]*repository.CandidateRecord{holder, nonHolder},
		matchCenter,
		10,
		candidateCriteria{skillIDs: []uuid.UUID{skillA, skillB}},
	)

	assert.Len(t, qualified, 1)
	assert.Equal(t, holder.Candidate.ID, qualified[0].Candidate.ID)
}

func TestQualifyCandidates_AvailabilityRequiresExactMatch(t *testing.T) {
	within := entity.AvailabilityWithinWeek

	immediate := seekerRecord(nil)
	weekly := seekerRecord(func(c *entity.Candidate) { c.Availability = entity.AvailabilityWithinWeek })

	qualified := qualifyCandidates(
		[]*repository.CandidateRecord{immediate, weekly},
		matchCenter,
		10,
		candidateCriteria{availability: &within},
	)

	assert.Len(t, qualified, 1)
	assert.Equal(t, weekly.Candidate.ID, qualified[0].Candidate.ID)
}

func TestQualifyCandidates_VerifiedOnly(t *testing.T) {
	verified := seekerRecord(func(c *entity.Candidate) { c.ExamVerified = true })
	unverified := seekerRecord(nil)

	qualified := qualifyCandidates(
		[]*repository.CandidateRecord{verified, unverified},
		matchCenter,
		10,
		candidateCriteria{verifiedOnly: true},
	)

	assert.Len(t, qualified, 1)
	assert.True(t, qualified[0].Candidate.ExamVerified)
}

func TestQualifyCandidates_SalaryCeiling(t *testing.T) {
	expensive := seekerRecord(func(c *entity.Candidate) { c.ExpectedSalary = float64Ptr(90000) })
	affordable := seekerRecord(func(c *entity.Candidate) { c.ExpectedSalary = float64Ptr(40000) })
	unstated := seekerRecord(nil)

	qualified := qualifyCandidates(
		[]*repository.CandidateRecord{expensive, affordable, unstated},
		matchCenter,
		10,
		candidateCriteria{maxSalary: float64Ptr(50000)},
	)

	// The candidate with no stated expectation passes the ceiling.
	assert.Len(t, qualified, 2)
	for _, record := range qualified {
		if record.Candidate.ExpectedSalary != nil {
			assert.LessOrEqual(t, *record.Candidate.ExpectedSalary, 50000.0)
		}
	}
}

func TestQualifyCandidates_DistanceBound(t *testing.T) {
	near := seekerRecord(nil)
	far := seekerRecord(func(c *entity.Candidate) { c.Location = pointKmNorth(10.5) })

	qualified := qualifyCandidates([]*repository.CandidateRecord{near, far}, matchCenter, 10, candidateCriteria{})

	assert.Len(t, qualified, 1)
	assert.Equal(t, near.Candidate.ID, qualified[0].Candidate.ID)
}

func TestQualifyCandidates_RecomputesDistanceFromCenter(t *testing.T) {
	record := seekerRecord(func(c *entity.Candidate) { c.Location = pointKmNorth(8) })
	record.DistanceKm = 999 // stale store-computed value

	qualified := qualifyCandidates([]*repository.CandidateRecord{record}, matchCenter, 10, candidateCriteria{})

	require.Len(t, qualified, 1)
	assert.InDelta(t, 8.0, qualified[0].DistanceKm, 0.01)
}

func TestQualifyCandidates_StricterCriteriaNeverGrowTheSet(t *testing.T) {
	skill := uuid.New()
	records := []*repository.CandidateRecord{
		seekerRecord(func(c *entity.Candidate) {
			c.Skills = []entity.CandidateSkill{{SkillID: skill}}
			c.ExamVerified = true
		}),
		seekerRecord(func(c *entity.Candidate) { c.ExamVerified = true }),
		seekerRecord(nil),
	}

	loose := qualifyCandidates(records, matchCenter, 10, candidateCriteria{})
	verified := qualifyCandidates(records, matchCenter, 10, candidateCriteria{verifiedOnly: true})
	verifiedAndSkilled := qualifyCandidates(records, matchCenter, 10, candidateCriteria{verifiedOnly: true, skillIDs: []uuid.UUID{skill}})

	assert.GreaterOrEqual(t, len(loose), len(verified))
	assert.GreaterOrEqual(t, len(verified), len(verifiedAndSkilled))
}

func activeJobRecord(mutate func(*entity.JobPosting)) *repository.JobRecord {
	job := &entity.JobPosting{
		ID:         uuid.New(),
		EmployerID: uuid.New(),
		Title:      "Line Cook",
		Location:   &entity.GeoPoint{Latitude: 12.9716, Longitude: 77.5946},
		JobType:    entity.JobTypeFullTime,
		Status:     entity.JobStatusActive,
	}
	if mutate != nil {
		mutate(job)
	}

	return &repository.JobRecord{Job: job, DistanceKm: 3.0}
}

func TestQualifyJobs_OnlyActivePostingsPass(t *testing.T) {
	records := []*repository.JobRecord{
		activeJobRecord(nil),
		activeJobRecord(func(j *entity.JobPosting) { j.Status = entity.JobStatusDraft }),
		activeJobRecord(func(j *entity.JobPosting) { j.Status = entity.JobStatusExpired }),
		activeJobRecord(func(j *entity.JobPosting) { j.Location = nil }),
	}

	qualified := qualifyJobs(records, matchCenter, 10, jobCriteria{})
	assert.Len(t, qualified, 1)
}

func TestQualifyJobs_TypeAndSalaryFilters(t *testing.T) {
	partTime := entity.JobTypePartTime

	matching := activeJobRecord(func(j *entity.JobPosting) {
		j.JobType = entity.JobTypePartTime
		j.SalaryMax = float64Ptr(30000)
	})
	wrongType := activeJobRecord(nil)
	lowball := activeJobRecord(func(j *entity.JobPosting) {
		j.JobType = entity.JobTypePartTime
		j.SalaryMax = float64Ptr(10000)
	})
	unstatedSalary := activeJobRecord(func(j *entity.JobPosting) { j.JobType = entity.JobTypePartTime })

	qualified := qualifyJobs(
		[]*repository.JobRecord{matching, wrongType, lowball, unstatedSalary},
		matchCenter,
		10,
		jobCriteria{jobType: &partTime, minSalary: float64Ptr(20000)},
	)

	// The posting with no stated salary passes the floor.
	assert.Len(t, qualified, 2)
}

func TestQualifyJobs_DistanceBound(t *testing.T) {
	near := activeJobRecord(nil)
	far := activeJobRecord(func(j *entity.JobPosting) { j.Location = pointKmNorth(100.1) })

	qualified := qualifyJobs([]*repository.JobRecord{near, far}, matchCenter, 100, jobCriteria{})

	assert.Len(t, qualified, 1)
	assert.Equal(t, near.Job.ID, qualified[0].Job.ID)
}

func TestQualifyJobs_KeywordMatchesTitleOrDescription(t *testing.T) {
	titled := activeJobRecord(func(j *entity.JobPosting) { j.Title = "Senior Line Cook" })
	described := activeJobRecord(func(j *entity.JobPosting) {
		j.Title = "Kitchen Staff"
		j.Description = "Evening cook shifts at the downtown branch"
	})
	unrelated := activeJobRecord(func(j *entity.JobPosting) { j.Title = "Barista" })

	qualified := qualifyJobs(
		[]*repository.JobRecord{titled, described, unrelated},
		matchCenter,
		10,
		jobCriteria{keyword: "COOK"},
	)

	// Title and description both count, and matching ignores case.
	assert.Len(t, qualified, 2)
}

func TestHasAnySkill(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	assert.True(t, hasAnySkill([]uuid.UUID{a, b}, []uuid.UUID{b, c}))
	assert.False(t, hasAnySkill([]uuid.UUID{a}, []uuid.UUID{c}))
	assert.False(t, hasAnySkill(nil, []uuid.UUID{a}))
	assert.False(t, hasAnySkill([]uuid.UUID{a}, nil))
}
