package impl

import (
	"strings"

	"jobmatch/internal/domain/entity"
	"jobmatch/internal/domain/repository"

	"github.com/google/uuid"
)

// candidateCriteria holds the hard requirements a candidate must meet to enter
// scoring. Hard filters are binary; anything graded belongs in the scorer.
type candidateCriteria struct {
	skillIDs     []uuid.UUID // OR semantics; empty means no skill requirement
	availability *entity.Availability
	verifiedOnly bool
	maxSalary    *float64 // offer ceiling; candidates expecting more are out
}

// jobCriteria holds the hard requirements a posting must meet to enter scoring.
type jobCriteria struct {
	jobType   *entity.JobType
	minSalary *float64
	keyword   string      // case-insensitive substring on title or description; empty means no filter
	skillIDs  []uuid.UUID // OR semantics; empty means no skill requirement
}

// qualifyCandidates applies the hard filters in fixed order: status, role,
// coordinates, skills, availability, verification, salary ceiling, distance.
// The order never changes results, only which check eliminates a record first.
// Repository pushdown already covers most of these; re-checking here keeps the
// pipeline correct regardless of how much filtering the store performed. The
// store's distance is likewise treated as a prefilter: it is recomputed from
// the center so the radius bound and the ranking use one authoritative value.
func qualifyCandidates(records []*repository.CandidateRecord, center entity.GeoPoint, radiusKm float64, criteria candidateCriteria) []*repository.CandidateRecord {
	qualified := make([]*repository.CandidateRecord, 0, len(records))

	for _, record := range records {
		if record == nil || record.Candidate == nil {
			continue
		}
		candidate := record.Candidate

		if !candidate.IsActive || candidate.IsBanned {
			continue
		}
		if candidate.Role != entity.RoleJobSeeker {
			continue
		}
		if candidate.Location == nil {
			continue
		}
		record.DistanceKm = center.DistanceKm(*candidate.Location)
		if len(criteria.skillIDs) > 0 && !hasAnySkill(candidate.SkillIDs(), criteria.skillIDs) {
			continue
		}
		if criteria.availability != nil && candidate.Availability != *criteria.availability {
			continue
		}
		if criteria.verifiedOnly && !candidate.ExamVerified {
			continue
		}
		if criteria.maxSalary != nil && candidate.ExpectedSalary != nil &&
			*candidate.ExpectedSalary > *criteria.maxSalary {
			continue
		}
		if record.DistanceKm > radiusKm {
			continue
		}

		qualified = append(qualified, record)
	}

	return qualified
}

// qualifyJobs applies the posting-side hard filters in fixed order: status,
// coordinates, job type, salary floor, keyword, skills, distance. The distance
// is recomputed from the center, same as the candidate side.
func qualifyJobs(records []*repository.JobRecord, center entity.GeoPoint, radiusKm float64, criteria jobCriteria) []*repository.JobRecord {
	qualified := make([]*repository.JobRecord, 0, len(records))

	for _, record := range records {
		if record == nil || record.Job == nil {
			continue
		}
		job := record.Job

		if !job.IsMatchable() {
			continue
		}
		if job.Location == nil {
			continue
		}
		record.DistanceKm = center.DistanceKm(*job.Location)
		if criteria.jobType != nil && job.JobType != *criteria.jobType {
			continue
		}
		if criteria.minSalary != nil {
			// Postings with no stated salary pass; only an explicit offer below
			// the floor disqualifies.
			if offered := job.OfferedSalary(); offered != nil && *offered < *criteria.minSalary {
				continue
			}
		}
		if criteria.keyword != "" && !matchesKeyword(job, criteria.keyword) {
			continue
		}
		if len(criteria.skillIDs) > 0 && !hasAnySkill(job.RequiredSkillIDs, criteria.skillIDs) {
			continue
		}
		if record.DistanceKm > radiusKm {
			continue
		}

		qualified = append(qualified, record)
	}

	return qualified
}

// matchesKeyword reports whether the posting title or description contains the
// keyword, case-insensitively. It mirrors the ILIKE pushdown in the job store.
func matchesKeyword(job *entity.JobPosting, keyword string) bool {
	needle := strings.ToLower(keyword)

	return strings.Contains(strings.ToLower(job.Title), needle) ||
		strings.Contains(strings.ToLower(job.Description), needle)
}

// hasAnySkill reports whether the two skill sets intersect.
func hasAnySkill(have, wanted []uuid.UUID) bool {
	if len(have) == 0 || len(wanted) == 0 {
		return false
	}

	haveSet := make(map[uuid.UUID]struct{}, len(have))
	for _, id := range have {
		haveSet[id] = struct{}{}
	}

	for _, id := range wanted {
		if _, ok := haveSet[id]; ok {
			return true
		}
	}

	return false
}
