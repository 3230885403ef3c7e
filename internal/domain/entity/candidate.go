// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Availability represents how soon a job seeker can start working.
type Availability string

const (
	// AvailabilityImmediate indicates the seeker can start right away.
	AvailabilityImmediate Availability = "immediate"
	// AvailabilityWithinWeek indicates the seeker can start within a week.
	AvailabilityWithinWeek Availability = "within_week"
	// AvailabilityWithinMonth indicates the seeker can start within a month.
	AvailabilityWithinMonth Availability = "within_month"
	// AvailabilityNotAvailable indicates the seeker is not currently looking.
	AvailabilityNotAvailable Availability = "not_available"
)

// String returns the string representation of the Availability.
func (a Availability) String() string {
	return string(a)
}

// IsValid checks if the Availability is a valid value.
func (a Availability) IsValid() bool {
	switch a {
	case AvailabilityImmediate, AvailabilityWithinWeek, AvailabilityWithinMonth, AvailabilityNotAvailable:
		return true
	default:
		return false
	}
}

// CandidateSkill links a candidate to a skill from the taxonomy with
// self-reported proficiency and experience.
type CandidateSkill struct {
	SkillID           uuid.UUID `json:"skill_id"`
	ProficiencyLevel  string    `json:"proficiency_level"`
	YearsOfExperience float64   `json:"years_of_experience"`
}

// Candidate is the job-seeker projection consumed by the matching engine.
// It carries only the attributes qualification and scoring read; profile
// ownership lives in the user service.
type Candidate struct {
	ID             uuid.UUID        `json:"id"`
	Role           Role             `json:"role"`
	Skills         []CandidateSkill `json:"skills"`
	Location       *GeoPoint        `json:"location,omitempty"` // nil excludes the candidate from geo search
	Availability   Availability     `json:"availability"`
	ExpectedSalary *float64         `json:"expected_salary,omitempty"`
	ExamVerified   bool             `json:"exam_verified"`
	IsActive       bool             `json:"is_active"`
	IsBanned       bool             `json:"is_banned"`
	Tier           SubscriptionTier `json:"subscription_tier"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// SkillIDs returns the set of skill IDs the candidate holds.
func (c *Candidate) SkillIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.Skills))
	for _, skill := range c.Skills {
		ids = append(ids, skill.SkillID)
	}

	return ids
}

// TotalYearsOfExperience returns the highest per-skill experience figure.
// The experience subscore compares it against a job's stated requirement.
func (c *Candidate) TotalYearsOfExperience() float64 {
	var most float64
	for _, skill := range c.Skills {
		if skill.YearsOfExperience > most {
			most = skill.YearsOfExperience
		}
	}

	return most
}
