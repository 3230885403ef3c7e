// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Match score weights. They must sum to 1.0 so the weighted score stays in [0,1].
const (
	WeightSkill        = 0.40
	WeightLocation     = 0.25
	WeightSalary       = 0.20
	WeightAvailability = 0.10
	WeightExperience   = 0.05
)

// ScoreBreakdown holds the five independent subscores of a match, each in [0,1].
type ScoreBreakdown struct {
	Skill        float64 `json:"skill"`
	Location     float64 `json:"location"`
	Salary       float64 `json:"salary"`
	Availability float64 `json:"availability"`
	Experience   float64 `json:"experience"`
}

// Weighted returns the weighted sum of the subscores.
func (b ScoreBreakdown) Weighted() float64 {
	return WeightSkill*b.Skill +
		WeightLocation*b.Location +
		WeightSalary*b.Salary +
		WeightAvailability*b.Availability +
		WeightExperience*b.Experience
}

// MatchResult is a derived ranking record for a (subject, counterpart) pair.
// It is never the source of truth; results are recomputed on demand or cached
// with an explicit invalidation trigger.
type MatchResult struct {
	SubjectID     uuid.UUID      `json:"subject_id"`
	CounterpartID uuid.UUID      `json:"counterpart_id"`
	DistanceKm    float64        `json:"distance_km"`
	Score         float64        `json:"score"`
	Breakdown     ScoreBreakdown `json:"score_breakdown"`
	Verified      bool           `json:"verified"`
	ComputedAt    time.Time      `json:"computed_at"`
}
