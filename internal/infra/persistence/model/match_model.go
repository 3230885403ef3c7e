package model

import (
	"time"

	"github.com/google/uuid"
)

// JobMatchModel is the GORM-specific struct for the 'job_matches' table.
// Rows are derived ranking data keyed by (job, candidate); the background
// generation path upserts them and the retrieval path reads them ordered by
// score. The table is never the source of truth for either side of the pair.
type JobMatchModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	JobID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_job_matches_pair"`
	CandidateID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_job_matches_pair"`
	Score             float64   `gorm:"type:decimal(6,5);not null"`
	DistanceKm        float64   `gorm:"type:decimal(10,2);not null"`
	SkillScore        float64   `gorm:"type:decimal(6,5);not null"`
	LocationScore     float64   `gorm:"type:decimal(6,5);not null"`
	SalaryScore       float64   `gorm:"type:decimal(6,5);not null"`
	AvailabilityScore float64   `gorm:"type:decimal(6,5);not null"`
	ExperienceScore   float64   `gorm:"type:decimal(6,5);not null"`
	Verified          bool      `gorm:"not null;default:false"`
	ComputedAt        time.Time `gorm:"not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (JobMatchModel) TableName() string {
	return "job_matches"
}
