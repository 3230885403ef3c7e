package model

import (
	"time"

	"github.com/google/uuid"
)

// CandidateModel is the GORM-specific struct for the 'matching_candidates' table.
// It is a read-mostly projection of the job-seeker profile, synced from the user
// service; the matching engine never writes profile fields.
type CandidateModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	Role           string    `gorm:"type:varchar(32);not null;index"`
	Latitude       *float64  `gorm:"type:decimal(9,6);index:idx_candidates_lat_lng"`
	Longitude      *float64  `gorm:"type:decimal(9,6);index:idx_candidates_lat_lng"`
	Availability   string    `gorm:"type:varchar(32);not null;default:'not_available'"`
	ExpectedSalary *float64  `gorm:"type:decimal(12,2)"`
	ExamVerified   bool      `gorm:"not null;default:false"`
	IsActive       bool      `gorm:"not null;default:true"`
	IsBanned       bool      `gorm:"not null;default:false"`
	UpdatedAt      time.Time

	Skills []CandidateSkillModel `gorm:"foreignKey:CandidateID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (CandidateModel) TableName() string {
	return "matching_candidates"
}

// CandidateSkillModel is the GORM-specific struct for the 'candidate_skills' table.
// One row per (candidate, skill) pair from the shared skill taxonomy.
type CandidateSkillModel struct {
	CandidateID       uuid.UUID `gorm:"type:uuid;primary_key"`
	SkillID           uuid.UUID `gorm:"type:uuid;primary_key;index"`
	ProficiencyLevel  string    `gorm:"type:varchar(32)"`
	YearsOfExperience float64   `gorm:"type:decimal(4,1);not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (CandidateSkillModel) TableName() string {
	return "candidate_skills"
}
