package model

import (
	"time"

	"github.com/google/uuid"
)

// JobPostingModel is the GORM-specific struct for the 'job_postings' table.
type JobPostingModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key"`
	EmployerID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Title               string    `gorm:"type:varchar(255);not null"`
	Description         string    `gorm:"type:text;not null;default:''"`
	RequiredYears       *float64  `gorm:"type:decimal(4,1)"`
	Latitude            *float64  `gorm:"type:decimal(9,6);index:idx_jobs_lat_lng"`
	Longitude           *float64  `gorm:"type:decimal(9,6);index:idx_jobs_lat_lng"`
	SalaryMin           *float64  `gorm:"type:decimal(12,2)"`
	SalaryMax           *float64  `gorm:"type:decimal(12,2)"`
	JobType             string    `gorm:"type:varchar(32);not null"`
	Status              string    `gorm:"type:varchar(32);not null;index"`
	ApplicationDeadline *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time

	RequiredSkills []JobRequiredSkillModel `gorm:"foreignKey:JobID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (JobPostingModel) TableName() string {
	return "job_postings"
}

// JobRequiredSkillModel is the GORM-specific struct for the 'job_required_skills' table.
type JobRequiredSkillModel struct {
	JobID   uuid.UUID `gorm:"type:uuid;primary_key"`
	SkillID uuid.UUID `gorm:"type:uuid;primary_key;index"`
}

// TableName explicitly sets the table name for GORM.
func (JobRequiredSkillModel) TableName() string {
	return "job_required_skills"
}
