// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus represents the lifecycle state of a job posting.
// Only active postings are matchable.
type JobStatus string

const (
	// JobStatusDraft indicates a posting not yet published.
	JobStatusDraft JobStatus = "draft"
	// JobStatusActive indicates a live, matchable posting.
	JobStatusActive JobStatus = "active"
	// JobStatusPaused indicates a temporarily hidden posting.
	JobStatusPaused JobStatus = "paused"
	// JobStatusClosed indicates a posting closed by the employer.
	JobStatusClosed JobStatus = "closed"
	// JobStatusExpired indicates a posting past its application deadline.
	JobStatusExpired JobStatus = "expired"
)

// String returns the string representation of the JobStatus.
func (s JobStatus) String() string {
	return string(s)
}

// IsValid checks if the JobStatus is a valid value.
func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusDraft, JobStatusActive, JobStatusPaused, JobStatusClosed, JobStatusExpired:
		return true
	default:
		return false
	}
}

// JobType represents the employment arrangement of a posting.
type JobType string

const (
	// JobTypeFullTime indicates full-time employment.
	JobTypeFullTime JobType = "full_time"
	// JobTypePartTime indicates part-time employment.
	JobTypePartTime JobType = "part_time"
	// JobTypeContract indicates fixed-term contract work.
	JobTypeContract JobType = "contract"
	// JobTypeFreelance indicates freelance work.
	JobTypeFreelance JobType = "freelance"
	// JobTypeInternship indicates an internship.
	JobTypeInternship JobType = "internship"
)

// String returns the string representation of the JobType.
func (t JobType) String() string {
	return string(t)
}

// IsValid checks if the JobType is a valid value.
func (t JobType) IsValid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeFreelance, JobTypeInternship:
		return true
	default:
		return false
	}
}

// JobPosting is the posting projection consumed by the matching engine.
type JobPosting struct {
	ID                  uuid.UUID   `json:"id"`
	EmployerID          uuid.UUID   `json:"employer_id"`
	Title               string      `json:"title"`
	Description         string      `json:"description,omitempty"`
	RequiredSkillIDs    []uuid.UUID `json:"required_skill_ids"`
	RequiredYears       *float64    `json:"required_years,omitempty"`
	Location            *GeoPoint   `json:"location,omitempty"` // nil excludes the posting from geo search
	SalaryMin           *float64    `json:"salary_min,omitempty"`
	SalaryMax           *float64    `json:"salary_max,omitempty"`
	JobType             JobType     `json:"job_type"`
	Status              JobStatus   `json:"status"`
	ApplicationDeadline *time.Time  `json:"application_deadline,omitempty"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

// IsMatchable reports whether the posting may participate in matching.
func (j *JobPosting) IsMatchable() bool {
	return j.Status == JobStatusActive
}

// OfferedSalary returns the salary figure used as the reference for the salary
// subscore: the offer ceiling when present, otherwise the floor.
func (j *JobPosting) OfferedSalary() *float64 {
	if j.SalaryMax != nil {
		return j.SalaryMax
	}

	return j.SalaryMin
}
