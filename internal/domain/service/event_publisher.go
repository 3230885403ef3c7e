// Package service defines infrastructure-facing interfaces consumed by the
// application layer.
package service

import (
	"context"
)

// Job event types carried in the "event_type" attribute of a published message.
const (
	JobEventCreated = "job.created"
	JobEventUpdated = "job.updated"
	JobEventExpired = "job.expired"
)

// JobEvent represents a job lifecycle event to be processed by the match worker.
// Match generation runs off the request path; publishing this event is the only
// coupling between the job CRUD service and the matching engine.
type JobEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	EventType  string `json:"event_type"`
	JobID      string `json:"job_id"`
	EmployerID string `json:"employer_id,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishJobEvent publishes a job lifecycle event for async match generation
	PublishJobEvent(ctx context.Context, event *JobEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
