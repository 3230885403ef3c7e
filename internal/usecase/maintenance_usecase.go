package usecase

import "context"

// MaintenanceUsecase defines background housekeeping run by the scheduler.
type MaintenanceUsecase interface {
	// ExpireDueJobs marks postings past their application deadline as expired,
	// removes their persisted matches and drops their cache entries. It returns
	// the number of postings expired.
	ExpireDueJobs(ctx context.Context) (int, error)
}
