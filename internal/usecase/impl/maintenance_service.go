package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "jobmatch/internal/delivery/context"
	domainerrors "jobmatch/internal/domain/errors"
	"jobmatch/internal/domain/repository"
	"jobmatch/internal/domain/service"
	"jobmatch/internal/usecase"
)

// maintenanceService implements the MaintenanceUsecase interface.
type maintenanceService struct {
	jobRepo   repository.JobRepository
	matchRepo repository.MatchRepository
	cache     service.MatchCache
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewMaintenanceService is the constructor for maintenanceService.
func NewMaintenanceService(
	jobRepo repository.JobRepository,
	matchRepo repository.MatchRepository,
	cache service.MatchCache,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.MaintenanceUsecase {
	return &maintenanceService{
		jobRepo:   jobRepo,
		matchRepo: matchRepo,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *maintenanceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ExpireDueJobs sweeps postings past their application deadline into the
// expired state, then drops each posting's stored ranking and cache entry so a
// dead posting never serves matches. Per-posting cleanup failures are logged
// and the sweep continues; the next run picks up whatever was missed.
func (srv *maintenanceService) ExpireDueJobs(ctx context.Context) (int, error) {
	expiredIDs, err := srv.jobRepo.ExpirePastDeadline(ctx, time.Now())
	if err != nil {
		srv.log(ctx).Error("Job expiry sweep failed", slog.Any("error", err))

		return 0, domainerrors.NewDatabaseExecuteError(err, "expire jobs past deadline")
	}

	for _, jobID := range expiredIDs {
		if err := srv.matchRepo.DeleteMatchesByJob(ctx, jobID); err != nil {
			srv.log(ctx).Error("Match deletion failed for expired job", slog.Any("error", err), slog.Any("job_id", jobID))

			continue
		}

		if err := srv.cache.InvalidateJob(ctx, jobID); err != nil {
			srv.log(ctx).Warn("Match cache invalidation failed for expired job", slog.Any("error", err), slog.Any("job_id", jobID))
		}

		// Downstream consumers (employer notifications, analytics) observe
		// expiry through the event stream.
		event := &service.JobEvent{
			RequestID: deliverycontext.GetRequestIDFromContext(ctx),
			EventType: service.JobEventExpired,
			JobID:     jobID.String(),
		}
		if err := srv.publisher.PublishJobEvent(ctx, event); err != nil {
			srv.log(ctx).Warn("Expiry event publish failed", slog.Any("error", err), slog.Any("job_id", jobID))
		}
	}

	if len(expiredIDs) > 0 {
		srv.log(ctx).Info("Expired job postings", slog.Int("count", len(expiredIDs)))
	}

	return len(expiredIDs), nil
}
