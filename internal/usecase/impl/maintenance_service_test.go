package impl

import (
	"context"
	"testing"

	domainerrors "jobmatch/internal/domain/errors"
	domainservice "jobmatch/internal/domain/service"
	mockRepo "jobmatch/internal/mocks/repository"
	mockSvc "jobmatch/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMaintenanceService_ExpireDueJobs_NothingDue(t *testing.T) {
	jobRepo := mockRepo.NewMockJobRepository(t)
	matchRepo := mockRepo.NewMockMatchRepository(t)
	cache := mockSvc.NewMockMatchCache(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	service := NewMaintenanceService(jobRepo, matchRepo, cache, publisher, newDiscardLogger())

	ctx := context.Background()

	jobRepo.EXPECT().
		ExpirePastDeadline(ctx, mock.AnythingOfType("time.Time")).
		Return([]uuid.UUID{}, nil)

	count, err := service.ExpireDueJobs(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMaintenanceService_ExpireDueJobs_CleansUpEachPosting(t *testing.T) {
	jobRepo := mockRepo.NewMockJobRepository(t)
	matchRepo := mockRepo.NewMockMatchRepository(t)
	cache := mockSvc.NewMockMatchCache(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	service := NewMaintenanceService(jobRepo, matchRepo, cache, publisher, newDiscardLogger())

	ctx := context.Background()
	first, second := uuid.New(), uuid.New()

	jobRepo.EXPECT().
		ExpirePastDeadline(ctx, mock.AnythingOfType("time.Time")).
		Return([]uuid.UUID{first, second}, nil)

	matchRepo.EXPECT().DeleteMatchesByJob(ctx, first).Return(nil)
	matchRepo.EXPECT().DeleteMatchesByJob(ctx, second).Return(nil)
	cache.EXPECT().InvalidateJob(ctx, first).Return(nil)
	cache.EXPECT().InvalidateJob(ctx, second).Return(nil)
	publisher.EXPECT().
		PublishJobEvent(ctx, mock.MatchedBy(func(e *domainservice.JobEvent) bool {
			return e.EventType == domainservice.JobEventExpired
		})).
		Return(nil).
		Times(2)

	count, err := service.ExpireDueJobs(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMaintenanceService_ExpireDueJobs_SweepContinuesPastCleanupFailure(t *testing.T) {
	jobRepo := mockRepo.NewMockJobRepository(t)
	matchRepo := mockRepo.NewMockMatchRepository(t)
	cache := mockSvc.NewMockMatchCache(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	service := NewMaintenanceService(jobRepo, matchRepo, cache, publisher, newDiscardLogger())

	ctx := context.Background()
	broken, healthy := uuid.New(), uuid.New()

	jobRepo.EXPECT().
		ExpirePastDeadline(ctx, mock.AnythingOfType("time.Time")).
		Return([]uuid.UUID{broken, healthy}, nil)

	matchRepo.EXPECT().DeleteMatchesByJob(ctx, broken).Return(errors.New("timeout"))
	matchRepo.EXPECT().DeleteMatchesByJob(ctx, healthy).Return(nil)
	cache.EXPECT().InvalidateJob(ctx, healthy).Return(nil)
	publisher.EXPECT().
		PublishJobEvent(ctx, mock.MatchedBy(func(e *domainservice.JobEvent) bool {
			return e.JobID == healthy.String()
		})).
		Return(nil).
		Once()

	count, err := service.ExpireDueJobs(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMaintenanceService_ExpireDueJobs_SweepFailure(t *testing.T) {
	jobRepo := mockRepo.NewMockJobRepository(t)
	matchRepo := mockRepo.NewMockMatchRepository(t)
	cache := mockSvc.NewMockMatchCache(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	service := NewMaintenanceService(jobRepo, matchRepo, cache, publisher, newDiscardLogger())

	ctx := context.Background()

	jobRepo.EXPECT().
		ExpirePastDeadline(ctx, mock.AnythingOfType("time.Time")).
		Return(nil, errors.New("connection reset"))

	count, err := service.ExpireDueJobs(ctx)
	assert.Equal(t, 0, count)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "REPOSITORY_UNAVAILABLE", appErr.ErrorCode())
}
