package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"jobmatch/config"
	"jobmatch/internal/domain/entity"
	domainerrors "jobmatch/internal/domain/errors"
	"jobmatch/internal/domain/repository"
	mockRepo "jobmatch/internal/mocks/repository"
	mockSvc "jobmatch/internal/mocks/service"
	"jobmatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type matchServiceMocks struct {
	candidateRepo    *mockRepo.MockCandidateRepository
	jobRepo          *mockRepo.MockJobRepository
	matchRepo        *mockRepo.MockMatchRepository
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	txManager        *mockRepo.MockTransactionManager
	cache            *mockSvc.MockMatchCache
}

func newMatchService(t *testing.T, cfg *config.Config) (usecase.MatchUsecase, *matchServiceMocks) {
	t.Helper()

	mocks := &matchServiceMocks{
		candidateRepo:    mockRepo.NewMockCandidateRepository(t),
		jobRepo:          mockRepo.NewMockJobRepository(t),
		matchRepo:        mockRepo.NewMockMatchRepository(t),
		subscriptionRepo: mockRepo.NewMockSubscriptionRepository(t),
		txManager:        mockRepo.NewMockTransactionManager(t),
		cache:            mockSvc.NewMockMatchCache(t),
	}

	service := NewMatchService(MatchServiceParams{
		CandidateRepo:    mocks.candidateRepo,
		JobRepo:          mocks.jobRepo,
		MatchRepo:        mocks.matchRepo,
		SubscriptionRepo: mocks.subscriptionRepo,
		TxManager:        mocks.txManager,
		Cache:            mocks.cache,
		Config:           cfg,
		Logger:           newDiscardLogger(),
	})

	return service, mocks
}

func defaultTestConfig() *config.Config {
	return &config.Config{Matching: config.DefaultMatching()}
}

func TestMatchService_SearchCandidates_InvalidCoordinates(t *testing.T) {
	service, _ := newMatchService(t, defaultTestConfig())

	page, err := service.SearchCandidates(context.Background(), &usecase.SearchCandidatesInput{
		CallerID:  uuid.New(),
		Latitude:  95.0,
		Longitude: 77.5946,
		Page:      1,
		PageSize:  10,
	})

	assert.Nil(t, page)
	assert.Equal(t, domainerrors.ErrInvalidCoordinates, err)
}

func TestMatchService_SearchCandidates_InvalidRadius(t *testing.T) {
	service, mocks := newMatchService(t, defaultTestConfig())

	ctx := context.Background()
	callerID := uuid.New()

	mocks.subscriptionRepo.EXPECT().
		TierOf(ctx, callerID).
		Return(entity.TierFree, nil)

	page, err := service.SearchCandidates(ctx, &usecase.SearchCandidatesInput{
		CallerID:  callerID,
		Latitude:  12.9716,
		Longitude: 77.5946,
		RadiusKm:  float64Ptr(-3),
		Page:      1,
		PageSize:  10,
	})

	assert.Nil(t, page)
	assert.Equal(t, domainerrors.ErrInvalidRadius, err)
}

func TestMatchService_SearchCandidates_CapsRadiusByTier(t *testing.T) {
	service, mocks := newMatchService(t, defaultTestConfig())

	ctx := context.Background()
	callerID := uuid.New()
	center := entity.GeoPoint{Latitude: 12.9716, Longitude: 77.5946}

	mocks.subscriptionRepo.EXPECT().
		TierOf(ctx, callerID).
		Return(entity.TierFree, nil)

	// A 500km request from a free-tier caller hits the store with the 10km cap.
	mocks.candidateRepo.EXPECT().
		FindWithinRadius(ctx, center, 10.0, mock.AnythingOfType("repository.CandidateFilters")).
		Return([]*repository.CandidateRecord{}, nil)

	page, err := service.SearchCandidates(ctx, &usecase.SearchCandidatesInput{
		CallerID:  callerID,
		Latitude:  center.Latitude,
		Longitude: center.Longitude,
		RadiusKm:  float64Ptr(500),
		Page:      1,
		PageSize:  10,
	})

	require.NoError(t, err)
	assert.Equal(t, 10.0, page.SearchRadiusUsed)
	assert.Empty(t, page.Results)
	assert.Equal(t, int64(0), page.Total)
}

func TestMatchService_SearchCandidates_RepositoryUnavailable(t *testing.T) {
	service, mocks := newMatchService(t, defaultTestConfig())

	ctx := context.Background()
	callerID := uuid.New()

	mocks.subscriptionRepo.EXPECT().
		TierOf(ctx, callerID).
		Return(entity.TierFree, nil)

	mocks.candidateRepo.EXPECT().
		FindWithinRadius(ctx, mock.AnythingOfType("entity.GeoPoint"), 10.0, mock.AnythingOfType("repository.CandidateFilters")).
		Return(nil, errors.New("connection refused"))

	page, err := service.SearchCandidates(ctx, &usecase.SearchCandidatesInput{
		CallerID:  callerID,
		Latitude:  12.9716,
		Longitude: 77.5946,
		Page:      1,
		PageSize:  10,
	})

	assert.Nil(t, page)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "REPOSITORY_UNAVAILABLE", appErr.ErrorCode())
}

func TestMatchService_SearchCandidates_RanksByScore(t *testing.T) {
	service, mocks := newMatchService(t, defaultTestConfig())

	ctx := context.Background()
	callerID := uuid.New()
	skill := uuid.New()

	near := seekerRecord(func(c *entity.Candidate) {
		c.Skills = []entity.CandidateSkill{{SkillID: skill}}
	})

	far := seekerRecord(func(c *entity.Candidate) {
		c.Skills = []entity.CandidateSkill{{SkillID: skill}}
		c.Location = pointKmNorth(8)
	})

	mocks.subscriptionRepo.EXPECT().
		TierOf(ctx, callerID).
		Return(entity.TierFree, nil)

	mocks.candidateRepo.EXPECT().
		FindWithinRadius(ctx, mock.AnythingOfType("entity.GeoPoint"), 10.0, mock.AnythingOfType("repository.CandidateFilters")).
		Return([]*repository.CandidateRecord{far, near}, nil)

	page, err := service.SearchCandidates(ctx, &usecase.SearchCandidatesInput{
		CallerID:         callerID,
		Latitude:         12.9716,
		Longitude:        77.5946,
		RequiredSkillIDs: []uuid.UUID{skill},
		Page:             1,
		PageSize:         10,
	})

	require.NoError(t, err)
	require.Len(t, page.Results, 2)

	// Identical subscores except location: the closer candidate ranks first.
	assert.Equal(t, near.Candidate.ID, page.Results[0].CounterpartID)
	assert.Equal(t, far.Candidate.ID, page.Results[1].CounterpartID)
	assert.Greater(t, page.Results[0].Score, page.Results[1].Score)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, int64(1), page.TotalPages)
}

func TestMatchService_SearchCandidates_SkipsCorruptRecord(t *testing.T) {
	service, mocks := newMatchService(t, defaultTestConfig())

	ctx := context.Background()
	callerID := uuid.New()

	healthy := seekerRecord(nil)
	corrupt := seekerRecord(func(c *entity.Candidate) { c.ID = uuid.Nil })

	mocks.subscriptionRepo.EXPECT().
		TierOf(ctx, callerID).
		Return(entity.TierFree, nil)

	mocks.candidateRepo.EXPECT().
		FindWithinRadius(ctx, mock.AnythingOfType("entity.GeoPoint"), 10.0, mock.AnythingOfType("repository.CandidateFilters")).
		Return([]*repository.CandidateRecord{healthy, corrupt}, nil)

	page, err := service.SearchCandidates(ctx, &usecase.SearchCandidatesInput{
		CallerID:  callerID,
		Latitude:  12.9716,
		Longitude: 77.5946,
		Page:      1,
		PageSize:  10,
	})

	// The corrupt record is skipped, the batch survives.
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, healthy.Candidate.ID, page.Results[0].CounterpartID)
}

func TestMatchService_SearchJobs_CandidateNotFound(t *testing.T) {
	service, mocks := newMatchService(t, defaultTestConfig())

	ctx := context.Background()
	callerID := uuid.New()

	mocks.candidateRepo.EXPECT().
		FindByID(ctx, callerID).
		Return(nil, repository.ErrCandidateNotFound)

	page, err := service.SearchJobs(ctx, &usecase.SearchJobsInput{
		CallerID:  callerID,
		Latitude:  12.9716,
		Longitude: 77.5946,
		Page:      1,
		PageSize:  10,
	})

	assert.Nil(t, page)
	assert.Equal(t, domainerrors.ErrCandidateNotFound, err)
}

func TestMatchService_SearchJobs_PremiumTierWidensRadius(t *testing.T) {
	service, mocks := newMatchService(t, defaultTestConfig())

	ctx := context.Background()
	skill := uuid.New()

	candidate := &entity.Candidate{
		ID:           uuid.New(),
		Role:         entity.RoleJobSeeker,
		Skills:       []entity.CandidateSkill{{SkillID: skill, YearsOfExperience: 2}},
		Location:     &entity.GeoPoint{Latitude: 12.9716, Longitude: 77.5946},
		Availability: entity.AvailabilityImmediate,
		IsActive:     true,
		Tier:         entity.TierPremium,
	}

	record := activeJobRecord(func(j *entity.JobPosting) {
		j.RequiredSkillIDs = []uuid.UUID{skill}
		j.Location = pointKmNorth(60)
	})

	mocks.candidateRepo.EXPECT().
		FindByID(ctx, candidate.ID).
		Return(candidate, nil)

	mocks.jobRepo.EXPECT().
		FindWithinRadius(ctx, mock.AnythingOfType("entity.GeoPoint"), 100.0, mock.AnythingOfType("repository.JobFilters")).
		Return([]*repository.JobRecord{record}, nil)

	page, err := service.SearchJobs(ctx, &usecase.SearchJobsInput{
		CallerID:  candidate.ID,
		Latitude:  12.9716,
		Longitude: 77.5946,
		Page:      1,
		PageSize:  10,
	})

	require.NoError(t, err)
	assert.Equal(t, 100.0, page.SearchRadiusUsed)
	require.Len(t, page.Results, 1)
	assert.Equal(t, record.Job.ID, page.Results[0].CounterpartID)
	assert.Equal(t, candidate.ID, page.Results[0].SubjectID)
}

func TestMatchService_SearchJobs_PushesKeywordToStore(t *testing.T) {
	service, mocks := newMatchService(t, defaultTestConfig())

	ctx := context.Background()
	candidate := &entity.Candidate{
		ID:       uuid.New(),
		Role:     entity.RoleJobSeeker,
		Location: &entity.GeoPoint{Latitude: 12.9716, Longitude: 77.5946},
		IsActive: true,
		Tier:     entity.TierFree,
	}

	mocks.candidateRepo.EXPECT().
		FindByID(ctx, candidate.ID).
		Return(candidate, nil)

	mocks.jobRepo.EXPECT().
		FindWithinRadius(ctx, mock.AnythingOfType("entity.GeoPoint"), 10.0, mock.MatchedBy(func(filters repository.JobFilters) bool {
			return filters.Keyword == "cook"
		})).
		Return([]*repository.JobRecord{}, nil)

	page, err := service.SearchJobs(ctx, &usecase.SearchJobsInput{
		CallerID:  candidate.ID,
		Latitude:  12.9716,
		Longitude: 77.5946,
		Keyword:   "cook",
		Page:      1,
		PageSize:  10,
	})

	require.NoError(t, err)
	assert.Empty(t, page.Results)
}

func TestMatchService_GenerateMatchesForJob_JobNotFound(t *testing.T) {
	service, mocks := newMatchService(t, defaultTestConfig())

	ctx := context.Background()
	jobID := uuid.New()

	mocks.jobRepo.EXPECT().
		FindByID(ctx, jobID).
		Return(nil, repository.ErrJobNotFound)

	err := service.GenerateMatchesForJob(ctx, jobID)
	assert.Equal(t, domainerrors.ErrJobNotFound, err)
}

func TestMatchService_GenerateMatchesForJob_NotMatchable(t *testing.T) {
	service, mocks := newMatchService(t, defaultTestConfig())

	ctx := context.Background()
	job := activeJobRecord(func(j *entity.JobPosting) { j.Status = entity.JobStatusClosed }).Job

	mocks.jobRepo.EXPECT().
		FindByID(ctx, job.ID).
		Return(job, nil)

	err := service.GenerateMatchesForJob(ctx, job.ID)
	assert.Equal(t, domainerrors.ErrJobNotMatchable, err)
}

func TestMatchService_GenerateMatchesForJob_NoLocationClearsStaleMatches(t *testing.T) {
	service, mocks := newMatchService(t, defaultTestConfig())

	ctx := context.Background()
	job := activeJobRecord(func(j *entity.JobPosting) { j.Location = nil }).Job

	mocks.jobRepo.EXPECT().
		FindByID(ctx, job.ID).
		Return(job, nil)

	mocks.matchRepo.EXPECT().
		DeleteMatchesByJob(ctx, job.ID).
		Return(nil)

	mocks.cache.EXPECT().
		InvalidateJob(ctx, job.ID).
		Return(nil)

	err := service.GenerateMatchesForJob(ctx, job.ID)
	require.NoError(t, err)
}

func TestMatchService_GenerateMatchesForJob_PersistsTopN(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.Matching.MatchTopN = 2

	service, mocks := newMatchService(t, cfg)

	ctx := context.Background()
	skill := uuid.New()

	job := activeJobRecord(func(j *entity.JobPosting) {
		j.RequiredSkillIDs = []uuid.UUID{skill}
	}).Job

	records := make([]*repository.CandidateRecord, 0, 3)
	for _, distance := range []float64{1, 3, 7} {
		record := seekerRecord(func(c *entity.Candidate) {
			c.Skills = []entity.CandidateSkill{{SkillID: skill}}
			c.Location = pointKmNorth(distance)
		})
		records = append(records, record)
	}

	mocks.jobRepo.EXPECT().
		FindByID(ctx, job.ID).
		Return(job, nil)

	mocks.subscriptionRepo.EXPECT().
		TierOf(ctx, job.EmployerID).
		Return(entity.TierFree, nil)

	mocks.candidateRepo.EXPECT().
		FindWithinRadius(ctx, *job.Location, 10.0, mock.AnythingOfType("repository.CandidateFilters")).
		Return(records, nil)

	txMatchRepo := mockRepo.NewMockMatchRepository(t)
	txFactory := mockRepo.NewMockRepositoryFactory(t)
	txFactory.EXPECT().MatchRepo().Return(txMatchRepo)

	txMatchRepo.EXPECT().
		DeleteMatchesByJob(ctx, job.ID).
		Return(nil)

	var stored []*entity.MatchResult
	txMatchRepo.EXPECT().
		UpsertMatches(ctx, job.ID, mock.AnythingOfType("[]*entity.MatchResult")).
		Run(func(_ context.Context, _ uuid.UUID, results []*entity.MatchResult) {
			stored = results
		}).
		Return(nil)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(txFactory)
		})

	mocks.cache.EXPECT().
		InvalidateJob(ctx, job.ID).
		Return(nil)

	err := service.GenerateMatchesForJob(ctx, job.ID)
	require.NoError(t, err)

	// Only the top-N survive, closest (highest scoring) first.
	require.Len(t, stored, 2)
	assert.Equal(t, records[0].Candidate.ID, stored[0].CounterpartID)
	assert.Equal(t, records[1].Candidate.ID, stored[1].CounterpartID)
	assert.Equal(t, job.ID, stored[0].SubjectID)
}

func TestMatchService_GenerateMatchesForJob_PersistFailureIsRepositoryUnavailable(t *testing.T) {
	service, mocks := newMatchService(t, defaultTestConfig())

	ctx := context.Background()
	job := activeJobRecord(nil).Job

	mocks.jobRepo.EXPECT().
		FindByID(ctx, job.ID).
		Return(job, nil)

	mocks.subscriptionRepo.EXPECT().
		TierOf(ctx, job.EmployerID).
		Return(entity.TierFree, nil)

	mocks.candidateRepo.EXPECT().
		FindWithinRadius(ctx, *job.Location, 10.0, mock.AnythingOfType("repository.CandidateFilters")).
		Return([]*repository.CandidateRecord{}, nil)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("deadlock detected"))

	err := service.GenerateMatchesForJob(ctx, job.ID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "REPOSITORY_UNAVAILABLE", appErr.ErrorCode())
}

func TestMatchService_GetMatchesForJob_CacheHit(t *testing.T) {
	service, mocks := newMatchService(t, defaultTestConfig())

	ctx := context.Background()
	job := activeJobRecord(nil).Job
	cached := []*entity.MatchResult{matchResult(0.9, 1, true), matchResult(0.8, 2, false)}

	mocks.jobRepo.EXPECT().
		FindByID(ctx, job.ID).
		Return(job, nil)

	mocks.cache.EXPECT().
		GetMatches(ctx, job.ID).
		Return(cached, true, nil)

	page, err := service.GetMatchesForJob(ctx, job.EmployerID, job.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, cached, page.Results)
	assert.Equal(t, int64(2), page.Total)
}

func TestMatchService_GetMatchesForJob_CacheMissLoadsStore(t *testing.T) {
	service, mocks := newMatchService(t, defaultTestConfig())

	ctx := context.Background()
	job := activeJobRecord(nil).Job
	stored := []*entity.MatchResult{matchResult(0.7, 4, false)}

	mocks.jobRepo.EXPECT().
		FindByID(ctx, job.ID).
		Return(job, nil)

	mocks.cache.EXPECT().
		GetMatches(ctx, job.ID).
		Return(nil, false, nil)

	mocks.matchRepo.EXPECT().
		FindMatchesByJob(ctx, job.ID, config.DefaultMatchTopN, 0).
		Return(stored, int64(1), nil)

	mocks.cache.EXPECT().
		SetMatches(ctx, job.ID, stored, config.DefaultCacheTTL).
		Return(nil)

	page, err := service.GetMatchesForJob(ctx, job.EmployerID, job.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, stored, page.Results)
}

func TestMatchService_GetMatchesForJob_ForbiddenForNonOwner(t *testing.T) {
	service, mocks := newMatchService(t, defaultTestConfig())

	ctx := context.Background()
	job := activeJobRecord(nil).Job

	mocks.jobRepo.EXPECT().
		FindByID(ctx, job.ID).
		Return(job, nil)

	page, err := service.GetMatchesForJob(ctx, uuid.New(), job.ID, 1, 10)
	assert.Nil(t, page)
	assert.Equal(t, domainerrors.ErrForbidden, err)
}
