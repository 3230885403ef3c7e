// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"jobmatch/config"
	deliverycontext "jobmatch/internal/delivery/context"
	"jobmatch/internal/domain/entity"
	domainerrors "jobmatch/internal/domain/errors"
	"jobmatch/internal/domain/repository"
	"jobmatch/internal/domain/service"
	"jobmatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// matchService implements the MatchUsecase interface. It is stateless apart
// from configuration, so a single instance serves concurrent requests.
type matchService struct {
	candidateRepo    repository.CandidateRepository
	jobRepo          repository.JobRepository
	matchRepo        repository.MatchRepository
	subscriptionRepo repository.SubscriptionRepository
	txManager        repository.TransactionManager
	cache            service.MatchCache
	policy           *radiusPolicy
	matching         *config.MatchingConfig
	logger           *slog.Logger
}

// MatchServiceParams holds dependencies for MatchService, injected by Fx.
type MatchServiceParams struct {
	fx.In

	CandidateRepo    repository.CandidateRepository
	JobRepo          repository.JobRepository
	MatchRepo        repository.MatchRepository
	SubscriptionRepo repository.SubscriptionRepository
	TxManager        repository.TransactionManager
	Cache            service.MatchCache
	Config           *config.Config
	Logger           *slog.Logger
}

// NewMatchService is the constructor for matchService. It receives all dependencies as interfaces.
func NewMatchService(params MatchServiceParams) usecase.MatchUsecase {
	matching := params.Config.Matching
	if matching == nil {
		matching = config.DefaultMatching()
	}

	return &matchService{
		candidateRepo:    params.CandidateRepo,
		jobRepo:          params.JobRepo,
		matchRepo:        params.MatchRepo,
		subscriptionRepo: params.SubscriptionRepo,
		txManager:        params.TxManager,
		cache:            params.Cache,
		policy:           newRadiusPolicy(matching),
		matching:         matching,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *matchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SearchCandidates runs the employer-side pipeline: validate, resolve radius,
// fetch, qualify, score, rank, paginate.
func (srv *matchService) SearchCandidates(ctx context.Context, input *usecase.SearchCandidatesInput) (*usecase.MatchPage, error) {
	center := entity.GeoPoint{Latitude: input.Latitude, Longitude: input.Longitude}
	if err := center.Validate(); err != nil {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	pageSize, err := normalizePageSize(input.PageSize, srv.matching.MaxPageSize)
	if err != nil {
		return nil, err
	}

	radiusKm, err := srv.resolveRadiusFor(ctx, input.CallerID, input.RadiusKm)
	if err != nil {
		return nil, err
	}

	records, err := srv.candidateRepo.FindWithinRadius(ctx, center, radiusKm, repository.CandidateFilters{
		SkillIDs:     input.RequiredSkillIDs,
		Availability: input.Availability,
		VerifiedOnly: input.VerifiedOnly,
		MaxSalary:    input.OfferedSalary,
	})
	if err != nil {
		srv.log(ctx).Error("Candidate radius query failed", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "find candidates within radius")
	}

	qualified := qualifyCandidates(records, center, radiusKm, candidateCriteria{
		skillIDs:     input.RequiredSkillIDs,
		availability: input.Availability,
		verifiedOnly: input.VerifiedOnly,
		maxSalary:    input.OfferedSalary,
	})

	sctx := scoringContext{
		effectiveRadiusKm: radiusKm,
		referenceSalary:   srv.matching.ReferenceSalary,
	}
	results := srv.scoreCandidates(ctx, qualified, input.CallerID, input.RequiredSkillIDs, input.RequiredYears, input.OfferedSalary, sctx)

	sortMatches(results)

	pageResults, total, totalPages, err := paginate(results, input.Page, pageSize)
	if err != nil {
		return nil, err
	}

	return &usecase.MatchPage{
		Results:          pageResults,
		SearchRadiusUsed: radiusKm,
		Page:             input.Page,
		PageSize:         pageSize,
		Total:            total,
		TotalPages:       totalPages,
	}, nil
}

// SearchJobs runs the seeker-side pipeline. Scoring attributes come from the
// caller's candidate profile, so the ranking reflects their real skills and
// expectations rather than ad hoc query parameters.
func (srv *matchService) SearchJobs(ctx context.Context, input *usecase.SearchJobsInput) (*usecase.MatchPage, error) {
	center := entity.GeoPoint{Latitude: input.Latitude, Longitude: input.Longitude}
	if err := center.Validate(); err != nil {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	pageSize, err := normalizePageSize(input.PageSize, srv.matching.MaxPageSize)
	if err != nil {
		return nil, err
	}

	candidate, err := srv.candidateRepo.FindByID(ctx, input.CallerID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return nil, domainerrors.ErrCandidateNotFound
		}
		srv.log(ctx).Error("Candidate lookup failed", slog.Any("error", err), slog.Any("candidate_id", input.CallerID))

		return nil, domainerrors.NewDatabaseExecuteError(err, "find candidate by id")
	}

	radiusKm, err := srv.policy.resolve(input.RadiusKm, candidate.Tier)
	if err != nil {
		return nil, err
	}

	records, err := srv.jobRepo.FindWithinRadius(ctx, center, radiusKm, repository.JobFilters{
		JobType:   input.JobType,
		MinSalary: input.MinSalary,
		Keyword:   input.Keyword,
		SkillIDs:  candidate.SkillIDs(),
	})
	if err != nil {
		srv.log(ctx).Error("Job radius query failed", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "find jobs within radius")
	}

	qualified := qualifyJobs(records, center, radiusKm, jobCriteria{
		jobType:   input.JobType,
		minSalary: input.MinSalary,
		keyword:   input.Keyword,
		skillIDs:  candidate.SkillIDs(),
	})

	sctx := scoringContext{
		effectiveRadiusKm: radiusKm,
		referenceSalary:   srv.matching.ReferenceSalary,
	}
	results := srv.scoreJobs(ctx, qualified, candidate, sctx)

	sortMatches(results)

	pageResults, total, totalPages, err := paginate(results, input.Page, pageSize)
	if err != nil {
		return nil, err
	}

	return &usecase.MatchPage{
		Results:          pageResults,
		SearchRadiusUsed: radiusKm,
		Page:             input.Page,
		PageSize:         pageSize,
		Total:            total,
		TotalPages:       totalPages,
	}, nil
}

// GenerateMatchesForJob recomputes the top-N ranking for a posting and swaps
// it into the match store atomically. It is the async consumer of job.created
// and job.updated events and must stay idempotent under redelivery.
func (srv *matchService) GenerateMatchesForJob(ctx context.Context, jobID uuid.UUID) error {
	job, err := srv.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return domainerrors.ErrJobNotFound
		}
		srv.log(ctx).Error("Job lookup failed", slog.Any("error", err), slog.Any("job_id", jobID))

		return domainerrors.NewDatabaseExecuteError(err, "find job by id")
	}

	if !job.IsMatchable() {
		return domainerrors.ErrJobNotMatchable
	}

	if job.Location == nil {
		// Postings without coordinates never enter geo matching. Not a failure,
		// but any stale ranking from before the location was removed must go.
		srv.log(ctx).Warn("Skipping match generation for job without location", slog.Any("job_id", jobID))

		return srv.clearJobMatches(ctx, jobID)
	}

	tier, err := srv.subscriptionRepo.TierOf(ctx, job.EmployerID)
	if err != nil {
		srv.log(ctx).Error("Subscription lookup failed", slog.Any("error", err), slog.Any("employer_id", job.EmployerID))

		return domainerrors.NewDatabaseExecuteError(err, "resolve employer subscription tier")
	}
	radiusKm := srv.policy.capFor(tier)

	records, err := srv.candidateRepo.FindWithinRadius(ctx, *job.Location, radiusKm, repository.CandidateFilters{
		SkillIDs:  job.RequiredSkillIDs,
		MaxSalary: job.OfferedSalary(),
	})
	if err != nil {
		srv.log(ctx).Error("Candidate radius query failed", slog.Any("error", err), slog.Any("job_id", jobID))

		return domainerrors.NewDatabaseExecuteError(err, "find candidates within radius")
	}

	qualified := qualifyCandidates(records, *job.Location, radiusKm, candidateCriteria{
		skillIDs:  job.RequiredSkillIDs,
		maxSalary: job.OfferedSalary(),
	})

	sctx := scoringContext{
		effectiveRadiusKm: radiusKm,
		referenceSalary:   srv.matching.ReferenceSalary,
	}
	results := srv.scoreCandidates(ctx, qualified, jobID, job.RequiredSkillIDs, job.RequiredYears, job.OfferedSalary(), sctx)

	sortMatches(results)
	if len(results) > srv.matching.MatchTopN {
		results = results[:srv.matching.MatchTopN]
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		matchRepo := repoFactory.MatchRepo()

		if err := matchRepo.DeleteMatchesByJob(ctx, jobID); err != nil {
			return errors.Wrap(err, "delete stale matches")
		}

		if len(results) == 0 {
			return nil
		}

		return errors.Wrap(matchRepo.UpsertMatches(ctx, jobID, results), "upsert matches")
	})
	if err != nil {
		srv.log(ctx).Error("Match persistence failed", slog.Any("error", err), slog.Any("job_id", jobID))

		return domainerrors.NewDatabaseExecuteError(err, "persist match results")
	}

	if err := srv.cache.InvalidateJob(ctx, jobID); err != nil {
		// The cache is a read-through copy with a TTL backstop; a failed
		// invalidation is worth a log line, not a retry of the whole event.
		srv.log(ctx).Warn("Match cache invalidation failed", slog.Any("error", err), slog.Any("job_id", jobID))
	}

	srv.log(ctx).Info("Generated matches for job",
		slog.Any("job_id", jobID),
		slog.Int("candidates_considered", len(qualified)),
		slog.Int("matches_stored", len(results)),
		slog.Float64("radius_km", radiusKm))

	return nil
}

// GetMatchesForJob serves a page of the persisted ranking, cache-first. The
// full top-N list is small, so the cache holds it whole and pagination happens
// in memory.
func (srv *matchService) GetMatchesForJob(ctx context.Context, callerID, jobID uuid.UUID, page, pageSize int) (*usecase.MatchPage, error) {
	pageSize, err := normalizePageSize(pageSize, srv.matching.MaxPageSize)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		return nil, domainerrors.ErrInvalidPagination
	}

	job, err := srv.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, domainerrors.ErrJobNotFound
		}
		srv.log(ctx).Error("Job lookup failed", slog.Any("error", err), slog.Any("job_id", jobID))

		return nil, domainerrors.NewDatabaseExecuteError(err, "find job by id")
	}

	if job.EmployerID != callerID {
		return nil, domainerrors.ErrForbidden
	}

	results, hit, err := srv.cache.GetMatches(ctx, jobID)
	if err != nil {
		srv.log(ctx).Warn("Match cache read failed", slog.Any("error", err), slog.Any("job_id", jobID))
		hit = false
	}

	if !hit {
		stored, _, err := srv.matchRepo.FindMatchesByJob(ctx, jobID, srv.matching.MatchTopN, 0)
		if err != nil {
			srv.log(ctx).Error("Match retrieval failed", slog.Any("error", err), slog.Any("job_id", jobID))

			return nil, domainerrors.NewDatabaseExecuteError(err, "find matches by job")
		}
		results = stored

		if err := srv.cache.SetMatches(ctx, jobID, results, srv.matching.CacheTTL); err != nil {
			srv.log(ctx).Warn("Match cache write failed", slog.Any("error", err), slog.Any("job_id", jobID))
		}
	}

	pageResults, total, totalPages, err := paginate(results, page, pageSize)
	if err != nil {
		return nil, err
	}

	return &usecase.MatchPage{
		Results:    pageResults,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// clearJobMatches removes the stored ranking and cache entry for a posting.
func (srv *matchService) clearJobMatches(ctx context.Context, jobID uuid.UUID) error {
	if err := srv.matchRepo.DeleteMatchesByJob(ctx, jobID); err != nil {
		srv.log(ctx).Error("Match deletion failed", slog.Any("error", err), slog.Any("job_id", jobID))

		return domainerrors.NewDatabaseExecuteError(err, "delete matches by job")
	}

	if err := srv.cache.InvalidateJob(ctx, jobID); err != nil {
		srv.log(ctx).Warn("Match cache invalidation failed", slog.Any("error", err), slog.Any("job_id", jobID))
	}

	return nil
}

// resolveRadiusFor looks up the caller's tier and applies the radius policy.
func (srv *matchService) resolveRadiusFor(ctx context.Context, callerID uuid.UUID, requestedKm *float64) (float64, error) {
	tier, err := srv.subscriptionRepo.TierOf(ctx, callerID)
	if err != nil {
		srv.log(ctx).Error("Subscription lookup failed", slog.Any("error", err), slog.Any("user_id", callerID))

		return 0, domainerrors.NewDatabaseExecuteError(err, "resolve subscription tier")
	}

	return srv.policy.resolve(requestedKm, tier)
}

type scoredResultWithIndex struct {
	index  int
	result *entity.MatchResult
}

// scoreCandidates scores qualified candidate records over a bounded worker
// pool. A record that fails scoring is logged and skipped; one corrupt row
// never sinks the batch. Workers write indexed results, so the output is
// compacted and then deterministically re-sorted by the caller.
func (srv *matchService) scoreCandidates(
	ctx context.Context,
	records []*repository.CandidateRecord,
	subjectID uuid.UUID,
	requiredSkillIDs []uuid.UUID,
	requiredYears *float64,
	offeredSalary *float64,
	sctx scoringContext,
) []*entity.MatchResult {
	return srv.scoreParallel(ctx, len(records), func(idx int) (*entity.MatchResult, error) {
		return scoreCandidateForJob(records[idx], subjectID, requiredSkillIDs, requiredYears, offeredSalary, sctx)
	})
}

// scoreJobs scores qualified job records against the candidate's profile over
// the same bounded worker pool.
func (srv *matchService) scoreJobs(
	ctx context.Context,
	records []*repository.JobRecord,
	candidate *entity.Candidate,
	sctx scoringContext,
) []*entity.MatchResult {
	return srv.scoreParallel(ctx, len(records), func(idx int) (*entity.MatchResult, error) {
		return scoreJobForCandidate(records[idx], candidate, sctx)
	})
}

func (srv *matchService) scoreParallel(ctx context.Context, count int, scoreOne func(idx int) (*entity.MatchResult, error)) []*entity.MatchResult {
	if count == 0 {
		return []*entity.MatchResult{}
	}

	slots := make([]*entity.MatchResult, count)

	workCh := make(chan int, count)
	resultCh := make(chan scoredResultWithIndex, count)

	workerGroup := srv.spawnScoreWorkers(ctx, srv.workerCount(count), workCh, resultCh, scoreOne)
	go srv.dispatchScoreWork(ctx, workCh, count)
	collectScoreResults(resultCh, slots, workerGroup)

	results := make([]*entity.MatchResult, 0, count)
	for _, result := range slots {
		if result != nil {
			results = append(results, result)
		}
	}

	return results
}

func (srv *matchService) workerCount(recordCount int) int {
	workers := srv.matching.ScoreWorkers
	if workers <= 0 {
		workers = config.DefaultScoreWorkers
	}
	if recordCount < workers {
		return recordCount
	}

	return workers
}

func (srv *matchService) spawnScoreWorkers(
	ctx context.Context,
	workerCount int,
	workCh <-chan int,
	resultCh chan<- scoredResultWithIndex,
	scoreOne func(idx int) (*entity.MatchResult, error),
) *sync.WaitGroup {
	var workerGroup sync.WaitGroup

	for i := 0; i < workerCount; i++ {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			for idx := range workCh {
				if ctx.Err() != nil {
					return
				}

				result, err := scoreOne(idx)
				if err != nil {
					srv.log(ctx).Warn("Skipping record that failed scoring", slog.Any("error", err), slog.Int("index", idx))

					continue
				}

				resultCh <- scoredResultWithIndex{index: idx, result: result}
			}
		}()
	}

	return &workerGroup
}

func (srv *matchService) dispatchScoreWork(ctx context.Context, workCh chan<- int, count int) {
	defer close(workCh)

	for i := 0; i < count; i++ {
		if ctx.Err() != nil {
			return
		}

		workCh <- i
	}
}

func collectScoreResults(resultCh chan scoredResultWithIndex, slots []*entity.MatchResult, workerGroup *sync.WaitGroup) {
	go func() {
		workerGroup.Wait()
		close(resultCh)
	}()

	for res := range resultCh {
		slots[res.index] = res.result
	}
}
