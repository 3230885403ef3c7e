package worker

import (
	"context"
	"log/slog"

	"jobmatch/config"
	"jobmatch/internal/usecase"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const defaultExpireSpec = "*/5 * * * *"

// Scheduler runs periodic maintenance jobs in the worker process.
type Scheduler struct {
	cron          *cron.Cron
	logger        *slog.Logger
	maintenanceUC usecase.MaintenanceUsecase
	expireSpec    string
}

// SchedulerParams holds dependencies for the Scheduler
type SchedulerParams struct {
	fx.In

	Lc            fx.Lifecycle
	Cfg           *config.Config
	Logger        *slog.Logger
	MaintenanceUC usecase.MaintenanceUsecase
}

// NewScheduler creates the cron scheduler for the job expiry sweep. It returns
// nil without error when the scheduler is disabled in config.
func NewScheduler(params SchedulerParams) (*Scheduler, error) {
	if params.Cfg.Scheduler == nil || !params.Cfg.Scheduler.Enabled {
		params.Logger.Info("[Scheduler] Disabled by configuration")

		return nil, nil
	}

	expireSpec := params.Cfg.Scheduler.ExpireSpec
	if expireSpec == "" {
		expireSpec = defaultExpireSpec
	}

	s := &Scheduler{
		cron:          cron.New(cron.WithLogger(cron.DefaultLogger)),
		logger:        params.Logger,
		maintenanceUC: params.MaintenanceUC,
		expireSpec:    expireSpec,
	}

	if _, err := s.cron.AddFunc(expireSpec, s.runExpireSweep); err != nil {
		return nil, errors.Wrap(err, "failed to register expiry sweep")
	}

	params.Lc.Append(fx.Hook{
		OnStart: s.start,
		OnStop:  s.stop,
	})

	return s, nil
}

func (s *Scheduler) start(ctx context.Context) error {
	s.logger.Info("[Scheduler] Starting", slog.String("expireSpec", s.expireSpec))
	s.cron.Start()

	// Run once immediately so postings past their deadline are not left
	// active until the first tick.
	go s.runExpireSweep()

	return nil
}

func (s *Scheduler) stop(ctx context.Context) error {
	s.logger.Info("[Scheduler] Stopping")
	stopCtx := s.cron.Stop()

	select {
	case <-stopCtx.Done():
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

// runExpireSweep expires postings past their application deadline.
func (s *Scheduler) runExpireSweep() {
	ctx := context.Background()

	expired, err := s.maintenanceUC.ExpireDueJobs(ctx)
	if err != nil {
		s.logger.Error("[Scheduler] Job expiry sweep failed", slog.Any("error", err))

		return
	}

	if expired > 0 {
		s.logger.Info("[Scheduler] Job expiry sweep completed", slog.Int("expired", expired))
	}
}
