package worker

import (
	"bytes"
	"log/slog"
	"testing"

	"jobmatch/config"
	mockusecase "jobmatch/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))
}

type nopLifecycle struct{}

func (*nopLifecycle) Append(fx.Hook) {}

func TestNewScheduler_DisabledReturnsNil(t *testing.T) {
	cfg := &config.Config{}

	s, err := NewScheduler(SchedulerParams{
		Lc:            nil,
		Cfg:           cfg,
		Logger:        discardLogger(),
		MaintenanceUC: mockusecase.NewMockMaintenanceUsecase(t),
	})

	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestNewScheduler_InvalidSpecIsRejected(t *testing.T) {
	cfg := &config.Config{
		Scheduler: &config.SchedulerConfig{
			Enabled:    true,
			ExpireSpec: "not a cron spec",
		},
	}

	_, err := NewScheduler(SchedulerParams{
		Lc:            &nopLifecycle{},
		Cfg:           cfg,
		Logger:        discardLogger(),
		MaintenanceUC: mockusecase.NewMockMaintenanceUsecase(t),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to register expiry sweep")
}

func TestRunExpireSweep_InvokesMaintenance(t *testing.T) {
	maintenanceUC := mockusecase.NewMockMaintenanceUsecase(t)
	maintenanceUC.EXPECT().
		ExpireDueJobs(mock.Anything).
		Return(3, nil).
		Once()

	s := &Scheduler{
		cron:          cron.New(),
		logger:        discardLogger(),
		maintenanceUC: maintenanceUC,
		expireSpec:    defaultExpireSpec,
	}

	s.runExpireSweep()
}

func TestRunExpireSweep_ErrorIsLoggedNotFatal(t *testing.T) {
	maintenanceUC := mockusecase.NewMockMaintenanceUsecase(t)
	maintenanceUC.EXPECT().
		ExpireDueJobs(mock.Anything).
		Return(0, errors.New("database unavailable")).
		Once()

	s := &Scheduler{
		cron:          cron.New(),
		logger:        discardLogger(),
		maintenanceUC: maintenanceUC,
		expireSpec:    defaultExpireSpec,
	}

	s.runExpireSweep()
}
