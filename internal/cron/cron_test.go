package cron

import (
	"context"
	"testing"
	"time"

	"socialelections/config"
	"socialelections/internal/database/client"
	fluentdRepo "socialelections/internal/database/fluentd/repository"
	"socialelections/internal/database/memory"
	"socialelections/internal/service"
	"socialelections/internal/telemetry"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCron(t *testing.T, spec string) *Cron {
	t.Helper()
	conf := &config.Configuration{}
	conf.WorksCouncil.IntegrityCron = spec
	trace := &telemetry.Trace{}
	metric := &telemetry.Metric{}
	logger := zap.NewNop()
	memStore := memory.NewStore()
	logRepo := fluentdRepo.NewLogRepository(conf, &client.NoopClient{})
	projection := service.NewProjectionService(trace, memStore)
	ledger := service.NewWorksCouncilService(conf, trace, metric, logger, memStore, memory.NewLocker(), logRepo, projection)
	return NewCron(logger, conf, service.NewIntegrityService(trace, metric, logger, memStore, ledger))
}

func TestRunRejectsBadSchedule(t *testing.T) {
	c := newTestCron(t, "every minute")
	require.Error(t, c.Run())
}

func TestRunAndStop(t *testing.T) {
	c := newTestCron(t, "*/1 * * * * *")
	require.NoError(t, c.Run())
	require.Len(t, c.server.Entries(), 1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, c.Stop(ctx))
}

func TestRunWithoutScheduleRegistersNothing(t *testing.T) {
	c := newTestCron(t, "")
	require.NoError(t, c.Run())
	require.Empty(t, c.server.Entries())
	c.integritySweep()
	require.NoError(t, c.Stop(context.Background()))
}
