package cron

import (
	"context"
	"time"

	"socialelections/config"
	"socialelections/internal/service"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron)

// 單次 sweep 的上限，避免卡住下一輪
const sweepTimeout = 5 * time.Minute

type Cron struct {
	logger    *zap.Logger
	conf      *config.Configuration
	integrity *service.IntegrityService
	server    *cron.Cron
}

// NewCron .
func NewCron(logger *zap.Logger, conf *config.Configuration, integrity *service.IntegrityService) *Cron {
	server := cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger), cron.Recover(cron.DiscardLogger)),
	)

	return &Cron{
		logger:    logger,
		conf:      conf,
		integrity: integrity,
		server:    server,
	}
}

func (c *Cron) Run() error {
	if spec := c.conf.WorksCouncil.IntegrityCron; spec != "" {
		if _, err := c.server.AddFunc(spec, c.integritySweep); err != nil {
			return err
		}
		c.logger.Info("integrity sweep scheduled",
			zap.String("cron", spec),
			zap.Bool("repair", c.conf.WorksCouncil.IntegrityRepair),
		)
	}

	c.server.Start()
	return nil
}

func (c *Cron) Stop(ctx context.Context) error {
	// 等正在跑的 job 結束，或 ctx 到期
	select {
	case <-c.server.Stop().Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

func (c *Cron) integritySweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	report, err := c.integrity.Check(ctx, c.conf.WorksCouncil.IntegrityRepair)
	if err != nil {
		c.logger.Error("integrity sweep failed", zap.Error(err))
		return
	}
	if len(report.Violations) > 0 {
		c.logger.Warn("integrity sweep found violations",
			zap.Int("scopes", report.Scopes),
			zap.Int("violations", len(report.Violations)),
			zap.Int("repaired", report.Repaired),
		)
		return
	}
	c.logger.Debug("integrity sweep clean", zap.Int("scopes", report.Scopes))
}
