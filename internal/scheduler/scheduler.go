package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/oguzhantanitmis/finance.ogzie.com/internal/cache"
	"github.com/oguzhantanitmis/finance.ogzie.com/internal/config"
	"github.com/oguzhantanitmis/finance.ogzie.com/internal/service"
)

// Scheduler runs the recurring jobs: the nightly statement run and the
// hourly market rates refresh. Cron expressions include a seconds field.
type Scheduler struct {
	cron  *cron.Cron
	svc   *service.Service
	rates *cache.RatesCache
	cfg   *config.Config
	log   *logrus.Logger
}

// NewScheduler creates a scheduler with its jobs not yet registered
func NewScheduler(svc *service.Service, rates *cache.RatesCache, cfg *config.Config, log *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:  cron.New(cron.WithSeconds()),
		svc:   svc,
		rates: rates,
		cfg:   cfg,
		log:   log,
	}
}

// Start registers the jobs and starts the cron loop
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.StatementCron, s.statementRun); err != nil {
		return fmt.Errorf("invalid statement cron %q: %w", s.cfg.StatementCron, err)
	}
	if _, err := s.cron.AddFunc(s.cfg.RatesCron, s.ratesRun); err != nil {
		return fmt.Errorf("invalid rates cron %q: %w", s.cfg.RatesCron, err)
	}
	s.cron.Start()
	s.log.Infof("Scheduler started: statements %q, rates %q", s.cfg.StatementCron, s.cfg.RatesCron)
	return nil
}

// Stop halts the cron loop; the returned context is done when running
// jobs have finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// statementRun is the nightly pass: bill cards whose cut-off day is
// today, re-evaluate open statements against the clock, and refresh
// the insight feed.
func (s *Scheduler) statementRun() {
	now := time.Now()

	generated, err := s.svc.GenerateDueStatements(now)
	if err != nil {
		s.log.Errorf("Nightly statement generation failed: %v", err)
	} else if generated > 0 {
		s.log.Infof("Nightly run generated %d statements", generated)
	}

	changed, err := s.svc.SweepStatementStatuses(now)
	if err != nil {
		s.log.Errorf("Statement status sweep failed: %v", err)
	} else if changed > 0 {
		s.log.Infof("Statement status sweep moved %d statements", changed)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if _, err := s.svc.RefreshInsights(ctx); err != nil {
		s.log.Errorf("Insight refresh failed: %v", err)
	}
}

func (s *Scheduler) ratesRun() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.rates.Refresh(ctx); err != nil {
		s.log.Errorf("Rates refresh failed: %v", err)
	}
}
