package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"warga-portal-svc/internal/repository"
	"warga-portal-svc/pkg/logger"
)

// SheetScheduler periodically refreshes the warga sheet cache so portal
// reads rarely hit the Sheets API cold
type SheetScheduler struct {
	wargaRepo      repository.WargaRepository
	logger         *logger.Logger
	cron           *cron.Cron
	cronExpression string
}

// NewSheetScheduler creates a new sheet scheduler
func NewSheetScheduler(wargaRepo repository.WargaRepository, logger *logger.Logger, cronExpression string) *SheetScheduler {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &SheetScheduler{
		wargaRepo:      wargaRepo,
		logger:         logger,
		cron:           c,
		cronExpression: cronExpression,
	}
}

// Start initializes and starts all scheduled jobs
func (s *SheetScheduler) Start() error {
	s.logger.Info("Starting sheet scheduler...")

	// Cron format: "seconds minutes hours day-of-month month day-of-week"
	s.logger.WithField("cron_expression", s.cronExpression).Info("Scheduling sheet warm job")
	_, err := s.cron.AddFunc(s.cronExpression, s.warmWargaCache)
	if err != nil {
		return fmt.Errorf("failed to schedule sheet warm job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Sheet scheduler started successfully")

	return nil
}

// Stop gracefully stops the scheduler
func (s *SheetScheduler) Stop() {
	s.logger.Info("Stopping sheet scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Sheet scheduler stopped successfully")
}

// warmWargaCache is the scheduled job that re-reads the warga table
func (s *SheetScheduler) warmWargaCache() {
	runID := uuid.New().String()

	s.logger.WithField("run_id", runID).Info("Starting scheduled sheet cache warm")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.wargaRepo.WarmCache(ctx)
	if err != nil {
		s.logger.WithField("run_id", runID).WithField("error", err).Error("Failed to warm warga sheet cache")
		return
	}

	s.logger.WithFields(map[string]interface{}{
		"run_id": runID,
		"rows":   count,
	}).Info("Warga sheet cache warmed")
}
