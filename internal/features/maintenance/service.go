package maintenance

import (
	"context"
	"database/sql"
	"fmt"

	"stitchmes/internal/config"
	"stitchmes/internal/database"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// logPurgeSchedule runs nightly after the second shift has clocked out
const logPurgeSchedule = "30 3 * * *"

type MaintenanceService interface {
	Start(ctx context.Context) error
	Stop() error
	PurgeOldLogs(ctx context.Context) (int64, error)
}

type MaintenanceServiceImpl struct {
	db        *sql.DB
	cfg       *config.Config
	log       *zap.Logger
	scheduler *cron.Cron
}

func NewMaintenanceService(pg *database.PostgresDB, cfg *config.Config, log *zap.Logger) MaintenanceService {
	return &MaintenanceServiceImpl{
		db:  pg.DB,
		cfg: cfg,
		log: log,
	}
}

// Start registers the nightly jobs and launches the scheduler
func (s *MaintenanceServiceImpl) Start(ctx context.Context) error {
	s.scheduler = cron.New()

	_, err := s.scheduler.AddFunc(logPurgeSchedule, func() {
		removed, err := s.PurgeOldLogs(context.Background())
		if err != nil {
			s.log.Error("log purge failed", zap.Error(err))
			return
		}
		s.log.Info("log purge complete", zap.Int64("removed", removed))
	})
	if err != nil {
		return fmt.Errorf("failed to schedule log purge: %w", err)
	}

	s.scheduler.Start()
	return nil
}

// Stop halts the scheduler, waiting for a running job to finish
func (s *MaintenanceServiceImpl) Stop() error {
	if s.scheduler != nil {
		<-s.scheduler.Stop().Done()
	}
	return nil
}

// PurgeOldLogs deletes app_logs rows older than the retention window
func (s *MaintenanceServiceImpl) PurgeOldLogs(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM app_logs WHERE created_at < NOW() - ($1 || ' days')::interval`,
		s.cfg.LogRetention,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
