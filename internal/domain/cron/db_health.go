package cron

import (
	"context"
	"time"

	"github.com/nums-lab/backend/internal/common"
	"github.com/nums-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

const defaultPingTimeout = 5 * time.Second

// DBHealthCronJob pings the database and publishes the result to the shared
// DBStatus and the database_up gauge.
type DBHealthCronJob struct {
	db       *gorm.DB
	status   *common.DBStatus
	driver   string
	interval time.Duration
	timeout  time.Duration
}

func NewDBHealthCronJob(
	db *gorm.DB,
	status *common.DBStatus,
	driver string,
	interval time.Duration,
) *DBHealthCronJob {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	return &DBHealthCronJob{
		db:       db,
		status:   status,
		driver:   driver,
		interval: interval,
		timeout:  defaultPingTimeout,
	}
}

func (job *DBHealthCronJob) Do(ctx context.Context) {
	connected := job.ping(ctx) == nil
	wasConnected := job.status.IsConnected()
	job.status.SetConnected(connected)

	switch {
	case connected && !wasConnected:
		xcontext.Logger(ctx).Infof("Database connection is available")
	case !connected && wasConnected:
		xcontext.Logger(ctx).Errorf("Database connection is lost")
	}

	value := 0.0
	if connected {
		value = 1
	}

	for key, gauge := range common.PromGauges {
		switch key {
		case common.DatabaseUp:
			gauge.WithLabelValues(job.driver).Set(value)
		}
	}
}

func (job *DBHealthCronJob) ping(ctx context.Context) error {
	sqlDB, err := job.db.DB()
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get database connection pool: %v", err)
		return err
	}

	pingCtx, cancel := context.WithTimeout(ctx, job.timeout)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot ping database: %v", err)
		return err
	}

	return nil
}

func (job *DBHealthCronJob) RunNow() bool {
	return false
}

func (job *DBHealthCronJob) Next() time.Time {
	return time.Now().Add(job.interval)
}
