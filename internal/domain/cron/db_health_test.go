package cron

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/nums-lab/backend/internal/common"
	"github.com/nums-lab/backend/pkg/testutil"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func Test_DBHealthCronJob(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer sqlDB.Close()

	// gorm pings once while opening.
	mock.ExpectPing()
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	ctx := testutil.MockContext()
	status := common.NewDBStatus()
	job := NewDBHealthCronJob(db, status, "postgres", time.Minute)
	gauge := common.PromGauges[common.DatabaseUp].WithLabelValues("postgres")

	mock.ExpectPing()
	job.Do(ctx)
	require.True(t, status.IsConnected())
	require.Equal(t, 1.0, promtestutil.ToFloat64(gauge))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	job.Do(ctx)
	require.False(t, status.IsConnected())
	require.Equal(t, 0.0, promtestutil.ToFloat64(gauge))

	mock.ExpectPing()
	job.Do(ctx)
	require.True(t, status.IsConnected())

	require.NoError(t, mock.ExpectationsWereMet())
	require.False(t, job.RunNow())
	require.WithinDuration(t, time.Now().Add(time.Minute), job.Next(), time.Second)
}
