package cron

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nums-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

type countJob struct {
	count atomic.Int32
}

func (job *countJob) Do(context.Context) { job.count.Add(1) }
func (job *countJob) RunNow() bool      { return true }
func (job *countJob) Next() time.Time   { return time.Now().Add(10 * time.Millisecond) }

func Test_CronJobManager(t *testing.T) {
	ctx := testutil.MockContext()
	job := &countJob{}

	manager := NewCronJobManager()
	manager.Register(job)

	stopped := make(chan struct{})
	go func() {
		manager.Start(ctx)
		close(stopped)
	}()

	require.Eventually(t, func() bool { return job.count.Load() >= 3 }, time.Second, 5*time.Millisecond)

	manager.Cancel(ctx)
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("manager did not stop")
	}

	count := job.count.Load()
	time.Sleep(50 * time.Millisecond)
	require.LessOrEqual(t, job.count.Load(), count+1)
}

func Test_CronJobManager_CancelBeforeStart(t *testing.T) {
	ctx := testutil.MockContext()
	manager := NewCronJobManager()
	manager.Register(&countJob{})
	manager.Cancel(ctx)

	// Nothing is left to wait for.
	manager.Start(ctx)
}
