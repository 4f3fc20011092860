package cron

import (
	"context"
	"errors"
	"time"

	"github.com/nums-lab/backend/internal/common"
	"github.com/nums-lab/backend/internal/domain/gameutil"
	"github.com/nums-lab/backend/internal/repository"
	"github.com/nums-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// GameFreshnessCronJob exports the age of the latest stored draw and warns
// when it exceeds the recent threshold.
type GameFreshnessCronJob struct {
	gameRepo repository.GameRepository
	interval time.Duration
	now      func() time.Time
}

func NewGameFreshnessCronJob(gameRepo repository.GameRepository, interval time.Duration) *GameFreshnessCronJob {
	if interval <= 0 {
		interval = time.Hour
	}

	return &GameFreshnessCronJob{
		gameRepo: gameRepo,
		interval: interval,
		now:      time.Now,
	}
}

func (job *GameFreshnessCronJob) Do(ctx context.Context) {
	game, err := job.gameRepo.GetLatest(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Warnf("No game has been ingested yet")
			return
		}

		xcontext.Logger(ctx).Errorf("Cannot get latest game: %v", err)
		return
	}

	days := gameutil.DaysElapsed(game.DrawDate, job.now())
	for key, gauge := range common.PromGauges {
		switch key {
		case common.LatestGameAgeDays:
			gauge.WithLabelValues().Set(float64(days))
		}
	}

	if threshold := xcontext.Configs(ctx).Game.RecentThresholdDays; days > threshold {
		xcontext.Logger(ctx).Warnf("Latest game of round %d is %d days old (threshold %d)",
			game.Round, days, threshold)
	}
}

func (job *GameFreshnessCronJob) RunNow() bool {
	return true
}

func (job *GameFreshnessCronJob) Next() time.Time {
	return time.Now().Add(job.interval)
}
