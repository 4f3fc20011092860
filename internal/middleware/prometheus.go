package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/nums-lab/backend/internal/common"
	"github.com/nums-lab/backend/pkg/router"
	"github.com/nums-lab/backend/pkg/xcontext"
)

func WithStartTime() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		return xcontext.WithStartTime(ctx, time.Now()), nil
	}
}

func Prometheus() router.CloserFunc {
	return func(ctx context.Context) {
		req := xcontext.HTTPRequest(ctx)
		status := strconv.Itoa(router.Status(ctx))

		// Matched patterns keep the label cardinality bounded.
		path := req.Pattern
		if path == "" {
			path = req.URL.Path
		}

		for key, counter := range common.PromCounters {
			switch key {
			case common.HTTPRequestTotal:
				counter.WithLabelValues(req.Method, path, status).Inc()
			}
		}

		startTime := xcontext.StartTime(ctx)
		if startTime.IsZero() {
			return
		}

		for key, histogram := range common.PromHistograms {
			switch key {
			case common.HTTPRequestDurationSeconds:
				histogram.WithLabelValues(req.Method, path, status).
					Observe(time.Since(startTime).Seconds())
			}
		}
	}
}
