package common

import "github.com/prometheus/client_golang/prometheus"

const (
	HTTPRequestTotal           = "http_requests_total"
	HTTPRequestDurationSeconds = "http_request_duration_seconds"
	GameIngestedTotal          = "game_ingested_total"
	DatabaseUp                 = "database_up"
	LatestGameAgeDays          = "latest_game_age_days"
)

var (
	PromGauges = map[string]*prometheus.GaugeVec{
		DatabaseUp: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: DatabaseUp,
			Help: "Whether the last database probe succeeded",
		}, []string{"driver"}),
		LatestGameAgeDays: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: LatestGameAgeDays,
			Help: "Days elapsed since the draw date of the latest stored game",
		}, []string{}),
	}

	PromCounters = map[string]*prometheus.CounterVec{
		HTTPRequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: HTTPRequestTotal,
			Help: "Count of all HTTP requests",
		}, []string{"method", "path", "status_code"}),
		GameIngestedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: GameIngestedTotal,
			Help: "Count of ingested game records by outcome",
		}, []string{"status"}),
	}

	PromHistograms = map[string]*prometheus.HistogramVec{
		HTTPRequestDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: HTTPRequestDurationSeconds,
			Help: "Duration of all HTTP requests",
		}, []string{"method", "path", "status_code"}),
	}
)
