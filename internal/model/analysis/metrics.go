package analysis

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var histogramRunTime = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: "expense_analyzer",
		Subsystem: "pipeline",
		Name:      "histogram_run_time_seconds",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
	},
)

func observeRun(elapsed time.Duration) {
	histogramRunTime.Observe(elapsed.Seconds())
}
