// Package metrics holds the prometheus collectors of the backend.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Export results
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	Exports = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "finance",
		Name:      "exports_total",
		Help:      "Number of generated exports by format and result.",
	}, []string{"format", "result"})

	ReportDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "finance",
		Name:      "report_duration_seconds",
		Help:      "Time taken to compute a report.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"report"})
)

// ObserveReport records the time since start for the report.
//
// Use it with defer:
//
//	defer metrics.ObserveReport("monthly_summary", time.Now())
func ObserveReport(report string, start time.Time) {
	ReportDuration.WithLabelValues(report).Observe(time.Since(start).Seconds())
}

// CountExport increments the export counter for the format.
func CountExport(format string, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}

	Exports.WithLabelValues(format, result).Inc()
}
