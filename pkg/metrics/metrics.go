package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	calculationModel = "calculation_model"

	calculationsTotal        = "calculations_total"
	calculationFailuresTotal = "calculation_failures_total"

	// Labels
	calculationTypeLabel = "type"
	failureReasonLabel   = "reason"
)

var calculationsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: calculationModel,
		Name:      calculationsTotal,
		Help:      "number of calculations performed, by calculation type",
	},
	[]string{calculationTypeLabel},
)

var calculationFailuresTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: calculationModel,
		Name:      calculationFailuresTotal,
		Help:      "number of calculations rejected, by failure reason",
	},
	[]string{failureReasonLabel},
)

func IncreaseCalculationsTotalMetric(calculationType string) {
	calculationsTotalMetric.With(prometheus.Labels{
		calculationTypeLabel: calculationType,
	}).Inc()
}

func IncreaseCalculationFailuresTotalMetric(reason string) {
	calculationFailuresTotalMetric.With(prometheus.Labels{
		failureReasonLabel: reason,
	}).Inc()
}

type PrometheusMetricsHandler struct{}

func NewPrometheusMetricsHandler() *PrometheusMetricsHandler {
	return &PrometheusMetricsHandler{}
}

func (h *PrometheusMetricsHandler) Handler() http.Handler {
	return promhttp.Handler()
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(calculationsTotalMetric)
	prometheus.MustRegister(calculationFailuresTotalMetric)
}
