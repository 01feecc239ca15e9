package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/webcalc/calculation-service/internal/store"
	"go.uber.org/zap"
)

type storeStatsCollector struct {
	store              store.Store
	totalUsers         *prometheus.Desc
	totalCalculations  *prometheus.Desc
	calculationsByType *prometheus.Desc
}

// NewStoreStatsCollector exposes database totals as gauges. The collector
// queries the store on every scrape.
func NewStoreStatsCollector(s store.Store) prometheus.Collector {
	fqName := func(name string) string {
		return fmt.Sprintf("%s_store_%s", calculationModel, name)
	}

	return &storeStatsCollector{
		store: s,
		totalUsers: prometheus.NewDesc(
			fqName("users_total"),
			"Total number of users.",
			nil,
			prometheus.Labels{},
		),
		totalCalculations: prometheus.NewDesc(
			fqName("calculations_total"),
			"Total number of stored calculations.",
			nil,
			prometheus.Labels{},
		),
		calculationsByType: prometheus.NewDesc(
			fqName("calculations_by_type_total"),
			"Stored calculations by calculation type.",
			[]string{"type"},
			prometheus.Labels{},
		),
	}
}

func (c *storeStatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.totalUsers
	ch <- c.totalCalculations
	ch <- c.calculationsByType
}

// Collect implements Collector.
func (c *storeStatsCollector) Collect(ch chan<- prometheus.Metric) {
	stats, err := c.store.Statistics(context.Background())
	if err != nil {
		zap.S().Named("stats_collector").Errorf("failed to collect store statistics: %s", err)
		return
	}

	ch <- prometheus.MustNewConstMetric(c.totalUsers, prometheus.GaugeValue, float64(stats.TotalUsers))
	ch <- prometheus.MustNewConstMetric(c.totalCalculations, prometheus.GaugeValue, float64(stats.TotalCalculations))

	for calcType, total := range stats.CalculationsByType {
		ch <- prometheus.MustNewConstMetric(c.calculationsByType, prometheus.GaugeValue, float64(total), calcType)
	}
}
