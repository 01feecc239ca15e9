package model

// Stats aggregates database totals for the metrics collector and the
// statistics endpoint.
type Stats struct {
	TotalUsers         int64
	TotalCalculations  int64
	CalculationsByType map[string]int64
}
