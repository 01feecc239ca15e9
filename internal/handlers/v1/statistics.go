package v1

import (
	"net/http"

	"github.com/webcalc/calculation-service/internal/handlers/v1/mappers"
)

// GetStatistics returns totals over the stored users and calculations.
func (s *ServiceHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := s.calcSrv.Statistics(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, mappers.StatsToApi(stats))
}
