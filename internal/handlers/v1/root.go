package v1

import (
	"net/http"
	"strings"

	api "github.com/webcalc/calculation-service/api/v1"
)

// Root serves a small descriptor pointing clients at the API base.
func (s *ServiceHandler) Root(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, api.ServiceInfo{
		Service: "calculation-api",
		ApiUrl:  strings.TrimSuffix(s.baseUrl, "/") + "/api/v1",
	})
}
