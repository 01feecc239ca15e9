package v1

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	api "github.com/webcalc/calculation-service/api/v1"
	"github.com/webcalc/calculation-service/internal/calculation"
)

// Operate runs a single binary operation without persisting anything. The
// operation type comes from the URL, the two operands from the body.
func (s *ServiceHandler) Operate(w http.ResponseWriter, r *http.Request) {
	calcType, err := calculation.ParseType(chi.URLParam(r, "type"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var body api.OperationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.A == nil || body.B == nil {
		respondError(w, r, http.StatusBadRequest, "operands a and b are required")
		return
	}

	result, err := calculation.Compute(calcType, []float64{*body.A, *body.B})
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	respond(w, r, http.StatusOK, api.OperationResult{Result: result})
}
