package v1

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	api "github.com/webcalc/calculation-service/api/v1"
	"github.com/webcalc/calculation-service/internal/calculation"
	"github.com/webcalc/calculation-service/internal/handlers/v1/mappers"
	"github.com/webcalc/calculation-service/internal/service"
	servicemappers "github.com/webcalc/calculation-service/internal/service/mappers"
)

func (s *ServiceHandler) ListCalculations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := service.NewCalculationFilter()

	if userID := query.Get("user_id"); userID != "" {
		if _, err := uuid.Parse(userID); err != nil {
			respondError(w, r, http.StatusBadRequest, "invalid user_id")
			return
		}
		filter = filter.WithUserID(userID)
	}
	if calcType := query.Get("type"); calcType != "" {
		parsed, err := calculation.ParseType(calcType)
		if err != nil {
			respondError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		filter = filter.WithType(string(parsed))
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			respondError(w, r, http.StatusBadRequest, "invalid limit")
			return
		}
		filter = filter.WithLimit(limit)
	}
	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			respondError(w, r, http.StatusBadRequest, "invalid offset")
			return
		}
		filter = filter.WithOffset(offset)
	}

	calculations, err := s.calcSrv.ListCalculations(r.Context(), filter)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, mappers.CalculationListToApi(calculations))
}

func (s *ServiceHandler) CreateCalculation(w http.ResponseWriter, r *http.Request) {
	var body api.CalculationCreate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.calcVal.Struct(body); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	// ParseType also normalizes the case of the stored type.
	calcType, err := calculation.ParseType(body.Type)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	calc, err := s.calcSrv.CreateCalculation(r.Context(), servicemappers.CalculationCreateForm{
		UserID: body.UserId,
		Type:   calcType,
		Inputs: body.Inputs,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respond(w, r, http.StatusCreated, mappers.CalculationToApi(*calc))
}

func (s *ServiceHandler) GetCalculation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid calculation id")
		return
	}

	calc, err := s.calcSrv.GetCalculation(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, mappers.CalculationToApi(*calc))
}

func (s *ServiceHandler) UpdateCalculation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid calculation id")
		return
	}

	var body api.CalculationUpdate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.calcVal.Struct(body); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	calc, err := s.calcSrv.UpdateCalculation(r.Context(), servicemappers.CalculationUpdateForm{
		ID:     id,
		Inputs: body.Inputs,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, mappers.CalculationToApi(*calc))
}

func (s *ServiceHandler) DeleteCalculation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid calculation id")
		return
	}

	if err := s.calcSrv.DeleteCalculation(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
