// Package v1 implements the HTTP handlers of the calculation API.
package v1

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	api "github.com/webcalc/calculation-service/api/v1"
	"github.com/webcalc/calculation-service/internal/handlers/validator"
	"github.com/webcalc/calculation-service/internal/service"
	"github.com/webcalc/calculation-service/internal/store"
	"github.com/webcalc/calculation-service/pkg/requestid"
)

type ServiceHandler struct {
	store   store.Store
	userSrv *service.UserService
	calcSrv *service.CalculationService
	userVal *validator.Validator
	calcVal *validator.Validator
	baseUrl string
}

func NewServiceHandler(st store.Store, userSrv *service.UserService, calcSrv *service.CalculationService, baseUrl string) *ServiceHandler {
	userVal := validator.NewValidator()
	userVal.Register(validator.NewUserValidationRules()...)

	calcVal := validator.NewValidator()
	calcVal.Register(validator.NewCalculationValidationRules()...)

	return &ServiceHandler{
		store:   st,
		userSrv: userSrv,
		calcSrv: calcSrv,
		userVal: userVal,
		calcVal: calcVal,
		baseUrl: baseUrl,
	}
}

// RegisterRoutes mounts every endpoint of the service on the given router.
func (s *ServiceHandler) RegisterRoutes(router chi.Router) {
	router.Get("/", s.Root)
	router.Get("/health", s.Health)
	router.Get("/health/ready", s.Ready)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Get("/", s.ListUsers)
			r.Post("/", s.CreateUser)
			r.Get("/{id}", s.GetUser)
			r.Put("/{id}", s.UpdateUser)
			r.Delete("/{id}", s.DeleteUser)
		})

		r.Route("/calculations", func(r chi.Router) {
			r.Get("/", s.ListCalculations)
			r.Post("/", s.CreateCalculation)
			r.Get("/{id}", s.GetCalculation)
			r.Patch("/{id}", s.UpdateCalculation)
			r.Put("/{id}", s.UpdateCalculation)
			r.Delete("/{id}", s.DeleteCalculation)
		})

		r.Post("/operations/{type}", s.Operate)

		r.Get("/statistics", s.GetStatistics)
	})
}

func respond(w http.ResponseWriter, r *http.Request, status int, payload any) {
	render.Status(r, status)
	render.JSON(w, r, payload)
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, api.Error{
		Message:   message,
		RequestId: requestid.FromContextPtr(r.Context()),
	})
}

// respondServiceError maps a service layer error to the matching HTTP status.
// Unrecognized errors are logged and masked as an internal server error.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch err.(type) {
	case *service.ErrResourceNotFound:
		respondError(w, r, http.StatusNotFound, err.Error())
	case *service.ErrDuplicateUser:
		respondError(w, r, http.StatusConflict, err.Error())
	case *service.ErrInvalidCalculation:
		respondError(w, r, http.StatusBadRequest, err.Error())
	default:
		zap.S().Named("handler").Errorw("request failed", "error", err, "request_id", requestid.FromRequest(r))
		respondError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
