package v1

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	api "github.com/webcalc/calculation-service/api/v1"
	"github.com/webcalc/calculation-service/internal/handlers/v1/mappers"
	"github.com/webcalc/calculation-service/internal/service"
	servicemappers "github.com/webcalc/calculation-service/internal/service/mappers"
)

func (s *ServiceHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	filter := service.NewUserFilter().
		WithUsername(r.URL.Query().Get("username")).
		WithEmail(r.URL.Query().Get("email"))

	users, err := s.userSrv.ListUsers(r.Context(), filter)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, mappers.UserListToApi(users))
}

func (s *ServiceHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var body api.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.userVal.Struct(body); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	user, err := s.userSrv.CreateUser(r.Context(), servicemappers.UserCreateForm{
		Username: body.Username,
		Email:    body.Email,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respond(w, r, http.StatusCreated, mappers.UserToApi(*user))
}

func (s *ServiceHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := s.userSrv.GetUser(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, mappers.UserToApi(*user))
}

func (s *ServiceHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid user id")
		return
	}

	var body api.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.userVal.Struct(body); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	form := servicemappers.UserUpdateForm{ID: id}
	if body.Username != nil {
		form.Username = *body.Username
	}
	if body.Email != nil {
		form.Email = *body.Email
	}

	user, err := s.userSrv.UpdateUser(r.Context(), form)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, mappers.UserToApi(*user))
}

func (s *ServiceHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := s.userSrv.DeleteUser(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
