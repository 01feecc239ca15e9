package mappers

import (
	"github.com/google/uuid"
	"github.com/webcalc/calculation-service/internal/calculation"
	"github.com/webcalc/calculation-service/internal/store/model"
)

type UserCreateForm struct {
	ID       uuid.UUID
	Username string
	Email    string
}

func (f UserCreateForm) ToModel() model.User {
	id := f.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return model.User{
		ID:       id,
		Username: f.Username,
		Email:    f.Email,
	}
}

type UserUpdateForm struct {
	ID       uuid.UUID
	Username string
	Email    string
}

func (f UserUpdateForm) ToModel() model.User {
	return model.User{
		ID:       f.ID,
		Username: f.Username,
		Email:    f.Email,
	}
}

type CalculationCreateForm struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Type   calculation.Type
	Inputs []float64
}

func (f CalculationCreateForm) ToModel() model.Calculation {
	id := f.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return model.Calculation{
		ID:     id,
		UserID: f.UserID,
		Type:   string(f.Type),
		Inputs: model.MakeJSONField(f.Inputs),
	}
}

type CalculationUpdateForm struct {
	ID     uuid.UUID
	Inputs []float64
}
