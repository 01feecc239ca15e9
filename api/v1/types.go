// Package v1 holds the request and response types of the calculation API.
package v1

import (
	"time"

	"github.com/google/uuid"
)

// Error is the envelope returned for every non-2xx response.
type Error struct {
	Message   string  `json:"error"`
	RequestId *string `json:"request_id,omitempty"`
}

type User struct {
	Id        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UserList []User

type UserCreate struct {
	Username string `json:"username" validate:"required,username,max=50"`
	Email    string `json:"email" validate:"required,email,max=100"`
}

type UserUpdate struct {
	Username *string `json:"username,omitempty" validate:"omitempty,username,max=50"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=100"`
}

type Calculation struct {
	Id        uuid.UUID `json:"id"`
	UserId    uuid.UUID `json:"userId"`
	Type      string    `json:"type"`
	Inputs    []float64 `json:"inputs"`
	Result    *float64  `json:"result,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CalculationList []Calculation

type CalculationCreate struct {
	UserId uuid.UUID `json:"userId" validate:"required"`
	Type   string    `json:"type" validate:"required,calculation_type"`
	Inputs []float64 `json:"inputs" validate:"required,inputs"`
}

type CalculationUpdate struct {
	Inputs []float64 `json:"inputs" validate:"required,inputs"`
}

// OperationRequest is the body of the stateless binary operation endpoint.
// Both operands must be present.
type OperationRequest struct {
	A *float64 `json:"a" validate:"required"`
	B *float64 `json:"b" validate:"required"`
}

type OperationResult struct {
	Result float64 `json:"result"`
}

// ServiceInfo is the descriptor served at the root route.
type ServiceInfo struct {
	Service string `json:"service"`
	ApiUrl  string `json:"apiUrl"`
}

type Statistics struct {
	TotalUsers         int64            `json:"totalUsers"`
	TotalCalculations  int64            `json:"totalCalculations"`
	CalculationsByType map[string]int64 `json:"calculationsByType"`
}
