package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Calculation holds one stored calculation. Type discriminates the behavior
// (addition, subtraction, multiplication, division); Inputs is the ordered
// operand list; Result is nil until it has been computed.
type Calculation struct {
	ID        uuid.UUID             `gorm:"primaryKey;"`
	UserID    uuid.UUID             `gorm:"not null;index"`
	Type      string                `gorm:"type:VARCHAR(50);not null;index"`
	Inputs    *JSONField[[]float64] `gorm:"type:jsonb;not null"`
	Result    *float64
	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

type CalculationList []Calculation

func (c Calculation) String() string {
	val, _ := json.Marshal(c)
	return string(val)
}
