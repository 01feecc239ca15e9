package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"primaryKey;"`
	Username     string    `gorm:"type:VARCHAR(50);uniqueIndex;not null"`
	Email        string    `gorm:"type:VARCHAR(100);uniqueIndex;not null"`
	CreatedAt    time.Time `gorm:"not null;default:now()"`
	UpdatedAt    time.Time `gorm:"not null;default:now()"`
	Calculations []Calculation `gorm:"constraint:OnDelete:CASCADE;"`
}

type UserList []User

func (u User) String() string {
	val, _ := json.Marshal(u)
	return string(val)
}
