package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email          string    `gorm:"uniqueIndex;not null"`
	HashedPassword string    `gorm:"not null"`
	FullName       string    `gorm:"not null"`
	Position       string    `gorm:"not null"`
	IsSuperAdmin   bool      `gorm:"not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}
