package model

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null"`
	Tag          string    `gorm:"not null"`
	DurationType string    `gorm:"not null"`

	// Для режима месяцев
	StartMonth *int
	EndMonth   *int

	// Для режима дней (YYYY-MM-DD)
	StartDate *string
	EndDate   *string
	EndTime   string

	Completed   bool `gorm:"not null"`
	CompletedAt *string
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	Owner    User      `gorm:"foreignKey:UserID"`
	Subtasks []Subtask `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}
