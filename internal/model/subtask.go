package model

import "github.com/google/uuid"

type Subtask struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	TaskID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name   string    `gorm:"not null"`

	// Период подзадачи копируется из родительской задачи в момент записи
	StartMonth *int
	EndMonth   *int
	StartDate  *string
	EndDate    *string
}
