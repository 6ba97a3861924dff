package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gantt/internal/model"
)

type TaskRepository struct {
	db *gorm.DB
}

type TaskRepositoryInterface interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error)
	List(ctx context.Context, ownerID *uuid.UUID) ([]model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	Save(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}

var _ TaskRepositoryInterface = (*TaskRepository)(nil)

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a task together with its subtasks in one transaction:
// either all rows exist afterwards or none do.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(task).Error; err != nil {
			return err
		}
		for i := range task.Subtasks {
			task.Subtasks[i].TaskID = task.ID
			if err := tx.Create(&task.Subtasks[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID retrieves a task with its subtasks
func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	result := r.db.WithContext(ctx).Preload("Subtasks").First(&task, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, result.Error
	}
	return &task, nil
}

// List retrieves tasks with their subtasks, optionally filtered by owner
func (r *TaskRepository) List(ctx context.Context, ownerID *uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	query := r.db.WithContext(ctx).Preload("Subtasks").Order("created_at")
	if ownerID != nil {
		query = query.Where("user_id = ?", *ownerID)
	}
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update saves the task's scalar fields and replaces its subtask list
// wholesale: the old subtasks are removed and the ones on the task are
// inserted, all in one transaction.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Omit(clause.Associations).Save(task)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTaskNotFound
		}

		// Удаляем старые подзадачи и создаем новые
		if err := tx.Where("task_id = ?", task.ID).Delete(&model.Subtask{}).Error; err != nil {
			return err
		}
		for i := range task.Subtasks {
			task.Subtasks[i].TaskID = task.ID
			if err := tx.Create(&task.Subtasks[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Save persists scalar fields only, leaving subtasks untouched (used for
// the completion toggle).
func (r *TaskRepository) Save(ctx context.Context, task *model.Task) error {
	result := r.db.WithContext(ctx).Omit(clause.Associations).Save(task)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Delete removes a task and all its subtasks
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&model.Subtask{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Task{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTaskNotFound
		}
		return nil
	})
}
