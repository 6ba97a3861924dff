package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gantt/internal/export"
	"gantt/internal/model"
	"gantt/internal/policy"
	"gantt/internal/repository"
	"gantt/internal/timeline"
)

// CompletedAtLayout — формат отметки о завершении (дата и время до минуты)
const CompletedAtLayout = "2006-01-02 15:04"

type TaskHandler struct {
	taskRepo repository.TaskRepositoryInterface
}

func NewTaskHandler(taskRepo repository.TaskRepositoryInterface) *TaskHandler {
	return &TaskHandler{taskRepo: taskRepo}
}

// SubtaskRequest представляет подзадачу в запросе. Период подзадачи не
// принимается с клиента: при записи он копируется из родительской задачи.
type SubtaskRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TaskRequest представляет запрос на создание или обновление задачи.
// Поля месяцев приходят как произвольные JSON-значения и приводятся
// к числам снисходительно: мусор трактуется как отсутствие значения.
type TaskRequest struct {
	Name         string           `json:"name" binding:"required"`
	Tag          string           `json:"tag" binding:"required"`
	DurationType string           `json:"duration_type"`
	StartMonth   any              `json:"start_month"`
	EndMonth     any              `json:"end_month"`
	StartDate    *string          `json:"start_date"`
	EndDate      *string          `json:"end_date"`
	EndTime      string           `json:"end_time"`
	Completed    *bool            `json:"completed"`
	Subtasks     []SubtaskRequest `json:"subtasks"`
}

type CompleteRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

type SubtaskResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	StartMonth *int    `json:"start_month"`
	EndMonth   *int    `json:"end_month"`
	StartDate  *string `json:"start_date"`
	EndDate    *string `json:"end_date"`
}

type TaskResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Tag          string            `json:"tag"`
	DurationType string            `json:"duration_type"`
	StartMonth   *int              `json:"start_month"`
	EndMonth     *int              `json:"end_month"`
	StartDate    *string           `json:"start_date"`
	EndDate      *string           `json:"end_date"`
	EndTime      string            `json:"end_time"`
	Completed    bool              `json:"completed"`
	CompletedAt  *string           `json:"completed_at"`
	UserID       string            `json:"user_id"`
	Subtasks     []SubtaskResponse `json:"subtasks"`
}

func toTaskResponse(task *model.Task) TaskResponse {
	subtasks := make([]SubtaskResponse, len(task.Subtasks))
	for i, st := range task.Subtasks {
		subtasks[i] = SubtaskResponse{
			ID:         st.ID.String(),
			Name:       st.Name,
			StartMonth: st.StartMonth,
			EndMonth:   st.EndMonth,
			StartDate:  st.StartDate,
			EndDate:    st.EndDate,
		}
	}

	return TaskResponse{
		ID:           task.ID.String(),
		Name:         task.Name,
		Tag:          task.Tag,
		DurationType: task.DurationType,
		StartMonth:   task.StartMonth,
		EndMonth:     task.EndMonth,
		StartDate:    task.StartDate,
		EndDate:      task.EndDate,
		EndTime:      task.EndTime,
		Completed:    task.Completed,
		CompletedAt:  task.CompletedAt,
		UserID:       task.UserID.String(),
		Subtasks:     subtasks,
	}
}

// resolveTimeline валидирует период задачи из запроса
func resolveTimeline(req *TaskRequest) (timeline.Timeline, error) {
	startMonth := timeline.ParseMonth(req.StartMonth)
	endMonth := timeline.ParseMonth(req.EndMonth)
	return timeline.Resolve(req.DurationType, startMonth, endMonth, req.StartDate, req.EndDate)
}

// subtaskFromParent создает строку подзадачи с периодом, скопированным из
// периода родительской задачи в момент записи
func subtaskFromParent(id uuid.UUID, name string, tl timeline.Timeline) model.Subtask {
	return model.Subtask{
		ID:         id,
		Name:       name,
		StartMonth: tl.StartMonth,
		EndMonth:   tl.EndMonth,
		StartDate:  tl.StartDate,
		EndDate:    tl.EndDate,
	}
}

// Create создает новую задачу текущего пользователя
func (h *TaskHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	tl, err := resolveTimeline(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	endTime := req.EndTime
	if endTime == "" {
		endTime = "18:00"
	}
	completed := false
	if req.Completed != nil {
		completed = *req.Completed
	}

	task := &model.Task{
		ID:           uuid.New(),
		Name:         req.Name,
		Tag:          req.Tag,
		DurationType: tl.DurationType,
		StartMonth:   tl.StartMonth,
		EndMonth:     tl.EndMonth,
		StartDate:    tl.StartDate,
		EndDate:      tl.EndDate,
		EndTime:      endTime,
		Completed:    completed,
		// Владелец задачи — всегда вызывающий, а не значение из запроса
		UserID: actor.ID,
	}

	// Подзадачи с пустыми именами молча отбрасываются
	for _, st := range req.Subtasks {
		name := strings.TrimSpace(st.Name)
		if name == "" {
			continue
		}
		task.Subtasks = append(task.Subtasks, subtaskFromParent(uuid.New(), name, tl))
	}

	if err := h.taskRepo.Create(c.Request.Context(), task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, toTaskResponse(task))
}

// List возвращает задачи, видимые текущему пользователю. Супер-админ видит
// все задачи или задачи конкретного пользователя (?user_id=); обычный
// пользователь — только свои, независимо от фильтра.
func (h *TaskHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var requested *uuid.UUID
	if raw := c.Query("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
			return
		}
		requested = &id
	}

	tasks, err := h.taskRepo.List(c.Request.Context(), policy.TaskListOwner(actor, requested))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	response := make([]TaskResponse, len(tasks))
	for i := range tasks {
		response[i] = toTaskResponse(&tasks[i])
	}

	c.JSON(http.StatusOK, response)
}

// GetByID возвращает задачу по ID
func (h *TaskHandler) GetByID(c *gin.Context) {
	_, task, ok := h.loadTask(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, toTaskResponse(task))
}

// Update заменяет все поля задачи и весь список подзадач
func (h *TaskHandler) Update(c *gin.Context) {
	_, task, ok := h.loadTask(c)
	if !ok {
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	tl, err := resolveTimeline(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task.Name = req.Name
	task.Tag = req.Tag
	task.DurationType = tl.DurationType
	task.StartMonth = tl.StartMonth
	task.EndMonth = tl.EndMonth
	task.StartDate = tl.StartDate
	task.EndDate = tl.EndDate
	// Скалярные поля заменяются целиком: отсутствующие в запросе
	// значения возвращаются к значениям по умолчанию
	task.EndTime = "18:00"
	if req.EndTime != "" {
		task.EndTime = req.EndTime
	}
	task.Completed = false
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	// Старые подзадачи отбрасываются, новые получают период родителя.
	// ID из запроса сохраняются, отсутствующие генерируются заново.
	task.Subtasks = nil
	for _, st := range req.Subtasks {
		id := uuid.New()
		if st.ID != "" {
			if parsed, err := uuid.Parse(st.ID); err == nil {
				id = parsed
			}
		}
		task.Subtasks = append(task.Subtasks, subtaskFromParent(id, st.Name, tl))
	}

	if err := h.taskRepo.Update(c.Request.Context(), task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	c.JSON(http.StatusOK, toTaskResponse(task))
}

// Delete удаляет задачу вместе с подзадачами
func (h *TaskHandler) Delete(c *gin.Context) {
	_, task, ok := h.loadTask(c)
	if !ok {
		return
	}

	if err := h.taskRepo.Delete(c.Request.Context(), task.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

// SetCompletion отмечает выполнение задачи. При завершении фиксируется
// время, при отмене отметка сбрасывается.
func (h *TaskHandler) SetCompletion(c *gin.Context) {
	_, task, ok := h.loadTask(c)
	if !ok {
		return
	}

	var req CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	task.Completed = *req.Completed
	if task.Completed {
		completedAt := time.Now().Format(CompletedAtLayout)
		task.CompletedAt = &completedAt
	} else {
		task.CompletedAt = nil
	}

	if err := h.taskRepo.Save(c.Request.Context(), task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	c.JSON(http.StatusOK, toTaskResponse(task))
}

// Export выгружает видимые задачи в виде HTML-таблицы для импорта в Excel
func (h *TaskHandler) Export(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	tasks, err := h.taskRepo.List(c.Request.Context(), policy.TaskListOwner(actor, nil))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"csv":    export.BuildTable(tasks),
		"format": "html",
	})
}

// loadTask разбирает ID задачи из URL, загружает ее и проверяет права
// доступа. Несуществующая задача — 404 для всех; чужая задача — 403.
func (h *TaskHandler) loadTask(c *gin.Context) (policy.Actor, *model.Task, bool) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return policy.Actor{}, nil, false
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return actor, nil, false
	}

	task, err := h.taskRepo.GetByID(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return actor, nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve task"})
		return actor, nil, false
	}

	if !policy.CanAccessTask(actor, task.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions"})
		return actor, nil, false
	}

	return actor, task, true
}
