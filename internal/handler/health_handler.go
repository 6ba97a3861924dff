package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gantt/internal/repository"
)

type HealthHandler struct {
	userRepo repository.UserRepositoryInterface
}

func NewHealthHandler(userRepo repository.UserRepositoryInterface) *HealthHandler {
	return &HealthHandler{userRepo: userRepo}
}

// Root возвращает баннер сервиса
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Gantt Chart API"})
}

// Check проверяет доступность БД через подсчет пользователей
func (h *HealthHandler) Check(c *gin.Context) {
	count, err := h.userRepo.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "DB error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "users_count": count})
}
