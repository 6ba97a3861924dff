package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gantt/internal/middleware"
	"gantt/internal/policy"
)

// currentActor reads the authenticated caller placed into the context by the
// auth middleware.
func currentActor(c *gin.Context) (policy.Actor, bool) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		return policy.Actor{}, false
	}

	id, ok := userID.(uuid.UUID)
	if !ok {
		return policy.Actor{}, false
	}

	isSuperAdmin := false
	if v, exists := c.Get(middleware.IsSuperAdminKey); exists {
		isSuperAdmin, _ = v.(bool)
	}

	return policy.Actor{ID: id, IsSuperAdmin: isSuperAdmin}, true
}
