package handlers

import (
	"net/http"

	userRepo "tourvisto/database/repository/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes the user operations this service owns.
type UserHandler struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
}

func NewUserHandler(repo userRepo.UserRepository, logger *zap.Logger) *UserHandler {
	return &UserHandler{Repo: repo, Logger: logger}
}

// DeleteUser handles DELETE /api/users/:userId. The path parameter is the
// auth-provider account ID; the matching user document is located first and
// then removed.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	accountID := c.Param("userId")
	if accountID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}
	ctx := c.Request.Context()

	user, err := h.Repo.GetByAccountID(ctx, accountID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "User not found", "details": err.Error()})
		return
	}

	if err := h.Repo.DeleteByID(ctx, user.ID); err != nil {
		h.Logger.Error("User deletion failed", zap.String("accountId", accountID), zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": "Failed to delete user", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User deleted successfully",
	})
}
