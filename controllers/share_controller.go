package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/piskorekkevin-afk/essenstracker/models"
	"github.com/piskorekkevin-afk/essenstracker/services"
)

type ShareController struct {
	DB    *gorm.DB
	Share *services.ShareService
}

func NewShareController(db *gorm.DB, share *services.ShareService) *ShareController {
	return &ShareController{DB: db, Share: share}
}

// ShowToken returns the authenticated user's own share token.
func (h *ShareController) ShowToken(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var user models.User
	if err := h.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"share_token": user.ShareToken})
}

// Shared is the public, token-gated read-only profile view.
func (h *ShareController) Shared(c *gin.Context) {
	snapshot, err := h.Share.SnapshotByToken(c.Param("token"))
	if err != nil {
		respondOwnership(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
