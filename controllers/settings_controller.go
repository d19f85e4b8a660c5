package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/piskorekkevin-afk/essenstracker/services"
)

type SettingsController struct {
	Limits *services.LimitService
}

func NewSettingsController(limits *services.LimitService) *SettingsController {
	return &SettingsController{Limits: limits}
}

var limitFieldNames = []string{
	"calories", "protein", "carbs", "fat", "fiber",
	"sugar", "sodium", "saturated_fat", "cholesterol", "potassium",
}

func (h *SettingsController) Get(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	limits, err := h.Limits.Resolve(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, limits)
}

// Update replaces all ceilings at once; blank fields fall back to the
// baseline defaults.
func (h *SettingsController) Update(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	form := map[string]string{}
	if strings.HasPrefix(c.ContentType(), "application/json") {
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	} else {
		for _, name := range limitFieldNames {
			if v, ok := c.GetPostForm(name); ok {
				form[name] = v
			}
		}
	}

	limits, err := h.Limits.ReplaceSettings(userID, form)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusOK, limits)
		return
	}
	flashRedirect(c, "/settings", "Tageslimits aktualisiert!")
}
