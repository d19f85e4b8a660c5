package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/piskorekkevin-afk/essenstracker/services"
)

type SuggestionController struct {
	Suggestions *services.SuggestionService
}

func NewSuggestionController(suggestions *services.SuggestionService) *SuggestionController {
	return &SuggestionController{Suggestions: suggestions}
}

// Get returns up to 3 suggested meals, or an empty array when the
// generator is unavailable.
func (h *SuggestionController) Get(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	c.JSON(http.StatusOK, h.Suggestions.Suggest(c.Request.Context(), userID))
}
