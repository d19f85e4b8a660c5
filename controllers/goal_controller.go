package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/piskorekkevin-afk/essenstracker/services"
)

type GoalController struct {
	Goals *services.GoalService
}

func NewGoalController(goals *services.GoalService) *GoalController {
	return &GoalController{Goals: goals}
}

// List returns active goals plus the 10 most recent completed ones.
func (h *GoalController) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	active, err := h.Goals.ListActive(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	completed, err := h.Goals.ListCompleted(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"active_goals": active, "completed_goals": completed})
}

func (h *GoalController) Add(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	goal, err := h.Goals.Create(userID, services.GoalInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		TargetType:  c.PostForm("target_type"),
		TargetValue: c.PostForm("target_value"),
		Unit:        c.PostForm("unit"),
		EndDate:     c.PostForm("end_date"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusCreated, goal)
		return
	}
	flashRedirect(c, "/goals", "Ziel erstellt!")
}

func (h *GoalController) Complete(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	goalID, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	goal, err := h.Goals.Complete(userID, goalID)
	if err != nil {
		respondOwnership(c, err)
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusOK, goal)
		return
	}
	flashRedirect(c, "/goals", "Ziel erreicht! Glückwunsch!")
}

func (h *GoalController) Delete(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	goalID, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	if err := h.Goals.Delete(userID, goalID); err != nil {
		respondOwnership(c, err)
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}
	flashRedirect(c, "/goals", "Ziel gelöscht.")
}
