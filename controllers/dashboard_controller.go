package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/piskorekkevin-afk/essenstracker/services"
)

type DashboardController struct {
	Nutrition *services.NutritionService
	Limits    *services.LimitService
	Goals     *services.GoalService
}

func NewDashboardController(nutrition *services.NutritionService, limits *services.LimitService, goals *services.GoalService) *DashboardController {
	return &DashboardController{Nutrition: nutrition, Limits: limits, Goals: goals}
}

// Dashboard returns today's meals and totals, the user's limits, the
// trailing-week chart and open goals.
func (h *DashboardController) Dashboard(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	today := time.Now()

	meals, err := h.Nutrition.MealsForDate(userID, today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	totals, err := h.Nutrition.TotalsForDate(userID, today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	limits, err := h.Limits.Resolve(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	week, err := h.Nutrition.TrailingWeek(userID, today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	goals, err := h.Goals.ListActive(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"meals":     meals,
		"totals":    totals,
		"limits":    limits,
		"week_data": week,
		"goals":     goals,
	})
}

// Weekly returns the Monday-to-Sunday grid for the current week.
func (h *DashboardController) Weekly(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	days, err := h.Nutrition.CalendarWeek(userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	limits, err := h.Limits.Resolve(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": days, "limits": limits})
}
