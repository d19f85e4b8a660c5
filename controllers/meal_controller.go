package controllers

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/piskorekkevin-afk/essenstracker/models"
	"github.com/piskorekkevin-afk/essenstracker/services"
	"github.com/piskorekkevin-afk/essenstracker/storage"
	"github.com/piskorekkevin-afk/essenstracker/utils"
)

type MealController struct {
	Meals *services.MealService
	Store storage.ImageStore
}

func NewMealController(meals *services.MealService, store storage.ImageStore) *MealController {
	return &MealController{Meals: meals, Store: store}
}

// AddForm describes the add-meal form for clients that render it.
func (h *MealController) AddForm(c *gin.Context) {
	exts := make([]string, 0, len(utils.AllowedImageExtensions))
	for ext := range utils.AllowedImageExtensions {
		exts = append(exts, ext)
	}
	c.JSON(http.StatusOK, gin.H{
		"meal_types": []string{
			models.MealTypeBreakfast,
			models.MealTypeLunch,
			models.MealTypeDinner,
			models.MealTypeSnack,
		},
		"image_extensions": exts,
	})
}

// Add ingests a meal from either an uploaded photo or manual fields.
func (h *MealController) Add(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	manual := services.ManualEntry{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Calories:    c.PostForm("calories"),
		Protein:     c.PostForm("protein"),
		Carbs:       c.PostForm("carbs"),
		Fat:         c.PostForm("fat"),
		Fiber:       c.PostForm("fiber"),
		Sugar:       c.PostForm("sugar"),
		Sodium:      c.PostForm("sodium"),
	}

	var img *services.ImageUpload
	if file, err := c.FormFile("image"); err == nil && file != nil {
		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read upload"})
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read upload"})
			return
		}
		img = &services.ImageUpload{OriginalName: file.Filename, Data: data}
	}

	meal, err := h.Meals.Ingest(c.Request.Context(), userID, c.PostForm("meal_type"), manual, img)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"success": true, "meal_id": meal.ID, "name": meal.Name})
		return
	}
	flashRedirect(c, "/", fmt.Sprintf("%q wurde hinzugefügt!", meal.Name))
}

func (h *MealController) Delete(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	mealID, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	if err := h.Meals.Delete(userID, mealID); err != nil {
		respondOwnership(c, err)
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}
	flashRedirect(c, "/", "Mahlzeit gelöscht.")
}

// ServeUpload streams a stored meal image.
func (h *MealController) ServeUpload(c *gin.Context) {
	filename := filepath.Base(c.Param("filename"))
	data, err := h.Store.Load(filename)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, data)
}

// History returns one page of the reverse-chronological meal list.
func (h *MealController) History(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	history, err := h.Meals.History(userID, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}
