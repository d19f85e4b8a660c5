package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/piskorekkevin-afk/essenstracker/models"
	"github.com/piskorekkevin-afk/essenstracker/storage"
	"github.com/piskorekkevin-afk/essenstracker/utils"
)

const historyPageSize = 20

type MealService struct {
	db     *gorm.DB
	store  storage.ImageStore
	vision VisionClassifier
}

func NewMealService(db *gorm.DB, store storage.ImageStore, vision VisionClassifier) *MealService {
	return &MealService{db: db, store: store, vision: vision}
}

// ManualEntry carries raw form values. Nutrients stay strings here so
// the lenient parse-or-zero rule lives in one place.
type ManualEntry struct {
	Name        string
	Description string
	Calories    string
	Protein     string
	Carbs       string
	Fat         string
	Fiber       string
	Sugar       string
	Sodium      string
}

// ImageUpload is the raw uploaded photo.
type ImageUpload struct {
	OriginalName string
	Data         []byte
}

// Ingest creates a meal dated today. When an allowed image is supplied
// it is stored first and handed to the vision classifier; any classifier
// failure degrades to the manual fields instead of failing the request.
func (s *MealService) Ingest(ctx context.Context, userID uint, mealType string, manual ManualEntry, img *ImageUpload) (*models.Meal, error) {
	if mealType == "" {
		mealType = models.MealTypeSnack
	}

	var filename string
	var analysis *MealAnalysis

	if img != nil {
		if ext := utils.ImageExtension(img.OriginalName); ext != "" {
			filename = utils.UploadFilename(img.OriginalName)
			if err := s.store.Save(filename, img.Data); err != nil {
				return nil, err
			}

			a, err := s.vision.Classify(ctx, img.Data, utils.AllowedImageExtensions[ext])
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"user_id": userID,
					"image":   filename,
				}).WithError(err).Warn("meal image analysis failed, falling back to manual entry")
			} else {
				analysis = a
			}
		}
	}

	meal := models.Meal{
		UserID:    userID,
		ImagePath: filename,
		MealType:  mealType,
		Date:      utils.DateOnly(time.Now()),
	}

	if analysis != nil {
		meal.Name = analysis.Name
		if meal.Name == "" {
			meal.Name = "Unbekannte Mahlzeit"
		}
		meal.Description = analysis.Description
		meal.Calories = analysis.Calories
		meal.Protein = analysis.Protein
		meal.Carbs = analysis.Carbs
		meal.Fat = analysis.Fat
		meal.Fiber = analysis.Fiber
		meal.Sugar = analysis.Sugar
		meal.Sodium = analysis.Sodium
		meal.SaturatedFat = analysis.SaturatedFat
		meal.Cholesterol = analysis.Cholesterol
		meal.Potassium = analysis.Potassium
		meal.VitaminA = analysis.VitaminA
		meal.VitaminC = analysis.VitaminC
		meal.Calcium = analysis.Calcium
		meal.Iron = analysis.Iron
	} else {
		meal.Name = manual.Name
		if meal.Name == "" {
			meal.Name = "Mahlzeit"
		}
		meal.Description = manual.Description
		meal.Calories = utils.ParseFloat(manual.Calories)
		meal.Protein = utils.ParseFloat(manual.Protein)
		meal.Carbs = utils.ParseFloat(manual.Carbs)
		meal.Fat = utils.ParseFloat(manual.Fat)
		meal.Fiber = utils.ParseFloat(manual.Fiber)
		meal.Sugar = utils.ParseFloat(manual.Sugar)
		meal.Sodium = utils.ParseFloat(manual.Sodium)
	}

	if err := s.db.Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// Delete removes the user's meal and its stored image. Returns
// ErrNotFound when the id does not exist, ErrForbidden when it belongs
// to another user.
func (s *MealService) Delete(userID, mealID uint) error {
	var meal models.Meal
	if err := s.db.First(&meal, mealID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if meal.UserID != userID {
		return ErrForbidden
	}

	if meal.ImagePath != "" {
		if err := s.store.Remove(meal.ImagePath); err != nil {
			logrus.WithField("image", meal.ImagePath).WithError(err).Warn("failed to remove meal image")
		}
	}

	return s.db.Unscoped().Delete(&meal).Error
}

// HistoryPage is one page of the reverse-chronological meal list.
type HistoryPage struct {
	Meals   []models.Meal `json:"meals"`
	Page    int           `json:"page"`
	Pages   int           `json:"pages"`
	Total   int64         `json:"total"`
	PerPage int           `json:"per_page"`
}

// History lists the user's meals newest-day-first, 20 per page.
func (s *MealService) History(userID uint, page int) (*HistoryPage, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := s.db.Model(&models.Meal{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, err
	}

	var meals []models.Meal
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(historyPageSize).
		Offset((page - 1) * historyPageSize).
		Find(&meals).Error
	if err != nil {
		return nil, err
	}

	pages := int((total + historyPageSize - 1) / historyPageSize)
	return &HistoryPage{Meals: meals, Page: page, Pages: pages, Total: total, PerPage: historyPageSize}, nil
}
