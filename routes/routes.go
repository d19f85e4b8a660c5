package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/piskorekkevin-afk/essenstracker/config"
	"github.com/piskorekkevin-afk/essenstracker/controllers"
	"github.com/piskorekkevin-afk/essenstracker/middlewares"
	"github.com/piskorekkevin-afk/essenstracker/services"
	"github.com/piskorekkevin-afk/essenstracker/storage"
)

// SetupRouter wires services and handlers onto a gin engine. The vision
// and suggestion clients are passed as interfaces so tests can plug in
// fakes.
func SetupRouter(
	db *gorm.DB,
	cfg config.Settings,
	store storage.ImageStore,
	vision services.VisionClassifier,
	suggest services.SuggestionClient,
) *gin.Engine {
	nutritionSvc := services.NewNutritionService(db)
	limitSvc := services.NewLimitService(db)
	goalSvc := services.NewGoalService(db)
	authSvc := services.NewAuthService(db, limitSvc)
	mealSvc := services.NewMealService(db, store, vision)
	shareSvc := services.NewShareService(db, nutritionSvc, limitSvc, goalSvc)
	suggestionSvc := services.NewSuggestionService(db, nutritionSvc, limitSvc, suggest)

	auth := controllers.NewAuthController(authSvc)
	dashboard := controllers.NewDashboardController(nutritionSvc, limitSvc, goalSvc)
	meals := controllers.NewMealController(mealSvc, store)
	goals := controllers.NewGoalController(goalSvc)
	settings := controllers.NewSettingsController(limitSvc)
	share := controllers.NewShareController(db, shareSvc)
	suggestions := controllers.NewSuggestionController(suggestionSvc)

	r := gin.Default()
	r.MaxMultipartMemory = cfg.MaxUploadBytes

	// Public routes
	r.POST("/register", auth.Register)
	r.POST("/login", auth.Login)
	r.GET("/shared/:token", share.Shared)

	// Everything else requires a session
	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware())
	{
		authed.GET("/logout", auth.Logout)
		authed.POST("/logout", auth.Logout)

		authed.GET("/", dashboard.Dashboard)
		authed.GET("/weekly", dashboard.Weekly)

		authed.GET("/meal/add", meals.AddForm)
		authed.POST("/meal/add", meals.Add)
		authed.POST("/meal/:id/delete", meals.Delete)
		authed.GET("/uploads/:filename", meals.ServeUpload)
		authed.GET("/history", meals.History)

		authed.GET("/goals", goals.List)
		authed.POST("/goals/add", goals.Add)
		authed.POST("/goals/:id/complete", goals.Complete)
		authed.POST("/goals/:id/delete", goals.Delete)

		authed.GET("/settings", settings.Get)
		authed.POST("/settings", settings.Update)

		authed.GET("/suggestions", suggestions.Get)
		authed.GET("/api/suggestions", suggestions.Get)

		authed.GET("/share", share.ShowToken)
	}

	return r
}
