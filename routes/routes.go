package routes

import (
	"os"
	"path/filepath"

	"github.com/gopikaunnikrishnan1215-web/smart-study-planner/controllers"
	"github.com/gopikaunnikrishnan1215-web/smart-study-planner/middlewares"
	"github.com/gopikaunnikrishnan1215-web/smart-study-planner/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.StudyHub) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	api := r.Group("/api")
	{
		api.POST("/register", controllers.Register)
		api.POST("/login", controllers.Login)
	}

	// Protected API routes
	auth := r.Group("/api")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.POST("/logout", controllers.Logout)
		auth.GET("/profile", controllers.GetProfile)
		auth.PUT("/profile", controllers.UpdateProfile)

		auth.GET("/subjects", controllers.ListSubjects)
		auth.POST("/subjects", controllers.CreateSubject)
		auth.PUT("/subjects/:id", controllers.UpdateSubject)
		auth.DELETE("/subjects/:id", controllers.DeleteSubject)

		auth.POST("/progress", controllers.LogProgress)
		auth.GET("/progress", controllers.GetProgress)
		auth.GET("/daily-schedule", controllers.GetDailySchedule)
		auth.GET("/week-view", controllers.GetWeekView)
		auth.GET("/stats", controllers.GetStats)
		auth.GET("/history", controllers.GetHistory)

		auth.GET("/settings", controllers.GetSettings)
		auth.PUT("/settings", controllers.UpdateSettings)

		auth.POST("/chatbot", controllers.Chatbot)
		auth.GET("/alerts", controllers.ListAlerts)

		rc := controllers.NewRealtimeController(hub)
		auth.GET("/ws/alerts", rc.AlertsWS)
	}

	registerFrontend(r)

	return r
}

// registerFrontend serves the static pages and assets the same way the
// dashboard expects them: pages at /, /home, /dashboard and assets under
// /static.
func registerFrontend(r *gin.Engine) {
	frontendDir := os.Getenv("FRONTEND_DIR")
	if frontendDir == "" {
		frontendDir = "frontend"
	}

	pages := filepath.Join(frontendDir, "pages")
	r.StaticFile("/", filepath.Join(pages, "index.html"))
	r.StaticFile("/home", filepath.Join(pages, "home.html"))
	r.StaticFile("/dashboard", filepath.Join(pages, "dashboard.html"))

	r.Static("/static/css", filepath.Join(frontendDir, "css"))
	r.Static("/static/js", filepath.Join(frontendDir, "js"))
	r.Static("/static/assets", filepath.Join(frontendDir, "assets"))
}
