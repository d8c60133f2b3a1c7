package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vnkhanh/job-board-backend/controllers"
	"github.com/vnkhanh/job-board-backend/middleware"
	"github.com/vnkhanh/job-board-backend/models"
	"github.com/vnkhanh/job-board-backend/ws"
)

func SetupRouter(r *gin.Engine, db *gorm.DB) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	// Trang công khai
	public := r.Group("/")
	{
		public.Use(middleware.DBMiddleware(db))
		public.GET("", controllers.HomePage)
		public.GET("/about", controllers.AboutPage)
		public.GET("/contact", controllers.ContactPage)
	}

	api := r.Group("/api")
	api.Use(middleware.DBMiddleware(db))

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/logout", middleware.AuthMiddleware(), controllers.Logout)
	}

	// Xem tin và việc làm không cần đăng nhập
	api.GET("/vacancies", controllers.ListVacancies)
	api.GET("/vacancies/:id", controllers.GetVacancyDetail)
	api.GET("/jobs", controllers.ListJobs)
	api.GET("/jobs/:id", controllers.GetJobDetail)
	api.GET("/categories", controllers.ListCategories)

	user := api.Group("/")
	{
		user.Use(middleware.AuthMiddleware())

		// Hồ sơ cá nhân
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.POST("/profile/avatar", controllers.UploadAvatar)

		// Đăng và quản lý tin của mình
		user.POST("/vacancies", controllers.CreateVacancy)
		user.PUT("/vacancies/:id", controllers.UpdateVacancy)
		user.DELETE("/vacancies/:id", controllers.DeleteVacancy)

		// Thông báo
		user.GET("/notifications", controllers.ListNotifications)
		user.PATCH("/notifications/:id/read", controllers.MarkNotificationRead)
	}

	admin := api.Group("/admin")
	{
		admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(string(models.RoleAdmin)))

		// Duyệt tin
		admin.GET("/vacancies", controllers.ListModerationQueue)
		admin.PATCH("/vacancies/:id/status", controllers.SetVacancyStatus)
		admin.POST("/vacancies/bulk-status", controllers.BulkSetVacancyStatus)

		// Quản lý danh mục
		admin.POST("/categories", controllers.CreateCategory)
		admin.PUT("/categories/:id", controllers.UpdateCategory)
		admin.DELETE("/categories/:id", controllers.DeleteCategory)

		// Quản lý việc làm biên tập
		admin.POST("/jobs", controllers.CreateJob)
		admin.PUT("/jobs/:id", controllers.UpdateJob)
		admin.DELETE("/jobs/:id", controllers.DeleteJob)

		// Quản lý người dùng
		admin.DELETE("/users/:id", controllers.DeleteUser)
	}

	r.GET("/ws/notifications", ws.HandleNotificationWebSocket)
	r.GET("/ws/moderation", ws.HandleModerationWebSocket)

	return r
}
