package routes

import (
	"net/http"

	"biztrack/constants"
	"biztrack/controllers"
	"biztrack/middleware"
	"biztrack/services"
	"biztrack/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRoutes đăng ký toàn bộ route dưới /api
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisClient *redis.Client, m *melody.Melody) {
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.SessionMiddleware())

	notifier := notification.NewMelodyService(m)

	userController := controllers.NewUserController(db)
	reportController := controllers.NewReportController(db)
	targetController := controllers.NewTargetTimeController(db)
	transactionController := controllers.NewTransactionController(db)
	cashController := controllers.NewCashHistoryController(db)
	freelancerController := controllers.NewFreelancerController(db, notifier)
	upworkController := controllers.NewUpworkController(db, notifier)

	bidStatsService := services.NewBidStatsService(services.BidStatsServiceOptions{
		DB:     db,
		Policy: services.SentPolicyFromEnv(),
	})
	dashboardService := services.NewDashboardService(services.DashboardServiceOptions{DB: db})
	countryService := services.NewCountryService(services.CountryServiceOptions{Redis: redisClient})

	dashboardController := controllers.NewDashboardController(dashboardService, bidStatsService)
	bidStatsController := controllers.NewBidStatsController(bidStatsService)
	countryController := controllers.NewCountryController(countryService)

	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := api.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
		auth.POST("/google", controllers.AuthGoogle)
		auth.DELETE("/logout", middleware.AuthMiddleware(), controllers.Logout)
		auth.GET("/me", middleware.AuthMiddleware(), controllers.Me)
	}

	users := api.Group("/users", middleware.AuthMiddleware(constants.RoleAdmin))
	{
		users.GET("", userController.GetUsers)
		users.GET("/:id", userController.GetUser)
		users.POST("", userController.CreateUser)
		users.PUT("/:id", userController.UpdateUser)
		users.DELETE("/:id", userController.DeleteUser)
	}

	reports := api.Group("/reports", middleware.AuthMiddleware())
	{
		reports.GET("", reportController.GetReports)
		reports.POST("", reportController.CreateReport)
		reports.PUT("/:id", reportController.UpdateReport)
		reports.DELETE("/:id", reportController.DeleteReport)
	}

	targets := api.Group("/target-times")
	{
		targets.GET("", middleware.AuthMiddleware(), targetController.GetTargetTime)
		targets.PUT("", middleware.AuthMiddleware(constants.RoleAdmin), targetController.UpdateTargetTime)
	}

	transactions := api.Group("/transactions", middleware.AuthMiddleware())
	{
		transactions.GET("", transactionController.GetTransactions)
		transactions.POST("", transactionController.CreateTransaction)
		transactions.PUT("/:id", transactionController.UpdateTransaction)
		transactions.DELETE("/:id", transactionController.DeleteTransaction)
	}

	cash := api.Group("/cash-history", middleware.AuthMiddleware())
	{
		cash.GET("", cashController.GetCashHistory)
		cash.POST("", cashController.CreateCashHistory)
		cash.PUT("/:id", cashController.UpdateCashHistory)
		cash.DELETE("/:id", cashController.DeleteCashHistory)
	}

	freelancer := api.Group("/freelancer", middleware.AuthMiddleware())
	{
		freelancer.GET("/freelancer_bids/:id", freelancerController.GetBids)
		freelancer.POST("/freelancer_bids", freelancerController.CreateBid)
		freelancer.PUT("/freelancer_bids/:id", freelancerController.UpdateBid)
		freelancer.DELETE("/freelancer_bids/:id", freelancerController.DeleteBid)

		freelancer.GET("/freelancer_chat/:id", freelancerController.GetChats)
		freelancer.POST("/freelancer_chat", freelancerController.CreateChat)
		freelancer.PUT("/freelancer_chat/:id", freelancerController.UpdateChat)
		freelancer.DELETE("/freelancer_chat/:id", freelancerController.DeleteChat)

		freelancer.GET("/countries", countryController.GetCountries)
	}

	upwork := api.Group("/upwork", middleware.AuthMiddleware())
	{
		upwork.GET("/upwork_bids/:id", upworkController.GetBids)
		upwork.POST("/upwork_bids", upworkController.CreateBid)
		upwork.PUT("/upwork_bids/:id", upworkController.UpdateBid)
		upwork.DELETE("/upwork_bids/:id", upworkController.DeleteBid)

		upwork.GET("/countries", countryController.GetCountries)
	}

	bids := api.Group("/bids", middleware.AuthMiddleware())
	{
		bids.GET("/stats/weekly", bidStatsController.GetWeeklyStats)
	}

	dashboard := api.Group("/dashboard", middleware.AuthMiddleware())
	{
		dashboard.GET("/stats", dashboardController.GetStats)
		dashboard.GET("/weekly-bids", dashboardController.GetWeeklyBids)
	}
}
