package main

import (
	"log"
	"os"
	"time"

	"ghorbari-server/handlers/admin"
	"ghorbari-server/handlers/analysis"
	"ghorbari-server/handlers/auth"
	"ghorbari-server/handlers/companies"
	"ghorbari-server/handlers/faqs"
	"ghorbari-server/handlers/favorites"
	"ghorbari-server/handlers/meetings"
	"ghorbari-server/handlers/notifications"
	"ghorbari-server/handlers/offers"
	"ghorbari-server/handlers/payments"
	"ghorbari-server/handlers/properties"
	"ghorbari-server/handlers/referrals"
	"ghorbari-server/handlers/rentals"
	"ghorbari-server/handlers/stories"
	"ghorbari-server/handlers/technicians"
	"ghorbari-server/handlers/users"
	"ghorbari-server/migrations"
	"ghorbari-server/models"
	"ghorbari-server/seed"
	"ghorbari-server/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file:", err)
	}
}

func main() {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("FRONTEND_ORIGIN")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	utils.ConnectDatabase()
	utils.LoadAdminAccounts()

	if err := utils.MigrateAll(utils.DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	migrations.MigrateReferrals()

	// Seed Initial Data
	if err := seed.SeedAmenities(); err != nil {
		log.Fatalf("Failed to seed amenities: %v", err)
	}

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "message": "Server is running"})
	})

	r.POST("/api/auth/register", auth.Register)
	r.POST("/api/auth/login", auth.Login)

	protected := r.Group("/api")
	protected.Use(auth.AuthMiddleware())
	{
		protected.POST("/auth/logout", auth.Logout)

		protected.GET("/user/profile/me", users.GetProfile)
		protected.PUT("/user/profile/update", users.UpdateProfile)
		protected.POST("/user/profile/delete-request", users.RequestDeletion)
		protected.GET("/user/all", auth.RoleCheck(models.RoleAdmin), users.GetAllUsers)

		protected.GET("/property", properties.GetProperties)
		protected.GET("/property/search", properties.GetProperties)
		protected.GET("/property/suggestions", auth.RoleCheck(models.RolePremium), properties.GetSuggestions)
		protected.GET("/property/:id", properties.GetProperty)
		protected.POST("/property", auth.RoleCheck(models.RolePremium), properties.CreateProperty)
		protected.POST("/property/:id/rate", auth.RoleCheck(models.RolePremium), properties.RateProperty)
		protected.DELETE("/property/:id", auth.RoleCheck(models.RoleAdmin), properties.DeleteProperty)

		protected.GET("/rental", rentals.GetRentals)
		protected.GET("/rental/:id", rentals.GetRental)
		protected.POST("/rental", auth.RoleCheck(models.RolePremium), rentals.CreateRental)
		protected.PUT("/rental/:id", rentals.UpdateRental)
		protected.DELETE("/rental/:id", rentals.DeleteRental)

		protected.GET("/referral/check", referrals.CheckReferral)
		protected.POST("/referral/apply-code", referrals.ApplyCode)
		protected.GET("/referral/referrer-stats", referrals.ReferrerStats)

		protected.POST("/payment/initiate", payments.InitiatePayment)
		protected.POST("/payment/confirm", payments.ConfirmPayment)

		adminGroup := protected.Group("/admin")
		adminGroup.Use(auth.RoleCheck(models.RoleAdmin))
		{
			adminGroup.GET("/verifications/pending", admin.GetPendingVerifications)
			adminGroup.POST("/verifications/:id/approve", admin.ApproveVerification)
			adminGroup.POST("/verifications/:id/reject", admin.RejectVerification)
			adminGroup.POST("/users/:id/delete-approve", admin.ApproveDeletion)
			adminGroup.GET("/stories/pending", admin.GetPendingStories)
			adminGroup.GET("/premium-members", admin.GetPremiumMembers)
			adminGroup.GET("/stats", admin.GetAdminStats)
			adminGroup.GET("/logs", admin.GetAdminLogs)
		}

		protected.GET("/company", companies.GetCompanies)
		protected.GET("/company/developers", companies.GetDevelopers)
		protected.GET("/company/interior", companies.GetInteriorDesigners)
		protected.GET("/company/legal", companies.GetLegalServices)
		protected.GET("/company/moving", companies.GetMovingServices)
		protected.GET("/company/:id", companies.GetCompany)
		protected.POST("/company/:id/rate", companies.RateCompany)

		protected.GET("/technician", technicians.GetTechnicians)
		protected.GET("/technician/:id", technicians.GetTechnician)
		protected.POST("/technician/:id/rate", technicians.RateTechnician)

		protected.POST("/meeting/request", meetings.RequestMeeting)
		protected.GET("/meeting/all", auth.RoleCheck(models.RoleAdmin), meetings.GetAllMeetings)

		protected.POST("/story", auth.RoleCheck(models.RolePremium), stories.CreateStory)
		protected.GET("/story", stories.GetStories)
		protected.POST("/story/:id/approve", auth.RoleCheck(models.RoleAdmin), stories.ApproveStory)

		protected.POST("/offer/submit", offers.SubmitOffer)
		protected.GET("/offer/my-offers", offers.GetMyOffers)

		protected.POST("/favorites/add", favorites.AddFavorite)
		protected.POST("/favorites/remove", favorites.RemoveFavorite)
		protected.GET("/favorites", favorites.GetFavorites)

		protected.GET("/price-analysis", analysis.GetPriceAnalysis)

		protected.GET("/faq", faqs.GetFaqs)
		protected.POST("/faq", auth.RoleCheck(models.RoleAdmin), faqs.CreateFaq)

		notifications.RegisterNotificationsRoutes(protected)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
