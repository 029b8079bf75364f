package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/deepakkumar0818/foodify/config"
	"github.com/deepakkumar0818/foodify/controllers"
	"github.com/deepakkumar0818/foodify/middlewares"
	"github.com/deepakkumar0818/foodify/repository"
	"github.com/deepakkumar0818/foodify/router"
	"github.com/deepakkumar0818/foodify/services"
	"github.com/deepakkumar0818/foodify/utils"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	utils.InitLogger()

	if err := utils.InitJWT(); err != nil {
		utils.ErrorLogger.Fatalf("JWT init failed: %v", err)
	}

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Database connection failed: %v", err)
	}
	utils.InfoLogger.Println("Connected to MongoDB")

	gateway := services.GetRazorpayService()
	if err := gateway.ValidateConfig(); err != nil {
		utils.ErrorLogger.Printf("Razorpay not configured: %v", err)
	}

	tables := repository.NewMongoTableRepo(db)
	bookings := repository.NewMongoBookingRepo(db)
	foods := repository.NewMongoFoodRepo(db)
	orders := repository.NewMongoOrderRepo(db)
	users := repository.NewMongoUserRepo(db)

	availability := services.NewAvailabilityService(tables, bookings)

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		utils.ErrorLogger.Fatalf("Cannot create upload dir %s: %v", uploadDir, err)
	}
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:4000"
	}

	ctl := router.Controllers{
		Tables:         controllers.NewTableController(tables, availability),
		Bookings:       controllers.NewBookingController(bookings, tables),
		BookingPayment: controllers.NewBookingPaymentController(bookings, gateway),
		Foods:          controllers.NewFoodController(foods, uploadDir, baseURL),
		Orders:         controllers.NewOrderController(orders, users, gateway),
		Users:          controllers.NewUserController(users),
		Cart:           controllers.NewCartController(users),
	}

	middlewares.RegisterMetrics()

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.SetupRouter(ctl, uploadDir)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	utils.InfoLogger.Printf("Server listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatalf("Server stopped: %v", err)
	}
}
