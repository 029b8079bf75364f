package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/deepakkumar0818/foodify/controllers"
	"github.com/deepakkumar0818/foodify/middlewares"
	"github.com/deepakkumar0818/foodify/utils"
)

// Controllers bundles every handler group the router wires up.
type Controllers struct {
	Tables         *controllers.TableController
	Bookings       *controllers.BookingController
	BookingPayment *controllers.BookingPaymentController
	Foods          *controllers.FoodController
	Orders         *controllers.OrderController
	Users          *controllers.UserController
	Cart           *controllers.CartController
}

// SetupRouter assembles the middleware chain and all route groups.
func SetupRouter(ctl Controllers, uploadDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.Metrics())
	r.Use(middlewares.NewRateLimiter(100, 60).RateLimit())

	strict := middlewares.NewStrictRateLimiter()
	auth := middlewares.AuthMiddleware()

	r.GET("/ping", func(c *gin.Context) {
		utils.RespondJSON(c, 200, "pong", nil)
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.Static("/images", uploadDir)
	r.GET("/ws/admin", controllers.AdminStream)

	table := r.Group("/api/table")
	{
		table.POST("/add", ctl.Tables.AddTable)
		table.GET("/list", ctl.Tables.ListTables)
		table.GET("/available", ctl.Tables.GetAvailableTables)
		table.POST("/status", ctl.Tables.UpdateTableStatus)
		table.POST("/update", ctl.Tables.UpdateTable)
		table.POST("/toggle", ctl.Tables.ToggleTableActive)
		table.POST("/delete", ctl.Tables.DeleteTable)
		table.GET("/:tableId", ctl.Tables.GetTable)
	}

	booking := r.Group("/api/booking")
	{
		booking.POST("/create", strict, ctl.Bookings.CreateBooking)
		booking.GET("/list", ctl.Bookings.ListBookings)
		booking.POST("/status", ctl.Bookings.UpdateBookingStatus)
		booking.POST("/cancel", ctl.Bookings.CancelBooking)
		booking.POST("/user-bookings", ctl.Bookings.GetUserBookings)
		booking.POST("/delete", ctl.Bookings.DeleteBooking)
		booking.GET("/check/availability", ctl.Bookings.GetBookingsByDate)

		payment := booking.Group("/payment")
		{
			payment.GET("/key", ctl.BookingPayment.GetRazorpayKey)
			payment.POST("/create", strict, ctl.BookingPayment.CreatePreOrderPayment)
			payment.POST("/verify", ctl.BookingPayment.VerifyPreOrderPayment)
		}

		booking.GET("/:bookingId", ctl.Bookings.GetBooking)
	}

	food := r.Group("/api/food")
	{
		food.POST("/add", ctl.Foods.AddFood)
		food.GET("/list", ctl.Foods.ListFood)
		food.GET("/available", ctl.Foods.ListAvailableFood)
		food.POST("/remove", ctl.Foods.RemoveFood)
		food.POST("/status", ctl.Foods.UpdateFoodStatus)
	}

	order := r.Group("/api/order")
	{
		order.POST("/place-cod", auth, ctl.Orders.PlaceOrderCOD)
		order.POST("/create-razorpay", auth, strict, ctl.Orders.CreateRazorpayOrder)
		order.POST("/verify-razorpay", ctl.Orders.VerifyRazorpayPayment)
		order.GET("/razorpay-key", ctl.Orders.GetRazorpayKey)
		order.POST("/verify", ctl.Orders.VerifyOrder)
		order.POST("/userorders", auth, ctl.Orders.GetUserOrders)
		order.GET("/list", ctl.Orders.ListOrders)
		order.POST("/status", ctl.Orders.UpdateStatus)
	}

	user := r.Group("/api/user")
	{
		user.POST("/register", strict, ctl.Users.Register)
		user.POST("/login", strict, ctl.Users.Login)
		user.GET("/profile", auth, ctl.Users.GetProfile)
	}

	cart := r.Group("/api/cart", auth)
	{
		cart.POST("/add", ctl.Cart.AddToCart)
		cart.POST("/remove", ctl.Cart.RemoveFromCart)
		cart.POST("/get", ctl.Cart.GetCart)
	}

	return r
}
