package router

import (
	"database/sql"
	"net/http"

	"hotel_backend/internal/handlers"
	"hotel_backend/internal/repositories"
	"hotel_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Initialize Repositories
	guestRepo := repositories.NewGuestRepository(db)
	roomRepo := repositories.NewRoomRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	bookingGuestRepo := repositories.NewBookingGuestRepository(db)
	priceRepo := repositories.NewPriceRepository(db)
	discountRepo := repositories.NewDiscountRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)

	// Initialize Services
	guestService := services.NewGuestService(guestRepo, db)
	roomService := services.NewRoomService(roomRepo, bookingRepo, db)
	bookingService := services.NewBookingService(bookingRepo, db)
	bookingGuestService := services.NewBookingGuestService(bookingGuestRepo, db)
	priceService := services.NewPriceService(priceRepo, db)
	discountService := services.NewDiscountService(discountRepo, db)
	paymentService := services.NewPaymentService(paymentRepo, db)

	// Initialize Handlers
	guestHandler := handlers.NewGuestHandler(guestService)
	roomHandler := handlers.NewRoomHandler(roomService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	bookingGuestHandler := handlers.NewBookingGuestHandler(bookingGuestService)
	priceHandler := handlers.NewPriceHandler(priceService)
	discountHandler := handlers.NewDiscountHandler(discountService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	// The API surface is mounted at the root so the front-end paths stay
	// /guests, /rooms, and so on.
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the hotel API!")
	})

	SetupGuestRoutes(engine, guestHandler)
	SetupRoomRoutes(engine, roomHandler)
	SetupBookingRoutes(engine, bookingHandler)
	SetupBookingGuestRoutes(engine, bookingGuestHandler)
	SetupPriceRoutes(engine, priceHandler)
	SetupDiscountRoutes(engine, discountHandler)
	SetupPaymentRoutes(engine, paymentHandler)
}
