package router

import (
	"hotel_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupGuestRoutes sets up the guest routes.
func SetupGuestRoutes(engine *gin.Engine, guestHandler *handlers.GuestHandler) {
	guestRoutes := engine.Group("/guests")
	{
		guestRoutes.POST("", guestHandler.CreateGuest)
		guestRoutes.GET("", guestHandler.GetGuests)
		guestRoutes.GET("/:id", guestHandler.GetGuestByID)
		guestRoutes.PUT("/:id", guestHandler.UpdateGuest)
		guestRoutes.DELETE("/:id", guestHandler.DeleteGuest)
	}
}

// SetupRoomRoutes sets up the room routes.
func SetupRoomRoutes(engine *gin.Engine, roomHandler *handlers.RoomHandler) {
	roomRoutes := engine.Group("/rooms")
	{
		roomRoutes.POST("", roomHandler.CreateRoom)
		roomRoutes.GET("", roomHandler.GetRooms)
		roomRoutes.GET("/:id", roomHandler.GetRoomByID)
		roomRoutes.PUT("/:id", roomHandler.UpdateRoom)
		roomRoutes.DELETE("/:id", roomHandler.DeleteRoom)
	}
}

// SetupBookingRoutes sets up the booking routes.
func SetupBookingRoutes(engine *gin.Engine, bookingHandler *handlers.BookingHandler) {
	bookingRoutes := engine.Group("/bookings")
	{
		bookingRoutes.POST("", bookingHandler.CreateBooking)
		bookingRoutes.GET("", bookingHandler.GetBookings)
		bookingRoutes.GET("/:id", bookingHandler.GetBookingByID)
		bookingRoutes.PUT("/:id", bookingHandler.UpdateBooking)
		bookingRoutes.DELETE("/:id", bookingHandler.DeleteBooking)
	}
}

// SetupBookingGuestRoutes sets up the booking-guest association routes.
func SetupBookingGuestRoutes(engine *gin.Engine, bookingGuestHandler *handlers.BookingGuestHandler) {
	bookingGuestRoutes := engine.Group("/booking-guests")
	{
		bookingGuestRoutes.POST("", bookingGuestHandler.CreateBookingGuest)
		bookingGuestRoutes.GET("", bookingGuestHandler.GetBookingGuests)
		bookingGuestRoutes.GET("/:id", bookingGuestHandler.GetBookingGuestByID)
		bookingGuestRoutes.PUT("/:id", bookingGuestHandler.UpdateBookingGuest)
		bookingGuestRoutes.DELETE("/:id", bookingGuestHandler.DeleteBookingGuest)
	}
}

// SetupPriceRoutes sets up the weekday rate routes.
func SetupPriceRoutes(engine *gin.Engine, priceHandler *handlers.PriceHandler) {
	priceRoutes := engine.Group("/prices")
	{
		priceRoutes.POST("", priceHandler.CreatePrice)
		priceRoutes.GET("", priceHandler.GetPrices)
		priceRoutes.GET("/:id", priceHandler.GetPriceByID)
		priceRoutes.PUT("/:id", priceHandler.UpdatePrice)
		priceRoutes.DELETE("/:id", priceHandler.DeletePrice)
	}
}

// SetupDiscountRoutes sets up the tenure discount routes.
func SetupDiscountRoutes(engine *gin.Engine, discountHandler *handlers.DiscountHandler) {
	discountRoutes := engine.Group("/discounts")
	{
		discountRoutes.POST("", discountHandler.CreateDiscount)
		discountRoutes.GET("", discountHandler.GetDiscounts)
		discountRoutes.GET("/:id", discountHandler.GetDiscountByID)
		discountRoutes.PUT("/:id", discountHandler.UpdateDiscount)
		discountRoutes.DELETE("/:id", discountHandler.DeleteDiscount)
	}
}

// SetupPaymentRoutes sets up the payment routes.
func SetupPaymentRoutes(engine *gin.Engine, paymentHandler *handlers.PaymentHandler) {
	paymentRoutes := engine.Group("/payments")
	{
		paymentRoutes.POST("", paymentHandler.CreatePayment)
		paymentRoutes.GET("", paymentHandler.GetPayments)
		paymentRoutes.GET("/:id", paymentHandler.GetPaymentByID)
		paymentRoutes.PUT("/:id", paymentHandler.UpdatePayment)
		paymentRoutes.DELETE("/:id", paymentHandler.DeletePayment)
	}
}
