package routes

import (
	"skilllink/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBookings = "/bookings"
	PathLedger   = "/ledger"
	PathCalendar = "/calendar"
	PathProfile  = "/profile"
)

func addBookingRoutes(rg *gin.RouterGroup, bookingHandler *handlers.BookingHandler) {
	bookings := rg.Group(PathBookings)
	{
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.GET("", bookingHandler.ListBookings)
		bookings.PATCH("/:booking_id/accept", bookingHandler.AcceptBooking)
		bookings.PATCH("/:booking_id/reject", bookingHandler.RejectBooking)
	}
}

func addLedgerRoutes(rg *gin.RouterGroup, ledgerHandler *handlers.LedgerHandler) {
	rg.GET(PathLedger+"/weekly", ledgerHandler.WeeklyLedger)
	rg.GET(PathCalendar+"/events", ledgerHandler.CalendarEvents)
}

func addProfileRoutes(rg *gin.RouterGroup, clientHandler *handlers.ClientHandler) {
	profile := rg.Group(PathProfile)
	{
		profile.GET("", clientHandler.GetProfile)
		profile.PUT("", clientHandler.UpdateProfile)
	}
}
