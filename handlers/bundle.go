package handlers

import (
	"barbershop/services/booking"
	"barbershop/services/catalog"
	"barbershop/services/schedule"
	"barbershop/services/shop"
	"barbershop/services/user"
	"barbershop/services/workingday"
	"barbershop/utils"
)

// HandlerBundle groups every endpoint handler so routes can be registered
// from one value.
type HandlerBundle struct {
	Users user.UserService

	Auth         *AuthHandler
	Catalog      *CatalogHandler
	Booking      *BookingHandler
	Reservations *ReservationHandler
	Shop         *ShopHandler
	Admin        *AdminHandler
	Health       *utils.HealthMonitor
}

// Services are the dependencies NewHandlerBundle wires into the handlers.
type Services struct {
	Users       user.UserService
	Catalog     *catalog.Catalog
	Booking     booking.BookingService
	Board       *schedule.Board
	Shop        shop.ShopService
	WorkingDays workingday.WorkingDayService
	Health      *utils.HealthMonitor
}

func NewHandlerBundle(s Services) *HandlerBundle {
	return &HandlerBundle{
		Users:        s.Users,
		Auth:         &AuthHandler{UserService: s.Users},
		Catalog:      &CatalogHandler{Catalog: s.Catalog},
		Booking:      &BookingHandler{BookingService: s.Booking},
		Reservations: &ReservationHandler{BookingService: s.Booking, Board: s.Board},
		Shop:         &ShopHandler{ShopService: s.Shop},
		Admin: &AdminHandler{
			UserService:       s.Users,
			ShopService:       s.Shop,
			WorkingDayService: s.WorkingDays,
		},
		Health: s.Health,
	}
}
