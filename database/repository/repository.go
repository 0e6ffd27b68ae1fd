package repository

import (
	reservationRepo "barbershop/database/repository/reservation"
	sessionRepo "barbershop/database/repository/session"
	shopRepo "barbershop/database/repository/shop"
	userRepo "barbershop/database/repository/user"
	workingDayRepo "barbershop/database/repository/workingday"
	"barbershop/database/store"
)

// Re-export the repository interfaces and constructors.
type UserRepository = userRepo.UserRepository

var NewStoreUserRepo = userRepo.NewStoreUserRepo

type ReservationRepository = reservationRepo.ReservationRepository

var NewStoreReservationRepo = reservationRepo.NewStoreReservationRepo

type ShopRepository = shopRepo.ShopRepository

var NewStoreShopRepo = shopRepo.NewStoreShopRepo

type WorkingDayRepository = workingDayRepo.WorkingDayRepository

var NewStoreWorkingDayRepo = workingDayRepo.NewStoreWorkingDayRepo

type SessionStore = sessionRepo.SessionStore

// Repositories groups every repository built over one store.
type Repositories struct {
	Users        UserRepository
	Reservations ReservationRepository
	Shop         ShopRepository
	WorkingDays  WorkingDayRepository
}

// New builds all repositories over s.
func New(s store.Store) *Repositories {
	return &Repositories{
		Users:        NewStoreUserRepo(s),
		Reservations: NewStoreReservationRepo(s),
		Shop:         NewStoreShopRepo(s),
		WorkingDays:  NewStoreWorkingDayRepo(s),
	}
}
