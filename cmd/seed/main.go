// Command seed fills the database with demo data: a workshop, a few
// mechanics, and a week of bookings placed into non-overlapping slots.
package main

import (
	"context"
	"fmt"
	"time"

	"crew/config"
	"crew/helper"
	"crew/infras/otel"
	"crew/infras/sqlite"
	bookingModel "crew/internal/domains/booking/model"
	customerModel "crew/internal/domains/customer/model"
	eventModel "crew/internal/domains/event/model"
	mechanicModel "crew/internal/domains/mechanic/model"
	workshopModel "crew/internal/domains/workshop/model"
	"crew/internal/domains/schedule"
	"crew/internal/state"
	"crew/shared/constant"
	"crew/shared/logger"
	"crew/shared/timezone"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	seedDays            = 5
	seedBookingsPerDay  = 3
	seedUnplannedCount  = 4
	seedMechanicCount   = 3
	maxPlacementRetries = 20
)

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	if err := helper.Up(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	db := sqlite.New(cfg)
	store := state.New(db, otel.New(cfg))

	st := buildDemoState()

	if err := store.Save(context.Background(), st); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed demo data")
	}

	log.Info().
		Int("mechanics", len(st.Mechanics)).
		Int("customers", len(st.Customers)).
		Int("bookings", len(st.Bookings)).
		Msg("Demo data seeded")
}

func buildDemoState() state.AppState {
	now := timezone.Now()

	st := state.Default()

	workshop := workshopModel.Workshop{
		ID:        uuid.NewString(),
		Name:      gofakeit.Company() + " Verkstad",
		Icon:      "wrench",
		CreatedAt: now,
	}
	st.Workshop = &workshop

	for i := 0; i < seedMechanicCount; i++ {
		st.Mechanics = append(st.Mechanics, mechanicModel.Mechanic{
			ID:          uuid.NewString(),
			Name:        gofakeit.FirstName(),
			LoginMethod: mechanicModel.LoginMethodPIN,
			Credential:  fmt.Sprintf("%04d", gofakeit.Number(0, 9999)),
			CreatedAt:   now,
		})
	}

	actions := []string{"Service", "Däckbyte", "Bromsbyte", "Besiktning", "Felsökning"}

	// Scheduled bookings, placed one day at a time so every slot passes the
	// same validation the API applies.
	for day := 0; day < seedDays; day++ {
		date := now.AddDate(0, 0, day).Format(constant.DayFormat)

		for i := 0; i < seedBookingsPerDay; i++ {
			booking := demoBooking(&st, actions, now)

			if placed, ok := place(booking, date, st.Bookings); ok {
				st.Bookings = append(st.Bookings, placed)
			}
		}
	}

	for i := 0; i < seedUnplannedCount; i++ {
		st.Bookings = append(st.Bookings, demoBooking(&st, actions, now))
	}

	st.WeeklyEvents = append(st.WeeklyEvents, eventModel.WeeklyEvent{
		ID:       uuid.NewString(),
		Title:    "Lunch",
		FromHour: 12,
		ToHour:   13,
	})

	st.SelectedWorkday = now.Format(constant.DayFormat)

	return st
}

func demoBooking(st *state.AppState, actions []string, now time.Time) bookingModel.Booking {
	customer := customerModel.Customer{
		ID:    uuid.NewString(),
		Name:  gofakeit.Name(),
		Phone: gofakeit.Phone(),
	}
	st.Customers = append(st.Customers, customer)

	return bookingModel.Booking{
		ID:            uuid.NewString(),
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		CustomerPhone: customer.Phone,
		VehicleType:   bookingModel.DefaultVehicleTypes[gofakeit.Number(0, len(bookingModel.DefaultVehicleTypes)-1)],
		Action:        actions[gofakeit.Number(0, len(actions)-1)],
		DurationHours: gofakeit.Number(1, 3),
		Status:        bookingModel.StatusUnplanned,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// place tries random slots until the booking fits on the given day.
func place(booking bookingModel.Booking, date string, existing []bookingModel.Booking) (bookingModel.Booking, bool) {
	sameDay := make([]bookingModel.Booking, 0)

	for _, b := range existing {
		if b.ScheduledDate == date {
			sameDay = append(sameDay, b)
		}
	}

	for attempt := 0; attempt < maxPlacementRetries; attempt++ {
		start := gofakeit.Number(schedule.FirstBookableHour, schedule.LastBookableHour)

		if result := schedule.Check(start, booking.DurationHours, sameDay, ""); result.Valid {
			booking.ScheduledDate = date
			booking.ScheduledStartHour = start
			booking.Status = bookingModel.StatusPlanned

			return booking, true
		}
	}

	return booking, false
}
