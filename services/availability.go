package services

import (
	"context"
	"time"

	"github.com/deepakkumar0818/foodify/models"
	"github.com/deepakkumar0818/foodify/repository"
)

// AvailabilityService resolves which tables can still be booked for a given
// date, time slot and party size.
type AvailabilityService struct {
	Tables   repository.TableRepo
	Bookings repository.BookingRepo
}

func NewAvailabilityService(tables repository.TableRepo, bookings repository.BookingRepo) *AvailabilityService {
	return &AvailabilityService{Tables: tables, Bookings: bookings}
}

// AvailabilityQuery are the optional filters from the storefront. Date and
// TimeSlot only take effect together; Guests <= 0 disables the capacity
// filter.
type AvailabilityQuery struct {
	Date     *time.Time
	TimeSlot string
	Guests   int
}

// GetAvailableTables returns the bookable tables for the query, smallest
// adequate table first.
//
// A table is held only by a Pending or Confirmed booking on the same
// calendar day with the exact same time slot string. Slot labels are never
// compared as intervals, so "7:00 PM" and "7:30 PM" do not conflict.
// Maintenance tables are never offered; occupied/reserved floor status does
// not exclude a table on its own.
//
// The read here is not serialized against booking creation: two concurrent
// requests can both see a table as free and both book it.
func (s *AvailabilityService) GetAvailableTables(ctx context.Context, q AvailabilityQuery) ([]models.Table, error) {
	tables, err := s.Tables.ListActiveByCapacity(ctx, q.Guests)
	if err != nil {
		return nil, err
	}

	booked := make(map[string]bool)
	if q.Date != nil && q.TimeSlot != "" {
		dayStart, dayEnd := DayBounds(*q.Date)
		bookings, err := s.Bookings.ListForSlot(ctx, dayStart, dayEnd, q.TimeSlot)
		if err != nil {
			return nil, err
		}
		for _, b := range bookings {
			if b.TableID != nil {
				booked[b.TableID.Hex()] = true
			}
		}
	}

	return FilterBookable(tables, booked), nil
}

// FilterBookable drops booked tables and tables under maintenance, keeping
// the input order.
func FilterBookable(tables []models.Table, booked map[string]bool) []models.Table {
	available := make([]models.Table, 0, len(tables))
	for _, t := range tables {
		if t.Status == models.TableMaintenance {
			continue
		}
		if booked[t.ID.Hex()] {
			continue
		}
		available = append(available, t)
	}
	return available
}

// DayBounds returns the inclusive [startOfDay, endOfDay] range for the
// calendar day of t, in t's location.
func DayBounds(t time.Time) (time.Time, time.Time) {
	year, month, day := t.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	end := time.Date(year, month, day, 23, 59, 59, 999_000_000, t.Location())
	return start, end
}
