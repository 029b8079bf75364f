package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/deepakkumar0818/foodify/models"
)

func TestMemoryBookingRepoListForSlot(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()

	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	dayStart := day
	dayEnd := time.Date(2026, 9, 15, 23, 59, 59, 999_000_000, time.UTC)

	seed := []models.Booking{
		{Email: "a@x.com", Date: day.Add(19 * time.Hour), Time: "7:00 PM", Status: models.BookingPending},
		{Email: "b@x.com", Date: day.Add(19 * time.Hour), Time: "7:00 PM", Status: models.BookingConfirmed},
		{Email: "c@x.com", Date: day.Add(19 * time.Hour), Time: "7:00 PM", Status: models.BookingCancelled},
		{Email: "d@x.com", Date: day.Add(19 * time.Hour), Time: "8:00 PM", Status: models.BookingPending},
		{Email: "e@x.com", Date: day.AddDate(0, 0, 1), Time: "7:00 PM", Status: models.BookingPending},
	}
	for i := range seed {
		assert.NoError(t, repo.Create(ctx, &seed[i]))
	}

	got, err := repo.ListForSlot(ctx, dayStart, dayEnd, "7:00 PM")
	assert.NoError(t, err)
	// Only the Pending and Confirmed bookings on the day with the exact
	// slot string count.
	assert.Len(t, got, 2)
	for _, b := range got {
		assert.True(t, b.Blocks())
		assert.Equal(t, "7:00 PM", b.Time)
	}
}

// The day bounds are inclusive at both ends.
func TestMemoryBookingRepoListForSlotBoundaries(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()

	dayStart := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	dayEnd := time.Date(2026, 9, 15, 23, 59, 59, 999_000_000, time.UTC)

	atStart := models.Booking{Email: "a@x.com", Date: dayStart, Time: "noon", Status: models.BookingPending}
	atEnd := models.Booking{Email: "b@x.com", Date: dayEnd, Time: "noon", Status: models.BookingPending}
	assert.NoError(t, repo.Create(ctx, &atStart))
	assert.NoError(t, repo.Create(ctx, &atEnd))

	got, err := repo.ListForSlot(ctx, dayStart, dayEnd, "noon")
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestMemoryBookingRepoGetByIDAndEmail(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()

	booking := models.Booking{Email: "asha@example.com", Status: models.BookingPending}
	assert.NoError(t, repo.Create(ctx, &booking))

	got, err := repo.GetByIDAndEmail(ctx, booking.ID.Hex(), "asha@example.com")
	assert.NoError(t, err)
	assert.Equal(t, booking.ID, got.ID)

	_, err = repo.GetByIDAndEmail(ctx, booking.ID.Hex(), "other@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryBookingRepoListByContact(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()

	older := models.Booking{Email: "asha@example.com", Phone: "111", CreatedAt: time.Now().Add(-time.Hour)}
	newer := models.Booking{Email: "asha@example.com", Phone: "111", CreatedAt: time.Now()}
	byPhone := models.Booking{Email: "other@example.com", Phone: "111", CreatedAt: time.Now().Add(-2 * time.Hour)}
	assert.NoError(t, repo.Create(ctx, &older))
	assert.NoError(t, repo.Create(ctx, &newer))
	assert.NoError(t, repo.Create(ctx, &byPhone))

	got, err := repo.ListByContact(ctx, "asha@example.com", "")
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, newer.ID, got[0].ID)

	got, err = repo.ListByContact(ctx, "", "111")
	assert.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestMemoryTableRepoDuplicateNumber(t *testing.T) {
	repo := NewMemoryTableRepo()
	ctx := context.Background()

	first := models.Table{TableNumber: "7", Capacity: 4}
	assert.NoError(t, repo.Create(ctx, &first))

	dup := models.Table{TableNumber: "7", Capacity: 2}
	assert.ErrorIs(t, repo.Create(ctx, &dup), ErrDuplicate)
}

func TestMemoryUserRepoDuplicateEmail(t *testing.T) {
	repo := NewMemoryUserRepo()
	ctx := context.Background()

	first := models.User{Email: "asha@example.com"}
	assert.NoError(t, repo.Create(ctx, &first))

	dup := models.User{Email: "asha@example.com"}
	assert.ErrorIs(t, repo.Create(ctx, &dup), ErrDuplicate)
}
