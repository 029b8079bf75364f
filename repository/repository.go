package repository

import (
	"context"
	"errors"
	"time"

	"github.com/deepakkumar0818/foodify/models"
)

var (
	// ErrNotFound is returned when no document matches the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a uniqueness constraint is violated.
	ErrDuplicate = errors.New("record already exists")
)

type TableRepo interface {
	Create(ctx context.Context, table *models.Table) error
	Get(ctx context.Context, id string) (*models.Table, error)
	GetByNumber(ctx context.Context, number string) (*models.Table, error)
	// List returns every table sorted by table number.
	List(ctx context.Context) ([]models.Table, error)
	// ListActiveByCapacity returns active tables with capacity >= minCapacity,
	// sorted ascending by capacity. minCapacity <= 0 disables the filter.
	ListActiveByCapacity(ctx context.Context, minCapacity int) ([]models.Table, error)
	Save(ctx context.Context, table *models.Table) error
	Delete(ctx context.Context, id string) error
}

type BookingRepo interface {
	Create(ctx context.Context, booking *models.Booking) error
	Get(ctx context.Context, id string) (*models.Booking, error)
	// GetByIDAndEmail is the ownership check used for guest self-cancel.
	GetByIDAndEmail(ctx context.Context, id, email string) (*models.Booking, error)
	// List returns every booking, newest first.
	List(ctx context.Context) ([]models.Booking, error)
	// ListForSlot returns Pending/Confirmed bookings whose date falls inside
	// [dayStart, dayEnd] and whose time slot string equals slot exactly.
	ListForSlot(ctx context.Context, dayStart, dayEnd time.Time, slot string) ([]models.Booking, error)
	// ListByDay returns non-cancelled bookings for a calendar day.
	ListByDay(ctx context.Context, dayStart, dayEnd time.Time) ([]models.Booking, error)
	// ListByContact returns bookings matching email or phone, newest first.
	ListByContact(ctx context.Context, email, phone string) ([]models.Booking, error)
	Save(ctx context.Context, booking *models.Booking) error
	Delete(ctx context.Context, id string) error
}

type FoodRepo interface {
	Create(ctx context.Context, food *models.Food) error
	Get(ctx context.Context, id string) (*models.Food, error)
	List(ctx context.Context) ([]models.Food, error)
	// ListOrderable returns items that are available or have no status field
	// (legacy records predate the status column).
	ListOrderable(ctx context.Context) ([]models.Food, error)
	Save(ctx context.Context, food *models.Food) error
	Delete(ctx context.Context, id string) error
}

type OrderRepo interface {
	Create(ctx context.Context, order *models.Order) error
	Get(ctx context.Context, id string) (*models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	Save(ctx context.Context, order *models.Order) error
	Delete(ctx context.Context, id string) error
}

type UserRepo interface {
	Create(ctx context.Context, user *models.User) error
	Get(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
}
