package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/deepakkumar0818/foodify/models"
)

// In-memory implementations backed by maps. They mirror the query semantics
// of the Mongo repos and back the test suite, where spinning up a real
// document store is not worth the cost.

type MemoryTableRepo struct {
	mu     sync.RWMutex
	tables map[string]models.Table
}

func NewMemoryTableRepo() *MemoryTableRepo {
	return &MemoryTableRepo{tables: make(map[string]models.Table)}
}

func (r *MemoryTableRepo) Create(ctx context.Context, table *models.Table) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.tables {
		if t.TableNumber == table.TableNumber {
			return ErrDuplicate
		}
	}

	if table.ID.IsZero() {
		table.ID = primitive.NewObjectID()
	}
	r.tables[table.ID.Hex()] = *table
	return nil
}

func (r *MemoryTableRepo) Get(ctx context.Context, id string) (*models.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	table, ok := r.tables[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &table, nil
}

func (r *MemoryTableRepo) GetByNumber(ctx context.Context, number string) (*models.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.tables {
		if t.TableNumber == number {
			table := t
			return &table, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryTableRepo) List(ctx context.Context) ([]models.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tables := make([]models.Table, 0, len(r.tables))
	for _, t := range r.tables {
		tables = append(tables, t)
	}
	sort.Slice(tables, func(i, j int) bool {
		return tables[i].TableNumber < tables[j].TableNumber
	})
	return tables, nil
}

func (r *MemoryTableRepo) ListActiveByCapacity(ctx context.Context, minCapacity int) ([]models.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var tables []models.Table
	for _, t := range r.tables {
		if !t.IsActive {
			continue
		}
		if minCapacity > 0 && t.Capacity < minCapacity {
			continue
		}
		tables = append(tables, t)
	}
	sort.Slice(tables, func(i, j int) bool {
		return tables[i].Capacity < tables[j].Capacity
	})
	return tables, nil
}

func (r *MemoryTableRepo) Save(ctx context.Context, table *models.Table) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tables[table.ID.Hex()]; !ok {
		return ErrNotFound
	}
	r.tables[table.ID.Hex()] = *table
	return nil
}

func (r *MemoryTableRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tables[id]; !ok {
		return ErrNotFound
	}
	delete(r.tables, id)
	return nil
}

type MemoryBookingRepo struct {
	mu       sync.RWMutex
	bookings map[string]models.Booking
}

func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *MemoryBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	r.bookings[booking.ID.Hex()] = *booking
	return nil
}

func (r *MemoryBookingRepo) Get(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &booking, nil
}

func (r *MemoryBookingRepo) GetByIDAndEmail(ctx context.Context, id, email string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	if !ok || booking.Email != email {
		return nil, ErrNotFound
	}
	return &booking, nil
}

func (r *MemoryBookingRepo) List(ctx context.Context) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bookings := make([]models.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		bookings = append(bookings, b)
	}
	sortNewestFirst(bookings)
	return bookings, nil
}

func (r *MemoryBookingRepo) ListForSlot(ctx context.Context, dayStart, dayEnd time.Time, slot string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var bookings []models.Booking
	for _, b := range r.bookings {
		if b.Date.Before(dayStart) || b.Date.After(dayEnd) {
			continue
		}
		if b.Time != slot || !b.Blocks() {
			continue
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (r *MemoryBookingRepo) ListByDay(ctx context.Context, dayStart, dayEnd time.Time) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var bookings []models.Booking
	for _, b := range r.bookings {
		if b.Date.Before(dayStart) || b.Date.After(dayEnd) {
			continue
		}
		if b.Status == models.BookingCancelled {
			continue
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (r *MemoryBookingRepo) ListByContact(ctx context.Context, email, phone string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var bookings []models.Booking
	for _, b := range r.bookings {
		if (email != "" && b.Email == email) || (phone != "" && b.Phone == phone) {
			bookings = append(bookings, b)
		}
	}
	sortNewestFirst(bookings)
	return bookings, nil
}

func (r *MemoryBookingRepo) Save(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[booking.ID.Hex()]; !ok {
		return ErrNotFound
	}
	r.bookings[booking.ID.Hex()] = *booking
	return nil
}

func (r *MemoryBookingRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[id]; !ok {
		return ErrNotFound
	}
	delete(r.bookings, id)
	return nil
}

func sortNewestFirst(bookings []models.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
}

type MemoryFoodRepo struct {
	mu    sync.RWMutex
	foods map[string]models.Food
}

func NewMemoryFoodRepo() *MemoryFoodRepo {
	return &MemoryFoodRepo{foods: make(map[string]models.Food)}
}

func (r *MemoryFoodRepo) Create(ctx context.Context, food *models.Food) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if food.ID.IsZero() {
		food.ID = primitive.NewObjectID()
	}
	r.foods[food.ID.Hex()] = *food
	return nil
}

func (r *MemoryFoodRepo) Get(ctx context.Context, id string) (*models.Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	food, ok := r.foods[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &food, nil
}

func (r *MemoryFoodRepo) List(ctx context.Context) ([]models.Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	foods := make([]models.Food, 0, len(r.foods))
	for _, f := range r.foods {
		foods = append(foods, f)
	}
	return foods, nil
}

func (r *MemoryFoodRepo) ListOrderable(ctx context.Context) ([]models.Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var foods []models.Food
	for _, f := range r.foods {
		if f.Orderable() {
			foods = append(foods, f)
		}
	}
	return foods, nil
}

func (r *MemoryFoodRepo) Save(ctx context.Context, food *models.Food) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.foods[food.ID.Hex()]; !ok {
		return ErrNotFound
	}
	r.foods[food.ID.Hex()] = *food
	return nil
}

func (r *MemoryFoodRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.foods[id]; !ok {
		return ErrNotFound
	}
	delete(r.foods, id)
	return nil
}

type MemoryOrderRepo struct {
	mu     sync.RWMutex
	orders map[string]models.Order
}

func NewMemoryOrderRepo() *MemoryOrderRepo {
	return &MemoryOrderRepo{orders: make(map[string]models.Order)}
}

func (r *MemoryOrderRepo) Create(ctx context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	r.orders[order.ID.Hex()] = *order
	return nil
}

func (r *MemoryOrderRepo) Get(ctx context.Context, id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &order, nil
}

func (r *MemoryOrderRepo) List(ctx context.Context) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]models.Order, 0, len(r.orders))
	for _, o := range r.orders {
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].Date.After(orders[j].Date)
	})
	return orders, nil
}

func (r *MemoryOrderRepo) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orders []models.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].Date.After(orders[j].Date)
	})
	return orders, nil
}

func (r *MemoryOrderRepo) Save(ctx context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[order.ID.Hex()]; !ok {
		return ErrNotFound
	}
	r.orders[order.ID.Hex()] = *order
	return nil
}

func (r *MemoryOrderRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id]; !ok {
		return ErrNotFound
	}
	delete(r.orders, id)
	return nil
}

type MemoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: make(map[string]models.User)}
}

func (r *MemoryUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return ErrDuplicate
		}
	}

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID.Hex()] = *user
	return nil
}

func (r *MemoryUserRepo) Get(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (r *MemoryUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepo) Save(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID.Hex()]; !ok {
		return ErrNotFound
	}
	r.users[user.ID.Hex()] = *user
	return nil
}
