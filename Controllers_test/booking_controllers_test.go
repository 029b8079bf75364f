package Controllers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/deepakkumar0818/foodify/controllers"
	"github.com/deepakkumar0818/foodify/models"
	"github.com/deepakkumar0818/foodify/repository"
	"github.com/deepakkumar0818/foodify/services"
	"github.com/deepakkumar0818/foodify/utils"
)

func setupBookingRouter(tables *repository.MemoryTableRepo, bookings *repository.MemoryBookingRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()

	ctrl := controllers.NewBookingController(bookings, tables)
	availability := services.NewAvailabilityService(tables, bookings)
	tableCtrl := controllers.NewTableController(tables, availability)

	router := gin.New()
	router.POST("/api/booking/create", ctrl.CreateBooking)
	router.GET("/api/booking/list", ctrl.ListBookings)
	router.POST("/api/booking/status", ctrl.UpdateBookingStatus)
	router.POST("/api/booking/cancel", ctrl.CancelBooking)
	router.POST("/api/booking/user-bookings", ctrl.GetUserBookings)
	router.GET("/api/booking/check/availability", ctrl.GetBookingsByDate)
	router.GET("/api/table/available", tableCtrl.GetAvailableTables)
	return router
}

func bookingPayload(overrides map[string]interface{}) map[string]interface{} {
	payload := map[string]interface{}{
		"name":   "Asha Verma",
		"email":  "asha@example.com",
		"phone":  "9876543210",
		"date":   "2026-09-20",
		"time":   "7:00 PM",
		"guests": "4",
	}
	for k, v := range overrides {
		payload[k] = v
	}
	return payload
}

func TestCreateBookingMissingFields(t *testing.T) {
	router := setupBookingRouter(repository.NewMemoryTableRepo(), repository.NewMemoryBookingRepo())

	w := postJSON(router, "/api/booking/create", map[string]interface{}{
		"name": "Asha Verma",
		"date": "2026-09-20",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	response := decodeBody(t, w)
	assert.Equal(t, false, response["status"])
	assert.Contains(t, response["message"], "please fill all required fields")
	assert.Contains(t, response["message"], "email")
	assert.Contains(t, response["message"], "time")
}

func TestCreateBookingWithoutTable(t *testing.T) {
	bookings := repository.NewMemoryBookingRepo()
	router := setupBookingRouter(repository.NewMemoryTableRepo(), bookings)

	w := postJSON(router, "/api/booking/create", bookingPayload(nil))
	assert.Equal(t, http.StatusCreated, w.Code)

	response := decodeBody(t, w)
	assert.Equal(t, "Table booked successfully!", response["message"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, false, data["hasPreOrder"])

	stored, err := bookings.Get(context.Background(), data["bookingId"].(string))
	assert.NoError(t, err)
	assert.Equal(t, models.BookingPending, stored.Status)
	assert.Equal(t, models.PaymentPending, stored.PaymentStatus)
	assert.Nil(t, stored.TableID)
}

// The table identity is copied onto the booking so later table edits do not
// rewrite it.
func TestCreateBookingSnapshotsTable(t *testing.T) {
	tables := repository.NewMemoryTableRepo()
	bookings := repository.NewMemoryBookingRepo()
	router := setupBookingRouter(tables, bookings)

	table := seedTable(t, tables, "9", 6, models.TableAvailable, true)

	w := postJSON(router, "/api/booking/create", bookingPayload(map[string]interface{}{
		"tableId": table.ID.Hex(),
	}))
	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})

	stored, err := bookings.Get(context.Background(), data["bookingId"].(string))
	assert.NoError(t, err)
	assert.Equal(t, "9", stored.TableNumber)
	assert.Equal(t, "Table 9", stored.TableName)

	// Rename the table; the booking keeps its snapshot.
	table.TableName = "Garden Corner"
	assert.NoError(t, tables.Save(context.Background(), &table))

	stored, err = bookings.Get(context.Background(), stored.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, "Table 9", stored.TableName)
}

func TestCreateBookingWithPreOrder(t *testing.T) {
	bookings := repository.NewMemoryBookingRepo()
	router := setupBookingRouter(repository.NewMemoryTableRepo(), bookings)

	w := postJSON(router, "/api/booking/create", bookingPayload(map[string]interface{}{
		"preOrderedItems": []map[string]interface{}{
			{"itemId": "abc123", "name": "Paneer Tikka", "price": 250.0, "quantity": 2},
		},
		"preOrderTotal": 500.0,
	}))
	assert.Equal(t, http.StatusCreated, w.Code)

	response := decodeBody(t, w)
	assert.Equal(t, "Table booked with food pre-order!", response["message"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, true, data["hasPreOrder"])

	stored, err := bookings.Get(context.Background(), data["bookingId"].(string))
	assert.NoError(t, err)
	assert.True(t, stored.HasPreOrder)
	assert.Equal(t, 500.0, stored.PreOrderTotal)
	assert.Len(t, stored.PreOrderedItems, 1)
}

// An empty item list is a plain booking even if a total was sent along.
func TestCreateBookingEmptyPreOrder(t *testing.T) {
	bookings := repository.NewMemoryBookingRepo()
	router := setupBookingRouter(repository.NewMemoryTableRepo(), bookings)

	w := postJSON(router, "/api/booking/create", bookingPayload(map[string]interface{}{
		"preOrderedItems": []map[string]interface{}{},
		"preOrderTotal":   750.0,
	}))
	assert.Equal(t, http.StatusCreated, w.Code)

	response := decodeBody(t, w)
	assert.Equal(t, "Table booked successfully!", response["message"])

	data := response["data"].(map[string]interface{})
	stored, err := bookings.Get(context.Background(), data["bookingId"].(string))
	assert.NoError(t, err)
	assert.False(t, stored.HasPreOrder)
	assert.Equal(t, 0.0, stored.PreOrderTotal)
}

// Two requests for the same table and slot both succeed: creation does not
// re-check availability, it trusts the storefront's earlier query.
func TestCreateBookingDoubleBooking(t *testing.T) {
	tables := repository.NewMemoryTableRepo()
	bookings := repository.NewMemoryBookingRepo()
	router := setupBookingRouter(tables, bookings)

	table := seedTable(t, tables, "3", 4, models.TableAvailable, true)
	payload := bookingPayload(map[string]interface{}{"tableId": table.ID.Hex()})

	w := postJSON(router, "/api/booking/create", payload)
	assert.Equal(t, http.StatusCreated, w.Code)
	w = postJSON(router, "/api/booking/create", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	all, err := bookings.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	// Once either booking exists the availability endpoint stops offering
	// the table for that slot.
	w = getJSON(router, "/api/table/available?date=2026-09-20&time=7%3A00+PM&guests=2")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, availableNumbers(t, w))
}

// Booking a table removes it from availability; cancelling brings it back.
func TestCancelRestoresAvailability(t *testing.T) {
	tables := repository.NewMemoryTableRepo()
	bookings := repository.NewMemoryBookingRepo()
	router := setupBookingRouter(tables, bookings)

	seedTable(t, tables, "4", 4, models.TableAvailable, true)
	query := "/api/table/available?date=2026-09-20&time=7%3A00+PM&guests=2"

	w := getJSON(router, query)
	assert.Equal(t, []string{"4"}, availableNumbers(t, w))

	tbl, err := tables.GetByNumber(context.Background(), "4")
	assert.NoError(t, err)
	w = postJSON(router, "/api/booking/create", bookingPayload(map[string]interface{}{
		"tableId": tbl.ID.Hex(),
	}))
	assert.Equal(t, http.StatusCreated, w.Code)
	bookingID := decodeBody(t, w)["data"].(map[string]interface{})["bookingId"].(string)

	w = getJSON(router, query)
	assert.Empty(t, availableNumbers(t, w))

	w = postJSON(router, "/api/booking/cancel", map[string]string{
		"bookingId": bookingID,
		"email":     "asha@example.com",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = getJSON(router, query)
	assert.Equal(t, []string{"4"}, availableNumbers(t, w))
}

func TestUpdateBookingStatus(t *testing.T) {
	bookings := repository.NewMemoryBookingRepo()
	router := setupBookingRouter(repository.NewMemoryTableRepo(), bookings)

	booking := models.Booking{
		Name: "Asha Verma", Email: "asha@example.com", Phone: "9876543210",
		Date: time.Now(), Time: "7:00 PM", Guests: "2",
		Status: models.BookingPending, CreatedAt: time.Now(),
	}
	assert.NoError(t, bookings.Create(context.Background(), &booking))

	w := postJSON(router, "/api/booking/status", map[string]string{
		"bookingId": booking.ID.Hex(),
		"status":    models.BookingConfirmed,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	stored, err := bookings.Get(context.Background(), booking.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, stored.Status)

	w = postJSON(router, "/api/booking/status", map[string]string{
		"bookingId": booking.ID.Hex(),
		"status":    "Seated",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid status", decodeBody(t, w)["message"])
}

func TestCancelBooking(t *testing.T) {
	bookings := repository.NewMemoryBookingRepo()
	router := setupBookingRouter(repository.NewMemoryTableRepo(), bookings)

	booking := models.Booking{
		Name: "Asha Verma", Email: "asha@example.com", Phone: "9876543210",
		Date: time.Now(), Time: "7:00 PM", Guests: "2",
		Status: models.BookingConfirmed, CreatedAt: time.Now(),
	}
	assert.NoError(t, bookings.Create(context.Background(), &booking))

	w := postJSON(router, "/api/booking/cancel", map[string]string{
		"bookingId": booking.ID.Hex(),
		"email":     "asha@example.com",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Booking cancelled successfully", decodeBody(t, w)["message"])

	stored, err := bookings.Get(context.Background(), booking.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, stored.Status)

	// A second cancel hits the terminal-state guard, not a repeat cancel.
	w = postJSON(router, "/api/booking/cancel", map[string]string{
		"bookingId": booking.ID.Hex(),
		"email":     "asha@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	stored, err = bookings.Get(context.Background(), booking.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, stored.Status)
}

// Cancelling with the wrong email reads as "not found", leaking nothing
// about whether the booking exists.
func TestCancelBookingWrongEmail(t *testing.T) {
	bookings := repository.NewMemoryBookingRepo()
	router := setupBookingRouter(repository.NewMemoryTableRepo(), bookings)

	booking := models.Booking{
		Name: "Asha Verma", Email: "asha@example.com", Phone: "9876543210",
		Date: time.Now(), Time: "7:00 PM", Guests: "2",
		Status: models.BookingPending, CreatedAt: time.Now(),
	}
	assert.NoError(t, bookings.Create(context.Background(), &booking))

	w := postJSON(router, "/api/booking/cancel", map[string]string{
		"bookingId": booking.ID.Hex(),
		"email":     "someone-else@example.com",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "booking not found or unauthorized", decodeBody(t, w)["message"])

	stored, err := bookings.Get(context.Background(), booking.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, models.BookingPending, stored.Status)
}

func TestCancelCompletedBooking(t *testing.T) {
	bookings := repository.NewMemoryBookingRepo()
	router := setupBookingRouter(repository.NewMemoryTableRepo(), bookings)

	booking := models.Booking{
		Name: "Asha Verma", Email: "asha@example.com", Phone: "9876543210",
		Date: time.Now(), Time: "7:00 PM", Guests: "2",
		Status: models.BookingCompleted, CreatedAt: time.Now(),
	}
	assert.NoError(t, bookings.Create(context.Background(), &booking))

	w := postJSON(router, "/api/booking/cancel", map[string]string{
		"bookingId": booking.ID.Hex(),
		"email":     "asha@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "cannot cancel a completed booking", decodeBody(t, w)["message"])
}

func TestGetUserBookings(t *testing.T) {
	bookings := repository.NewMemoryBookingRepo()
	router := setupBookingRouter(repository.NewMemoryTableRepo(), bookings)

	for i, email := range []string{"asha@example.com", "asha@example.com", "ravi@example.com"} {
		b := models.Booking{
			Name: "Guest", Email: email, Phone: "111",
			Date: time.Now(), Time: "7:00 PM", Guests: "2",
			Status:    models.BookingPending,
			CreatedAt: time.Now().Add(time.Duration(i) * time.Minute),
		}
		assert.NoError(t, bookings.Create(context.Background(), &b))
	}

	w := postJSON(router, "/api/booking/user-bookings", map[string]string{
		"email": "asha@example.com",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].([]interface{})
	assert.Len(t, data, 2)

	w = postJSON(router, "/api/booking/user-bookings", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "email or phone is required", decodeBody(t, w)["message"])
}

func TestGetBookingsByDate(t *testing.T) {
	bookings := repository.NewMemoryBookingRepo()
	router := setupBookingRouter(repository.NewMemoryTableRepo(), bookings)

	day := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
	for _, status := range []string{models.BookingPending, models.BookingCompleted, models.BookingCancelled} {
		b := models.Booking{
			Name: "Guest", Email: "g@example.com", Phone: "111",
			Date: day, Time: "7:00 PM", Guests: "2",
			Status: status, CreatedAt: time.Now(),
		}
		assert.NoError(t, bookings.Create(context.Background(), &b))
	}

	w := getJSON(router, "/api/booking/check/availability?date=2026-09-20")
	assert.Equal(t, http.StatusOK, w.Code)
	// Cancelled bookings are dropped; Completed still shows for the day view.
	data := decodeBody(t, w)["data"].([]interface{})
	assert.Len(t, data, 2)
}
