package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/deepakkumar0818/foodify/events"
	"github.com/deepakkumar0818/foodify/models"
	"github.com/deepakkumar0818/foodify/repository"
	"github.com/deepakkumar0818/foodify/services"
	"github.com/deepakkumar0818/foodify/utils"
)

type BookingController struct {
	Bookings repository.BookingRepo
	Tables   repository.TableRepo
}

func NewBookingController(bookings repository.BookingRepo, tables repository.TableRepo) *BookingController {
	return &BookingController{Bookings: bookings, Tables: tables}
}

type createBookingRequest struct {
	Name            string                `json:"name"`
	Email           string                `json:"email"`
	Phone           string                `json:"phone"`
	Date            string                `json:"date"`
	Time            string                `json:"time"`
	Guests          string                `json:"guests"`
	TableID         string                `json:"tableId"`
	TableNumber     string                `json:"tableNumber"`
	TableName       string                `json:"tableName"`
	Occasion        string                `json:"occasion"`
	SpecialRequests string                `json:"specialRequests"`
	PreOrderedItems []models.PreOrderItem `json:"preOrderedItems"`
	PreOrderTotal   float64               `json:"preOrderTotal"`
}

// missingFields lists the required fields absent from the request.
func (r *createBookingRequest) missingFields() []string {
	var missing []string
	for field, value := range map[string]string{
		"name":   r.Name,
		"email":  r.Email,
		"phone":  r.Phone,
		"date":   r.Date,
		"time":   r.Time,
		"guests": r.Guests,
	} {
		if value == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// CreateBooking creates a reservation in Pending state, optionally carrying
// a food pre-order. The table the client picked is not re-checked for
// availability here; the storefront is expected to have just called the
// availability endpoint, and two racing requests can both get through.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if missing := req.missingFields(); len(missing) > 0 {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("please fill all required fields: %s", strings.Join(missing, ", ")))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid date"))
		return
	}

	booking := models.Booking{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Date:            date,
		Time:            req.Time,
		Guests:          req.Guests,
		TableNumber:     req.TableNumber,
		TableName:       req.TableName,
		Occasion:        req.Occasion,
		SpecialRequests: req.SpecialRequests,
		Status:          models.BookingPending,
		PreOrderedItems: req.PreOrderedItems,
		PreOrderTotal:   req.PreOrderTotal,
		HasPreOrder:     len(req.PreOrderedItems) > 0,
		PaymentStatus:   models.PaymentPending,
		CreatedAt:       time.Now(),
	}
	if booking.PreOrderedItems == nil {
		booking.PreOrderedItems = []models.PreOrderItem{}
	}
	if !booking.HasPreOrder {
		booking.PreOrderTotal = 0
	}

	if req.TableID != "" {
		table, err := bc.Tables.Get(c.Request.Context(), req.TableID)
		if err != nil {
			respondTableErr(c, err)
			return
		}
		booking.TableID = &table.ID
		// Snapshot the table identity so later edits or deletion of the
		// table leave the booking record intact.
		if booking.TableNumber == "" {
			booking.TableNumber = table.TableNumber
		}
		if booking.TableName == "" {
			booking.TableName = table.TableName
		}
	}

	if err := bc.Bookings.Create(c.Request.Context(), &booking); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.BroadcastBookingCreate(booking)

	message := "Table booked successfully!"
	if booking.HasPreOrder {
		message = "Table booked with food pre-order!"
	}

	utils.InfoLogger.Printf("New booking created: %s table=%s preOrderItems=%d",
		booking.ID.Hex(), booking.TableNumber, len(booking.PreOrderedItems))
	utils.RespondJSON(c, http.StatusCreated, message, gin.H{
		"bookingId":   booking.ID.Hex(),
		"hasPreOrder": booking.HasPreOrder,
		"tableNumber": booking.TableNumber,
	})
}

// ListBookings returns every booking, newest first, for the admin panel.
func (bc *BookingController) ListBookings(c *gin.Context) {
	bookings, err := bc.Bookings.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of bookings", bookings)
}

// UpdateBookingStatus overwrites the status with any of the four values.
// There is no transition graph; staff can move a booking backwards.
func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	var req struct {
		BookingID string `json:"bookingId" binding:"required"`
		Status    string `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.ValidBookingStatus(req.Status) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid status"))
		return
	}

	booking, err := bc.Bookings.Get(c.Request.Context(), req.BookingID)
	if err != nil {
		respondBookingErr(c, err)
		return
	}

	booking.Status = req.Status
	if err := bc.Bookings.Save(c.Request.Context(), booking); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.BroadcastBookingUpdate(*booking)

	utils.InfoLogger.Printf("Booking status updated: %s -> %s", req.BookingID, req.Status)
	utils.RespondJSON(c, http.StatusOK, "Booking status updated", booking)
}

// CancelBooking is the guest self-cancel. The id+email pair stands in for
// authentication; a wrong email reads the same as a missing booking.
func (bc *BookingController) CancelBooking(c *gin.Context) {
	var req struct {
		BookingID string `json:"bookingId" binding:"required"`
		Email     string `json:"email" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	booking, err := bc.Bookings.GetByIDAndEmail(c.Request.Context(), req.BookingID, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("booking not found or unauthorized"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if booking.Status == models.BookingCompleted || booking.Status == models.BookingCancelled {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("cannot cancel a %s booking", strings.ToLower(booking.Status)))
		return
	}

	booking.Status = models.BookingCancelled
	if err := bc.Bookings.Save(c.Request.Context(), booking); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.BroadcastBookingUpdate(*booking)

	utils.InfoLogger.Printf("Booking cancelled by user: %s", req.BookingID)
	utils.RespondJSON(c, http.StatusOK, "Booking cancelled successfully", nil)
}

// GetUserBookings looks up bookings by email or phone, for the "my
// bookings" page. Guests have no accounts, so contact info is the key.
func (bc *BookingController) GetUserBookings(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
		Phone string `json:"phone"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Email == "" && req.Phone == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("email or phone is required"))
		return
	}

	bookings, err := bc.Bookings.ListByContact(c.Request.Context(), req.Email, req.Phone)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "User bookings", bookings)
}

// GetBookingsByDate returns the non-cancelled bookings for a calendar day.
func (bc *BookingController) GetBookingsByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("date is required"))
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid date"))
		return
	}

	dayStart, dayEnd := services.DayBounds(date)

	bookings, err := bc.Bookings.ListByDay(c.Request.Context(), dayStart, dayEnd)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Bookings for date", bookings)
}

// DeleteBooking hard-deletes a booking, for the admin panel.
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	var req struct {
		BookingID string `json:"bookingId" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := bc.Bookings.Delete(c.Request.Context(), req.BookingID); err != nil {
		respondBookingErr(c, err)
		return
	}

	utils.InfoLogger.Printf("Booking deleted: %s", req.BookingID)
	utils.RespondJSON(c, http.StatusOK, "Booking deleted successfully", nil)
}

// GetBooking returns a single booking.
func (bc *BookingController) GetBooking(c *gin.Context) {
	booking, err := bc.Bookings.Get(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		respondBookingErr(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Booking detail", booking)
}

func respondBookingErr(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		utils.RespondError(c, http.StatusNotFound, errors.New("booking not found"))
		return
	}
	utils.RespondError(c, http.StatusInternalServerError, err)
}
