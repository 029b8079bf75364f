package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/deepakkumar0818/foodify/events"
	"github.com/deepakkumar0818/foodify/models"
	"github.com/deepakkumar0818/foodify/repository"
	"github.com/deepakkumar0818/foodify/services"
	"github.com/deepakkumar0818/foodify/utils"
)

type TableController struct {
	Tables       repository.TableRepo
	Availability *services.AvailabilityService
}

func NewTableController(tables repository.TableRepo, availability *services.AvailabilityService) *TableController {
	return &TableController{Tables: tables, Availability: availability}
}

// AddTable creates a table. Table numbers are unique.
func (tc *TableController) AddTable(c *gin.Context) {
	var req struct {
		TableNumber     string   `json:"tableNumber" binding:"required"`
		TableName       string   `json:"tableName"`
		Capacity        int      `json:"capacity" binding:"required,min=1,max=20"`
		Location        string   `json:"location"`
		Features        []string `json:"features"`
		MinBookingHours int      `json:"minBookingHours"`
		PricePerHour    float64  `json:"pricePerHour"`
		Description     string   `json:"description"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Location != "" && !models.ValidLocation(req.Location) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid location"))
		return
	}

	table := models.Table{
		TableNumber:     req.TableNumber,
		TableName:       req.TableName,
		Capacity:        req.Capacity,
		Location:        req.Location,
		Features:        req.Features,
		MinBookingHours: req.MinBookingHours,
		PricePerHour:    req.PricePerHour,
		Description:     req.Description,
		Status:          models.TableAvailable,
		IsActive:        true,
		CreatedAt:       time.Now(),
	}
	if table.TableName == "" {
		table.TableName = "Table " + table.TableNumber
	}
	if table.Location == "" {
		table.Location = models.LocationIndoor
	}
	if table.Features == nil {
		table.Features = []string{}
	}
	if table.MinBookingHours == 0 {
		table.MinBookingHours = 1
	}

	if err := tc.Tables.Create(c.Request.Context(), &table); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			utils.RespondError(c, http.StatusConflict, errors.New("table number already exists"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.BroadcastTableCreate(table)

	utils.InfoLogger.Printf("New table added: %s (capacity=%d)", table.TableNumber, table.Capacity)
	utils.RespondJSON(c, http.StatusCreated, "Table added successfully", table)
}

// ListTables returns every table, for the admin panel.
func (tc *TableController) ListTables(c *gin.Context) {
	tables, err := tc.Tables.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// GetAvailableTables runs the availability resolver for the storefront.
// All three query params are optional.
func (tc *TableController) GetAvailableTables(c *gin.Context) {
	q := services.AvailabilityQuery{
		TimeSlot: c.Query("time"),
	}

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := parseDate(dateStr)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid date"))
			return
		}
		q.Date = &date
	}

	if guestsStr := c.Query("guests"); guestsStr != "" {
		guests, err := strconv.Atoi(guestsStr)
		if err != nil || guests < 1 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid guests"))
			return
		}
		q.Guests = guests
	}

	tables, err := tc.Availability.GetAvailableTables(c.Request.Context(), q)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Available tables", tables)
}

// UpdateTableStatus sets the floor status seen by staff.
func (tc *TableController) UpdateTableStatus(c *gin.Context) {
	var req struct {
		TableID string `json:"tableId" binding:"required"`
		Status  string `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.ValidTableStatus(req.Status) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid status"))
		return
	}

	table, err := tc.Tables.Get(c.Request.Context(), req.TableID)
	if err != nil {
		respondTableErr(c, err)
		return
	}

	table.Status = req.Status
	if err := tc.Tables.Save(c.Request.Context(), table); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.BroadcastTableUpdate(*table)

	utils.InfoLogger.Printf("Table %s status updated to: %s", table.TableNumber, table.Status)
	utils.RespondJSON(c, http.StatusOK, "Table status updated", table)
}

// UpdateTable edits table fields. Only fields present in the body change.
func (tc *TableController) UpdateTable(c *gin.Context) {
	var req struct {
		TableID         string    `json:"tableId" binding:"required"`
		TableNumber     *string   `json:"tableNumber"`
		TableName       *string   `json:"tableName"`
		Capacity        *int      `json:"capacity"`
		Location        *string   `json:"location"`
		Features        *[]string `json:"features"`
		MinBookingHours *int      `json:"minBookingHours"`
		PricePerHour    *float64  `json:"pricePerHour"`
		Description     *string   `json:"description"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Tables.Get(c.Request.Context(), req.TableID)
	if err != nil {
		respondTableErr(c, err)
		return
	}

	if req.Capacity != nil && (*req.Capacity < 1 || *req.Capacity > 20) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("capacity must be between 1 and 20"))
		return
	}
	if req.Location != nil && !models.ValidLocation(*req.Location) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid location"))
		return
	}

	if req.TableNumber != nil {
		table.TableNumber = *req.TableNumber
	}
	if req.TableName != nil {
		table.TableName = *req.TableName
	}
	if req.Capacity != nil {
		table.Capacity = *req.Capacity
	}
	if req.Location != nil {
		table.Location = *req.Location
	}
	if req.Features != nil {
		table.Features = *req.Features
	}
	if req.MinBookingHours != nil {
		table.MinBookingHours = *req.MinBookingHours
	}
	if req.PricePerHour != nil {
		table.PricePerHour = *req.PricePerHour
	}
	if req.Description != nil {
		table.Description = *req.Description
	}

	if err := tc.Tables.Save(c.Request.Context(), table); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.BroadcastTableUpdate(*table)
	utils.RespondJSON(c, http.StatusOK, "Table updated successfully", table)
}

// ToggleTableActive flips isActive. Inactive tables stay in the database but
// leave the booking candidate pool.
func (tc *TableController) ToggleTableActive(c *gin.Context) {
	var req struct {
		TableID string `json:"tableId" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Tables.Get(c.Request.Context(), req.TableID)
	if err != nil {
		respondTableErr(c, err)
		return
	}

	table.IsActive = !table.IsActive
	if err := tc.Tables.Save(c.Request.Context(), table); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.BroadcastTableUpdate(*table)

	message := "Table deactivated"
	if table.IsActive {
		message = "Table activated"
	}
	utils.RespondJSON(c, http.StatusOK, message, table)
}

// DeleteTable hard-deletes a table. Bookings that reference it keep their
// denormalized tableNumber/tableName snapshot.
func (tc *TableController) DeleteTable(c *gin.Context) {
	var req struct {
		TableID string `json:"tableId" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Tables.Get(c.Request.Context(), req.TableID)
	if err != nil {
		respondTableErr(c, err)
		return
	}

	if err := tc.Tables.Delete(c.Request.Context(), req.TableID); err != nil {
		respondTableErr(c, err)
		return
	}

	events.BroadcastTableDelete(req.TableID)

	utils.InfoLogger.Printf("Table deleted: %s", table.TableNumber)
	utils.RespondJSON(c, http.StatusOK, "Table deleted successfully", nil)
}

// GetTable returns a single table.
func (tc *TableController) GetTable(c *gin.Context) {
	table, err := tc.Tables.Get(c.Request.Context(), c.Param("tableId"))
	if err != nil {
		respondTableErr(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

func respondTableErr(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		utils.RespondError(c, http.StatusNotFound, errors.New("table not found"))
		return
	}
	utils.RespondError(c, http.StatusInternalServerError, err)
}

// parseDate accepts the storefront's plain date as well as a full timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date: %q", s)
}
