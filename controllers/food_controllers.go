package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/deepakkumar0818/foodify/models"
	"github.com/deepakkumar0818/foodify/repository"
	"github.com/deepakkumar0818/foodify/utils"
)

type FoodController struct {
	Foods repository.FoodRepo
	// UploadDir holds menu images on local disk; BaseURL prefixes the
	// public image URLs stored on the records.
	UploadDir string
	BaseURL   string
}

func NewFoodController(foods repository.FoodRepo, uploadDir, baseURL string) *FoodController {
	return &FoodController{Foods: foods, UploadDir: uploadDir, BaseURL: baseURL}
}

// AddFood creates a menu item from a multipart form with an image file.
func (fc *FoodController) AddFood(c *gin.Context) {
	name := c.PostForm("name")
	description := c.PostForm("description")
	category := c.PostForm("category")
	priceStr := c.PostForm("price")

	if name == "" || category == "" || priceStr == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("name, price and category are required"))
		return
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price < 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid price"))
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("image is required"))
		return
	}

	if err := os.MkdirAll(fc.UploadDir, 0o755); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("error creating upload directory"))
		return
	}

	filename := uuid.New().String() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(fc.UploadDir, filename)); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("error saving image"))
		return
	}

	food := models.Food{
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		Image:       fmt.Sprintf("%s/images/%s", fc.BaseURL, filename),
		Status:      models.FoodAvailable,
	}

	if err := fc.Foods.Create(c.Request.Context(), &food); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Food added: %s (%s)", food.Name, food.Category)
	utils.RespondJSON(c, http.StatusCreated, "Food added successfully", food)
}

// ListFood returns every item, including unavailable ones, for the admin
// panel.
func (fc *FoodController) ListFood(c *gin.Context) {
	foods, err := fc.Foods.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of foods", foods)
}

// ListAvailableFood returns orderable items for the storefront menu.
func (fc *FoodController) ListAvailableFood(c *gin.Context) {
	foods, err := fc.Foods.ListOrderable(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Available foods", foods)
}

// RemoveFood hard-deletes a menu item. Pre-order and order snapshots keep
// their copied name/price/image.
func (fc *FoodController) RemoveFood(c *gin.Context) {
	var req struct {
		ID string `json:"id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := fc.Foods.Delete(c.Request.Context(), req.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("food item not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Food removed successfully", nil)
}

// UpdateFoodStatus flips an item between available/unavailable/out_of_stock.
func (fc *FoodController) UpdateFoodStatus(c *gin.Context) {
	var req struct {
		ID     string `json:"id" binding:"required"`
		Status string `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.ValidFoodStatus(req.Status) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid status"))
		return
	}

	food, err := fc.Foods.Get(c.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("food item not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	food.Status = req.Status
	if err := fc.Foods.Save(c.Request.Context(), food); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Food %q status updated to: %s", food.Name, food.Status)
	utils.RespondJSON(c, http.StatusOK, "Status updated successfully", food)
}
