package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepakkumar0818/foodify/repository"
	"github.com/deepakkumar0818/foodify/utils"
)

type CartController struct {
	Users repository.UserRepo
}

func NewCartController(users repository.UserRepo) *CartController {
	return &CartController{Users: users}
}

type cartItemRequest struct {
	ItemID string `json:"itemId" binding:"required"`
}

// AddToCart increments the quantity of an item in the user's cart.
func (cc *CartController) AddToCart(c *gin.Context) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("itemId is required"))
		return
	}

	user, err := cc.Users.Get(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		respondCartErr(c, err)
		return
	}

	if user.CartData == nil {
		user.CartData = map[string]int{}
	}
	user.CartData[req.ItemID]++

	if err := cc.Users.Save(c.Request.Context(), user); err != nil {
		respondCartErr(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Added to cart", nil)
}

// RemoveFromCart decrements the quantity of an item, dropping the key at zero.
func (cc *CartController) RemoveFromCart(c *gin.Context) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("itemId is required"))
		return
	}

	user, err := cc.Users.Get(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		respondCartErr(c, err)
		return
	}

	if user.CartData[req.ItemID] > 0 {
		user.CartData[req.ItemID]--
		if user.CartData[req.ItemID] == 0 {
			delete(user.CartData, req.ItemID)
		}
	}

	if err := cc.Users.Save(c.Request.Context(), user); err != nil {
		respondCartErr(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Removed from cart", nil)
}

// GetCart returns the user's cart as an item id -> quantity map.
func (cc *CartController) GetCart(c *gin.Context) {
	user, err := cc.Users.Get(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		respondCartErr(c, err)
		return
	}

	cart := user.CartData
	if cart == nil {
		cart = map[string]int{}
	}

	utils.RespondJSON(c, http.StatusOK, "Cart data retrieved", gin.H{
		"cartData": cart,
	})
}

func respondCartErr(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return
	}
	utils.RespondError(c, http.StatusInternalServerError, err)
}
