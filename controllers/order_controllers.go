package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/deepakkumar0818/foodify/events"
	"github.com/deepakkumar0818/foodify/models"
	"github.com/deepakkumar0818/foodify/repository"
	"github.com/deepakkumar0818/foodify/services"
	"github.com/deepakkumar0818/foodify/utils"
)

type OrderController struct {
	Orders  repository.OrderRepo
	Users   repository.UserRepo
	Gateway *services.RazorpayService
}

func NewOrderController(orders repository.OrderRepo, users repository.UserRepo, gateway *services.RazorpayService) *OrderController {
	return &OrderController{Orders: orders, Users: users, Gateway: gateway}
}

type placeOrderRequest struct {
	Items   []models.OrderItem `json:"items" binding:"required,min=1"`
	Amount  float64            `json:"amount" binding:"required,gt=0"`
	Address map[string]string  `json:"address" binding:"required"`
}

// PlaceOrderCOD records a cash-on-delivery order and empties the cart.
func (oc *OrderController) PlaceOrderCOD(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order := models.Order{
		UserID:        c.GetString("userID"),
		Items:         req.Items,
		Amount:        req.Amount,
		Address:       req.Address,
		Status:        models.OrderProcessing,
		Payment:       false,
		PaymentMethod: models.PaymentMethodCOD,
		Date:          time.Now(),
	}

	if err := oc.Orders.Create(c.Request.Context(), &order); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	oc.clearCart(c, order.UserID)

	events.BroadcastOrderCreate(order)
	utils.InfoLogger.Printf("COD order %s placed by user %s", order.ID.Hex(), order.UserID)
	utils.RespondJSON(c, http.StatusCreated, "Order placed successfully", gin.H{
		"orderId": order.ID.Hex(),
	})
}

// CreateRazorpayOrder stores a pending order and opens a gateway order for it.
func (oc *OrderController) CreateRazorpayOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order := models.Order{
		UserID:        c.GetString("userID"),
		Items:         req.Items,
		Amount:        req.Amount,
		Address:       req.Address,
		Status:        models.OrderPendingPayment,
		Payment:       false,
		PaymentMethod: models.PaymentMethodRazorpay,
		Date:          time.Now(),
	}

	if err := oc.Orders.Create(c.Request.Context(), &order); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	receipt := "order_" + lastN(order.ID.Hex(), 8)
	gwOrder, err := oc.Gateway.CreateOrder(req.Amount, receipt, map[string]string{
		"orderId": order.ID.Hex(),
		"type":    "food_order",
	})
	if err != nil {
		utils.ErrorLogger.Printf("Error creating payment order for order %s: %v", order.ID.Hex(), err)
		utils.RespondError(c, http.StatusBadGateway, errors.New("payment gateway error"))
		return
	}

	order.RazorpayOrderID = gwOrder.ID
	if err := oc.Orders.Save(c.Request.Context(), &order); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Razorpay order created", gin.H{
		"orderId":         order.ID.Hex(),
		"razorpayOrderId": gwOrder.ID,
		"amount":          gwOrder.Amount,
		"currency":        gwOrder.Currency,
		"key":             oc.Gateway.KeyID(),
	})
}

// VerifyRazorpayPayment checks the checkout signature and confirms the order.
func (oc *OrderController) VerifyRazorpayPayment(c *gin.Context) {
	var req struct {
		OrderID           string `json:"orderId" binding:"required"`
		RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
		RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
		RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.Get(c.Request.Context(), req.OrderID)
	if err != nil {
		respondOrderErr(c, err)
		return
	}

	if !oc.Gateway.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		utils.ErrorLogger.Printf("Payment signature mismatch for order %s", req.OrderID)
		utils.RespondError(c, http.StatusBadRequest, errors.New("payment verification failed"))
		return
	}

	order.Payment = true
	order.Status = models.OrderProcessing
	if err := oc.Orders.Save(c.Request.Context(), order); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	oc.clearCart(c, order.UserID)

	events.BroadcastPaymentUpdate(gin.H{"orderId": order.ID.Hex(), "payment": true})
	utils.RespondJSON(c, http.StatusOK, "Payment verified successfully", nil)
}

// GetRazorpayKey exposes the public key id for the checkout widget.
func (oc *OrderController) GetRazorpayKey(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Razorpay key", gin.H{
		"key": oc.Gateway.KeyID(),
	})
}

// VerifyOrder handles the gateway redirect: success keeps the order as paid,
// anything else deletes it.
func (oc *OrderController) VerifyOrder(c *gin.Context) {
	var req struct {
		OrderID string `json:"orderId" binding:"required"`
		Success string `json:"success" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.Get(c.Request.Context(), req.OrderID)
	if err != nil {
		respondOrderErr(c, err)
		return
	}

	if req.Success == "true" {
		order.Payment = true
		if err := oc.Orders.Save(c.Request.Context(), order); err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		utils.RespondJSON(c, http.StatusOK, "Paid", nil)
		return
	}

	if err := oc.Orders.Delete(c.Request.Context(), req.OrderID); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Not Paid", nil)
}

// GetUserOrders lists orders for the authenticated user.
func (oc *OrderController) GetUserOrders(c *gin.Context) {
	orders, err := oc.Orders.ListByUser(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "User orders retrieved", orders)
}

// ListOrders returns every order for the admin panel.
func (oc *OrderController) ListOrders(c *gin.Context) {
	orders, err := oc.Orders.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Orders retrieved", orders)
}

// UpdateStatus moves an order along the delivery pipeline. Delivering a COD
// order settles its payment.
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	var req struct {
		OrderID string `json:"orderId" binding:"required"`
		Status  string `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.Get(c.Request.Context(), req.OrderID)
	if err != nil {
		respondOrderErr(c, err)
		return
	}

	order.Status = req.Status
	if order.PaymentMethod == models.PaymentMethodCOD && req.Status == models.OrderDelivered {
		order.Payment = true
	}

	if err := oc.Orders.Save(c.Request.Context(), order); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.BroadcastOrderUpdate(*order)
	utils.RespondJSON(c, http.StatusOK, "Status updated", nil)
}

// clearCart empties the user's cart after a successful checkout. A failure
// here is logged but does not fail the order.
func (oc *OrderController) clearCart(c *gin.Context, userID string) {
	user, err := oc.Users.Get(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorLogger.Printf("Error loading user %s to clear cart: %v", userID, err)
		return
	}
	user.CartData = map[string]int{}
	if err := oc.Users.Save(c.Request.Context(), user); err != nil {
		utils.ErrorLogger.Printf("Error clearing cart for user %s: %v", userID, err)
	}
}

func respondOrderErr(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}
	utils.RespondError(c, http.StatusInternalServerError, err)
}
