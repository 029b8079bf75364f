package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepakkumar0818/foodify/events"
	"github.com/deepakkumar0818/foodify/models"
	"github.com/deepakkumar0818/foodify/repository"
	"github.com/deepakkumar0818/foodify/services"
	"github.com/deepakkumar0818/foodify/utils"
)

// BookingPaymentController handles the Razorpay pass-through for booking
// pre-orders: create a gateway order, verify the signed confirmation.
type BookingPaymentController struct {
	Bookings repository.BookingRepo
	Gateway  *services.RazorpayService
}

func NewBookingPaymentController(bookings repository.BookingRepo, gateway *services.RazorpayService) *BookingPaymentController {
	return &BookingPaymentController{Bookings: bookings, Gateway: gateway}
}

// GetRazorpayKey exposes the public key id for the checkout widget.
func (pc *BookingPaymentController) GetRazorpayKey(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Razorpay key", gin.H{
		"key": pc.Gateway.KeyID(),
	})
}

// CreatePreOrderPayment creates a gateway order for a booking's pre-order
// total and stores the order handle on the booking. A failed gateway call is
// reported once; the booking stays as it was.
func (pc *BookingPaymentController) CreatePreOrderPayment(c *gin.Context) {
	var req struct {
		BookingID string  `json:"bookingId" binding:"required"`
		Amount    float64 `json:"amount" binding:"required,gt=0"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	booking, err := pc.Bookings.Get(c.Request.Context(), req.BookingID)
	if err != nil {
		respondBookingErr(c, err)
		return
	}

	receipt := "booking_" + lastN(req.BookingID, 8)
	order, err := pc.Gateway.CreateOrder(req.Amount, receipt, map[string]string{
		"bookingId": req.BookingID,
		"type":      "pre_order_payment",
	})
	if err != nil {
		utils.ErrorLogger.Printf("Error creating payment order for booking %s: %v", req.BookingID, err)
		utils.RespondError(c, http.StatusBadGateway, errors.New("payment gateway error"))
		return
	}

	booking.RazorpayOrderID = order.ID
	if err := pc.Bookings.Save(c.Request.Context(), booking); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Razorpay order created: %s for booking %s", order.ID, req.BookingID)
	utils.RespondJSON(c, http.StatusOK, "Payment order created", gin.H{
		"order": order,
		"key":   pc.Gateway.KeyID(),
	})
}

// VerifyPreOrderPayment checks the signed checkout confirmation and records
// the payment outcome on the booking. Only the signature is checked; the
// amount is covered by the gateway's own order id.
func (pc *BookingPaymentController) VerifyPreOrderPayment(c *gin.Context) {
	var req struct {
		RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
		RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
		RazorpaySignature string `json:"razorpay_signature" binding:"required"`
		BookingID         string `json:"bookingId" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	booking, err := pc.Bookings.Get(c.Request.Context(), req.BookingID)
	if err != nil {
		respondBookingErr(c, err)
		return
	}

	if !pc.Gateway.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		booking.PaymentStatus = models.PaymentFailed
		if err := pc.Bookings.Save(c.Request.Context(), booking); err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}

		utils.InfoLogger.Printf("Payment verification failed for booking: %s", req.BookingID)
		utils.RespondError(c, http.StatusBadRequest, errors.New("payment verification failed"))
		return
	}

	booking.PreOrderPayment = true
	booking.PaymentID = req.RazorpayPaymentID
	booking.PaymentStatus = models.PaymentPaid
	if err := pc.Bookings.Save(c.Request.Context(), booking); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.BroadcastPaymentUpdate(gin.H{
		"bookingId":     req.BookingID,
		"paymentId":     req.RazorpayPaymentID,
		"paymentStatus": models.PaymentPaid,
	})

	utils.InfoLogger.Printf("Payment verified for booking: %s", req.BookingID)
	utils.RespondJSON(c, http.StatusOK, "Payment successful", gin.H{
		"paymentId": req.RazorpayPaymentID,
	})
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
