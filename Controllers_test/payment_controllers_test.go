package Controllers_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

const testKeySecret = "test_secret"

func newTestGateway(baseURL string) *services.RazorpayService {
	return services.NewRazorpayService(&services.RazorpayConfig{
		KeyID:     "rzp_test_key",
		KeySecret: testKeySecret,
		BaseURL:   baseURL,
	})
}

func signPayment(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testKeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func setupPaymentRouter(bookings *repository.MemoryBookingRepo, gateway *services.RazorpayService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()

	ctrl := controllers.NewBookingPaymentController(bookings, gateway)

	router := gin.New()
	router.GET("/api/booking/payment/key", ctrl.GetRazorpayKey)
	router.POST("/api/booking/payment/create", ctrl.CreatePreOrderPayment)
	router.POST("/api/booking/payment/verify", ctrl.VerifyPreOrderPayment)
	return router
}

func seedPreOrderBooking(t *testing.T, bookings *repository.MemoryBookingRepo) models.Booking {
	t.Helper()
	booking := models.Booking{
		Name: "Asha Verma", Email: "asha@example.com", Phone: "9876543210",
		Date: time.Now(), Time: "7:00 PM", Guests: "2",
		Status: models.BookingPending,
		PreOrderedItems: []models.PreOrderItem{
			{ItemID: "f1", Name: "Paneer Tikka", Price: 250, Quantity: 2},
		},
		PreOrderTotal: 500,
		HasPreOrder:   true,
		PaymentStatus: models.PaymentPending,
		CreatedAt:     time.Now(),
	}
	assert.NoError(t, bookings.Create(context.Background(), &booking))
	return booking
}

func TestGetRazorpayKey(t *testing.T) {
	router := setupPaymentRouter(repository.NewMemoryBookingRepo(), newTestGateway(""))

	w := getJSON(router, "/api/booking/payment/key")
	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "rzp_test_key", data["key"])
}

func TestCreatePreOrderPayment(t *testing.T) {
	var gotPayload map[string]interface{}
	gw := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/orders", r.URL.Path)
		user, _, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		json.NewEncoder(rw).Encode(map[string]interface{}{
			"id": "order_xyz", "amount": gotPayload["amount"],
			"currency": "INR", "status": "created",
		})
	}))
	defer gw.Close()

	bookings := repository.NewMemoryBookingRepo()
	booking := seedPreOrderBooking(t, bookings)
	router := setupPaymentRouter(bookings, newTestGateway(gw.URL))

	w := postJSON(router, "/api/booking/payment/create", map[string]interface{}{
		"bookingId": booking.ID.Hex(),
		"amount":    500.0,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Payment order created", decodeBody(t, w)["message"])

	// Rupees arrive at the gateway as paise, with the booking stamped into
	// the receipt and notes.
	assert.Equal(t, 50000.0, gotPayload["amount"])
	id := booking.ID.Hex()
	assert.Equal(t, "booking_"+id[len(id)-8:], gotPayload["receipt"])
	notes := gotPayload["notes"].(map[string]interface{})
	assert.Equal(t, id, notes["bookingId"])
	assert.Equal(t, "pre_order_payment", notes["type"])

	stored, err := bookings.Get(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, "order_xyz", stored.RazorpayOrderID)
}

func TestCreatePreOrderPaymentGatewayDown(t *testing.T) {
	gw := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusInternalServerError)
	}))
	defer gw.Close()

	bookings := repository.NewMemoryBookingRepo()
	booking := seedPreOrderBooking(t, bookings)
	router := setupPaymentRouter(bookings, newTestGateway(gw.URL))

	w := postJSON(router, "/api/booking/payment/create", map[string]interface{}{
		"bookingId": booking.ID.Hex(),
		"amount":    500.0,
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "payment gateway error", decodeBody(t, w)["message"])

	// No retry, no state change: the booking is exactly as it was.
	stored, err := bookings.Get(context.Background(), booking.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentPending, stored.PaymentStatus)
	assert.Empty(t, stored.RazorpayOrderID)
}

func TestVerifyPreOrderPayment(t *testing.T) {
	bookings := repository.NewMemoryBookingRepo()
	booking := seedPreOrderBooking(t, bookings)
	router := setupPaymentRouter(bookings, newTestGateway(""))

	w := postJSON(router, "/api/booking/payment/verify", map[string]string{
		"bookingId":           booking.ID.Hex(),
		"razorpay_order_id":   "order_xyz",
		"razorpay_payment_id": "pay_123",
		"razorpay_signature":  signPayment("order_xyz", "pay_123"),
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Payment successful", decodeBody(t, w)["message"])

	stored, err := bookings.Get(context.Background(), booking.ID.Hex())
	assert.NoError(t, err)
	assert.True(t, stored.PreOrderPayment)
	assert.Equal(t, "pay_123", stored.PaymentID)
	assert.Equal(t, models.PaymentPaid, stored.PaymentStatus)
}

func TestVerifyPreOrderPaymentBadSignature(t *testing.T) {
	bookings := repository.NewMemoryBookingRepo()
	booking := seedPreOrderBooking(t, bookings)
	router := setupPaymentRouter(bookings, newTestGateway(""))

	w := postJSON(router, "/api/booking/payment/verify", map[string]string{
		"bookingId":           booking.ID.Hex(),
		"razorpay_order_id":   "order_xyz",
		"razorpay_payment_id": "pay_123",
		"razorpay_signature":  "deadbeef",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "payment verification failed", decodeBody(t, w)["message"])

	stored, err := bookings.Get(context.Background(), booking.ID.Hex())
	assert.NoError(t, err)
	assert.False(t, stored.PreOrderPayment)
	assert.Equal(t, models.PaymentFailed, stored.PaymentStatus)
}
