package services

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"
)

const razorpayBaseURL = "https://api.razorpay.com"

// RazorpayConfig holds Razorpay credentials.
type RazorpayConfig struct {
	KeyID     string
	KeySecret string
	// BaseURL overrides the Razorpay API host, used by tests.
	BaseURL string
}

// RazorpayService handles Razorpay API interactions for pre-order and food
// order payments.
type RazorpayService struct {
	config     *RazorpayConfig
	httpClient *http.Client
}

var (
	razorpayService *RazorpayService
	razorpayOnce    sync.Once
)

// GetRazorpayService returns the singleton RazorpayService configured from
// the environment.
func GetRazorpayService() *RazorpayService {
	razorpayOnce.Do(func() {
		razorpayService = NewRazorpayService(&RazorpayConfig{
			KeyID:     os.Getenv("RAZORPAY_KEY_ID"),
			KeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		})
	})
	return razorpayService
}

func NewRazorpayService(config *RazorpayConfig) *RazorpayService {
	return &RazorpayService{
		config: config,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ValidateConfig checks that the gateway credentials are present.
func (rs *RazorpayService) ValidateConfig() error {
	if rs.config.KeyID == "" {
		return fmt.Errorf("RAZORPAY_KEY_ID is not set")
	}
	if rs.config.KeySecret == "" {
		return fmt.Errorf("RAZORPAY_KEY_SECRET is not set")
	}
	return nil
}

// KeyID exposes the public key id for the checkout frontend.
func (rs *RazorpayService) KeyID() string {
	return rs.config.KeyID
}

// RazorpayOrder is the gateway order handle returned on creation.
type RazorpayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// CreateOrder creates a gateway order for the given amount in rupees.
// Razorpay expects the amount in paise.
func (rs *RazorpayService) CreateOrder(amount float64, receipt string, notes map[string]string) (*RazorpayOrder, error) {
	if err := rs.ValidateConfig(); err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"amount":   int64(amount * 100),
		"currency": "INR",
		"receipt":  receipt,
		"notes":    notes,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error marshaling request: %v", err)
	}

	url := fmt.Sprintf("%s/v1/orders", rs.baseURL())
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(rs.config.KeyID, rs.config.KeySecret)

	resp, err := rs.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling razorpay: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("razorpay returned status %d: %s", resp.StatusCode, string(body))
	}

	var order RazorpayOrder
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("error parsing response: %v", err)
	}
	return &order, nil
}

// VerifySignature checks the checkout confirmation signature: an
// HMAC-SHA256 of "<order_id>|<payment_id>" keyed with the key secret.
func (rs *RazorpayService) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(rs.config.KeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (rs *RazorpayService) baseURL() string {
	if rs.config.BaseURL != "" {
		return rs.config.BaseURL
	}
	return razorpayBaseURL
}
