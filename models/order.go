package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order payment methods.
const (
	PaymentMethodCOD      = "COD"
	PaymentMethodRazorpay = "RAZORPAY"
)

// Order delivery statuses.
const (
	OrderPendingPayment = "Pending Payment"
	OrderProcessing     = "Food Processing"
	OrderOutForDelivery = "Out for delivery"
	OrderDelivered      = "Delivered"
)

// OrderItem is a snapshot of a cart line at checkout time.
type OrderItem struct {
	ItemID   string  `bson:"itemId" json:"itemId"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
	Image    string  `bson:"image" json:"image"`
}

type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID          string             `bson:"userId" json:"userId"`
	Items           []OrderItem        `bson:"items" json:"items"`
	Amount          float64            `bson:"amount" json:"amount"`
	Address         map[string]string  `bson:"address" json:"address"`
	Status          string             `bson:"status" json:"status"`
	Payment         bool               `bson:"payment" json:"payment"`
	PaymentMethod   string             `bson:"paymentMethod" json:"paymentMethod"`
	RazorpayOrderID string             `bson:"razorpayOrderId,omitempty" json:"razorpayOrderId,omitempty"`
	Date            time.Time          `bson:"date" json:"date"`
}
