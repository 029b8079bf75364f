package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking statuses. New bookings always start as Pending; staff advance them
// to Confirmed/Completed, either side can move a non-terminal booking to
// Cancelled. Only Pending and Confirmed bookings hold a table against the
// availability check.
const (
	BookingPending   = "Pending"
	BookingConfirmed = "Confirmed"
	BookingCompleted = "Completed"
	BookingCancelled = "Cancelled"
)

// Payment statuses for the pre-order payment attached to a booking.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

// PreOrderItem is a snapshot of a food item at booking time. Name, price and
// image are copied from the menu so that later menu edits do not rewrite
// historical bookings.
type PreOrderItem struct {
	ItemID   string  `bson:"itemId" json:"itemId"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
	Image    string  `bson:"image" json:"image"`
}

type Booking struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Phone string             `bson:"phone" json:"phone"`
	Date  time.Time          `bson:"date" json:"date"`
	Time  string             `bson:"time" json:"time"`
	// Party size is kept as the string the client submitted.
	Guests string `bson:"guests" json:"guests"`

	// Table reference plus a denormalized snapshot of the table identity.
	// The snapshot survives table edits and hard deletes.
	TableID     *primitive.ObjectID `bson:"tableId" json:"tableId"`
	TableNumber string              `bson:"tableNumber" json:"tableNumber"`
	TableName   string              `bson:"tableName" json:"tableName"`

	Occasion        string `bson:"occasion" json:"occasion"`
	SpecialRequests string `bson:"specialRequests" json:"specialRequests"`
	Status          string `bson:"status" json:"status"`

	PreOrderedItems []PreOrderItem `bson:"preOrderedItems" json:"preOrderedItems"`
	PreOrderTotal   float64        `bson:"preOrderTotal" json:"preOrderTotal"`
	HasPreOrder     bool           `bson:"hasPreOrder" json:"hasPreOrder"`

	PreOrderPayment bool   `bson:"preOrderPayment" json:"preOrderPayment"`
	PaymentID       string `bson:"paymentId" json:"paymentId"`
	RazorpayOrderID string `bson:"razorpayOrderId" json:"razorpayOrderId"`
	PaymentStatus   string `bson:"paymentStatus" json:"paymentStatus"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// ValidBookingStatus reports whether s is a known booking status.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Blocks reports whether this booking holds its table against new bookings.
func (b *Booking) Blocks() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}
