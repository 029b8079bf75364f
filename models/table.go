package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Table locations
const (
	LocationIndoor  = "indoor"
	LocationOutdoor = "outdoor"
	LocationBalcony = "balcony"
	LocationPrivate = "private"
	LocationRooftop = "rooftop"
)

// Table floor statuses. Floor status is set manually by staff and is
// independent of booking state; only "maintenance" removes a table from the
// booking candidate pool.
const (
	TableAvailable   = "available"
	TableOccupied    = "occupied"
	TableReserved    = "reserved"
	TableMaintenance = "maintenance"
)

type Table struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	TableNumber     string             `bson:"tableNumber" json:"tableNumber"`
	TableName       string             `bson:"tableName" json:"tableName"`
	Capacity        int                `bson:"capacity" json:"capacity"`
	Location        string             `bson:"location" json:"location"`
	Status          string             `bson:"status" json:"status"`
	Features        []string           `bson:"features" json:"features"`
	MinBookingHours int                `bson:"minBookingHours" json:"minBookingHours"`
	PricePerHour    float64            `bson:"pricePerHour" json:"pricePerHour"`
	Image           string             `bson:"image" json:"image"`
	Description     string             `bson:"description" json:"description"`
	IsActive        bool               `bson:"isActive" json:"isActive"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

// ValidLocation reports whether loc is one of the supported table locations.
func ValidLocation(loc string) bool {
	switch loc {
	case LocationIndoor, LocationOutdoor, LocationBalcony, LocationPrivate, LocationRooftop:
		return true
	}
	return false
}

// ValidTableStatus reports whether s is a known floor status.
func ValidTableStatus(s string) bool {
	switch s {
	case TableAvailable, TableOccupied, TableReserved, TableMaintenance:
		return true
	}
	return false
}
