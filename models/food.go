package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Food item statuses.
const (
	FoodAvailable   = "available"
	FoodUnavailable = "unavailable"
	FoodOutOfStock  = "out_of_stock"
)

type Food struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Image       string             `bson:"image" json:"image"`
	Category    string             `bson:"category" json:"category"`
	// Status may be empty on legacy records; empty counts as available.
	Status string `bson:"status,omitempty" json:"status,omitempty"`
}

// ValidFoodStatus reports whether s is a known food status.
func ValidFoodStatus(s string) bool {
	switch s {
	case FoodAvailable, FoodUnavailable, FoodOutOfStock:
		return true
	}
	return false
}

// Orderable reports whether the item should be shown on the customer menu.
func (f *Food) Orderable() bool {
	return f.Status == "" || f.Status == FoodAvailable
}
