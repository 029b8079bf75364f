package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names.
const (
	tablesCollection   = "tables"
	bookingsCollection = "bookings"
	foodsCollection    = "foods"
	ordersCollection   = "orders"
	usersCollection    = "users"
)

// parseID converts a hex id from the request into an ObjectID. A malformed
// id can never match a document, so it surfaces as ErrNotFound.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return oid, nil
}

func mapFindErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
