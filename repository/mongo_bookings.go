package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/deepakkumar0818/foodify/models"
)

type MongoBookingRepo struct {
	col *mongo.Collection
}

func NewMongoBookingRepo(db *mongo.Database) *MongoBookingRepo {
	return &MongoBookingRepo{col: db.Collection(bookingsCollection)}
}

func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, booking)
	return err
}

func (r *MongoBookingRepo) Get(ctx context.Context, id string) (*models.Booking, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var booking models.Booking
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&booking); err != nil {
		return nil, mapFindErr(err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) GetByIDAndEmail(ctx context.Context, id, email string) (*models.Booking, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var booking models.Booking
	err = r.col.FindOne(ctx, bson.M{"_id": oid, "email": email}).Decode(&booking)
	if err != nil {
		return nil, mapFindErr(err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) List(ctx context.Context) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *MongoBookingRepo) ListForSlot(ctx context.Context, dayStart, dayEnd time.Time, slot string) ([]models.Booking, error) {
	filter := bson.M{
		"date":   bson.M{"$gte": dayStart, "$lte": dayEnd},
		"time":   slot,
		"status": bson.M{"$in": []string{models.BookingPending, models.BookingConfirmed}},
	}

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *MongoBookingRepo) ListByDay(ctx context.Context, dayStart, dayEnd time.Time) ([]models.Booking, error) {
	filter := bson.M{
		"date":   bson.M{"$gte": dayStart, "$lte": dayEnd},
		"status": bson.M{"$ne": models.BookingCancelled},
	}

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *MongoBookingRepo) ListByContact(ctx context.Context, email, phone string) ([]models.Booking, error) {
	var filter bson.M
	switch {
	case email != "" && phone != "":
		filter = bson.M{"$or": []bson.M{{"email": email}, {"phone": phone}}}
	case email != "":
		filter = bson.M{"email": email}
	default:
		filter = bson.M{"phone": phone}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *MongoBookingRepo) Save(ctx context.Context, booking *models.Booking) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": booking.ID}, booking)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoBookingRepo) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
