package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/deepakkumar0818/foodify/models"
)

type MongoFoodRepo struct {
	col *mongo.Collection
}

func NewMongoFoodRepo(db *mongo.Database) *MongoFoodRepo {
	return &MongoFoodRepo{col: db.Collection(foodsCollection)}
}

func (r *MongoFoodRepo) Create(ctx context.Context, food *models.Food) error {
	if food.ID.IsZero() {
		food.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, food)
	return err
}

func (r *MongoFoodRepo) Get(ctx context.Context, id string) (*models.Food, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var food models.Food
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&food); err != nil {
		return nil, mapFindErr(err)
	}
	return &food, nil
}

func (r *MongoFoodRepo) List(ctx context.Context) ([]models.Food, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var foods []models.Food
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *MongoFoodRepo) ListOrderable(ctx context.Context) ([]models.Food, error) {
	// Legacy items created before the status field count as available.
	filter := bson.M{"$or": []bson.M{
		{"status": models.FoodAvailable},
		{"status": bson.M{"$exists": false}},
		{"status": nil},
	}}

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var foods []models.Food
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *MongoFoodRepo) Save(ctx context.Context, food *models.Food) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": food.ID}, food)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoFoodRepo) Delete(ctx context.Context, id string) error {
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
