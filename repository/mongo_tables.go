package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/deepakkumar0818/foodify/models"
)

type MongoTableRepo struct {
	col *mongo.Collection
}

func NewMongoTableRepo(db *mongo.Database) *MongoTableRepo {
	return &MongoTableRepo{col: db.Collection(tablesCollection)}
}

func (r *MongoTableRepo) Create(ctx context.Context, table *models.Table) error {
	count, err := r.col.CountDocuments(ctx, bson.M{"tableNumber": table.TableNumber})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicate
	}

	if table.ID.IsZero() {
		table.ID = primitive.NewObjectID()
	}
	_, err = r.col.InsertOne(ctx, table)
	return err
}

func (r *MongoTableRepo) Get(ctx context.Context, id string) (*models.Table, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var table models.Table
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&table); err != nil {
		return nil, mapFindErr(err)
	}
	return &table, nil
}

func (r *MongoTableRepo) GetByNumber(ctx context.Context, number string) (*models.Table, error) {
	var table models.Table
	if err := r.col.FindOne(ctx, bson.M{"tableNumber": number}).Decode(&table); err != nil {
		return nil, mapFindErr(err)
	}
	return &table, nil
}

func (r *MongoTableRepo) List(ctx context.Context) ([]models.Table, error) {
	opts := options.Find().SetSort(bson.D{{Key: "tableNumber", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var tables []models.Table
	if err := cursor.All(ctx, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *MongoTableRepo) ListActiveByCapacity(ctx context.Context, minCapacity int) ([]models.Table, error) {
	filter := bson.M{"isActive": true}
	if minCapacity > 0 {
		filter["capacity"] = bson.M{"$gte": minCapacity}
	}

	// Smallest adequate table first.
	opts := options.Find().SetSort(bson.D{{Key: "capacity", Value: 1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var tables []models.Table
	if err := cursor.All(ctx, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *MongoTableRepo) Save(ctx context.Context, table *models.Table) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": table.ID}, table)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoTableRepo) Delete(ctx context.Context, id string) error {
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
