package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"airstore/internal/models"
)

// MongoOrderRepository is a MongoDB implementation of OrderRepository.
// Orders are stored in the "orders" collection in their document form, with
// timestamps as ISO-8601 strings.
type MongoOrderRepository struct {
	collection *mongo.Collection
}

// NewMongoOrderRepository creates a new instance of MongoOrderRepository.
func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{
		collection: db.Collection("orders"),
	}
}

// Insert persists a new order.
func (r *MongoOrderRepository) Insert(ctx context.Context, order *models.Order) error {
	if _, err := r.collection.InsertOne(ctx, order.Document()); err != nil {
		return fmt.Errorf("failed to insert order %s: %w", order.OrderNumber, err)
	}
	return nil
}

// FindByOrderNumber retrieves a single order by its human-facing number.
func (r *MongoOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	var doc models.OrderDocument
	err := r.collection.FindOne(ctx, bson.M{"order_number": orderNumber}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find order %s: %w", orderNumber, err)
	}
	return models.OrderFromDocument(doc)
}

// List returns a page of orders, most recently created first.
func (r *MongoOrderRepository) List(ctx context.Context, limit, skip int) ([]models.Order, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := make([]models.Order, 0, limit)
	for cursor.Next(ctx) {
		var doc models.OrderDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode order document: %w", err)
		}
		order, err := models.OrderFromDocument(doc)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error while listing orders: %w", err)
	}
	return orders, nil
}

// Count returns the total number of stored orders, unfiltered by pagination.
func (r *MongoOrderRepository) Count(ctx context.Context) (int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return total, nil
}
