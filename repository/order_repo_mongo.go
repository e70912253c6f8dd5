package repository

import (
	"context"
	"fmt"
	"time"

	"fleetlink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoOrderRepo struct {
	DB *mongo.Client
}

func NewMongoOrderRepo(db *mongo.Client) *MongoOrderRepo {
	return &MongoOrderRepo{DB: db}
}

func (r *MongoOrderRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("orders")
}

// CreateOrder stores the order as a single document with the client,
// transport addresses, billing and payment embedded.
func (r *MongoOrderRepo) CreateOrder(_ context.Context, order *models.Order) error {
	ctx := context.Background()

	order.ID = fmt.Sprintf("order-%d", time.Now().UnixNano())
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	// Keep the client record in its own collection too, so the directory
	// endpoints see clients created through the wizard.
	if order.Client.ID != "" {
		_, _ = r.DB.Database(mongoDatabase).Collection("clients").
			UpdateOne(ctx,
				bson.M{"_id": order.Client.ID},
				bson.M{"$setOnInsert": order.Client},
				options.Update().SetUpsert(true),
			)
	}

	_, err := r.collection().InsertOne(ctx, order)
	return err
}

func (r *MongoOrderRepo) GetOrders() ([]*models.Order, error) {
	ctx := context.Background()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var result []*models.Order
	if err := cur.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *MongoOrderRepo) GetOrderByID(id string) (*models.Order, error) {
	ctx := context.Background()

	var order models.Order
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *MongoOrderRepo) UpdateOrderStatus(id string, status models.OrderStatus) (*models.Order, error) {
	ctx := context.Background()

	res, err := r.collection().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"transport.status": status,
			"updated_at":       time.Now().UTC(),
		}},
	)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return r.GetOrderByID(id)
}
