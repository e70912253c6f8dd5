package repository

import (
	"context"
	"fmt"
	"time"

	"fleetlink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const mongoDatabase = "fleetlink"

type MongoClientRepo struct {
	DB *mongo.Client
}

func NewMongoClientRepo(db *mongo.Client) *MongoClientRepo {
	return &MongoClientRepo{DB: db}
}

func (r *MongoClientRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("clients")
}

func (r *MongoClientRepo) CreateClient(client *models.Client) error {
	ctx := context.Background()

	if client.ID == "" {
		client.ID = fmt.Sprintf("client-%d", time.Now().UnixNano())
	}
	for i := range client.Addresses {
		if client.Addresses[i].ID == "" {
			client.Addresses[i].ID = fmt.Sprintf("addr-%d-%d", time.Now().UnixNano(), i+1)
		}
	}

	_, err := r.collection().InsertOne(ctx, client)
	return err
}

func (r *MongoClientRepo) GetClients() ([]*models.Client, error) {
	ctx := context.Background()

	cur, err := r.collection().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var result []*models.Client
	if err := cur.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *MongoClientRepo) GetClientByID(id string) (*models.Client, error) {
	ctx := context.Background()

	var client models.Client
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&client)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (r *MongoClientRepo) UpdateClient(client *models.Client) error {
	ctx := context.Background()

	res, err := r.collection().ReplaceOne(ctx, bson.M{"_id": client.ID}, client)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
