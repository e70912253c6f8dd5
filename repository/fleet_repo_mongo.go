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

type MongoFleetRepo struct {
	DB *mongo.Client
}

func NewMongoFleetRepo(db *mongo.Client) *MongoFleetRepo {
	return &MongoFleetRepo{DB: db}
}

func (r *MongoFleetRepo) vehicles() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("vehicles")
}

func (r *MongoFleetRepo) drivers() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("drivers")
}

func (r *MongoFleetRepo) trips() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("trips")
}

func (r *MongoFleetRepo) GetVehicles() ([]*models.Vehicle, error) {
	ctx := context.Background()

	cur, err := r.vehicles().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var result []*models.Vehicle
	if err := cur.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *MongoFleetRepo) GetVehicleByID(id string) (*models.Vehicle, error) {
	ctx := context.Background()

	var v models.Vehicle
	err := r.vehicles().FindOne(ctx, bson.M{"_id": id}).Decode(&v)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *MongoFleetRepo) CreateVehicle(v *models.Vehicle) error {
	if v.ID == "" {
		v.ID = fmt.Sprintf("truck-%d", time.Now().UnixNano())
	}
	_, err := r.vehicles().InsertOne(context.Background(), v)
	return err
}

func (r *MongoFleetRepo) UpdateVehicle(v *models.Vehicle) error {
	res, err := r.vehicles().ReplaceOne(context.Background(), bson.M{"_id": v.ID}, v)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoFleetRepo) AvailableTrucks(size models.TransportSize) ([]models.TruckOption, error) {
	ctx := context.Background()

	cur, err := r.vehicles().Find(ctx, bson.M{"status": models.VehicleAvailable})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var vehicles []*models.Vehicle
	if err := cur.All(ctx, &vehicles); err != nil {
		return nil, err
	}

	out := []models.TruckOption{}
	for _, v := range vehicles {
		if size != "" && models.SizeForCapacity(v.Capacity) != size {
			continue
		}
		capacity := v.Capacity
		out = append(out, models.TruckOption{
			ID:       v.ID,
			Name:     v.Name + " - " + v.TruckNumber,
			Capacity: &capacity,
		})
	}
	return out, nil
}

func (r *MongoFleetRepo) GetDrivers(status models.DriverStatus) ([]*models.Driver, error) {
	ctx := context.Background()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	cur, err := r.drivers().Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	result := []*models.Driver{}
	if err := cur.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *MongoFleetRepo) GetDriverByID(id string) (*models.Driver, error) {
	ctx := context.Background()

	var d models.Driver
	err := r.drivers().FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *MongoFleetRepo) CreateDriver(d *models.Driver) error {
	if d.ID == "" {
		d.ID = fmt.Sprintf("driver-%d", time.Now().UnixNano())
	}
	_, err := r.drivers().InsertOne(context.Background(), d)
	return err
}

func (r *MongoFleetRepo) UpdateDriver(d *models.Driver) error {
	res, err := r.drivers().ReplaceOne(context.Background(), bson.M{"_id": d.ID}, d)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoFleetRepo) GetTrips() ([]*models.Trip, error) {
	ctx := context.Background()

	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: -1}})
	cur, err := r.trips().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	result := []*models.Trip{}
	if err := cur.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}
