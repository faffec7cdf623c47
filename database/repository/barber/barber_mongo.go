package barberRepo

import (
	"context"
	"fmt"
	"time"

	"barberbook/database"
	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBarberRepo implements BarberRepository using MongoDB.
type MongoBarberRepo struct {
	coll *mongo.Collection
}

// NewMongoBarberRepo creates a new instance of BarberRepository using MongoDB.
func NewMongoBarberRepo() BarberRepository {
	coll := database.DB().Collection("barbers")
	return &MongoBarberRepo{coll: coll}
}

func (r *MongoBarberRepo) Create(ctx context.Context, barber *models.Barber) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	barber.CreatedAt = time.Now()
	barber.UpdatedAt = barber.CreatedAt
	if _, err := r.coll.InsertOne(ctx, barber); err != nil {
		return fmt.Errorf("failed to create barber: %w", err)
	}
	return nil
}

func (r *MongoBarberRepo) GetByID(ctx context.Context, id string) (*models.Barber, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var barber models.Barber
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&barber); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch barber with id %s: %w", id, err)
	}
	return &barber, nil
}

func (r *MongoBarberRepo) GetAll(ctx context.Context) ([]models.Barber, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve barbers: %w", err)
	}
	defer cursor.Close(ctx)
	var barbers []models.Barber
	for cursor.Next(ctx) {
		var b models.Barber
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode barber: %w", err)
		}
		barbers = append(barbers, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return barbers, nil
}

func (r *MongoBarberRepo) GetByShop(ctx context.Context, shopID string) ([]models.Barber, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{"shop_id": shopID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve barbers for shop %s: %w", shopID, err)
	}
	defer cursor.Close(ctx)
	var barbers []models.Barber
	for cursor.Next(ctx) {
		var b models.Barber
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode barber: %w", err)
		}
		barbers = append(barbers, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return barbers, nil
}

func (r *MongoBarberRepo) Update(ctx context.Context, barber *models.Barber) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	barber.UpdatedAt = time.Now()
	filter := bson.M{"id": barber.ID}
	update := bson.M{"$set": barber}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update barber with id %s: %w", barber.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoBarberRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete barber with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoBarberRepo) UpdateWorkingHours(ctx context.Context, barberID string, cfg models.WorkingHoursConfig) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	filter := bson.M{"id": barberID}
	update := bson.M{"$set": bson.M{
		"workingHours": cfg,
		"updatedAt":    time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update working hours for barber %s: %w", barberID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
