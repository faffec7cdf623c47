package barberRepo

import (
	"context"
	"fmt"
	"time"

	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetDayAvailability fetches the slot ledger entry for one barber and date.
// Availability lives embedded in the barber document, so this reads the
// document and scans the array, the same way the scheduler reads timeslots.
func (r *MongoBarberRepo) GetDayAvailability(ctx context.Context, barberID, date string) (*models.DayAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var barber models.Barber
	filter := bson.M{"id": barberID}
	if err := r.coll.FindOne(ctx, filter).Decode(&barber); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch barber with id %s: %w", barberID, err)
	}

	for i := range barber.Availability {
		if barber.Availability[i].Date == date {
			return &barber.Availability[i], nil
		}
	}
	return nil, nil
}

// ReplaceFutureAvailability removes availability entries dated today or later
// and appends the new ones. Dates are "2006-01-02" strings, so lexicographic
// comparison is chronological.
func (r *MongoBarberRepo) ReplaceFutureAvailability(ctx context.Context, barberID, today string, entries []models.DayAvailability) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"id": barberID}
	pull := bson.M{"$pull": bson.M{
		"availability": bson.M{"date": bson.M{"$gte": today}},
	}}
	result, err := r.coll.UpdateOne(ctx, filter, pull)
	if err != nil {
		return fmt.Errorf("failed to clear future availability for barber %s: %w", barberID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	if len(entries) == 0 {
		return nil
	}
	push := bson.M{
		"$push": bson.M{"availability": bson.M{"$each": entries}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	if _, err := r.coll.UpdateOne(ctx, filter, push); err != nil {
		return fmt.Errorf("failed to append availability for barber %s: %w", barberID, err)
	}
	return nil
}

// CommitDayAvailability writes a mutated slot array back, conditional on the
// version observed at read time. A lost race surfaces as ErrVersionConflict
// instead of silently overwriting the winner's slots.
func (r *MongoBarberRepo) CommitDayAvailability(ctx context.Context, barberID string, day models.DayAvailability) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id": barberID,
		"availability": bson.M{"$elemMatch": bson.M{
			"date":    day.Date,
			"version": day.Version,
		}},
	}
	update := bson.M{
		"$set": bson.M{"availability.$.slots": day.Slots},
		"$inc": bson.M{"availability.$.version": 1},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to commit availability for barber %s on %s: %w", barberID, day.Date, err)
	}
	if result.MatchedCount == 0 {
		return ErrVersionConflict
	}
	return nil
}
