// File: database/repository/table/table_mongo.go
package tableRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tablebook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoTableRepo) GetByID(ctx context.Context, tableID, locationID string) (*models.Table, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": tableID, "locationId": locationID}
	var table models.Table
	if err := r.coll.FindOne(ctx, filter).Decode(&table); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch table %s at location %s: %w", tableID, locationID, err)
	}
	return &table, nil
}

func (r *mongoTableRepo) GetByLocation(ctx context.Context, locationID string) ([]models.Table, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"locationId": locationID})
	if err != nil {
		return nil, fmt.Errorf("failed to list tables for location %s: %w", locationID, err)
	}
	defer cursor.Close(ctx)

	var tables []models.Table
	if err := cursor.All(ctx, &tables); err != nil {
		return nil, fmt.Errorf("failed to decode tables: %w", err)
	}
	return tables, nil
}

func (r *mongoTableRepo) BookedSlots(ctx context.Context, tableID, locationID, date string) ([]string, error) {
	table, err := r.GetByID(ctx, tableID, locationID)
	if err != nil {
		return nil, err
	}
	return table.BookedSlots(date), nil
}

// AppendSlot adds a slot to the table's date bucket with a conditional write:
// the update matches only while the exact slot value is absent, so a
// concurrent duplicate append surfaces as ErrSlotTaken instead of silently
// double-booking.
func (r *mongoTableRepo) AppendSlot(ctx context.Context, tableID, locationID, date, slot string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	key := "booked." + date
	filter := bson.M{
		"id":         tableID,
		"locationId": locationID,
		key:          bson.M{"$ne": slot},
	}
	update := bson.M{"$push": bson.M{key: slot}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to append slot %s to table %s: %w", slot, tableID, err)
	}
	if res.MatchedCount == 0 {
		// Either the table does not exist, or the slot value lost the
		// conditional check. Disambiguate with a plain lookup.
		exists, err := r.exists(ctx, tableID, locationID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}
		return ErrSlotTaken
	}
	return nil
}

// RemoveSlot pulls a slot value from the table's date bucket. A slot that is
// not present is a silent no-op; removal runs on rollback and cancellation
// paths where the forward write may not have happened.
func (r *mongoTableRepo) RemoveSlot(ctx context.Context, tableID, locationID, date, slot string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": tableID, "locationId": locationID}
	update := bson.M{"$pull": bson.M{"booked." + date: slot}}

	if _, err := r.coll.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to remove slot %s from table %s: %w", slot, tableID, err)
	}
	return nil
}

func (r *mongoTableRepo) exists(ctx context.Context, tableID, locationID string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"id": tableID, "locationId": locationID})
	if err != nil {
		return false, fmt.Errorf("failed to check table %s existence: %w", tableID, err)
	}
	return count > 0, nil
}
