// File: database/repository/waiter/waiter_mongo.go
package waiterRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tablebook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoWaiterRepo) GetByID(ctx context.Context, waiterID, locationID string) (*models.Waiter, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": waiterID, "locationId": locationID}
	var waiter models.Waiter
	if err := r.coll.FindOne(ctx, filter).Decode(&waiter); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch waiter %s at location %s: %w", waiterID, locationID, err)
	}
	return &waiter, nil
}

func (r *mongoWaiterRepo) GetByEmail(ctx context.Context, email string) (*models.Waiter, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var waiter models.Waiter
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&waiter); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch waiter by email %s: %w", email, err)
	}
	return &waiter, nil
}

func (r *mongoWaiterRepo) GetActiveByLocation(ctx context.Context, locationID string) ([]models.Waiter, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"locationId": locationID, "active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to list waiters for location %s: %w", locationID, err)
	}
	defer cursor.Close(ctx)

	var waiters []models.Waiter
	if err := cursor.All(ctx, &waiters); err != nil {
		return nil, fmt.Errorf("failed to decode waiters: %w", err)
	}
	return waiters, nil
}

func (r *mongoWaiterRepo) BookedSlots(ctx context.Context, waiterID, locationID, date string) ([]string, error) {
	waiter, err := r.GetByID(ctx, waiterID, locationID)
	if err != nil {
		return nil, err
	}
	return waiter.BookedSlots(date), nil
}

// AppendSlot adds a slot to the waiter's date bucket; same conditional-write
// contract as the table ledger.
func (r *mongoWaiterRepo) AppendSlot(ctx context.Context, waiterID, locationID, date, slot string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	key := "booked." + date
	filter := bson.M{
		"id":         waiterID,
		"locationId": locationID,
		key:          bson.M{"$ne": slot},
	}
	update := bson.M{"$push": bson.M{key: slot}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to append slot %s to waiter %s: %w", slot, waiterID, err)
	}
	if res.MatchedCount == 0 {
		exists, err := r.exists(ctx, waiterID, locationID)
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

// RemoveSlot pulls a slot value from the waiter's date bucket; missing slots
// are a silent no-op.
func (r *mongoWaiterRepo) RemoveSlot(ctx context.Context, waiterID, locationID, date, slot string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": waiterID, "locationId": locationID}
	update := bson.M{"$pull": bson.M{"booked." + date: slot}}

	if _, err := r.coll.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to remove slot %s from waiter %s: %w", slot, waiterID, err)
	}
	return nil
}

func (r *mongoWaiterRepo) exists(ctx context.Context, waiterID, locationID string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"id": waiterID, "locationId": locationID})
	if err != nil {
		return false, fmt.Errorf("failed to check waiter %s existence: %w", waiterID, err)
	}
	return count > 0, nil
}
