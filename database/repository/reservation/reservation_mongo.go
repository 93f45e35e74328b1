// File: database/repository/reservation/reservation_mongo.go
package reservationRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tablebook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoReservationRepo) Create(ctx context.Context, res *models.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, res); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateID
		}
		return fmt.Errorf("failed to insert reservation %s: %w", res.ID, err)
	}
	return nil
}

func (r *mongoReservationRepo) Replace(ctx context.Context, res *models.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.ReplaceOne(ctx, bson.M{"id": res.ID}, res)
	if err != nil {
		return fmt.Errorf("failed to replace reservation %s: %w", res.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoReservationRepo) GetByIDAndEmail(ctx context.Context, id, email string) (*models.Reservation, error) {
	return r.findOne(ctx, bson.M{"id": id, "userEmail": email})
}

func (r *mongoReservationRepo) ListByEmail(ctx context.Context, email string) ([]models.Reservation, error) {
	return r.findMany(ctx, bson.M{"userEmail": email})
}

func (r *mongoReservationRepo) ListByWaiterAndDate(ctx context.Context, waiterID, date string) ([]models.Reservation, error) {
	return r.findMany(ctx, bson.M{"waiterId": waiterID, "date": date})
}

// ListActive returns every reservation whose status the reconciler may still
// move forward.
func (r *mongoReservationRepo) ListActive(ctx context.Context) ([]models.Reservation, error) {
	filter := bson.M{"status": bson.M{"$in": []string{models.StatusReserved, models.StatusInProgress}}}
	return r.findMany(ctx, filter)
}

func (r *mongoReservationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update status of reservation %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoReservationRepo) findOne(ctx context.Context, filter bson.M) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var res models.Reservation
	if err := r.coll.FindOne(ctx, filter).Decode(&res); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch reservation: %w", err)
	}
	return &res, nil
}

func (r *mongoReservationRepo) findMany(ctx context.Context, filter bson.M) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Reservation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}
	return out, nil
}
