// File: database/repository/waiter/interface.go
package waiterRepo

import (
	"context"
	"errors"

	"tablebook/database"
	"tablebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when no waiter matches the id/location pair.
	ErrNotFound = errors.New("waiter not found")
	// ErrSlotTaken is returned when a conditional append lost to a slot that
	// is already present in the date bucket.
	ErrSlotTaken = errors.New("slot already booked for waiter")
)

// WaiterRepository is the waiter availability ledger, mirroring the table
// ledger's append/remove contract.
type WaiterRepository interface {
	GetByID(ctx context.Context, waiterID, locationID string) (*models.Waiter, error)
	GetByEmail(ctx context.Context, email string) (*models.Waiter, error)
	GetActiveByLocation(ctx context.Context, locationID string) ([]models.Waiter, error)
	BookedSlots(ctx context.Context, waiterID, locationID, date string) ([]string, error)
	AppendSlot(ctx context.Context, waiterID, locationID, date, slot string) error
	RemoveSlot(ctx context.Context, waiterID, locationID, date, slot string) error
}

type mongoWaiterRepo struct {
	coll *mongo.Collection
}

// NewMongoWaiterRepo constructs a new MongoDB WaiterRepository.
func NewMongoWaiterRepo() WaiterRepository {
	return &mongoWaiterRepo{
		coll: database.DB().Collection("waiters"),
	}
}
