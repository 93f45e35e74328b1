// File: database/repository/table/interface.go
package tableRepo

import (
	"context"
	"errors"

	"tablebook/database"
	"tablebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when no table matches the id/location pair.
	ErrNotFound = errors.New("table not found")
	// ErrSlotTaken is returned when a conditional append lost to a slot that
	// is already present in the date bucket.
	ErrSlotTaken = errors.New("slot already booked for table")
)

// TableRepository is the table availability ledger. Slots are only ever
// added or removed through it; removal by value is best-effort and a missing
// slot is a silent no-op.
type TableRepository interface {
	GetByID(ctx context.Context, tableID, locationID string) (*models.Table, error)
	GetByLocation(ctx context.Context, locationID string) ([]models.Table, error)
	BookedSlots(ctx context.Context, tableID, locationID, date string) ([]string, error)
	AppendSlot(ctx context.Context, tableID, locationID, date, slot string) error
	RemoveSlot(ctx context.Context, tableID, locationID, date, slot string) error
}

type mongoTableRepo struct {
	coll *mongo.Collection
}

// NewMongoTableRepo constructs a new MongoDB TableRepository.
func NewMongoTableRepo() TableRepository {
	return &mongoTableRepo{
		coll: database.DB().Collection("tables"),
	}
}
