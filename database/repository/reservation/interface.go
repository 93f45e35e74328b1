// File: database/repository/reservation/interface.go
package reservationRepo

import (
	"context"
	"errors"

	"tablebook/database"
	"tablebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when no reservation matches the lookup.
	ErrNotFound = errors.New("reservation not found")
	// ErrDuplicateID is returned when a create collides with an existing
	// reservation id.
	ErrDuplicateID = errors.New("reservation id already exists")
)

// ReservationRepository persists reservation records. Cancellation is a
// logical delete: the record keeps its id and flips to CANCELLED.
type ReservationRepository interface {
	Create(ctx context.Context, res *models.Reservation) error
	Replace(ctx context.Context, res *models.Reservation) error
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	GetByIDAndEmail(ctx context.Context, id, email string) (*models.Reservation, error)
	ListByEmail(ctx context.Context, email string) ([]models.Reservation, error)
	ListByWaiterAndDate(ctx context.Context, waiterID, date string) ([]models.Reservation, error)
	ListActive(ctx context.Context) ([]models.Reservation, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo constructs a new MongoDB ReservationRepository.
func NewMongoReservationRepo() ReservationRepository {
	return &mongoReservationRepo{
		coll: database.DB().Collection("reservations"),
	}
}
