// File: database/repository/location/interface.go
package locationRepo

import (
	"context"
	"errors"

	"tablebook/database"
	"tablebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no location matches the id.
var ErrNotFound = errors.New("location not found")

// LocationRepository reads restaurant locations. Locations are reference
// data; the engine never writes them.
type LocationRepository interface {
	GetByID(ctx context.Context, id string) (*models.Location, error)
}

type mongoLocationRepo struct {
	coll *mongo.Collection
}

// NewMongoLocationRepo constructs a new MongoDB LocationRepository.
func NewMongoLocationRepo() LocationRepository {
	return &mongoLocationRepo{
		coll: database.DB().Collection("locations"),
	}
}
