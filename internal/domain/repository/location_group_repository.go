package repository

import (
	"context"
	"time"

	"pindrop/internal/domain/entity"
	"pindrop/internal/errors"

	"github.com/google/uuid"
)

// ErrGroupNotFound is returned when a location group is not found.
var ErrGroupNotFound = errors.New("location group not found")

// LocationGroupRepository defines the interface for location-group database operations.
type LocationGroupRepository interface {
	// CreateGroup persists a new location group.
	CreateGroup(ctx context.Context, group *entity.LocationGroup) error

	// FindGroupByID retrieves a group by its unique ID.
	FindGroupByID(ctx context.Context, id uuid.UUID) (*entity.LocationGroup, error)

	// FindGroupsByCreator retrieves all groups owned by a creator.
	FindGroupsByCreator(ctx context.Context, creatorID uuid.UUID) ([]*entity.LocationGroup, error)

	// SetApproval flips the admin approval flag on a group.
	SetApproval(ctx context.Context, id uuid.UUID, approved bool) error

	// RetireExpired soft-retires every approved group whose end date passed,
	// returning the number of groups retired. Existing consumption records
	// are untouched and stay claimable.
	RetireExpired(ctx context.Context, now time.Time) (int64, error)
}
