package repository

import (
	"context"
	"time"

	"pindrop/internal/domain/entity"
	"pindrop/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for consumption persistence.
var (
	// ErrConsumptionNotFound is returned when a consumption record is not found.
	ErrConsumptionNotFound = errors.New("consumption record not found")
	// ErrDuplicateConsumption is returned when the (pin, user) unique
	// constraint rejects a second collection of the same pin.
	ErrDuplicateConsumption = errors.New("pin already collected by this user")
)

// ConsumptionRepository defines the interface for consumption-record database operations.
type ConsumptionRepository interface {
	// CreateConsumption persists a new consumption record. The unique index
	// on (pin_id, user_id) is the concurrency guard against double
	// collection; violations surface as ErrDuplicateConsumption.
	CreateConsumption(ctx context.Context, consumption *entity.PinConsumption) error

	// FindConsumptionByID retrieves a consumption record by its unique ID.
	FindConsumptionByID(ctx context.Context, id uuid.UUID) (*entity.PinConsumption, error)

	// FindConsumptionByPinAndUser retrieves the consumption record for a
	// (pin, user) pair.
	FindConsumptionByPinAndUser(ctx context.Context, pinID, userID uuid.UUID) (*entity.PinConsumption, error)

	// FindConsumptionsByUser retrieves all consumption records for a user.
	FindConsumptionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PinConsumption, error)

	// MarkClaimed sets claimed_at and the settlement transaction id in a
	// single conditional UPDATE guarded by claimed_at IS NULL. Returns false
	// (without error) when the record was already claimed, making the
	// finalizer idempotent under client retries.
	MarkClaimed(ctx context.Context, id uuid.UUID, txID string, claimedAt time.Time) (bool, error)
}
