// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pindrop/internal/domain/entity"
	"pindrop/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Domain-specific errors for pin persistence.
var (
	// ErrPinNotFound is returned when a pin is not found.
	ErrPinNotFound = errors.New("pin not found")
	// ErrCollectionLimitExhausted is returned when the conditional decrement
	// matches no row because the remaining counter is already zero.
	ErrCollectionLimitExhausted = errors.New("collection limit exhausted")
)

// PinRepository defines the interface for pin-related database operations.
type PinRepository interface {
	// CreatePins persists the member pins of a location group.
	CreatePins(ctx context.Context, pins []*entity.Pin) error

	// FindPinByID retrieves a pin by its unique ID with its group populated.
	FindPinByID(ctx context.Context, id uuid.UUID) (*entity.Pin, error)

	// FindPinsWithinBound retrieves all pins whose coordinates fall inside the
	// viewport bound. When showExpired is false, pins with an exhausted
	// counter or an inactive group are filtered out. No ordering guarantee.
	FindPinsWithinBound(ctx context.Context, bound orb.Bound, showExpired bool) ([]*entity.Pin, error)

	// DecrementRemaining atomically decrements the pin's remaining collection
	// counter, guarded by remaining > 0 in a single conditional UPDATE.
	// Returns ErrCollectionLimitExhausted when the guard matched no row, so
	// the counter can never go negative under concurrent collectors.
	DecrementRemaining(ctx context.Context, id uuid.UUID) error
}
