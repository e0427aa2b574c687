// Package usecase defines the application's use-case interfaces.
package usecase

import (
	"context"

	"pindrop/internal/domain/entity"

	"github.com/google/uuid"
)

// QueryNearbyInput is a viewport query for the map UI.
type QueryNearbyInput struct {
	MinLat      float64 `json:"min_lat"`
	MinLon      float64 `json:"min_lon"`
	MaxLat      float64 `json:"max_lat"`
	MaxLon      float64 `json:"max_lon"`
	ShowExpired bool    `json:"show_expired"`
}

// CollectOutput is the result of a successful pin collection.
type CollectOutput struct {
	Consumption *entity.PinConsumption `json:"consumption"`
	// AutoCollect tells the caller to chain straight into the claim flow.
	AutoCollect bool `json:"auto_collect"`
}

// CollectionUsecase defines the pin collection use cases.
type CollectionUsecase interface {
	// QueryNearby returns the pins visible in a viewport. Pure read; set
	// semantics, no ordering guarantee.
	QueryNearby(ctx context.Context, input *QueryNearbyInput) ([]*entity.Pin, error)

	// Collect consumes a pin for a user: one atomic check-and-decrement of
	// the pin's remaining counter plus the consumption insert, in a single
	// database transaction.
	Collect(ctx context.Context, userID, pinID uuid.UUID) (*CollectOutput, error)
}
