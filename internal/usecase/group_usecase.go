package usecase

import (
	"context"
	"time"

	"pindrop/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePinInput is one member pin of a new location group.
type CreatePinInput struct {
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	CollectionLimit *int    `json:"collection_limit,omitempty"` // Overrides the group limit when set.
	AutoCollect     *bool   `json:"auto_collect,omitempty"`     // Overrides the group flag when set.
}

// CreateGroupInput represents the input for creating a location group with
// its member pins.
type CreateGroupInput struct {
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	ImageURL        string           `json:"image_url"`
	StartDate       time.Time        `json:"start_date"`
	EndDate         time.Time        `json:"end_date"`
	CollectionLimit int              `json:"collection_limit"`
	AutoCollect     bool             `json:"auto_collect"`
	AssetID         *uuid.UUID       `json:"asset_id,omitempty"`
	PageAssetCode   *string          `json:"page_asset_code,omitempty"`
	Pins            []CreatePinInput `json:"pins"`
}

// CreateGroupOutput bundles the created group with its pins.
type CreateGroupOutput struct {
	Group *entity.LocationGroup `json:"group"`
	Pins  []*entity.Pin         `json:"pins"`
}

// GroupUsecase defines the creator-facing pin store management use cases.
type GroupUsecase interface {
	// CreateGroup persists a new campaign and its member pins in one
	// transaction. Groups start unapproved.
	CreateGroup(ctx context.Context, creatorID uuid.UUID, input *CreateGroupInput) (*CreateGroupOutput, error)

	// GetCreatorGroups lists all groups owned by a creator.
	GetCreatorGroups(ctx context.Context, creatorID uuid.UUID) ([]*entity.LocationGroup, error)

	// SetApproval flips the admin approval flag.
	SetApproval(ctx context.Context, groupID uuid.UUID, approved bool) error

	// RetireExpiredGroups soft-retires groups whose end date passed. Invoked
	// by the background sweeper.
	RetireExpiredGroups(ctx context.Context, now time.Time) (int64, error)
}
