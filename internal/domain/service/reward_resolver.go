package service

import (
	"context"

	"pindrop/internal/domain/entity"
	"pindrop/internal/errors"
)

// ErrNoLinkedReward is returned when a group has no resolvable reward asset.
var ErrNoLinkedReward = errors.New("location group has no linked reward")

// RewardResolver resolves a location group's linked reward (marketplace asset
// or creator page-asset reference) into a concrete ledger asset. The
// marketplace subsystem owns the mapping; this is an interface-only
// collaborator.
type RewardResolver interface {
	ResolveReward(ctx context.Context, group *entity.LocationGroup) (*entity.Asset, error)
}
