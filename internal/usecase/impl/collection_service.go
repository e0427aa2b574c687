// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"pindrop/config"
	deliverycontext "pindrop/internal/delivery/context"
	"pindrop/internal/domain/entity"
	domainerrors "pindrop/internal/domain/errors"
	"pindrop/internal/domain/repository"
	"pindrop/internal/domain/service"
	"pindrop/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const defaultMaxViewportSpanDegrees = 10.0

// collectionService implements the CollectionUsecase interface.
type collectionService struct {
	txManager      repository.TransactionManager
	pinRepo        repository.PinRepository
	rewardResolver service.RewardResolver
	publisher      service.EventPublisher
	config         *config.Config
	logger         *slog.Logger
}

// NewCollectionService is the constructor for collectionService.
func NewCollectionService(
	txManager repository.TransactionManager,
	pinRepo repository.PinRepository,
	rewardResolver service.RewardResolver,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CollectionUsecase {
	if cfg.PinCollection == nil {
		cfg.PinCollection = &config.PinCollectionConfig{
			MaxViewportSpanDegrees: defaultMaxViewportSpanDegrees,
		}
	}

	return &collectionService{
		txManager:      txManager,
		pinRepo:        pinRepo,
		rewardResolver: rewardResolver,
		publisher:      publisher,
		config:         cfg,
		logger:         logger,
	}
}

// QueryNearby returns the pins visible in a viewport.
func (srv *collectionService) QueryNearby(ctx context.Context, input *usecase.QueryNearbyInput) ([]*entity.Pin, error) {
	if input.MinLat > input.MaxLat || input.MinLon > input.MaxLon {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("viewport bounds are inverted")
	}

	maxSpan := srv.config.PinCollection.MaxViewportSpanDegrees
	if maxSpan <= 0 {
		maxSpan = defaultMaxViewportSpanDegrees
	}
	if input.MaxLat-input.MinLat > maxSpan || input.MaxLon-input.MinLon > maxSpan {
		return nil, domainerrors.ErrViewportTooLarge.WrapMessage("viewport span exceeds limit")
	}

	bound := orb.Bound{
		Min: orb.Point{input.MinLon, input.MinLat},
		Max: orb.Point{input.MaxLon, input.MaxLat},
	}

	pins, err := srv.pinRepo.FindPinsWithinBound(ctx, bound, input.ShowExpired)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query pins within viewport")
	}

	return pins, nil
}

// Collect consumes a pin for a user. The counter decrement and the
// consumption insert run in one database transaction; the unique (pin, user)
// index and the remaining > 0 guard on the decrement are the authoritative
// concurrency checks, so two racing collectors can never both succeed past
// the last slot.
func (srv *collectionService) Collect(ctx context.Context, userID, pinID uuid.UUID) (*usecase.CollectOutput, error) {
	pin, err := srv.pinRepo.FindPinByID(ctx, pinID)
	if err != nil {
		if errors.Is(err, repository.ErrPinNotFound) {
			return nil, domainerrors.ErrPinNotFound
		}

		return nil, errors.Wrap(err, "failed to load pin")
	}

	now := time.Now()
	if pin.Group == nil || !pin.Group.Active(now) {
		return nil, domainerrors.ErrNotCollectible
	}

	// Snapshot the reward before the transaction so a later marketplace
	// relink cannot change what this consumption pays out.
	rewardAsset, err := srv.resolveRewardSnapshot(ctx, pin.Group)
	if err != nil {
		return nil, err
	}

	consumption := &entity.PinConsumption{
		ID:                uuid.New(),
		PinID:             pin.ID,
		UserID:            userID,
		RewardAssetCode:   rewardAsset.Code,
		RewardAssetIssuer: rewardAsset.Issuer,
		CollectedAt:       now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		pinRepo := repoFactory.NewPinRepository()
		consumptionRepo := repoFactory.NewConsumptionRepository()

		// The insert runs first so a repeat collector hits the duplicate
		// check even on an exhausted pin.
		if err := consumptionRepo.CreateConsumption(ctx, consumption); err != nil {
			if errors.Is(err, repository.ErrDuplicateConsumption) {
				return domainerrors.ErrAlreadyCollected
			}

			return errors.Wrap(err, "failed to create consumption record")
		}

		if err := pinRepo.DecrementRemaining(ctx, pin.ID); err != nil {
			if errors.Is(err, repository.ErrCollectionLimitExhausted) {
				return domainerrors.ErrLimitExceeded
			}

			return errors.Wrap(err, "failed to decrement pin counter")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.publishCollected(ctx, pin, consumption)

	return &usecase.CollectOutput{
		Consumption: consumption,
		AutoCollect: pin.AutoCollect,
	}, nil
}

// resolveRewardSnapshot resolves the group's linked reward asset. A group
// with no linked reward yields an empty snapshot; the claim flow reports it
// as unresolvable later.
func (srv *collectionService) resolveRewardSnapshot(ctx context.Context, group *entity.LocationGroup) (entity.Asset, error) {
	if !group.HasLinkedReward() {
		return entity.Asset{}, nil
	}

	asset, err := srv.rewardResolver.ResolveReward(ctx, group)
	if err != nil {
		if errors.Is(err, service.ErrNoLinkedReward) {
			return entity.Asset{}, nil
		}

		return entity.Asset{}, errors.Wrap(err, "failed to resolve reward asset")
	}

	return *asset, nil
}

// publishCollected emits the pin.collected event after the transaction
// committed. Publishing is best effort and never fails the collection.
func (srv *collectionService) publishCollected(ctx context.Context, pin *entity.Pin, consumption *entity.PinConsumption) {
	event := &service.CollectionEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		EventType:     service.EventTypePinCollected,
		ConsumptionID: consumption.ID.String(),
		PinID:         pin.ID.String(),
		GroupID:       pin.GroupID.String(),
		UserID:        consumption.UserID.String(),
		AssetCode:     consumption.RewardAssetCode,
		OccurredAt:    consumption.CollectedAt.UTC().Format(time.RFC3339),
	}

	if err := srv.publisher.PublishCollectionEvent(ctx, event); err != nil {
		srv.logger.Error("failed to publish pin.collected event",
			"error", err,
			"consumptionID", consumption.ID,
		)
	}
}
