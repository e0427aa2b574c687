package impl

import (
	"context"
	"log/slog"
	"time"

	"pindrop/config"
	"pindrop/internal/domain/entity"
	domainerrors "pindrop/internal/domain/errors"
	"pindrop/internal/domain/repository"
	"pindrop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultCollectionLimit = 10
	defaultMaxPinsPerGroup = 50
)

// groupService implements the GroupUsecase interface.
type groupService struct {
	txManager repository.TransactionManager
	groupRepo repository.LocationGroupRepository
	config    *config.Config
	logger    *slog.Logger
}

// NewGroupService is the constructor for groupService.
func NewGroupService(
	txManager repository.TransactionManager,
	groupRepo repository.LocationGroupRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.GroupUsecase {
	if cfg.PinCollection == nil {
		cfg.PinCollection = &config.PinCollectionConfig{}
	}
	if cfg.PinCollection.DefaultCollectionLimit <= 0 {
		cfg.PinCollection.DefaultCollectionLimit = defaultCollectionLimit
	}
	if cfg.PinCollection.MaxPinsPerGroup <= 0 {
		cfg.PinCollection.MaxPinsPerGroup = defaultMaxPinsPerGroup
	}

	return &groupService{
		txManager: txManager,
		groupRepo: groupRepo,
		config:    cfg,
		logger:    logger,
	}
}

// CreateGroup persists a new campaign and its member pins in one transaction.
// Groups start unapproved and invisible to the map until an admin approves
// them.
func (srv *groupService) CreateGroup(ctx context.Context, creatorID uuid.UUID, input *usecase.CreateGroupInput) (*usecase.CreateGroupOutput, error) {
	if len(input.Pins) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("a location group needs at least one pin")
	}
	if len(input.Pins) > srv.config.PinCollection.MaxPinsPerGroup {
		return nil, domainerrors.ErrTooManyPins
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("end date must be after start date")
	}

	collectionLimit := input.CollectionLimit
	if collectionLimit <= 0 {
		collectionLimit = srv.config.PinCollection.DefaultCollectionLimit
	}

	now := time.Now()
	group := &entity.LocationGroup{
		ID:              uuid.New(),
		CreatorID:       creatorID,
		Title:           input.Title,
		Description:     input.Description,
		ImageURL:        input.ImageURL,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		CollectionLimit: collectionLimit,
		AutoCollect:     input.AutoCollect,
		AssetID:         input.AssetID,
		PageAssetCode:   input.PageAssetCode,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	pins := make([]*entity.Pin, 0, len(input.Pins))
	for _, pinInput := range input.Pins {
		// A pin inherits the group's limit and auto-collect flag unless it
		// carries its own override.
		remaining := collectionLimit
		if pinInput.CollectionLimit != nil && *pinInput.CollectionLimit > 0 {
			remaining = *pinInput.CollectionLimit
		}
		autoCollect := group.AutoCollect
		if pinInput.AutoCollect != nil {
			autoCollect = *pinInput.AutoCollect
		}

		pins = append(pins, &entity.Pin{
			ID:                       uuid.New(),
			GroupID:                  group.ID,
			Latitude:                 pinInput.Latitude,
			Longitude:                pinInput.Longitude,
			CollectionLimitRemaining: remaining,
			AutoCollect:              autoCollect,
			CreatedAt:                now,
			UpdatedAt:                now,
		})
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewLocationGroupRepository().CreateGroup(ctx, group); err != nil {
			return errors.Wrap(err, "failed to create location group")
		}

		if err := repoFactory.NewPinRepository().CreatePins(ctx, pins); err != nil {
			return errors.Wrap(err, "failed to create pins")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("location group created",
		"groupID", group.ID,
		"creatorID", creatorID,
		"pinCount", len(pins),
	)

	return &usecase.CreateGroupOutput{
		Group: group,
		Pins:  pins,
	}, nil
}

// GetCreatorGroups lists all groups owned by a creator.
func (srv *groupService) GetCreatorGroups(ctx context.Context, creatorID uuid.UUID) ([]*entity.LocationGroup, error) {
	groups, err := srv.groupRepo.FindGroupsByCreator(ctx, creatorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list creator groups")
	}

	return groups, nil
}

// SetApproval flips the admin approval flag.
func (srv *groupService) SetApproval(ctx context.Context, groupID uuid.UUID, approved bool) error {
	if err := srv.groupRepo.SetApproval(ctx, groupID, approved); err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return domainerrors.ErrGroupNotFound
		}

		return errors.Wrap(err, "failed to set group approval")
	}

	srv.logger.Info("group approval updated", "groupID", groupID, "approved", approved)

	return nil
}

// RetireExpiredGroups soft-retires groups whose end date passed. Existing
// consumption records stay claimable; the group just disappears from the map.
func (srv *groupService) RetireExpiredGroups(ctx context.Context, now time.Time) (int64, error) {
	retired, err := srv.groupRepo.RetireExpired(ctx, now)
	if err != nil {
		return 0, errors.Wrap(err, "failed to retire expired groups")
	}

	return retired, nil
}
