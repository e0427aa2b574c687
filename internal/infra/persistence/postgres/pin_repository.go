package postgres

import (
	"context"
	"time"

	"pindrop/internal/domain/entity"
	domainerrors "pindrop/internal/domain/errors"
	"pindrop/internal/domain/repository"
	"pindrop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pinRepository implements the repository.PinRepository interface.
type pinRepository struct {
	db *gorm.DB
}

// NewPinRepository is the constructor for pinRepository.
func NewPinRepository(db *gorm.DB) repository.PinRepository {
	return &pinRepository{
		db: db,
	}
}

// CreatePins persists the member pins of a location group.
func (repo *pinRepository) CreatePins(ctx context.Context, pins []*entity.Pin) error {
	if len(pins) == 0 {
		return nil
	}

	pinModels := make([]*model.PinModel, 0, len(pins))
	for _, pin := range pins {
		pinModels = append(pinModels, fromPinDomain(pin))
	}

	if err := repo.db.WithContext(ctx).Create(pinModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrGroupNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pins")
	}

	// Update the entities with generated values
	for i, pinM := range pinModels {
		pins[i].ID = pinM.ID
		pins[i].CreatedAt = pinM.CreatedAt
		pins[i].UpdatedAt = pinM.UpdatedAt
	}

	return nil
}

// FindPinByID retrieves a pin by its unique ID with its group populated.
func (repo *pinRepository) FindPinByID(ctx context.Context, id uuid.UUID) (*entity.Pin, error) {
	var pinM model.PinModel

	if err := repo.db.WithContext(ctx).
		Preload("Group").
		Where("id = ?", id).
		First(&pinM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPinNotFound
		}

		return nil, errors.Wrap(err, "failed to find pin by ID")
	}

	return toPinDomain(&pinM), nil
}

// FindPinsWithinBound retrieves all pins whose coordinates fall inside the
// viewport bound, joined with their group. When showExpired is false, pins
// with an exhausted counter or an inactive group are filtered out.
func (repo *pinRepository) FindPinsWithinBound(ctx context.Context, bound orb.Bound, showExpired bool) ([]*entity.Pin, error) {
	var pinModels []*model.PinModel

	query := repo.db.WithContext(ctx).
		Preload("Group").
		Joins("JOIN location_groups ON location_groups.id = pins.group_id").
		Where("pins.latitude BETWEEN ? AND ?", bound.Min.Lat(), bound.Max.Lat()).
		Where("pins.longitude BETWEEN ? AND ?", bound.Min.Lon(), bound.Max.Lon()).
		Where("location_groups.approved = ?", true)

	if !showExpired {
		now := time.Now()
		query = query.
			Where("pins.collection_limit_remaining > 0").
			Where("location_groups.start_date <= ?", now).
			Where("location_groups.end_date > ?", now).
			Where("location_groups.retired_at IS NULL")
	}

	if err := query.Find(&pinModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pins within bound")
	}

	pins := make([]*entity.Pin, 0, len(pinModels))
	for _, pinM := range pinModels {
		pins = append(pins, toPinDomain(pinM))
	}

	return pins, nil
}

// DecrementRemaining atomically decrements the pin's remaining counter. The
// WHERE clause carries the remaining > 0 guard so this is one conditional
// UPDATE, never a read-modify-write pair; N users racing for the last unit
// produce exactly one matched row.
func (repo *pinRepository) DecrementRemaining(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PinModel{}).
		Where("id = ? AND collection_limit_remaining > 0", id).
		Update("collection_limit_remaining", gorm.Expr("collection_limit_remaining - 1"))

	if result.Error != nil {
		// The collection_limit_remaining >= 0 check backs the WHERE guard.
		if isCheckConstraintViolation(result.Error) {
			return repository.ErrCollectionLimitExhausted
		}

		return errors.Wrap(result.Error, "failed to decrement remaining collection limit")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCollectionLimitExhausted
	}

	return nil
}

// --- Mapper Functions ---

// toPinDomain converts a GORM PinModel to a domain Pin entity.
func toPinDomain(data *model.PinModel) *entity.Pin {
	if data == nil {
		return nil
	}

	return &entity.Pin{
		ID:                       data.ID,
		GroupID:                  data.GroupID,
		Latitude:                 data.Latitude,
		Longitude:                data.Longitude,
		CollectionLimitRemaining: data.CollectionLimitRemaining,
		AutoCollect:              data.AutoCollect,
		Group:                    toGroupDomain(data.Group),
		CreatedAt:                data.CreatedAt,
		UpdatedAt:                data.UpdatedAt,
	}
}

// fromPinDomain converts a domain Pin entity to a GORM PinModel.
func fromPinDomain(data *entity.Pin) *model.PinModel {
	if data == nil {
		return nil
	}

	return &model.PinModel{
		ID:                       data.ID,
		GroupID:                  data.GroupID,
		Latitude:                 data.Latitude,
		Longitude:                data.Longitude,
		CollectionLimitRemaining: data.CollectionLimitRemaining,
		AutoCollect:              data.AutoCollect,
		CreatedAt:                data.CreatedAt,
		UpdatedAt:                data.UpdatedAt,
	}
}
