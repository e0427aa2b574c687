package postgres

import (
	"context"
	"time"

	"pindrop/internal/domain/entity"
	domainerrors "pindrop/internal/domain/errors"
	"pindrop/internal/domain/repository"
	"pindrop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// consumptionRepository implements the repository.ConsumptionRepository interface.
type consumptionRepository struct {
	db *gorm.DB
}

// NewConsumptionRepository is the constructor for consumptionRepository.
func NewConsumptionRepository(db *gorm.DB) repository.ConsumptionRepository {
	return &consumptionRepository{
		db: db,
	}
}

// CreateConsumption persists a new consumption record. The (pin_id, user_id)
// unique index rejects a second collection; the violation surfaces as
// ErrDuplicateConsumption so the service can roll the decrement back.
func (repo *consumptionRepository) CreateConsumption(ctx context.Context, consumption *entity.PinConsumption) error {
	consumptionM := fromConsumptionDomain(consumption)

	if err := repo.db.WithContext(ctx).Create(consumptionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateConsumption
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPinNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create consumption record")
	}

	// Update the entity with generated values
	consumption.ID = consumptionM.ID
	consumption.CreatedAt = consumptionM.CreatedAt
	consumption.UpdatedAt = consumptionM.UpdatedAt

	return nil
}

// FindConsumptionByID retrieves a consumption record by its unique ID.
func (repo *consumptionRepository) FindConsumptionByID(ctx context.Context, id uuid.UUID) (*entity.PinConsumption, error) {
	var consumptionM model.PinConsumptionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&consumptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConsumptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find consumption record by ID")
	}

	return toConsumptionDomain(&consumptionM), nil
}

// FindConsumptionByPinAndUser retrieves the consumption record for a (pin, user) pair.
func (repo *consumptionRepository) FindConsumptionByPinAndUser(ctx context.Context, pinID, userID uuid.UUID) (*entity.PinConsumption, error) {
	var consumptionM model.PinConsumptionModel

	if err := repo.db.WithContext(ctx).
		Where("pin_id = ? AND user_id = ?", pinID, userID).
		First(&consumptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConsumptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find consumption record by pin and user")
	}

	return toConsumptionDomain(&consumptionM), nil
}

// FindConsumptionsByUser retrieves all consumption records for a user.
func (repo *consumptionRepository) FindConsumptionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PinConsumption, error) {
	var consumptionModels []*model.PinConsumptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("collected_at DESC").
		Find(&consumptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find consumption records by user")
	}

	consumptions := make([]*entity.PinConsumption, 0, len(consumptionModels))
	for _, consumptionM := range consumptionModels {
		consumptions = append(consumptions, toConsumptionDomain(consumptionM))
	}

	return consumptions, nil
}

// MarkClaimed sets claimed_at exactly once. The claimed_at IS NULL guard
// makes the update conditional, so a retry after a dropped response matches
// no row and reports already-claimed instead of overwriting the settlement.
func (repo *consumptionRepository) MarkClaimed(ctx context.Context, id uuid.UUID, txID string, claimedAt time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.PinConsumptionModel{}).
		Where("id = ? AND claimed_at IS NULL", id).
		Updates(map[string]any{
			"claimed_at":  claimedAt,
			"claim_tx_id": txID,
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to mark consumption record claimed")
	}

	return result.RowsAffected > 0, nil
}

// --- Mapper Functions ---

// toConsumptionDomain converts a GORM PinConsumptionModel to a domain PinConsumption entity.
func toConsumptionDomain(data *model.PinConsumptionModel) *entity.PinConsumption {
	if data == nil {
		return nil
	}

	return &entity.PinConsumption{
		ID:                data.ID,
		PinID:             data.PinID,
		UserID:            data.UserID,
		RewardAssetCode:   data.RewardAssetCode,
		RewardAssetIssuer: data.RewardAssetIssuer,
		CollectedAt:       data.CollectedAt,
		ClaimedAt:         data.ClaimedAt,
		ClaimTxID:         data.ClaimTxID,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromConsumptionDomain converts a domain PinConsumption entity to a GORM PinConsumptionModel.
func fromConsumptionDomain(data *entity.PinConsumption) *model.PinConsumptionModel {
	if data == nil {
		return nil
	}

	return &model.PinConsumptionModel{
		ID:                data.ID,
		PinID:             data.PinID,
		UserID:            data.UserID,
		RewardAssetCode:   data.RewardAssetCode,
		RewardAssetIssuer: data.RewardAssetIssuer,
		CollectedAt:       data.CollectedAt,
		ClaimedAt:         data.ClaimedAt,
		ClaimTxID:         data.ClaimTxID,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
