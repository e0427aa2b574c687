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

// locationGroupRepository implements the repository.LocationGroupRepository interface.
type locationGroupRepository struct {
	db *gorm.DB
}

// NewLocationGroupRepository is the constructor for locationGroupRepository.
func NewLocationGroupRepository(db *gorm.DB) repository.LocationGroupRepository {
	return &locationGroupRepository{
		db: db,
	}
}

// CreateGroup persists a new location group.
func (repo *locationGroupRepository) CreateGroup(ctx context.Context, group *entity.LocationGroup) error {
	groupM := fromGroupDomain(group)

	if err := repo.db.WithContext(ctx).Create(groupM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create location group")
	}

	// Update the entity with generated values
	group.ID = groupM.ID
	group.CreatedAt = groupM.CreatedAt
	group.UpdatedAt = groupM.UpdatedAt

	return nil
}

// FindGroupByID retrieves a group by its unique ID.
func (repo *locationGroupRepository) FindGroupByID(ctx context.Context, id uuid.UUID) (*entity.LocationGroup, error) {
	var groupM model.LocationGroupModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&groupM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGroupNotFound
		}

		return nil, errors.Wrap(err, "failed to find location group by ID")
	}

	return toGroupDomain(&groupM), nil
}

// FindGroupsByCreator retrieves all groups owned by a creator.
func (repo *locationGroupRepository) FindGroupsByCreator(ctx context.Context, creatorID uuid.UUID) ([]*entity.LocationGroup, error) {
	var groupModels []*model.LocationGroupModel

	if err := repo.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&groupModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find location groups by creator")
	}

	groups := make([]*entity.LocationGroup, 0, len(groupModels))
	for _, groupM := range groupModels {
		groups = append(groups, toGroupDomain(groupM))
	}

	return groups, nil
}

// SetApproval flips the admin approval flag on a group.
func (repo *locationGroupRepository) SetApproval(ctx context.Context, id uuid.UUID, approved bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LocationGroupModel{}).
		Where("id = ?", id).
		Update("approved", approved)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set group approval")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGroupNotFound
	}

	return nil
}

// RetireExpired soft-retires every approved group whose end date passed.
// Groups are never hard-deleted while consumption records reference them.
func (repo *locationGroupRepository) RetireExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.LocationGroupModel{}).
		Where("end_date < ? AND retired_at IS NULL", now).
		Update("retired_at", now)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to retire expired location groups")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toGroupDomain converts a GORM LocationGroupModel to a domain LocationGroup entity.
func toGroupDomain(data *model.LocationGroupModel) *entity.LocationGroup {
	if data == nil {
		return nil
	}

	return &entity.LocationGroup{
		ID:              data.ID,
		CreatorID:       data.CreatorID,
		Title:           data.Title,
		Description:     data.Description,
		ImageURL:        data.ImageURL,
		StartDate:       data.StartDate,
		EndDate:         data.EndDate,
		CollectionLimit: data.CollectionLimit,
		AutoCollect:     data.AutoCollect,
		Approved:        data.Approved,
		AssetID:         data.AssetID,
		PageAssetCode:   data.PageAssetCode,
		RetiredAt:       data.RetiredAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromGroupDomain converts a domain LocationGroup entity to a GORM LocationGroupModel.
func fromGroupDomain(data *entity.LocationGroup) *model.LocationGroupModel {
	if data == nil {
		return nil
	}

	return &model.LocationGroupModel{
		ID:              data.ID,
		CreatorID:       data.CreatorID,
		Title:           data.Title,
		Description:     data.Description,
		ImageURL:        data.ImageURL,
		StartDate:       data.StartDate,
		EndDate:         data.EndDate,
		CollectionLimit: data.CollectionLimit,
		AutoCollect:     data.AutoCollect,
		Approved:        data.Approved,
		AssetID:         data.AssetID,
		PageAssetCode:   data.PageAssetCode,
		RetiredAt:       data.RetiredAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
