package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pindrop/config"
	"pindrop/internal/domain/entity"
	domainerrors "pindrop/internal/domain/errors"
	"pindrop/internal/domain/repository"
	mockRepo "pindrop/internal/mocks/repository"
	mockService "pindrop/internal/mocks/service"
	"pindrop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func collectionTestConfig() *config.Config {
	return &config.Config{
		PinCollection: &config.PinCollectionConfig{
			DefaultCollectionLimit: 10,
			MaxPinsPerGroup:        50,
			MaxViewportSpanDegrees: 10,
		},
	}
}

func activeGroup(collectionLimit int) *entity.LocationGroup {
	code := "PAGE"

	return &entity.LocationGroup{
		ID:              uuid.New(),
		CreatorID:       uuid.New(),
		Title:           "Downtown hunt",
		StartDate:       time.Now().Add(-time.Hour),
		EndDate:         time.Now().Add(time.Hour),
		CollectionLimit: collectionLimit,
		Approved:        true,
		PageAssetCode:   &code,
	}
}

func collectiblePin(group *entity.LocationGroup) *entity.Pin {
	return &entity.Pin{
		ID:                       uuid.New(),
		GroupID:                  group.ID,
		Latitude:                 25.03,
		Longitude:                121.56,
		CollectionLimitRemaining: 3,
		Group:                    group,
	}
}

func TestCollectionService_QueryNearby_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	pinRepo := mockRepo.NewMockPinRepository(t)
	resolver := mockService.NewMockRewardResolver(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewCollectionService(txManager, pinRepo, resolver, publisher, collectionTestConfig(), logger)

	ctx := context.Background()
	group := activeGroup(5)
	pins := []*entity.Pin{collectiblePin(group)}

	pinRepo.EXPECT().
		FindPinsWithinBound(ctx, mock.AnythingOfType("orb.Bound"), false).
		Return(pins, nil)

	found, err := service.QueryNearby(ctx, &usecase.QueryNearbyInput{
		MinLat: 25.0, MinLon: 121.5, MaxLat: 25.1, MaxLon: 121.6,
	})

	require.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Equal(t, pins[0].ID, found[0].ID)
}

func TestCollectionService_QueryNearby_ViewportTooLarge(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	pinRepo := mockRepo.NewMockPinRepository(t)
	resolver := mockService.NewMockRewardResolver(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewCollectionService(txManager, pinRepo, resolver, publisher, collectionTestConfig(), logger)

	_, err := service.QueryNearby(context.Background(), &usecase.QueryNearbyInput{
		MinLat: 0, MinLon: 0, MaxLat: 80, MaxLon: 170,
	})

	assert.ErrorIs(t, err, domainerrors.ErrViewportTooLarge)
}

func TestCollectionService_QueryNearby_InvertedBounds(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	pinRepo := mockRepo.NewMockPinRepository(t)
	resolver := mockService.NewMockRewardResolver(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewCollectionService(txManager, pinRepo, resolver, publisher, collectionTestConfig(), logger)

	_, err := service.QueryNearby(context.Background(), &usecase.QueryNearbyInput{
		MinLat: 25.1, MinLon: 121.5, MaxLat: 25.0, MaxLon: 121.6,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCollectionService_Collect_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	pinRepo := mockRepo.NewMockPinRepository(t)
	resolver := mockService.NewMockRewardResolver(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewCollectionService(txManager, pinRepo, resolver, publisher, collectionTestConfig(), logger)

	ctx := context.Background()
	userID := uuid.New()
	group := activeGroup(5)
	pin := collectiblePin(group)
	pin.AutoCollect = true

	pinRepo.EXPECT().FindPinByID(ctx, pin.ID).Return(pin, nil)
	resolver.EXPECT().
		ResolveReward(ctx, group).
		Return(&entity.Asset{Code: "PAGE", Issuer: "GDISSUER"}, nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTxPinRepo := mockRepo.NewMockPinRepository(t)
			mockTxConsumptionRepo := mockRepo.NewMockConsumptionRepository(t)

			mockFactory.EXPECT().NewPinRepository().Return(mockTxPinRepo)
			mockFactory.EXPECT().NewConsumptionRepository().Return(mockTxConsumptionRepo)

			mockTxPinRepo.EXPECT().DecrementRemaining(ctx, pin.ID).Return(nil)
			mockTxConsumptionRepo.EXPECT().
				CreateConsumption(ctx, mock.AnythingOfType("*entity.PinConsumption")).
				Return(nil)

			return fn(mockFactory)
		})

	publisher.EXPECT().
		PublishCollectionEvent(ctx, mock.AnythingOfType("*service.CollectionEvent")).
		Return(nil)

	output, err := service.Collect(ctx, userID, pin.ID)

	require.NoError(t, err)
	assert.True(t, output.AutoCollect)
	assert.Equal(t, pin.ID, output.Consumption.PinID)
	assert.Equal(t, userID, output.Consumption.UserID)
	assert.Equal(t, "PAGE", output.Consumption.RewardAssetCode)
	assert.Equal(t, "GDISSUER", output.Consumption.RewardAssetIssuer)
	assert.Nil(t, output.Consumption.ClaimedAt)
}

func TestCollectionService_Collect_PinNotFound(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	pinRepo := mockRepo.NewMockPinRepository(t)
	resolver := mockService.NewMockRewardResolver(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewCollectionService(txManager, pinRepo, resolver, publisher, collectionTestConfig(), logger)

	ctx := context.Background()
	pinID := uuid.New()

	pinRepo.EXPECT().FindPinByID(ctx, pinID).Return(nil, repository.ErrPinNotFound)

	_, err := service.Collect(ctx, uuid.New(), pinID)

	assert.ErrorIs(t, err, domainerrors.ErrPinNotFound)
}

func TestCollectionService_Collect_InactiveGroup(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	pinRepo := mockRepo.NewMockPinRepository(t)
	resolver := mockService.NewMockRewardResolver(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewCollectionService(txManager, pinRepo, resolver, publisher, collectionTestConfig(), logger)

	ctx := context.Background()
	group := activeGroup(5)
	group.EndDate = time.Now().Add(-time.Minute)
	pin := collectiblePin(group)

	pinRepo.EXPECT().FindPinByID(ctx, pin.ID).Return(pin, nil)

	_, err := service.Collect(ctx, uuid.New(), pin.ID)

	assert.ErrorIs(t, err, domainerrors.ErrNotCollectible)
}

func TestCollectionService_Collect_UnapprovedGroup(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	pinRepo := mockRepo.NewMockPinRepository(t)
	resolver := mockService.NewMockRewardResolver(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewCollectionService(txManager, pinRepo, resolver, publisher, collectionTestConfig(), logger)

	ctx := context.Background()
	group := activeGroup(5)
	group.Approved = false
	pin := collectiblePin(group)

	pinRepo.EXPECT().FindPinByID(ctx, pin.ID).Return(pin, nil)

	_, err := service.Collect(ctx, uuid.New(), pin.ID)

	assert.ErrorIs(t, err, domainerrors.ErrNotCollectible)
}

func TestCollectionService_Collect_LimitExceeded(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	pinRepo := mockRepo.NewMockPinRepository(t)
	resolver := mockService.NewMockRewardResolver(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewCollectionService(txManager, pinRepo, resolver, publisher, collectionTestConfig(), logger)

	ctx := context.Background()
	group := activeGroup(5)
	pin := collectiblePin(group)

	pinRepo.EXPECT().FindPinByID(ctx, pin.ID).Return(pin, nil)
	resolver.EXPECT().
		ResolveReward(ctx, group).
		Return(&entity.Asset{Code: "PAGE", Issuer: "GDISSUER"}, nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTxPinRepo := mockRepo.NewMockPinRepository(t)
			mockTxConsumptionRepo := mockRepo.NewMockConsumptionRepository(t)

			mockFactory.EXPECT().NewPinRepository().Return(mockTxPinRepo)
			mockFactory.EXPECT().NewConsumptionRepository().Return(mockTxConsumptionRepo)

			mockTxConsumptionRepo.EXPECT().
				CreateConsumption(ctx, mock.AnythingOfType("*entity.PinConsumption")).
				Return(nil)
			mockTxPinRepo.EXPECT().
				DecrementRemaining(ctx, pin.ID).
				Return(repository.ErrCollectionLimitExhausted)

			return fn(mockFactory)
		})

	_, err := service.Collect(ctx, uuid.New(), pin.ID)

	assert.ErrorIs(t, err, domainerrors.ErrLimitExceeded)
}

func TestCollectionService_Collect_AlreadyCollected(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	pinRepo := mockRepo.NewMockPinRepository(t)
	resolver := mockService.NewMockRewardResolver(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewCollectionService(txManager, pinRepo, resolver, publisher, collectionTestConfig(), logger)

	ctx := context.Background()
	userID := uuid.New()
	group := activeGroup(5)
	pin := collectiblePin(group)

	pinRepo.EXPECT().FindPinByID(ctx, pin.ID).Return(pin, nil)
	resolver.EXPECT().
		ResolveReward(ctx, group).
		Return(&entity.Asset{Code: "PAGE", Issuer: "GDISSUER"}, nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTxPinRepo := mockRepo.NewMockPinRepository(t)
			mockTxConsumptionRepo := mockRepo.NewMockConsumptionRepository(t)

			mockFactory.EXPECT().NewPinRepository().Return(mockTxPinRepo)
			mockFactory.EXPECT().NewConsumptionRepository().Return(mockTxConsumptionRepo)

			mockTxConsumptionRepo.EXPECT().
				CreateConsumption(ctx, mock.AnythingOfType("*entity.PinConsumption")).
				Return(repository.ErrDuplicateConsumption)

			return fn(mockFactory)
		})

	_, err := service.Collect(ctx, userID, pin.ID)

	assert.ErrorIs(t, err, domainerrors.ErrAlreadyCollected)
}

func TestCollectionService_Collect_RepeatOnExhaustedPin(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	pinRepo := mockRepo.NewMockPinRepository(t)
	resolver := mockService.NewMockRewardResolver(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewCollectionService(txManager, pinRepo, resolver, publisher, collectionTestConfig(), logger)

	ctx := context.Background()
	userID := uuid.New()
	group := activeGroup(5)
	pin := collectiblePin(group)
	pin.CollectionLimitRemaining = 0

	pinRepo.EXPECT().FindPinByID(ctx, pin.ID).Return(pin, nil)
	resolver.EXPECT().
		ResolveReward(ctx, group).
		Return(&entity.Asset{Code: "PAGE", Issuer: "GDISSUER"}, nil)

	// A user who already holds the last unit retries against the exhausted
	// pin. The duplicate check fires before the counter guard, so the retry
	// reports the prior collection instead of an exhausted limit.
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTxPinRepo := mockRepo.NewMockPinRepository(t)
			mockTxConsumptionRepo := mockRepo.NewMockConsumptionRepository(t)

			mockFactory.EXPECT().NewPinRepository().Return(mockTxPinRepo)
			mockFactory.EXPECT().NewConsumptionRepository().Return(mockTxConsumptionRepo)

			mockTxConsumptionRepo.EXPECT().
				CreateConsumption(ctx, mock.AnythingOfType("*entity.PinConsumption")).
				Return(repository.ErrDuplicateConsumption)

			return fn(mockFactory)
		})

	_, err := service.Collect(ctx, userID, pin.ID)

	assert.ErrorIs(t, err, domainerrors.ErrAlreadyCollected)
}

func TestCollectionService_Collect_NoLinkedReward_SnapshotEmpty(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	pinRepo := mockRepo.NewMockPinRepository(t)
	resolver := mockService.NewMockRewardResolver(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewCollectionService(txManager, pinRepo, resolver, publisher, collectionTestConfig(), logger)

	ctx := context.Background()
	group := activeGroup(5)
	group.PageAssetCode = nil
	pin := collectiblePin(group)

	pinRepo.EXPECT().FindPinByID(ctx, pin.ID).Return(pin, nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTxPinRepo := mockRepo.NewMockPinRepository(t)
			mockTxConsumptionRepo := mockRepo.NewMockConsumptionRepository(t)

			mockFactory.EXPECT().NewPinRepository().Return(mockTxPinRepo)
			mockFactory.EXPECT().NewConsumptionRepository().Return(mockTxConsumptionRepo)

			mockTxPinRepo.EXPECT().DecrementRemaining(ctx, pin.ID).Return(nil)
			mockTxConsumptionRepo.EXPECT().
				CreateConsumption(ctx, mock.AnythingOfType("*entity.PinConsumption")).
				Return(nil)

			return fn(mockFactory)
		})

	publisher.EXPECT().
		PublishCollectionEvent(ctx, mock.AnythingOfType("*service.CollectionEvent")).
		Return(nil)

	output, err := service.Collect(ctx, uuid.New(), pin.ID)

	require.NoError(t, err)
	assert.Empty(t, output.Consumption.RewardAssetCode)
	assert.Empty(t, output.Consumption.RewardAssetIssuer)
}
