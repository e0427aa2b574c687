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
	"pindrop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func groupTestConfig() *config.Config {
	return &config.Config{
		PinCollection: &config.PinCollectionConfig{
			DefaultCollectionLimit: 10,
			MaxPinsPerGroup:        3,
			MaxViewportSpanDegrees: 10,
		},
	}
}

func newGroupServiceForTest(t *testing.T) (*mockRepo.MockTransactionManager, *mockRepo.MockLocationGroupRepository, usecase.GroupUsecase) {
	txManager := mockRepo.NewMockTransactionManager(t)
	groupRepo := mockRepo.NewMockLocationGroupRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	groupSrv := NewGroupService(txManager, groupRepo, groupTestConfig(), logger)

	return txManager, groupRepo, groupSrv
}

func validCreateGroupInput() *usecase.CreateGroupInput {
	return &usecase.CreateGroupInput{
		Title:           "Night market tour",
		Description:     "Collect every stall",
		StartDate:       time.Now(),
		EndDate:         time.Now().Add(72 * time.Hour),
		CollectionLimit: 5,
		AutoCollect:     false,
		Pins: []usecase.CreatePinInput{
			{Latitude: 25.03, Longitude: 121.56},
			{Latitude: 25.04, Longitude: 121.57},
		},
	}
}

func TestGroupService_CreateGroup_Success(t *testing.T) {
	txManager, _, groupSrv := newGroupServiceForTest(t)

	ctx := context.Background()
	creatorID := uuid.New()
	input := validCreateGroupInput()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTxGroupRepo := mockRepo.NewMockLocationGroupRepository(t)
			mockTxPinRepo := mockRepo.NewMockPinRepository(t)

			mockFactory.EXPECT().NewLocationGroupRepository().Return(mockTxGroupRepo)
			mockFactory.EXPECT().NewPinRepository().Return(mockTxPinRepo)

			mockTxGroupRepo.EXPECT().
				CreateGroup(ctx, mock.AnythingOfType("*entity.LocationGroup")).
				Return(nil)
			mockTxPinRepo.EXPECT().
				CreatePins(ctx, mock.AnythingOfType("[]*entity.Pin")).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := groupSrv.CreateGroup(ctx, creatorID, input)

	require.NoError(t, err)
	assert.Equal(t, creatorID, output.Group.CreatorID)
	assert.False(t, output.Group.Approved)
	require.Len(t, output.Pins, 2)
	for _, pin := range output.Pins {
		assert.Equal(t, output.Group.ID, pin.GroupID)
		assert.Equal(t, 5, pin.CollectionLimitRemaining)
		assert.False(t, pin.AutoCollect)
	}
}

func TestGroupService_CreateGroup_PinOverrides(t *testing.T) {
	txManager, _, groupSrv := newGroupServiceForTest(t)

	ctx := context.Background()
	overrideLimit := 1
	overrideAuto := true
	input := validCreateGroupInput()
	input.Pins = []usecase.CreatePinInput{
		{Latitude: 25.03, Longitude: 121.56, CollectionLimit: &overrideLimit, AutoCollect: &overrideAuto},
		{Latitude: 25.04, Longitude: 121.57},
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTxGroupRepo := mockRepo.NewMockLocationGroupRepository(t)
			mockTxPinRepo := mockRepo.NewMockPinRepository(t)

			mockFactory.EXPECT().NewLocationGroupRepository().Return(mockTxGroupRepo)
			mockFactory.EXPECT().NewPinRepository().Return(mockTxPinRepo)

			mockTxGroupRepo.EXPECT().
				CreateGroup(ctx, mock.AnythingOfType("*entity.LocationGroup")).
				Return(nil)
			mockTxPinRepo.EXPECT().
				CreatePins(ctx, mock.AnythingOfType("[]*entity.Pin")).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := groupSrv.CreateGroup(ctx, uuid.New(), input)

	require.NoError(t, err)
	require.Len(t, output.Pins, 2)
	assert.Equal(t, 1, output.Pins[0].CollectionLimitRemaining)
	assert.True(t, output.Pins[0].AutoCollect)
	assert.Equal(t, 5, output.Pins[1].CollectionLimitRemaining)
	assert.False(t, output.Pins[1].AutoCollect)
}

func TestGroupService_CreateGroup_DefaultCollectionLimit(t *testing.T) {
	txManager, _, groupSrv := newGroupServiceForTest(t)

	ctx := context.Background()
	input := validCreateGroupInput()
	input.CollectionLimit = 0

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTxGroupRepo := mockRepo.NewMockLocationGroupRepository(t)
			mockTxPinRepo := mockRepo.NewMockPinRepository(t)

			mockFactory.EXPECT().NewLocationGroupRepository().Return(mockTxGroupRepo)
			mockFactory.EXPECT().NewPinRepository().Return(mockTxPinRepo)

			mockTxGroupRepo.EXPECT().
				CreateGroup(ctx, mock.AnythingOfType("*entity.LocationGroup")).
				Return(nil)
			mockTxPinRepo.EXPECT().
				CreatePins(ctx, mock.AnythingOfType("[]*entity.Pin")).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := groupSrv.CreateGroup(ctx, uuid.New(), input)

	require.NoError(t, err)
	assert.Equal(t, 10, output.Group.CollectionLimit)
	assert.Equal(t, 10, output.Pins[0].CollectionLimitRemaining)
}

func TestGroupService_CreateGroup_NoPins(t *testing.T) {
	_, _, groupSrv := newGroupServiceForTest(t)

	input := validCreateGroupInput()
	input.Pins = nil

	_, err := groupSrv.CreateGroup(context.Background(), uuid.New(), input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestGroupService_CreateGroup_TooManyPins(t *testing.T) {
	_, _, groupSrv := newGroupServiceForTest(t)

	input := validCreateGroupInput()
	input.Pins = []usecase.CreatePinInput{
		{Latitude: 25.01, Longitude: 121.51},
		{Latitude: 25.02, Longitude: 121.52},
		{Latitude: 25.03, Longitude: 121.53},
		{Latitude: 25.04, Longitude: 121.54},
	}

	_, err := groupSrv.CreateGroup(context.Background(), uuid.New(), input)

	assert.ErrorIs(t, err, domainerrors.ErrTooManyPins)
}

func TestGroupService_CreateGroup_EndBeforeStart(t *testing.T) {
	_, _, groupSrv := newGroupServiceForTest(t)

	input := validCreateGroupInput()
	input.EndDate = input.StartDate.Add(-time.Hour)

	_, err := groupSrv.CreateGroup(context.Background(), uuid.New(), input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestGroupService_GetCreatorGroups(t *testing.T) {
	_, groupRepo, groupSrv := newGroupServiceForTest(t)

	ctx := context.Background()
	creatorID := uuid.New()
	groups := []*entity.LocationGroup{{ID: uuid.New(), CreatorID: creatorID, Title: "Downtown hunt"}}

	groupRepo.EXPECT().FindGroupsByCreator(ctx, creatorID).Return(groups, nil)

	found, err := groupSrv.GetCreatorGroups(ctx, creatorID)

	require.NoError(t, err)
	assert.Equal(t, groups, found)
}

func TestGroupService_SetApproval_Success(t *testing.T) {
	_, groupRepo, groupSrv := newGroupServiceForTest(t)

	ctx := context.Background()
	groupID := uuid.New()

	groupRepo.EXPECT().SetApproval(ctx, groupID, true).Return(nil)

	err := groupSrv.SetApproval(ctx, groupID, true)

	require.NoError(t, err)
}

func TestGroupService_SetApproval_GroupNotFound(t *testing.T) {
	_, groupRepo, groupSrv := newGroupServiceForTest(t)

	ctx := context.Background()
	groupID := uuid.New()

	groupRepo.EXPECT().SetApproval(ctx, groupID, false).Return(repository.ErrGroupNotFound)

	err := groupSrv.SetApproval(ctx, groupID, false)

	assert.ErrorIs(t, err, domainerrors.ErrGroupNotFound)
}

func TestGroupService_RetireExpiredGroups(t *testing.T) {
	_, groupRepo, groupSrv := newGroupServiceForTest(t)

	ctx := context.Background()
	now := time.Now()

	groupRepo.EXPECT().RetireExpired(ctx, now).Return(int64(2), nil)

	retired, err := groupSrv.RetireExpiredGroups(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, int64(2), retired)
}
