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
	"pindrop/internal/domain/service"
	mockRepo "pindrop/internal/mocks/repository"
	mockService "pindrop/internal/mocks/service"
	"pindrop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testWallet      = "GWALLET"
	testDistributor = "GDISTRIBUTOR"
)

func claimTestConfig() *config.Config {
	return &config.Config{
		Ledger: &config.LedgerConfig{
			HorizonURL:         "http://horizon.local",
			NetworkPassphrase:  "Test Network ; 2026",
			DistributorAccount: testDistributor,
			BaseFee:            100,
		},
		Claim: &config.ClaimConfig{
			OfferTTL:       10 * time.Minute,
			TrustlineLimit: "1000000",
		},
	}
}

func unclaimedConsumption(userID, pinID uuid.UUID) *entity.PinConsumption {
	return &entity.PinConsumption{
		ID:                uuid.New(),
		PinID:             pinID,
		UserID:            userID,
		RewardAssetCode:   "PAGE",
		RewardAssetIssuer: "GDISSUER",
		CollectedAt:       time.Now().Add(-time.Minute),
	}
}

func newClaimServiceForTest(
	t *testing.T,
) (*mockRepo.MockConsumptionRepository, *mockService.MockLedgerClient, *mockService.MockTransactionSigner, *mockService.MockEventPublisher, usecase.ClaimUsecase) {
	consumptionRepo := mockRepo.NewMockConsumptionRepository(t)
	ledger := mockService.NewMockLedgerClient(t)
	signer := mockService.NewMockTransactionSigner(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	claimSrv := NewClaimService(consumptionRepo, ledger, signer, publisher, claimTestConfig(), logger)

	return consumptionRepo, ledger, signer, publisher, claimSrv
}

func TestClaimService_BuildClaimOffer_WalletTrustsAsset(t *testing.T) {
	consumptionRepo, ledger, _, _, claimSrv := newClaimServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	pinID := uuid.New()
	consumption := unclaimedConsumption(userID, pinID)

	consumptionRepo.EXPECT().FindConsumptionByPinAndUser(ctx, pinID, userID).Return(consumption, nil)
	ledger.EXPECT().AccountTrustsAsset(ctx, testWallet, consumption.RewardAsset()).Return(true, nil)

	offer, err := claimSrv.BuildClaimOffer(ctx, userID, pinID, testWallet)

	require.NoError(t, err)
	assert.False(t, offer.RequiresSignature)
	assert.Empty(t, offer.Envelope)
	assert.Equal(t, consumption.ID, offer.ConsumptionID)
	assert.Equal(t, "PAGE", offer.Asset.Code)
	assert.True(t, offer.ExpiresAt.After(time.Now()))
}

func TestClaimService_BuildClaimOffer_MissingTrustline(t *testing.T) {
	consumptionRepo, ledger, _, _, claimSrv := newClaimServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	pinID := uuid.New()
	consumption := unclaimedConsumption(userID, pinID)

	consumptionRepo.EXPECT().FindConsumptionByPinAndUser(ctx, pinID, userID).Return(consumption, nil)
	ledger.EXPECT().AccountTrustsAsset(ctx, testWallet, consumption.RewardAsset()).Return(false, nil)
	ledger.EXPECT().LoadAccount(ctx, testWallet).Return(&service.Account{ID: testWallet, Sequence: 41}, nil)

	offer, err := claimSrv.BuildClaimOffer(ctx, userID, pinID, testWallet)

	require.NoError(t, err)
	assert.True(t, offer.RequiresSignature)
	require.NotEmpty(t, offer.Envelope)

	tx, err := service.DecodeEnvelope(offer.Envelope)
	require.NoError(t, err)
	assert.Equal(t, testWallet, tx.Source)
	assert.Equal(t, int64(42), tx.Sequence)
	assert.Equal(t, consumption.ID.String(), tx.Memo)
	require.Len(t, tx.Operations, 2)
	assert.Equal(t, service.OperationChangeTrust, tx.Operations[0].Type)
	assert.Equal(t, "1000000", tx.Operations[0].Limit)
	assert.Equal(t, service.OperationPayment, tx.Operations[1].Type)
	assert.Equal(t, testDistributor, tx.Operations[1].Source)
	assert.Equal(t, testWallet, tx.Operations[1].Destination)
	assert.Equal(t, "1", tx.Operations[1].Amount)
}

func TestClaimService_BuildClaimOffer_NotConsumed(t *testing.T) {
	consumptionRepo, _, _, _, claimSrv := newClaimServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	pinID := uuid.New()

	consumptionRepo.EXPECT().
		FindConsumptionByPinAndUser(ctx, pinID, userID).
		Return(nil, repository.ErrConsumptionNotFound)

	_, err := claimSrv.BuildClaimOffer(ctx, userID, pinID, testWallet)

	assert.ErrorIs(t, err, domainerrors.ErrNotConsumed)
}

func TestClaimService_BuildClaimOffer_AlreadyClaimed(t *testing.T) {
	consumptionRepo, _, _, _, claimSrv := newClaimServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	pinID := uuid.New()
	consumption := unclaimedConsumption(userID, pinID)
	claimedAt := time.Now().Add(-time.Hour)
	consumption.ClaimedAt = &claimedAt

	consumptionRepo.EXPECT().FindConsumptionByPinAndUser(ctx, pinID, userID).Return(consumption, nil)

	_, err := claimSrv.BuildClaimOffer(ctx, userID, pinID, testWallet)

	assert.ErrorIs(t, err, domainerrors.ErrAlreadyClaimed)
}

func TestClaimService_BuildClaimOffer_RewardUnresolvable(t *testing.T) {
	consumptionRepo, _, _, _, claimSrv := newClaimServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	pinID := uuid.New()
	consumption := unclaimedConsumption(userID, pinID)
	consumption.RewardAssetCode = ""
	consumption.RewardAssetIssuer = ""

	consumptionRepo.EXPECT().FindConsumptionByPinAndUser(ctx, pinID, userID).Return(consumption, nil)

	_, err := claimSrv.BuildClaimOffer(ctx, userID, pinID, testWallet)

	assert.ErrorIs(t, err, domainerrors.ErrRewardUnresolvable)
}

func TestClaimService_SubmitClaim_SignedEnvelope(t *testing.T) {
	consumptionRepo, ledger, _, publisher, claimSrv := newClaimServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	pinID := uuid.New()
	consumption := unclaimedConsumption(userID, pinID)

	consumptionRepo.EXPECT().FindConsumptionByPinAndUser(ctx, pinID, userID).Return(consumption, nil)
	ledger.EXPECT().
		SubmitTransaction(ctx, "signed-envelope").
		Return(&service.SubmitResult{Successful: true, TxID: "tx-123"}, nil)
	consumptionRepo.EXPECT().
		MarkClaimed(ctx, consumption.ID, "tx-123", mock.AnythingOfType("time.Time")).
		Return(true, nil)
	publisher.EXPECT().
		PublishCollectionEvent(ctx, mock.AnythingOfType("*service.CollectionEvent")).
		Return(nil)

	result, err := claimSrv.SubmitClaim(ctx, userID, pinID, testWallet, "signed-envelope")

	require.NoError(t, err)
	assert.Equal(t, "tx-123", result.TxID)
	assert.False(t, result.AlreadyClaimed)
}

func TestClaimService_SubmitClaim_DistributorPath(t *testing.T) {
	consumptionRepo, ledger, signer, publisher, claimSrv := newClaimServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	pinID := uuid.New()
	consumption := unclaimedConsumption(userID, pinID)

	consumptionRepo.EXPECT().FindConsumptionByPinAndUser(ctx, pinID, userID).Return(consumption, nil)
	ledger.EXPECT().AccountTrustsAsset(ctx, testWallet, consumption.RewardAsset()).Return(true, nil)
	ledger.EXPECT().LoadAccount(ctx, testDistributor).Return(&service.Account{ID: testDistributor, Sequence: 7}, nil)
	signer.EXPECT().
		Sign(mock.AnythingOfType("*service.UnsignedTransaction")).
		RunAndReturn(func(tx *service.UnsignedTransaction) (string, error) {
			assert.Equal(t, testDistributor, tx.Source)
			assert.Equal(t, int64(8), tx.Sequence)
			require.Len(t, tx.Operations, 1)
			assert.Equal(t, service.OperationPayment, tx.Operations[0].Type)
			assert.Equal(t, testWallet, tx.Operations[0].Destination)

			return "distributor-signed", nil
		})
	ledger.EXPECT().
		SubmitTransaction(ctx, "distributor-signed").
		Return(&service.SubmitResult{Successful: true, TxID: "tx-456"}, nil)
	consumptionRepo.EXPECT().
		MarkClaimed(ctx, consumption.ID, "tx-456", mock.AnythingOfType("time.Time")).
		Return(true, nil)
	publisher.EXPECT().
		PublishCollectionEvent(ctx, mock.AnythingOfType("*service.CollectionEvent")).
		Return(nil)

	result, err := claimSrv.SubmitClaim(ctx, userID, pinID, testWallet, "")

	require.NoError(t, err)
	assert.Equal(t, "tx-456", result.TxID)
}

func TestClaimService_SubmitClaim_DistributorPathWithoutTrustline(t *testing.T) {
	consumptionRepo, ledger, _, _, claimSrv := newClaimServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	pinID := uuid.New()
	consumption := unclaimedConsumption(userID, pinID)

	consumptionRepo.EXPECT().FindConsumptionByPinAndUser(ctx, pinID, userID).Return(consumption, nil)
	ledger.EXPECT().AccountTrustsAsset(ctx, testWallet, consumption.RewardAsset()).Return(false, nil)

	_, err := claimSrv.SubmitClaim(ctx, userID, pinID, testWallet, "")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestClaimService_SubmitClaim_StaleSequence(t *testing.T) {
	consumptionRepo, ledger, _, _, claimSrv := newClaimServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	pinID := uuid.New()
	consumption := unclaimedConsumption(userID, pinID)

	consumptionRepo.EXPECT().FindConsumptionByPinAndUser(ctx, pinID, userID).Return(consumption, nil)
	ledger.EXPECT().
		SubmitTransaction(ctx, "signed-envelope").
		Return(&service.SubmitResult{Successful: false, ResultCode: "tx_bad_seq"}, nil)

	_, err := claimSrv.SubmitClaim(ctx, userID, pinID, testWallet, "signed-envelope")

	assert.ErrorIs(t, err, domainerrors.ErrClaimOfferExpired)
	assert.Nil(t, consumption.ClaimedAt)
}

func TestClaimService_SubmitClaim_BadSignature(t *testing.T) {
	consumptionRepo, ledger, _, _, claimSrv := newClaimServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	pinID := uuid.New()
	consumption := unclaimedConsumption(userID, pinID)

	consumptionRepo.EXPECT().FindConsumptionByPinAndUser(ctx, pinID, userID).Return(consumption, nil)
	ledger.EXPECT().
		SubmitTransaction(ctx, "signed-envelope").
		Return(&service.SubmitResult{Successful: false, ResultCode: "tx_bad_auth"}, nil)

	_, err := claimSrv.SubmitClaim(ctx, userID, pinID, testWallet, "signed-envelope")

	assert.ErrorIs(t, err, domainerrors.ErrSigningRejected)
}

func TestClaimService_SubmitClaim_AlreadyClaimedIsBenign(t *testing.T) {
	consumptionRepo, _, _, _, claimSrv := newClaimServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	pinID := uuid.New()
	consumption := unclaimedConsumption(userID, pinID)
	claimedAt := time.Now().Add(-time.Hour)
	txID := "tx-old"
	consumption.ClaimedAt = &claimedAt
	consumption.ClaimTxID = &txID

	consumptionRepo.EXPECT().FindConsumptionByPinAndUser(ctx, pinID, userID).Return(consumption, nil)

	result, err := claimSrv.SubmitClaim(ctx, userID, pinID, testWallet, "signed-envelope")

	require.NoError(t, err)
	assert.True(t, result.AlreadyClaimed)
	assert.Equal(t, "tx-old", result.TxID)
}

func TestClaimService_FinalizeClaim_Success(t *testing.T) {
	consumptionRepo, ledger, _, publisher, claimSrv := newClaimServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	consumption := unclaimedConsumption(userID, uuid.New())

	consumptionRepo.EXPECT().FindConsumptionByID(ctx, consumption.ID).Return(consumption, nil)
	ledger.EXPECT().
		GetTransaction(ctx, "tx-789").
		Return(&service.LedgerTransaction{ID: "tx-789", Successful: true, Ledger: 1234, Memo: consumption.ID.String()}, nil)
	consumptionRepo.EXPECT().
		MarkClaimed(ctx, consumption.ID, "tx-789", mock.AnythingOfType("time.Time")).
		Return(true, nil)
	publisher.EXPECT().
		PublishCollectionEvent(ctx, mock.AnythingOfType("*service.CollectionEvent")).
		Return(nil)

	result, err := claimSrv.FinalizeClaim(ctx, userID, consumption.ID, "tx-789")

	require.NoError(t, err)
	assert.Equal(t, "tx-789", result.TxID)
	assert.False(t, result.AlreadyClaimed)
}

func TestClaimService_FinalizeClaim_Forbidden(t *testing.T) {
	consumptionRepo, _, _, _, claimSrv := newClaimServiceForTest(t)

	ctx := context.Background()
	consumption := unclaimedConsumption(uuid.New(), uuid.New())

	consumptionRepo.EXPECT().FindConsumptionByID(ctx, consumption.ID).Return(consumption, nil)

	_, err := claimSrv.FinalizeClaim(ctx, uuid.New(), consumption.ID, "tx-789")

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestClaimService_FinalizeClaim_NotConfirmed(t *testing.T) {
	consumptionRepo, ledger, _, _, claimSrv := newClaimServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	consumption := unclaimedConsumption(userID, uuid.New())

	consumptionRepo.EXPECT().FindConsumptionByID(ctx, consumption.ID).Return(consumption, nil)
	ledger.EXPECT().
		GetTransaction(ctx, "tx-789").
		Return(nil, service.ErrTransactionNotFound)

	_, err := claimSrv.FinalizeClaim(ctx, userID, consumption.ID, "tx-789")

	assert.ErrorIs(t, err, domainerrors.ErrNotConfirmed)
}

func TestClaimService_FinalizeClaim_UnrelatedTransaction(t *testing.T) {
	consumptionRepo, ledger, _, _, claimSrv := newClaimServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	consumption := unclaimedConsumption(userID, uuid.New())

	// Confirmed on the ledger, but its memo names a different consumption.
	consumptionRepo.EXPECT().FindConsumptionByID(ctx, consumption.ID).Return(consumption, nil)
	ledger.EXPECT().
		GetTransaction(ctx, "tx-other").
		Return(&service.LedgerTransaction{ID: "tx-other", Successful: true, Ledger: 1234, Memo: uuid.NewString()}, nil)

	_, err := claimSrv.FinalizeClaim(ctx, userID, consumption.ID, "tx-other")

	assert.ErrorIs(t, err, domainerrors.ErrNotConfirmed)
	consumptionRepo.AssertNotCalled(t, "MarkClaimed", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestClaimService_FinalizeClaim_ConcurrentSettleCollapses(t *testing.T) {
	consumptionRepo, ledger, _, _, claimSrv := newClaimServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	consumption := unclaimedConsumption(userID, uuid.New())

	claimedAt := time.Now()
	txID := "tx-789"
	settled := *consumption
	settled.ClaimedAt = &claimedAt
	settled.ClaimTxID = &txID

	consumptionRepo.EXPECT().FindConsumptionByID(ctx, consumption.ID).Return(consumption, nil).Once()
	ledger.EXPECT().
		GetTransaction(ctx, "tx-789").
		Return(&service.LedgerTransaction{ID: "tx-789", Successful: true, Memo: consumption.ID.String()}, nil)
	consumptionRepo.EXPECT().
		MarkClaimed(ctx, consumption.ID, "tx-789", mock.AnythingOfType("time.Time")).
		Return(false, nil)
	consumptionRepo.EXPECT().FindConsumptionByID(ctx, consumption.ID).Return(&settled, nil).Once()

	result, err := claimSrv.FinalizeClaim(ctx, userID, consumption.ID, "tx-789")

	require.NoError(t, err)
	assert.True(t, result.AlreadyClaimed)
	assert.Equal(t, "tx-789", result.TxID)
}
